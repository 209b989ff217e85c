package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionType is the direction of a monetary movement.
//
// Amounts are always non-negative magnitudes, the type carries the sign.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the known values.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Category represents a label for transactions of one type.
type Category struct {
	DefaultModel
	User   User            `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	UserID uuid.UUID       `gorm:"uniqueIndex:category_user_name_type"`
	Name   string          `gorm:"uniqueIndex:category_user_name_type"`
	Type   TransactionType `gorm:"uniqueIndex:category_user_name_type"`
}

// BeforeSave validates the category and trims whitespace.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)

	if !c.Type.Valid() {
		return ErrCategoryTypeInvalid
	}

	return nil
}
