package models

import (
	"github.com/fintrack-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget represents an allocated amount for a category within a date range.
//
// The range is inclusive on both ends. Budgets require a category and are
// deleted together with it.
type Budget struct {
	DefaultModel
	User            User            `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	UserID          uuid.UUID       `gorm:"uniqueIndex:budget_user_category_range"`
	Category        Category        `gorm:"constraint:OnDelete:CASCADE"`
	CategoryID      uuid.UUID       `gorm:"uniqueIndex:budget_user_category_range"`
	AmountAllocated decimal.Decimal `gorm:"type:DECIMAL(10,2)"`
	StartDate       types.Date      `gorm:"uniqueIndex:budget_user_category_range"`
	EndDate         types.Date      `gorm:"uniqueIndex:budget_user_category_range"`
}

// BeforeSave validates the budget.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	if b.AmountAllocated.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	_ = b.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Budget)
	return b.checkIntegrity(tx, *toSave)
}

// BeforeUpdate verifies the category reference before committing an update
// to the database.
func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("CategoryID") {
		toSave := tx.Statement.Dest.(Budget)
		return b.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies that the referenced category exists and belongs
// to the same user.
func (b *Budget) checkIntegrity(tx *gorm.DB, toSave Budget) error {
	if toSave.CategoryID == uuid.Nil {
		return ErrBudgetCategoryRequired
	}

	userID := toSave.UserID
	if userID == uuid.Nil {
		userID = b.UserID
	}

	return tx.Where("id = ? AND user_id = ?", toSave.CategoryID, userID).First(&Category{}).Error
}
