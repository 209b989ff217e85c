package models

import (
	"strings"

	"github.com/fintrack-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction represents a single income or expense record.
type Transaction struct {
	DefaultModel
	User        User            `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	UserID      uuid.UUID       `gorm:"index"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(10,2)"`
	Type        TransactionType
	Category    *Category  `gorm:"constraint:OnDelete:SET NULL"`
	CategoryID  *uuid.UUID // nil for uncategorized transactions
	Description string
	Date        types.Date
}

// BeforeSave validates the transaction and defaults the date to today.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)

	// Ensure that the category ID is nil and not a pointer to a nil UUID
	// when it is not set
	if t.CategoryID != nil && *t.CategoryID == uuid.Nil {
		t.CategoryID = nil
	}

	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	// The sign of a transaction is carried by its type, never by the amount
	if t.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if t.Date.IsZero() {
		t.Date = types.Today()
	}

	return nil
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Transaction)
	return t.checkIntegrity(tx, *toSave)
}

// BeforeUpdate verifies the category reference before committing an update
// to the database.
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("CategoryID") {
		toSave := tx.Statement.Dest.(Transaction)
		return t.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies that the referenced category exists and belongs
// to the same user. A foreign user's category is reported as not found,
// never as forbidden.
func (t *Transaction) checkIntegrity(tx *gorm.DB, toSave Transaction) error {
	if toSave.CategoryID == nil || *toSave.CategoryID == uuid.Nil {
		return nil
	}

	userID := toSave.UserID
	if userID == uuid.Nil {
		userID = t.UserID
	}

	return tx.Where("id = ? AND user_id = ?", *toSave.CategoryID, userID).First(&Category{}).Error
}

// ExpenseSum returns the sum of all expense amounts of one user for a
// category within an inclusive date range.
//
// If no transaction matches, the sum is zero.
func ExpenseSum(db *gorm.DB, userID, categoryID uuid.UUID, from, to types.Date) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.
		Table("transactions").
		Select("SUM(amount)").
		Where("user_id = ?", userID).
		Where("category_id = ?", categoryID).
		Where("type = ?", TypeExpense).
		Where("date(transactions.date) >= date(?) AND date(transactions.date) <= date(?)", from, to).
		Find(&sum).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	// If no transactions are found, the value is nil
	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}
