package v1

import (
	"fmt"

	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/models"
	"github.com/fintrack-app/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	Amount      decimal.Decimal        `json:"amount" example:"14.50"`                                    // The amount, always a non-negative magnitude
	Type        models.TransactionType `json:"type" example:"expense" enums:"income,expense"`             // The direction of the transaction
	CategoryID  *uuid.UUID             `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the category, null for uncategorized
	Description string                 `json:"description" example:"Weekly groceries" default:""`         // Free-text description
	Date        types.Date             `json:"date" example:"2024-03-05"`                                 // The day the transaction took place
}

func (editable TransactionEditable) model(userID uuid.UUID) models.Transaction {
	return models.Transaction{
		UserID:      userID,
		Amount:      editable.Amount,
		Type:        editable.Type,
		CategoryID:  editable.CategoryID,
		Description: editable.Description,
		Date:        editable.Date,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable

	// CategoryName is resolved from the category reference for display
	CategoryName string `json:"categoryName" example:"Groceries"`

	Links TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := httputil.RequestHost(c)

	transaction := Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Amount:      model.Amount,
			Type:        model.Type,
			CategoryID:  model.CategoryID,
			Description: model.Description,
			Date:        model.Date,
		},
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}

	if model.Category != nil {
		transaction.CategoryName = model.Category.Name
	}

	return transaction
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`  // Data for the transaction
	Error *string      `json:"error"` // The error, if any occurred
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`       // List of transactions
	Error      *string       `json:"error"`      // The error, if any occurred
	Pagination *Pagination   `json:"pagination"` // Pagination information
}

type TransactionQueryFilter struct {
	Type     string     `form:"type" filterField:"false"`     // By type (income or expense)
	Category string     `form:"category" filterField:"false"` // By ID of the category
	From     types.Date `form:"from" filterField:"false"`     // Transactions on or after this date
	Until    types.Date `form:"until" filterField:"false"`    // Transactions on or before this date
	Search   string     `form:"search" filterField:"false"`   // Search for this text in the description
	Offset   uint       `form:"offset" filterField:"false"`   // The offset of the first transaction returned. Defaults to 0.
	Limit    int        `form:"limit" filterField:"false"`    // Maximum number of transactions to return. Defaults to 50.
}
