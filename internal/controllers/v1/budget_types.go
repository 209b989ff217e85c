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

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	CategoryID      uuid.UUID       `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the category the budget is for
	AmountAllocated decimal.Decimal `json:"amountAllocated" example:"250.00"`                          // The amount allocated for the period
	StartDate       types.Date      `json:"startDate" example:"2024-03-01"`                            // First day of the budget period
	EndDate         types.Date      `json:"endDate" example:"2024-03-31"`                              // Last day of the budget period
}

func (editable BudgetEditable) model(userID uuid.UUID) models.Budget {
	return models.Budget{
		UserID:          userID,
		CategoryID:      editable.CategoryID,
		AmountAllocated: editable.AmountAllocated,
		StartDate:       editable.StartDate,
		EndDate:         editable.EndDate,
	}
}

type BudgetLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/budgets/0e0771dc-0f44-4fe8-97aa-b139b6c311c4"` // The budget itself
}

type Budget struct {
	models.DefaultModel
	BudgetEditable

	// CategoryName is resolved from the category reference for display
	CategoryName string `json:"categoryName" example:"Groceries"`

	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := httputil.RequestHost(c)

	budget := Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			CategoryID:      model.CategoryID,
			AmountAllocated: model.AmountAllocated,
			StartDate:       model.StartDate,
			EndDate:         model.EndDate,
		},
		Links: BudgetLinks{
			Self: fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
		},

		// The zero value resolves to an empty name when the category is
		// not preloaded
		CategoryName: model.Category.Name,
	}

	return budget
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`  // Data for the budget
	Error *string `json:"error"` // The error, if any occurred
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`       // List of budgets
	Error      *string     `json:"error"`      // The error, if any occurred
	Pagination *Pagination `json:"pagination"` // Pagination information
}

type BudgetQueryFilter struct {
	Category string `form:"category" filterField:"false"` // By ID of the category
	Offset   uint   `form:"offset" filterField:"false"`   // The offset of the first budget returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`    // Maximum number of budgets to return. Defaults to 50.
}
