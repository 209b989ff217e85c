package v1

import (
	"fmt"

	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name string                 `json:"name" example:"Groceries" default:""`           // Name of the category
	Type models.TransactionType `json:"type" example:"expense" enums:"income,expense"` // Whether the category labels income or expenses
}

func (editable CategoryEditable) model(userID uuid.UUID) models.Category {
	return models.Category{
		UserID: userID,
		Name:   editable.Name,
		Type:   editable.Type,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`                    // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=3b1ea324-d438-4419-882a-2fc91d71772f"` // Transactions for this category
	Budgets      string `json:"budgets" example:"https://example.com/api/v1/budgets?category=3b1ea324-d438-4419-882a-2fc91d71772f"`           // Budgets for this category
}

type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := httputil.RequestHost(c)

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name: model.Name,
			Type: model.Type,
		},
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.ID),
			Budgets:      fmt.Sprintf("%s/v1/budgets?category=%s", url, model.ID),
		},
	}
}

type CategoryResponse struct {
	Data  *Category `json:"data"`  // Data for the category
	Error *string   `json:"error"` // The error, if any occurred
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`       // List of categories
	Error      *string     `json:"error"`      // The error, if any occurred
	Pagination *Pagination `json:"pagination"` // Pagination information
}

type CategoryQueryFilter struct {
	Name   string `form:"name"`                       // By name
	Type   string `form:"type"`                       // By type (income or expense)
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first category returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() models.Category {
	return models.Category{
		Name: f.Name,
		Type: models.TransactionType(f.Type),
	}
}
