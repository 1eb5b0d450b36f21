package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hearthbudget/backend/internal/models"
	hb_uuid "github.com/hearthbudget/backend/internal/uuid"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	ScopeID  uuid.UUID              `json:"scopeId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the scope the category belongs to
	Name     string                 `json:"name" example:"Groceries" default:""`                    // Name of the category
	Type     models.TransactionType `json:"type" example:"EXPENSE" default:"EXPENSE"`               // Default transaction type for the category
	Note     string                 `json:"note" example:"Everything edible" default:""`            // Notes about the category
	Archived bool                   `json:"archived" example:"true" default:"false"`                // Is the category archived?
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		ScopeID:  editable.ScopeID,
		Name:     editable.Name,
		Type:     editable.Type,
		Note:     editable.Note,
		Archived: editable.Archived,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`                     // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=3b1ea324-d438-4419-882a-2fc91d71772f"` // Transactions for this category
}

// Category is the API representation of a category.
type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

// newCategory returns the API v1 representation of the resource
func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			ScopeID:  model.ScopeID,
			Name:     model.Name,
			Type:     model.Type,
			Note:     model.Note,
			Archived: model.Archived,
		},
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Data  []CategoryResponse `json:"data"`                                                          // List of the created categories or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	e := err.Error()
	r.Data = append(r.Data, CategoryResponse{Error: &e})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	ScopeID  hb_uuid.UUID           `form:"scope"`                      // By ID of the scope
	Name     string                 `form:"name" filterField:"false"`   // By name
	Type     models.TransactionType `form:"type"`                       // By category type
	Note     string                 `form:"note" filterField:"false"`   // By note
	Archived bool                   `form:"archived"`                   // Is the category archived?
	Search   string                 `form:"search" filterField:"false"` // By string in name or note
	Offset   uint                   `form:"offset" filterField:"false"` // The offset of the first category returned. Defaults to 0.
	Limit    int                    `form:"limit" filterField:"false"`  // Maximum number of categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() models.Category {
	return models.Category{
		ScopeID:  f.ScopeID.UUID,
		Type:     f.Type,
		Archived: f.Archived,
	}
}
