package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hearthbudget/backend/internal/models"
	"github.com/hearthbudget/backend/internal/types"
	hb_uuid "github.com/hearthbudget/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// SpendingAlertEditable represents all user configurable parameters
type SpendingAlertEditable struct {
	ScopeID uuid.UUID `json:"scopeId" example:"3ead13cc-e27f-4b4f-afbf-d75d0a57b177"` // ID of the scope the alert belongs to

	// ID of the category the alert watches. If nil, the alert watches
	// all expenses of the scope.
	CategoryID *uuid.UUID `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"`

	Name string `json:"name" example:"Groceries guard" default:""` // Name of the alert
	Note string `json:"note" example:"Monthly grocery ceiling" default:""` // A note

	LimitAmount decimal.Decimal `json:"limitAmount" example:"400" minimum:"0.00000001" multipleOf:"0.00000001"` // The spending limit. Must be positive.
	Period      types.Period    `json:"period" example:"MONTHLY" enums:"DAILY,WEEKLY,MONTHLY"`                  // The period the spending is summed over
	Active      bool            `json:"active" example:"true" default:"false"`                                  // Is the alert evaluated?
}

// model returns the database resource for the API representation of the editable fields
func (editable SpendingAlertEditable) model() models.SpendingAlert {
	return models.SpendingAlert{
		ScopeID:     editable.ScopeID,
		CategoryID:  editable.CategoryID,
		Name:        editable.Name,
		Note:        editable.Note,
		LimitAmount: editable.LimitAmount,
		Period:      editable.Period,
		Active:      editable.Active,
	}
}

type SpendingAlertLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/alerts/b73f8f5c-f2b6-421c-bb4a-b2b4f80b5b73"` // The alert itself
}

// SpendingAlert is the API representation of a spending alert.
type SpendingAlert struct {
	models.DefaultModel
	SpendingAlertEditable
	Links SpendingAlertLinks `json:"links"`
}

// newSpendingAlert returns the API v1 representation of the resource
func newSpendingAlert(c *gin.Context, model models.SpendingAlert) SpendingAlert {
	url := c.GetString(string(models.DBContextURL))

	return SpendingAlert{
		DefaultModel: model.DefaultModel,
		SpendingAlertEditable: SpendingAlertEditable{
			ScopeID:     model.ScopeID,
			CategoryID:  model.CategoryID,
			Name:        model.Name,
			Note:        model.Note,
			LimitAmount: model.LimitAmount,
			Period:      model.Period,
			Active:      model.Active,
		},
		Links: SpendingAlertLinks{
			Self: fmt.Sprintf("%s/v1/alerts/%s", url, model.ID),
		},
	}
}

type SpendingAlertListResponse struct {
	Data       []SpendingAlert `json:"data"`                                                          // List of alerts
	Error      *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination     `json:"pagination"`                                                    // Pagination information
}

type SpendingAlertCreateResponse struct {
	Error *string                 `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []SpendingAlertResponse `json:"data"`                                                          // List of created alerts
}

func (r *SpendingAlertCreateResponse) appendError(err error, currentStatus int) int {
	e := err.Error()
	r.Data = append(r.Data, SpendingAlertResponse{Error: &e})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type SpendingAlertResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this alert
	Data  *SpendingAlert `json:"data"`                                                          // The alert data, if creation was successful
}

type SpendingAlertQueryFilter struct {
	ScopeID    hb_uuid.UUID `form:"scope"`                      // ID of the scope
	CategoryID hb_uuid.UUID `form:"category"`                   // ID of the watched category
	Name       string       `form:"name" filterField:"false"`   // Name of the alert. Fuzzy search.
	Note       string       `form:"note" filterField:"false"`   // Note. Fuzzy search.
	Search     string       `form:"search" filterField:"false"` // By string in name or note
	Period     string       `form:"period" filterField:"false"` // Period of the alert
	Active     bool         `form:"active"`                     // Is the alert evaluated?
	Offset     uint         `form:"offset" filterField:"false"` // The offset of the first alert returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`  // Maximum number of alerts to return. Defaults to 50.
}

func (f SpendingAlertQueryFilter) model() models.SpendingAlert {
	var categoryID *uuid.UUID
	if f.CategoryID.UUID != uuid.Nil {
		categoryID = &f.CategoryID.UUID
	}

	return models.SpendingAlert{
		ScopeID:    f.ScopeID.UUID,
		CategoryID: categoryID,
		Active:     f.Active,
	}
}
