package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/hearthbudget/backend/internal/models"
)

// ScopeEditable represents all user configurable parameters
type ScopeEditable struct {
	Name     string `json:"name" example:"Miller family" default:""`          // Name of the scope
	Note     string `json:"note" example:"Shared household budget" default:""` // Notes about the scope
	Archived bool   `json:"archived" example:"true" default:"false"`          // Is the scope archived?
}

func (editable ScopeEditable) model() models.Scope {
	return models.Scope{
		Name:     editable.Name,
		Note:     editable.Note,
		Archived: editable.Archived,
	}
}

type ScopeLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/scopes/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                      // The scope itself
	Categories   string `json:"categories" example:"https://example.com/api/v1/categories?scope=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`      // Categories for this scope
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?scope=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`  // Transactions for this scope
	Alerts       string `json:"alerts" example:"https://example.com/api/v1/alerts?scope=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`              // Spending alerts for this scope
	Goals        string `json:"goals" example:"https://example.com/api/v1/goals?scope=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                // Savings goals for this scope
}

// Scope is the API representation of a scope.
type Scope struct {
	models.DefaultModel
	ScopeEditable
	Links ScopeLinks `json:"links"`
}

// newScope returns the API v1 representation of the resource
func newScope(c *gin.Context, model models.Scope) Scope {
	url := c.GetString(string(models.DBContextURL))

	return Scope{
		DefaultModel: model.DefaultModel,
		ScopeEditable: ScopeEditable{
			Name:     model.Name,
			Note:     model.Note,
			Archived: model.Archived,
		},
		Links: ScopeLinks{
			Self:         fmt.Sprintf("%s/v1/scopes/%s", url, model.ID),
			Categories:   fmt.Sprintf("%s/v1/categories?scope=%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?scope=%s", url, model.ID),
			Alerts:       fmt.Sprintf("%s/v1/alerts?scope=%s", url, model.ID),
			Goals:        fmt.Sprintf("%s/v1/goals?scope=%s", url, model.ID),
		},
	}
}

type ScopeListResponse struct {
	Data       []Scope     `json:"data"`                                                          // List of scopes
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ScopeCreateResponse struct {
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ScopeResponse `json:"data"`                                                          // List of the created scopes or their respective error
}

func (s *ScopeCreateResponse) appendError(err error, currentStatus int) int {
	e := err.Error()
	s.Data = append(s.Data, ScopeResponse{Error: &e})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ScopeResponse struct {
	Data  *Scope  `json:"data"`                                                          // Data for the scope
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ScopeQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // By name
	Note     string `form:"note" filterField:"false"`   // By note
	Archived bool   `form:"archived"`                   // Is the scope archived?
	Search   string `form:"search" filterField:"false"` // By string in name or note
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first scope returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of scopes to return. Defaults to 50.
}

func (f ScopeQueryFilter) model() models.Scope {
	return models.Scope{
		Archived: f.Archived,
	}
}
