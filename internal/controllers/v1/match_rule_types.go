package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hearthbudget/backend/internal/models"
	hb_uuid "github.com/hearthbudget/backend/internal/uuid"
)

// MatchRuleEditable represents all user configurable parameters
type MatchRuleEditable struct {
	ScopeID    uuid.UUID `json:"scopeId" example:"3ead13cc-e27f-4b4f-afbf-d75d0a57b177"`    // The scope this rule applies to
	CategoryID uuid.UUID `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"` // The category that is assigned on a match
	Priority   uint      `json:"priority" example:"3"`                                      // The priority of the match rule
	Match      string    `json:"match" example:"Bank*" default:""`                          // The matching applied to the transaction note. Supports globbing.
}

// model returns the database resource for the API representation of the editable fields
func (editable MatchRuleEditable) model() models.MatchRule {
	return models.MatchRule{
		ScopeID:    editable.ScopeID,
		CategoryID: editable.CategoryID,
		Priority:   editable.Priority,
		Match:      editable.Match,
	}
}

type MatchRuleLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/match-rules/95685c82-53c6-455d-b235-f49960b73b21"` // The match rule itself
}

// MatchRule is the API representation of a match rule.
type MatchRule struct {
	models.DefaultModel
	MatchRuleEditable
	Links MatchRuleLinks `json:"links"`
}

// newMatchRule returns the API v1 representation of the resource
func newMatchRule(c *gin.Context, model models.MatchRule) MatchRule {
	url := c.GetString(string(models.DBContextURL))

	return MatchRule{
		DefaultModel: model.DefaultModel,
		MatchRuleEditable: MatchRuleEditable{
			ScopeID:    model.ScopeID,
			CategoryID: model.CategoryID,
			Priority:   model.Priority,
			Match:      model.Match,
		},
		Links: MatchRuleLinks{
			Self: fmt.Sprintf("%s/v1/match-rules/%s", url, model.ID),
		},
	}
}

type MatchRuleListResponse struct {
	Data       []MatchRule `json:"data"`                                                          // List of match rules
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type MatchRuleCreateResponse struct {
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []MatchRuleResponse `json:"data"`                                                          // List of created match rules
}

func (r *MatchRuleCreateResponse) appendError(err error, currentStatus int) int {
	e := err.Error()
	r.Data = append(r.Data, MatchRuleResponse{Error: &e})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type MatchRuleResponse struct {
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this match rule
	Data  *MatchRule `json:"data"`                                                          // The match rule data, if creation was successful
}

type MatchRuleQueryFilter struct {
	ScopeID    hb_uuid.UUID `form:"scope"`                      // By the scope
	CategoryID hb_uuid.UUID `form:"category"`                   // By the category the rule assigns
	Priority   uint         `form:"priority"`                   // By the priority
	Match      string       `form:"match" filterField:"false"`  // By match
	Offset     uint         `form:"offset" filterField:"false"` // The offset of the first match rule returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`  // Maximum number of match rules to return. Defaults to 50.
}

func (f MatchRuleQueryFilter) model() models.MatchRule {
	return models.MatchRule{
		ScopeID:    f.ScopeID.UUID,
		CategoryID: f.CategoryID.UUID,
		Priority:   f.Priority,
	}
}
