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

type SavingsGoalEditable struct {
	ScopeID      uuid.UUID       `json:"scopeId" example:"3ead13cc-e27f-4b4f-afbf-d75d0a57b177"`                                                        // ID of the scope this goal belongs to
	Name         string          `json:"name" example:"New TV" default:""`                                                                              // Name of the goal
	Note         string          `json:"note" example:"We want to replace the old CRT TV soon-ish" default:""`                                          // Note about the goal
	TargetAmount decimal.Decimal `json:"targetAmount" example:"750" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"`       // How much money should be saved for this goal?
	TargetMonth  types.Month     `json:"targetMonth" example:"2026-07-01T00:00:00.000000Z"`                                                             // The month the goal should be reached
	Archived     bool            `json:"archived" example:"true" default:"false"`                                                                       // If this goal is still in use or not
}

// model returns the database resource for the API representation of the editable fields
func (editable SavingsGoalEditable) model() models.SavingsGoal {
	return models.SavingsGoal{
		ScopeID:      editable.ScopeID,
		Name:         editable.Name,
		Note:         editable.Note,
		TargetAmount: editable.TargetAmount,
		TargetMonth:  editable.TargetMonth,
		Archived:     editable.Archived,
	}
}

// SavingsGoalProgress reports how far along a goal is. Saved is the
// net balance of the scope up to the end of the target month.
type SavingsGoalProgress struct {
	Saved      decimal.Decimal `json:"saved" example:"320"`      // Amount saved towards the goal so far
	Percentage decimal.Decimal `json:"percentage" example:"42.6"` // Saved amount as a percentage of the target
}

type SavingsGoalLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"` // The goal itself
}

type SavingsGoal struct {
	models.DefaultModel
	SavingsGoalEditable
	Progress SavingsGoalProgress `json:"progress"`
	Links    SavingsGoalLinks    `json:"links"`
}

// newSavingsGoal returns the API v1 representation of the resource
func newSavingsGoal(c *gin.Context, model models.SavingsGoal, progress models.GoalProgress) SavingsGoal {
	url := c.GetString(string(models.DBContextURL))

	return SavingsGoal{
		DefaultModel: model.DefaultModel,
		SavingsGoalEditable: SavingsGoalEditable{
			ScopeID:      model.ScopeID,
			Name:         model.Name,
			Note:         model.Note,
			TargetAmount: model.TargetAmount,
			TargetMonth:  model.TargetMonth,
			Archived:     model.Archived,
		},
		Progress: SavingsGoalProgress{
			Saved:      progress.Saved,
			Percentage: progress.Percentage,
		},
		Links: SavingsGoalLinks{
			Self: fmt.Sprintf("%s/v1/goals/%s", url, model.ID),
		},
	}
}

type SavingsGoalListResponse struct {
	Data       []SavingsGoal `json:"data"`                                                          // List of resources
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type SavingsGoalCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []SavingsGoalResponse `json:"data"`                                                          // List of created resources
}

func (r *SavingsGoalCreateResponse) appendError(err error, currentStatus int) int {
	e := err.Error()
	r.Data = append(r.Data, SavingsGoalResponse{Error: &e})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type SavingsGoalResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *SavingsGoal `json:"data"`                                                          // The resource
}

type SavingsGoalQueryFilter struct {
	ScopeID           hb_uuid.UUID    `form:"scope"`                                 // ID of the scope
	Name              string          `form:"name" filterField:"false"`              // By name
	Note              string          `form:"note" filterField:"false"`              // By the note
	Search            string          `form:"search" filterField:"false"`            // By string in name or note
	Archived          bool            `form:"archived"`                              // Is the goal archived?
	Month             string          `form:"month" filterField:"false"`             // Exact target month
	FromMonth         string          `form:"fromMonth" filterField:"false"`         // Target month at or after this month
	UntilMonth        string          `form:"untilMonth" filterField:"false"`        // Target month at or before this month
	TargetAmount      decimal.Decimal `form:"amount"`                                // Exact target amount
	AmountLessOrEqual decimal.Decimal `form:"amountLessOrEqual" filterField:"false"` // Target amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal `form:"amountMoreOrEqual" filterField:"false"` // Target amount more than or equal to this
	Offset            uint            `form:"offset" filterField:"false"`            // The offset of the first goal returned. Defaults to 0.
	Limit             int             `form:"limit" filterField:"false"`             // Maximum number of goals to return. Defaults to 50.
}

func (f SavingsGoalQueryFilter) model() (models.SavingsGoal, error) {
	var month types.Month
	if f.Month != "" {
		m, err := types.ParseMonth(f.Month)
		if err != nil {
			return models.SavingsGoal{}, err
		}
		month = m
	}

	return models.SavingsGoal{
		ScopeID:      f.ScopeID.UUID,
		Archived:     f.Archived,
		TargetMonth:  month,
		TargetAmount: f.TargetAmount,
	}, nil
}
