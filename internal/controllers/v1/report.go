package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hearthbudget/backend/internal/httputil"
	"github.com/hearthbudget/backend/internal/models"
	"github.com/hearthbudget/backend/internal/types"
	"github.com/shopspring/decimal"
)

type MonthlyBalanceResponse struct {
	Data  *MonthlyBalanceReport `json:"data"`  // The monthly balance
	Error *string               `json:"error"` // The error, if any occurred
}

// MonthlyBalanceReport is the income, expense and balance calculation
// for one scope and month.
type MonthlyBalanceReport struct {
	ScopeID  uuid.UUID       `json:"scopeId" example:"3ead13cc-e27f-4b4f-afbf-d75d0a57b177"` // ID of the scope
	Month    types.Month     `json:"month" example:"2026-05-01T00:00:00.000000Z"`            // The month the report is for
	Income   decimal.Decimal `json:"income" example:"2317.34"`                               // Sum of all income in the month
	Expenses decimal.Decimal `json:"expenses" example:"2133.71"`                             // Sum of all expenses in the month
	Balance  decimal.Decimal `json:"balance" example:"183.63"`                               // Income minus expenses
}

type CategoryExpensesResponse struct {
	Data  *CategoryExpensesReport `json:"data"`  // The category breakdown
	Error *string                 `json:"error"` // The error, if any occurred
}

// CategoryExpensesReport is the per-category expense breakdown for one
// scope and month, ordered by total descending.
type CategoryExpensesReport struct {
	ScopeID    uuid.UUID                `json:"scopeId" example:"3ead13cc-e27f-4b4f-afbf-d75d0a57b177"` // ID of the scope
	Month      types.Month              `json:"month" example:"2026-05-01T00:00:00.000000Z"`            // The month the report is for
	Categories []models.CategoryExpense `json:"categories"`                                             // Expenses per category
}

type AlertStatusResponse struct {
	Data  []AlertStatus `json:"data"`  // The evaluated alerts
	Error *string       `json:"error"` // The error, if any occurred
}

// AlertStatus is the evaluated state of one active spending alert.
// PercentageUsed is not clamped, values above 100 mean the limit is
// exceeded.
type AlertStatus struct {
	Alert           SpendingAlert   `json:"alert"`                             // The alert that was evaluated
	CurrentSpending decimal.Decimal `json:"currentSpending" example:"250"`     // Expenses accumulated in the alert's current period
	PercentageUsed  decimal.Decimal `json:"percentageUsed" example:"62.5"`     // Share of the limit used
}

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/monthly-balance", OptionsMonthlyBalance)
		r.GET("/monthly-balance", GetMonthlyBalance)
	}

	{
		r.OPTIONS("/category-expenses", OptionsCategoryExpenses)
		r.GET("/category-expenses", GetCategoryExpenses)
	}

	{
		r.OPTIONS("/alert-status", OptionsAlertStatus)
		r.GET("/alert-status", GetAlertStatus)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Reports
// @Success		204
// @Router			/v1/reports/monthly-balance [options]
func OptionsMonthlyBalance(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Reports
// @Success		204
// @Router			/v1/reports/category-expenses [options]
func OptionsCategoryExpenses(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Reports
// @Success		204
// @Router			/v1/reports/alert-status [options]
func OptionsAlertStatus(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Monthly balance
// @Description	Returns the income, expenses and balance of a scope for a month
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	MonthlyBalanceResponse
// @Failure		400		{object}	MonthlyBalanceResponse
// @Failure		404		{object}	MonthlyBalanceResponse
// @Failure		500		{object}	MonthlyBalanceResponse
// @Param			scope	query		string	true	"ID formatted as string"
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Router			/v1/reports/monthly-balance [get]
func GetMonthlyBalance(c *gin.Context) {
	month, scope, err := parseScopeMonthQuery(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyBalanceResponse{
			Error: &e,
		})
		return
	}

	balance, err := scope.MonthlyBalance(models.DB, month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyBalanceResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, MonthlyBalanceResponse{
		Data: &MonthlyBalanceReport{
			ScopeID:  scope.ID,
			Month:    month,
			Income:   balance.Income,
			Expenses: balance.Expenses,
			Balance:  balance.Balance,
		},
	})
}

// @Summary		Category expenses
// @Description	Returns the expenses of a scope for a month, broken down by category
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	CategoryExpensesResponse
// @Failure		400		{object}	CategoryExpensesResponse
// @Failure		404		{object}	CategoryExpensesResponse
// @Failure		500		{object}	CategoryExpensesResponse
// @Param			scope	query		string	true	"ID formatted as string"
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Router			/v1/reports/category-expenses [get]
func GetCategoryExpenses(c *gin.Context) {
	month, scope, err := parseScopeMonthQuery(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryExpensesResponse{
			Error: &e,
		})
		return
	}

	expenses, err := scope.CategoryExpenses(models.DB, month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryExpensesResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, CategoryExpensesResponse{
		Data: &CategoryExpensesReport{
			ScopeID:    scope.ID,
			Month:      month,
			Categories: expenses,
		},
	})
}

// @Summary		Alert status
// @Description	Evaluates all active spending alerts of a scope against the current period
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	AlertStatusResponse
// @Failure		400		{object}	AlertStatusResponse
// @Failure		404		{object}	AlertStatusResponse
// @Failure		500		{object}	AlertStatusResponse
// @Param			scope	query		string	true	"ID formatted as string"
// @Router			/v1/reports/alert-status [get]
func GetAlertStatus(c *gin.Context) {
	scope, err := parseScopeQuery(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AlertStatusResponse{
			Error: &e,
		})
		return
	}

	statuses, err := scope.CheckAlerts(models.DB, time.Now())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AlertStatusResponse{
			Error: &e,
		})
		return
	}

	data := make([]AlertStatus, 0, len(statuses))
	for _, s := range statuses {
		data = append(data, AlertStatus{
			Alert:           newSpendingAlert(c, s.Alert),
			CurrentSpending: s.CurrentSpending,
			PercentageUsed:  s.PercentageUsed,
		})
	}

	c.JSON(http.StatusOK, AlertStatusResponse{Data: data})
}

// parseScopeMonthQuery parses the scope and month query parameters and
// verifies that the scope exists.
func parseScopeMonthQuery(c *gin.Context) (types.Month, models.Scope, error) {
	var query struct {
		QueryMonth
		ScopeID string `form:"scope" example:"81b0c9ce-6fd3-4e1e-becc-106055898a2a"`
	}

	if err := c.BindQuery(&query); err != nil {
		return types.Month{}, models.Scope{}, err
	}

	if query.Month.IsZero() {
		return types.Month{}, models.Scope{}, errMonthNotSetInQuery
	}

	if query.Month.Year() < 1900 {
		return types.Month{}, models.Scope{}, errYearUnsupported
	}

	if query.ScopeID == "" {
		return types.Month{}, models.Scope{}, errScopeNotSetInQuery
	}

	scopeID, err := uuid.Parse(query.ScopeID)
	if err != nil {
		return types.Month{}, models.Scope{}, err
	}

	var scope models.Scope
	err = models.DB.First(&scope, "id = ?", scopeID).Error
	if err != nil {
		return types.Month{}, models.Scope{}, err
	}

	return types.MonthOf(query.Month), scope, nil
}

// parseScopeQuery parses the scope query parameter and verifies that
// the scope exists.
func parseScopeQuery(c *gin.Context) (models.Scope, error) {
	var query struct {
		ScopeID string `form:"scope" example:"81b0c9ce-6fd3-4e1e-becc-106055898a2a"`
	}

	if err := c.BindQuery(&query); err != nil {
		return models.Scope{}, err
	}

	if query.ScopeID == "" {
		return models.Scope{}, errScopeNotSetInQuery
	}

	scopeID, err := uuid.Parse(query.ScopeID)
	if err != nil {
		return models.Scope{}, err
	}

	var scope models.Scope
	err = models.DB.First(&scope, "id = ?", scopeID).Error
	if err != nil {
		return models.Scope{}, err
	}

	return scope, nil
}
