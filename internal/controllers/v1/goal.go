package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hearthbudget/backend/internal/httputil"
	"github.com/hearthbudget/backend/internal/models"
	"github.com/hearthbudget/backend/internal/types"
	"golang.org/x/exp/slices"
)

// RegisterSavingsGoalRoutes registers the routes for savings goals with
// the RouterGroup that is passed.
func RegisterSavingsGoalRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSavingsGoals)
		r.GET("", GetSavingsGoals)
		r.POST("", CreateSavingsGoals)
	}

	// SavingsGoal with ID
	{
		r.OPTIONS("/:id", OptionsSavingsGoalDetail)
		r.GET("/:id", GetSavingsGoal)
		r.PATCH("/:id", UpdateSavingsGoal)
		r.DELETE("/:id", DeleteSavingsGoal)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SavingsGoals
// @Success		204
// @Router			/v1/goals [options]
func OptionsSavingsGoals(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SavingsGoals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [options]
func OptionsSavingsGoalDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.SavingsGoal{})
}

// @Summary		Get goal
// @Description	Returns a specific savings goal with its progress
// @Tags			SavingsGoals
// @Produce		json
// @Success		200	{object}	SavingsGoalResponse
// @Failure		400	{object}	SavingsGoalResponse
// @Failure		404	{object}	SavingsGoalResponse
// @Failure		500	{object}	SavingsGoalResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [get]
func GetSavingsGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	var goal models.SavingsGoal
	err = models.DB.First(&goal, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	progress, err := goal.Progress(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	data := newSavingsGoal(c, goal, progress)
	c.JSON(http.StatusOK, SavingsGoalResponse{Data: &data})
}

// @Summary		Get goals
// @Description	Returns a list of savings goals with their progress
// @Tags			SavingsGoals
// @Produce		json
// @Success		200	{object}	SavingsGoalListResponse
// @Failure		400	{object}	SavingsGoalListResponse
// @Failure		500	{object}	SavingsGoalListResponse
// @Router			/v1/goals [get]
// @Param			scope				query	string	false	"Filter by scope ID"
// @Param			name				query	string	false	"Filter by name"
// @Param			note				query	string	false	"Filter by note"
// @Param			search				query	string	false	"Search for this text in name and note"
// @Param			archived			query	bool	false	"Is the goal archived?"
// @Param			month				query	string	false	"Target month of the goal. Ignores exact time, matches on the month of the RFC3339 timestamp provided."
// @Param			fromMonth			query	string	false	"Goals for this and later months. Ignores exact time, matches on the month of the RFC3339 timestamp provided."
// @Param			untilMonth			query	string	false	"Goals for this and earlier months. Ignores exact time, matches on the month of the RFC3339 timestamp provided."
// @Param			amount				query	string	false	"Filter by target amount"
// @Param			amountLessOrEqual	query	string	false	"Target amount less than or equal to this"
// @Param			amountMoreOrEqual	query	string	false	"Target amount more than or equal to this"
// @Param			offset				query	uint	false	"The offset of the first goal returned. Defaults to 0."
// @Param			limit				query	int		false	"Maximum number of goals to return. Defaults to 50."
func GetSavingsGoals(c *gin.Context) {
	var filter SavingsGoalQueryFilter

	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, SavingsGoalListResponse{
			Error: &e,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where, err := filter.model()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalListResponse{
			Error: &e,
		})
		return
	}

	q := models.DB.
		Order("date(savings_goals.target_month) ASC, savings_goals.name ASC").
		Where(&where, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 goals and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	if !where.TargetMonth.IsZero() {
		q = q.Where("savings_goals.target_month >= date(?)", where.TargetMonth).Where("savings_goals.target_month < date(?)", where.TargetMonth.AddDate(0, 1))
	}

	if filter.FromMonth != "" {
		fromMonth, e := types.ParseMonth(filter.FromMonth)
		if e != nil {
			s := e.Error()
			c.JSON(http.StatusBadRequest, SavingsGoalListResponse{
				Error: &s,
			})
			return
		}
		q = q.Where("savings_goals.target_month >= date(?)", fromMonth)
	}

	if filter.UntilMonth != "" {
		untilMonth, e := types.ParseMonth(filter.UntilMonth)
		if e != nil {
			s := e.Error()
			c.JSON(http.StatusBadRequest, SavingsGoalListResponse{
				Error: &s,
			})
			return
		}
		q = q.Where("savings_goals.target_month < date(?)", untilMonth.AddDate(0, 1))
	}

	if !filter.AmountLessOrEqual.IsZero() {
		q = q.Where("savings_goals.target_amount <= ?", filter.AmountLessOrEqual)
	}

	if !filter.AmountMoreOrEqual.IsZero() {
		q = q.Where("savings_goals.target_amount >= ?", filter.AmountMoreOrEqual)
	}

	var goals []models.SavingsGoal
	err = q.Find(&goals).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalListResponse{
			Error: &e,
		})
		return
	}

	data := make([]SavingsGoal, 0, len(goals))
	for _, goal := range goals {
		progress, err := goal.Progress(models.DB)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), SavingsGoalListResponse{
				Error: &e,
			})
			return
		}

		data = append(data, newSavingsGoal(c, goal, progress))
	}

	c.JSON(http.StatusOK, SavingsGoalListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Create goals
// @Description	Creates new savings goals
// @Tags			SavingsGoals
// @Produce		json
// @Success		201	{object}	SavingsGoalCreateResponse
// @Failure		400	{object}	SavingsGoalCreateResponse
// @Failure		404	{object}	SavingsGoalCreateResponse
// @Failure		500	{object}	SavingsGoalCreateResponse
// @Param			goals	body		[]SavingsGoalEditable	true	"SavingsGoals"
// @Router			/v1/goals [post]
func CreateSavingsGoals(c *gin.Context) {
	var editables []SavingsGoalEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := SavingsGoalCreateResponse{}

	for _, editable := range editables {
		goal := editable.model()
		err := models.DB.Create(&goal).Error
		// Append the error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		progress, err := goal.Progress(models.DB)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newSavingsGoal(c, goal, progress)
		r.Data = append(r.Data, SavingsGoalResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Update goal
// @Description	Updates an existing savings goal. Only values to be updated need to be specified.
// @Tags			SavingsGoals
// @Accept			json
// @Produce		json
// @Success		200		{object}	SavingsGoalResponse
// @Failure		400		{object}	SavingsGoalResponse
// @Failure		404		{object}	SavingsGoalResponse
// @Failure		500		{object}	SavingsGoalResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			goal	body		SavingsGoalEditable	true	"SavingsGoal"
// @Router			/v1/goals/{id} [patch]
func UpdateSavingsGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	var goal models.SavingsGoal
	err = models.DB.First(&goal, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, SavingsGoalEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	// Bind the update for the patch
	var update SavingsGoalEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	// If the target amount set via the API request is not existent or
	// is 0, we use the old target amount
	if update.TargetAmount.IsZero() {
		update.TargetAmount = goal.TargetAmount
	}

	err = models.DB.Model(&goal).Select("", updateFields...).Updates(update.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	progress, err := goal.Progress(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	data := newSavingsGoal(c, goal, progress)
	c.JSON(http.StatusOK, SavingsGoalResponse{Data: &data})
}

// @Summary		Delete goal
// @Description	Deletes a savings goal
// @Tags			SavingsGoals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [delete]
func DeleteSavingsGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), httpError{
			Error: e,
		})
		return
	}

	var goal models.SavingsGoal
	err = models.DB.First(&goal, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&goal).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
