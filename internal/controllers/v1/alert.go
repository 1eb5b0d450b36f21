package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hearthbudget/backend/internal/httputil"
	"github.com/hearthbudget/backend/internal/models"
	"github.com/hearthbudget/backend/internal/types"
	"golang.org/x/exp/slices"
)

// RegisterSpendingAlertRoutes registers the routes for spending alerts with
// the RouterGroup that is passed.
func RegisterSpendingAlertRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSpendingAlerts)
		r.GET("", GetSpendingAlerts)
		r.POST("", CreateSpendingAlerts)
	}

	// SpendingAlert with ID
	{
		r.OPTIONS("/:id", OptionsSpendingAlertDetail)
		r.GET("/:id", GetSpendingAlert)
		r.PATCH("/:id", UpdateSpendingAlert)
		r.DELETE("/:id", DeleteSpendingAlert)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SpendingAlerts
// @Success		204
// @Router			/v1/alerts [options]
func OptionsSpendingAlerts(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SpendingAlerts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/alerts/{id} [options]
func OptionsSpendingAlertDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.SpendingAlert{})
}

// @Summary		Get alert
// @Description	Returns a specific spending alert
// @Tags			SpendingAlerts
// @Produce		json
// @Success		200	{object}	SpendingAlertResponse
// @Failure		400	{object}	SpendingAlertResponse
// @Failure		404	{object}	SpendingAlertResponse
// @Failure		500	{object}	SpendingAlertResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/alerts/{id} [get]
func GetSpendingAlert(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpendingAlertResponse{
			Error: &e,
		})
		return
	}

	var alert models.SpendingAlert
	err = models.DB.First(&alert, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpendingAlertResponse{
			Error: &e,
		})
		return
	}

	data := newSpendingAlert(c, alert)
	c.JSON(http.StatusOK, SpendingAlertResponse{Data: &data})
}

// @Summary		Get alerts
// @Description	Returns a list of spending alerts
// @Tags			SpendingAlerts
// @Produce		json
// @Success		200	{object}	SpendingAlertListResponse
// @Failure		400	{object}	SpendingAlertListResponse
// @Failure		500	{object}	SpendingAlertListResponse
// @Router			/v1/alerts [get]
// @Param			scope		query	string	false	"Filter by scope ID"
// @Param			category	query	string	false	"Filter by watched category ID"
// @Param			name		query	string	false	"Filter by name"
// @Param			note		query	string	false	"Filter by note"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			period		query	string	false	"Filter by period"
// @Param			active		query	bool	false	"Is the alert evaluated?"
// @Param			offset		query	uint	false	"The offset of the first alert returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of alerts to return. Defaults to 50."
func GetSpendingAlerts(c *gin.Context) {
	var filter SpendingAlertQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, SpendingAlertListResponse{
			Error: &e,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()
	q := models.DB.
		Order("name ASC").
		Where(&filterModel, queryFields...)

	if filter.Period != "" {
		period, err := types.ParsePeriod(filter.Period)
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, SpendingAlertListResponse{
				Error: &e,
			})
			return
		}
		q = q.Where("spending_alerts.period = ?", period)
	}

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 alerts and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var alerts []models.SpendingAlert
	err := q.Find(&alerts).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpendingAlertListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpendingAlertListResponse{
			Error: &e,
		})
		return
	}

	data := make([]SpendingAlert, 0, len(alerts))
	for _, alert := range alerts {
		data = append(data, newSpendingAlert(c, alert))
	}

	c.JSON(http.StatusOK, SpendingAlertListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Create alerts
// @Description	Creates new spending alerts
// @Tags			SpendingAlerts
// @Produce		json
// @Success		201	{object}	SpendingAlertCreateResponse
// @Failure		400	{object}	SpendingAlertCreateResponse
// @Failure		404	{object}	SpendingAlertCreateResponse
// @Failure		500	{object}	SpendingAlertCreateResponse
// @Param			alerts	body		[]SpendingAlertEditable	true	"SpendingAlerts"
// @Router			/v1/alerts [post]
func CreateSpendingAlerts(c *gin.Context) {
	var editables []SpendingAlertEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpendingAlertCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := SpendingAlertCreateResponse{}

	for _, editable := range editables {
		alert := editable.model()
		err := models.DB.Create(&alert).Error
		// Append the error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newSpendingAlert(c, alert)
		r.Data = append(r.Data, SpendingAlertResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Update alert
// @Description	Updates an existing spending alert. Only values to be updated need to be specified.
// @Tags			SpendingAlerts
// @Accept			json
// @Produce		json
// @Success		200		{object}	SpendingAlertResponse
// @Failure		400		{object}	SpendingAlertResponse
// @Failure		404		{object}	SpendingAlertResponse
// @Failure		500		{object}	SpendingAlertResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			alert	body		SpendingAlertEditable	true	"SpendingAlert"
// @Router			/v1/alerts/{id} [patch]
func UpdateSpendingAlert(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpendingAlertResponse{
			Error: &e,
		})
		return
	}

	var alert models.SpendingAlert
	err = models.DB.First(&alert, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpendingAlertResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, SpendingAlertEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpendingAlertResponse{
			Error: &e,
		})
		return
	}

	// Bind the update for the patch
	var update SpendingAlertEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpendingAlertResponse{
			Error: &e,
		})
		return
	}

	// If the limit set via the API request is not existent or
	// is 0, we use the old limit
	if update.LimitAmount.IsZero() {
		update.LimitAmount = alert.LimitAmount
	}

	err = models.DB.Model(&alert).Select("", updateFields...).Updates(update.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpendingAlertResponse{
			Error: &e,
		})
		return
	}

	data := newSpendingAlert(c, alert)
	c.JSON(http.StatusOK, SpendingAlertResponse{Data: &data})
}

// @Summary		Delete alert
// @Description	Deletes a spending alert
// @Tags			SpendingAlerts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/alerts/{id} [delete]
func DeleteSpendingAlert(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), httpError{
			Error: e,
		})
		return
	}

	var alert models.SpendingAlert
	err = models.DB.First(&alert, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&alert).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
