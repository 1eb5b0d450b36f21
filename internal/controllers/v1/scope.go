package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hearthbudget/backend/internal/httputil"
	"github.com/hearthbudget/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterScopeRoutes registers the routes for scopes with
// the RouterGroup that is passed.
func RegisterScopeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsScopeList)
		r.GET("", GetScopes)
		r.POST("", CreateScopes)
	}

	// Scope with ID
	{
		r.OPTIONS("/:id", OptionsScopeDetail)
		r.GET("/:id", GetScope)
		r.PATCH("/:id", UpdateScope)
		r.DELETE("/:id", DeleteScope)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Scopes
// @Success		204
// @Router			/v1/scopes [options]
func OptionsScopeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Scopes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/scopes/{id} [options]
func OptionsScopeDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Scope{})
}

// @Summary		Create scopes
// @Description	Creates new scopes
// @Tags			Scopes
// @Produce		json
// @Success		201		{object}	ScopeCreateResponse
// @Failure		400		{object}	ScopeCreateResponse
// @Failure		500		{object}	ScopeCreateResponse
// @Param			scopes	body		[]ScopeEditable	true	"Scopes"
// @Router			/v1/scopes [post]
func CreateScopes(c *gin.Context) {
	var editables []ScopeEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ScopeCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ScopeCreateResponse{}

	for _, editable := range editables {
		scope := editable.model()

		err := models.DB.Create(&scope).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newScope(c, scope)
		r.Data = append(r.Data, ScopeResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get scopes
// @Description	Returns a list of scopes
// @Tags			Scopes
// @Produce		json
// @Success		200	{object}	ScopeListResponse
// @Failure		500	{object}	ScopeListResponse
// @Router			/v1/scopes [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			note		query	string	false	"Filter by note"
// @Param			archived	query	bool	false	"Is the scope archived?"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			offset		query	uint	false	"The offset of the first scope returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of scopes to return. Defaults to 50."
func GetScopes(c *gin.Context) {
	var filter ScopeQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()

	q := models.DB.
		Order("name ASC").
		Where(&filterModel, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 scopes and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var scopes []models.Scope
	err := q.Find(&scopes).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ScopeListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ScopeListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Scope, 0)
	for _, scope := range scopes {
		data = append(data, newScope(c, scope))
	}

	c.JSON(http.StatusOK, ScopeListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get scope
// @Description	Returns a specific scope
// @Tags			Scopes
// @Produce		json
// @Success		200	{object}	ScopeResponse
// @Failure		400	{object}	ScopeResponse
// @Failure		404	{object}	ScopeResponse
// @Failure		500	{object}	ScopeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/scopes/{id} [get]
func GetScope(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ScopeResponse{
			Error: &e,
		})
		return
	}

	var scope models.Scope
	err = models.DB.First(&scope, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ScopeResponse{
			Error: &e,
		})
		return
	}

	data := newScope(c, scope)
	c.JSON(http.StatusOK, ScopeResponse{Data: &data})
}

// @Summary		Update scope
// @Description	Updates an existing scope. Only values to be updated need to be specified.
// @Tags			Scopes
// @Accept			json
// @Produce		json
// @Success		200		{object}	ScopeResponse
// @Failure		400		{object}	ScopeResponse
// @Failure		404		{object}	ScopeResponse
// @Failure		500		{object}	ScopeResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			scope	body		ScopeEditable	true	"Scope"
// @Router			/v1/scopes/{id} [patch]
func UpdateScope(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ScopeResponse{
			Error: &e,
		})
		return
	}

	var scope models.Scope
	err = models.DB.First(&scope, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ScopeResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ScopeEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ScopeResponse{
			Error: &e,
		})
		return
	}

	var data ScopeEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ScopeResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&scope).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ScopeResponse{
			Error: &e,
		})
		return
	}

	r := newScope(c, scope)
	c.JSON(http.StatusOK, ScopeResponse{Data: &r})
}

// @Summary		Delete scope
// @Description	Deletes a scope
// @Tags			Scopes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/scopes/{id} [delete]
func DeleteScope(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var scope models.Scope
	err = models.DB.First(&scope, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&scope).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
