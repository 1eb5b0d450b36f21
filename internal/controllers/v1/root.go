package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hearthbudget/backend/internal/httputil"
	"github.com/hearthbudget/backend/internal/models"
)

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Scopes       string `json:"scopes" example:"https://example.com/api/v1/scopes"`               // URL of the scope endpoints
	Categories   string `json:"categories" example:"https://example.com/api/v1/categories"`       // URL of the category endpoints
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"`   // URL of the transaction endpoints
	Alerts       string `json:"alerts" example:"https://example.com/api/v1/alerts"`               // URL of the spending alert endpoints
	Goals        string `json:"goals" example:"https://example.com/api/v1/goals"`                 // URL of the savings goal endpoints
	MatchRules   string `json:"matchRules" example:"https://example.com/api/v1/match-rules"`      // URL of the match rule endpoints
	Reports      string `json:"reports" example:"https://example.com/api/v1/reports"`             // URL of the report endpoints
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	Response
// @Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Scopes:       url + "/v1/scopes",
			Categories:   url + "/v1/categories",
			Transactions: url + "/v1/transactions",
			Alerts:       url + "/v1/alerts",
			Goals:        url + "/v1/goals",
			MatchRules:   url + "/v1/match-rules",
			Reports:      url + "/v1/reports",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
