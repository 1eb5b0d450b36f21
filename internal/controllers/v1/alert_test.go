package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/hearthbudget/backend/internal/controllers/v1"
	"github.com/hearthbudget/backend/internal/models"
	"github.com/hearthbudget/backend/internal/types"
	"github.com/hearthbudget/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func createTestSpendingAlert(t *testing.T, a v1.SpendingAlertEditable, expectedStatus ...int) v1.SpendingAlertResponse {
	if a.ScopeID == uuid.Nil {
		a.ScopeID = createTestScope(t, v1.ScopeEditable{Name: "Testing scope"}).Data.ID
	}

	if a.Name == "" {
		a.Name = uuid.NewString()
	}

	if a.LimitAmount.IsZero() {
		a.LimitAmount = decimal.NewFromFloat(400)
	}

	if a.Period == "" {
		a.Period = types.PeriodMonthly
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.SpendingAlertEditable{a}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/alerts", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.SpendingAlertCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.SpendingAlertResponse{}
}

// TestSpendingAlertsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestSpendingAlertsDBClosed() {
	s := createTestScope(suite.T(), v1.ScopeEditable{})

	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestSpendingAlert(t, v1.SpendingAlertEditable{ScopeID: s.Data.ID}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/alerts", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.SpendingAlertListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestSpendingAlertsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestSpendingAlertsOptions() {
	tests := []struct {
		name   string
		id     string // path at the alerts endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Alert with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Alert exists", createTestSpendingAlert(suite.T(), v1.SpendingAlertEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/alerts", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestSpendingAlertsGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestSpendingAlertsGetSingle() {
	a := createTestSpendingAlert(suite.T(), v1.SpendingAlertEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Alert", a.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No Alert with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/alerts/%s", tt.id), "")

			var alert v1.SpendingAlertResponse
			test.DecodeResponse(t, &r, &alert)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestSpendingAlertsGetFilter() {
	s1 := createTestScope(suite.T(), v1.ScopeEditable{})
	s2 := createTestScope(suite.T(), v1.ScopeEditable{})

	groceries := createTestCategory(suite.T(), v1.CategoryEditable{ScopeID: s1.Data.ID, Name: "Groceries"})
	groceriesID := groceries.Data.ID

	_ = createTestSpendingAlert(suite.T(), v1.SpendingAlertEditable{
		ScopeID:    s1.Data.ID,
		CategoryID: &groceriesID,
		Name:       "Groceries guard",
		Note:       "Monthly grocery ceiling",
		Period:     types.PeriodMonthly,
		Active:     true,
	})

	_ = createTestSpendingAlert(suite.T(), v1.SpendingAlertEditable{
		ScopeID: s1.Data.ID,
		Name:    "Daily spending",
		Period:  types.PeriodDaily,
	})

	_ = createTestSpendingAlert(suite.T(), v1.SpendingAlertEditable{
		ScopeID: s2.Data.ID,
		Name:    "Weekly allowance",
		Note:    "Pocket money",
		Period:  types.PeriodWeekly,
		Active:  true,
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Scope 1", fmt.Sprintf("scope=%s", s1.Data.ID), 2},
		{"Category", fmt.Sprintf("category=%s", groceriesID), 1},
		{"Fuzzy name", "name=ly", 2},
		{"Fuzzy note", "note=money", 1},
		{"Empty note", "note=", 1},
		{"Search", "search=GROCER", 1},
		{"Period MONTHLY", "period=MONTHLY", 1},
		{"Period WEEKLY", "period=WEEKLY", 1},
		{"Active", "active=true", 2},
		{"Not active", "active=false", 1},
		{"Offset 2", "offset=2", 1},
		{"Limit 2", "limit=2", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.SpendingAlertListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("/v1/alerts?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

// TestSpendingAlertsGetInvalidPeriod verifies that an unknown period query
// parameter returns an error instead of an empty list.
func (suite *TestSuiteStandard) TestSpendingAlertsGetInvalidPeriod() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/alerts?period=YEARLY", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestSpendingAlertsCreateFails() {
	scope := createTestScope(suite.T(), v1.ScopeEditable{})

	tests := []struct {
		name     string
		body     any
		status   int                                                  // expected HTTP status
		testFunc func(t *testing.T, r v1.SpendingAlertCreateResponse) // tests to perform against the response
	}{
		{
			"Broken Body", `[{ "name": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, r v1.SpendingAlertCreateResponse) {
				assert.Equal(t, "json: cannot unmarshal number into Go struct field SpendingAlertEditable.name of type string", *r.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, r v1.SpendingAlertCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *r.Error)
			},
		},
		{
			"Non-existing Scope",
			`[{ "scopeId": "ea85ad1a-3679-4ced-b83b-89566c12ece9", "limitAmount": 100, "period": "MONTHLY" }]`,
			http.StatusNotFound,
			func(t *testing.T, r v1.SpendingAlertCreateResponse) {
				assert.Equal(t, "there is no scope matching your query", *r.Data[0].Error)
			},
		},
		{
			"Limit not positive",
			[]v1.SpendingAlertEditable{
				{
					ScopeID: scope.Data.ID,
					Name:    "Zero limit",
					Period:  types.PeriodMonthly,
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, r v1.SpendingAlertCreateResponse) {
				assert.Equal(t, models.ErrAlertLimitNotPositive.Error(), *r.Data[0].Error)
			},
		},
		{
			"Invalid period",
			[]v1.SpendingAlertEditable{
				{
					ScopeID:     scope.Data.ID,
					Name:        "Bad period",
					LimitAmount: decimal.NewFromFloat(100),
					Period:      "YEARLY",
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, r v1.SpendingAlertCreateResponse) {
				assert.Equal(t, models.ErrAlertPeriodInvalid.Error(), *r.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/alerts", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.SpendingAlertCreateResponse
			test.DecodeResponse(t, &r, &response)

			if tt.testFunc != nil {
				tt.testFunc(t, response)
			}
		})
	}
}

// Verify that updating alerts works as desired
func (suite *TestSuiteStandard) TestSpendingAlertsUpdate() {
	alert := createTestSpendingAlert(suite.T(), v1.SpendingAlertEditable{
		Name:        "Original name",
		LimitAmount: decimal.NewFromFloat(250),
	})

	tests := []struct {
		name     string         // name of the test
		alert    map[string]any // the updates to perform. This is not a struct because that would set all fields on the request
		testFunc func(t *testing.T, r v1.SpendingAlertResponse) // tests to perform against the updated resource
	}{
		{
			"Name, Note",
			map[string]any{
				"name": "Another name",
				"note": "New note!",
			},
			func(t *testing.T, r v1.SpendingAlertResponse) {
				assert.Equal(t, "New note!", r.Data.Note)
				assert.Equal(t, "Another name", r.Data.Name)
			},
		},
		{
			"Activate",
			map[string]any{
				"active": true,
			},
			func(t *testing.T, r v1.SpendingAlertResponse) {
				assert.True(t, r.Data.Active)
			},
		},
		{
			"Limit zero keeps the old limit",
			map[string]any{
				"limitAmount": 0,
				"period":      "WEEKLY",
			},
			func(t *testing.T, r v1.SpendingAlertResponse) {
				assert.True(t, decimal.NewFromFloat(250).Equal(r.Data.LimitAmount), "Limit is %s", r.Data.LimitAmount)
				assert.Equal(t, types.PeriodWeekly, r.Data.Period)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, alert.Data.Links.Self, tt.alert)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var a v1.SpendingAlertResponse
			test.DecodeResponse(t, &r, &a)

			if tt.testFunc != nil {
				tt.testFunc(t, a)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestSpendingAlertsUpdateFails() {
	tests := []struct {
		name   string
		id     string
		body   any
		status int // expected response status
	}{
		{"Invalid type", "", `{"name": 2}`, http.StatusBadRequest},
		{"Broken JSON", "", `{ "name": 2" }`, http.StatusBadRequest},
		{"Non-existing Alert", uuid.New().String(), `{"name": "Not found"}`, http.StatusNotFound},
		{"Invalid period", "", `{"period": "YEARLY"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				alert := createTestSpendingAlert(suite.T(), v1.SpendingAlertEditable{})
				tt.id = alert.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodPatch, fmt.Sprintf("http://example.com/v1/alerts/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestSpendingAlertsDelete verifies all cases for alert deletions.
func (suite *TestSuiteStandard) TestSpendingAlertsDelete() {
	tests := []struct {
		name   string
		id     string
		status int // expected response status
	}{
		{"Success", "", http.StatusNoContent},
		{"Non-existing Alert", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				a := createTestSpendingAlert(t, v1.SpendingAlertEditable{})
				tt.id = a.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/alerts/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}
