package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/hearthbudget/backend/internal/controllers/v1"
	"github.com/hearthbudget/backend/internal/models"
	"github.com/hearthbudget/backend/test"
	"github.com/stretchr/testify/assert"
)

func createTestCategory(t *testing.T, c v1.CategoryEditable, expectedStatus ...int) v1.CategoryResponse {
	if c.ScopeID == uuid.Nil {
		c.ScopeID = createTestScope(t, v1.ScopeEditable{Name: "Testing scope"}).Data.ID
	}

	if c.Name == "" {
		c.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.CategoryEditable{c}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/categories", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var category v1.CategoryCreateResponse
	test.DecodeResponse(t, &r, &category)

	if r.Code == http.StatusCreated {
		return category.Data[0]
	}

	return v1.CategoryResponse{}
}

// TestCategoriesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestCategoriesDBClosed() {
	s := createTestScope(suite.T(), v1.ScopeEditable{})

	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestCategory(t, v1.CategoryEditable{ScopeID: s.Data.ID}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/categories", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.CategoryListResponse
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

// TestCategoriesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestCategoriesOptions() {
	tests := []struct {
		name   string
		id     string // path at the categories endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Category with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Category exists", createTestCategory(suite.T(), v1.CategoryEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/categories", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestCategoriesGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestCategoriesGetSingle() {
	c := createTestCategory(suite.T(), v1.CategoryEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Category", c.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No Category with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/categories/%s", tt.id), "")

			var category v1.CategoryResponse
			test.DecodeResponse(t, &r, &category)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesGetFilter() {
	s1 := createTestScope(suite.T(), v1.ScopeEditable{})
	s2 := createTestScope(suite.T(), v1.ScopeEditable{})

	_ = createTestCategory(suite.T(), v1.CategoryEditable{
		Name:     "Category Name",
		Note:     "A note for this category",
		ScopeID:  s1.Data.ID,
		Archived: true,
	})

	_ = createTestCategory(suite.T(), v1.CategoryEditable{
		Name:    "Groceries",
		Note:    "For Groceries",
		ScopeID: s2.Data.ID,
	})

	_ = createTestCategory(suite.T(), v1.CategoryEditable{
		Name:    "Salary",
		Note:    "Income from employment",
		Type:    models.Income,
		ScopeID: s2.Data.ID,
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Scope 1", fmt.Sprintf("scope=%s", s1.Data.ID), 1},
		{"Scope Not Existing", "scope=c9e4ee7a-e702-4f92-b168-11a95b22c7aa", 0},
		{"Empty Note", "note=", 0},
		{"Empty Name", "name=", 0},
		{"Name & Note", "name=Category Name&note=A note for this category", 1},
		{"Fuzzy name", "name=a", 2},
		{"Fuzzy note", "note=Groceries", 1},
		{"Type EXPENSE", "type=EXPENSE", 2},
		{"Type INCOME", "type=INCOME", 1},
		{"Not archived", "archived=false", 2},
		{"Archived", "archived=true", 1},
		{"Search for 'for'", "search=for", 2},
		{"Offset 2", "offset=2", 1},
		{"Offset 0, limit 2", "offset=0&limit=2", 2},
		{"Limit 4", "limit=4", 3},
		{"Limit 0", "limit=0", 0},
		{"Limit -1", "limit=-1", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.CategoryListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("/v1/categories?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesCreateFails() {
	// Test category for uniqueness
	c := createTestCategory(suite.T(), v1.CategoryEditable{
		Name: "Unique Category Name for Scope",
	})

	tests := []struct {
		name     string
		body     any
		status   int                                             // expected HTTP status
		testFunc func(t *testing.T, c v1.CategoryCreateResponse) // tests to perform against the response
	}{
		{
			"Broken Body", `[{ "note": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, c v1.CategoryCreateResponse) {
				assert.Equal(t, "json: cannot unmarshal number into Go struct field CategoryEditable.note of type string", *c.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, c v1.CategoryCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *c.Error)
			},
		},
		{
			"No Scope",
			`[{ "note": "Some text" }]`,
			http.StatusNotFound,
			func(t *testing.T, c v1.CategoryCreateResponse) {
				assert.Equal(t, "there is no scope matching your query", *c.Data[0].Error)
			},
		},
		{
			"Non-existing Scope",
			`[{ "scopeId": "ea85ad1a-3679-4ced-b83b-89566c12ece9" }]`,
			http.StatusNotFound,
			func(t *testing.T, c v1.CategoryCreateResponse) {
				assert.Equal(t, "there is no scope matching your query", *c.Data[0].Error)
			},
		},
		{
			"Invalid type",
			[]v1.CategoryEditable{
				{
					ScopeID: c.Data.ScopeID,
					Name:    "Bad type",
					Type:    "TRANSFER",
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, c v1.CategoryCreateResponse) {
				assert.Equal(t, models.ErrCategoryTypeInvalid.Error(), *c.Data[0].Error)
			},
		},
		{
			"Duplicate name in Scope",
			[]v1.CategoryEditable{
				{
					ScopeID: c.Data.ScopeID,
					Name:    c.Data.Name,
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, c v1.CategoryCreateResponse) {
				assert.Equal(t, "the category name must be unique for the scope", *c.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/categories", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var c v1.CategoryCreateResponse
			test.DecodeResponse(t, &r, &c)

			if tt.testFunc != nil {
				tt.testFunc(t, c)
			}
		})
	}
}

// Verify that updating categories works as desired
func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	scope := createTestScope(suite.T(), v1.ScopeEditable{})
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Name of the category", ScopeID: scope.Data.ID})

	tests := []struct {
		name     string                                    // name of the test
		category map[string]any                            // the updates to perform. This is not a struct because that would set all fields on the request
		testFunc func(t *testing.T, c v1.CategoryResponse) // tests to perform against the updated category resource
	}{
		{
			"Name, Note",
			map[string]any{
				"name": "Another name",
				"note": "New note!",
			},
			func(t *testing.T, c v1.CategoryResponse) {
				assert.Equal(t, "New note!", c.Data.Note)
				assert.Equal(t, "Another name", c.Data.Name)
			},
		},
		{
			"Archived",
			map[string]any{
				"archived": true,
			},
			func(t *testing.T, c v1.CategoryResponse) {
				assert.True(t, c.Data.Archived)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, category.Data.Links.Self, tt.category)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var c v1.CategoryResponse
			test.DecodeResponse(t, &r, &c)

			if tt.testFunc != nil {
				tt.testFunc(t, c)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesUpdateFails() {
	tests := []struct {
		name   string
		id     string
		body   any
		status int // expected response status
	}{
		{"Invalid type", "", `{"name": 2}`, http.StatusBadRequest},
		{"Broken JSON", "", `{ "name": 2" }`, http.StatusBadRequest},
		{"Non-existing Category", uuid.New().String(), `{"name": "Not found"}`, http.StatusNotFound},
		{"Set Scope to uuid.Nil", "", v1.CategoryEditable{}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				category := createTestCategory(suite.T(), v1.CategoryEditable{
					Name: "New category",
					Note: "Auto-created for test",
				})

				tt.id = category.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodPatch, fmt.Sprintf("http://example.com/v1/categories/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestCategoriesDelete verifies all cases for category deletions.
func (suite *TestSuiteStandard) TestCategoriesDelete() {
	tests := []struct {
		name   string
		id     string
		status int // expected response status
	}{
		{"Success", "", http.StatusNoContent},
		{"Non-existing Category", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				c := createTestCategory(t, v1.CategoryEditable{})
				tt.id = c.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/categories/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestCategoriesGetSorted verifies that categories are sorted by name.
func (suite *TestSuiteStandard) TestCategoriesGetSorted() {
	scope := createTestScope(suite.T(), v1.ScopeEditable{})

	c1 := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Dining out", ScopeID: scope.Data.ID})
	c2 := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Utilities", ScopeID: scope.Data.ID})
	c3 := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries", ScopeID: scope.Data.ID})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var categories v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &categories)

	if assert.Len(suite.T(), categories.Data, 3, "Category list has wrong length") {
		assert.Equal(suite.T(), c1.Data.Name, categories.Data[0].Name)
		assert.Equal(suite.T(), c3.Data.Name, categories.Data[1].Name)
		assert.Equal(suite.T(), c2.Data.Name, categories.Data[2].Name)
	}
}
