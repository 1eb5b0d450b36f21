package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/hearthbudget/backend/internal/httputil"
	"github.com/hearthbudget/backend/internal/models"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// resourceOptionsDetail returns the appropriate response for an HTTP
// OPTIONS request for a specific resource.
func resourceOptionsDetail[R models.Scope | models.Category | models.Transaction | models.SpendingAlert | models.SavingsGoal | models.MatchRule](c *gin.Context, resource R) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&resource, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// stringFilters applies the name, note and search query parameters to a
// list query. An explicitly empty parameter filters for the empty
// string instead of being ignored.
func stringFilters(db, q *gorm.DB, setFields []string, name, note, search string) *gorm.DB {
	if name != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", name))
	} else if slices.Contains(setFields, "Name") {
		q = q.Where("name = ''")
	}

	if note != "" {
		q = q.Where("note LIKE ?", fmt.Sprintf("%%%s%%", note))
	} else if slices.Contains(setFields, "Note") {
		q = q.Where("note = ''")
	}

	if search != "" {
		q = q.Where(
			db.Where("note LIKE ?", fmt.Sprintf("%%%s%%", search)).
				Or("name LIKE ?", fmt.Sprintf("%%%s%%", search)),
		)
	}

	return q
}
