package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hearthbudget/backend/internal/models"
	hb_uuid "github.com/hearthbudget/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	ScopeID uuid.UUID `json:"scopeId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the scope the transaction belongs to

	// ID of the category. May be omitted on creation when a match rule
	// assigns the category from the note.
	CategoryID uuid.UUID `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"`

	Note string `json:"note" example:"Lunch" default:""` // A note

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"14.03" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount of the transaction

	Type models.TransactionType `json:"type" example:"EXPENSE"`                       // Is the transaction income or an expense?
	Date time.Time              `json:"date" example:"1815-12-10T18:43:00.271152Z"`   // Date of the transaction. Defaults to the current time.
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		ScopeID:    editable.ScopeID,
		CategoryID: editable.CategoryID,
		Note:       editable.Note,
		Amount:     editable.Amount,
		Type:       editable.Type,
		Date:       editable.Date,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the API representation of a transaction.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			ScopeID:    model.ScopeID,
			CategoryID: model.CategoryID,
			Note:       model.Note,
			Amount:     model.Amount,
			Type:       model.Type,
			Date:       model.Date,
		},
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created transactions
}

func (r *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	e := err.Error()
	r.Data = append(r.Data, TransactionResponse{Error: &e})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	ScopeID           hb_uuid.UUID           `form:"scope"`                                 // ID of the scope
	CategoryID        hb_uuid.UUID           `form:"category"`                              // ID of the category
	Type              models.TransactionType `form:"type" filterField:"false"`              // Type of the transaction
	Note              string                 `form:"note" filterField:"false"`              // Note contains this string
	Date              time.Time              `form:"date" filterField:"false"`              // Exact date. Time is ignored.
	FromDate          time.Time              `form:"fromDate" filterField:"false"`          // Transactions at and after this date. Time is ignored.
	UntilDate         time.Time              `form:"untilDate" filterField:"false"`         // Transactions before and at this date. Time is ignored.
	Amount            decimal.Decimal        `form:"amount"`                                // Exact amount
	AmountLessOrEqual decimal.Decimal        `form:"amountLessOrEqual" filterField:"false"` // Amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal        `form:"amountMoreOrEqual" filterField:"false"` // Amount more than or equal to this
	Offset            uint                   `form:"offset" filterField:"false"`            // The offset of the first transaction returned. Defaults to 0.
	Limit             int                    `form:"limit" filterField:"false"`             // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	// Date and string fields are not set since they are handled
	// explicitly in the controller function
	return models.Transaction{
		ScopeID:    f.ScopeID.UUID,
		CategoryID: f.CategoryID.UUID,
		Amount:     f.Amount,
	}
}
