package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType is the effect a transaction has on the scope's balance.
//
// swagger:enum TransactionType
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// Valid reports whether the type is one of the two known values.
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Transaction is a single dated income or expense record.
type Transaction struct {
	DefaultModel
	Scope      Scope `json:"-"`
	ScopeID    uuid.UUID
	Category   Category `json:"-"`
	CategoryID uuid.UUID
	Note       string
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Type       TransactionType
	Date       time.Time
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Transaction)
	return t.checkIntegrity(tx, *toSave)
}

func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Transaction)

	if tx.Statement.Changed("ScopeID") {
		err := tx.First(&Scope{}, toSave.ScopeID).Error
		if err != nil {
			return err
		}
	}

	if tx.Statement.Changed("CategoryID") {
		err := tx.First(&Category{}, toSave.CategoryID).Error
		if err != nil {
			return err
		}
	}

	if tx.Statement.Changed("Type") && !toSave.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	return nil
}

// BeforeSave normalizes the transaction and sets the timezone for the
// date to UTC. Reading the date back converts it to the reporting
// timezone where needed, storage is always UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Note = strings.TrimSpace(t.Note)

	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

func (t *Transaction) AfterSave(_ *gorm.DB) error {
	if t.Amount.IsNegative() {
		return ErrTransactionAmountNegative
	}

	return nil
}

// AfterFind updates the date to use UTC as timezone, not +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) error {
	_ = t.DefaultModel.AfterFind(tx)

	t.Date = t.Date.In(time.UTC)
	return nil
}

// checkIntegrity verifies references to other resources
func (t *Transaction) checkIntegrity(tx *gorm.DB, toSave Transaction) error {
	err := tx.First(&Scope{}, toSave.ScopeID).Error
	if err != nil {
		return err
	}

	return tx.First(&Category{}, toSave.CategoryID).Error
}
