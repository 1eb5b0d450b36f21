package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups transactions within a scope.
//
// The category type is informational: it is used by clients to offer
// sensible defaults, but transactions of either type may be filed under
// any category.
type Category struct {
	DefaultModel
	Scope    Scope     `json:"-"`
	ScopeID  uuid.UUID `gorm:"uniqueIndex:category_name_scope"`
	Name     string    `gorm:"uniqueIndex:category_name_scope"`
	Type     TransactionType
	Note     string
	Archived bool
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Category)
	return c.checkIntegrity(tx, *toSave)
}

func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Category)

	if tx.Statement.Changed("ScopeID") {
		err := c.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	if tx.Statement.Changed("Type") && !toSave.Type.Valid() {
		return ErrCategoryTypeInvalid
	}

	return nil
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	if c.Type == "" {
		c.Type = Expense
	}

	if !c.Type.Valid() {
		return ErrCategoryTypeInvalid
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (c *Category) checkIntegrity(tx *gorm.DB, toSave Category) error {
	return tx.First(&Scope{}, toSave.ScopeID).Error
}

// Transactions returns all transactions filed under this category.
func (c Category) Transactions(db *gorm.DB) []Transaction {
	var transactions []Transaction

	db.Where(&Transaction{CategoryID: c.ID}).Find(&transactions)
	return transactions
}
