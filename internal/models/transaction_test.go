package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/hearthbudget/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionTypeValid() {
	assert.True(suite.T(), models.Income.Valid())
	assert.True(suite.T(), models.Expense.Valid())
	assert.False(suite.T(), models.TransactionType("TRANSFER").Valid())
	assert.False(suite.T(), models.TransactionType("").Valid())
}

func (suite *TestSuiteStandard) TestTransactionTypeInvalid() {
	scope := suite.createTestScope(models.Scope{})
	category := suite.createTestCategory(models.Category{ScopeID: scope.ID})

	err := models.DB.Create(&models.Transaction{
		ScopeID:    scope.ID,
		CategoryID: category.ID,
		Type:       models.TransactionType("TRANSFER"),
		Amount:     decimal.NewFromFloat(10),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrTransactionTypeInvalid)
}

func (suite *TestSuiteStandard) TestTransactionAmountNegative() {
	scope := suite.createTestScope(models.Scope{})
	category := suite.createTestCategory(models.Category{ScopeID: scope.ID})

	err := models.DB.Create(&models.Transaction{
		ScopeID:    scope.ID,
		CategoryID: category.ID,
		Type:       models.Expense,
		Amount:     decimal.NewFromFloat(-10),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrTransactionAmountNegative)
}

func (suite *TestSuiteStandard) TestTransactionScopeMustExist() {
	scope := suite.createTestScope(models.Scope{})
	category := suite.createTestCategory(models.Category{ScopeID: scope.ID})

	err := models.DB.Create(&models.Transaction{
		ScopeID:    uuid.New(),
		CategoryID: category.ID,
		Type:       models.Expense,
		Amount:     decimal.NewFromFloat(10),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestTransactionCategoryMustExist() {
	scope := suite.createTestScope(models.Scope{})

	err := models.DB.Create(&models.Transaction{
		ScopeID:    scope.ID,
		CategoryID: uuid.New(),
		Type:       models.Expense,
		Amount:     decimal.NewFromFloat(10),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestTransactionDateDefaultsToNow() {
	scope := suite.createTestScope(models.Scope{})
	category := suite.createTestCategory(models.Category{ScopeID: scope.ID})

	transaction := suite.createTestTransaction(models.Transaction{
		ScopeID:    scope.ID,
		CategoryID: category.ID,
		Type:       models.Expense,
		Amount:     decimal.NewFromFloat(10),
	})

	assert.False(suite.T(), transaction.Date.IsZero())
	assert.WithinDuration(suite.T(), time.Now(), transaction.Date, time.Minute)
}

func (suite *TestSuiteStandard) TestTransactionDateStoredInUTC() {
	scope := suite.createTestScope(models.Scope{})
	category := suite.createTestCategory(models.Category{ScopeID: scope.ID})

	berlin, err := time.LoadLocation("Europe/Berlin")
	assert.Nil(suite.T(), err)

	transaction := suite.createTestTransaction(models.Transaction{
		ScopeID:    scope.ID,
		CategoryID: category.ID,
		Type:       models.Expense,
		Amount:     decimal.NewFromFloat(10),
		Date:       time.Date(2026, 5, 13, 10, 0, 0, 0, berlin),
	})

	assert.Equal(suite.T(), time.UTC, transaction.Date.Location())
	assert.True(suite.T(), transaction.Date.Equal(time.Date(2026, 5, 13, 8, 0, 0, 0, time.UTC)))
}

func (suite *TestSuiteStandard) TestTransactionTrimWhitespace() {
	scope := suite.createTestScope(models.Scope{})
	category := suite.createTestCategory(models.Category{ScopeID: scope.ID})

	transaction := suite.createTestTransaction(models.Transaction{
		ScopeID:    scope.ID,
		CategoryID: category.ID,
		Type:       models.Expense,
		Amount:     decimal.NewFromFloat(10),
		Note:       " Lunch ",
	})

	assert.Equal(suite.T(), "Lunch", transaction.Note)
}
