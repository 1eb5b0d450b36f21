package models_test

import (
	"time"

	"github.com/hearthbudget/backend/internal/models"
	"github.com/hearthbudget/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestMonthlyBalanceEmpty() {
	scope := suite.createTestScope(models.Scope{})

	balance, err := scope.MonthlyBalance(models.DB, types.NewMonth(2026, 5))
	assert.Nil(suite.T(), err)

	assert.True(suite.T(), balance.Income.IsZero(), "income is %s", balance.Income)
	assert.True(suite.T(), balance.Expenses.IsZero(), "expenses are %s", balance.Expenses)
	assert.True(suite.T(), balance.Balance.IsZero(), "balance is %s", balance.Balance)
}

func (suite *TestSuiteStandard) TestMonthlyBalance() {
	scope := suite.createTestScope(models.Scope{})
	category := suite.createTestCategory(models.Category{ScopeID: scope.ID})

	_ = suite.createTestTransaction(models.Transaction{
		ScopeID:    scope.ID,
		CategoryID: category.ID,
		Type:       models.Income,
		Amount:     decimal.NewFromFloat(2317.34),
		Date:       time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC),
	})
	_ = suite.createTestTransaction(models.Transaction{
		ScopeID:    scope.ID,
		CategoryID: category.ID,
		Type:       models.Expense,
		Amount:     decimal.NewFromFloat(2000),
		Date:       time.Date(2026, 5, 15, 12, 0, 0, 0, time.UTC),
	})
	_ = suite.createTestTransaction(models.Transaction{
		ScopeID:    scope.ID,
		CategoryID: category.ID,
		Type:       models.Expense,
		Amount:     decimal.NewFromFloat(133.71),
		Date:       time.Date(2026, 5, 31, 23, 0, 0, 0, time.UTC),
	})

	// A transaction in the next month must not be counted
	_ = suite.createTestTransaction(models.Transaction{
		ScopeID:    scope.ID,
		CategoryID: category.ID,
		Type:       models.Expense,
		Amount:     decimal.NewFromFloat(500),
		Date:       time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	balance, err := scope.MonthlyBalance(models.DB, types.NewMonth(2026, 5))
	assert.Nil(suite.T(), err)

	assert.True(suite.T(), balance.Income.Equal(decimal.NewFromFloat(2317.34)), "income is %s", balance.Income)
	assert.True(suite.T(), balance.Expenses.Equal(decimal.NewFromFloat(2133.71)), "expenses are %s", balance.Expenses)
	assert.True(suite.T(), balance.Balance.Equal(decimal.NewFromFloat(183.63)), "balance is %s", balance.Balance)
}

func (suite *TestSuiteStandard) TestMonthlyBalanceNegative() {
	scope := suite.createTestScope(models.Scope{})
	category := suite.createTestCategory(models.Category{ScopeID: scope.ID})

	_ = suite.createTestTransaction(models.Transaction{
		ScopeID:    scope.ID,
		CategoryID: category.ID,
		Type:       models.Expense,
		Amount:     decimal.NewFromFloat(70),
		Date:       time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
	})

	balance, err := scope.MonthlyBalance(models.DB, types.NewMonth(2026, 5))
	assert.Nil(suite.T(), err)

	assert.True(suite.T(), balance.Balance.Equal(decimal.NewFromFloat(-70)), "balance is %s", balance.Balance)
}

func (suite *TestSuiteStandard) TestMonthlyBalanceOtherScopeExcluded() {
	scope := suite.createTestScope(models.Scope{})
	other := suite.createTestScope(models.Scope{})
	category := suite.createTestCategory(models.Category{ScopeID: other.ID})

	_ = suite.createTestTransaction(models.Transaction{
		ScopeID:    other.ID,
		CategoryID: category.ID,
		Type:       models.Income,
		Amount:     decimal.NewFromFloat(1000),
		Date:       time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
	})

	balance, err := scope.MonthlyBalance(models.DB, types.NewMonth(2026, 5))
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), balance.Income.IsZero(), "income is %s", balance.Income)
}

func (suite *TestSuiteStandard) TestCategoryExpensesEmpty() {
	scope := suite.createTestScope(models.Scope{})

	expenses, err := scope.CategoryExpenses(models.DB, types.NewMonth(2026, 5))
	assert.Nil(suite.T(), err)
	assert.NotNil(suite.T(), expenses)
	assert.Len(suite.T(), expenses, 0)
}

func (suite *TestSuiteStandard) TestCategoryExpenses() {
	scope := suite.createTestScope(models.Scope{})
	groceries := suite.createTestCategory(models.Category{ScopeID: scope.ID, Name: "Groceries"})
	leisure := suite.createTestCategory(models.Category{ScopeID: scope.ID, Name: "Leisure"})

	_ = suite.createTestTransaction(models.Transaction{
		ScopeID:    scope.ID,
		CategoryID: groceries.ID,
		Type:       models.Expense,
		Amount:     decimal.NewFromFloat(60),
		Date:       time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC),
	})
	_ = suite.createTestTransaction(models.Transaction{
		ScopeID:    scope.ID,
		CategoryID: leisure.ID,
		Type:       models.Expense,
		Amount:     decimal.NewFromFloat(40),
		Date:       time.Date(2026, 5, 7, 0, 0, 0, 0, time.UTC),
	})

	// Income must not show up in the breakdown
	_ = suite.createTestTransaction(models.Transaction{
		ScopeID:    scope.ID,
		CategoryID: groceries.ID,
		Type:       models.Income,
		Amount:     decimal.NewFromFloat(5000),
		Date:       time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	})

	expenses, err := scope.CategoryExpenses(models.DB, types.NewMonth(2026, 5))
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), expenses, 2)

	// Ordered by total descending
	assert.Equal(suite.T(), "Groceries", expenses[0].CategoryName)
	assert.True(suite.T(), expenses[0].Total.Equal(decimal.NewFromFloat(60)), "total is %s", expenses[0].Total)
	assert.Equal(suite.T(), int64(60), expenses[0].Percentage)

	assert.Equal(suite.T(), "Leisure", expenses[1].CategoryName)
	assert.True(suite.T(), expenses[1].Total.Equal(decimal.NewFromFloat(40)), "total is %s", expenses[1].Total)
	assert.Equal(suite.T(), int64(40), expenses[1].Percentage)
}

func (suite *TestSuiteStandard) TestCategoryExpensesSingleCategory() {
	scope := suite.createTestScope(models.Scope{})
	category := suite.createTestCategory(models.Category{ScopeID: scope.ID})

	_ = suite.createTestTransaction(models.Transaction{
		ScopeID:    scope.ID,
		CategoryID: category.ID,
		Type:       models.Expense,
		Amount:     decimal.NewFromFloat(12.34),
		Date:       time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC),
	})

	expenses, err := scope.CategoryExpenses(models.DB, types.NewMonth(2026, 5))
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), expenses, 1)
	assert.Equal(suite.T(), int64(100), expenses[0].Percentage)
}

func (suite *TestSuiteStandard) TestCategoryExpensesRounding() {
	scope := suite.createTestScope(models.Scope{})
	a := suite.createTestCategory(models.Category{ScopeID: scope.ID, Name: "a"})
	b := suite.createTestCategory(models.Category{ScopeID: scope.ID, Name: "b"})
	c := suite.createTestCategory(models.Category{ScopeID: scope.ID, Name: "c"})

	for _, category := range []models.Category{a, b, c} {
		_ = suite.createTestTransaction(models.Transaction{
			ScopeID:    scope.ID,
			CategoryID: category.ID,
			Type:       models.Expense,
			Amount:     decimal.NewFromFloat(10),
			Date:       time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC),
		})
	}

	expenses, err := scope.CategoryExpenses(models.DB, types.NewMonth(2026, 5))
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), expenses, 3)

	// 100/3 rounds to 33 for every category, the sum does not have to
	// add up to exactly 100
	for _, expense := range expenses {
		assert.Equal(suite.T(), int64(33), expense.Percentage)
	}
}
