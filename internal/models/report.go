package models

import (
	"github.com/google/uuid"
	"github.com/hearthbudget/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthlyBalance is the income/expense/balance triple for one scope and
// calendar month. It is recomputed on every request, never persisted.
type MonthlyBalance struct {
	Income   decimal.Decimal `json:"income" example:"2317.34"`   // Sum of all income transactions in the month
	Expenses decimal.Decimal `json:"expenses" example:"2133.71"` // Sum of all expense transactions in the month
	Balance  decimal.Decimal `json:"balance" example:"183.63"`   // Income minus expenses, may be negative
}

// CategoryExpense is one category's share of a month's expenses.
type CategoryExpense struct {
	CategoryID   uuid.UUID       `json:"categoryId" example:"dafd9a74-6aeb-46b9-9f5a-cfca624fea85"` // ID of the category
	CategoryName string          `json:"categoryName" example:"Groceries"`                          // Name of the category
	Total        decimal.Decimal `json:"total" example:"133.70"`                                    // Sum of the category's expenses in the month
	Percentage   int64           `json:"percentage" example:"42"`                                   // Rounded share of the month's total expenses
}

// sumTransactions sums the amounts of all transactions of a scope
// within a window, optionally restricted to one transaction type and
// one category. A window with no matching transactions sums to zero.
//
// Window boundaries are compared in UTC since that is how transaction
// dates are stored.
func sumTransactions(db *gorm.DB, scopeID uuid.UUID, window Window, transactionType TransactionType, categoryID *uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	q := db.
		Table("transactions").
		Select("SUM(amount)").
		Where("transactions.deleted_at IS NULL").
		Where("transactions.scope_id = ?", scopeID).
		Where("transactions.date >= ? AND transactions.date < ?", window.Start.UTC(), window.End.UTC())

	if transactionType != "" {
		q = q.Where("transactions.type = ?", transactionType)
	}

	if categoryID != nil {
		q = q.Where("transactions.category_id = ?", *categoryID)
	}

	err := q.Find(&sum).Error
	if err != nil {
		return decimal.Zero, err
	}

	// If no transactions are found, the value is nil
	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}

// MonthlyBalance calculates the month-to-date income, expenses and
// balance for the scope.
func (s Scope) MonthlyBalance(db *gorm.DB, month types.Month) (MonthlyBalance, error) {
	window := MonthWindow(month)

	type typeSum struct {
		Type TransactionType
		Sum  decimal.Decimal
	}

	var sums []typeSum
	err := db.
		Table("transactions").
		Select("transactions.type AS type, SUM(amount) AS sum").
		Where("transactions.deleted_at IS NULL").
		Where("transactions.scope_id = ?", s.ID).
		Where("transactions.date >= ? AND transactions.date < ?", window.Start.UTC(), window.End.UTC()).
		Group("transactions.type").
		Find(&sums).Error
	if err != nil {
		return MonthlyBalance{}, err
	}

	balance := MonthlyBalance{
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
	}

	// Types without transactions in the window are absent from the
	// grouping and keep their zero value
	for _, sum := range sums {
		switch sum.Type {
		case Income:
			balance.Income = sum.Sum
		case Expense:
			balance.Expenses = sum.Sum
		}
	}

	balance.Balance = balance.Income.Sub(balance.Expenses)
	return balance, nil
}

// CategoryExpenses calculates the percentage-normalized expense
// breakdown by category for the scope and month.
//
// Entries are ordered by total descending, then category ID ascending
// as a deterministic tie-break. Percentages are rounded half away from
// zero, so the sum over all entries can differ from 100 by up to one
// per entry beyond the first.
func (s Scope) CategoryExpenses(db *gorm.DB, month types.Month) ([]CategoryExpense, error) {
	window := MonthWindow(month)

	expenses := make([]CategoryExpense, 0)
	err := db.
		Table("transactions").
		Select("categories.id AS category_id, categories.name AS category_name, SUM(transactions.amount) AS total").
		Joins("JOIN categories ON transactions.category_id = categories.id").
		Where("transactions.deleted_at IS NULL").
		Where("transactions.scope_id = ?", s.ID).
		Where("transactions.type = ?", Expense).
		Where("transactions.date >= ? AND transactions.date < ?", window.Start.UTC(), window.End.UTC()).
		Group("categories.id").
		Order("total DESC, categories.id ASC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	totalExpenses := decimal.Zero
	for _, expense := range expenses {
		totalExpenses = totalExpenses.Add(expense.Total)
	}

	if !totalExpenses.IsPositive() {
		return expenses, nil
	}

	for i := range expenses {
		expenses[i].Percentage = expenses[i].Total.
			Div(totalExpenses).
			Mul(decimal.NewFromInt(100)).
			Round(0).
			IntPart()
	}

	return expenses, nil
}
