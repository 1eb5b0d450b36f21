package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrCategoryNameNotUnique     = errors.New("the category name must be unique for the scope")
	ErrCategoryTypeInvalid       = errors.New("the category type must be INCOME or EXPENSE")
	ErrTransactionTypeInvalid    = errors.New("the transaction type must be INCOME or EXPENSE")
	ErrTransactionAmountNegative = errors.New("transaction amounts must not be negative")
	ErrAlertLimitNotPositive     = errors.New("alert limits must be larger than zero")
	ErrAlertPeriodInvalid        = errors.New("the alert period must be DAILY, WEEKLY or MONTHLY")
	ErrGoalTargetNotPositive     = errors.New("goal target amounts must be larger than zero")
	ErrMatchRulePatternEmpty     = errors.New("the match rule pattern must not be empty")
)
