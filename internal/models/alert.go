package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hearthbudget/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SpendingAlert is a recurring spending limit. A nil CategoryID means
// the limit applies to expenses across all categories of the scope.
type SpendingAlert struct {
	DefaultModel
	Scope       Scope `json:"-"`
	ScopeID     uuid.UUID
	Category    *Category `json:"-"`
	CategoryID  *uuid.UUID
	Name        string
	Note        string
	LimitAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Period      types.Period
	Active      bool
}

// AlertStatus is the evaluated state of one active alert: the spending
// accumulated in the alert's current period and the share of the limit
// it uses. PercentageUsed is not clamped, values above 100 mean the
// limit was exceeded.
type AlertStatus struct {
	Alert           SpendingAlert   `json:"alert"`                              // The alert that was evaluated
	CurrentSpending decimal.Decimal `json:"currentSpending" example:"250"`     // Expenses accumulated in the current period
	PercentageUsed  decimal.Decimal `json:"percentageUsed" example:"125.7343"` // Share of the limit used, unclamped
}

func (a *SpendingAlert) BeforeCreate(tx *gorm.DB) error {
	_ = a.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*SpendingAlert)
	return a.checkIntegrity(tx, *toSave)
}

func (a *SpendingAlert) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(SpendingAlert)

	if tx.Statement.Changed("ScopeID") || tx.Statement.Changed("CategoryID") {
		err := a.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	if tx.Statement.Changed("Period") && !toSave.Period.Valid() {
		return ErrAlertPeriodInvalid
	}

	return nil
}

func (a *SpendingAlert) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Note = strings.TrimSpace(a.Note)

	if !a.Period.Valid() {
		return ErrAlertPeriodInvalid
	}

	return nil
}

func (a *SpendingAlert) AfterSave(_ *gorm.DB) error {
	if !a.LimitAmount.IsPositive() {
		return ErrAlertLimitNotPositive
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (a *SpendingAlert) checkIntegrity(tx *gorm.DB, toSave SpendingAlert) error {
	err := tx.First(&Scope{}, toSave.ScopeID).Error
	if err != nil {
		return err
	}

	if toSave.CategoryID != nil {
		return tx.First(&Category{}, *toSave.CategoryID).Error
	}

	return nil
}

// CheckAlerts evaluates all active alerts of the scope against the
// spending accumulated in each alert's current period, ending at the
// reference instant. Inactive alerts are not returned at all.
//
// An alert whose category no longer exists degrades to covering all
// categories instead of silently never matching.
func (s Scope) CheckAlerts(db *gorm.DB, now time.Time) ([]AlertStatus, error) {
	var alerts []SpendingAlert
	err := db.
		Where(&SpendingAlert{ScopeID: s.ID, Active: true}).
		Order("created_at ASC").
		Find(&alerts).Error
	if err != nil {
		return nil, err
	}

	statuses := make([]AlertStatus, 0, len(alerts))
	for _, alert := range alerts {
		window := PeriodWindow(alert.Period, now)

		categoryID := alert.CategoryID
		if categoryID != nil {
			err := db.First(&Category{}, *categoryID).Error
			if errors.Is(err, ErrResourceNotFound) {
				categoryID = nil
			} else if err != nil {
				return nil, err
			}
		}

		spending, err := sumTransactions(db, s.ID, window, Expense, categoryID)
		if err != nil {
			return nil, err
		}

		percentage := decimal.Zero
		if alert.LimitAmount.IsPositive() {
			percentage = spending.
				Div(alert.LimitAmount).
				Mul(decimal.NewFromInt(100))
		}

		statuses = append(statuses, AlertStatus{
			Alert:           alert,
			CurrentSpending: spending,
			PercentageUsed:  percentage,
		})
	}

	return statuses, nil
}
