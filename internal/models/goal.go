package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hearthbudget/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SavingsGoal is a target amount the scope wants to have saved by the
// end of the target month.
type SavingsGoal struct {
	DefaultModel
	Scope        Scope `json:"-"`
	ScopeID      uuid.UUID
	Name         string
	Note         string
	TargetAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	TargetMonth  types.Month
	Archived     bool
}

// GoalProgress is the computed state of a savings goal.
type GoalProgress struct {
	Saved      decimal.Decimal `json:"saved" example:"1523.62"`     // Balance accumulated through the target month
	Percentage decimal.Decimal `json:"percentage" example:"76.181"` // Share of the target reached, unclamped
}

func (g *SavingsGoal) BeforeCreate(tx *gorm.DB) error {
	_ = g.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*SavingsGoal)
	return g.checkIntegrity(tx, *toSave)
}

func (g *SavingsGoal) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(SavingsGoal)

	if tx.Statement.Changed("ScopeID") {
		err := g.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

func (g *SavingsGoal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Note = strings.TrimSpace(g.Note)

	return nil
}

func (g *SavingsGoal) AfterSave(_ *gorm.DB) error {
	if !g.TargetAmount.IsPositive() {
		return ErrGoalTargetNotPositive
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (g *SavingsGoal) checkIntegrity(tx *gorm.DB, toSave SavingsGoal) error {
	return tx.First(&Scope{}, toSave.ScopeID).Error
}

// Progress calculates the balance accumulated from the beginning of
// recorded history through the end of the goal's target month, and the
// share of the target it reaches. The percentage is zero for a
// non-positive target and can be negative when expenses exceed income.
func (g SavingsGoal) Progress(db *gorm.DB) (GoalProgress, error) {
	window := Window{
		Start: time.Time{},
		End:   MonthWindow(g.TargetMonth).End,
	}

	income, err := sumTransactions(db, g.ScopeID, window, Income, nil)
	if err != nil {
		return GoalProgress{}, err
	}

	expenses, err := sumTransactions(db, g.ScopeID, window, Expense, nil)
	if err != nil {
		return GoalProgress{}, err
	}

	saved := income.Sub(expenses)

	percentage := decimal.Zero
	if g.TargetAmount.IsPositive() {
		percentage = saved.
			Div(g.TargetAmount).
			Mul(decimal.NewFromInt(100))
	}

	return GoalProgress{
		Saved:      saved,
		Percentage: percentage,
	}, nil
}
