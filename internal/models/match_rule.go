package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// MatchRule assigns a category to transactions whose note matches a
// glob pattern. Rules are evaluated in order of ascending priority
// number, the first match wins.
type MatchRule struct {
	DefaultModel
	Scope      Scope `json:"-"`
	ScopeID    uuid.UUID
	Category   Category `json:"-"`
	CategoryID uuid.UUID
	Priority   uint
	Match      string
}

func (m *MatchRule) BeforeCreate(tx *gorm.DB) error {
	_ = m.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*MatchRule)
	return m.checkIntegrity(tx, *toSave)
}

func (m *MatchRule) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(MatchRule)

	if tx.Statement.Changed("ScopeID") || tx.Statement.Changed("CategoryID") {
		err := m.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	if tx.Statement.Changed("Match") && strings.TrimSpace(toSave.Match) == "" {
		return ErrMatchRulePatternEmpty
	}

	return nil
}

func (m *MatchRule) BeforeSave(_ *gorm.DB) error {
	m.Match = strings.TrimSpace(m.Match)

	if m.Match == "" {
		return ErrMatchRulePatternEmpty
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (m *MatchRule) checkIntegrity(tx *gorm.DB, toSave MatchRule) error {
	err := tx.First(&Scope{}, toSave.ScopeID).Error
	if err != nil {
		return err
	}

	return tx.First(&Category{}, toSave.CategoryID).Error
}

// ResolveCategory returns the category assigned by the first matching
// rule of the scope, or nil when no rule matches the note.
func ResolveCategory(db *gorm.DB, scopeID uuid.UUID, note string) (*uuid.UUID, error) {
	var rules []MatchRule
	err := db.
		Where(&MatchRule{ScopeID: scopeID}).
		Order("priority ASC, match ASC").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}

	for _, rule := range rules {
		if glob.Glob(rule.Match, note) {
			id := rule.CategoryID
			return &id, nil
		}
	}

	return nil, nil
}
