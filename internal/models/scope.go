package models

import (
	"strings"

	"gorm.io/gorm"
)

// Scope is the ownership boundary under which transactions, categories,
// alerts and goals are partitioned. A scope represents either a single
// user or a family group sharing its data.
//
// Who may act on a scope is decided by the authentication layer in
// front of this backend, not here.
type Scope struct {
	DefaultModel
	Name     string
	Note     string
	Archived bool
}

func (s *Scope) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	s.Note = strings.TrimSpace(s.Note)

	return nil
}
