package models

import (
	"database/sql/driver"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Role is a closed set of account tags. Tags are compiled in, not stored as
// rows, so both roles exist before any gated check can run.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleTrainer  Role = "trainer"

	// RoleUnassigned is a classification result for accounts carrying no
	// tags. It is never persisted.
	RoleUnassigned Role = "unassigned"
)

// RoleSet is the set of tags held by one user. An account normally holds
// exactly one tag, but nothing in the schema forbids both; Classify defines
// what that means.
type RoleSet []Role

func (s RoleSet) Has(r Role) bool {
	for _, held := range s {
		if held == r {
			return true
		}
	}
	return false
}

// Classify reduces the tag set to the single role the application acts on.
// The trainer tag wins when both are present.
func (s RoleSet) Classify() Role {
	if s.Has(RoleTrainer) {
		return RoleTrainer
	}
	if s.Has(RoleCustomer) {
		return RoleCustomer
	}
	return RoleUnassigned
}

// Value stores the set as comma-joined text so the same column works on
// postgres and the sqlite test databases.
func (s RoleSet) Value() (driver.Value, error) {
	parts := make([]string, 0, len(s))
	for _, r := range s {
		parts = append(parts, string(r))
	}
	return strings.Join(parts, ","), nil
}

func (s *RoleSet) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case nil:
		*s = nil
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return errors.New("unsupported role set column type")
	}

	*s = nil
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*s = append(*s, Role(part))
		}
	}
	return nil
}

func (RoleSet) GormDataType() string {
	return "text"
}

// HasRole is the tag-membership predicate used by every listing and every
// ownership-scoped lookup. The delimiters keep one tag from matching inside
// another.
func HasRole(r Role) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("(',' || roles || ',') LIKE ?", "%,"+string(r)+",%")
	}
}
