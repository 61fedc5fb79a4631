// Package auth wraps the identity the data store's auth layer yields into a
// narrow session capability, so nothing outside the HTTP boundary touches
// raw auth records.
package auth

import (
	"github.com/pocketbase/pocketbase/core"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
)

type User struct {
	ID    string
	Email string
	Role  Role
}

// Session is the capability handed to components that need identity or a
// role check. A session with no authenticated user returns nil/false.
type Session interface {
	CurrentUser() *User
	HasRole(role Role) bool
}

// Authorize reports whether user may act with the required role. Admins
// pass every gate; everyone else needs an exact role match. A nil user is
// never authorized.
func Authorize(user *User, required Role) bool {
	if user == nil {
		return false
	}
	if user.Role == RoleAdmin {
		return true
	}
	return user.Role == required
}

// RecordSession adapts an authenticated store record (possibly nil) into a
// Session. Superusers of the backing store count as admins.
type RecordSession struct {
	record *core.Record
}

func NewRecordSession(record *core.Record) *RecordSession {
	return &RecordSession{record: record}
}

func (s *RecordSession) CurrentUser() *User {
	if s.record == nil {
		return nil
	}

	role := Role(s.record.GetString("role"))
	if s.record.IsSuperuser() {
		role = RoleAdmin
	}
	if role == "" {
		role = RoleUser
	}

	return &User{
		ID:    s.record.Id,
		Email: s.record.GetString("email"),
		Role:  role,
	}
}

func (s *RecordSession) HasRole(role Role) bool {
	return Authorize(s.CurrentUser(), role)
}
