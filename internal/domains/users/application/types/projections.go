package types

import (
	"time"

	"github.com/qa-sandbox/go-demo-user-api/internal/domains/users/domain"
)

// Unchanged is echoed for update fields the caller omitted.
const Unchanged = "(unchanged)"

// UserPage is one pagination window over the store. Page and PerPage echo
// the query values as parsed.
type UserPage struct {
	Page       float64
	PerPage    float64
	Total      int
	TotalPages int
	Users      []domain.User
}

// CreatedUser echoes a successful create. Name and Job carry the trimmed
// request values, not the derived record fields.
type CreatedUser struct {
	ID        int64
	Name      string
	Job       string
	CreatedAt time.Time
}

// UpdateEcho is the canned update response; the stored record is untouched.
type UpdateEcho struct {
	Name      string
	Job       string
	UpdatedAt time.Time
}
