package mapper

import userdomain "github.com/qa-sandbox/go-demo-user-api/internal/domains/users/domain"

// User is the transport-level user payload. Job is omitted when empty so the
// seed records serialize without it.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Job       string `json:"job,omitempty"`
}

// FromDomainUser converts a stored record into its transport shape.
func FromDomainUser(user userdomain.User) User {
	return User{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Job:       user.Job,
	}
}

// FromDomainUsers converts a record slice preserving store order.
func FromDomainUsers(users []userdomain.User) []User {
	result := make([]User, 0, len(users))
	for _, user := range users {
		result = append(result, FromDomainUser(user))
	}
	return result
}
