package domain

import (
	"errors"
	"strings"
)

var (
	ErrInvalidName = errors.New("name must be at least 2 characters")
	ErrInvalidJob  = errors.New("job must be at least 2 characters")
)

// User is a stored user record. Job is empty on the seed records.
type User struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
	Job       string
}

// NormalizeName trims the value and enforces the minimum length.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return "", ErrInvalidName
	}
	return name, nil
}

// NormalizeJob trims the value and enforces the minimum length.
func NormalizeJob(job string) (string, error) {
	job = strings.TrimSpace(job)
	if len(job) < 2 {
		return "", ErrInvalidJob
	}
	return job, nil
}

// NewUserFromName derives a full record from a display name. The first
// whitespace-separated field becomes the first name, the remainder the last
// name, and the email joins the lowercased fields with dots on the demo
// domain. The identifier is left unset for the store to assign.
func NewUserFromName(name, job string) (*User, error) {
	name, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}
	job, err = NormalizeJob(job)
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(name)
	user := &User{
		Email:     strings.ToLower(strings.Join(fields, ".")) + "@reqres.in",
		FirstName: fields[0],
		LastName:  strings.Join(fields[1:], " "),
		Job:       job,
	}
	return user, nil
}
