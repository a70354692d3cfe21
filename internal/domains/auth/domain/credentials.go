package domain

// Fixed demo credential pair and the token issued for it. The login endpoint
// is a simulation: no other pair ever authenticates.
const (
	DemoEmail    = "eve.holt@reqres.in"
	DemoPassword = "cityslicka"
	DemoToken    = "demo-token-123"
)

// Credentials is one login attempt.
type Credentials struct {
	Email    string
	Password string
}

// Match reports whether the pair equals the fixed demo credentials exactly.
func (c Credentials) Match() bool {
	return c.Email == DemoEmail && c.Password == DemoPassword
}
