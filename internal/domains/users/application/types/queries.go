package types

// Documented defaults for the paginated listing.
const (
	DefaultPage    float64 = 1
	DefaultPerPage float64 = 2
)

// ListUsersQuery carries the parsed pagination parameters. Values stay as
// JSON-style numbers so fractional input behaves exactly like the wire form.
type ListUsersQuery struct {
	Page    float64
	PerPage float64
}
