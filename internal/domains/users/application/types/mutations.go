package types

// CreateUserInput captures the create request after JSON decoding.
type CreateUserInput struct {
	Name string
	Job  string
}

// UpdateUserInput targets an existing record. Nil fields were absent from
// the request body and echo back as Unchanged.
type UpdateUserInput struct {
	ID   int64
	Name *string
	Job  *string
}

// DeleteUserInput identifies the records to remove.
type DeleteUserInput struct {
	ID int64
}
