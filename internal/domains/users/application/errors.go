package application

import "errors"

// ErrInvalidPagination rejects page or per_page values that do not parse to
// finite numbers greater than or equal to one.
var ErrInvalidPagination = errors.New("invalid pagination parameters")
