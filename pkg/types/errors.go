package types

import "errors"

// Domain errors for document validation
var (
	ErrMissingRoute = errors.New("document has no route identifier")
)
