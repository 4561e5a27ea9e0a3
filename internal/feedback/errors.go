package feedback

import "fmt"

// InvalidInputError indicates a malformed inbound request, rejected before
// any generation call is made. Distinct from upstream generation errors so
// the boundary layer can map it to a client error.
type InvalidInputError struct {
	Field string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("missing or empty required field: %s", e.Field)
}
