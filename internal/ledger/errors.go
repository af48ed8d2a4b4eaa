package ledger

import "fmt"

// ValidationError marks malformed or missing input. Mapped to HTTP 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError marks a missing wallet/transaction/invoice. Mapped to 404.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// AuthorizationError marks an owner mismatch on an existing resource.
// Mapped to HTTP 401.
type AuthorizationError struct{}

func (e *AuthorizationError) Error() string { return "not authorized" }

// ConsistencyError marks a ledger unit of work (event row + balance delta)
// that could not be committed as a whole. The enclosing database transaction
// has been rolled back, so no partial state is visible. Mapped to HTTP 500.
type ConsistencyError struct {
	Op  string
	Err error
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("ledger consistency: %s: %v", e.Op, e.Err)
}

func (e *ConsistencyError) Unwrap() error { return e.Err }
