package finanza

import (
	"errors"
	"fmt"
)

// ErrNotFound reports an operation on a transaction, account or debt id that
// is not present in the ledger.
var ErrNotFound = errors.New("not found")

// ValidationError rejects an operation before any state change: bad amount,
// missing account or category, transfer onto itself.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return "invalid operation: " + e.Reason }

func invalidf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ReferenceError blocks the deletion of an account that transactions still
// point at, as source or destination. Count tells the caller how many.
type ReferenceError struct {
	AccountID string
	Count     int
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("account %q is referenced by %d transaction(s)", e.AccountID, e.Count)
}

// StaleRateError reports a conversion that was required but had no positive
// exchange rate to work with. The engine never falls back to 1:1.
type StaleRateError struct {
	From, To string
}

func (e *StaleRateError) Error() string {
	return fmt.Sprintf("no positive exchange rate available to convert %s to %s", e.From, e.To)
}
