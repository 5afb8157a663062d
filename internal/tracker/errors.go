// ABOUTME: Error kinds shared by the tracker components.
// ABOUTME: Rejections are validation no-ops; out-of-range indices are contract violations.
package tracker

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when a positional index does not address an entry.
var ErrIndexOutOfRange = errors.New("index out of range")

// Rejection reports input that failed validation. Nothing was written.
type Rejection struct {
	Reason string
}

func (r *Rejection) Error() string {
	return "rejected: " + r.Reason
}

func reject(format string, args ...any) error {
	return &Rejection{Reason: fmt.Sprintf(format, args...)}
}

// IsRejection reports whether err carries a *Rejection.
func IsRejection(err error) bool {
	var r *Rejection
	return errors.As(err, &r)
}

func outOfRange(index, length int) error {
	return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, length)
}
