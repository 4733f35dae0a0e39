package zone

import (
	"errors"
	"fmt"

	"github.com/qdm12/gandyn/internal/models"
)

var (
	ErrNoMatchingRecord     = errors.New("no record matching filter")
	ErrRecordValueMalformed = errors.New("record value is not an IPv4 address")
	ErrRolledBack           = errors.New("zone version rolled back")
)

// RollbackError is returned when a staged zone version was discarded.
// Cause is the error which triggered the rollback, and CleanupErr is
// set if deleting the staged version failed as well.
type RollbackError struct {
	Version    models.ZoneVersion
	Cause      error
	CleanupErr error
}

func (e *RollbackError) Error() string {
	s := fmt.Sprintf("%s: version %d: %s", ErrRolledBack, e.Version, e.Cause)
	if e.CleanupErr != nil {
		s += "; deleting version failed: " + e.CleanupErr.Error()
	}
	return s
}

func (e *RollbackError) Is(target error) bool {
	return target == ErrRolledBack //nolint:errorlint,goerr113
}

func (e *RollbackError) Unwrap() []error {
	if e.CleanupErr == nil {
		return []error{e.Cause}
	}
	return []error{e.Cause, e.CleanupErr}
}
