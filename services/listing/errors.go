package listing

import (
	"errors"
	"fmt"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
)

// Sentinel errors, mapped to HTTP statuses at the controller boundary.
var (
	ErrNotFound      = errors.New("catalog item not found")
	ErrInvalidID     = errors.New("invalid catalog item id")
	ErrUpstream      = errors.New("upstream dependency failure")
	ErrConfiguration = errors.New("listing configuration error")
)

// ValidationError is a client-caused failure. Issues is set for payload
// validation and lists every failing field.
type ValidationError struct {
	Message string
	Issues  []models.FieldIssue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (%d issues)", e.Message, len(e.Issues))
}

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// upstream wraps a store/index/cache failure so callers can match ErrUpstream
// while the original error stays in the chain for logging.
func upstream(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrUpstream, err)
}
