package ledger

import (
	"errors"
	"fmt"
)

// ErrValidation is the base error for all input validation failures. The
// store checks input before anything is handed to the database, so none of
// these ever reach storage.
var ErrValidation = errors.New("validation failed")

var (
	ErrDateFormat         = fmt.Errorf("%w: the date must be a valid day in YYYY-MM-DD format", ErrValidation)
	ErrAmountNotPositive  = fmt.Errorf("%w: the amount must be greater than zero", ErrValidation)
	ErrCategoryUnknown    = fmt.Errorf("%w: the category is not part of the configured categories", ErrValidation)
	ErrDescriptionEmpty   = fmt.Errorf("%w: the description must not be empty", ErrValidation)
	ErrDescriptionTooLong = fmt.Errorf("%w: the description must not be longer than 255 characters", ErrValidation)
	ErrLimitNegative      = fmt.Errorf("%w: the budget limit must not be negative", ErrValidation)
)
