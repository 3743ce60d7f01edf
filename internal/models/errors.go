package models

import (
	"errors"
)

var (
	// ErrGeneral is returned when the database failed in a way that we cannot
	// explain to the end user. The details are logged.
	ErrGeneral = errors.New("an error occurred on the server during your request")

	// ErrResourceNotFound is wrapped with the resource name by the query callback.
	ErrResourceNotFound = errors.New("there is no")

	// Errors for database constraint violations. These are detected by the
	// create and update callbacks, see database.go.
	ErrAmountNotPositive  = errors.New("expense amounts must be greater than zero")
	ErrDescriptionTooLong = errors.New("expense descriptions must not be longer than 255 characters")
	ErrLimitNegative      = errors.New("budget limits must not be negative")
)
