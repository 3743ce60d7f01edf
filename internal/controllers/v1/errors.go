package v1

import (
	"errors"
	"net/http"

	"github.com/spendledger/backend/internal/importer"
	"github.com/spendledger/backend/internal/ledger"
	"github.com/spendledger/backend/internal/models"
)

// status returns the appropriate HTTP status for an error from the core
// packages.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, ledger.ErrValidation) || errors.Is(err, importer.ErrFormat) {
		return http.StatusBadRequest
	}

	return http.StatusBadRequest
}

// Import errors
var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following types")
)
