// Package importer ingests CSV expense data into the ledger store.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spendledger/backend/internal/ledger"
	"github.com/spendledger/backend/internal/models"
)

// ErrFormat is returned when the source file is missing the required
// structure. No row is imported in that case.
var ErrFormat = errors.New("the CSV file does not have the required format")

// requiredHeaders are the column headers an import file must contain.
// Matching is case-sensitive, column order does not matter and extra
// columns are ignored.
var requiredHeaders = []string{"Date", "Amount", "Category", "Description"}

// Result summarizes an import run.
//
// Rows skipped because they are already recorded are counted neither as
// good nor as bad.
type Result struct {
	ID   uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the import run, also part of the import log lines
	Good int       `json:"good" example:"7"`                                  // Rows parsed and committed
	Bad  int       `json:"bad" example:"2"`                                   // Rows rejected because they could not be parsed
}

// Pipeline parses candidate expense rows, drops the ones the store already
// has and commits the rest in one batch.
type Pipeline struct {
	store *ledger.Store
	log   zerolog.Logger
}

// NewPipeline returns a Pipeline writing to the store that is passed.
func NewPipeline(store *ledger.Store, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		store: store,
		log:   log,
	}
}

// Run reads CSV data, skips rows that are already recorded and commits the
// remaining rows in a single transaction.
//
// A missing required header aborts the whole import before any row is
// processed. A row that cannot be parsed or that would violate a storage
// constraint only increments the bad count. A
// storage failure during the final commit aborts the whole batch, nothing
// is partially committed.
func (p *Pipeline) Run(f io.Reader) (Result, error) {
	result := Result{ID: uuid.New()}
	log := p.log.With().Str("import-id", result.ID.String()).Logger()

	reader := csv.NewReader(f)

	header, err := reader.Read()
	if err != nil {
		return result, fmt.Errorf("%w: the file is empty or has no header row", ErrFormat)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}

	for _, name := range requiredHeaders {
		if _, ok := columns[name]; !ok {
			return result, fmt.Errorf("%w: the %q column is missing", ErrFormat, name)
		}
	}

	var batch []models.Expense
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}

		// A malformed line is a bad row, not a fatal error
		if err != nil {
			result.Bad++
			continue
		}

		expense, err := parseRow(record, columns)
		if err != nil {
			result.Bad++
			continue
		}

		exists, err := p.store.ExpenseExists(expense.Date, expense.Amount, expense.Category, expense.Description)
		if err != nil {
			return Result{ID: result.ID}, err
		}

		// De-duplication skips are deliberately invisible in the counts
		if exists {
			continue
		}

		batch = append(batch, expense)
		result.Good++
	}

	if err := p.store.BulkInsertExpenses(batch); err != nil {
		return Result{ID: result.ID}, err
	}

	log.Info().Int("good", result.Good).Int("bad", result.Bad).Msg("import finished")
	return result, nil
}

// parseRow converts one CSV record into an expense. The amount is rounded
// to two decimal places, the same precision the de-duplication compares
// with.
//
// Rows that would violate a storage constraint are rejected here. The batch
// commits in one transaction, a single bad row reaching it would roll back
// every valid row in the file.
func parseRow(record []string, columns map[string]int) (models.Expense, error) {
	date, err := time.Parse("2006-01-02", record[columns["Date"]])
	if err != nil {
		return models.Expense{}, err
	}

	amount, err := decimal.NewFromString(record[columns["Amount"]])
	if err != nil {
		return models.Expense{}, err
	}

	amount = amount.Round(2)
	if !amount.IsPositive() {
		return models.Expense{}, ledger.ErrAmountNotPositive
	}

	description := record[columns["Description"]]
	if utf8.RuneCountInString(description) > 255 {
		return models.Expense{}, ledger.ErrDescriptionTooLong
	}

	return models.Expense{
		Date:        date.Format("2006-01-02"),
		Amount:      amount,
		Category:    record[columns["Category"]],
		Description: description,
	}, nil
}
