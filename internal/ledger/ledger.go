// Package ledger holds the durable expense and budget records and the
// reconciliation of spending against the configured limits.
package ledger

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spendledger/backend/internal/models"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store executes all durable reads and writes for expenses and budgets.
//
// Every mutating operation runs in its own transaction. There are no
// cross-operation transactions.
type Store struct {
	db         *gorm.DB
	categories []string
	log        zerolog.Logger
}

// NewStore returns a Store using the database handle that is passed.
//
// categories is the closed set of values that are valid for both expense
// and budget categories.
func NewStore(db *gorm.DB, categories []string, log zerolog.Logger) *Store {
	return &Store{
		db:         db,
		categories: categories,
		log:        log,
	}
}

// Categories returns the configured category enumeration.
func (s *Store) Categories() []string {
	return s.categories
}

// ValidateExpense checks all fields of an expense before it is persisted.
func (s *Store) ValidateExpense(date string, amount decimal.Decimal, category, description string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return ErrDateFormat
	}

	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if !slices.Contains(s.categories, category) {
		return ErrCategoryUnknown
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return ErrDescriptionEmpty
	}

	// The limit is in characters, not bytes, matching the length()
	// function of the check constraint
	if utf8.RuneCountInString(description) > 255 {
		return ErrDescriptionTooLong
	}

	return nil
}

// AddExpense persists a single expense and returns its database-assigned ID.
func (s *Store) AddExpense(date string, amount decimal.Decimal, category, description string) (uint, error) {
	err := s.ValidateExpense(date, amount, category, description)
	if err != nil {
		return 0, err
	}

	expense := models.Expense{
		Date:        date,
		Amount:      amount,
		Category:    category,
		Description: description,
	}

	err = s.db.Create(&expense).Error
	if err != nil {
		return 0, err
	}

	s.log.Debug().Uint("id", expense.ID).Str("category", expense.Category).Msg("expense added")
	return expense.ID, nil
}

// DeleteExpense removes the expense with the ID that is passed.
// Deleting an ID that does not exist is not an error.
func (s *Store) DeleteExpense(id uint) error {
	return s.db.Delete(&models.Expense{}, id).Error
}

// FindExpenseID returns the ID of the first expense matching all four
// fields exactly. The amount is rounded to two decimal places before the
// comparison. When nothing matches, the error wraps
// models.ErrResourceNotFound.
//
// Duplicate records are possible, identity is by row, not by content. The
// oldest match wins.
func (s *Store) FindExpenseID(date string, amount decimal.Decimal, category, description string) (uint, error) {
	var expense models.Expense

	err := s.db.
		Where("date = ? AND amount = ? AND category = ? AND description = ?",
			date, amount.Round(2), category, strings.TrimSpace(description)).
		Order("id ASC").
		First(&expense).Error
	if err != nil {
		return 0, err
	}

	return expense.ID, nil
}

// ExpenseExists reports whether an expense with exactly these field values
// is already recorded. Match semantics are the same as for FindExpenseID.
func (s *Store) ExpenseExists(date string, amount decimal.Decimal, category, description string) (bool, error) {
	var count int64

	err := s.db.Model(&models.Expense{}).
		Where("date = ? AND amount = ? AND category = ? AND description = ?",
			date, amount.Round(2), category, strings.TrimSpace(description)).
		Count(&count).Error

	return count > 0, err
}

// GetExpense returns the expense with the ID that is passed. When there is
// none, the error wraps models.ErrResourceNotFound.
func (s *Store) GetExpense(id uint) (models.Expense, error) {
	var expense models.Expense

	err := s.db.First(&expense, id).Error
	return expense, err
}

// ListExpenses returns all expenses in storage order. Callers re-sort as
// needed.
func (s *Store) ListExpenses() ([]models.Expense, error) {
	var expenses []models.Expense

	err := s.db.Find(&expenses).Error
	return expenses, err
}

// BulkInsertExpenses inserts all rows in a single transaction. If any row
// violates a database constraint, no row is persisted. Rows are not
// validated here, callers pre-validate to avoid losing valid rows alongside
// invalid ones.
func (s *Store) BulkInsertExpenses(expenses []models.Expense) error {
	if len(expenses) == 0 {
		return nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&expenses).Error
	})
	if err != nil {
		return err
	}

	s.log.Info().Int("count", len(expenses)).Msg("expenses bulk inserted")
	return nil
}

// UpsertBudget creates the budget for the category or replaces the limit of
// an existing one.
func (s *Store) UpsertBudget(category string, limit decimal.Decimal) error {
	if !slices.Contains(s.categories, category) {
		return ErrCategoryUnknown
	}

	if limit.IsNegative() {
		return ErrLimitNegative
	}

	budget := models.Budget{
		Category: category,
		Limit:    limit,
	}

	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{"budget_limit", "updated_at"}),
	}).Create(&budget).Error
}

// DeleteBudget removes the budget for the category if there is one.
// Expenses in that category are untouched.
func (s *Store) DeleteBudget(category string) error {
	return s.db.Delete(&models.Budget{}, "category = ?", category).Error
}

// ListBudgets returns all budgets ordered by category.
func (s *Store) ListBudgets() ([]models.Budget, error) {
	var budgets []models.Budget

	err := s.db.Order("category ASC").Find(&budgets).Error
	return budgets, err
}

// SumSpentByCategory sums the expense amounts grouped by category.
// Categories without expenses are absent from the result, callers default
// to zero on a lookup miss.
func (s *Store) SumSpentByCategory() (map[string]decimal.Decimal, error) {
	var totals []struct {
		Category string
		Total    decimal.Decimal
	}

	err := s.db.Model(&models.Expense{}).
		Select("category, SUM(amount) AS total").
		Group("category").
		Find(&totals).Error
	if err != nil {
		return nil, err
	}

	spent := make(map[string]decimal.Decimal, len(totals))
	for _, total := range totals {
		spent[total.Category] = total.Total
	}

	return spent, nil
}

// Close releases the underlying database handle. It is safe to call more
// than once, no operation is valid afterwards.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
