package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense represents a single spending record.
//
// Expenses are immutable, they are only ever created and deleted. The date
// is kept in its ISO 8601 text form since no time of day exists for an
// expense. All four content fields are covered by one index to speed up the
// exact-match lookups the import de-duplication does.
type Expense struct {
	Model
	Date        string          `json:"date" gorm:"type:date;not null;index:idx_expense_lookup" example:"2024-01-15"`                                                          // Day the expense was made, YYYY-MM-DD
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8);not null;index:idx_expense_lookup;check:expense_amount_positive,amount > 0" example:"42.5"`            // Amount spent
	Category    string          `json:"category" gorm:"not null;index:idx_expense_lookup" example:"Food"`                                                                      // Category the expense belongs to
	Description string          `json:"description" gorm:"index:idx_expense_lookup;check:expense_description_length,length(description) <= 255" example:"Weekly groceries"`    // What the money was spent on
}

// BeforeSave trims whitespace from the text fields.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Category = strings.TrimSpace(e.Category)
	e.Description = strings.TrimSpace(e.Description)

	return nil
}
