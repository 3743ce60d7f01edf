package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is the monthly spending limit for one category.
//
// The category is the primary key, there is at most one budget per
// category. Spending against the limit is always derived from the expense
// records, it is deliberately not cached here.
type Budget struct {
	Category string          `json:"category" gorm:"primaryKey" example:"Food"`                                                                        // Category the limit applies to
	Limit    decimal.Decimal `json:"limit" gorm:"column:budget_limit;type:DECIMAL(20,8);not null;check:budget_limit_non_negative,budget_limit >= 0" example:"100"` // Monthly limit
	Timestamps
}

// BeforeSave trims whitespace from the category.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Category = strings.TrimSpace(b.Category)

	return nil
}
