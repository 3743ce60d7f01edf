package ledger

import (
	"github.com/shopspring/decimal"
)

// CategoryStatus is the budget-vs-spending result for one category.
type CategoryStatus struct {
	Limit      decimal.Decimal `json:"limit" example:"100"`    // Monthly limit for the category
	Spent      decimal.Decimal `json:"spent" example:"120"`    // Sum of all expenses in the category
	OverBudget bool            `json:"overBudget" example:"true"` // Whether spending strictly exceeds the limit
}

// Engine derives the budget-vs-spending view from the raw records.
//
// Reconciliation never writes, it has to be re-run after every mutation
// that could change its result.
type Engine struct {
	store *Store
}

// NewEngine returns an Engine reading from the store that is passed.
func NewEngine(store *Store) *Engine {
	return &Engine{
		store: store,
	}
}

// Reconcile computes limit, spending and overage for every budgeted
// category.
//
// Spending is always aggregated from the expense records. Categories
// without a budget are not part of the result, even when they have
// expenses. A category spending exactly its limit is not over budget.
func (e *Engine) Reconcile() (map[string]CategoryStatus, error) {
	budgets, err := e.store.ListBudgets()
	if err != nil {
		return nil, err
	}

	spent, err := e.store.SumSpentByCategory()
	if err != nil {
		return nil, err
	}

	result := make(map[string]CategoryStatus, len(budgets))
	for _, budget := range budgets {
		total := decimal.Zero
		if t, ok := spent[budget.Category]; ok {
			total = t
		}

		result[budget.Category] = CategoryStatus{
			Limit:      budget.Limit,
			Spent:      total,
			OverBudget: total.GreaterThan(budget.Limit),
		}
	}

	return result, nil
}
