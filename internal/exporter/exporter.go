// Package exporter writes the ledger tables in the CSV interchange format.
package exporter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/spendledger/backend/internal/ledger"
)

// Expenses writes the full expense table, one row per record. Amounts are
// formatted with two decimal places. The output can be fed back into the
// import pipeline.
func Expenses(w io.Writer, store *ledger.Store) error {
	expenses, err := store.ListExpenses()
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)

	err = cw.Write([]string{"ID", "Date", "Amount", "Category", "Description"})
	if err != nil {
		return err
	}

	for _, expense := range expenses {
		err = cw.Write([]string{
			strconv.FormatUint(uint64(expense.ID), 10),
			expense.Date,
			expense.Amount.StringFixed(2),
			expense.Category,
			expense.Description,
		})
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Budgets writes the budget table with the spending the reconciliation
// engine derived for each category.
func Budgets(w io.Writer, store *ledger.Store, engine *ledger.Engine) error {
	budgets, err := store.ListBudgets()
	if err != nil {
		return err
	}

	status, err := engine.Reconcile()
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)

	err = cw.Write([]string{"Category", "Budget", "Spent"})
	if err != nil {
		return err
	}

	for _, budget := range budgets {
		err = cw.Write([]string{
			budget.Category,
			budget.Limit.StringFixed(2),
			status[budget.Category].Spent.StringFixed(2),
		})
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
