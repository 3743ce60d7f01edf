package v1_test

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/spendledger/backend/internal/ledger"
	"github.com/spendledger/backend/test"
)

func (suite *TestSuiteStandard) TestGetReconciliationEmpty() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/reconciliation", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var report map[string]ledger.CategoryStatus
	test.DecodeResponse(suite.T(), &recorder, &report)
	suite.Assert().Empty(report)
}

func (suite *TestSuiteStandard) TestGetReconciliation() {
	suite.Assert().Nil(suite.store.UpsertBudget("Food", decimal.NewFromInt(100)))
	suite.createTestExpense("2024-01-15", 120, "Food", "Weekly groceries")
	suite.createTestExpense("2024-01-16", 3.2, "Transport", "Bus ticket")

	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/reconciliation", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var report map[string]ledger.CategoryStatus
	test.DecodeResponse(suite.T(), &recorder, &report)
	suite.Assert().Len(report, 1)

	food := report["Food"]
	suite.Assert().True(food.Spent.Equal(decimal.NewFromInt(120)), "spent is %s", food.Spent)
	suite.Assert().True(food.OverBudget)
}
