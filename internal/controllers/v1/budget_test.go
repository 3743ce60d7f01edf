package v1_test

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spendledger/backend/internal/models"
	"github.com/spendledger/backend/test"
)

func (suite *TestSuiteStandard) TestGetBudgetsEmpty() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var budgets []models.Budget
	test.DecodeResponse(suite.T(), &recorder, &budgets)
	suite.Assert().NotNil(budgets, "empty list must be [], not null")
	suite.Assert().Empty(budgets)
}

func (suite *TestSuiteStandard) TestSetBudget() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/budgets", `{"category": "Food", "limit": 100}`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var budget models.Budget
	test.DecodeResponse(suite.T(), &recorder, &budget)
	suite.Assert().Equal("Food", budget.Category)
	suite.Assert().True(budget.Limit.Equal(decimal.NewFromInt(100)), "limit is %s", budget.Limit)
}

func (suite *TestSuiteStandard) TestSetBudgetReplacesLimit() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/budgets", `{"category": "Food", "limit": 100}`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/budgets", `{"category": "Food", "limit": 250}`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var budgets []models.Budget
	test.DecodeResponse(suite.T(), &recorder, &budgets)
	suite.Assert().Len(budgets, 1)
	suite.Assert().True(budgets[0].Limit.Equal(decimal.NewFromInt(250)), "limit is %s", budgets[0].Limit)
}

func (suite *TestSuiteStandard) TestSetBudgetInvalid() {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"unknown category", `{"category": "Vacation", "limit": 100}`},
		{"negative limit", `{"category": "Food", "limit": -1}`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(suite.controller, t, http.MethodPost, "/v1/budgets", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestDeleteBudget() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/budgets", `{"category": "Food", "limit": 100}`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.controller, suite.T(), http.MethodDelete, "/v1/budgets/Food", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	budgets, err := suite.store.ListBudgets()
	suite.Assert().Nil(err)
	suite.Assert().Empty(budgets)

	// Deleting a category without a budget is not an error
	recorder = test.Request(suite.controller, suite.T(), http.MethodDelete, "/v1/budgets/Transport", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
}
