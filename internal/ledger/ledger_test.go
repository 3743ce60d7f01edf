package ledger_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spendledger/backend/internal/ledger"
	"github.com/spendledger/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestValidateExpense() {
	tests := []struct {
		name        string
		date        string
		amount      decimal.Decimal
		category    string
		description string
		err         error
	}{
		{"valid", "2024-01-15", decimal.NewFromFloat(42.5), "Food", "Weekly groceries", nil},
		{"bad date", "15.01.2024", decimal.NewFromFloat(42.5), "Food", "Weekly groceries", ledger.ErrDateFormat},
		{"no day", "2024-01", decimal.NewFromFloat(42.5), "Food", "Weekly groceries", ledger.ErrDateFormat},
		{"zero amount", "2024-01-15", decimal.Zero, "Food", "Weekly groceries", ledger.ErrAmountNotPositive},
		{"negative amount", "2024-01-15", decimal.NewFromFloat(-3), "Food", "Weekly groceries", ledger.ErrAmountNotPositive},
		{"unknown category", "2024-01-15", decimal.NewFromFloat(42.5), "Vacation", "Weekly groceries", ledger.ErrCategoryUnknown},
		{"empty description", "2024-01-15", decimal.NewFromFloat(42.5), "Food", "   ", ledger.ErrDescriptionEmpty},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := suite.store.ValidateExpense(tt.date, tt.amount, tt.category, tt.description)

			if tt.err == nil {
				assert.Nil(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.err)
			assert.ErrorIs(t, err, ledger.ErrValidation)
		})
	}
}

func (suite *TestSuiteStandard) TestValidateExpenseDescriptionTooLong() {
	err := suite.store.ValidateExpense("2024-01-15", decimal.NewFromFloat(1), "Food", strings.Repeat("a", 256))
	suite.Assert().ErrorIs(err, ledger.ErrDescriptionTooLong)
}

func (suite *TestSuiteStandard) TestValidateExpenseDescriptionLengthInCharacters() {
	// 150 two-byte runes are 300 bytes but only 150 characters
	err := suite.store.ValidateExpense("2024-01-15", decimal.NewFromFloat(1), "Food", strings.Repeat("é", 150))
	suite.Assert().Nil(err)

	err = suite.store.ValidateExpense("2024-01-15", decimal.NewFromFloat(1), "Food", strings.Repeat("é", 256))
	suite.Assert().ErrorIs(err, ledger.ErrDescriptionTooLong)
}

func (suite *TestSuiteStandard) TestAddAndListExpense() {
	id := suite.createTestExpense("2024-01-15", 42.5, "Food", "Weekly groceries")
	suite.Assert().NotZero(id)

	expenses, err := suite.store.ListExpenses()
	suite.Assert().Nil(err)
	suite.Assert().Len(expenses, 1)

	suite.Assert().Equal(id, expenses[0].ID)
	suite.Assert().Equal("2024-01-15", expenses[0].Date)
	suite.Assert().Equal("Food", expenses[0].Category)
	suite.Assert().Equal("Weekly groceries", expenses[0].Description)
	suite.Assert().True(expenses[0].Amount.Equal(decimal.NewFromFloat(42.5)), "amount is %s", expenses[0].Amount)
}

func (suite *TestSuiteStandard) TestAddExpenseUniqueIDs() {
	first := suite.createTestExpense("2024-01-15", 42.5, "Food", "Weekly groceries")
	second := suite.createTestExpense("2024-01-15", 42.5, "Food", "Weekly groceries")

	suite.Assert().NotEqual(first, second, "identical content must still get distinct IDs")
}

func (suite *TestSuiteStandard) TestGetExpense() {
	id := suite.createTestExpense("2024-01-15", 42.5, "Food", "Weekly groceries")

	expense, err := suite.store.GetExpense(id)
	suite.Assert().Nil(err)
	suite.Assert().Equal(id, expense.ID)
	suite.Assert().Equal("Weekly groceries", expense.Description)

	_, err = suite.store.GetExpense(id + 1)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestFindExpenseID() {
	id := suite.createTestExpense("2024-01-15", 42.5, "Food", "Weekly groceries")

	found, err := suite.store.FindExpenseID("2024-01-15", decimal.NewFromFloat(42.5), "Food", "Weekly groceries")
	suite.Assert().Nil(err)
	suite.Assert().Equal(id, found)

	// 42.51 is a different expense, 42.50 is not
	_, err = suite.store.FindExpenseID("2024-01-15", decimal.NewFromFloat(42.51), "Food", "Weekly groceries")
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	found, err = suite.store.FindExpenseID("2024-01-15", decimal.NewFromFloat(42.50), "Food", "Weekly groceries")
	suite.Assert().Nil(err)
	suite.Assert().Equal(id, found)
}

func (suite *TestSuiteStandard) TestFindExpenseIDOldestWins() {
	first := suite.createTestExpense("2024-01-15", 42.5, "Food", "Weekly groceries")
	_ = suite.createTestExpense("2024-01-15", 42.5, "Food", "Weekly groceries")

	found, err := suite.store.FindExpenseID("2024-01-15", decimal.NewFromFloat(42.5), "Food", "Weekly groceries")
	suite.Assert().Nil(err)
	suite.Assert().Equal(first, found)
}

func (suite *TestSuiteStandard) TestExpenseExists() {
	suite.createTestExpense("2024-01-15", 42.5, "Food", "Weekly groceries")

	exists, err := suite.store.ExpenseExists("2024-01-15", decimal.NewFromFloat(42.5), "Food", "Weekly groceries")
	suite.Assert().Nil(err)
	suite.Assert().True(exists)

	exists, err = suite.store.ExpenseExists("2024-01-16", decimal.NewFromFloat(42.5), "Food", "Weekly groceries")
	suite.Assert().Nil(err)
	suite.Assert().False(exists)
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	id := suite.createTestExpense("2024-01-15", 42.5, "Food", "Weekly groceries")

	err := suite.store.DeleteExpense(id)
	suite.Assert().Nil(err)

	expenses, err := suite.store.ListExpenses()
	suite.Assert().Nil(err)
	suite.Assert().Empty(expenses)

	// Deleting an ID that does not exist is not an error
	err = suite.store.DeleteExpense(id)
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestBulkInsertExpenses() {
	err := suite.store.BulkInsertExpenses([]models.Expense{
		{Date: "2024-01-15", Amount: decimal.NewFromFloat(42.5), Category: "Food", Description: "Weekly groceries"},
		{Date: "2024-01-16", Amount: decimal.NewFromFloat(3.2), Category: "Transport", Description: "Bus ticket"},
	})
	suite.Assert().Nil(err)

	expenses, err := suite.store.ListExpenses()
	suite.Assert().Nil(err)
	suite.Assert().Len(expenses, 2)
}

func (suite *TestSuiteStandard) TestBulkInsertExpensesAtomic() {
	err := suite.store.BulkInsertExpenses([]models.Expense{
		{Date: "2024-01-15", Amount: decimal.NewFromFloat(42.5), Category: "Food", Description: "Weekly groceries"},
		{Date: "2024-01-16", Amount: decimal.NewFromFloat(-1), Category: "Transport", Description: "Bus ticket"},
	})
	suite.Assert().NotNil(err)

	// The valid row must not survive the failed batch
	expenses, err := suite.store.ListExpenses()
	suite.Assert().Nil(err)
	suite.Assert().Empty(expenses)
}

func (suite *TestSuiteStandard) TestBulkInsertExpensesEmpty() {
	err := suite.store.BulkInsertExpenses(nil)
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestUpsertBudget() {
	err := suite.store.UpsertBudget("Food", decimal.NewFromInt(100))
	suite.Assert().Nil(err)

	err = suite.store.UpsertBudget("Food", decimal.NewFromInt(200))
	suite.Assert().Nil(err)

	budgets, err := suite.store.ListBudgets()
	suite.Assert().Nil(err)
	suite.Assert().Len(budgets, 1)
	suite.Assert().True(budgets[0].Limit.Equal(decimal.NewFromInt(200)), "limit is %s", budgets[0].Limit)
}

func (suite *TestSuiteStandard) TestUpsertBudgetValidation() {
	err := suite.store.UpsertBudget("Vacation", decimal.NewFromInt(100))
	suite.Assert().ErrorIs(err, ledger.ErrCategoryUnknown)

	err = suite.store.UpsertBudget("Food", decimal.NewFromInt(-1))
	suite.Assert().ErrorIs(err, ledger.ErrLimitNegative)
}

func (suite *TestSuiteStandard) TestDeleteBudgetKeepsExpenses() {
	suite.createTestExpense("2024-01-15", 42.5, "Food", "Weekly groceries")

	err := suite.store.UpsertBudget("Food", decimal.NewFromInt(100))
	suite.Assert().Nil(err)

	err = suite.store.DeleteBudget("Food")
	suite.Assert().Nil(err)

	budgets, err := suite.store.ListBudgets()
	suite.Assert().Nil(err)
	suite.Assert().Empty(budgets)

	expenses, err := suite.store.ListExpenses()
	suite.Assert().Nil(err)
	suite.Assert().Len(expenses, 1)

	// Deleting a category without a budget is not an error
	err = suite.store.DeleteBudget("Transport")
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestListBudgetsOrder() {
	for _, category := range []string{"Utilities", "Food", "Transport"} {
		err := suite.store.UpsertBudget(category, decimal.NewFromInt(100))
		suite.Assert().Nil(err)
	}

	budgets, err := suite.store.ListBudgets()
	suite.Assert().Nil(err)
	suite.Assert().Len(budgets, 3)
	suite.Assert().Equal("Food", budgets[0].Category)
	suite.Assert().Equal("Transport", budgets[1].Category)
	suite.Assert().Equal("Utilities", budgets[2].Category)
}

func (suite *TestSuiteStandard) TestSumSpentByCategory() {
	suite.createTestExpense("2024-01-15", 42.5, "Food", "Weekly groceries")
	suite.createTestExpense("2024-01-16", 7.5, "Food", "Bakery")
	suite.createTestExpense("2024-01-16", 3.2, "Transport", "Bus ticket")

	spent, err := suite.store.SumSpentByCategory()
	suite.Assert().Nil(err)
	suite.Assert().Len(spent, 2)

	suite.Assert().True(spent["Food"].Equal(decimal.NewFromInt(50)), "Food total is %s", spent["Food"])
	suite.Assert().True(spent["Transport"].Equal(decimal.NewFromFloat(3.2)), "Transport total is %s", spent["Transport"])

	// Categories without expenses are absent, not zero
	_, ok := spent["Utilities"]
	suite.Assert().False(ok)
}

func (suite *TestSuiteStandard) TestCategories() {
	suite.Assert().Equal([]string{"Food", "Transport", "Entertainment", "Utilities", "Others"}, suite.store.Categories())
}

func (suite *TestSuiteStandard) TestCloseIsIdempotent() {
	suite.Assert().Nil(suite.store.Close())
	suite.Assert().Nil(suite.store.Close())
}
