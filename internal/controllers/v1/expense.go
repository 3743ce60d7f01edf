package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spendledger/backend/internal/httputil"
	"github.com/spendledger/backend/internal/models"
)

// RegisterExpenseRoutes registers the routes for expenses with the
// RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpense)
	}

	// Lookup by content, used to resolve the ID of a displayed row
	{
		r.OPTIONS("/find", httputil.OptionsGet)
		r.GET("/find", co.FindExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetDelete)
		r.GET("/:id", co.GetExpense)
		r.DELETE("/:id", co.DeleteExpense)
	}
}

// ExpenseEditable are the fields of an expense that are set on creation.
type ExpenseEditable struct {
	Date        string          `json:"date" example:"2024-01-15"`            // Day the expense was made, YYYY-MM-DD
	Amount      decimal.Decimal `json:"amount" example:"42.5"`                // Amount spent, must be greater than zero
	Category    string          `json:"category" example:"Food"`              // One of the configured categories
	Description string          `json:"description" example:"Weekly groceries"` // 1 to 255 characters
}

// ExpenseQueryFilter narrows down the expense list.
type ExpenseQueryFilter struct {
	Category string `form:"category"` // Only expenses in this category
	Search   string `form:"search"`   // Only expenses with this text in any field
}

// ExpenseMatch identifies an expense by its content.
type ExpenseMatch struct {
	Date        string `form:"date"`
	Amount      string `form:"amount"`
	Category    string `form:"category"`
	Description string `form:"description"`
}

// @Summary		List expenses
// @Description	Returns the list of expenses, optionally filtered
// @Tags			Expenses
// @Produce		json
// @Success		200	{array}		models.Expense
// @Failure		500	{object}	httputil.HTTPError
// @Param			category	query	string	false	"Filter by category"
// @Param			search		query	string	false	"Search for this text in date, amount, category and description"
// @Router			/v1/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	expenses, err := co.store.ListExpenses()
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	// When there are no resources, we want an empty list, not null
	filtered := make([]models.Expense, 0, len(expenses))
	for _, expense := range expenses {
		if filter.Category != "" && expense.Category != filter.Category {
			continue
		}

		if filter.Search != "" && !matchesSearch(expense, filter.Search) {
			continue
		}

		filtered = append(filtered, expense)
	}

	c.JSON(http.StatusOK, filtered)
}

// matchesSearch reports whether the search term occurs in any field of the
// expense. Matching is plain case-insensitive substring search, every
// character of the term is literal.
func matchesSearch(expense models.Expense, term string) bool {
	term = strings.ToLower(term)

	for _, field := range []string{
		expense.Date,
		expense.Amount.StringFixed(2),
		expense.Category,
		expense.Description,
	} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}

	return false
}

// @Summary		Create expense
// @Description	Creates a new expense
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201	{object}	models.Expense
// @Failure		400	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			expense	body	ExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var editable ExpenseEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		return
	}

	id, err := co.store.AddExpense(editable.Date, editable.Amount, editable.Category, editable.Description)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusCreated, models.Expense{
		Model:       models.Model{ID: id},
		Date:        editable.Date,
		Amount:      editable.Amount,
		Category:    editable.Category,
		Description: editable.Description,
	})
}

// @Summary		Find expense
// @Description	Returns the first expense matching all four content fields exactly
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	models.Expense
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			date		query	string	true	"Date in YYYY-MM-DD format"
// @Param			amount		query	string	true	"Amount, compared after rounding to 2 decimal places"
// @Param			category	query	string	true	"Category"
// @Param			description	query	string	true	"Description"
// @Router			/v1/expenses/find [get]
func (co Controller) FindExpense(c *gin.Context) {
	var match ExpenseMatch
	_ = c.Bind(&match)

	amount, err := decimal.NewFromString(match.Amount)
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	id, err := co.store.FindExpenseID(match.Date, amount, match.Category, match.Description)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	co.getExpenseByID(c, id)
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	models.Expense
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path	uint	true	"ID of the expense"
// @Router			/v1/expenses/{id} [get]
func (co Controller) GetExpense(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	co.getExpenseByID(c, id)
}

func (co Controller) getExpenseByID(c *gin.Context, id uint) {
	expense, err := co.store.GetExpense(id)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// @Summary		Delete expense
// @Description	Deletes the expense with the ID. Deleting an ID that does not exist is not an error.
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path	uint	true	"ID of the expense"
// @Router			/v1/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	err = co.store.DeleteExpense(id)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.Status(http.StatusNoContent)
}
