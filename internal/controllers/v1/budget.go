package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spendledger/backend/internal/httputil"
	"github.com/spendledger/backend/internal/models"
)

// RegisterBudgetRoutes registers the routes for budgets with the
// RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetBudgets)
		r.POST("", co.SetBudget)
	}

	// Budget for a category
	{
		r.OPTIONS("/:category", httputil.OptionsDelete)
		r.DELETE("/:category", co.DeleteBudget)
	}
}

// BudgetEditable are the fields of a budget that can be set.
type BudgetEditable struct {
	Category string          `json:"category" example:"Food"` // One of the configured categories
	Limit    decimal.Decimal `json:"limit" example:"300"`     // Monthly limit, zero or more
}

// @Summary		List budgets
// @Description	Returns all budgets ordered by category
// @Tags			Budgets
// @Produce		json
// @Success		200	{array}		models.Budget
// @Failure		500	{object}	httputil.HTTPError
// @Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	budgets, err := co.store.ListBudgets()
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	// When there are no resources, we want an empty list, not null
	if budgets == nil {
		budgets = make([]models.Budget, 0)
	}

	c.JSON(http.StatusOK, budgets)
}

// @Summary		Set budget
// @Description	Creates the budget for a category or replaces the limit of an existing one
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200	{object}	models.Budget
// @Failure		400	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			budget	body	BudgetEditable	true	"Budget"
// @Router			/v1/budgets [post]
func (co Controller) SetBudget(c *gin.Context) {
	var editable BudgetEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		return
	}

	err = co.store.UpsertBudget(editable.Category, editable.Limit)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, models.Budget{
		Category: editable.Category,
		Limit:    editable.Limit,
	})
}

// @Summary		Delete budget
// @Description	Deletes the budget for the category. Expenses in the category are untouched. Deleting a category without a budget is not an error.
// @Tags			Budgets
// @Success		204
// @Failure		500	{object}	httputil.HTTPError
// @Param			category	path	string	true	"Category the budget is for"
// @Router			/v1/budgets/{category} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	err := co.store.DeleteBudget(c.Param("category"))
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.Status(http.StatusNoContent)
}
