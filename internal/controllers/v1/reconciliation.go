package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendledger/backend/internal/httputil"
)

// RegisterReconciliationRoutes registers the routes for reconciliation with
// the RouterGroup that is passed.
func (co Controller) RegisterReconciliationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetReconciliation)
}

// @Summary		Reconcile budgets
// @Description	Returns the spending status for every budgeted category. Categories without a budget do not appear.
// @Tags			Reconciliation
// @Produce		json
// @Success		200	{object}	map[string]ledger.CategoryStatus
// @Failure		500	{object}	httputil.HTTPError
// @Router			/v1/reconciliation [get]
func (co Controller) GetReconciliation(c *gin.Context) {
	report, err := co.engine.Reconcile()
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, report)
}
