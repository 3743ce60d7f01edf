// Package v1 is the HTTP presentation adapter for the ledger core. It only
// forwards user intents to the core components, nothing in here owns state.
package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendledger/backend/internal/httputil"
	"github.com/spendledger/backend/internal/importer"
	"github.com/spendledger/backend/internal/ledger"
)

// Controller bundles the core components the handlers call into.
type Controller struct {
	store    *ledger.Store
	engine   *ledger.Engine
	pipeline *importer.Pipeline
}

// NewController returns a Controller using the components that are passed.
func NewController(store *ledger.Store, engine *ledger.Engine, pipeline *importer.Pipeline) Controller {
	return Controller{
		store:    store,
		engine:   engine,
		pipeline: pipeline,
	}
}

// RegisterRoutes attaches all v1 routes to the group that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	{
		r.GET("", GetV1)
		r.OPTIONS("", OptionsV1)
	}

	co.RegisterExpenseRoutes(r.Group("/expenses"))
	co.RegisterBudgetRoutes(r.Group("/budgets"))
	co.RegisterReconciliationRoutes(r.Group("/reconciliation"))
	co.RegisterImportRoutes(r.Group("/import"))
	co.RegisterExportRoutes(r.Group("/export"))
}

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Expenses       string `json:"expenses" example:"https://example.com/v1/expenses"`
	Budgets        string `json:"budgets" example:"https://example.com/v1/budgets"`
	Reconciliation string `json:"reconciliation" example:"https://example.com/v1/reconciliation"`
	Import         string `json:"import" example:"https://example.com/v1/import"`
	Export         string `json:"export" example:"https://example.com/v1/export"`
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			General
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func GetV1(c *gin.Context) {
	url := httputil.RequestPathV1(c)

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Expenses:       url + "/expenses",
			Budgets:        url + "/budgets",
			Reconciliation: url + "/reconciliation",
			Import:         url + "/import",
			Export:         url + "/export",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
