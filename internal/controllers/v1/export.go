package v1

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendledger/backend/internal/exporter"
	"github.com/spendledger/backend/internal/httputil"
)

// RegisterExportRoutes registers the routes for exports with the RouterGroup
// that is passed.
func (co Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGet)
		r.GET("", co.GetExport)
	}

	{
		r.OPTIONS("/expenses", httputil.OptionsGet)
		r.GET("/expenses", co.ExportExpenses)
	}

	{
		r.OPTIONS("/budgets", httputil.OptionsGet)
		r.GET("/budgets", co.ExportBudgets)
	}
}

type ExportResponse struct {
	Links ExportLinks `json:"links"`
}

type ExportLinks struct {
	Expenses string `json:"expenses" example:"https://example.com/v1/export/expenses"`
	Budgets  string `json:"budgets" example:"https://example.com/v1/export/budgets"`
}

// @Summary		Export
// @Description	Returns the links to the available exports
// @Tags			Export
// @Produce		json
// @Success		200	{object}	ExportResponse
// @Router			/v1/export [get]
func (co Controller) GetExport(c *gin.Context) {
	url := httputil.RequestPathV1(c) + "/export"

	c.JSON(http.StatusOK, ExportResponse{
		Links: ExportLinks{
			Expenses: url + "/expenses",
			Budgets:  url + "/budgets",
		},
	})
}

// @Summary		Export expenses
// @Description	Exports all expenses as CSV. The output can be fed back into the import.
// @Tags			Export
// @Produce		text/csv
// @Success		200	{string}	string
// @Failure		500	{object}	httputil.HTTPError
// @Router			/v1/export/expenses [get]
func (co Controller) ExportExpenses(c *gin.Context) {
	var buf bytes.Buffer

	err := exporter.Expenses(&buf, co.store)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="expenses.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// @Summary		Export budgets
// @Description	Exports all budgets with their current spending as CSV
// @Tags			Export
// @Produce		text/csv
// @Success		200	{string}	string
// @Failure		500	{object}	httputil.HTTPError
// @Router			/v1/export/budgets [get]
func (co Controller) ExportBudgets(c *gin.Context) {
	var buf bytes.Buffer

	err := exporter.Budgets(&buf, co.store, co.engine)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="budgets.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
