package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spendledger/backend/internal/httputil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RegisterImportRoutes registers the routes for imports with the RouterGroup
// that is passed.
func (co Controller) RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsPost)
	r.POST("", co.ImportExpenses)
}

// ImportResponse is the response to a successful import.
type ImportResponse struct {
	ID      uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the import run
	Good    int       `json:"good" example:"7"`                                  // Rows parsed and committed
	Bad     int       `json:"bad" example:"2"`                                   // Rows rejected because they could not be parsed
	Message string    `json:"message" example:"Imported 7 rows, rejected 2 rows"`
}

// @Summary		Import expenses
// @Description	Imports expenses from a CSV file. Rows that are already recorded are skipped silently.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		200	{object}	ImportResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			file	formData	file	true	"The file to import"
// @Router			/v1/import [post]
func (co Controller) ImportExpenses(c *gin.Context) {
	f, err := getUploadedFile(c, ".csv")
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}
	defer f.Close()

	result, err := co.pipeline.Run(f)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	p := message.NewPrinter(language.English)

	c.JSON(http.StatusOK, ImportResponse{
		ID:      result.ID,
		Good:    result.Good,
		Bad:     result.Bad,
		Message: p.Sprintf("Imported %d rows, rejected %d rows", result.Good, result.Bad),
	})
}

// getUploadedFile returns the form file with the key "file" after verifying
// its suffix.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	return formFile.Open()
}
