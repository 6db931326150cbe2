package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"procura/internal/domain"
	"procura/internal/service"
	"procura/internal/xlsxexport"
)

// ExportHandler handles the workbook download endpoint.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// exportRequest is the JSON body for export: the reviewed item list with
// include flags as edited by the user.
type exportRequest struct {
	Items []domain.LineItem `json:"items"`
}

// Export handles POST /api/v1/export. It renders the included items into an
// XLSX attachment with a fixed filename.
func (h *ExportHandler) Export(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body must be JSON with an items array")
		return
	}

	data, err := h.exportService.BuildWorkbook(c.Request.Context(), req.Items)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename=`+xlsxexport.Filename)
	c.Data(http.StatusOK, xlsxexport.ContentType, data)
}
