package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"procura/internal/config"
	"procura/internal/domain"
	"procura/internal/service"
)

// ExtractHandler handles the document extraction endpoint.
type ExtractHandler struct {
	extractionService service.ExtractionService
	uploadCfg         *config.UploadConfig
}

// NewExtractHandler creates a new ExtractHandler.
func NewExtractHandler(extractionService service.ExtractionService, uploadCfg *config.UploadConfig) *ExtractHandler {
	return &ExtractHandler{extractionService: extractionService, uploadCfg: uploadCfg}
}

// Extract handles POST /api/v1/extract. It accepts one PDF in the "file"
// multipart field and responds with the recovered line items; an empty items
// list means the document appears to be scanned or unreadable.
func (h *ExtractHandler) Extract(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	input := service.ExtractInput{
		ClientKey: c.ClientIP(),
		File:      file,
		Header:    header,
	}

	result, err := h.extractionService.Extract(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrQuotaExceeded) {
			RespondError(c, http.StatusTooManyRequests, "QUOTA_EXCEEDED",
				fmt.Sprintf("upload quota exceeded: at most %d uploads per %d-hour window",
					h.uploadCfg.QuotaLimit, h.uploadCfg.QuotaWindowHours))
			return
		}
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}
