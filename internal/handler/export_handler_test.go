package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"procura/internal/domain"
	"procura/internal/service"
	"procura/internal/xlsxexport"
)

type stubExportService struct {
	data []byte
	err  error
}

func (s *stubExportService) BuildWorkbook(_ context.Context, _ []domain.LineItem) ([]byte, error) {
	return s.data, s.err
}

func newExportRouter(svc service.ExportService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewExportHandler(svc)
	r.POST("/api/v1/export", h.Export)
	return r
}

func TestExportHandler_Success(t *testing.T) {
	r := newExportRouter(service.NewExportService())

	body := `{"items":[
		{"description_raw":"MS Pipe","size_raw":"2 inch","quantity_raw":"10","uom_raw":"nos","include":true},
		{"description_raw":"rejected","quantity_raw":"1","include":false}
	]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/export", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxexport.ContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename=materials.xlsx`, rec.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	desc, err := f.GetCellValue("Materials", "B2")
	require.NoError(t, err)
	assert.Equal(t, "MS Pipe", desc)

	total, err := f.GetCellValue("Materials", "B3")
	require.NoError(t, err)
	assert.Equal(t, "GRAND TOTAL", total)
}

func TestExportHandler_EmptyItems(t *testing.T) {
	r := newExportRouter(service.NewExportService())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/export", strings.NewReader(`{"items":[]}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxexport.ContentType, rec.Header().Get("Content-Type"))
}

func TestExportHandler_InvalidBody(t *testing.T) {
	r := newExportRouter(&stubExportService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/export", strings.NewReader(`not json`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_BODY")
}

func TestExportHandler_BuildFailure(t *testing.T) {
	r := newExportRouter(&stubExportService{err: domain.ErrExportFailed})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/export", strings.NewReader(`{"items":[]}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "EXPORT_FAILED")
}
