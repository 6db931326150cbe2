package service

import (
	"context"
	"log"

	"procura/internal/domain"
	"procura/internal/xlsxexport"
)

// ExportService renders reviewed line items into a downloadable workbook.
type ExportService interface {
	BuildWorkbook(ctx context.Context, items []domain.LineItem) ([]byte, error)
}

type exportService struct{}

// NewExportService creates an ExportService implementation.
func NewExportService() ExportService {
	return &exportService{}
}

// BuildWorkbook encodes the items into XLSX bytes. Any rendering fault
// surfaces as a single export-failed error; no partial output is returned.
func (s *exportService) BuildWorkbook(ctx context.Context, items []domain.LineItem) ([]byte, error) {
	data, err := xlsxexport.Build(items)
	if err != nil {
		log.Printf("exportService.BuildWorkbook: %v", err)
		return nil, domain.ErrExportFailed
	}
	return data, nil
}
