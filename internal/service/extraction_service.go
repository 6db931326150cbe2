package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"procura/internal/config"
	"procura/internal/domain"
	"procura/internal/parser"
	"procura/internal/port"
)

// pdfContentType is the only accepted upload media type.
const pdfContentType = "application/pdf"

// ExtractInput is the DTO for extraction requests. ClientKey identifies the
// uploader for quota accounting (the client network address).
type ExtractInput struct {
	ClientKey string
	File      multipart.File
	Header    *multipart.FileHeader
}

// ExtractionService turns an uploaded procurement document into line items.
type ExtractionService interface {
	Extract(ctx context.Context, input ExtractInput) (*domain.ExtractionResult, error)
}

type extractionService struct {
	textExtractor port.TextExtractor
	completer     port.Completer
	quota         port.QuotaStore
	cfg           *config.UploadConfig
}

// NewExtractionService creates an ExtractionService implementation.
func NewExtractionService(
	textExtractor port.TextExtractor,
	completer port.Completer,
	quota port.QuotaStore,
	cfg *config.UploadConfig,
) ExtractionService {
	return &extractionService{
		textExtractor: textExtractor,
		completer:     completer,
		quota:         quota,
		cfg:           cfg,
	}
}

// Extract validates the upload, charges the client's quota, and runs the
// pipeline: text extraction, prompt assembly, completion, recovery,
// normalization. An empty Items slice is a successful "nothing recoverable"
// outcome; only input violations and a failed completion call are errors.
func (s *extractionService) Extract(ctx context.Context, input ExtractInput) (*domain.ExtractionResult, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	if count := s.quota.Increment(input.ClientKey, s.cfg.QuotaWindow()); count > s.cfg.QuotaLimit {
		log.Printf("extractionService.Extract: quota exceeded for %s (%d/%d in window)",
			input.ClientKey, count, s.cfg.QuotaLimit)
		return nil, domain.ErrQuotaExceeded
	}

	// The upload lives in request-scoped memory only; it is unreachable once
	// this request completes, whatever happens downstream.
	fileBytes, err := io.ReadAll(input.File)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}

	start := time.Now()
	text, err := s.textExtractor.ExtractText(ctx, fileBytes)
	if err != nil {
		// Unreadable document: the designed fallback is an empty result, so
		// the caller can tell the user the document appears to be scanned.
		log.Printf("extractionService.Extract: text extraction failed for %s: %v", input.Header.Filename, err)
		return &domain.ExtractionResult{Items: []domain.LineItem{}}, nil
	}

	prompt := parser.BuildExtractionPrompt(text)

	reply, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		log.Printf("extractionService.Extract: completion failed: %v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionUnavailable, err)
	}

	items := parser.NormalizeItems(parser.RecoverItems(reply))

	log.Printf("extractionService.Extract: %s -> %d items in %s",
		input.Header.Filename, len(items), time.Since(start))

	return &domain.ExtractionResult{Items: items}, nil
}

// validate rejects the upload before any processing: wrong media type or
// oversized files never reach the extractor or the model.
func (s *extractionService) validate(input ExtractInput) error {
	if input.Header == nil {
		return domain.ErrMissingFile
	}
	if input.Header.Size > s.cfg.MaxFileSizeBytes() {
		return domain.ErrFileTooLarge
	}
	if ct := input.Header.Header.Get("Content-Type"); ct != "" && ct != pdfContentType {
		return domain.ErrUnsupportedFileType
	}

	// Magic-byte sniffing: the declared content type is client-controlled.
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return fmt.Errorf("reading file header: %w", err)
	}
	if detected := http.DetectContentType(buf[:n]); detected != pdfContentType {
		return domain.ErrUnsupportedFileType
	}
	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("seeking file: %w", err)
	}
	return nil
}
