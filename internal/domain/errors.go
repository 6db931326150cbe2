package domain

import "errors"

var (
	ErrMissingFile           = errors.New("file field is required")
	ErrUnsupportedFileType   = errors.New("unsupported file type")
	ErrFileTooLarge          = errors.New("file exceeds maximum allowed size")
	ErrQuotaExceeded         = errors.New("daily upload quota exceeded")
	ErrExtractionUnavailable = errors.New("extraction service unavailable")
	ErrExportFailed          = errors.New("spreadsheet export failed")
)
