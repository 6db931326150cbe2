package port

import "context"

// TextExtractor abstracts plaintext extraction from an uploaded document.
// Image-only documents may yield empty text; that is not an error.
type TextExtractor interface {
	ExtractText(ctx context.Context, fileBytes []byte) (string, error)
}
