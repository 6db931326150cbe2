package parser

import (
	"encoding/json"
	"strings"
)

// StripControlChars removes the ASCII control characters that break JSON
// parsing: U+0000–U+0008, U+000B, U+000C, and U+000E–U+001F. Tab, LF, CR,
// and all non-ASCII code points pass through untouched, so right-to-left and
// other non-Latin scripts in extracted item text survive intact.
func StripControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 {
			switch r {
			case '\t', '\n', '\r':
				return r
			}
			return -1
		}
		return r
	}, s)
}

// RecoverItems locates and parses a JSON object embedded in free-form model
// output and returns its "items" array. Surrounding prose and markdown
// fencing are ignored. Malformed or truncated JSON, a reply with no {...}
// span, or a missing/non-array "items" field all yield an empty result;
// recovery never fails.
func RecoverItems(raw string) []any {
	cleaned := StripControlChars(raw)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return nil
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &obj); err != nil {
		return nil
	}

	items, ok := obj["items"].([]any)
	if !ok {
		return nil
	}
	return items
}
