package parser

import (
	"strconv"

	"procura/internal/domain"
)

// NormalizeItems maps raw recovered records into LineItems. Fields are copied
// verbatim as strings, missing fields become empty strings, every item starts
// included, and input order is preserved. No filtering, no deduplication.
func NormalizeItems(raw []any) []domain.LineItem {
	items := make([]domain.LineItem, 0, len(raw))
	for _, rec := range raw {
		m, _ := rec.(map[string]any)
		items = append(items, domain.LineItem{
			DescriptionRaw: stringField(m, "description_raw"),
			SizeRaw:        stringField(m, "size_raw"),
			QuantityRaw:    stringField(m, "quantity_raw"),
			UOMRaw:         stringField(m, "uom_raw"),
			Include:        true,
		})
	}
	return items
}

// stringField reads a field tolerantly: strings pass through, JSON numbers
// and booleans are rendered as their literals, anything else is empty.
func stringField(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
