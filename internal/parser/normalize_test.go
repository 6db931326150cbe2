package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeItems_FullRecord(t *testing.T) {
	raw := []any{
		map[string]any{
			"description_raw": "GI Pipe",
			"size_raw":        "50mm",
			"quantity_raw":    "10",
			"uom_raw":         "nos",
		},
	}

	items := NormalizeItems(raw)

	require.Len(t, items, 1)
	assert.Equal(t, "GI Pipe", items[0].DescriptionRaw)
	assert.Equal(t, "50mm", items[0].SizeRaw)
	assert.Equal(t, "10", items[0].QuantityRaw)
	assert.Equal(t, "nos", items[0].UOMRaw)
	assert.True(t, items[0].Include)
}

func TestNormalizeItems_MissingFieldsBecomeEmpty(t *testing.T) {
	items := NormalizeItems([]any{map[string]any{"description_raw": "Bolt"}})

	require.Len(t, items, 1)
	assert.Equal(t, "Bolt", items[0].DescriptionRaw)
	assert.Empty(t, items[0].SizeRaw)
	assert.Empty(t, items[0].QuantityRaw)
	assert.Empty(t, items[0].UOMRaw)
	assert.True(t, items[0].Include)
}

func TestNormalizeItems_NumericFieldsRenderedAsLiterals(t *testing.T) {
	items := NormalizeItems([]any{
		map[string]any{"quantity_raw": float64(12)},
		map[string]any{"quantity_raw": float64(2.5)},
	})

	require.Len(t, items, 2)
	assert.Equal(t, "12", items[0].QuantityRaw)
	assert.Equal(t, "2.5", items[1].QuantityRaw)
}

func TestNormalizeItems_NonObjectRecordsYieldEmptyItems(t *testing.T) {
	items := NormalizeItems([]any{"just a string", float64(7), nil})

	require.Len(t, items, 3)
	for _, it := range items {
		assert.Empty(t, it.DescriptionRaw)
		assert.True(t, it.Include)
	}
}

func TestNormalizeItems_PreservesOrder(t *testing.T) {
	raw := []any{
		map[string]any{"description_raw": "first"},
		map[string]any{"description_raw": "second"},
		map[string]any{"description_raw": "third"},
	}

	items := NormalizeItems(raw)

	require.Len(t, items, 3)
	assert.Equal(t, "first", items[0].DescriptionRaw)
	assert.Equal(t, "second", items[1].DescriptionRaw)
	assert.Equal(t, "third", items[2].DescriptionRaw)
}

func TestNormalizeItems_EmptyInput(t *testing.T) {
	assert.Empty(t, NormalizeItems(nil))
	assert.NotNil(t, NormalizeItems(nil))
}
