package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverItems_PlainJSON(t *testing.T) {
	raw := `{"items":[{"description_raw":"MS Pipe","size_raw":"2 inch","quantity_raw":"10","uom_raw":"nos"}]}`

	items := RecoverItems(raw)

	require.Len(t, items, 1)
	rec := items[0].(map[string]any)
	assert.Equal(t, "MS Pipe", rec["description_raw"])
	assert.Equal(t, "10", rec["quantity_raw"])
}

func TestRecoverItems_SurroundingProse(t *testing.T) {
	raw := "Sure! Here is the extracted data:\n```json\n" +
		`{"items":[{"description_raw":"Cable tray"},{"description_raw":"Gland"}]}` +
		"\n```\nLet me know if you need anything else."

	items := RecoverItems(raw)

	require.Len(t, items, 2)
	first := items[0].(map[string]any)
	assert.Equal(t, "Cable tray", first["description_raw"])
}

func TestRecoverItems_NoBraces(t *testing.T) {
	assert.Nil(t, RecoverItems("I could not find any structured data in this document."))
	assert.Nil(t, RecoverItems(""))
}

func TestRecoverItems_MalformedJSON(t *testing.T) {
	cases := []string{
		`{"items":[{"description_raw":"truncated`,
		`{"items":[1,2,}`,
		`prose { not json at all } prose`,
	}
	for _, raw := range cases {
		assert.Nil(t, RecoverItems(raw), "input: %s", raw)
	}
}

func TestRecoverItems_ItemsMissingOrWrongShape(t *testing.T) {
	assert.Nil(t, RecoverItems(`{"data":{"rows":[]}}`))
	assert.Nil(t, RecoverItems(`{"items":"not an array"}`))
	assert.Nil(t, RecoverItems(`{"items":{"description_raw":"x"}}`))
}

func TestRecoverItems_EmptyItems(t *testing.T) {
	items := RecoverItems(`{"items":[]}`)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestRecoverItems_ControlCharsInsideJSON(t *testing.T) {
	// A stray 0x01 inside the object would break json.Unmarshal without stripping.
	raw := "{\"items\":[{\"description_raw\":\"va\x01lve\"}]}"

	items := RecoverItems(raw)

	require.Len(t, items, 1)
	rec := items[0].(map[string]any)
	assert.Equal(t, "valve", rec["description_raw"])
}

func TestStripControlChars_RemovesOnlyDangerousRanges(t *testing.T) {
	in := "a\x00b\x08c\x0bd\x0ce\x0ef\x1fg"
	assert.Equal(t, "abcdefg", StripControlChars(in))
}

func TestStripControlChars_PreservesWhitespaceAndUnicode(t *testing.T) {
	in := "صمام حديد\t10\nأنبوب\r\n管道 ½\""
	assert.Equal(t, in, StripControlChars(in))
}

func TestStripControlChars_Idempotent(t *testing.T) {
	in := "abc\x01\x02def\tghi\nعربى"
	once := StripControlChars(in)
	assert.Equal(t, once, StripControlChars(once))
}

func TestStripControlChars_LongMixedInput(t *testing.T) {
	in := strings.Repeat("item \x1f desc \x07 ", 100)
	out := StripControlChars(in)
	assert.NotContains(t, out, "\x1f")
	assert.NotContains(t, out, "\x07")
}
