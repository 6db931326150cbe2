package xlsxexport

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"procura/internal/domain"
)

const (
	// ContentType is the media type for the workbook download response.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// Filename is the fixed attachment filename for exported workbooks.
	Filename = "materials.xlsx"

	sheet = "Materials"

	headerFontSize = 18
	dataFontSize   = 14

	minColWidth = 10
	colPadding  = 4
)

// headers defines the fixed column set, A through G.
var headers = []string{"Sl. No", "Description", "Size", "Quantity", "UOM", "Unit Price", "Total Price"}

// Build renders the included line items into an XLSX workbook: one data row
// per included item with a per-row total formula, followed by a GRAND TOTAL
// row summing exactly the data rows written. Deterministic for a given input.
func Build(items []domain.LineItem) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	widths := make([]int, len(headers))
	setCell := func(col, row int, v interface{}) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
	measure := func(col int, s string) {
		if n := utf8.RuneCountInString(s); n > widths[col-1] {
			widths[col-1] = n
		}
	}

	for i, h := range headers {
		setCell(i+1, 1, h)
		measure(i+1, h)
	}

	// Data rows: 1-based running sequence over included items only.
	const startDataRow = 2
	row := startDataRow
	for _, item := range items {
		if !item.Include {
			continue
		}

		qty := ParseQuantity(item.QuantityRaw)
		seq := row - startDataRow + 1

		setCell(1, row, seq)
		setCell(2, row, item.DescriptionRaw)
		setCell(3, row, item.SizeRaw)
		setCell(4, row, qty)
		setCell(5, row, item.UOMRaw)
		// Unit price (F) stays blank; the user fills it in downstream.
		totalCell, _ := excelize.CoordinatesToCellName(7, row)
		_ = f.SetCellFormula(sheet, totalCell, fmt.Sprintf(`IF(F%d="","",F%d*D%d)`, row, row, row))

		measure(1, strconv.Itoa(seq))
		measure(2, item.DescriptionRaw)
		measure(3, item.SizeRaw)
		measure(4, strconv.FormatFloat(qty, 'f', -1, 64))
		measure(5, item.UOMRaw)

		row++
	}
	lastDataRow := row - 1

	// Grand total row. With zero data rows the summed range is G2:G1,
	// an empty but well-formed range.
	totalRowNum := row
	setCell(2, totalRowNum, "GRAND TOTAL")
	measure(2, "GRAND TOTAL")
	totalCell, _ := excelize.CoordinatesToCellName(7, totalRowNum)
	_ = f.SetCellFormula(sheet, totalCell, fmt.Sprintf("SUM(G%d:G%d)", startDataRow, lastDataRow))

	if err := applyStyles(f, lastDataRow, totalRowNum); err != nil {
		return nil, err
	}

	for i, w := range widths {
		width := w + colPadding
		if width < minColWidth {
			width = minColWidth
		}
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheet, col, col, float64(width))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

// applyStyles sets the presentation rules: every cell center-aligned with
// wrapping; header bold at the larger size with solid borders; data rows at
// the smaller size with dotted borders; the total row dotted and bold.
func applyStyles(f *excelize.File, lastDataRow, totalRowNum int) error {
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Alignment: center,
		Font:      &excelize.Font{Bold: true, Size: headerFontSize},
		Border:    borders("thin"),
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	dataStyle, err := f.NewStyle(&excelize.Style{
		Alignment: center,
		Font:      &excelize.Font{Size: dataFontSize},
		Border:    borders("dotted"),
	})
	if err != nil {
		return fmt.Errorf("data style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Alignment: center,
		Font:      &excelize.Font{Bold: true, Size: dataFontSize},
		Border:    borders("dotted"),
	})
	if err != nil {
		return fmt.Errorf("total style: %w", err)
	}

	lastCol, _ := excelize.ColumnNumberToName(len(headers))

	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}
	if lastDataRow >= 2 {
		if err := f.SetCellStyle(sheet, "A2", fmt.Sprintf("%s%d", lastCol, lastDataRow), dataStyle); err != nil {
			return fmt.Errorf("styling data rows: %w", err)
		}
	}
	totalRange := fmt.Sprintf("A%d", totalRowNum)
	if err := f.SetCellStyle(sheet, totalRange, fmt.Sprintf("%s%d", lastCol, totalRowNum), totalStyle); err != nil {
		return fmt.Errorf("styling total row: %w", err)
	}
	return nil
}

func borders(style string) []excelize.Border {
	styleID := 1 // thin
	if style == "dotted" {
		styleID = 4
	}
	sides := []string{"top", "left", "bottom", "right"}
	out := make([]excelize.Border, 0, len(sides))
	for _, s := range sides {
		out = append(out, excelize.Border{Type: s, Style: styleID, Color: "000000"})
	}
	return out
}

// ParseQuantity coerces a raw quantity string to a number, defaulting to 0
// when the value is not number-like.
func ParseQuantity(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}
