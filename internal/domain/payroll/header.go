package payroll

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// locateHeader finds the header row of a sheet. Real uploads carry a
// company title block of unpredictable height above the table, so the
// locator walks the first HeaderScanRows rows looking for a cell naming
// the employee column. It returns the 1-based header row and the letter
// of the matched cell.
func locateHeader(b *Book, sc Schema) (int, string, error) {
	if sc.FixedHeaderRow > 0 {
		return sc.FixedHeaderRow, sc.NameColumn, nil
	}

	limit := sc.HeaderScanRows
	if last := b.LastRow(); last < limit {
		limit = last
	}
	for row := 1; row <= limit; row++ {
		for i, cell := range b.Row(row) {
			if !headerLabelMatch(cell, sc) {
				continue
			}
			col, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				continue
			}
			return row, col, nil
		}
	}

	if sc.HeaderFallbackRow > 0 {
		return sc.HeaderFallbackRow, sc.NameColumn, nil
	}
	return 0, "", ErrHeaderNotFound
}

func headerLabelMatch(cell string, sc Schema) bool {
	v := strings.ToLower(strings.TrimSpace(cell))
	if v == "" {
		return false
	}
	for _, label := range sc.HeaderLabels {
		if strings.Contains(v, label) {
			return true
		}
	}
	for _, label := range sc.ExactLabels {
		if v == label {
			return true
		}
	}
	return false
}
