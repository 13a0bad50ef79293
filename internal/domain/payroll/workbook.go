package payroll

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Book wraps an open workbook and pins the sheet every read goes to.
// Imports always read the first sheet; uploads with extra sheets keep
// working because the extras are ignored.
type Book struct {
	file  *excelize.File
	sheet string
	rows  [][]string
}

// OpenBook reads a workbook from r and positions on the first sheet.
func OpenBook(r io.Reader) (*Book, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		f.Close()
		return nil, ErrEmptyWorkbook
	}
	sheet := sheets[0]
	rows, err := f.GetRows(sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return &Book{file: f, sheet: sheet, rows: rows}, nil
}

// Close releases the underlying file.
func (b *Book) Close() error {
	return b.file.Close()
}

// Cell returns the formatted value at a column letter and 1-based row.
// Out-of-range addresses read as empty, matching how a sheet behaves.
func (b *Book) Cell(col string, row int) string {
	v, err := b.file.GetCellValue(b.sheet, fmt.Sprintf("%s%d", col, row))
	if err != nil {
		return ""
	}
	return v
}

// CellAt returns the value at a 1-based column number and row.
func (b *Book) CellAt(col, row int) string {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return ""
	}
	return b.Cell(name, row)
}

// Row returns the cells of a 1-based row as GetRows produced them.
// Trailing empty cells are absent, which callers must tolerate.
func (b *Book) Row(row int) []string {
	if row < 1 || row > len(b.rows) {
		return nil
	}
	return b.rows[row-1]
}

// LastRow is the highest row the sheet carries.
func (b *Book) LastRow() int {
	return len(b.rows)
}

// MergedRanges returns the sheet's merged cell ranges. Header resolution
// needs them: a parent label merged across columns applies to every
// column the range spans.
func (b *Book) MergedRanges() []excelize.MergeCell {
	mc, err := b.file.GetMergeCells(b.sheet)
	if err != nil {
		return nil
	}
	return mc
}
