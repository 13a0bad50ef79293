package payroll

import (
	"fmt"
	"io"
	"time"
)

// ParseWorkbook reads an uploaded workbook for a division and returns the
// preview: every extracted row plus any resolver fields that could not be
// bound. Nothing is persisted; committing the rows is a separate call.
//
// period is the "2006-01" payroll month the rows belong to. When empty it
// defaults to the current month; the wrapping sheet overrides it per row
// from its own date column.
func ParseWorkbook(r io.Reader, division Division, period, fileName string) (Preview, error) {
	sc, err := SchemaFor(division)
	if err != nil {
		return Preview{}, err
	}
	if period == "" {
		period = time.Now().Format("2006-01")
	}

	book, err := OpenBook(r)
	if err != nil {
		return Preview{}, err
	}
	defer book.Close()

	headerRow, matchedCol, err := locateHeader(book, sc)
	if err != nil {
		return Preview{}, err
	}

	cols := sc.Columns
	var unresolved []Field
	if len(sc.Patterns) > 0 {
		cols, unresolved = resolveColumns(book, sc, headerRow)
	}

	nameCol := cols[FieldEmployeeName]
	if nameCol == "" {
		nameCol = matchedCol
	}
	if nameCol == "" {
		nameCol = sc.NameColumn
	}

	rows := extractRows(book, sc, cols, headerRow, nameCol, period)
	return Preview{
		Message:          fmt.Sprintf("parsed %d payroll rows", len(rows)),
		FileName:         fileName,
		RowsCount:        len(rows),
		Rows:             rows,
		UnresolvedFields: unresolved,
	}, nil
}
