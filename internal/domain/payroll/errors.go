package payroll

import "errors"

var (
	// ErrHeaderNotFound means no row within the scan window carried an
	// employee-name label. The whole import aborts before any rows are read.
	ErrHeaderNotFound = errors.New(`spreadsheet format not recognized: no "Nama Karyawan" column found`)

	ErrUnknownDivision = errors.New("unknown payroll division")
	ErrRecordNotFound  = errors.New("payroll record not found")
	ErrEmptyWorkbook   = errors.New("workbook has no sheets")
	ErrInvalidStatus   = errors.New("invalid payroll status")
)
