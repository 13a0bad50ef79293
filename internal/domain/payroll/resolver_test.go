package payroll

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestHeaderIndexNearestLeftParent(t *testing.T) {
	// parent label only above the first column of the pair; the second
	// subheader column inherits it by scanning left
	reader := buildWorkbook(t, func(f *excelize.File, sheet string) {
		setCells(t, f, sheet, map[string]any{
			"Q4": "UANG KEHADIRAN",
			"Q5": "@HARI",
			"R5": "TOTAL",
		})
	})
	book, err := OpenBook(reader)
	if err != nil {
		t.Fatalf("open book: %v", err)
	}
	defer book.Close()

	entries := buildHeaderIndex(book, 4)

	col, ok := findColumn(entries, []string{"uang kehadiran total"})
	if !ok || col != "R" {
		t.Fatalf("expected R, got %q (%v)", col, ok)
	}
	col, ok = findColumn(entries, []string{"uang kehadiran @hari"})
	if !ok || col != "Q" {
		t.Fatalf("expected Q, got %q (%v)", col, ok)
	}
}

func TestHeaderIndexMergedParent(t *testing.T) {
	reader := buildWorkbook(t, func(f *excelize.File, sheet string) {
		setCells(t, f, sheet, map[string]any{
			"V4": "UANG LEMBUR",
			"W5": "TOTAL",
		})
		if err := f.MergeCell(sheet, "V4", "X4"); err != nil {
			t.Fatalf("merge cells: %v", err)
		}
	})
	book, err := OpenBook(reader)
	if err != nil {
		t.Fatalf("open book: %v", err)
	}
	defer book.Close()

	entries := buildHeaderIndex(book, 4)
	col, ok := findColumn(entries, []string{"uang lembur total"})
	if !ok || col != "W" {
		t.Fatalf("expected W, got %q (%v)", col, ok)
	}
}

func TestResolveColumnsReportsUnresolved(t *testing.T) {
	reader := buildWorkbook(t, func(f *excelize.File, sheet string) {
		setCells(t, f, sheet, map[string]any{
			"B4": "NAMA KARYAWAN",
			"K4": "GAJI POKOK",
		})
	})
	book, err := OpenBook(reader)
	if err != nil {
		t.Fatalf("open book: %v", err)
	}
	defer book.Close()

	sc, err := SchemaFor(DivisionHO)
	if err != nil {
		t.Fatal(err)
	}
	cols, unresolved := resolveColumns(book, sc, 4)

	if cols[FieldBasicSalary] != "K" {
		t.Fatalf("expected basic salary in K, got %q", cols[FieldBasicSalary])
	}
	// patterns with a default column still bind when no label matches
	if cols[FieldAccountNumber] != "C" {
		t.Fatalf("expected account default C, got %q", cols[FieldAccountNumber])
	}

	found := false
	for _, field := range unresolved {
		if field == FieldNetSalary {
			found = true
		}
		if field == FieldBasicSalary || field == FieldAccountNumber {
			t.Fatalf("%s must not be unresolved", field)
		}
	}
	if !found {
		t.Fatalf("expected net_salary unresolved, got %v", unresolved)
	}
}
