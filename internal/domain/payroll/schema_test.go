package payroll

import "testing"

func TestSchemasAreWellFormed(t *testing.T) {
	divisions := Divisions()
	if len(divisions) != 7 {
		t.Fatalf("expected 7 divisions, got %d", len(divisions))
	}

	for _, d := range divisions {
		sc, err := SchemaFor(d)
		if err != nil {
			t.Fatalf("%s: %v", d, err)
		}
		if sc.Division != d {
			t.Fatalf("%s: schema carries division %s", d, sc.Division)
		}
		if sc.NameColumn == "" {
			t.Fatalf("%s: name column missing", d)
		}
		if sc.DataRowOffset < 1 {
			t.Fatalf("%s: data row offset must be at least 1", d)
		}
		if sc.FixedHeaderRow == 0 && sc.HeaderScanRows < 1 {
			t.Fatalf("%s: no header scan window and no fixed header row", d)
		}

		fixed := len(sc.Columns) > 0
		resolved := len(sc.Patterns) > 0
		if fixed == resolved {
			t.Fatalf("%s: exactly one of Columns or Patterns must be set", d)
		}
	}
}

func TestHeadOfficeUsesResolver(t *testing.T) {
	sc, err := SchemaFor(DivisionHO)
	if err != nil {
		t.Fatal(err)
	}
	if len(sc.Patterns) == 0 {
		t.Fatal("head office must resolve columns from header labels")
	}
	if len(sc.ExactLabels) == 0 {
		t.Fatal("head office must accept a bare Nama header cell")
	}
}

func TestWrappingCarriesPerRowPeriod(t *testing.T) {
	sc, err := SchemaFor(DivisionWrapping)
	if err != nil {
		t.Fatal(err)
	}
	if sc.PeriodSerialColumn == "" {
		t.Fatal("wrapping sheets date every row; the schema must name the serial column")
	}
	if sc.FixedHeaderRow != 2 {
		t.Fatalf("expected fixed header row 2, got %d", sc.FixedHeaderRow)
	}
}
