package payroll

import "testing"

func TestNumber(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"", 0},
		{"  ", 0},
		{"1500", 1500},
		{"1500.50", 1500.50},
		{"Rp 1.250.000", 1250000},
		{"1.250.000", 1250000},
		{"1.250", 1250},
		{"3.500", 3500},
		{"12.345", 12345},
		{"1.5", 1.5},
		{"1.2505", 1.2505},
		{"2.500,75", 2500.75},
		{"1,5", 1.5},
		{"(500)", -500},
		{"(Rp 1.250)", -1250},
		{"-250", -250},
		{"abc", 0},
		{"-", 0},
	}
	for _, tc := range cases {
		if got := Number(tc.raw); got != tc.want {
			t.Fatalf("Number(%q): expected %v, got %v", tc.raw, tc.want, got)
		}
	}
}

func TestInt(t *testing.T) {
	if got := Int("26"); got != 26 {
		t.Fatalf("expected 26, got %d", got)
	}
	if got := Int(""); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestTextPreservesEmpty(t *testing.T) {
	if got := Text("  "); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	if got := Text(" Budi Santoso "); got != "Budi Santoso" {
		t.Fatalf("expected trimmed name, got %q", got)
	}
}

func TestTextLike(t *testing.T) {
	if textLike("") {
		t.Fatal("empty cell should not be text-like")
	}
	if textLike("1234") {
		t.Fatal("numeric cell should not be text-like")
	}
	if !textLike("Budi Santoso") {
		t.Fatal("name should be text-like")
	}
}
