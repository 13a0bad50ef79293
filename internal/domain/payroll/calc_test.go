package payroll

import "testing"

func TestComputeTotalsTrustsSourceTotals(t *testing.T) {
	row := Row{
		BasicSalary:     5000000,
		HealthAllowance: 200000,
		TotalSalary2:    5750000,
	}
	totals := ComputeTotals(row)
	if totals.Gross != 5750000 {
		t.Fatalf("expected gross 5750000, got %v", totals.Gross)
	}
	if len(totals.Warnings) != 1 || totals.Warnings[0] != WarningTotalMismatch {
		t.Fatalf("expected a total_mismatch warning, got %v", totals.Warnings)
	}
}

func TestComputeTotalsFallsBackToComponents(t *testing.T) {
	row := Row{
		BasicSalary:     3500000,
		TransportAmount: 300000,
		OvertimeAmount:  50000,
		DeductionLoan:   200000,
		DeductionLate:   25000,
	}
	totals := ComputeTotals(row)
	if totals.Gross != 3850000 {
		t.Fatalf("expected gross 3850000, got %v", totals.Gross)
	}
	if totals.Deductions != 225000 {
		t.Fatalf("expected deductions 225000, got %v", totals.Deductions)
	}
	if totals.Net != 3625000 {
		t.Fatalf("expected net 3625000, got %v", totals.Net)
	}
	if len(totals.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", totals.Warnings)
	}
}

func TestComputeTotalsPrefersSourceDeductionTotal(t *testing.T) {
	row := Row{
		BasicSalary:    2000000,
		DeductionLoan:  100000,
		DeductionLate:  50000,
		DeductionTotal: 175000,
	}
	totals := ComputeTotals(row)
	if totals.Deductions != 175000 {
		t.Fatalf("expected deductions 175000, got %v", totals.Deductions)
	}
	if len(totals.Warnings) != 1 || totals.Warnings[0] != WarningTotalMismatch {
		t.Fatalf("expected a total_mismatch warning, got %v", totals.Warnings)
	}
}

func TestComputeTotalsTrustsSourceNet(t *testing.T) {
	row := Row{
		BasicSalary: 2000000,
		EWAAmount:   500000,
		NetSalary:   1600000,
	}
	totals := ComputeTotals(row)
	if totals.Net != 1600000 {
		t.Fatalf("expected net 1600000, got %v", totals.Net)
	}
}

func TestComputeTotalsSubtractsEWA(t *testing.T) {
	row := Row{
		BasicSalary: 2000000,
		EWAAmount:   500000,
	}
	totals := ComputeTotals(row)
	if totals.Net != 1500000 {
		t.Fatalf("expected net 1500000, got %v", totals.Net)
	}
}
