package payroll

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Slip renders a record as a payslip PDF and returns the document bytes
// with a suggested file name.
func (s *Service) Slip(ctx context.Context, id string) ([]byte, string, error) {
	rec, err := s.store.GetRecord(ctx, id)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", rec.EmployeeName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Division: %s", rec.Division))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", rec.Period))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", rec.Status))
	pdf.Ln(10)

	writeSlipSection(pdf, "Earnings", earningLines(rec.Details))
	writeSlipSection(pdf, "Deductions", deductionLines(rec.Details))

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Gross: %s", formatRupiah(rec.GrossSalary)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total deductions: %s", formatRupiah(rec.TotalDeductions)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net: %s", formatRupiah(rec.NetSalary)))

	if rec.SignerName != "" {
		pdf.Ln(12)
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 8, fmt.Sprintf("Approved by: %s", rec.SignerName))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("render payslip: %w", err)
	}
	name := fmt.Sprintf("payslip_%s_%s.pdf", slugify(rec.EmployeeName), rec.Period)
	return buf.Bytes(), name, nil
}

type slipLine struct {
	label  string
	amount float64
}

func writeSlipSection(pdf *gofpdf.Fpdf, title string, lines []slipLine) {
	if len(lines) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
	for _, l := range lines {
		pdf.Cell(110, 7, l.label)
		pdf.CellFormat(50, 7, formatRupiah(l.amount), "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}
	pdf.Ln(4)
}

// earningLines lists the nonzero earning components of a row.
func earningLines(r Row) []slipLine {
	all := []slipLine{
		{"Basic salary", r.BasicSalary},
		{"Training salary", r.TrainingSalary},
		{"Meal allowance", r.MealAmount},
		{"Transport allowance", r.TransportAmount},
		{"Attendance allowance", r.AttendanceAmount},
		{"Health allowance", r.HealthAllowance},
		{"Position allowance", r.PositionAllowance},
		{"Mandatory overtime", r.MandatoryOvertimeAmount},
		{"Overtime", r.OvertimeAmount},
		{"Bonus", r.Bonus},
		{"Incentive", r.Incentive},
		{"Holiday allowance", r.HolidayAllowance},
		{"Adjustment", r.Adjustment},
		{"Out-of-town incentive", r.OutOfTownIncentive},
		{"Attendance incentive", r.AttendIncentive},
		{"Saturday duty", r.SaturdayDuty},
		{"Target koli", r.TargetKoli},
		{"Accessory fee", r.AccessoryFee},
	}
	return nonzeroLines(all)
}

func deductionLines(r Row) []slipLine {
	all := []slipLine{
		{"Absence", r.DeductionAbsent},
		{"Late", r.DeductionLate},
		{"Alpha", r.DeductionAlpha},
		{"Shortage", r.DeductionShortage},
		{"Loan", r.DeductionLoan},
		{"Bank admin fee", r.DeductionAdminFee},
		{"BPJS TK", r.DeductionBPJSTK},
		{"EWA", r.DeductionEWA + r.EWAAmount},
	}
	return nonzeroLines(all)
}

func nonzeroLines(all []slipLine) []slipLine {
	out := all[:0]
	for _, l := range all {
		if l.amount != 0 {
			out = append(out, l)
		}
	}
	return out
}

// formatRupiah renders an amount with Indonesian thousands grouping.
func formatRupiah(v float64) string {
	negative := v < 0
	if negative {
		v = -v
	}
	whole := fmt.Sprintf("%.0f", v)
	var parts []string
	for len(whole) > 3 {
		parts = append([]string{whole[len(whole)-3:]}, parts...)
		whole = whole[:len(whole)-3]
	}
	parts = append([]string{whole}, parts...)
	out := "Rp " + strings.Join(parts, ".")
	if negative {
		out = "-" + out
	}
	return out
}

func slugify(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), "-"))
}
