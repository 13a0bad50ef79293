package payroll

import "math"

// Sheets carry their own subtotal columns, and those are what payroll
// actually paid out. ComputeTotals therefore trusts a nonzero source
// total verbatim and only falls back to summing components when the
// sheet left the total blank. When a source total and the component sum
// disagree, the row is flagged but the source value still wins.

const totalsTolerance = 1.0

// ComputeTotals derives the gross, deduction and net aggregates for one
// parsed row.
func ComputeTotals(r Row) Totals {
	var t Totals

	componentDeductions := r.DeductionAbsent + r.DeductionLate + r.DeductionAlpha +
		r.DeductionShortage + r.DeductionLoan + r.DeductionAdminFee +
		r.DeductionBPJSTK + r.DeductionEWA
	if r.DeductionTotal > 0 {
		t.Deductions = r.DeductionTotal
		if componentDeductions > 0 && math.Abs(r.DeductionTotal-componentDeductions) > totalsTolerance {
			t.Warnings = append(t.Warnings, WarningTotalMismatch)
		}
	} else {
		t.Deductions = componentDeductions
	}

	componentGross := r.BasicSalary + r.TrainingSalary +
		r.MealAmount + r.TransportAmount + r.AttendanceAmount +
		r.HealthAllowance + r.PositionAllowance +
		r.MandatoryOvertimeAmount + r.OvertimeAmount +
		r.Bonus + r.Incentive + r.HolidayAllowance + r.Adjustment +
		r.OutOfTownIncentive + r.AttendIncentive + r.SaturdayDuty +
		r.TargetKoli + r.AccessoryFee + r.BPJSAdjust + r.PolicyHO
	switch {
	case r.TotalSalary2 > 0:
		t.Gross = r.TotalSalary2
	case r.GrandTotal > 0:
		t.Gross = r.GrandTotal
	default:
		t.Gross = componentGross
	}
	// Only the gross-stage subtotal is comparable against the component
	// sum; a grand total already has deductions folded in.
	if r.TotalSalary2 > 0 && componentGross > 0 && math.Abs(r.TotalSalary2-componentGross) > totalsTolerance {
		t.Warnings = append(t.Warnings, WarningTotalMismatch)
	}

	if r.NetSalary > 0 {
		t.Net = r.NetSalary
	} else {
		t.Net = t.Gross - t.Deductions - r.EWAAmount
	}

	return t
}
