package payroll

import (
	"github.com/xuri/excelize/v2"
)

// extractRows walks the data region below the header and produces one
// Row per employee line. Lines whose name cell is empty or numeric are
// skipped: sheets end in subtotal and signature rows that would
// otherwise import as employees.
func extractRows(b *Book, sc Schema, cols map[Field]string, headerRow int, nameCol string, period string) []Row {
	start := headerRow + sc.DataRowOffset
	rows := make([]Row, 0, b.LastRow())
	for rowNum := start; rowNum <= b.LastRow(); rowNum++ {
		name := Text(b.Cell(nameCol, rowNum))
		if !textLike(name) {
			continue
		}

		r := Row{EmployeeName: name, Period: period}
		for field, col := range cols {
			if field == FieldEmployeeName {
				continue
			}
			setField(&r, field, b.Cell(col, rowNum))
		}

		if sc.PeriodSerialColumn != "" {
			if p, ok := periodFromSerial(b.Cell(sc.PeriodSerialColumn, rowNum)); ok {
				r.Period = p
			}
		}

		presentCol, presentBound := cols[FieldDaysPresent]
		presentMissing := !presentBound || Text(b.Cell(presentCol, rowNum)) == ""
		deriveRow(&r, presentMissing)
		rows = append(rows, r)
	}
	return rows
}

// periodFromSerial converts an Excel date serial into a "2006-01" period.
func periodFromSerial(raw string) (string, bool) {
	serial := Number(raw)
	if serial <= 0 {
		return "", false
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return "", false
	}
	return t.Format("2006-01"), true
}

// deriveRow fills values the sheet carries only implicitly.
func deriveRow(r *Row, presentMissing bool) {
	if r.OvertimeAmount == 0 && r.OvertimeHours > 0 && r.OvertimeRate > 0 {
		r.OvertimeAmount = r.OvertimeHours * r.OvertimeRate
	}

	if presentMissing && r.DaysTotal > 0 {
		present := r.DaysTotal - (r.DaysOff + r.DaysSick + r.DaysPermission + r.DaysAlpha + r.DaysLeave)
		if present < 0 {
			present = 0
			r.Warnings = append(r.Warnings, WarningNegativeDaysPresent)
		}
		r.DaysPresent = present
	}
}

// setField routes one raw cell into its Row member with the coercion the
// field class requires.
func setField(r *Row, f Field, raw string) {
	switch f {
	case FieldAccountNumber:
		r.AccountNumber = Text(raw)
	case FieldNotes:
		r.Notes = Text(raw)

	case FieldDaysTotal:
		r.DaysTotal = Int(raw)
	case FieldDaysOff:
		r.DaysOff = Int(raw)
	case FieldDaysSick:
		r.DaysSick = Int(raw)
	case FieldDaysPermission:
		r.DaysPermission = Int(raw)
	case FieldDaysAlpha:
		r.DaysAlpha = Int(raw)
	case FieldDaysLeave:
		r.DaysLeave = Int(raw)
	case FieldDaysLongShift:
		r.DaysLongShift = Int(raw)
	case FieldDaysPresent:
		r.DaysPresent = Int(raw)

	case FieldBasicSalary:
		r.BasicSalary = Number(raw)
	case FieldTrainingSalary:
		r.TrainingSalary = Number(raw)
	case FieldMealRate:
		r.MealRate = Number(raw)
	case FieldMealAmount:
		r.MealAmount = Number(raw)
	case FieldTransportRate:
		r.TransportRate = Number(raw)
	case FieldTransportAmount:
		r.TransportAmount = Number(raw)
	case FieldAttendanceRate:
		r.AttendanceRate = Number(raw)
	case FieldAttendanceAmount:
		r.AttendanceAmount = Number(raw)
	case FieldHealthAllowance:
		r.HealthAllowance = Number(raw)
	case FieldPositionAllowance:
		r.PositionAllowance = Number(raw)
	case FieldMandatoryOvertimeRate:
		r.MandatoryOvertimeRate = Number(raw)
	case FieldMandatoryOvertimeAmount:
		r.MandatoryOvertimeAmount = Number(raw)
	case FieldTotalSalary1:
		r.TotalSalary1 = Number(raw)
	case FieldOvertimeRate:
		r.OvertimeRate = Number(raw)
	case FieldOvertimeHours:
		r.OvertimeHours = Number(raw)
	case FieldOvertimeAmount:
		r.OvertimeAmount = Number(raw)
	case FieldBonus:
		r.Bonus = Number(raw)
	case FieldIncentive:
		r.Incentive = Number(raw)
	case FieldHolidayAllowance:
		r.HolidayAllowance = Number(raw)
	case FieldAdjustment:
		r.Adjustment = Number(raw)
	case FieldOutOfTownIncentive:
		r.OutOfTownIncentive = Number(raw)
	case FieldAttendIncentive:
		r.AttendIncentive = Number(raw)
	case FieldSaturdayDuty:
		r.SaturdayDuty = Number(raw)
	case FieldTargetKoli:
		r.TargetKoli = Number(raw)
	case FieldAccessoryFee:
		r.AccessoryFee = Number(raw)
	case FieldBPJSAdjust:
		r.BPJSAdjust = Number(raw)
	case FieldTotalSalary2:
		r.TotalSalary2 = Number(raw)
	case FieldPolicyHO:
		r.PolicyHO = Number(raw)
	case FieldDeductionAbsent:
		r.DeductionAbsent = Number(raw)
	case FieldDeductionLate:
		r.DeductionLate = Number(raw)
	case FieldDeductionAlpha:
		r.DeductionAlpha = Number(raw)
	case FieldDeductionShortage:
		r.DeductionShortage = Number(raw)
	case FieldDeductionLoan:
		r.DeductionLoan = Number(raw)
	case FieldDeductionAdminFee:
		r.DeductionAdminFee = Number(raw)
	case FieldDeductionBPJSTK:
		r.DeductionBPJSTK = Number(raw)
	case FieldDeductionEWA:
		r.DeductionEWA = Number(raw)
	case FieldDeductionTotal:
		r.DeductionTotal = Number(raw)
	case FieldGrandTotal:
		r.GrandTotal = Number(raw)
	case FieldEWAAmount:
		r.EWAAmount = Number(raw)
	case FieldNetSalary:
		r.NetSalary = Number(raw)
	case FieldFinalPayment:
		r.FinalPayment = Number(raw)
	case FieldYearsOfService:
		r.YearsOfService = Number(raw)
	}
}
