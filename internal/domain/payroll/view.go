package payroll

// RecordView is the single-record response shape: the stored record plus
// its details regrouped into allowance, deduction and attendance maps so
// clients render sections without knowing every division's field list.
// Only nonzero components appear.
type RecordView struct {
	Record
	Allowances map[string]float64 `json:"allowances"`
	Deductions map[string]float64 `json:"deductions"`
	Attendance map[string]int     `json:"attendance"`
}

// FormatRecord groups a record's detail row for display.
func FormatRecord(rec Record) RecordView {
	d := rec.Details

	allowances := map[string]float64{}
	for f, v := range map[Field]float64{
		FieldBasicSalary:             d.BasicSalary,
		FieldTrainingSalary:          d.TrainingSalary,
		FieldMealAmount:              d.MealAmount,
		FieldTransportAmount:         d.TransportAmount,
		FieldAttendanceAmount:        d.AttendanceAmount,
		FieldHealthAllowance:         d.HealthAllowance,
		FieldPositionAllowance:       d.PositionAllowance,
		FieldMandatoryOvertimeAmount: d.MandatoryOvertimeAmount,
		FieldOvertimeAmount:          d.OvertimeAmount,
		FieldBonus:                   d.Bonus,
		FieldIncentive:               d.Incentive,
		FieldHolidayAllowance:        d.HolidayAllowance,
		FieldAdjustment:              d.Adjustment,
		FieldOutOfTownIncentive:      d.OutOfTownIncentive,
		FieldAttendIncentive:         d.AttendIncentive,
		FieldSaturdayDuty:            d.SaturdayDuty,
		FieldTargetKoli:              d.TargetKoli,
		FieldAccessoryFee:            d.AccessoryFee,
		FieldPolicyHO:                d.PolicyHO,
	} {
		if v != 0 {
			allowances[string(f)] = v
		}
	}

	deductions := map[string]float64{}
	for f, v := range map[Field]float64{
		FieldDeductionAbsent:   d.DeductionAbsent,
		FieldDeductionLate:     d.DeductionLate,
		FieldDeductionAlpha:    d.DeductionAlpha,
		FieldDeductionShortage: d.DeductionShortage,
		FieldDeductionLoan:     d.DeductionLoan,
		FieldDeductionAdminFee: d.DeductionAdminFee,
		FieldDeductionBPJSTK:   d.DeductionBPJSTK,
		FieldDeductionEWA:      d.DeductionEWA,
		FieldEWAAmount:         d.EWAAmount,
	} {
		if v != 0 {
			deductions[string(f)] = v
		}
	}

	attendance := map[string]int{}
	for f, v := range map[Field]int{
		FieldDaysTotal:      d.DaysTotal,
		FieldDaysOff:        d.DaysOff,
		FieldDaysSick:       d.DaysSick,
		FieldDaysPermission: d.DaysPermission,
		FieldDaysAlpha:      d.DaysAlpha,
		FieldDaysLeave:      d.DaysLeave,
		FieldDaysLongShift:  d.DaysLongShift,
		FieldDaysPresent:    d.DaysPresent,
	} {
		if v != 0 {
			attendance[string(f)] = v
		}
	}

	return RecordView{
		Record:     rec,
		Allowances: allowances,
		Deductions: deductions,
		Attendance: attendance,
	}
}
