package payroll

// Field is a logical payroll column name. Schemas bind fields to sheet
// columns; the extractor binds them to Row struct members. Values double
// as the JSON names reported for unresolved resolver fields.
type Field string

const (
	FieldEmployeeName  Field = "employee_name"
	FieldAccountNumber Field = "account_number"

	FieldDaysTotal      Field = "days_total"
	FieldDaysOff        Field = "days_off"
	FieldDaysSick       Field = "days_sick"
	FieldDaysPermission Field = "days_permission"
	FieldDaysAlpha      Field = "days_alpha"
	FieldDaysLeave      Field = "days_leave"
	FieldDaysLongShift  Field = "days_long_shift"
	FieldDaysPresent    Field = "days_present"

	FieldBasicSalary    Field = "basic_salary"
	FieldTrainingSalary Field = "training_salary"

	FieldMealRate          Field = "meal_rate"
	FieldMealAmount        Field = "meal_amount"
	FieldTransportRate     Field = "transport_rate"
	FieldTransportAmount   Field = "transport_amount"
	FieldAttendanceRate    Field = "attendance_rate"
	FieldAttendanceAmount  Field = "attendance_amount"
	FieldHealthAllowance   Field = "health_allowance"
	FieldPositionAllowance Field = "position_allowance"

	FieldMandatoryOvertimeRate   Field = "mandatory_overtime_rate"
	FieldMandatoryOvertimeAmount Field = "mandatory_overtime_amount"

	FieldTotalSalary1 Field = "total_salary_1"

	FieldOvertimeRate   Field = "overtime_rate"
	FieldOvertimeHours  Field = "overtime_hours"
	FieldOvertimeAmount Field = "overtime_amount"

	FieldBonus              Field = "bonus"
	FieldIncentive          Field = "incentive"
	FieldHolidayAllowance   Field = "holiday_allowance"
	FieldAdjustment         Field = "adjustment"
	FieldOutOfTownIncentive Field = "insentif_luar_kota"
	FieldAttendIncentive    Field = "insentif_kehadiran"
	FieldSaturdayDuty       Field = "piket_um_sabtu"

	FieldTargetKoli   Field = "target_koli"
	FieldAccessoryFee Field = "fee_aksesoris"
	FieldBPJSAdjust   Field = "adj_bpjs"

	FieldTotalSalary2 Field = "total_salary_2"
	FieldPolicyHO     Field = "policy_ho"

	FieldDeductionAbsent   Field = "deduction_absent"
	FieldDeductionLate     Field = "deduction_late"
	FieldDeductionAlpha    Field = "deduction_alpha"
	FieldDeductionShortage Field = "deduction_shortage"
	FieldDeductionLoan     Field = "deduction_loan"
	FieldDeductionAdminFee Field = "deduction_admin_fee"
	FieldDeductionBPJSTK   Field = "deduction_bpjs_tk"
	FieldDeductionEWA      Field = "deduction_ewa"
	FieldDeductionTotal    Field = "deduction_total"

	FieldGrandTotal   Field = "grand_total"
	FieldEWAAmount    Field = "ewa_amount"
	FieldNetSalary    Field = "net_salary"
	FieldFinalPayment Field = "final_payment"

	FieldYearsOfService Field = "years_of_service"
	FieldNotes          Field = "notes"
)
