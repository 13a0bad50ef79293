package payroll

import "time"

// Row is one normalized payroll row parsed from an uploaded workbook,
// keyed by logical field names. It is the superset of all division
// layouts; fields a division does not carry stay zero. Rows are returned
// to the caller as a preview and persisted only on commit.
type Row struct {
	EmployeeName  string `json:"employee_name"`
	Period        string `json:"period"`
	AccountNumber string `json:"account_number"`

	DaysTotal      int `json:"days_total"`
	DaysOff        int `json:"days_off"`
	DaysSick       int `json:"days_sick"`
	DaysPermission int `json:"days_permission"`
	DaysAlpha      int `json:"days_alpha"`
	DaysLeave      int `json:"days_leave"`
	DaysLongShift  int `json:"days_long_shift"`
	DaysPresent    int `json:"days_present"`

	BasicSalary    float64 `json:"basic_salary"`
	TrainingSalary float64 `json:"training_salary"`

	MealRate          float64 `json:"meal_rate"`
	MealAmount        float64 `json:"meal_amount"`
	TransportRate     float64 `json:"transport_rate"`
	TransportAmount   float64 `json:"transport_amount"`
	AttendanceRate    float64 `json:"attendance_rate"`
	AttendanceAmount  float64 `json:"attendance_amount"`
	HealthAllowance   float64 `json:"health_allowance"`
	PositionAllowance float64 `json:"position_allowance"`

	MandatoryOvertimeRate   float64 `json:"mandatory_overtime_rate"`
	MandatoryOvertimeAmount float64 `json:"mandatory_overtime_amount"`

	TotalSalary1 float64 `json:"total_salary_1"`

	OvertimeRate   float64 `json:"overtime_rate"`
	OvertimeHours  float64 `json:"overtime_hours"`
	OvertimeAmount float64 `json:"overtime_amount"`

	Bonus              float64 `json:"bonus"`
	Incentive          float64 `json:"incentive"`
	HolidayAllowance   float64 `json:"holiday_allowance"`
	Adjustment         float64 `json:"adjustment"`
	OutOfTownIncentive float64 `json:"insentif_luar_kota"`
	AttendIncentive    float64 `json:"insentif_kehadiran"`
	SaturdayDuty       float64 `json:"piket_um_sabtu"`

	TargetKoli   float64 `json:"target_koli"`
	AccessoryFee float64 `json:"fee_aksesoris"`
	BPJSAdjust   float64 `json:"adj_bpjs"`

	TotalSalary2 float64 `json:"total_salary_2"`
	PolicyHO     float64 `json:"policy_ho"`

	DeductionAbsent   float64 `json:"deduction_absent"`
	DeductionLate     float64 `json:"deduction_late"`
	DeductionAlpha    float64 `json:"deduction_alpha"`
	DeductionShortage float64 `json:"deduction_shortage"`
	DeductionLoan     float64 `json:"deduction_loan"`
	DeductionAdminFee float64 `json:"deduction_admin_fee"`
	DeductionBPJSTK   float64 `json:"deduction_bpjs_tk"`
	DeductionEWA      float64 `json:"deduction_ewa"`
	DeductionTotal    float64 `json:"deduction_total"`

	GrandTotal   float64 `json:"grand_total"`
	EWAAmount    float64 `json:"ewa_amount"`
	NetSalary    float64 `json:"net_salary"`
	FinalPayment float64 `json:"final_payment"`

	YearsOfService float64 `json:"years_of_service"`
	Notes          string  `json:"notes"`

	Warnings []string `json:"warnings,omitempty"`
}

// Preview is the parse-stage response: what the workbook contained, before
// anything touches the database.
type Preview struct {
	Message          string  `json:"message"`
	FileName         string  `json:"fileName,omitempty"`
	RowsCount        int     `json:"rowsCount"`
	Rows             []Row   `json:"rows"`
	UnresolvedFields []Field `json:"unresolvedFields,omitempty"`
}

// RowError reports one skipped row at commit time.
type RowError struct {
	Row          int    `json:"row"`
	EmployeeName string `json:"employee_name"`
	Reason       string `json:"reason"`
}

// CommitResult summarizes a commit: rows saved plus every row that was
// skipped and why. Partial failure is a normal outcome, not an error.
type CommitResult struct {
	Message string     `json:"message"`
	Saved   int        `json:"saved"`
	Errors  []RowError `json:"errors"`
}

// Totals are the derived monetary aggregates stored alongside a row.
type Totals struct {
	Gross      float64
	Deductions float64
	Net        float64
	Warnings   []string
}

// Record is a persisted payroll row.
type Record struct {
	ID              string    `json:"id"`
	Division        Division  `json:"division"`
	EmployeeID      string    `json:"employeeId"`
	EmployeeName    string    `json:"employeeName"`
	Period          string    `json:"period"`
	BasicSalary     float64   `json:"basicSalary"`
	GrossSalary     float64   `json:"grossSalary"`
	TotalDeductions float64   `json:"totalDeductions"`
	NetSalary       float64   `json:"netSalary"`
	Status          string    `json:"status"`
	SignerName      string    `json:"signerName,omitempty"`
	Details         Row       `json:"details"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
