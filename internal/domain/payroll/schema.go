package payroll

// Division selects which spreadsheet layout an import applies. The caller
// picks it through the route; it is never inferred from the workbook.
type Division string

const (
	DivisionHO           Division = "ho"
	DivisionFnB          Division = "fnb"
	DivisionMinimarket   Division = "minimarket"
	DivisionReflexiology Division = "reflexiology"
	DivisionWrapping     Division = "wrapping"
	DivisionCelluller    Division = "celluller"
	DivisionHans         Division = "hans"
)

// FieldPatterns binds one logical field to an ordered list of candidate
// header labels, tried in order against the resolved header map. Default,
// when set, is the column letter used if no label matches.
type FieldPatterns struct {
	Field   Field
	Labels  []string
	Default string
}

// Schema is the declarative description of one division's layout: how to
// find the header, where data starts, and how logical fields bind to
// columns, either a fixed letter table or resolver patterns. One engine,
// seven of these tables, instead of seven copies of the engine.
type Schema struct {
	Division Division

	// Substring label variants that identify the header row; ExactLabels
	// match a whole trimmed cell (the bare "Nama" case, which as a
	// substring would hit far too much).
	HeaderLabels []string
	ExactLabels  []string

	// Rows 1..HeaderScanRows are searched for the header. FixedHeaderRow
	// skips detection entirely; HeaderFallbackRow is used when detection
	// fails instead of aborting (0 means abort).
	HeaderScanRows    int
	FixedHeaderRow    int
	HeaderFallbackRow int

	// First data row is header + DataRowOffset (2 skips a units row).
	DataRowOffset int

	NameColumn string

	// Exactly one of Columns (fixed letter map) or Patterns (two-row
	// header resolver) is set.
	Columns  map[Field]string
	Patterns []FieldPatterns

	// PeriodSerialColumn, when set, holds an Excel date serial per data
	// row that overrides the import period.
	PeriodSerialColumn string
}

var defaultHeaderLabels = []string{"nama karyawan", "employee name", "nama pegawai"}

var schemas = map[Division]Schema{
	DivisionHO: {
		Division:       DivisionHO,
		HeaderLabels:   defaultHeaderLabels,
		ExactLabels:    []string{"nama"},
		HeaderScanRows: 20,
		DataRowOffset:  2,
		NameColumn:     "B",
		Patterns: []FieldPatterns{
			{Field: FieldEmployeeName, Labels: []string{"nama karyawan", "nama"}, Default: "B"},
			{Field: FieldAccountNumber, Labels: []string{"no rekening", "account number", "rekening", "nomor rekening"}, Default: "C"},
			{Field: FieldDaysPresent, Labels: []string{"jml hr masuk", "hadir"}, Default: "E"},
			{Field: FieldBasicSalary, Labels: []string{"gaji pokok"}},
			{Field: FieldTransportAmount, Labels: []string{"transport total", "uang transport"}},
			{Field: FieldTransportRate, Labels: []string{"transport @hari"}},
			{Field: FieldAttendanceAmount, Labels: []string{"uang kehadiran total", "uang kehadiran"}},
			{Field: FieldAttendanceRate, Labels: []string{"uang kehadiran @hari"}},
			{Field: FieldHealthAllowance, Labels: []string{"tunjangan kesehatan", "tunjangan"}},
			{Field: FieldPositionAllowance, Labels: []string{"tunjangan jabatan"}},
			{Field: FieldOvertimeHours, Labels: []string{"jam lbr", "jam lembur"}},
			{Field: FieldOvertimeAmount, Labels: []string{"uang lembur total"}},
			{Field: FieldOvertimeRate, Labels: []string{"uang lembur @hari", "uang lembur @ jam"}},
			{Field: FieldHolidayAllowance, Labels: []string{"thr", "insentif lebaran", "insentif", "incentive"}},
			{Field: FieldOutOfTownIncentive, Labels: []string{"insentif luar kota", "city incentive"}},
			{Field: FieldAttendIncentive, Labels: []string{"insentif kehadiran", "attendance incentive"}},
			{Field: FieldSaturdayDuty, Labels: []string{"piket um sabtu", "piket dan um sabtu", "piket"}},
			{Field: FieldAdjustment, Labels: []string{"adjustment", "adj gaji", "adj"}},
			{Field: FieldGrandTotal, Labels: []string{"grand total"}},
			{Field: FieldTotalSalary2, Labels: []string{"total gaji", "gross salary"}},
			{Field: FieldDeductionAbsent, Labels: []string{"potongan absen", "absen"}},
			{Field: FieldDeductionLate, Labels: []string{"terlambat", "late"}},
			{Field: FieldDeductionAlpha, Labels: []string{"potongan alfa", "alfa"}},
			{Field: FieldDeductionShortage, Labels: []string{"selisih so", "selisih", "shortage"}},
			{Field: FieldDeductionLoan, Labels: []string{"potongan kasbon", "kasbon", "pinjaman"}},
			{Field: FieldDeductionAdminFee, Labels: []string{"adm bank", "bank fee"}},
			{Field: FieldDeductionBPJSTK, Labels: []string{"bpjs tk", "bpjs ketenagakerjaan", "bpjs employment"}},
			{Field: FieldDeductionEWA, Labels: []string{"potongan ewa"}},
			{Field: FieldEWAAmount, Labels: []string{"ewa"}},
			{Field: FieldNetSalary, Labels: []string{"net salary", "gaji diterima"}},
		},
	},
	DivisionFnB: {
		Division:       DivisionFnB,
		HeaderLabels:   defaultHeaderLabels,
		HeaderScanRows: 10,
		DataRowOffset:  2,
		NameColumn:     "B",
		Columns: map[Field]string{
			FieldAccountNumber:     "C",
			FieldDaysTotal:         "D",
			FieldDaysOff:           "E",
			FieldDaysSick:          "F",
			FieldDaysPermission:    "G",
			FieldDaysAlpha:         "H",
			FieldDaysLeave:         "I",
			FieldDaysPresent:       "J",
			FieldBasicSalary:       "K",
			FieldAttendanceRate:    "L",
			FieldAttendanceAmount:  "M",
			FieldTransportRate:     "N",
			FieldTransportAmount:   "O",
			FieldHealthAllowance:   "P",
			FieldPositionAllowance: "Q",
			FieldTotalSalary1:      "R",
			FieldOvertimeRate:      "S",
			FieldOvertimeHours:     "T",
			FieldOvertimeAmount:    "U",
			FieldHolidayAllowance:  "V",
			FieldAdjustment:        "W",
			FieldTotalSalary2:      "X",
			FieldPolicyHO:          "Y",
			FieldDeductionAbsent:   "Z",
			FieldDeductionLate:     "AA",
			FieldDeductionShortage: "AB",
			FieldDeductionLoan:     "AC",
			FieldDeductionAdminFee: "AD",
			FieldDeductionBPJSTK:   "AE",
			FieldDeductionTotal:    "AF",
			FieldGrandTotal:        "AG",
			FieldEWAAmount:         "AH",
			FieldNetSalary:         "AI",
		},
	},
	DivisionMinimarket: {
		Division:       DivisionMinimarket,
		HeaderLabels:   defaultHeaderLabels,
		HeaderScanRows: 10,
		DataRowOffset:  2,
		NameColumn:     "B",
		Columns: map[Field]string{
			FieldAccountNumber:     "D",
			FieldDaysTotal:         "E",
			FieldDaysOff:           "F",
			FieldDaysSick:          "G",
			FieldDaysPermission:    "H",
			FieldDaysAlpha:         "I",
			FieldDaysLeave:         "J",
			FieldDaysPresent:       "K",
			FieldBasicSalary:       "L",
			FieldMealRate:          "M",
			FieldMealAmount:        "N",
			FieldTransportRate:     "O",
			FieldTransportAmount:   "P",
			FieldAttendanceRate:    "Q",
			FieldAttendanceAmount:  "R",
			FieldHealthAllowance:   "S",
			FieldPositionAllowance: "T",
			FieldTotalSalary1:      "U",
			FieldOvertimeRate:      "V",
			FieldOvertimeHours:     "W",
			FieldOvertimeAmount:    "X",
			FieldBonus:             "Y",
			FieldIncentive:         "Z",
			FieldHolidayAllowance:  "AA",
			FieldTotalSalary2:      "AB",
			FieldPolicyHO:          "AC",
			FieldDeductionAbsent:   "AD",
			FieldDeductionAlpha:    "AE",
			FieldDeductionShortage: "AF",
			FieldDeductionLoan:     "AG",
			FieldDeductionAdminFee: "AH",
			FieldDeductionBPJSTK:   "AI",
			FieldDeductionTotal:    "AJ",
			FieldGrandTotal:        "AK",
			FieldEWAAmount:         "AL",
			FieldNetSalary:         "AM",
		},
	},
	DivisionReflexiology: {
		Division:       DivisionReflexiology,
		HeaderLabels:   defaultHeaderLabels,
		HeaderScanRows: 10,
		DataRowOffset:  2,
		NameColumn:     "B",
		Columns: map[Field]string{
			FieldAccountNumber:     "C",
			FieldDaysTotal:         "D",
			FieldDaysOff:           "E",
			FieldDaysSick:          "F",
			FieldDaysPermission:    "G",
			FieldDaysAlpha:         "H",
			FieldDaysLeave:         "I",
			FieldDaysLongShift:     "J",
			FieldDaysPresent:       "K",
			FieldBasicSalary:       "L",
			FieldMealRate:          "M",
			FieldMealAmount:        "N",
			FieldTransportRate:     "O",
			FieldTransportAmount:   "P",
			FieldAttendanceRate:    "Q",
			FieldAttendanceAmount:  "R",
			FieldPositionAllowance: "S",
			FieldHealthAllowance:   "T",
			FieldTotalSalary1:      "U",
			FieldOvertimeRate:      "V",
			FieldOvertimeHours:     "W",
			FieldOvertimeAmount:    "X",
			FieldBonus:             "Y",
			FieldIncentive:         "Z",
			FieldTotalSalary2:      "AA",
			FieldPolicyHO:          "AB",
			FieldDeductionAbsent:   "AC",
			FieldDeductionLate:     "AD",
			FieldDeductionAlpha:    "AE",
			FieldDeductionLoan:     "AF",
			FieldDeductionAdminFee: "AG",
			FieldDeductionBPJSTK:   "AH",
			FieldDeductionTotal:    "AI",
			FieldNetSalary:         "AJ",
			FieldGrandTotal:        "AJ",
			FieldYearsOfService:    "AK",
			FieldNotes:             "AL",
		},
	},
	DivisionWrapping: {
		Division:       DivisionWrapping,
		HeaderLabels:   defaultHeaderLabels,
		HeaderScanRows: 10,
		FixedHeaderRow: 2,
		DataRowOffset:  2,
		NameColumn:     "B",
		Columns: map[Field]string{
			FieldDaysTotal:         "E",
			FieldDaysOff:           "F",
			FieldDaysSick:          "G",
			FieldDaysPermission:    "H",
			FieldDaysAlpha:         "I",
			FieldDaysLeave:         "J",
			FieldDaysPresent:       "K",
			FieldBasicSalary:       "L",
			FieldTrainingSalary:    "M",
			FieldMealRate:          "N",
			FieldMealAmount:        "O",
			FieldTransportRate:     "P",
			FieldTransportAmount:   "Q",
			FieldAttendanceAmount:  "R",
			FieldHealthAllowance:   "T",
			FieldBonus:             "U",
			FieldOvertimeAmount:    "W",
			FieldTargetKoli:        "AA",
			FieldAccessoryFee:      "AB",
			FieldGrandTotal:        "AC",
			FieldBPJSAdjust:        "AD",
			FieldDeductionAbsent:   "AE",
			FieldDeductionLate:     "AF",
			FieldDeductionAlpha:    "AG",
			FieldDeductionLoan:     "AH",
			FieldDeductionAdminFee: "AI",
			FieldDeductionBPJSTK:   "AJ",
			FieldDeductionTotal:    "AK",
			FieldNetSalary:         "AL",
			FieldEWAAmount:         "AM",
		},
		PeriodSerialColumn: "C",
	},
	DivisionCelluller: {
		Division:          DivisionCelluller,
		HeaderLabels:      defaultHeaderLabels,
		ExactLabels:       []string{"nama"},
		HeaderScanRows:    10,
		HeaderFallbackRow: 1,
		DataRowOffset:     1,
		NameColumn:        "B",
		Columns: map[Field]string{
			FieldAccountNumber:           "C",
			FieldDaysTotal:               "D",
			FieldDaysOff:                 "E",
			FieldDaysSick:                "F",
			FieldDaysPermission:          "G",
			FieldDaysAlpha:               "H",
			FieldDaysLeave:               "I",
			FieldDaysPresent:             "J",
			FieldBasicSalary:             "K",
			FieldPositionAllowance:       "L",
			FieldMealRate:                "M",
			FieldMealAmount:              "N",
			FieldTransportRate:           "O",
			FieldTransportAmount:         "P",
			FieldMandatoryOvertimeRate:   "Q",
			FieldMandatoryOvertimeAmount: "R",
			FieldAttendanceAmount:        "S",
			FieldHealthAllowance:         "T",
			FieldTotalSalary1:            "U",
			FieldOvertimeRate:            "V",
			FieldOvertimeHours:           "W",
			FieldOvertimeAmount:          "X",
			FieldBonus:                   "Y",
			FieldHolidayAllowance:        "Z",
			FieldAdjustment:              "AA",
			FieldGrandTotal:              "AB",
			FieldPolicyHO:                "AC",
			FieldDeductionAbsent:         "AD",
			FieldDeductionLate:           "AE",
			FieldDeductionShortage:       "AF",
			FieldDeductionLoan:           "AG",
			FieldDeductionAdminFee:       "AH",
			FieldDeductionBPJSTK:         "AI",
			FieldDeductionTotal:          "AJ",
			FieldNetSalary:               "AK",
			FieldEWAAmount:               "AL",
			FieldFinalPayment:            "AM",
		},
	},
	DivisionHans: {
		Division:       DivisionHans,
		HeaderLabels:   defaultHeaderLabels,
		HeaderScanRows: 10,
		DataRowOffset:  2,
		NameColumn:     "B",
		Columns: map[Field]string{
			FieldAccountNumber:     "D",
			FieldDaysTotal:         "E",
			FieldDaysOff:           "F",
			FieldDaysSick:          "G",
			FieldDaysPermission:    "H",
			FieldDaysAlpha:         "I",
			FieldDaysLeave:         "J",
			FieldDaysPresent:       "K",
			FieldBasicSalary:       "L",
			FieldPositionAllowance: "M",
			FieldMealRate:          "N",
			FieldMealAmount:        "O",
			FieldTransportRate:     "P",
			FieldTransportAmount:   "Q",
			FieldAttendanceAmount:  "R",
			FieldHealthAllowance:   "S",
			FieldTotalSalary1:      "T",
			FieldOvertimeRate:      "U",
			FieldOvertimeHours:     "V",
			FieldOvertimeAmount:    "W",
			FieldBonus:             "X",
			FieldHolidayAllowance:  "Y",
			FieldAdjustment:        "Z",
			FieldTotalSalary2:      "AA",
			FieldPolicyHO:          "AB",
			FieldDeductionAbsent:   "AC",
			FieldDeductionLate:     "AD",
			FieldDeductionShortage: "AE",
			FieldDeductionLoan:     "AF",
			FieldDeductionAdminFee: "AG",
			FieldDeductionBPJSTK:   "AH",
			FieldDeductionTotal:    "AI",
			FieldNetSalary:         "AJ",
			FieldGrandTotal:        "AJ",
			FieldYearsOfService:    "AK",
			FieldNotes:             "AL",
		},
	},
}

// SchemaFor returns the division's layout description.
func SchemaFor(d Division) (Schema, error) {
	sc, ok := schemas[d]
	if !ok {
		return Schema{}, ErrUnknownDivision
	}
	return sc, nil
}

// ParseDivision maps a route segment onto a known division.
func ParseDivision(s string) (Division, error) {
	d := Division(s)
	if _, ok := schemas[d]; !ok {
		return "", ErrUnknownDivision
	}
	return d, nil
}

// Divisions lists every configured division, for route validation and
// diagnostics.
func Divisions() []Division {
	out := make([]Division, 0, len(schemas))
	for d := range schemas {
		out = append(out, d)
	}
	return out
}
