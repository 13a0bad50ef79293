package payroll

const (
	StatusDraft    = "draft"
	StatusApproved = "approved"
	StatusPaid     = "paid"

	WarningNegativeDaysPresent = "negative_days_present"
	WarningTotalMismatch       = "total_mismatch"

	ReasonNotFound      = "not found"
	ReasonAlreadyExists = "already exists"
)

// ValidStatus reports whether s is one of the allowed record statuses.
func ValidStatus(s string) bool {
	return s == StatusDraft || s == StatusApproved || s == StatusPaid
}
