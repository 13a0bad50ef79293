package payroll

import "context"

type StoreAPI interface {
	InsertRecord(ctx context.Context, rec Record) (string, error)
	RecordExists(ctx context.Context, division Division, employeeID, period string) (bool, error)
	CountRecords(ctx context.Context, division Division, period, status string) (int, error)
	ListRecords(ctx context.Context, division Division, period, status string, limit, offset int) ([]Record, error)
	GetRecord(ctx context.Context, id string) (Record, error)
	UpdateRecordStatus(ctx context.Context, id, status, signerName string) (Record, error)
	DeleteRecord(ctx context.Context, id string) error
}

// DirectoryAPI is the slice of the employee directory the commit gate
// needs. A missing employee comes back as an empty id, not an error.
type DirectoryAPI interface {
	FindEmployeeIDByName(ctx context.Context, name string) (string, error)
}
