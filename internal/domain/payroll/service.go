package payroll

import (
	"context"
	"fmt"
	"io"
)

type Service struct {
	store     StoreAPI
	directory DirectoryAPI
}

func NewService(store StoreAPI, directory DirectoryAPI) *Service {
	return &Service{store: store, directory: directory}
}

// Import parses an uploaded workbook into a preview. Pure read; commit
// is the caller's next call once the preview looks right.
func (s *Service) Import(r io.Reader, division Division, period, fileName string) (Preview, error) {
	return ParseWorkbook(r, division, period, fileName)
}

// Commit persists previewed rows as draft records. Each row passes two
// gates: the employee name must exist in the directory (case does not
// matter) and no record may already exist for the same division,
// employee and period. Rows that fail a gate are reported and skipped;
// a commit never aborts because one line was wrong.
func (s *Service) Commit(ctx context.Context, division Division, rows []Row) (CommitResult, error) {
	if _, err := SchemaFor(division); err != nil {
		return CommitResult{}, err
	}

	result := CommitResult{Errors: []RowError{}}
	for i, row := range rows {
		rowNum := i + 1

		employeeID, err := s.directory.FindEmployeeIDByName(ctx, row.EmployeeName)
		if err != nil {
			return result, fmt.Errorf("lookup employee %q: %w", row.EmployeeName, err)
		}
		if employeeID == "" {
			result.Errors = append(result.Errors, RowError{Row: rowNum, EmployeeName: row.EmployeeName, Reason: ReasonNotFound})
			continue
		}

		exists, err := s.store.RecordExists(ctx, division, employeeID, row.Period)
		if err != nil {
			return result, fmt.Errorf("check duplicate for %q: %w", row.EmployeeName, err)
		}
		if exists {
			result.Errors = append(result.Errors, RowError{Row: rowNum, EmployeeName: row.EmployeeName, Reason: ReasonAlreadyExists})
			continue
		}

		totals := ComputeTotals(row)
		row.Warnings = append(row.Warnings, totals.Warnings...)

		rec := Record{
			Division:        division,
			EmployeeID:      employeeID,
			EmployeeName:    row.EmployeeName,
			Period:          row.Period,
			BasicSalary:     row.BasicSalary,
			GrossSalary:     totals.Gross,
			TotalDeductions: totals.Deductions,
			NetSalary:       totals.Net,
			Status:          StatusDraft,
			Details:         row,
		}
		if _, err := s.store.InsertRecord(ctx, rec); err != nil {
			result.Errors = append(result.Errors, RowError{Row: rowNum, EmployeeName: row.EmployeeName, Reason: err.Error()})
			continue
		}
		result.Saved++
	}

	result.Message = fmt.Sprintf("saved %d of %d payroll rows", result.Saved, len(rows))
	return result, nil
}

func (s *Service) List(ctx context.Context, division Division, period, status string, limit, offset int) ([]Record, int, error) {
	if _, err := SchemaFor(division); err != nil {
		return nil, 0, err
	}
	if status != "" && !ValidStatus(status) {
		return nil, 0, ErrInvalidStatus
	}
	total, err := s.store.CountRecords(ctx, division, period, status)
	if err != nil {
		return nil, 0, err
	}
	records, err := s.store.ListRecords(ctx, division, period, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	return s.store.GetRecord(ctx, id)
}

// UpdateStatus moves a record forward through draft, approved, paid.
// Approval records who signed off; moving backwards is not allowed.
func (s *Service) UpdateStatus(ctx context.Context, id, status, signerName string) (Record, error) {
	if !ValidStatus(status) {
		return Record{}, ErrInvalidStatus
	}
	current, err := s.store.GetRecord(ctx, id)
	if err != nil {
		return Record{}, err
	}
	if !validTransition(current.Status, status) {
		return Record{}, ErrInvalidStatus
	}
	if signerName == "" {
		signerName = current.SignerName
	}
	return s.store.UpdateRecordStatus(ctx, id, status, signerName)
}

func validTransition(from, to string) bool {
	switch from {
	case StatusDraft:
		return to == StatusApproved
	case StatusApproved:
		return to == StatusPaid
	default:
		return false
	}
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.DeleteRecord(ctx, id)
}
