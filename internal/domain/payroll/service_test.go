package payroll

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
)

type fakeStore struct {
	records []Record
	nextID  int
}

func (s *fakeStore) InsertRecord(ctx context.Context, rec Record) (string, error) {
	s.nextID++
	rec.ID = fmt.Sprintf("rec-%d", s.nextID)
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	s.records = append(s.records, rec)
	return rec.ID, nil
}

func (s *fakeStore) RecordExists(ctx context.Context, division Division, employeeID, period string) (bool, error) {
	for _, rec := range s.records {
		if rec.Division == division && rec.EmployeeID == employeeID && rec.Period == period {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) CountRecords(ctx context.Context, division Division, period, status string) (int, error) {
	records, _ := s.ListRecords(ctx, division, period, status, len(s.records), 0)
	return len(records), nil
}

func (s *fakeStore) ListRecords(ctx context.Context, division Division, period, status string, limit, offset int) ([]Record, error) {
	var out []Record
	for _, rec := range s.records {
		if rec.Division == division && (period == "" || rec.Period == period) && (status == "" || rec.Status == status) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *fakeStore) GetRecord(ctx context.Context, id string) (Record, error) {
	for _, rec := range s.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return Record{}, ErrRecordNotFound
}

func (s *fakeStore) UpdateRecordStatus(ctx context.Context, id, status, signerName string) (Record, error) {
	for i, rec := range s.records {
		if rec.ID == id {
			s.records[i].Status = status
			s.records[i].SignerName = signerName
			s.records[i].UpdatedAt = time.Now()
			return s.records[i], nil
		}
	}
	return Record{}, ErrRecordNotFound
}

func (s *fakeStore) DeleteRecord(ctx context.Context, id string) error {
	for i, rec := range s.records {
		if rec.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return ErrRecordNotFound
}

type fakeDirectory struct {
	ids map[string]string
}

func (d *fakeDirectory) FindEmployeeIDByName(ctx context.Context, name string) (string, error) {
	return d.ids[strings.ToLower(strings.TrimSpace(name))], nil
}

func newTestService() (*Service, *fakeStore) {
	store := &fakeStore{}
	directory := &fakeDirectory{ids: map[string]string{
		"budi santoso": "emp-1",
		"siti aminah":  "emp-2",
	}}
	return NewService(store, directory), store
}

func TestCommitDuplicateGate(t *testing.T) {
	svc, store := newTestService()
	rows := []Row{
		{EmployeeName: "Budi Santoso", Period: "2024-05", BasicSalary: 3500000},
		{EmployeeName: "BUDI SANTOSO", Period: "2024-05", BasicSalary: 3500000},
	}

	result, err := svc.Commit(context.Background(), DivisionFnB, rows)
	if err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	if result.Saved != 1 {
		t.Fatalf("expected 1 saved, got %d", result.Saved)
	}
	if len(result.Errors) != 1 || result.Errors[0].Reason != ReasonAlreadyExists {
		t.Fatalf("expected one already-exists error, got %v", result.Errors)
	}
	if len(store.records) != 1 {
		t.Fatalf("expected 1 stored record, got %d", len(store.records))
	}

	// replaying the whole commit saves nothing new
	again, err := svc.Commit(context.Background(), DivisionFnB, rows[:1])
	if err != nil {
		t.Fatalf("second commit failed: %v", err)
	}
	if again.Saved != 0 {
		t.Fatalf("expected 0 saved on replay, got %d", again.Saved)
	}
}

func TestCommitUnknownEmployee(t *testing.T) {
	svc, store := newTestService()
	rows := []Row{{EmployeeName: "Orang Asing", Period: "2024-05"}}

	result, err := svc.Commit(context.Background(), DivisionFnB, rows)
	if err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	if result.Saved != 0 {
		t.Fatalf("expected 0 saved, got %d", result.Saved)
	}
	if len(result.Errors) != 1 || result.Errors[0].Reason != ReasonNotFound {
		t.Fatalf("expected one not-found error, got %v", result.Errors)
	}
	if result.Errors[0].Row != 1 || result.Errors[0].EmployeeName != "Orang Asing" {
		t.Fatalf("row error missing position or name: %+v", result.Errors[0])
	}
	if len(store.records) != 0 {
		t.Fatalf("expected nothing stored, got %d", len(store.records))
	}
}

func TestCommitComputesTotals(t *testing.T) {
	svc, store := newTestService()
	rows := []Row{{
		EmployeeName:  "Siti Aminah",
		Period:        "2024-05",
		BasicSalary:   5000000,
		DeductionLoan: 200000,
		EWAAmount:     300000,
	}}

	result, err := svc.Commit(context.Background(), DivisionHO, rows)
	if err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	if result.Saved != 1 {
		t.Fatalf("expected 1 saved, got %d", result.Saved)
	}

	rec := store.records[0]
	if rec.Status != StatusDraft {
		t.Fatalf("expected draft status, got %q", rec.Status)
	}
	if rec.EmployeeID != "emp-2" {
		t.Fatalf("expected emp-2, got %q", rec.EmployeeID)
	}
	if rec.GrossSalary != 5000000 {
		t.Fatalf("expected gross 5000000, got %v", rec.GrossSalary)
	}
	if rec.TotalDeductions != 200000 {
		t.Fatalf("expected deductions 200000, got %v", rec.TotalDeductions)
	}
	if rec.NetSalary != 4500000 {
		t.Fatalf("expected net 4500000, got %v", rec.NetSalary)
	}
}

func TestCommitUnknownDivision(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Commit(context.Background(), Division("warehouse"), []Row{{EmployeeName: "Budi Santoso"}}); err == nil {
		t.Fatal("expected error for unknown division")
	}
}

func TestListFiltersByStatus(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	rows := []Row{
		{EmployeeName: "Budi Santoso", Period: "2024-05", BasicSalary: 1000000},
		{EmployeeName: "Siti Aminah", Period: "2024-05", BasicSalary: 2000000},
	}
	if _, err := svc.Commit(ctx, DivisionFnB, rows); err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, store.records[0].ID, StatusApproved, "Dewi"); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	records, total, err := svc.List(ctx, DivisionFnB, "2024-05", StatusApproved, 50, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(records) != 1 {
		t.Fatalf("expected 1 approved record, got %d (%d)", len(records), total)
	}
	if records[0].Status != StatusApproved {
		t.Fatalf("expected approved, got %q", records[0].Status)
	}

	if _, _, err := svc.List(ctx, DivisionFnB, "", "archived", 50, 0); err != ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestFormatRecordGroupsDetails(t *testing.T) {
	rec := Record{
		ID:     "rec-1",
		Status: StatusDraft,
		Details: Row{
			BasicSalary:   3500000,
			MealAmount:    300000,
			DeductionLoan: 200000,
			DaysTotal:     26,
			DaysPresent:   22,
		},
	}

	view := FormatRecord(rec)
	if view.Allowances["basic_salary"] != 3500000 || view.Allowances["meal_amount"] != 300000 {
		t.Fatalf("unexpected allowances: %v", view.Allowances)
	}
	if len(view.Allowances) != 2 {
		t.Fatalf("zero components must be omitted, got %v", view.Allowances)
	}
	if view.Deductions["deduction_loan"] != 200000 {
		t.Fatalf("unexpected deductions: %v", view.Deductions)
	}
	if view.Attendance["days_total"] != 26 || view.Attendance["days_present"] != 22 {
		t.Fatalf("unexpected attendance: %v", view.Attendance)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	if _, err := svc.Commit(ctx, DivisionFnB, []Row{{EmployeeName: "Budi Santoso", Period: "2024-05", BasicSalary: 1000000}}); err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	id := store.records[0].ID

	rec, err := svc.UpdateStatus(ctx, id, StatusApproved, "Dewi Lestari")
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if rec.Status != StatusApproved || rec.SignerName != "Dewi Lestari" {
		t.Fatalf("expected approved by Dewi Lestari, got %q %q", rec.Status, rec.SignerName)
	}

	rec, err = svc.UpdateStatus(ctx, id, StatusPaid, "")
	if err != nil {
		t.Fatalf("pay failed: %v", err)
	}
	if rec.Status != StatusPaid {
		t.Fatalf("expected paid, got %q", rec.Status)
	}
	if rec.SignerName != "Dewi Lestari" {
		t.Fatalf("signer must survive the paid transition, got %q", rec.SignerName)
	}

	if _, err := svc.UpdateStatus(ctx, id, StatusDraft, ""); err != ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus moving backwards, got %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, id, "archived", ""); err != ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus for unknown status, got %v", err)
	}
}
