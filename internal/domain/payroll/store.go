package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) InsertRecord(ctx context.Context, rec Record) (string, error) {
	details, err := json.Marshal(rec.Details)
	if err != nil {
		return "", fmt.Errorf("encode details: %w", err)
	}

	var id string
	err = s.DB.QueryRow(ctx, `
    INSERT INTO payroll_records
      (division, employee_id, employee_name, period,
       basic_salary, gross_salary, total_deductions, net_salary,
       status, details)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
    RETURNING id
  `, rec.Division, rec.EmployeeID, rec.EmployeeName, rec.Period,
		rec.BasicSalary, rec.GrossSalary, rec.TotalDeductions, rec.NetSalary,
		rec.Status, details).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) RecordExists(ctx context.Context, division Division, employeeID, period string) (bool, error) {
	var exists bool
	err := s.DB.QueryRow(ctx, `
    SELECT EXISTS (
      SELECT 1 FROM payroll_records
      WHERE division = $1 AND employee_id = $2 AND period = $3
    )
  `, division, employeeID, period).Scan(&exists)
	return exists, err
}

func (s *Store) CountRecords(ctx context.Context, division Division, period, status string) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(*) FROM payroll_records
    WHERE division = $1 AND ($2 = '' OR period = $2) AND ($3 = '' OR status = $3)
  `, division, period, status).Scan(&count)
	return count, err
}

func (s *Store) ListRecords(ctx context.Context, division Division, period, status string, limit, offset int) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, division, employee_id, employee_name, period,
           basic_salary, gross_salary, total_deductions, net_salary,
           status, COALESCE(signer_name, ''), details, created_at, updated_at
    FROM payroll_records
    WHERE division = $1 AND ($2 = '' OR period = $2) AND ($3 = '' OR status = $3)
    ORDER BY period DESC, employee_name
    LIMIT $4 OFFSET $5
  `, division, period, status, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *Store) GetRecord(ctx context.Context, id string) (Record, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, division, employee_id, employee_name, period,
           basic_salary, gross_salary, total_deductions, net_salary,
           status, COALESCE(signer_name, ''), details, created_at, updated_at
    FROM payroll_records
    WHERE id = $1
  `, id)
	rec, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrRecordNotFound
	}
	return rec, err
}

func (s *Store) UpdateRecordStatus(ctx context.Context, id, status, signerName string) (Record, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE payroll_records
    SET status = $2, signer_name = NULLIF($3, ''), updated_at = now()
    WHERE id = $1
  `, id, status, signerName)
	if err != nil {
		return Record{}, err
	}
	if tag.RowsAffected() == 0 {
		return Record{}, ErrRecordNotFound
	}
	return s.GetRecord(ctx, id)
}

func (s *Store) DeleteRecord(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM payroll_records WHERE id = $1
  `, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func scanRecord(row pgx.Row) (Record, error) {
	var rec Record
	var details []byte
	err := row.Scan(&rec.ID, &rec.Division, &rec.EmployeeID, &rec.EmployeeName, &rec.Period,
		&rec.BasicSalary, &rec.GrossSalary, &rec.TotalDeductions, &rec.NetSalary,
		&rec.Status, &rec.SignerName, &details, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return Record{}, err
	}
	if len(details) > 0 {
		if err := json.Unmarshal(details, &rec.Details); err != nil {
			return Record{}, fmt.Errorf("decode details: %w", err)
		}
	}
	return rec, nil
}
