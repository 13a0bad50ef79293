package employee

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const employeeColumns = `
    id, name, division, COALESCE(position, ''), COALESCE(email, ''),
    COALESCE(phone, ''), COALESCE(bank_account, ''), join_date, active,
    created_at, updated_at`

func (s *Store) ListEmployees(ctx context.Context, division string, activeOnly bool) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE ($1 = '' OR division = $1) AND (NOT $2 OR active)
    ORDER BY name
  `, division, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (s *Store) GetEmployee(ctx context.Context, id string) (Employee, error) {
	emp, err := scanEmployee(s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE id = $1
  `, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	return emp, err
}

func (s *Store) CreateEmployee(ctx context.Context, emp Employee) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (name, division, position, email, phone, bank_account, join_date, active)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING id
  `, emp.Name, emp.Division, emp.Position, emp.Email, emp.Phone,
		emp.BankAccount, emp.JoinDate, emp.Active).Scan(&id)
	if isUniqueViolation(err) {
		return "", ErrDuplicateName
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (s *Store) UpdateEmployee(ctx context.Context, id string, emp Employee) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET name = $2, division = $3, position = $4, email = $5, phone = $6,
        bank_account = $7, active = $8, updated_at = now()
    WHERE id = $1
  `, id, emp.Name, emp.Division, emp.Position, emp.Email, emp.Phone,
		emp.BankAccount, emp.Active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeactivateEmployee keeps the row so historical payroll records stay
// joinable; the name just stops matching imports.
func (s *Store) DeactivateEmployee(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees SET active = FALSE, updated_at = now() WHERE id = $1
  `, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// FindEmployeeIDByName matches an active employee by name, ignoring case
// and surrounding whitespace. Spreadsheet names are typed by hand, so
// exact-case matching would reject half of every import. A miss is an
// empty id, not an error.
func (s *Store) FindEmployeeIDByName(ctx context.Context, name string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    SELECT id FROM employees
    WHERE LOWER(TRIM(name)) = LOWER(TRIM($1)) AND active
    ORDER BY created_at
    LIMIT 1
  `, name).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func scanEmployee(row pgx.Row) (Employee, error) {
	var emp Employee
	err := row.Scan(&emp.ID, &emp.Name, &emp.Division, &emp.Position, &emp.Email,
		&emp.Phone, &emp.BankAccount, &emp.JoinDate, &emp.Active,
		&emp.CreatedAt, &emp.UpdatedAt)
	return emp, err
}
