package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"talentsync/internal/domain"
	"talentsync/internal/port"
)

const employeeColumns = `id, document, first_names, last_names, birth_date, address, phone, email,
	position, salary, hire_date, status, education_level, profile, department, created_at, updated_at`

type employeeRepo struct {
	db *sqlx.DB
}

// NewEmployeeRepo creates a new PostgreSQL-backed EmployeeRepository.
func NewEmployeeRepo(db *sqlx.DB) port.EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) ListAll(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := r.db.SelectContext(ctx, &employees,
		"SELECT "+employeeColumns+" FROM employees ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("employeeRepo.ListAll: %w", err)
	}
	return employees, nil
}

func (r *employeeRepo) List(ctx context.Context, offset, limit int) ([]domain.Employee, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM employees")
	if err != nil {
		return nil, 0, fmt.Errorf("employeeRepo.List count: %w", err)
	}

	var employees []domain.Employee
	err = r.db.SelectContext(ctx, &employees,
		"SELECT "+employeeColumns+" FROM employees ORDER BY last_names, first_names, document LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("employeeRepo.List: %w", err)
	}
	return employees, total, nil
}

func (r *employeeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	var employee domain.Employee
	err := r.db.GetContext(ctx, &employee,
		"SELECT "+employeeColumns+" FROM employees WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("employeeRepo.GetByID: %w", err)
	}
	return &employee, nil
}

func (r *employeeRepo) GetByDocument(ctx context.Context, document string) (*domain.Employee, error) {
	var employee domain.Employee
	err := r.db.GetContext(ctx, &employee,
		"SELECT "+employeeColumns+" FROM employees WHERE lower(document) = lower($1)",
		strings.TrimSpace(document))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("employeeRepo.GetByDocument: %w", err)
	}
	return &employee, nil
}

func (r *employeeRepo) Create(ctx context.Context, employee *domain.Employee) error {
	employee.ID = uuid.New()
	now := time.Now().UTC()
	employee.CreatedAt = now
	employee.UpdatedAt = now

	query := `INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err := r.db.ExecContext(ctx, query,
		employee.ID, employee.Document, employee.FirstNames, employee.LastNames,
		employee.BirthDate, employee.Address, employee.Phone, employee.Email,
		employee.Position, employee.Salary, employee.HireDate, employee.Status,
		employee.EducationLevel, employee.Profile, employee.Department,
		employee.CreatedAt, employee.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateDocument
		}
		return fmt.Errorf("employeeRepo.Create: %w", err)
	}
	return nil
}

// Update rewrites every mutable column. The document is never updated.
func (r *employeeRepo) Update(ctx context.Context, employee *domain.Employee) error {
	employee.UpdatedAt = time.Now().UTC()
	query := `UPDATE employees SET first_names = $1, last_names = $2, birth_date = $3,
		address = $4, phone = $5, email = $6, position = $7, salary = $8, hire_date = $9,
		status = $10, education_level = $11, profile = $12, department = $13, updated_at = $14
		WHERE id = $15`
	result, err := r.db.ExecContext(ctx, query,
		employee.FirstNames, employee.LastNames, employee.BirthDate,
		employee.Address, employee.Phone, employee.Email, employee.Position,
		employee.Salary, employee.HireDate, employee.Status, employee.EducationLevel,
		employee.Profile, employee.Department, employee.UpdatedAt, employee.ID)
	if err != nil {
		return fmt.Errorf("employeeRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM employees WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("employeeRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "duplicate key")
}
