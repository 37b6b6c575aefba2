package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentsync/internal/domain"
	"talentsync/internal/port"
	"talentsync/internal/repository/postgres"
)

var employeeCols = []string{
	"id", "document", "first_names", "last_names", "birth_date", "address", "phone", "email",
	"position", "salary", "hire_date", "status", "education_level", "profile", "department",
	"created_at", "updated_at",
}

func setupEmployeeRepo(t *testing.T) (port.EmployeeRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return postgres.NewEmployeeRepo(sqlx.NewDb(db, "sqlmock")), mock
}

func employeeRow(rows *sqlmock.Rows, id uuid.UUID, document string) *sqlmock.Rows {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return rows.AddRow(
		id.String(), document, "Ana", "Gómez", time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC),
		"Calle 10", "3001234567", "ana@example.com",
		"analista", "2500.75", time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC), "activo",
		"profesional", "Economista", "ventas", now, now,
	)
}

func sampleEmployee() *domain.Employee {
	return &domain.Employee{
		Document:       "1020",
		FirstNames:     "Ana",
		LastNames:      "Gómez",
		BirthDate:      time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC),
		Address:        "Calle 10",
		Phone:          "3001234567",
		Email:          "ana@example.com",
		Position:       domain.PositionAnalyst,
		Salary:         decimal.RequireFromString("2500.75"),
		HireDate:       time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC),
		Status:         domain.StatusActive,
		EducationLevel: domain.EducationProfessional,
		Profile:        "Economista",
		Department:     domain.DepartmentSales,
	}
}

// --- ListAll ---

func TestEmployeeRepo_ListAll(t *testing.T) {
	repo, mock := setupEmployeeRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`(?s)SELECT .+ FROM employees ORDER BY created_at`).
		WillReturnRows(employeeRow(sqlmock.NewRows(employeeCols), id, "1020"))

	employees, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 1)

	e := employees[0]
	assert.Equal(t, id, e.ID)
	assert.Equal(t, "1020", e.Document)
	assert.Equal(t, domain.PositionAnalyst, e.Position)
	assert.Equal(t, domain.DepartmentSales, e.Department)
	assert.True(t, decimal.RequireFromString("2500.75").Equal(e.Salary))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepo_ListAll_Error(t *testing.T) {
	repo, mock := setupEmployeeRepo(t)
	mock.ExpectQuery(`(?s)SELECT .+ FROM employees`).WillReturnError(errors.New("connection reset"))

	_, err := repo.ListAll(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "employeeRepo.ListAll")
}

// --- List ---

func TestEmployeeRepo_List(t *testing.T) {
	repo, mock := setupEmployeeRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM employees")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`(?s)SELECT .+ FROM employees ORDER BY last_names.+LIMIT \$1 OFFSET \$2`).
		WithArgs(2, 1).
		WillReturnRows(employeeRow(employeeRow(sqlmock.NewRows(employeeCols), uuid.New(), "1"), uuid.New(), "2"))

	employees, total, err := repo.List(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, employees, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// --- GetByID ---

func TestEmployeeRepo_GetByID(t *testing.T) {
	repo, mock := setupEmployeeRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`(?s)SELECT .+ FROM employees WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(employeeRow(sqlmock.NewRows(employeeCols), id, "1020"))

	e, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, e.ID)
	assert.Equal(t, "1020", e.Document)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepo_GetByID_NotFound(t *testing.T) {
	repo, mock := setupEmployeeRepo(t)
	mock.ExpectQuery(`(?s)SELECT .+ FROM employees WHERE id`).
		WillReturnRows(sqlmock.NewRows(employeeCols))

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

// --- GetByDocument ---

func TestEmployeeRepo_GetByDocument_CaseInsensitive(t *testing.T) {
	repo, mock := setupEmployeeRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`(?s)SELECT .+ FROM employees WHERE lower\(document\) = lower\(\$1\)`).
		WithArgs("ab-1020").
		WillReturnRows(employeeRow(sqlmock.NewRows(employeeCols), id, "AB-1020"))

	e, err := repo.GetByDocument(context.Background(), " ab-1020 ")
	require.NoError(t, err)
	assert.Equal(t, id, e.ID)
	assert.Equal(t, "AB-1020", e.Document)
}

func TestEmployeeRepo_GetByDocument_NotFound(t *testing.T) {
	repo, mock := setupEmployeeRepo(t)
	mock.ExpectQuery(`(?s)SELECT .+ FROM employees WHERE`).
		WillReturnRows(sqlmock.NewRows(employeeCols))

	_, err := repo.GetByDocument(context.Background(), "404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// --- Create ---

func TestEmployeeRepo_Create_AssignsIDAndTimestamps(t *testing.T) {
	repo, mock := setupEmployeeRepo(t)
	e := sampleEmployee()

	mock.ExpectExec(`INSERT INTO employees`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), e))
	assert.NotEqual(t, uuid.Nil, e.ID)
	assert.False(t, e.CreatedAt.IsZero())
	assert.Equal(t, e.CreatedAt, e.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepo_Create_DuplicateDocument(t *testing.T) {
	repo, mock := setupEmployeeRepo(t)

	mock.ExpectExec(`INSERT INTO employees`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "employees_document_lower_key"})

	err := repo.Create(context.Background(), sampleEmployee())
	assert.ErrorIs(t, err, domain.ErrDuplicateDocument)
}

// --- Update ---

func TestEmployeeRepo_Update(t *testing.T) {
	repo, mock := setupEmployeeRepo(t)
	e := sampleEmployee()
	e.ID = uuid.New()

	mock.ExpectExec(`(?s)UPDATE employees SET .+ WHERE id = \$15`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), e))
	assert.False(t, e.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepo_Update_Vanished(t *testing.T) {
	repo, mock := setupEmployeeRepo(t)
	e := sampleEmployee()
	e.ID = uuid.New()

	mock.ExpectExec(`(?s)UPDATE employees SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), e)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// --- Delete ---

func TestEmployeeRepo_Delete(t *testing.T) {
	repo, mock := setupEmployeeRepo(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM employees WHERE id = $1")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), id))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM employees WHERE id = $1")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), id), domain.ErrNotFound)
}
