package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"talentsync/internal/domain"
	"talentsync/internal/port"
	"talentsync/internal/validator/employee"
)

// MaxPageSize caps List page sizes.
const MaxPageSize = 100

// EmployeeService defines the employee read and maintenance contract.
type EmployeeService interface {
	List(ctx context.Context, offset, limit int) ([]domain.Employee, int, error)
	GetByDocument(ctx context.Context, document string) (*domain.Employee, error)
	Create(ctx context.Context, input EmployeeInput) (*domain.Employee, error)
	Update(ctx context.Context, id uuid.UUID, input EmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Catalog() domain.Catalog
}

// EmployeeInput is one employee entered by hand. Values are raw cell text
// and go through the same rules as an imported row.
type EmployeeInput struct {
	Document       string `json:"document"`
	FirstNames     string `json:"first_names"`
	LastNames      string `json:"last_names"`
	BirthDate      string `json:"birth_date"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Position       string `json:"position"`
	Salary         string `json:"salary"`
	HireDate       string `json:"hire_date"`
	Status         string `json:"status"`
	EducationLevel string `json:"education_level"`
	Profile        string `json:"profile"`
	Department     string `json:"department"`
}

// row lays the input out as a sheet row in employee.Columns order.
func (in EmployeeInput) row() domain.RawRow {
	return domain.NewRawRow(employee.Columns, []string{
		in.Document, in.FirstNames, in.LastNames, in.BirthDate, in.Address,
		in.Phone, in.Email, in.Position, in.Salary, in.HireDate, in.Status,
		in.EducationLevel, in.Profile, in.Department,
	})
}

func (in EmployeeInput) validate() (domain.EmployeeFields, error) {
	res := employee.Validate(in.row(), employee.Columns)
	if !res.Valid() {
		return domain.EmployeeFields{}, &domain.ValidationError{Errors: res.Errors}
	}
	return res.Fields, nil
}

type employeeService struct {
	repo port.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService implementation.
func NewEmployeeService(repo port.EmployeeRepository) EmployeeService {
	return &employeeService{repo: repo}
}

func (s *employeeService) List(ctx context.Context, offset, limit int) ([]domain.Employee, int, error) {
	if offset < 0 || limit <= 0 || limit > MaxPageSize {
		return nil, 0, domain.ErrInvalidPaginationRange
	}
	return s.repo.List(ctx, offset, limit)
}

func (s *employeeService) GetByDocument(ctx context.Context, document string) (*domain.Employee, error) {
	document = strings.TrimSpace(document)
	if document == "" {
		return nil, domain.ErrEmployeeNotFound
	}
	return s.repo.GetByDocument(ctx, document)
}

func (s *employeeService) Create(ctx context.Context, input EmployeeInput) (*domain.Employee, error) {
	fields, err := input.validate()
	if err != nil {
		return nil, err
	}

	_, err = s.repo.GetByDocument(ctx, fields.Document)
	switch {
	case err == nil:
		return nil, domain.ErrDuplicateDocument
	case !errors.Is(err, domain.ErrEmployeeNotFound):
		return nil, fmt.Errorf("looking up document: %w", err)
	}

	created, err := domain.NewEmployee(fields)
	if err != nil {
		return nil, &domain.ValidationError{Errors: []string{err.Error()}}
	}
	if err := s.repo.Create(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

// Update rewrites the mutable fields of employee id. The submitted
// document must match the stored one.
func (s *employeeService) Update(ctx context.Context, id uuid.UUID, input EmployeeInput) (*domain.Employee, error) {
	fields, err := input.validate()
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.ToLower(existing.Document) != strings.ToLower(fields.Document) {
		return nil, domain.ErrDocumentImmutable
	}

	if err := existing.Apply(fields); err != nil {
		return nil, &domain.ValidationError{Errors: []string{err.Error()}}
	}
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *employeeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *employeeService) Catalog() domain.Catalog {
	return domain.NewCatalog()
}
