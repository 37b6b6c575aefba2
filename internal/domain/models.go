package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Employee is a personnel record identified by its document number.
type Employee struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	Document       string          `db:"document" json:"document"`
	FirstNames     string          `db:"first_names" json:"first_names"`
	LastNames      string          `db:"last_names" json:"last_names"`
	BirthDate      time.Time       `db:"birth_date" json:"birth_date"`
	Address        string          `db:"address" json:"address"`
	Phone          string          `db:"phone" json:"phone"`
	Email          string          `db:"email" json:"email"`
	Position       Position        `db:"position" json:"position"`
	Salary         decimal.Decimal `db:"salary" json:"salary"`
	HireDate       time.Time       `db:"hire_date" json:"hire_date"`
	Status         EmployeeStatus  `db:"status" json:"status"`
	EducationLevel EducationLevel  `db:"education_level" json:"education_level"`
	Profile        string          `db:"profile" json:"profile"`
	Department     Department      `db:"department" json:"department"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}

// EmployeeFields is the normalized content of one spreadsheet row.
type EmployeeFields struct {
	Document       string
	FirstNames     string
	LastNames      string
	BirthDate      time.Time
	Address        string
	Phone          string
	Email          string
	Position       Position
	Salary         decimal.Decimal
	HireDate       time.Time
	Status         EmployeeStatus
	EducationLevel EducationLevel
	Profile        string
	Department     Department
}

// CheckCategories rejects field sets whose categorical values are not
// concrete members of their enumerations.
func (f *EmployeeFields) CheckCategories() error {
	if !f.Position.IsValid() || !f.Status.IsValid() ||
		!f.EducationLevel.IsValid() || !f.Department.IsValid() {
		return ErrInvalidCategoryValue
	}
	return nil
}

// NewEmployee builds an unsaved employee from a validated field set.
// The store assigns ID and timestamps on create.
func NewEmployee(f EmployeeFields) (*Employee, error) {
	if err := f.CheckCategories(); err != nil {
		return nil, err
	}
	e := &Employee{Document: f.Document}
	e.assign(f)
	return e, nil
}

// Apply overwrites the mutable fields of e. The document, ID and
// CreatedAt are left untouched.
func (e *Employee) Apply(f EmployeeFields) error {
	if err := f.CheckCategories(); err != nil {
		return err
	}
	e.assign(f)
	return nil
}

func (e *Employee) assign(f EmployeeFields) {
	e.FirstNames = f.FirstNames
	e.LastNames = f.LastNames
	e.BirthDate = f.BirthDate
	e.Address = f.Address
	e.Phone = f.Phone
	e.Email = f.Email
	e.Position = f.Position
	e.Salary = f.Salary
	e.HireDate = f.HireDate
	e.Status = f.Status
	e.EducationLevel = f.EducationLevel
	e.Profile = f.Profile
	e.Department = f.Department
}
