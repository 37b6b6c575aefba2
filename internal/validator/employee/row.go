// Package employee validates one spreadsheet row of personnel data and
// turns it into a normalized field set.
package employee

import (
	"fmt"
	"strings"

	"talentsync/internal/domain"
	"talentsync/internal/normalize"
)

// Expected column headers, in sheet order.
const (
	ColDocument       = "Documento"
	ColFirstNames     = "Nombres"
	ColLastNames      = "Apellidos"
	ColBirthDate      = "FechaNacimiento"
	ColAddress        = "Direccion"
	ColPhone          = "Telefono"
	ColEmail          = "Email"
	ColPosition       = "Cargo"
	ColSalary         = "Salario"
	ColHireDate       = "FechaIngreso"
	ColStatus         = "Estado"
	ColEducationLevel = "NivelEducativo"
	ColProfile        = "PerfilProfesional"
	ColDepartment     = "Departamento"
)

// Columns is the fixed header list an import sheet must carry.
var Columns = []string{
	ColDocument,
	ColFirstNames,
	ColLastNames,
	ColBirthDate,
	ColAddress,
	ColPhone,
	ColEmail,
	ColPosition,
	ColSalary,
	ColHireDate,
	ColStatus,
	ColEducationLevel,
	ColProfile,
	ColDepartment,
}

// columnRule normalizes one column into its slot of EmployeeFields.
type columnRule struct {
	column string
	apply  func(raw string, f *domain.EmployeeFields) error
}

func text(column string, dst func(*domain.EmployeeFields) *string) columnRule {
	return columnRule{column: column, apply: func(raw string, f *domain.EmployeeFields) error {
		v, err := normalize.Required(column, raw)
		*dst(f) = v
		return err
	}}
}

var rules = []columnRule{
	text(ColDocument, func(f *domain.EmployeeFields) *string { return &f.Document }),
	text(ColFirstNames, func(f *domain.EmployeeFields) *string { return &f.FirstNames }),
	text(ColLastNames, func(f *domain.EmployeeFields) *string { return &f.LastNames }),
	{column: ColBirthDate, apply: func(raw string, f *domain.EmployeeFields) (err error) {
		f.BirthDate, err = normalize.Date(ColBirthDate, raw)
		return err
	}},
	text(ColAddress, func(f *domain.EmployeeFields) *string { return &f.Address }),
	text(ColPhone, func(f *domain.EmployeeFields) *string { return &f.Phone }),
	{column: ColEmail, apply: func(raw string, f *domain.EmployeeFields) (err error) {
		f.Email, err = normalize.Email(ColEmail, raw)
		return err
	}},
	{column: ColPosition, apply: func(raw string, f *domain.EmployeeFields) (err error) {
		f.Position, err = normalize.Position(raw)
		return err
	}},
	{column: ColSalary, apply: func(raw string, f *domain.EmployeeFields) (err error) {
		f.Salary, err = normalize.Decimal(ColSalary, raw)
		return err
	}},
	{column: ColHireDate, apply: func(raw string, f *domain.EmployeeFields) (err error) {
		f.HireDate, err = normalize.Date(ColHireDate, raw)
		return err
	}},
	{column: ColStatus, apply: func(raw string, f *domain.EmployeeFields) (err error) {
		f.Status, err = normalize.Status(raw)
		return err
	}},
	{column: ColEducationLevel, apply: func(raw string, f *domain.EmployeeFields) (err error) {
		f.EducationLevel, err = normalize.EducationLevel(raw)
		return err
	}},
	text(ColProfile, func(f *domain.EmployeeFields) *string { return &f.Profile }),
	{column: ColDepartment, apply: func(raw string, f *domain.EmployeeFields) (err error) {
		f.Department, err = normalize.Department(raw)
		return err
	}},
}

// Result is the verdict for one row. Fields is only meaningful when Errors
// is empty.
type Result struct {
	Fields domain.EmployeeFields
	Errors []string
}

// Valid reports whether every column normalized cleanly.
func (r Result) Valid() bool { return len(r.Errors) == 0 }

// MissingColumns returns the expected columns absent from headers,
// compared case-insensitively.
func MissingColumns(headers []string) []string {
	var missing []string
	for _, col := range Columns {
		found := false
		for _, h := range headers {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, col)
		}
	}
	return missing
}

// Validate normalizes every column of row and collects all failures in
// column order. headers is the sheet's header row; when nil the row's own
// headers are used. A row lacking expected columns yields a single error
// naming them.
func Validate(row domain.RawRow, headers []string) (res Result) {
	if headers == nil {
		headers = row.Headers()
	}
	if missing := MissingColumns(headers); len(missing) > 0 {
		res.Errors = []string{(&domain.MissingColumnsError{Columns: missing}).Error()}
		return res
	}

	for _, rule := range rules {
		raw, ok := row.Get(rule.column)
		if !ok {
			res.Errors = append(res.Errors, (&domain.MissingColumnsError{Columns: []string{rule.column}}).Error())
			continue
		}
		if err := applyRule(rule, raw, &res.Fields); err != nil {
			res.Errors = append(res.Errors, err.Error())
		}
	}
	return res
}

func applyRule(rule columnRule, raw string, f *domain.EmployeeFields) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: unexpected failure: %v", rule.column, r)
		}
	}()
	return rule.apply(raw, f)
}
