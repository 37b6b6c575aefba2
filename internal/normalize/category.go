package normalize

import "talentsync/internal/domain"

// aliasTable maps folded spellings to enumeration members. Lookups that
// miss report ok=false; there is no fallback member.
type aliasTable[T ~string] struct {
	category string
	byKey    map[string]T
}

func newAliasTable[T ~string](category string, labels func(T) string, members []T, extra map[string]T) aliasTable[T] {
	t := aliasTable[T]{category: category, byKey: make(map[string]T)}
	for _, m := range members {
		t.byKey[Key(string(m))] = m
		t.byKey[Key(labels(m))] = m
	}
	for alias, m := range extra {
		t.byKey[Key(alias)] = m
	}
	return t
}

func (t aliasTable[T]) lookup(raw string) (T, bool) {
	v, ok := t.byKey[Key(raw)]
	return v, ok
}

func (t aliasTable[T]) resolve(raw string) (T, error) {
	v, ok := t.lookup(raw)
	if !ok {
		var zero T
		return zero, &domain.InvalidCategoryError{Category: t.category, Value: raw}
	}
	return v, nil
}

var (
	positions = newAliasTable("position", domain.Position.Label, domain.Positions, map[string]domain.Position{
		"soporte":        domain.PositionTechnicalSupport,
		"desarrolladora": domain.PositionDeveloper,
		"ingeniera":      domain.PositionEngineer,
		"coordinadora":   domain.PositionCoordinator,
		"administradora": domain.PositionAdministrator,
	})

	statuses = newAliasTable("status", domain.EmployeeStatus.Label, domain.Statuses, map[string]domain.EmployeeStatus{
		"activa":   domain.StatusActive,
		"inactiva": domain.StatusInactive,
	})

	educationLevels = newAliasTable("education level", domain.EducationLevel.Label, domain.EducationLevels, map[string]domain.EducationLevel{
		"especialista": domain.EducationSpecialization,
		"magister":     domain.EducationMasters,
		"master":       domain.EducationMasters,
	})

	departments = newAliasTable("department", domain.Department.Label, domain.Departments, map[string]domain.Department{
		"RRHH": domain.DepartmentHumanResources,
		"TI":   domain.DepartmentTechnology,
	})
)

// Position resolves raw text to a job position.
func Position(raw string) (domain.Position, error) { return positions.resolve(raw) }

// Status resolves raw text to an employment status.
func Status(raw string) (domain.EmployeeStatus, error) { return statuses.resolve(raw) }

// EducationLevel resolves raw text to an education level.
func EducationLevel(raw string) (domain.EducationLevel, error) { return educationLevels.resolve(raw) }

// Department resolves raw text to a department, accepting the RRHH and TI
// abbreviations.
func Department(raw string) (domain.Department, error) { return departments.resolve(raw) }
