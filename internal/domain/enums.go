package domain

// Position is the closed set of job positions an employee can hold.
type Position string

const (
	PositionEngineer         Position = "ingeniero"
	PositionTechnicalSupport Position = "soporte_tecnico"
	PositionCoordinator      Position = "coordinador"
	PositionAnalyst          Position = "analista"
	PositionDeveloper        Position = "desarrollador"
	PositionAdministrator    Position = "administrador"
	PositionAssistant        Position = "auxiliar"
)

// Positions lists every Position in display order.
var Positions = []Position{
	PositionEngineer,
	PositionTechnicalSupport,
	PositionCoordinator,
	PositionAnalyst,
	PositionDeveloper,
	PositionAdministrator,
	PositionAssistant,
}

var positionLabels = map[Position]string{
	PositionEngineer:         "Ingeniero",
	PositionTechnicalSupport: "Soporte Técnico",
	PositionCoordinator:      "Coordinador",
	PositionAnalyst:          "Analista",
	PositionDeveloper:        "Desarrollador",
	PositionAdministrator:    "Administrador",
	PositionAssistant:        "Auxiliar",
}

// IsValid reports whether p is a member of the enumeration.
func (p Position) IsValid() bool {
	_, ok := positionLabels[p]
	return ok
}

func (p Position) Label() string { return positionLabels[p] }

// EmployeeStatus is the employment state of an employee.
type EmployeeStatus string

const (
	StatusActive   EmployeeStatus = "activo"
	StatusInactive EmployeeStatus = "inactivo"
	StatusVacation EmployeeStatus = "vacaciones"
)

// Statuses lists every EmployeeStatus in display order.
var Statuses = []EmployeeStatus{StatusActive, StatusInactive, StatusVacation}

var statusLabels = map[EmployeeStatus]string{
	StatusActive:   "Activo",
	StatusInactive: "Inactivo",
	StatusVacation: "Vacaciones",
}

func (s EmployeeStatus) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

func (s EmployeeStatus) Label() string { return statusLabels[s] }

// EducationLevel is the highest completed education of an employee.
type EducationLevel string

const (
	EducationTechnician     EducationLevel = "tecnico"
	EducationTechnologist   EducationLevel = "tecnologo"
	EducationProfessional   EducationLevel = "profesional"
	EducationSpecialization EducationLevel = "especializacion"
	EducationMasters        EducationLevel = "maestria"
)

// EducationLevels lists every EducationLevel in display order.
var EducationLevels = []EducationLevel{
	EducationTechnician,
	EducationTechnologist,
	EducationProfessional,
	EducationSpecialization,
	EducationMasters,
}

var educationLabels = map[EducationLevel]string{
	EducationTechnician:     "Técnico",
	EducationTechnologist:   "Tecnólogo",
	EducationProfessional:   "Profesional",
	EducationSpecialization: "Especialización",
	EducationMasters:        "Maestría",
}

func (l EducationLevel) IsValid() bool {
	_, ok := educationLabels[l]
	return ok
}

func (l EducationLevel) Label() string { return educationLabels[l] }

// Department is the organizational unit an employee belongs to.
type Department string

const (
	DepartmentLogistics      Department = "logistica"
	DepartmentMarketing      Department = "marketing"
	DepartmentHumanResources Department = "recursos_humanos"
	DepartmentOperations     Department = "operaciones"
	DepartmentSales          Department = "ventas"
	DepartmentTechnology     Department = "tecnologia"
	DepartmentAccounting     Department = "contabilidad"
)

// Departments lists every Department in display order.
var Departments = []Department{
	DepartmentLogistics,
	DepartmentMarketing,
	DepartmentHumanResources,
	DepartmentOperations,
	DepartmentSales,
	DepartmentTechnology,
	DepartmentAccounting,
}

var departmentLabels = map[Department]string{
	DepartmentLogistics:      "Logística",
	DepartmentMarketing:      "Marketing",
	DepartmentHumanResources: "Recursos Humanos",
	DepartmentOperations:     "Operaciones",
	DepartmentSales:          "Ventas",
	DepartmentTechnology:     "Tecnología",
	DepartmentAccounting:     "Contabilidad",
}

func (d Department) IsValid() bool {
	_, ok := departmentLabels[d]
	return ok
}

func (d Department) Label() string { return departmentLabels[d] }

// RowAction tells a reviewer what Confirm will do with a valid row.
type RowAction string

const (
	RowActionCreate RowAction = "create"
	RowActionUpdate RowAction = "update"
)

// CatalogEntry is one enumeration member as shown to users.
type CatalogEntry struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Catalog lists every categorical enumeration an import sheet may use.
type Catalog struct {
	Positions       []CatalogEntry `json:"positions"`
	Statuses        []CatalogEntry `json:"statuses"`
	EducationLevels []CatalogEntry `json:"education_levels"`
	Departments     []CatalogEntry `json:"departments"`
}

func catalogEntries[T ~string](members []T, label func(T) string) []CatalogEntry {
	out := make([]CatalogEntry, len(members))
	for i, m := range members {
		out[i] = CatalogEntry{Value: string(m), Label: label(m)}
	}
	return out
}

// NewCatalog builds the catalog from the enumerations in display order.
func NewCatalog() Catalog {
	return Catalog{
		Positions:       catalogEntries(Positions, Position.Label),
		Statuses:        catalogEntries(Statuses, EmployeeStatus.Label),
		EducationLevels: catalogEntries(EducationLevels, EducationLevel.Label),
		Departments:     catalogEntries(Departments, Department.Label),
	}
}
