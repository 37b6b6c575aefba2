package service_test

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"talentsync/internal/domain"
	"talentsync/internal/service"
	"talentsync/internal/validator/employee"
)

// memoryRepo is an in-memory port.EmployeeRepository with document
// uniqueness on lower(document), like the employees table.
type memoryRepo struct {
	mu        sync.Mutex
	byID      map[uuid.UUID]domain.Employee
	order     []uuid.UUID
	failOn    map[string]error
	afterSave func(domain.Employee)
	writes    int
}

func newMemoryRepo(seed ...domain.Employee) *memoryRepo {
	r := &memoryRepo{byID: make(map[uuid.UUID]domain.Employee), failOn: make(map[string]error)}
	for _, e := range seed {
		if e.ID == uuid.Nil {
			e.ID = uuid.New()
		}
		r.byID[e.ID] = e
		r.order = append(r.order, e.ID)
	}
	return r
}

func (r *memoryRepo) ListAll(_ context.Context) ([]domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Employee, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *memoryRepo) List(ctx context.Context, offset, limit int) ([]domain.Employee, int, error) {
	all, _ := r.ListAll(ctx)
	sort.SliceStable(all, func(i, j int) bool { return all[i].LastNames < all[j].LastNames })
	if offset > len(all) {
		offset = len(all)
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], len(all), nil
}

func (r *memoryRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	return &e, nil
}

func (r *memoryRepo) GetByDocument(_ context.Context, document string) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.byID {
		if sameDocument(e.Document, document) {
			found := e
			return &found, nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *memoryRepo) Create(_ context.Context, e *domain.Employee) error {
	r.mu.Lock()
	if err := r.failOn[e.Document]; err != nil {
		r.mu.Unlock()
		return err
	}
	for _, existing := range r.byID {
		if sameDocument(existing.Document, e.Document) {
			r.mu.Unlock()
			return domain.ErrDuplicateDocument
		}
	}
	e.ID = uuid.New()
	e.CreatedAt = time.Now().UTC()
	e.UpdatedAt = e.CreatedAt
	r.byID[e.ID] = *e
	r.order = append(r.order, e.ID)
	r.writes++
	hook := r.afterSave
	r.mu.Unlock()

	if hook != nil {
		hook(*e)
	}
	return nil
}

func (r *memoryRepo) Update(_ context.Context, e *domain.Employee) error {
	r.mu.Lock()
	if err := r.failOn[e.Document]; err != nil {
		r.mu.Unlock()
		return err
	}
	if _, ok := r.byID[e.ID]; !ok {
		r.mu.Unlock()
		return domain.ErrEmployeeNotFound
	}
	e.UpdatedAt = time.Now().UTC()
	r.byID[e.ID] = *e
	r.writes++
	hook := r.afterSave
	r.mu.Unlock()

	if hook != nil {
		hook(*e)
	}
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func sameDocument(a, b string) bool {
	return strings.ToLower(strings.TrimSpace(a)) == strings.ToLower(strings.TrimSpace(b))
}

func (r *memoryRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID)
}

func (r *memoryRepo) find(t *testing.T, document string) domain.Employee {
	t.Helper()
	e, err := r.GetByDocument(context.Background(), document)
	require.NoError(t, err)
	return *e
}

// sheetRow returns a well-formed data row in employee.Columns order.
func sheetRow(document, firstNames string) []any {
	return []any{
		document, firstNames, "Gómez Ruiz", "15/03/1990", "Calle 10 # 20-30", "3001234567",
		"empleado@example.com", "Soporte Técnico", "2.500,75", "2021-02-01", "Activo",
		"Profesional", "Ingeniería de sistemas", "Tecnología",
	}
}

// xlsx builds a workbook whose first row is headers followed by rows.
func xlsx(t *testing.T, headers []string, rows ...[]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(0)

	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	all := append([][]any{header}, rows...)
	for i, row := range all {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func employeeSheet(t *testing.T, rows ...[]any) []byte {
	t.Helper()
	return xlsx(t, employee.Columns, rows...)
}

func upload(data []byte) service.PreviewInput {
	return service.PreviewInput{Filename: "personal.xlsx", File: bytes.NewReader(data), Size: int64(len(data))}
}
