package service

import (
	"context"
	"fmt"
	"strings"

	"talentsync/internal/domain"
	"talentsync/internal/port"
)

// documentIndex resolves employees by document number, ignoring case.
// It is built from one bulk read and lives for a single Preview or Confirm.
type documentIndex struct {
	byKey map[string]*domain.Employee
}

// documentKey lower-cases a document number rune by rune, the same way
// the store's lower(document) unique index compares them.
func documentKey(document string) string {
	return strings.ToLower(strings.TrimSpace(document))
}

func loadDocumentIndex(ctx context.Context, repo port.EmployeeRepository) (*documentIndex, error) {
	employees, err := repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrIndexLoadFailed, err)
	}
	idx := &documentIndex{byKey: make(map[string]*domain.Employee, len(employees))}
	for i := range employees {
		idx.put(&employees[i])
	}
	return idx, nil
}

func (idx *documentIndex) lookup(document string) (*domain.Employee, bool) {
	e, ok := idx.byKey[documentKey(document)]
	return e, ok
}

func (idx *documentIndex) put(e *domain.Employee) {
	idx.byKey[documentKey(e.Document)] = e
}

func (idx *documentIndex) size() int { return len(idx.byKey) }
