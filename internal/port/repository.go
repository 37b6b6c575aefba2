package port

import (
	"context"

	"github.com/google/uuid"

	"talentsync/internal/domain"
)

// EmployeeRepository defines the contract for employee persistence.
// Documents are unique case-insensitively.
type EmployeeRepository interface {
	// ListAll returns every employee. Reconciliation reads the whole set once
	// per phase and indexes it in memory.
	ListAll(ctx context.Context) ([]domain.Employee, error)
	List(ctx context.Context, offset, limit int) ([]domain.Employee, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	GetByDocument(ctx context.Context, document string) (*domain.Employee, error)
	Create(ctx context.Context, employee *domain.Employee) error
	Update(ctx context.Context, employee *domain.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
}
