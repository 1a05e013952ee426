package ports

import (
	"context"

	"github.com/avdeyev/TableBooker/internal/domain"
)

type TableRepo interface {
	Create(ctx context.Context, t *domain.Table) error
	Update(ctx context.Context, t *domain.Table) error
	// Delete removes a table; the active-reservation check and the delete
	// run inside one transaction.
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Table, error)
	List(ctx context.Context) ([]*domain.Table, error)
}
