package ports

import (
	"context"
	"time"

	"github.com/avdeyev/TableBooker/internal/domain"
)

type ReservationRepo interface {
	// Create assigns a free best-fit table and inserts the reservation in a
	// single transaction, retrying once on a unique-index race.
	Create(ctx context.Context, r *domain.Reservation, buffer time.Duration) (*domain.Table, error)
	// Reassign is Create for the edit flow: the reservation's own row is
	// excluded from conflict detection and the update is conditional on the
	// reservation still being active.
	Reassign(ctx context.Context, r *domain.Reservation, buffer time.Duration) (*domain.Table, error)
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	Cancel(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus, notes *string) error
	FindConflictingTableIDs(ctx context.Context, date time.Time, slot domain.TimeOfDay, buffer time.Duration, excludeID *string) ([]string, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Reservation, error)
	List(ctx context.Context) ([]*domain.Reservation, error)
	CompleteElapsed(ctx context.Context, dwell time.Duration) ([]*domain.Reservation, error)
	DashboardStats(ctx context.Context, now time.Time) (*domain.DashboardStats, error)
}
