package ports

import (
	"context"

	"github.com/avdeyev/TableBooker/internal/domain"
)

type ReservationNotifier interface {
	NotifyReservationCreated(ctx context.Context, customer *domain.Customer, r *domain.Reservation)
	NotifyReservationConfirmed(ctx context.Context, customer *domain.Customer, r *domain.Reservation)
	NotifyReservationCancelled(ctx context.Context, customer *domain.Customer, r *domain.Reservation)
}
