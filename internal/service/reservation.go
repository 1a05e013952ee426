package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avdeyev/TableBooker/internal/domain"
	"github.com/avdeyev/TableBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// Policy holds the booking rules the service applies uniformly: one buffer
// for create/edit, a wider advisory buffer for availability probes, the
// cancellation lead time and the dwell after which a confirmed reservation
// counts as completed.
type Policy struct {
	Location        *time.Location
	CreateBuffer    time.Duration
	ProbeBuffer     time.Duration
	CancelLeadTime  time.Duration
	CompletionDwell time.Duration
}

type ReservationService struct {
	reservationRepo ports.ReservationRepo
	tableRepo       ports.TableRepo
	customerRepo    ports.CustomerRepo
	notifier        ports.ReservationNotifier
	clock           ports.Clock
	policy          Policy
	logger          logger.Logger
}

func NewReservationService(
	reservationRepo ports.ReservationRepo,
	tableRepo ports.TableRepo,
	customerRepo ports.CustomerRepo,
	notifier ports.ReservationNotifier,
	clock ports.Clock,
	policy Policy,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		customerRepo:    customerRepo,
		notifier:        notifier,
		clock:           clock,
		policy:          policy,
		logger:          logger,
	}
}

func (s *ReservationService) Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, *domain.Table, error) {
	if input.Guests <= 0 {
		return nil, nil, fmt.Errorf("%w: number of guests must be at least 1", domain.ErrValidation)
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, nil, fmt.Errorf("check customer: %w", err)
	}

	now := s.clock.Now()
	if err = domain.ValidateSlot(input.Date, input.Time, now, s.policy.Location); err != nil {
		return nil, nil, err
	}

	res := &domain.Reservation{
		ID:         uuid.New().String(),
		CustomerID: input.CustomerID,
		Date:       input.Date,
		Time:       input.Time,
		Guests:     input.Guests,
		Notes:      input.Notes,
		Status:     domain.ReservationStatusPending,
		CreatedAt:  now.UTC(),
		UpdatedAt:  now.UTC(),
	}

	table, err := s.reservationRepo.Create(ctx, res, s.policy.CreateBuffer)
	if err != nil {
		return nil, nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation created",
		logger.String("reservation_id", res.ID),
		logger.String("customer_id", res.CustomerID),
		logger.Int("table_number", table.Number),
		logger.String("slot", res.Date.Format("2006-01-02")+" "+res.Time.String()),
	)

	go s.notifier.NotifyReservationCreated(context.WithoutCancel(ctx), customer, res)

	return res, table, nil
}

func (s *ReservationService) Edit(ctx context.Context, input domain.EditReservationInput) (*domain.Reservation, *domain.Table, error) {
	if input.Guests <= 0 {
		return nil, nil, fmt.Errorf("%w: number of guests must be at least 1", domain.ErrValidation)
	}

	res, err := s.reservationRepo.GetByID(ctx, input.ReservationID)
	if err != nil {
		return nil, nil, fmt.Errorf("get reservation: %w", err)
	}
	if res.CustomerID != input.CustomerID {
		return nil, nil, domain.ErrNotReservationOwner
	}
	if res.Status.Terminal() {
		return nil, nil, fmt.Errorf("%w: already %s", domain.ErrReservationFinal, res.Status)
	}

	now := s.clock.Now()
	if err = domain.ValidateSlot(input.Date, input.Time, now, s.policy.Location); err != nil {
		return nil, nil, err
	}

	res.Date = input.Date
	res.Time = input.Time
	res.Guests = input.Guests
	res.UpdatedAt = now.UTC()

	table, err := s.reservationRepo.Reassign(ctx, res, s.policy.CreateBuffer)
	if err != nil {
		return nil, nil, fmt.Errorf("reassign reservation: %w", err)
	}

	s.logger.Info("reservation updated",
		logger.String("reservation_id", res.ID),
		logger.Int("table_number", table.Number),
	)

	return res, table, nil
}

func (s *ReservationService) Cancel(ctx context.Context, reservationID, customerID string) error {
	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return fmt.Errorf("get reservation: %w", err)
	}
	if res.CustomerID != customerID {
		return domain.ErrNotReservationOwner
	}

	now := s.clock.Now()
	if res.StartsAt(s.policy.Location).Sub(now) < s.policy.CancelLeadTime {
		return fmt.Errorf("%w: cancellation closes %s before the reservation",
			domain.ErrCancelTooLate, s.policy.CancelLeadTime)
	}
	if res.Status.Terminal() {
		return fmt.Errorf("%w: already %s, cannot cancel", domain.ErrReservationFinal, res.Status)
	}

	if err = s.reservationRepo.Cancel(ctx, reservationID); err != nil {
		return fmt.Errorf("cancel reservation: %w", err)
	}
	res.Status = domain.ReservationStatusCancelled

	s.logger.Info("reservation cancelled",
		logger.String("reservation_id", reservationID),
		logger.String("customer_id", customerID),
	)

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		s.logger.Error("failed to get customer for notification",
			logger.String("customer_id", customerID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	go s.notifier.NotifyReservationCancelled(context.WithoutCancel(ctx), customer, res)

	return nil
}

// UpdateStatus is the staff flow: any transition is allowed, notes are
// replaced when supplied.
func (s *ReservationService) UpdateStatus(ctx context.Context, reservationID string, status domain.ReservationStatus, notes *string) (*domain.Reservation, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	if err := s.reservationRepo.UpdateStatus(ctx, reservationID, status, notes); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	s.logger.Info("reservation status updated",
		logger.String("reservation_id", reservationID),
		logger.String("status", string(status)),
	)

	if status == domain.ReservationStatusConfirmed {
		customer, err := s.customerRepo.GetByID(ctx, res.CustomerID)
		if err != nil {
			s.logger.Error("failed to get customer for notification",
				logger.String("customer_id", res.CustomerID),
				logger.String("error", err.Error()),
			)
			return res, nil
		}
		go s.notifier.NotifyReservationConfirmed(context.WithoutCancel(ctx), customer, res)
	}

	return res, nil
}

// CheckAvailability is advisory only: it probes with the wider buffer and
// returns the free suitable tables best-fit-first, without reserving anything.
func (s *ReservationService) CheckAvailability(ctx context.Context, date time.Time, slot domain.TimeOfDay, guests int) ([]*domain.Table, error) {
	if guests <= 0 {
		return nil, fmt.Errorf("%w: number of guests must be at least 1", domain.ErrValidation)
	}
	if err := domain.ValidateSlot(date, slot, s.clock.Now(), s.policy.Location); err != nil {
		return nil, err
	}

	conflicting, err := s.reservationRepo.FindConflictingTableIDs(ctx, date, slot, s.policy.ProbeBuffer, nil)
	if err != nil {
		return nil, fmt.Errorf("find conflicting tables: %w", err)
	}

	tables, err := s.tableRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}

	excluded := make(map[string]struct{}, len(conflicting))
	for _, id := range conflicting {
		excluded[id] = struct{}{}
	}

	// Peel candidates off best-fit-first so the caller sees the same order
	// an assignment would use.
	var free []*domain.Table
	for {
		t := domain.SelectTable(tables, guests, excluded)
		if t == nil {
			break
		}
		free = append(free, t)
		excluded[t.ID] = struct{}{}
	}

	return free, nil
}

func (s *ReservationService) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.reservationRepo.GetByID(ctx, id)
}

func (s *ReservationService) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Reservation, error) {
	return s.reservationRepo.ListByCustomer(ctx, customerID)
}

func (s *ReservationService) List(ctx context.Context) ([]*domain.Reservation, error) {
	return s.reservationRepo.List(ctx)
}

func (s *ReservationService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	return s.reservationRepo.DashboardStats(ctx, s.clock.Now())
}

func (s *ReservationService) CompleteElapsed(ctx context.Context) ([]*domain.Reservation, error) {
	completed, err := s.reservationRepo.CompleteElapsed(ctx, s.policy.CompletionDwell)
	if err != nil {
		return nil, fmt.Errorf("complete elapsed: %w", err)
	}

	if len(completed) > 0 {
		s.logger.Info("elapsed reservations completed",
			logger.Int("count", len(completed)),
		)
	}

	return completed, nil
}
