package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avdeyev/TableBooker/internal/domain"
	"github.com/avdeyev/TableBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type reservationMocks struct {
	reservationRepo *mocks.MockReservationRepo
	tableRepo       *mocks.MockTableRepo
	customerRepo    *mocks.MockCustomerRepo
	notifier        *mocks.MockReservationNotifier
	clock           *mocks.MockClock
}

func newReservationService(t *testing.T) (*ReservationService, reservationMocks) {
	t.Helper()

	m := reservationMocks{
		reservationRepo: mocks.NewMockReservationRepo(t),
		tableRepo:       mocks.NewMockTableRepo(t),
		customerRepo:    mocks.NewMockCustomerRepo(t),
		notifier:        mocks.NewMockReservationNotifier(t),
		clock:           mocks.NewMockClock(t),
	}
	policy := Policy{
		Location:        time.UTC,
		CreateBuffer:    time.Hour,
		ProbeBuffer:     2 * time.Hour,
		CancelLeadTime:  2 * time.Hour,
		CompletionDwell: 2 * time.Hour,
	}
	svc := NewReservationService(
		m.reservationRepo, m.tableRepo, m.customerRepo,
		m.notifier, m.clock, policy, newTestLogger(t),
	)
	return svc, m
}

var testNow = time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

func testDate(daysAhead int) time.Time {
	return time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC).AddDate(0, 0, daysAhead)
}

func TestReservationService_Create_Success(t *testing.T) {
	svc, m := newReservationService(t)

	customer := &domain.Customer{ID: "c1", Username: "alice"}
	table := &domain.Table{ID: "t1", Number: 2, Capacity: 4}

	m.customerRepo.EXPECT().GetByID(mock.Anything, "c1").Return(customer, nil)
	m.clock.EXPECT().Now().Return(testNow)
	m.reservationRepo.EXPECT().Create(mock.Anything, mock.Anything, time.Hour).
		RunAndReturn(func(_ context.Context, r *domain.Reservation, _ time.Duration) (*domain.Table, error) {
			r.TableID = table.ID
			r.TableNumber = table.Number
			return table, nil
		})
	m.notifier.EXPECT().NotifyReservationCreated(mock.Anything, customer, mock.Anything).Return()

	res, got, err := svc.Create(context.Background(), domain.CreateReservationInput{
		CustomerID: "c1",
		Date:       testDate(1),
		Time:       19 * 60,
		Guests:     3,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusPending, res.Status)
	assert.Equal(t, "c1", res.CustomerID)
	assert.Equal(t, "t1", res.TableID)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, table, got)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_Create_ZeroGuests(t *testing.T) {
	svc, _ := newReservationService(t)

	_, _, err := svc.Create(context.Background(), domain.CreateReservationInput{
		CustomerID: "c1",
		Date:       testDate(1),
		Time:       19 * 60,
		Guests:     0,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Create_CustomerNotFound(t *testing.T) {
	svc, m := newReservationService(t)

	m.customerRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrCustomerNotFound)

	_, _, err := svc.Create(context.Background(), domain.CreateReservationInput{
		CustomerID: "missing",
		Date:       testDate(1),
		Time:       19 * 60,
		Guests:     2,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestReservationService_Create_PastSlot(t *testing.T) {
	svc, m := newReservationService(t)

	m.customerRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Customer{ID: "c1"}, nil)
	m.clock.EXPECT().Now().Return(testNow)

	_, _, err := svc.Create(context.Background(), domain.CreateReservationInput{
		CustomerID: "c1",
		Date:       testDate(-1),
		Time:       19 * 60,
		Guests:     2,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotInPast)
}

func TestReservationService_Create_OutsideServiceHours(t *testing.T) {
	svc, m := newReservationService(t)

	m.customerRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Customer{ID: "c1"}, nil)
	m.clock.EXPECT().Now().Return(testNow)

	_, _, err := svc.Create(context.Background(), domain.CreateReservationInput{
		CustomerID: "c1",
		Date:       testDate(1),
		Time:       23 * 60,
		Guests:     2,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOutsideServiceHours)
}

func TestReservationService_Create_NoTablesAvailable(t *testing.T) {
	svc, m := newReservationService(t)

	m.customerRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Customer{ID: "c1"}, nil)
	m.clock.EXPECT().Now().Return(testNow)
	m.reservationRepo.EXPECT().Create(mock.Anything, mock.Anything, time.Hour).
		Return(nil, domain.ErrNoTablesAvailable)

	_, _, err := svc.Create(context.Background(), domain.CreateReservationInput{
		CustomerID: "c1",
		Date:       testDate(1),
		Time:       19 * 60,
		Guests:     10,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoTablesAvailable)
}

func TestReservationService_Edit_Success(t *testing.T) {
	svc, m := newReservationService(t)

	existing := &domain.Reservation{
		ID:         "r1",
		CustomerID: "c1",
		Date:       testDate(1),
		Time:       18 * 60,
		Guests:     2,
		Status:     domain.ReservationStatusConfirmed,
	}
	table := &domain.Table{ID: "t2", Number: 4, Capacity: 6}

	m.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(existing, nil)
	m.clock.EXPECT().Now().Return(testNow)
	m.reservationRepo.EXPECT().Reassign(mock.Anything, existing, time.Hour).Return(table, nil)

	res, got, err := svc.Edit(context.Background(), domain.EditReservationInput{
		ReservationID: "r1",
		CustomerID:    "c1",
		Date:          testDate(2),
		Time:          20 * 60,
		Guests:        5,
	})

	require.NoError(t, err)
	assert.Equal(t, testDate(2), res.Date)
	assert.Equal(t, domain.TimeOfDay(20*60), res.Time)
	assert.Equal(t, 5, res.Guests)
	assert.Equal(t, table, got)
}

func TestReservationService_Edit_NotOwner(t *testing.T) {
	svc, m := newReservationService(t)

	existing := &domain.Reservation{ID: "r1", CustomerID: "c1", Status: domain.ReservationStatusPending}
	m.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(existing, nil)

	_, _, err := svc.Edit(context.Background(), domain.EditReservationInput{
		ReservationID: "r1",
		CustomerID:    "c2",
		Date:          testDate(1),
		Time:          19 * 60,
		Guests:        2,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotReservationOwner)
}

func TestReservationService_Edit_Finalized(t *testing.T) {
	svc, m := newReservationService(t)

	existing := &domain.Reservation{ID: "r1", CustomerID: "c1", Status: domain.ReservationStatusCancelled}
	m.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(existing, nil)

	_, _, err := svc.Edit(context.Background(), domain.EditReservationInput{
		ReservationID: "r1",
		CustomerID:    "c1",
		Date:          testDate(1),
		Time:          19 * 60,
		Guests:        2,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationFinal)
}

func TestReservationService_Edit_NotFound(t *testing.T) {
	svc, m := newReservationService(t)

	m.reservationRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrReservationNotFound)

	_, _, err := svc.Edit(context.Background(), domain.EditReservationInput{
		ReservationID: "missing",
		CustomerID:    "c1",
		Date:          testDate(1),
		Time:          19 * 60,
		Guests:        2,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestReservationService_Cancel_Success(t *testing.T) {
	svc, m := newReservationService(t)

	// Reservation three hours out, lead time is two.
	res := &domain.Reservation{
		ID:         "r1",
		CustomerID: "c1",
		Date:       testDate(0),
		Time:       15 * 60,
		Status:     domain.ReservationStatusConfirmed,
	}
	customer := &domain.Customer{ID: "c1", Username: "alice"}

	m.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)
	m.clock.EXPECT().Now().Return(testNow)
	m.reservationRepo.EXPECT().Cancel(mock.Anything, "r1").Return(nil)
	m.customerRepo.EXPECT().GetByID(mock.Anything, "c1").Return(customer, nil)
	m.notifier.EXPECT().NotifyReservationCancelled(mock.Anything, customer, res).Return()

	err := svc.Cancel(context.Background(), "r1", "c1")

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusCancelled, res.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Cancel_TooLate(t *testing.T) {
	svc, m := newReservationService(t)

	// One hour out, inside the two hour lead time.
	res := &domain.Reservation{
		ID:         "r1",
		CustomerID: "c1",
		Date:       testDate(0),
		Time:       13 * 60,
		Status:     domain.ReservationStatusConfirmed,
	}

	m.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)
	m.clock.EXPECT().Now().Return(testNow)

	err := svc.Cancel(context.Background(), "r1", "c1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCancelTooLate)
}

func TestReservationService_Cancel_AlreadyFinal(t *testing.T) {
	svc, m := newReservationService(t)

	res := &domain.Reservation{
		ID:         "r1",
		CustomerID: "c1",
		Date:       testDate(1),
		Time:       19 * 60,
		Status:     domain.ReservationStatusCancelled,
	}

	m.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)
	m.clock.EXPECT().Now().Return(testNow)

	err := svc.Cancel(context.Background(), "r1", "c1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationFinal)
}

func TestReservationService_Cancel_NotOwner(t *testing.T) {
	svc, m := newReservationService(t)

	res := &domain.Reservation{ID: "r1", CustomerID: "c1", Status: domain.ReservationStatusPending}
	m.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)

	err := svc.Cancel(context.Background(), "r1", "c2")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotReservationOwner)
}

func TestReservationService_Cancel_NotifyLookupFailureIsSoft(t *testing.T) {
	svc, m := newReservationService(t)

	res := &domain.Reservation{
		ID:         "r1",
		CustomerID: "c1",
		Date:       testDate(1),
		Time:       19 * 60,
		Status:     domain.ReservationStatusPending,
	}

	m.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)
	m.clock.EXPECT().Now().Return(testNow)
	m.reservationRepo.EXPECT().Cancel(mock.Anything, "r1").Return(nil)
	m.customerRepo.EXPECT().GetByID(mock.Anything, "c1").Return(nil, errors.New("db error"))

	err := svc.Cancel(context.Background(), "r1", "c1")

	require.NoError(t, err)
}

func TestReservationService_UpdateStatus_Confirm(t *testing.T) {
	svc, m := newReservationService(t)

	res := &domain.Reservation{
		ID:         "r1",
		CustomerID: "c1",
		Status:     domain.ReservationStatusConfirmed,
	}
	customer := &domain.Customer{ID: "c1", Username: "alice"}

	m.reservationRepo.EXPECT().
		UpdateStatus(mock.Anything, "r1", domain.ReservationStatusConfirmed, (*string)(nil)).
		Return(nil)
	m.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)
	m.customerRepo.EXPECT().GetByID(mock.Anything, "c1").Return(customer, nil)
	m.notifier.EXPECT().NotifyReservationConfirmed(mock.Anything, customer, res).Return()

	got, err := svc.UpdateStatus(context.Background(), "r1", domain.ReservationStatusConfirmed, nil)

	require.NoError(t, err)
	assert.Equal(t, res, got)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_UpdateStatus_CompletedDoesNotNotify(t *testing.T) {
	svc, m := newReservationService(t)

	res := &domain.Reservation{ID: "r1", CustomerID: "c1", Status: domain.ReservationStatusCompleted}

	m.reservationRepo.EXPECT().
		UpdateStatus(mock.Anything, "r1", domain.ReservationStatusCompleted, (*string)(nil)).
		Return(nil)
	m.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)

	_, err := svc.UpdateStatus(context.Background(), "r1", domain.ReservationStatusCompleted, nil)

	require.NoError(t, err)
}

func TestReservationService_UpdateStatus_InvalidStatus(t *testing.T) {
	svc, _ := newReservationService(t)

	_, err := svc.UpdateStatus(context.Background(), "r1", domain.ReservationStatus("no_show"), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_UpdateStatus_NotFound(t *testing.T) {
	svc, m := newReservationService(t)

	m.reservationRepo.EXPECT().
		UpdateStatus(mock.Anything, "missing", domain.ReservationStatusConfirmed, (*string)(nil)).
		Return(domain.ErrReservationNotFound)

	_, err := svc.UpdateStatus(context.Background(), "missing", domain.ReservationStatusConfirmed, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestReservationService_CheckAvailability(t *testing.T) {
	svc, m := newReservationService(t)

	tables := []*domain.Table{
		{ID: "t2", Number: 1, Capacity: 2},
		{ID: "t4", Number: 2, Capacity: 4},
		{ID: "t6", Number: 3, Capacity: 6},
	}

	m.clock.EXPECT().Now().Return(testNow)
	m.reservationRepo.EXPECT().
		FindConflictingTableIDs(mock.Anything, testDate(1), domain.TimeOfDay(19*60), 2*time.Hour, (*string)(nil)).
		Return([]string{"t4"}, nil)
	m.tableRepo.EXPECT().List(mock.Anything).Return(tables, nil)

	free, err := svc.CheckAvailability(context.Background(), testDate(1), 19*60, 3)

	require.NoError(t, err)
	// The four-seater is booked; only the six-seater fits three guests.
	require.Len(t, free, 1)
	assert.Equal(t, "t6", free[0].ID)
}

func TestReservationService_CheckAvailability_BestFitOrder(t *testing.T) {
	svc, m := newReservationService(t)

	tables := []*domain.Table{
		{ID: "t6", Number: 3, Capacity: 6},
		{ID: "t4", Number: 2, Capacity: 4},
		{ID: "t2", Number: 1, Capacity: 2},
	}

	m.clock.EXPECT().Now().Return(testNow)
	m.reservationRepo.EXPECT().
		FindConflictingTableIDs(mock.Anything, testDate(1), domain.TimeOfDay(19*60), 2*time.Hour, (*string)(nil)).
		Return(nil, nil)
	m.tableRepo.EXPECT().List(mock.Anything).Return(tables, nil)

	free, err := svc.CheckAvailability(context.Background(), testDate(1), 19*60, 2)

	require.NoError(t, err)
	require.Len(t, free, 3)
	assert.Equal(t, []string{"t2", "t4", "t6"}, []string{free[0].ID, free[1].ID, free[2].ID})
}

func TestReservationService_CheckAvailability_PastSlot(t *testing.T) {
	svc, m := newReservationService(t)

	m.clock.EXPECT().Now().Return(testNow)

	_, err := svc.CheckAvailability(context.Background(), testDate(-1), 19*60, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotInPast)
}

func TestReservationService_CompleteElapsed(t *testing.T) {
	svc, m := newReservationService(t)

	completed := []*domain.Reservation{
		{ID: "r1", Status: domain.ReservationStatusCompleted},
		{ID: "r2", Status: domain.ReservationStatusCompleted},
	}
	m.reservationRepo.EXPECT().CompleteElapsed(mock.Anything, 2*time.Hour).Return(completed, nil)

	result, err := svc.CompleteElapsed(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestReservationService_CompleteElapsed_RepoError(t *testing.T) {
	svc, m := newReservationService(t)

	m.reservationRepo.EXPECT().CompleteElapsed(mock.Anything, 2*time.Hour).Return(nil, errors.New("db error"))

	_, err := svc.CompleteElapsed(context.Background())

	require.Error(t, err)
}

func TestReservationService_Dashboard(t *testing.T) {
	svc, m := newReservationService(t)

	stats := &domain.DashboardStats{UpcomingActive: 4, ConfirmedToday: 2, TotalTables: 10}
	m.clock.EXPECT().Now().Return(testNow)
	m.reservationRepo.EXPECT().DashboardStats(mock.Anything, testNow).Return(stats, nil)

	got, err := svc.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stats, got)
}
