package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/avdeyev/TableBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const uniqueViolation = "23505"

// errAssignRace marks a lost race against a concurrent writer on the partial
// unique index over (table_id, reservation_date, reservation_time).
var errAssignRace = errors.New("assignment lost unique-index race")

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation, buffer time.Duration) (*domain.Table, error) {
	// One retry with a freshly recomputed candidate before giving up as
	// no-availability.
	for attempt := 0; attempt < 2; attempt++ {
		table, err := r.assign(ctx, res, buffer, nil)
		if errors.Is(err, errAssignRace) {
			continue
		}
		return table, err
	}
	return nil, domain.ErrNoTablesAvailable
}

func (r *ReservationRepository) Reassign(ctx context.Context, res *domain.Reservation, buffer time.Duration) (*domain.Table, error) {
	for attempt := 0; attempt < 2; attempt++ {
		table, err := r.assign(ctx, res, buffer, &res.ID)
		if errors.Is(err, errAssignRace) {
			continue
		}
		return table, err
	}
	return nil, domain.ErrNoTablesAvailable
}

// assign runs the conflict scan, best-fit selection and write as a single
// transaction. Candidate table rows are locked so two near-simultaneous
// assignments for overlapping windows serialize instead of double-booking.
func (r *ReservationRepository) assign(ctx context.Context, res *domain.Reservation, buffer time.Duration, excludeID *string) (*domain.Table, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	candidateQuery := `SELECT id, number, capacity FROM tables
					   WHERE capacity >= $1
					   ORDER BY capacity, number
					   FOR UPDATE`
	rows, err := tx.QueryContext(ctx, candidateQuery, res.Guests)
	if err != nil {
		return nil, fmt.Errorf("lock candidate tables: %w", err)
	}
	var tables []*domain.Table
	for rows.Next() {
		var t domain.Table
		if err = rows.Scan(&t.ID, &t.Number, &t.Capacity); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan table: %w", err)
		}
		tables = append(tables, &t)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("candidate tables: %w", err)
	}

	from, to := domain.Window(res.Time, buffer)
	conflictQuery := `SELECT DISTINCT table_id FROM reservations
					  WHERE reservation_date = $1
					    AND reservation_time BETWEEN $2 AND $3
					    AND status = ANY($4)
					    AND table_id IS NOT NULL
					    AND ($5::uuid IS NULL OR id <> $5)`
	crows, err := tx.QueryContext(ctx, conflictQuery,
		res.Date, from.Clock(), to.Clock(),
		pq.Array(domain.BlockingStatuses), excludeID,
	)
	if err != nil {
		return nil, fmt.Errorf("find conflicting tables: %w", err)
	}
	excluded := make(map[string]struct{})
	for crows.Next() {
		var id string
		if err = crows.Scan(&id); err != nil {
			crows.Close()
			return nil, fmt.Errorf("scan conflicting table: %w", err)
		}
		excluded[id] = struct{}{}
	}
	crows.Close()
	if err = crows.Err(); err != nil {
		return nil, fmt.Errorf("conflicting tables: %w", err)
	}

	table := domain.SelectTable(tables, res.Guests, excluded)
	if table == nil {
		return nil, domain.ErrNoTablesAvailable
	}
	res.TableID = table.ID
	res.TableNumber = table.Number

	if excludeID == nil {
		insert := `INSERT INTO reservations
				   (id, customer_id, table_id, reservation_date, reservation_time, number_of_guests, notes, status, created_at, updated_at)
				   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
		_, err = tx.ExecContext(ctx, insert,
			res.ID, res.CustomerID, res.TableID, res.Date, res.Time.Clock(),
			res.Guests, res.Notes, res.Status, res.CreatedAt, res.UpdatedAt,
		)
	} else {
		update := `UPDATE reservations
				   SET table_id = $2, reservation_date = $3, reservation_time = $4, number_of_guests = $5, updated_at = $6
				   WHERE id = $1 AND status = ANY($7)`
		var result sql.Result
		result, err = tx.ExecContext(ctx, update,
			res.ID, res.TableID, res.Date, res.Time.Clock(),
			res.Guests, res.UpdatedAt, pq.Array(domain.BlockingStatuses),
		)
		if err == nil {
			var n int64
			if n, err = result.RowsAffected(); err != nil {
				return nil, fmt.Errorf("reservation rows affected: %w", err)
			}
			if n == 0 {
				return nil, domain.ErrReservationNotFound
			}
		}
	}
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, errAssignRace
		}
		return nil, fmt.Errorf("write reservation: %w", err)
	}

	return table, tx.Commit()
}

const reservationColumns = `r.id, r.customer_id, r.table_id, COALESCE(t.number, 0),
			r.reservation_date, r.reservation_time, r.number_of_guests,
			r.notes, r.status, r.created_at, r.updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		res     domain.Reservation
		tableID sql.NullString
		slot    time.Time
	)
	if err := row.Scan(
		&res.ID, &res.CustomerID, &tableID, &res.TableNumber,
		&res.Date, &slot, &res.Guests,
		&res.Notes, &res.Status, &res.CreatedAt, &res.UpdatedAt,
	); err != nil {
		return nil, err
	}
	res.TableID = tableID.String
	res.Time = domain.TimeOfDay(slot.Hour()*60 + slot.Minute())
	return &res, nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations r
			  LEFT JOIN tables t ON t.id = r.table_id
			  WHERE r.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return res, nil
}

func (r *ReservationRepository) Cancel(ctx context.Context, id string) error {
	query := `UPDATE reservations
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = ANY($3)`
	result, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		id, domain.ReservationStatusCancelled, pq.Array(domain.BlockingStatuses),
	)
	if err != nil {
		return fmt.Errorf("cancel reservation: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reservation rows affected: %w", err)
	}
	if n == 0 {
		// Zero rows means either a missing reservation or one that already
		// reached a terminal status.
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
			`SELECT status FROM reservations WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("check reservation: %w", err)
		}
		var status domain.ReservationStatus
		if err = row.Scan(&status); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrReservationNotFound
			}
			return fmt.Errorf("scan reservation status: %w", err)
		}
		return fmt.Errorf("%w: already %s, cannot cancel", domain.ErrReservationFinal, status)
	}

	return nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus, notes *string) error {
	query := `UPDATE reservations
			  SET status = $2, notes = COALESCE($3, notes), updated_at = now()
			  WHERE id = $1`
	result, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status, notes)
	if err != nil {
		return fmt.Errorf("update reservation status: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reservation rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrReservationNotFound
	}

	return nil
}

func (r *ReservationRepository) FindConflictingTableIDs(ctx context.Context, date time.Time, slot domain.TimeOfDay, buffer time.Duration, excludeID *string) ([]string, error) {
	from, to := domain.Window(slot, buffer)
	query := `SELECT DISTINCT table_id FROM reservations
			  WHERE reservation_date = $1
			    AND reservation_time BETWEEN $2 AND $3
			    AND status = ANY($4)
			    AND table_id IS NOT NULL
			    AND ($5::uuid IS NULL OR id <> $5)`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query,
		date, from.Clock(), to.Clock(),
		pq.Array(domain.BlockingStatuses), excludeID,
	)
	if err != nil {
		return nil, fmt.Errorf("find conflicting tables: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan conflicting table: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *ReservationRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations r
			  LEFT JOIN tables t ON t.id = r.table_id
			  WHERE r.customer_id = $1
			  ORDER BY r.reservation_date DESC, r.reservation_time DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list reservations by customer: %w", err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		rv, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, rv)
	}

	return res, rows.Err()
}

func (r *ReservationRepository) List(ctx context.Context) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations r
			  LEFT JOIN tables t ON t.id = r.table_id
			  ORDER BY r.reservation_date DESC, r.reservation_time DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		rv, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, rv)
	}

	return res, rows.Err()
}

func (r *ReservationRepository) CompleteElapsed(ctx context.Context, dwell time.Duration) ([]*domain.Reservation, error) {
	query := `UPDATE reservations
			  SET status = $2, updated_at = now()
			  WHERE status = $1
			    AND reservation_date + reservation_time < now() - make_interval(secs => $3)
			  RETURNING id, customer_id, table_id, 0,
			            reservation_date, reservation_time, number_of_guests,
			            notes, status, created_at, updated_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query,
		domain.ReservationStatusConfirmed, domain.ReservationStatusCompleted,
		dwell.Seconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("complete elapsed: %w", err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		rv, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, rv)
	}

	return res, rows.Err()
}

func (r *ReservationRepository) DashboardStats(ctx context.Context, now time.Time) (*domain.DashboardStats, error) {
	query := `SELECT
			  (SELECT COUNT(*) FROM reservations WHERE status = ANY($1) AND reservation_date >= $2::date),
			  (SELECT COUNT(*) FROM reservations WHERE status = $3 AND reservation_date = $2::date),
			  (SELECT COUNT(*) FROM tables)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query,
		pq.Array(domain.BlockingStatuses), now, domain.ReservationStatusConfirmed,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	var s domain.DashboardStats
	if err = row.Scan(&s.UpcomingActive, &s.ConfirmedToday, &s.TotalTables); err != nil {
		return nil, fmt.Errorf("scan dashboard stats: %w", err)
	}

	return &s, nil
}
