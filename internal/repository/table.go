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

type TableRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTableRepo(db *dbpg.DB) *TableRepository {
	return &TableRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TableRepository) Create(ctx context.Context, t *domain.Table) error {
	query := `INSERT INTO tables (id, number, capacity, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		t.ID, t.Number, t.Capacity, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrTableNumberTaken
		}
		return fmt.Errorf("insert table: %w", err)
	}

	return nil
}

func (r *TableRepository) Update(ctx context.Context, t *domain.Table) error {
	query := `UPDATE tables
			  SET number = $2, capacity = $3, updated_at = $4
			  WHERE id = $1`
	result, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		t.ID, t.Number, t.Capacity, t.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrTableNumberTaken
		}
		return fmt.Errorf("update table: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("table rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrTableNotFound
	}

	return nil
}

// Delete refuses to remove a table while any pending or confirmed
// reservation still references it. The check and the delete share one
// transaction so a racing reservation cannot slip in between.
func (r *TableRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var number int
	if err = tx.QueryRowContext(ctx,
		`SELECT number FROM tables WHERE id = $1 FOR UPDATE`, id,
	).Scan(&number); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrTableNotFound
		}
		return fmt.Errorf("lock table: %w", err)
	}

	var active int
	if err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reservations WHERE table_id = $1 AND status = ANY($2)`,
		id, pq.Array(domain.BlockingStatuses),
	).Scan(&active); err != nil {
		return fmt.Errorf("count active reservations: %w", err)
	}
	if active > 0 {
		return fmt.Errorf("%w: table %d has %d active reservation(s)",
			domain.ErrTableInUse, number, active)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM tables WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete table: %w", err)
	}

	return tx.Commit()
}

func (r *TableRepository) GetByID(ctx context.Context, id string) (*domain.Table, error) {
	query := `SELECT id, number, capacity, created_at, updated_at
			  FROM tables
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get table: %w", err)
	}

	var t domain.Table
	if err = row.Scan(&t.ID, &t.Number, &t.Capacity, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTableNotFound
		}
		return nil, fmt.Errorf("scan table: %w", err)
	}

	return &t, nil
}

func (r *TableRepository) List(ctx context.Context) ([]*domain.Table, error) {
	query := `SELECT id, number, capacity, created_at, updated_at
			  FROM tables
			  ORDER BY number`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var res []*domain.Table
	for rows.Next() {
		var t domain.Table
		if err = rows.Scan(&t.ID, &t.Number, &t.Capacity, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		res = append(res, &t)
	}

	return res, rows.Err()
}
