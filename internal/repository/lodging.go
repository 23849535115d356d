package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Soloquie/Alojapp-sub002/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type LodgingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewLodgingRepo(db *dbpg.DB) *LodgingRepository {
	return &LodgingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *LodgingRepository) Create(ctx context.Context, l *domain.Lodging) error {
	query := `INSERT INTO lodgings (id, host_id, name, nightly_rate, capacity, active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		l.ID, l.HostID, l.Name, l.NightlyRate, l.Capacity, l.Active, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lodging: %w", err)
	}

	return nil
}

func (r *LodgingRepository) GetByID(ctx context.Context, id string) (*domain.Lodging, error) {
	query := `SELECT id, host_id, name, nightly_rate, capacity, active, created_at, updated_at
			  FROM lodgings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get lodging: %w", err)
	}

	var l domain.Lodging
	if err = row.Scan(&l.ID, &l.HostID, &l.Name, &l.NightlyRate, &l.Capacity, &l.Active, &l.CreatedAt, &l.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLodgingNotFound
		}
		return nil, fmt.Errorf("scan lodging: %w", err)
	}

	return &l, nil
}

func (r *LodgingRepository) List(ctx context.Context) ([]*domain.Lodging, error) {
	query := `SELECT id, host_id, name, nightly_rate, capacity, active, created_at, updated_at
			  FROM lodgings
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list lodgings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Lodging
	for rows.Next() {
		var l domain.Lodging
		if err = rows.Scan(&l.ID, &l.HostID, &l.Name, &l.NightlyRate, &l.Capacity, &l.Active, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lodging: %w", err)
		}
		res = append(res, &l)
	}

	return res, rows.Err()
}
