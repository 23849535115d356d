package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Soloquie/Alojapp-sub002/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// Postgres error codes translated into the domain taxonomy.
const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

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

const reservationColumns = `id, lodging_id, guest_id, checkin, checkout, guests,
			total_price, status, cancelled_at, cancellation_reason, created_at, updated_at`

// Create inserts the reservation. The overlap check and the insert run in
// one transaction, and the table's range-exclusion constraint turns the
// loser of a concurrent race into ErrDateOverlap instead of a second row.
// The WHERE predicate is the SQL form of domain.RangesOverlap.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	overlapQuery := `SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE lodging_id = $1
			  AND status = ANY($2)
			  AND checkin < $4
			  AND checkout > $3)`
	var overlaps bool
	if err = tx.QueryRowContext(
		ctx, overlapQuery, res.LodgingID,
		pq.Array(domain.BlockingStatuses), res.Checkin, res.Checkout,
	).Scan(&overlaps); err != nil {
		return fmt.Errorf("check overlap: %w", err)
	}
	if overlaps {
		return domain.ErrDateOverlap
	}

	query := `INSERT INTO reservations (id, lodging_id, guest_id, checkin, checkout,
				guests, total_price, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = tx.ExecContext(
		ctx, query, res.ID, res.LodgingID, res.GuestID,
		res.Checkin, res.Checkout, res.Guests,
		res.TotalPrice, res.Status, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation {
			return domain.ErrDateOverlap
		}
		return fmt.Errorf("insert reservation: %w", err)
	}

	return tx.Commit()
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return res, nil
}

// IsAvailable reports whether no blocking reservation overlaps the half-open
// range [checkin, checkout). Back-to-back stays do not overlap; the WHERE
// predicate is the SQL form of domain.RangesOverlap.
func (r *ReservationRepository) IsAvailable(ctx context.Context, lodgingID string, checkin, checkout time.Time) (bool, error) {
	query := `SELECT NOT EXISTS (
			SELECT 1 FROM reservations
			WHERE lodging_id = $1
			  AND status = ANY($2)
			  AND checkin < $4
			  AND checkout > $3)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, lodgingID, pq.Array(domain.BlockingStatuses), checkin, checkout)
	if err != nil {
		return false, fmt.Errorf("check availability: %w", err)
	}

	var available bool
	if err = row.Scan(&available); err != nil {
		return false, fmt.Errorf("scan availability: %w", err)
	}

	return available, nil
}

func (r *ReservationRepository) Cancel(ctx context.Context, id, reason string, at time.Time) error {
	query := `UPDATE reservations
			  SET status = $2, cancelled_at = $3, cancellation_reason = $4, updated_at = $3
			  WHERE id = $1 AND status = ANY($5)`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.ReservationStatusCancelled, at, reason,
		pq.Array(domain.ActiveStatuses),
	)
	if err != nil {
		return fmt.Errorf("cancel reservation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("cancel rows affected: %w", err)
	}
	if rows == 0 {
		// Lost a race with another cancel or the completion sweep.
		var status string
		checkQuery := `SELECT status FROM reservations WHERE id = $1`
		row, qErr := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, id)
		if qErr != nil {
			return fmt.Errorf("check reservation: %w", qErr)
		}
		if sErr := row.Scan(&status); sErr != nil {
			if errors.Is(sErr, sql.ErrNoRows) {
				return domain.ErrReservationNotFound
			}
			return fmt.Errorf("scan reservation status: %w", sErr)
		}
		return domain.ErrReservationNotCancellable
	}

	return nil
}

// CompleteExpired finishes every confirmed reservation whose checkout date
// is before the given day. Idempotent: completed and cancelled rows never
// match the predicate.
func (r *ReservationRepository) CompleteExpired(ctx context.Context, before time.Time) ([]*domain.Reservation, error) {
	query := `UPDATE reservations
			  SET status = $2, updated_at = NOW()
			  WHERE status = $1 AND checkout < $3
			  RETURNING ` + reservationColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.ReservationStatusConfirmed, domain.ReservationStatusCompleted, before,
	)
	if err != nil {
		return nil, fmt.Errorf("complete expired: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) ListByGuest(ctx context.Context, guestID string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE guest_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, guestID)
	if err != nil {
		return nil, fmt.Errorf("list reservations by guest: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) ListByLodging(ctx context.Context, lodgingID string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE lodging_id = $1
			  ORDER BY checkin`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, lodgingID)
	if err != nil {
		return nil, fmt.Errorf("list reservations by lodging: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) ListByHost(ctx context.Context, hostID string) ([]*domain.Reservation, error) {
	query := `SELECT r.id, r.lodging_id, r.guest_id, r.checkin, r.checkout, r.guests,
					 r.total_price, r.status, r.cancelled_at, r.cancellation_reason,
					 r.created_at, r.updated_at
			  FROM reservations r
			  JOIN lodgings l ON l.id = r.lodging_id
			  WHERE l.host_id = $1
			  ORDER BY r.checkin`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, hostID)
	if err != nil {
		return nil, fmt.Errorf("list reservations by host: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func scanReservation(scan func(dest ...any) error) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := scan(
		&res.ID, &res.LodgingID, &res.GuestID,
		&res.Checkin, &res.Checkout, &res.Guests,
		&res.TotalPrice, &res.Status,
		&res.CancelledAt, &res.CancellationReason,
		&res.CreatedAt, &res.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &res, nil
}

func collectReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	var res []*domain.Reservation
	for rows.Next() {
		item, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, item)
	}

	return res, rows.Err()
}
