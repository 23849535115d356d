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

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the payment and confirms a pending reservation in the same
// transaction. The reservation row is locked first so a cancel committing
// after the service's state check cannot end up with an approved payment on
// a terminal reservation. The unique constraint on reservation_id guarantees
// at most one payment row per reservation; the loser of a concurrent race
// sees ErrDuplicatePayment.
func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	statusQuery := `SELECT status FROM reservations WHERE id = $1 FOR UPDATE`
	var status domain.ReservationStatus
	if err = tx.QueryRowContext(ctx, statusQuery, p.ReservationID).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrReservationNotFound
		}
		return fmt.Errorf("lock reservation: %w", err)
	}
	if status.IsTerminal() {
		return domain.ErrReservationNotPayable
	}

	query := `INSERT INTO payments (id, reservation_id, payer_id, amount, method, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = tx.ExecContext(
		ctx, query, p.ID, p.ReservationID, p.PayerID,
		p.Amount, p.Method, p.Status, p.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrDuplicatePayment
		}
		return fmt.Errorf("insert payment: %w", err)
	}

	confirmQuery := `UPDATE reservations
					 SET status = $3, updated_at = NOW()
					 WHERE id = $1 AND status = $2`
	_, err = tx.ExecContext(
		ctx, confirmQuery, p.ReservationID,
		domain.ReservationStatusPending, domain.ReservationStatusConfirmed,
	)
	if err != nil {
		return fmt.Errorf("confirm reservation: %w", err)
	}

	return tx.Commit()
}

const paymentColumns = `id, reservation_id, payer_id, amount, method, status, created_at`

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
			  FROM payments
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	return scanPayment(row.Scan)
}

func (r *PaymentRepository) GetByReservation(ctx context.Context, reservationID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
			  FROM payments
			  WHERE reservation_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, reservationID)
	if err != nil {
		return nil, fmt.Errorf("get payment by reservation: %w", err)
	}

	return scanPayment(row.Scan)
}

// UpdateStatus changes only the status column. Amount and reservation
// linkage stay immutable.
func (r *PaymentRepository) UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) error {
	query := `UPDATE payments SET status = $2 WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("payment rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrPaymentNotFound
	}

	return nil
}

func (r *PaymentRepository) RevenueByHost(ctx context.Context, hostID string) (domain.Money, error) {
	query := `SELECT COALESCE(SUM(p.amount), 0)
			  FROM payments p
			  JOIN reservations r ON r.id = p.reservation_id
			  JOIN lodgings l ON l.id = r.lodging_id
			  WHERE l.host_id = $1 AND p.status = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, hostID, domain.PaymentStatusApproved)
	if err != nil {
		return 0, fmt.Errorf("host revenue: %w", err)
	}

	var revenue domain.Money
	if err = row.Scan(&revenue); err != nil {
		return 0, fmt.Errorf("scan host revenue: %w", err)
	}

	return revenue, nil
}

func scanPayment(scan func(dest ...any) error) (*domain.Payment, error) {
	var p domain.Payment
	if err := scan(
		&p.ID, &p.ReservationID, &p.PayerID,
		&p.Amount, &p.Method, &p.Status, &p.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}
	return &p, nil
}
