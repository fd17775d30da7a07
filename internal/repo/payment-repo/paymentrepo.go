package paymentrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/avoropai/library-service/internal/domain"
	"github.com/avoropai/library-service/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Save(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	query := `
        INSERT INTO payments (borrowing_id, status, type_pay, correlation_id, session_id, session_url, money_to_pay)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		payment.BorrowingID, payment.Status, payment.Type, payment.CorrelationID,
		payment.SessionID, payment.SessionURL, payment.MoneyToPay,
	).Scan(&payment.ID)
	if err != nil {
		zap.L().Error("can't save payment", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

// FindByID returns the payment, or nil when it does not exist or the
// owning borrowing lies outside the given user scope.
func (r *Repository) FindByID(ctx context.Context, paymentID int, scopeUserID *int) (*domain.Payment, error) {
	query := `
        SELECT p.id, p.borrowing_id, p.status, p.type_pay, p.correlation_id, p.session_id, p.session_url, p.money_to_pay
        FROM payments p
        JOIN borrowings b ON b.id = p.borrowing_id
        WHERE p.id = $1 AND ($2::INT IS NULL OR b.user_id = $2)
    `
	row := r.db.QueryRow(ctx, query, paymentID, scopeUserID)

	var p domain.Payment
	err := row.Scan(&p.ID, &p.BorrowingID, &p.Status, &p.Type, &p.CorrelationID, &p.SessionID, &p.SessionURL, &p.MoneyToPay)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) List(ctx context.Context, scopeUserID *int) ([]domain.Payment, error) {
	query := `
        SELECT p.id, p.borrowing_id, p.status, p.type_pay, p.correlation_id, p.session_id, p.session_url, p.money_to_pay
        FROM payments p
        JOIN borrowings b ON b.id = p.borrowing_id
        WHERE ($1::INT IS NULL OR b.user_id = $1)
        ORDER BY p.id ASC
    `
	rows, err := r.db.Query(ctx, query, scopeUserID)
	if err != nil {
		zap.L().Error("can't get payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		err := rows.Scan(&p.ID, &p.BorrowingID, &p.Status, &p.Type, &p.CorrelationID, &p.SessionID, &p.SessionURL, &p.MoneyToPay)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, nil
}

// FindPendingWithoutSession returns pending payments that still lack a
// checkout session, oldest first, for the reconciler to pick up.
func (r *Repository) FindPendingWithoutSession(ctx context.Context, limit uint32) ([]domain.PendingCheckout, error) {
	query := `
        SELECT p.id, p.borrowing_id, p.status, p.type_pay, p.correlation_id, p.session_id, p.session_url, p.money_to_pay, bk.title
        FROM payments p
        JOIN borrowings b ON b.id = p.borrowing_id
        JOIN books bk ON bk.id = b.book_id
        WHERE p.status = 'PENDING' AND p.session_id = ''
        ORDER BY p.id ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get payments without session", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var pending []domain.PendingCheckout
	for rows.Next() {
		var p domain.PendingCheckout
		err := rows.Scan(&p.ID, &p.BorrowingID, &p.Status, &p.Type, &p.CorrelationID, &p.SessionID, &p.SessionURL, &p.MoneyToPay, &p.BookTitle)
		if err != nil {
			zap.L().Error("can't scan pending payment row", zap.Error(err))
			return nil, err
		}
		pending = append(pending, p)
	}
	return pending, nil
}

func (r *Repository) AttachSession(ctx context.Context, paymentID int, sessionID, sessionURL string) error {
	query := `
        UPDATE payments
        SET session_id = $1, session_url = $2
        WHERE id = $3
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, sessionID, sessionURL, paymentID)
		if err != nil {
			zap.L().Error("can't attach session to payment", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// MarkPaidBySession flips the payment to PAID. The update is
// unconditional on status, so repeated confirmations are no-ops; the
// returned flag is false only for an unknown session id.
func (r *Repository) MarkPaidBySession(ctx context.Context, sessionID string) (bool, error) {
	query := `
        UPDATE payments
        SET status = 'PAID'
        WHERE session_id = $1 AND session_id <> ''
    `
	tag, err := r.db.Exec(ctx, query, sessionID)
	if err != nil {
		zap.L().Error("can't mark payment paid", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
