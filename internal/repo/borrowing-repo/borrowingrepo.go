package borrowingrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/avoropai/library-service/internal/domain"
	"github.com/avoropai/library-service/internal/pg"
	"go.uber.org/zap"
)

// ErrDuplicateActive is returned when the partial unique index on
// active (user, book) pairs rejects an insert.
var ErrDuplicateActive = errors.New("active borrowing already exists for this user and book")

const uniqueViolationCode = "23505"

// Filter narrows List results. A nil UserID means no user scoping
// (staff view); ActiveOnly keeps rows with a null actual return date.
type Filter struct {
	UserID     *int
	ActiveOnly bool
}

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

func (r *Repository) Save(ctx context.Context, borrowing *domain.Borrowing) (*domain.Borrowing, error) {
	query := `
        INSERT INTO borrowings (user_id, book_id, borrow_date, expected_return_date)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		borrowing.UserID, borrowing.BookID, borrowing.BorrowDate, borrowing.ExpectedReturnDate,
	).Scan(&borrowing.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, ErrDuplicateActive
		}
		zap.L().Error("can't save borrowing", zap.Error(err))
		return nil, err
	}
	return borrowing, nil
}

// FindByID returns the borrowing, or nil when it does not exist or
// lies outside the given user scope. Scoping is part of the query so
// that foreign rows are indistinguishable from absent ones.
func (r *Repository) FindByID(ctx context.Context, borrowingID int, scopeUserID *int) (*domain.Borrowing, error) {
	query := `
        SELECT id, user_id, book_id, borrow_date, expected_return_date, actual_return_date
        FROM borrowings
        WHERE id = $1 AND ($2::INT IS NULL OR user_id = $2)
    `
	row := r.db.QueryRow(ctx, query, borrowingID, scopeUserID)

	var b domain.Borrowing
	err := row.Scan(&b.ID, &b.UserID, &b.BookID, &b.BorrowDate, &b.ExpectedReturnDate, &b.ActualReturnDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find borrowing", zap.Error(err))
		return nil, err
	}
	return &b, nil
}

func (r *Repository) List(ctx context.Context, filter Filter) ([]domain.Borrowing, error) {
	query := `
        SELECT id, user_id, book_id, borrow_date, expected_return_date, actual_return_date
        FROM borrowings
        WHERE ($1::INT IS NULL OR user_id = $1)
          AND (NOT $2::BOOL OR actual_return_date IS NULL)
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query, filter.UserID, filter.ActiveOnly)
	if err != nil {
		zap.L().Error("can't get borrowings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var borrowings []domain.Borrowing
	for rows.Next() {
		var b domain.Borrowing
		err := rows.Scan(&b.ID, &b.UserID, &b.BookID, &b.BorrowDate, &b.ExpectedReturnDate, &b.ActualReturnDate)
		if err != nil {
			zap.L().Error("can't scan borrowing row", zap.Error(err))
			return nil, err
		}
		borrowings = append(borrowings, b)
	}
	return borrowings, nil
}

// MarkReturned sets the actual return date exactly once. The returned
// flag is false when the borrowing was already returned, so concurrent
// returns cannot both succeed.
func (r *Repository) MarkReturned(ctx context.Context, borrowingID int, returnedAt time.Time) (bool, error) {
	query := `
        UPDATE borrowings
        SET actual_return_date = $1
        WHERE id = $2 AND actual_return_date IS NULL
    `
	tag, err := r.db.Exec(ctx, query, returnedAt, borrowingID)
	if err != nil {
		zap.L().Error("can't mark borrowing returned", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) FindOverdue(ctx context.Context, now time.Time) ([]domain.OverdueBorrowing, error) {
	query := `
        SELECT b.id, b.user_id, b.book_id, b.borrow_date, b.expected_return_date, b.actual_return_date,
               u.login, bk.title
        FROM borrowings b
        JOIN users u ON u.id = b.user_id
        JOIN books bk ON bk.id = b.book_id
        WHERE b.actual_return_date IS NULL AND b.expected_return_date < $1
        ORDER BY b.expected_return_date ASC
    `
	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		zap.L().Error("can't get overdue borrowings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var overdue []domain.OverdueBorrowing
	for rows.Next() {
		var o domain.OverdueBorrowing
		err := rows.Scan(
			&o.ID, &o.UserID, &o.BookID, &o.BorrowDate, &o.ExpectedReturnDate, &o.ActualReturnDate,
			&o.UserLogin, &o.BookTitle,
		)
		if err != nil {
			zap.L().Error("can't scan overdue borrowing row", zap.Error(err))
			return nil, err
		}
		overdue = append(overdue, o)
	}
	return overdue, nil
}
