package borrowingrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/avoropai/library-service/internal/domain"
	"github.com/avoropai/library-service/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func intPtr(i int) *int {
	return &i
}

func TestRepository_Save(t *testing.T) {
	repo, mock, _ := NewMock(t)
	borrowDate := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	expectedReturn := time.Date(2026, 8, 6, 0, 0, 0, 0, time.UTC)

	query := `
        INSERT INTO borrowings (user_id, book_id, borrow_date, expected_return_date)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	tests := []struct {
		name      string
		borrowing *domain.Borrowing
		mockSetup func()
		expectErr error
	}{
		{
			name: "Save borrowing successfully",
			borrowing: &domain.Borrowing{
				UserID:             1,
				BookID:             2,
				BorrowDate:         borrowDate,
				ExpectedReturnDate: expectedReturn,
			},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id"}).AddRow(10)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1, 2, borrowDate, expectedReturn).
					WillReturnRows(rows)
			},
			expectErr: nil,
		},
		{
			name: "Active borrowing already exists",
			borrowing: &domain.Borrowing{
				UserID:             1,
				BookID:             2,
				BorrowDate:         borrowDate,
				ExpectedReturnDate: expectedReturn,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1, 2, borrowDate, expectedReturn).
					WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})
			},
			expectErr: ErrDuplicateActive,
		},
		{
			name: "Database error",
			borrowing: &domain.Borrowing{
				UserID:             1,
				BookID:             2,
				BorrowDate:         borrowDate,
				ExpectedReturnDate: expectedReturn,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1, 2, borrowDate, expectedReturn).
					WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Save(context.Background(), tt.borrowing)
			if tt.expectErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectErr.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 10, result.ID)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	borrowDate := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	expectedReturn := time.Date(2026, 8, 6, 0, 0, 0, 0, time.UTC)

	query := `
        SELECT id, user_id, book_id, borrow_date, expected_return_date, actual_return_date
        FROM borrowings
        WHERE id = $1 AND ($2::INT IS NULL OR user_id = $2)
    `
	tests := []struct {
		name        string
		borrowingID int
		scopeUserID *int
		mockSetup   func()
		expectErr   bool
		result      *domain.Borrowing
	}{
		{
			name:        "Borrowing found without scope",
			borrowingID: 10,
			scopeUserID: nil,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "book_id", "borrow_date", "expected_return_date", "actual_return_date"}).
					AddRow(10, 1, 2, borrowDate, expectedReturn, nil)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(10, (*int)(nil)).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Borrowing{
				ID:                 10,
				UserID:             1,
				BookID:             2,
				BorrowDate:         borrowDate,
				ExpectedReturnDate: expectedReturn,
			},
		},
		{
			name:        "Borrowing found within scope",
			borrowingID: 10,
			scopeUserID: intPtr(1),
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "book_id", "borrow_date", "expected_return_date", "actual_return_date"}).
					AddRow(10, 1, 2, borrowDate, expectedReturn, nil)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(10, intPtr(1)).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Borrowing{
				ID:                 10,
				UserID:             1,
				BookID:             2,
				BorrowDate:         borrowDate,
				ExpectedReturnDate: expectedReturn,
			},
		},
		{
			name:        "Foreign borrowing is invisible",
			borrowingID: 10,
			scopeUserID: intPtr(2),
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(10, intPtr(2)).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:        "Database error",
			borrowingID: 10,
			scopeUserID: nil,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(10, (*int)(nil)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.borrowingID, tt.scopeUserID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock, _ := NewMock(t)
	borrowDate := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	expectedReturn := time.Date(2026, 8, 6, 0, 0, 0, 0, time.UTC)
	returned := time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC)

	query := `
        SELECT id, user_id, book_id, borrow_date, expected_return_date, actual_return_date
        FROM borrowings
        WHERE ($1::INT IS NULL OR user_id = $1)
          AND (NOT $2::BOOL OR actual_return_date IS NULL)
        ORDER BY id ASC
    `
	tests := []struct {
		name      string
		filter    Filter
		mockSetup func()
		expectErr bool
		result    []domain.Borrowing
	}{
		{
			name:   "All borrowings",
			filter: Filter{},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "book_id", "borrow_date", "expected_return_date", "actual_return_date"}).
					AddRow(10, 1, 2, borrowDate, expectedReturn, nil).
					AddRow(11, 2, 3, borrowDate, expectedReturn, &returned)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs((*int)(nil), false).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.Borrowing{
				{ID: 10, UserID: 1, BookID: 2, BorrowDate: borrowDate, ExpectedReturnDate: expectedReturn},
				{ID: 11, UserID: 2, BookID: 3, BorrowDate: borrowDate, ExpectedReturnDate: expectedReturn, ActualReturnDate: &returned},
			},
		},
		{
			name:   "Active borrowings of one user",
			filter: Filter{UserID: intPtr(1), ActiveOnly: true},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "book_id", "borrow_date", "expected_return_date", "actual_return_date"}).
					AddRow(10, 1, 2, borrowDate, expectedReturn, nil)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(intPtr(1), true).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.Borrowing{
				{ID: 10, UserID: 1, BookID: 2, BorrowDate: borrowDate, ExpectedReturnDate: expectedReturn},
			},
		},
		{
			name:   "Database error",
			filter: Filter{},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs((*int)(nil), false).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
		{
			name:   "Scan row error",
			filter: Filter{},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "book_id", "borrow_date", "expected_return_date", "actual_return_date"}).
					AddRow(10, 1, "invalid_value", borrowDate, expectedReturn, nil)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs((*int)(nil), false).
					WillReturnRows(rows)
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.List(context.Background(), tt.filter)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_MarkReturned(t *testing.T) {
	repo, mock, _ := NewMock(t)
	returnedAt := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	query := `
        UPDATE borrowings
        SET actual_return_date = $1
        WHERE id = $2 AND actual_return_date IS NULL
    `
	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		returned  bool
	}{
		{
			name: "Marked returned",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(returnedAt, 10).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
			returned:  true,
		},
		{
			name: "Already returned",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(returnedAt, 10).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr: false,
			returned:  false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(returnedAt, 10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			returned:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			returned, err := repo.MarkReturned(context.Background(), 10, returnedAt)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.returned, returned)
		})
	}
}

func TestRepository_FindOverdue(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	borrowDate := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	expectedReturn := time.Date(2026, 8, 6, 0, 0, 0, 0, time.UTC)

	query := `
        SELECT b.id, b.user_id, b.book_id, b.borrow_date, b.expected_return_date, b.actual_return_date,
               u.login, bk.title
        FROM borrowings b
        JOIN users u ON u.id = b.user_id
        JOIN books bk ON bk.id = b.book_id
        WHERE b.actual_return_date IS NULL AND b.expected_return_date < $1
        ORDER BY b.expected_return_date ASC
    `
	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.OverdueBorrowing
	}{
		{
			name: "Overdue found",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "book_id", "borrow_date", "expected_return_date", "actual_return_date", "login", "title"}).
					AddRow(10, 1, 2, borrowDate, expectedReturn, nil, "reader", "1984")
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(now).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.OverdueBorrowing{
				{
					Borrowing: domain.Borrowing{
						ID:                 10,
						UserID:             1,
						BookID:             2,
						BorrowDate:         borrowDate,
						ExpectedReturnDate: expectedReturn,
					},
					UserLogin: "reader",
					BookTitle: "1984",
				},
			},
		},
		{
			name: "Nothing overdue",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "book_id", "borrow_date", "expected_return_date", "actual_return_date", "login", "title"})
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(now).
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindOverdue(context.Background(), now)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}
