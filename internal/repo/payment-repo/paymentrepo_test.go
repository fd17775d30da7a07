package paymentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/avoropai/library-service/internal/domain"
	"github.com/avoropai/library-service/internal/pg"
	"github.com/jackc/pgx/v5"
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

	query := `
        INSERT INTO payments (borrowing_id, status, type_pay, correlation_id, session_id, session_url, money_to_pay)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	tests := []struct {
		name      string
		payment   *domain.Payment
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Save payment successfully",
			payment: &domain.Payment{
				BorrowingID:   10,
				Status:        domain.PaymentPending,
				Type:          domain.TypePayment,
				CorrelationID: "b5a7a3a0-0000-0000-0000-000000000001",
				MoneyToPay:    5.0,
			},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id"}).AddRow(1)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(10, domain.PaymentPending, domain.TypePayment, "b5a7a3a0-0000-0000-0000-000000000001", "", "", 5.0).
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			payment: &domain.Payment{
				BorrowingID:   10,
				Status:        domain.PaymentPending,
				Type:          domain.TypePayment,
				CorrelationID: "b5a7a3a0-0000-0000-0000-000000000001",
				MoneyToPay:    5.0,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(10, domain.PaymentPending, domain.TypePayment, "b5a7a3a0-0000-0000-0000-000000000001", "", "", 5.0).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Save(context.Background(), tt.payment)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.ID)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := `
        SELECT p.id, p.borrowing_id, p.status, p.type_pay, p.correlation_id, p.session_id, p.session_url, p.money_to_pay
        FROM payments p
        JOIN borrowings b ON b.id = p.borrowing_id
        WHERE p.id = $1 AND ($2::INT IS NULL OR b.user_id = $2)
    `
	tests := []struct {
		name        string
		paymentID   int
		scopeUserID *int
		mockSetup   func()
		expectErr   bool
		result      *domain.Payment
	}{
		{
			name:        "Payment found without scope",
			paymentID:   1,
			scopeUserID: nil,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "borrowing_id", "status", "type_pay", "correlation_id", "session_id", "session_url", "money_to_pay"}).
					AddRow(1, 10, domain.PaymentPending, domain.TypePayment, "corr-1", "sess-1", "https://pay.example/s/sess-1", 5.0)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1, (*int)(nil)).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Payment{
				ID:            1,
				BorrowingID:   10,
				Status:        domain.PaymentPending,
				Type:          domain.TypePayment,
				CorrelationID: "corr-1",
				SessionID:     "sess-1",
				SessionURL:    "https://pay.example/s/sess-1",
				MoneyToPay:    5.0,
			},
		},
		{
			name:        "Foreign payment is invisible",
			paymentID:   1,
			scopeUserID: intPtr(2),
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1, intPtr(2)).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:        "Database error",
			paymentID:   1,
			scopeUserID: nil,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1, (*int)(nil)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.paymentID, tt.scopeUserID)
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

	query := `
        SELECT p.id, p.borrowing_id, p.status, p.type_pay, p.correlation_id, p.session_id, p.session_url, p.money_to_pay
        FROM payments p
        JOIN borrowings b ON b.id = p.borrowing_id
        WHERE ($1::INT IS NULL OR b.user_id = $1)
        ORDER BY p.id ASC
    `
	tests := []struct {
		name        string
		scopeUserID *int
		mockSetup   func()
		expectErr   bool
		result      []domain.Payment
	}{
		{
			name:        "Payments found",
			scopeUserID: intPtr(1),
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "borrowing_id", "status", "type_pay", "correlation_id", "session_id", "session_url", "money_to_pay"}).
					AddRow(1, 10, domain.PaymentPending, domain.TypePayment, "corr-1", "sess-1", "https://pay.example/s/sess-1", 5.0).
					AddRow(2, 10, domain.PaymentPending, domain.TypeFine, "corr-2", "", "", 14.0)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(intPtr(1)).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.Payment{
				{ID: 1, BorrowingID: 10, Status: domain.PaymentPending, Type: domain.TypePayment, CorrelationID: "corr-1", SessionID: "sess-1", SessionURL: "https://pay.example/s/sess-1", MoneyToPay: 5.0},
				{ID: 2, BorrowingID: 10, Status: domain.PaymentPending, Type: domain.TypeFine, CorrelationID: "corr-2", MoneyToPay: 14.0},
			},
		},
		{
			name:        "Database error",
			scopeUserID: nil,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs((*int)(nil)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
		{
			name:        "Scan row error",
			scopeUserID: nil,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "borrowing_id", "status", "type_pay", "correlation_id", "session_id", "session_url", "money_to_pay"}).
					AddRow(1, 10, domain.PaymentPending, domain.TypePayment, "corr-1", "sess-1", "https://pay.example/s/sess-1", "invalid_value")
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs((*int)(nil)).
					WillReturnRows(rows)
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.List(context.Background(), tt.scopeUserID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindPendingWithoutSession(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := `
        SELECT p.id, p.borrowing_id, p.status, p.type_pay, p.correlation_id, p.session_id, p.session_url, p.money_to_pay, bk.title
        FROM payments p
        JOIN borrowings b ON b.id = p.borrowing_id
        JOIN books bk ON bk.id = b.book_id
        WHERE p.status = 'PENDING' AND p.session_id = ''
        ORDER BY p.id ASC
        LIMIT $1
    `
	tests := []struct {
		name      string
		limit     uint32
		mockSetup func()
		expectErr bool
		result    []domain.PendingCheckout
	}{
		{
			name:  "Pending payments found",
			limit: 2,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "borrowing_id", "status", "type_pay", "correlation_id", "session_id", "session_url", "money_to_pay", "title"}).
					AddRow(1, 10, domain.PaymentPending, domain.TypePayment, "corr-1", "", "", 5.0, "1984")
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(2).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.PendingCheckout{
				{
					Payment: domain.Payment{
						ID:            1,
						BorrowingID:   10,
						Status:        domain.PaymentPending,
						Type:          domain.TypePayment,
						CorrelationID: "corr-1",
						MoneyToPay:    5.0,
					},
					BookTitle: "1984",
				},
			},
		},
		{
			name:  "Nothing pending",
			limit: 2,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "borrowing_id", "status", "type_pay", "correlation_id", "session_id", "session_url", "money_to_pay", "title"})
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(2).
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			limit: 2,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(2).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindPendingWithoutSession(context.Background(), tt.limit)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_AttachSession(t *testing.T) {
	repo, mock, tx := NewMock(t)

	query := `
        UPDATE payments
        SET session_id = $1, session_url = $2
        WHERE id = $3
    `
	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Session attached",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(query)).
						WithArgs("sess-1", "https://pay.example/s/sess-1", 1).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					return fn(ctx)
				})
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(query)).
						WithArgs("sess-1", "https://pay.example/s/sess-1", 1).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.AttachSession(context.Background(), 1, "sess-1", "https://pay.example/s/sess-1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_MarkPaidBySession(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := `
        UPDATE payments
        SET status = 'PAID'
        WHERE session_id = $1 AND session_id <> ''
    `
	tests := []struct {
		name      string
		sessionID string
		mockSetup func()
		expectErr bool
		confirmed bool
	}{
		{
			name:      "Payment confirmed",
			sessionID: "sess-1",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs("sess-1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
			confirmed: true,
		},
		{
			name:      "Unknown session",
			sessionID: "missing",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs("missing").
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr: false,
			confirmed: false,
		},
		{
			name:      "Database error",
			sessionID: "sess-1",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs("sess-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			confirmed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			confirmed, err := repo.MarkPaidBySession(context.Background(), tt.sessionID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.confirmed, confirmed)
		})
	}
}
