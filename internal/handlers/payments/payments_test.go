package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/avoropai/library-service/internal/domain"
	"github.com/avoropai/library-service/internal/dto"
	"github.com/avoropai/library-service/internal/service/paymentservice"
	"github.com/avoropai/library-service/pkg/auth"
	"github.com/avoropai/library-service/pkg/utils"
)

func NewMock(t *testing.T) (*PaymentHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withActor(r *http.Request, userID int, isStaff bool) *http.Request {
	ctx := context.WithValue(r.Context(), auth.UserIDKey, userID)
	ctx = context.WithValue(ctx, auth.IsStaffKey, isStaff)
	return r.WithContext(ctx)
}

func TestGetPaymentsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody []dto.GetPaymentResponseDTO
	}{
		{
			name: "Successfully retrieves payments",
			prepareMock: func() {
				service.EXPECT().GetPayments(gomock.Any(), domain.Actor{ID: 1}).Return([]domain.Payment{
					{ID: 1, BorrowingID: 10, Status: domain.PaymentPending, Type: domain.TypePayment, SessionID: "sess-1", SessionURL: "https://pay.example/s/sess-1", MoneyToPay: 5.0},
					{ID: 2, BorrowingID: 11, Status: domain.PaymentPaid, Type: domain.TypeFine, MoneyToPay: 14.0},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.GetPaymentResponseDTO{
				{ID: 1, BorrowingID: 10, Status: "PENDING", Type: "PAYMENT", SessionID: "sess-1", SessionURL: "https://pay.example/s/sess-1", MoneyToPay: 5.0},
				{ID: 2, BorrowingID: 11, Status: "PAID", Type: "FINE", MoneyToPay: 14.0},
			},
		},
		{
			name: "No payments",
			prepareMock: func() {
				service.EXPECT().GetPayments(gomock.Any(), domain.Actor{ID: 1}).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.GetPaymentResponseDTO{},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetPayments(gomock.Any(), domain.Actor{ID: 1}).Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/payments", nil)
			req = withActor(req, 1, false)
			rr := httptest.NewRecorder()

			handler.GetPayments(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedBody != nil {
				var body []dto.GetPaymentResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&body)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestGetPaymentHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		paymentID     string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:      "Successfully retrieves a payment",
			paymentID: "1",
			prepareMock: func() {
				service.EXPECT().
					GetPayment(gomock.Any(), domain.Actor{ID: 1}, 1).
					Return(&domain.Payment{ID: 1, BorrowingID: 10, Status: domain.PaymentPending, Type: domain.TypePayment, MoneyToPay: 5.0}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid payment id",
			paymentID:     "abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid payment id",
		},
		{
			name:      "Payment not found",
			paymentID: "42",
			prepareMock: func() {
				service.EXPECT().
					GetPayment(gomock.Any(), domain.Actor{ID: 1}, 42).
					Return(nil, paymentservice.ErrPaymentNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "payment not found",
		},
		{
			name:      "Internal server error",
			paymentID: "1",
			prepareMock: func() {
				service.EXPECT().
					GetPayment(gomock.Any(), domain.Actor{ID: 1}, 1).
					Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/payments/"+tt.paymentID, nil)
			req = withActor(req, 1, false)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.paymentID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			rr := httptest.NewRecorder()

			handler.GetPayment(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestSuccessHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name            string
		query           string
		prepareMock     func()
		expectedCode    int
		expectedMessage string
	}{
		{
			name:  "Payment confirmed",
			query: "?session_id=sess-1",
			prepareMock: func() {
				service.EXPECT().ConfirmBySession(gomock.Any(), "sess-1").Return(nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Payment successful",
		},
		{
			name:            "Missing session id",
			query:           "",
			prepareMock:     func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Payment session not found.",
		},
		{
			name:  "Unknown session",
			query: "?session_id=unknown",
			prepareMock: func() {
				service.EXPECT().ConfirmBySession(gomock.Any(), "unknown").Return(paymentservice.ErrPaymentNotFound)
			},
			expectedCode:    http.StatusNotFound,
			expectedMessage: "Payment session not found.",
		},
		{
			name:  "Internal server error",
			query: "?session_id=sess-1",
			prepareMock: func() {
				service.EXPECT().ConfirmBySession(gomock.Any(), "sess-1").Return(errors.New("database error"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/payments/success"+tt.query, nil)
			rr := httptest.NewRecorder()

			handler.Success(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp utils.Response
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMessage, resp.Message)
		})
	}
}

func TestCancelHandler(t *testing.T) {
	handler, _ := NewMock(t)

	req := httptest.NewRequest("GET", "/api/payments/cancel", nil)
	rr := httptest.NewRecorder()

	handler.Cancel(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp utils.Response
	err := json.NewDecoder(rr.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, "Payment canceled", resp.Message)
}
