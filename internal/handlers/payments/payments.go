package payments

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avoropai/library-service/internal/domain"
	"github.com/avoropai/library-service/internal/dto"
	"github.com/avoropai/library-service/internal/service/paymentservice"
	"github.com/avoropai/library-service/pkg/auth"
	"github.com/avoropai/library-service/pkg/utils"
)

type Service interface {
	GetPayments(ctx context.Context, actor domain.Actor) ([]domain.Payment, error)
	GetPayment(ctx context.Context, actor domain.Actor, paymentID int) (*domain.Payment, error)
	ConfirmBySession(ctx context.Context, sessionID string) error
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// GetPayments godoc
//
//	@Summary		List payments
//	@Description	Staff see every payment; everyone else sees payments of their own borrowings.
//	@Tags			Payments
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.GetPaymentResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments [get]
func (h *PaymentHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r)

	payments, err := h.paymentService.GetPayments(r.Context(), actor)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.GetPaymentResponseDTO, 0, len(payments))
	for _, payment := range payments {
		response = append(response, toPaymentDTO(&payment))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetPayment godoc
//
//	@Summary		Get payment details
//	@Tags			Payments
//	@Produce		json
//	@Param			id	path	int	true	"Payment id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.GetPaymentResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid payment id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Payment not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/{id} [get]
func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r)

	paymentID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment id")
		return
	}

	payment, err := h.paymentService.GetPayment(r.Context(), actor, paymentID)
	if err != nil {
		if errors.Is(err, paymentservice.ErrPaymentNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPaymentDTO(payment))
}

// Success godoc
//
//	@Summary		Payment success callback
//	@Description	Provider success redirect. Marks the payment identified by session_id as PAID; repeated calls are no-ops.
//	@Tags			Payments
//	@Produce		json
//	@Param			session_id	query	string	true	"Provider session id"
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Missing session id"
//	@Failure		404	{object}	utils.Response	"Payment session not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/success [get]
func (h *PaymentHandler) Success(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Payment session not found.")
		return
	}

	err := h.paymentService.ConfirmBySession(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, paymentservice.ErrPaymentNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Payment session not found.")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Payment successful"})
}

// Cancel godoc
//
//	@Summary		Payment cancel callback
//	@Tags			Payments
//	@Produce		json
//	@Success		200	{object}	utils.Response
//	@Router			/api/payments/cancel [get]
func (h *PaymentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Payment canceled"})
}

func actorFromContext(r *http.Request) domain.Actor {
	actor := domain.Actor{}
	if userID, ok := r.Context().Value(auth.UserIDKey).(int); ok {
		actor.ID = userID
	}
	if isStaff, ok := r.Context().Value(auth.IsStaffKey).(bool); ok {
		actor.IsStaff = isStaff
	}
	return actor
}

func toPaymentDTO(payment *domain.Payment) dto.GetPaymentResponseDTO {
	return dto.GetPaymentResponseDTO{
		ID:          payment.ID,
		BorrowingID: payment.BorrowingID,
		Status:      string(payment.Status),
		Type:        string(payment.Type),
		SessionID:   payment.SessionID,
		SessionURL:  payment.SessionURL,
		MoneyToPay:  payment.MoneyToPay,
	}
}
