package borrowings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/avoropai/library-service/internal/domain"
	"github.com/avoropai/library-service/internal/dto"
	borrowingservice "github.com/avoropai/library-service/internal/service/borrowingservice"
	"github.com/avoropai/library-service/pkg/auth"
	"github.com/avoropai/library-service/pkg/utils"
)

const dateLayout = "2006-01-02"

type Service interface {
	Borrow(ctx context.Context, userID, bookID int, expectedReturnDate time.Time) (*domain.Borrowing, error)
	Return(ctx context.Context, actor domain.Actor, borrowingID int) (*domain.Borrowing, error)
	GetBorrowings(ctx context.Context, actor domain.Actor, filter borrowingservice.ListFilter) ([]domain.Borrowing, error)
	GetBorrowing(ctx context.Context, actor domain.Actor, borrowingID int) (*domain.Borrowing, error)
}

type BorrowingHandler struct {
	borrowingService Service
}

func New(borrowingService Service) *BorrowingHandler {
	return &BorrowingHandler{
		borrowingService: borrowingService,
	}
}

// Create godoc
//
//	@Summary		Borrow a book
//	@Description	Take one copy of a book until the expected return date. A pending payment for the rental fee is created alongside.
//	@Tags			Borrowings
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateBorrowingRequestDTO	true	"Borrow request body"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.GetBorrowingResponseDTO
//	@Failure		400	{object}	utils.Response	"Bad request or invalid expected return date"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Book not found"
//	@Failure		409	{object}	utils.Response	"Book unavailable or active borrowing exists"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/borrowings [post]
func (h *BorrowingHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r)

	var req dto.CreateBorrowingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	expectedReturnDate, err := time.Parse(dateLayout, req.ExpectedReturnDate)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid expected return date")
		return
	}

	borrowing, err := h.borrowingService.Borrow(r.Context(), actor.ID, req.BookID, expectedReturnDate)
	if err != nil {
		switch {
		case errors.Is(err, borrowingservice.ErrInvalidReturnDate):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, borrowingservice.ErrBookNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, borrowingservice.ErrBookUnavailable),
			errors.Is(err, borrowingservice.ErrActiveBorrowingExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toBorrowingDTO(borrowing))
}

// GetBorrowings godoc
//
//	@Summary		List borrowings
//	@Description	Staff see every borrowing and may filter by user_id and is_active; everyone else sees only their own.
//	@Tags			Borrowings
//	@Produce		json
//	@Param			user_id		query	int		false	"Filter by user id (staff only)"
//	@Param			is_active	query	bool	false	"Only unreturned borrowings (staff only)"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.GetBorrowingResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/borrowings [get]
func (h *BorrowingHandler) GetBorrowings(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r)

	var filter borrowingservice.ListFilter
	if param := r.URL.Query().Get("user_id"); param != "" {
		userID, err := strconv.Atoi(param)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid user_id")
			return
		}
		filter.UserID = &userID
	}
	if param := r.URL.Query().Get("is_active"); param != "" {
		filter.ActiveOnly = strings.EqualFold(param, "true")
	}

	borrowings, err := h.borrowingService.GetBorrowings(r.Context(), actor, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.GetBorrowingResponseDTO, 0, len(borrowings))
	for _, borrowing := range borrowings {
		response = append(response, toBorrowingDTO(&borrowing))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetBorrowing godoc
//
//	@Summary		Get borrowing details
//	@Tags			Borrowings
//	@Produce		json
//	@Param			id	path	int	true	"Borrowing id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.GetBorrowingResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid borrowing id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Borrowing not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/borrowings/{id} [get]
func (h *BorrowingHandler) GetBorrowing(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r)

	borrowingID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid borrowing id")
		return
	}

	borrowing, err := h.borrowingService.GetBorrowing(r.Context(), actor, borrowingID)
	if err != nil {
		if errors.Is(err, borrowingservice.ErrBorrowingNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBorrowingDTO(borrowing))
}

// Return godoc
//
//	@Summary		Return a borrowed book
//	@Description	Close the borrowing as of today. A late return creates a pending fine payment.
//	@Tags			Borrowings
//	@Produce		json
//	@Param			id	path	int	true	"Borrowing id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.GetBorrowingResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid borrowing id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Borrowing not found"
//	@Failure		409	{object}	utils.Response	"Borrowing already returned"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/borrowings/{id}/return [post]
func (h *BorrowingHandler) Return(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r)

	borrowingID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid borrowing id")
		return
	}

	borrowing, err := h.borrowingService.Return(r.Context(), actor, borrowingID)
	if err != nil {
		switch {
		case errors.Is(err, borrowingservice.ErrBorrowingNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, borrowingservice.ErrAlreadyReturned):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBorrowingDTO(borrowing))
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

func toBorrowingDTO(borrowing *domain.Borrowing) dto.GetBorrowingResponseDTO {
	resp := dto.GetBorrowingResponseDTO{
		ID:                 borrowing.ID,
		UserID:             borrowing.UserID,
		BookID:             borrowing.BookID,
		BorrowDate:         borrowing.BorrowDate.Format(dateLayout),
		ExpectedReturnDate: borrowing.ExpectedReturnDate.Format(dateLayout),
	}
	if borrowing.ActualReturnDate != nil {
		returned := borrowing.ActualReturnDate.Format(dateLayout)
		resp.ActualReturnDate = &returned
	}
	return resp
}
