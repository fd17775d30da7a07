package books

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avoropai/library-service/internal/domain"
	"github.com/avoropai/library-service/internal/dto"
	"github.com/avoropai/library-service/internal/service/bookservice"
	"github.com/avoropai/library-service/pkg/utils"
)

type Service interface {
	GetBooks(ctx context.Context) ([]domain.Book, error)
	GetBook(ctx context.Context, bookID int) (*domain.Book, error)
}

type BookHandler struct {
	bookService Service
}

func New(bookService Service) *BookHandler {
	return &BookHandler{
		bookService: bookService,
	}
}

// GetBooks godoc
//
//	@Summary		List books
//	@Description	Retrieve the book catalog with current inventory
//	@Tags			Books
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.GetBookResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/books [get]
func (h *BookHandler) GetBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookService.GetBooks(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.GetBookResponseDTO, 0, len(books))
	for _, book := range books {
		response = append(response, toBookDTO(&book))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetBook godoc
//
//	@Summary		Get book details
//	@Tags			Books
//	@Produce		json
//	@Param			id	path	int	true	"Book id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.GetBookResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid book id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Book not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/books/{id} [get]
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	bookID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid book id")
		return
	}

	book, err := h.bookService.GetBook(r.Context(), bookID)
	if err != nil {
		if errors.Is(err, bookservice.ErrBookNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBookDTO(book))
}

func toBookDTO(book *domain.Book) dto.GetBookResponseDTO {
	return dto.GetBookResponseDTO{
		ID:        book.ID,
		Title:     book.Title,
		Author:    book.Author,
		Cover:     string(book.Cover),
		Inventory: book.Inventory,
		DailyFee:  book.DailyFee,
	}
}
