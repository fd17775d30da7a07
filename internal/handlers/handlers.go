package handlers

import (
	"net/http"

	_ "github.com/avoropai/library-service/docs"
	authhandlers "github.com/avoropai/library-service/internal/handlers/auth"
	bookhandlers "github.com/avoropai/library-service/internal/handlers/books"
	borrowinghandlers "github.com/avoropai/library-service/internal/handlers/borrowings"
	paymenthandlers "github.com/avoropai/library-service/internal/handlers/payments"
	"github.com/avoropai/library-service/internal/service"
	"github.com/avoropai/library-service/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type BookHandler interface {
	GetBooks(w http.ResponseWriter, r *http.Request)
	GetBook(w http.ResponseWriter, r *http.Request)
}

type BorrowingHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetBorrowings(w http.ResponseWriter, r *http.Request)
	GetBorrowing(w http.ResponseWriter, r *http.Request)
	Return(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	GetPayments(w http.ResponseWriter, r *http.Request)
	GetPayment(w http.ResponseWriter, r *http.Request)
	Success(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	BookHandler      BookHandler
	BorrowingHandler BorrowingHandler
	PaymentHandler   PaymentHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService),
		BookHandler:      bookhandlers.New(s.BookService),
		BorrowingHandler: borrowinghandlers.New(s.BorrowingService),
		PaymentHandler:   paymenthandlers.New(s.PaymentService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		// provider redirects arrive without a token
		r.Get("/payments/success", h.PaymentHandler.Success)
		r.Get("/payments/cancel", h.PaymentHandler.Cancel)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/books", func(r chi.Router) {
				r.Get("/", h.BookHandler.GetBooks)
				r.Get("/{id}", h.BookHandler.GetBook)
			})
			r.Route("/borrowings", func(r chi.Router) {
				r.Post("/", h.BorrowingHandler.Create)
				r.Get("/", h.BorrowingHandler.GetBorrowings)
				r.Get("/{id}", h.BorrowingHandler.GetBorrowing)
				r.Post("/{id}/return", h.BorrowingHandler.Return)
			})
			r.Route("/payments", func(r chi.Router) {
				r.Get("/", h.PaymentHandler.GetPayments)
				r.Get("/{id}", h.PaymentHandler.GetPayment)
			})
		})
	})

	return r
}
