package service

import (
	"github.com/avoropai/library-service/internal/handlers/auth"
	"github.com/avoropai/library-service/internal/handlers/books"
	"github.com/avoropai/library-service/internal/handlers/borrowings"
	"github.com/avoropai/library-service/internal/handlers/payments"

	pkgauth "github.com/avoropai/library-service/pkg/auth"

	"github.com/avoropai/library-service/internal/pg"
	"github.com/avoropai/library-service/internal/repo"
	authservice "github.com/avoropai/library-service/internal/service/authservice"
	bookservice "github.com/avoropai/library-service/internal/service/bookservice"
	borrowingservice "github.com/avoropai/library-service/internal/service/borrowingservice"
	paymentservice "github.com/avoropai/library-service/internal/service/paymentservice"
)

type Services struct {
	AuthService      auth.Service
	BookService      books.Service
	BorrowingService borrowings.Service
	PaymentService   payments.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, sessions borrowingservice.SessionCreator, notifier borrowingservice.Notifier) *Services {
	bookService := bookservice.New(repo.BookRepo)
	paymentService := paymentservice.New(repo.PaymentRepo)
	borrowingService := borrowingservice.New(repo.BorrowingRepo, repo.BookRepo, repo.PaymentRepo, txManager, sessions, notifier)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:      authService,
		BookService:      bookService,
		BorrowingService: borrowingService,
		PaymentService:   paymentService,
	}
}
