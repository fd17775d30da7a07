package repo

import (
	"github.com/avoropai/library-service/internal/pg"
	bookrepo "github.com/avoropai/library-service/internal/repo/book-repo"
	borrowingrepo "github.com/avoropai/library-service/internal/repo/borrowing-repo"
	paymentrepo "github.com/avoropai/library-service/internal/repo/payment-repo"
	userrepo "github.com/avoropai/library-service/internal/repo/user-repo"
	"github.com/avoropai/library-service/internal/service/authservice"
	"github.com/avoropai/library-service/internal/service/bookservice"
	"github.com/avoropai/library-service/internal/service/borrowingservice"
	"github.com/avoropai/library-service/internal/service/paymentservice"
)

type Repositories struct {
	UserRepo      authservice.Repo
	BookRepo      bookservice.Repo
	BorrowingRepo borrowingservice.Repo
	PaymentRepo   paymentservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	bookRepo := bookrepo.New(conn, txManager)
	borrowingRepo := borrowingrepo.New(conn, txManager)
	paymentRepo := paymentrepo.New(conn, txManager)

	return &Repositories{
		UserRepo:      userRepo,
		BookRepo:      bookRepo,
		BorrowingRepo: borrowingRepo,
		PaymentRepo:   paymentRepo,
	}
}
