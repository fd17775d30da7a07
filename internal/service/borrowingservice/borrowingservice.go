package borrowingservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avoropai/library-service/internal/domain"
	"github.com/avoropai/library-service/internal/pg"
	borrowingrepo "github.com/avoropai/library-service/internal/repo/borrowing-repo"
	"github.com/avoropai/library-service/internal/service/bookservice"
	"github.com/avoropai/library-service/internal/service/paymentservice"
)

// FineMultiplier scales the daily fee for late returns.
const FineMultiplier = 2

var (
	ErrBookNotFound          = errors.New("book not found")
	ErrBookUnavailable       = errors.New("this book is currently unavailable, please try another time")
	ErrActiveBorrowingExists = errors.New("you already have one copy of this book, you cannot borrow another one")
	ErrInvalidReturnDate     = errors.New("expected return date must be after borrow date")
	ErrBorrowingNotFound     = errors.New("borrowing not found")
	ErrAlreadyReturned       = errors.New("borrowing has already been returned")
)

type Repo interface {
	Save(ctx context.Context, borrowing *domain.Borrowing) (*domain.Borrowing, error)
	FindByID(ctx context.Context, borrowingID int, scopeUserID *int) (*domain.Borrowing, error)
	List(ctx context.Context, filter borrowingrepo.Filter) ([]domain.Borrowing, error)
	MarkReturned(ctx context.Context, borrowingID int, returnedAt time.Time) (bool, error)
	FindOverdue(ctx context.Context, now time.Time) ([]domain.OverdueBorrowing, error)
}

// SessionCreator obtains a provider checkout session for a stored
// payment and attaches it. Called after the owning transaction has
// committed; failures are retried by the checkout reconciler.
type SessionCreator interface {
	CreateForPayment(ctx context.Context, payment *domain.Payment, description string) error
}

// Notifier delivers operator-channel messages best-effort.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// ListFilter carries the staff-only query filters.
type ListFilter struct {
	UserID     *int
	ActiveOnly bool
}

type Service struct {
	repo        Repo
	bookRepo    bookservice.Repo
	paymentRepo paymentservice.Repo
	txManager   pg.TXManager
	sessions    SessionCreator
	notifier    Notifier
}

func New(repo Repo, bookRepo bookservice.Repo, paymentRepo paymentservice.Repo, txManager pg.TXManager, sessions SessionCreator, notifier Notifier) *Service {
	return &Service{
		repo:        repo,
		bookRepo:    bookRepo,
		paymentRepo: paymentRepo,
		txManager:   txManager,
		sessions:    sessions,
		notifier:    notifier,
	}
}

// Borrow creates a borrowing for today. Inventory decrement, borrowing
// insert and the PENDING payment insert are one transaction; the
// provider session is created only after it commits, so a gateway
// outage never loses the borrowing.
func (s *Service) Borrow(ctx context.Context, userID, bookID int, expectedReturnDate time.Time) (*domain.Borrowing, error) {
	borrowDate := dateOnly(time.Now())
	expectedReturnDate = dateOnly(expectedReturnDate)
	if !expectedReturnDate.After(borrowDate) {
		return nil, ErrInvalidReturnDate
	}

	book, err := s.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	if book.Inventory == 0 {
		zap.L().Info("book unavailable", zap.Int("book_id", bookID))
		return nil, ErrBookUnavailable
	}

	borrowing := &domain.Borrowing{
		UserID:             userID,
		BookID:             bookID,
		BorrowDate:         borrowDate,
		ExpectedReturnDate: expectedReturnDate,
	}
	payment := &domain.Payment{
		Status:        domain.PaymentPending,
		Type:          domain.TypePayment,
		CorrelationID: uuid.NewString(),
		MoneyToPay:    charge(book.DailyFee, daysBetween(borrowDate, expectedReturnDate), 1),
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		taken, err := s.bookRepo.DecrementInventory(ctx, bookID)
		if err != nil {
			return err
		}
		if !taken {
			return ErrBookUnavailable
		}
		if _, err := s.repo.Save(ctx, borrowing); err != nil {
			if errors.Is(err, borrowingrepo.ErrDuplicateActive) {
				return ErrActiveBorrowingExists
			}
			return err
		}
		payment.BorrowingID = borrowing.ID
		_, err = s.paymentRepo.Save(ctx, payment)
		return err
	})
	if err != nil {
		return nil, err
	}

	description := fmt.Sprintf("Borrowing book: '%s'", book.Title)
	if err := s.sessions.CreateForPayment(ctx, payment, description); err != nil {
		zap.L().Warn("can't create checkout session, leaving for reconciler",
			zap.Int("payment_id", payment.ID), zap.Error(err))
	}

	s.notify(fmt.Sprintf(
		"** New borrowing! **\nborrowing_id = %d, user_id = %d \nBOOK: %s \nexpected return date: %s \n",
		borrowing.ID, userID, book.Title, expectedReturnDate.Format("2006-01-02"),
	))

	zap.L().Info("borrowing created",
		zap.Int("borrowing_id", borrowing.ID),
		zap.Int("user_id", userID),
		zap.Int("book_id", bookID))
	return borrowing, nil
}

// Return closes the borrowing as of today. The date set, the inventory
// increment and a possible FINE payment insert are one transaction;
// the fine session follows the same commit-then-create policy as
// Borrow.
func (s *Service) Return(ctx context.Context, actor domain.Actor, borrowingID int) (*domain.Borrowing, error) {
	borrowing, err := s.repo.FindByID(ctx, borrowingID, actor.Scope())
	if err != nil {
		return nil, err
	}
	if borrowing == nil {
		return nil, ErrBorrowingNotFound
	}
	if !borrowing.Active() {
		return nil, ErrAlreadyReturned
	}

	book, err := s.bookRepo.FindByID(ctx, borrowing.BookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}

	returnDate := dateOnly(time.Now())
	var fine *domain.Payment

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		returned, err := s.repo.MarkReturned(ctx, borrowingID, returnDate)
		if err != nil {
			return err
		}
		if !returned {
			return ErrAlreadyReturned
		}
		if err := s.bookRepo.IncrementInventory(ctx, borrowing.BookID); err != nil {
			return err
		}
		if returnDate.After(borrowing.ExpectedReturnDate) {
			fine = &domain.Payment{
				BorrowingID:   borrowingID,
				Status:        domain.PaymentPending,
				Type:          domain.TypeFine,
				CorrelationID: uuid.NewString(),
				MoneyToPay:    charge(book.DailyFee, daysBetween(borrowing.BorrowDate, returnDate), FineMultiplier),
			}
			if _, err := s.paymentRepo.Save(ctx, fine); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if fine != nil {
		description := fmt.Sprintf("Fine for borrowing book: '%s'", book.Title)
		if err := s.sessions.CreateForPayment(ctx, fine, description); err != nil {
			zap.L().Warn("can't create fine checkout session, leaving for reconciler",
				zap.Int("payment_id", fine.ID), zap.Error(err))
		}
	}

	borrowing.ActualReturnDate = &returnDate
	zap.L().Info("borrowing returned",
		zap.Int("borrowing_id", borrowingID),
		zap.Bool("fined", fine != nil))
	return borrowing, nil
}

func (s *Service) GetBorrowings(ctx context.Context, actor domain.Actor, filter ListFilter) ([]domain.Borrowing, error) {
	repoFilter := borrowingrepo.Filter{
		UserID:     filter.UserID,
		ActiveOnly: filter.ActiveOnly,
	}
	if !actor.IsStaff {
		repoFilter = borrowingrepo.Filter{UserID: actor.Scope()}
	}

	borrowings, err := s.repo.List(ctx, repoFilter)
	if err != nil {
		zap.L().Error("failed to get borrowings", zap.Error(err))
		return nil, err
	}
	return borrowings, nil
}

func (s *Service) GetBorrowing(ctx context.Context, actor domain.Actor, borrowingID int) (*domain.Borrowing, error) {
	borrowing, err := s.repo.FindByID(ctx, borrowingID, actor.Scope())
	if err != nil {
		zap.L().Error("failed to get borrowing", zap.Error(err))
		return nil, err
	}
	if borrowing == nil {
		return nil, ErrBorrowingNotFound
	}
	return borrowing, nil
}

// notify sends the operator message off the request path. Delivery
// failure never affects the committed borrowing.
func (s *Service) notify(text string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.notifier.Notify(ctx, text); err != nil {
			zap.L().Warn("can't deliver borrowing notification", zap.Error(err))
		}
	}()
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func charge(dailyFee float64, days, multiplier int) float64 {
	return math.Round(dailyFee*float64(days)*float64(multiplier)*100) / 100
}
