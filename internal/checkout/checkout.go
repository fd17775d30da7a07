package checkout

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/avoropai/library-service/internal/config"
	"github.com/avoropai/library-service/internal/domain"
	"github.com/avoropai/library-service/internal/service/paymentservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var processingPayments sync.Map

// Service attaches provider sessions to payments. It serves the
// request path through CreateForPayment and sweeps up payments whose
// session creation failed, so a committed borrowing never stays
// without a payable session for long.
type Service struct {
	gateway        Gateway
	paymentRepo    paymentservice.Repo
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, paymentRepo paymentservice.Repo, gateway Gateway) *Service {
	return &Service{
		gateway:        gateway,
		paymentRepo:    paymentRepo,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 30,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Checkout reconciler started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping checkout reconciler")
			return
		case <-ticker.C:
			s.processPending(ctx)
		}
	}
}

func (s *Service) processPending(ctx context.Context) {
	pending, err := s.paymentRepo.FindPendingWithoutSession(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch payments for session creation", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, payment := range pending {
		payment := payment

		if _, loaded := processingPayments.LoadOrStore(payment.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingPayments.Delete(payment.ID)
				return s.handlePayment(ctx, payment)
			})
			if err != nil {
				processingPayments.Delete(payment.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error creating checkout sessions", zap.Error(err))
	}
}

func (s *Service) handlePayment(ctx context.Context, pending domain.PendingCheckout) error {
	description := descriptionFor(pending.Type, pending.BookTitle)

	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			err = s.CreateForPayment(ctx, &pending.Payment, description)
			if err == nil {
				return nil
			}
			if attempt < maxRetries {
				time.Sleep(retryInterval * time.Duration(attempt))
			}
		}
	}
	return fmt.Errorf("failed to create session for payment %d after %d retries: %w", pending.ID, maxRetries, err)
}

// CreateForPayment obtains a session from the provider and stores it
// on the payment.
func (s *Service) CreateForPayment(ctx context.Context, payment *domain.Payment, description string) error {
	session, err := s.gateway.CreateSession(ctx, SessionRequest{
		AmountMinor:   minorUnits(payment.MoneyToPay),
		Description:   description,
		CorrelationID: payment.CorrelationID,
	})
	if err != nil {
		return err
	}

	if err := s.paymentRepo.AttachSession(ctx, payment.ID, session.ID, session.URL); err != nil {
		return fmt.Errorf("failed to attach session to payment %d: %w", payment.ID, err)
	}

	payment.SessionID = session.ID
	payment.SessionURL = session.URL
	zap.L().Info("checkout session attached",
		zap.Int("payment_id", payment.ID),
		zap.String("session_id", session.ID))
	return nil
}

func minorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func descriptionFor(paymentType domain.PaymentType, bookTitle string) string {
	if paymentType == domain.TypeFine {
		return fmt.Sprintf("Fine for borrowing book: '%s'", bookTitle)
	}
	return fmt.Sprintf("Borrowing book: '%s'", bookTitle)
}
