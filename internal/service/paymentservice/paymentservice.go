package paymentservice

import (
	"context"
	"errors"

	"github.com/avoropai/library-service/internal/domain"
	"go.uber.org/zap"
)

var ErrPaymentNotFound = errors.New("payment not found")

type Repo interface {
	Save(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	FindByID(ctx context.Context, paymentID int, scopeUserID *int) (*domain.Payment, error)
	List(ctx context.Context, scopeUserID *int) ([]domain.Payment, error)
	FindPendingWithoutSession(ctx context.Context, limit uint32) ([]domain.PendingCheckout, error)
	AttachSession(ctx context.Context, paymentID int, sessionID, sessionURL string) error
	MarkPaidBySession(ctx context.Context, sessionID string) (bool, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetPayments(ctx context.Context, actor domain.Actor) ([]domain.Payment, error) {
	payments, err := s.repo.List(ctx, actor.Scope())
	if err != nil {
		zap.L().Error("failed to get payments", zap.Error(err))
		return nil, err
	}
	return payments, nil
}

func (s *Service) GetPayment(ctx context.Context, actor domain.Actor, paymentID int) (*domain.Payment, error) {
	payment, err := s.repo.FindByID(ctx, paymentID, actor.Scope())
	if err != nil {
		zap.L().Error("failed to get payment", zap.Error(err))
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	return payment, nil
}

// ConfirmBySession flips the payment identified by the provider session
// to PAID. Safe to call any number of times for the same session.
func (s *Service) ConfirmBySession(ctx context.Context, sessionID string) error {
	ok, err := s.repo.MarkPaidBySession(ctx, sessionID)
	if err != nil {
		zap.L().Error("failed to confirm payment", zap.Error(err))
		return err
	}
	if !ok {
		return ErrPaymentNotFound
	}
	zap.L().Info("payment confirmed", zap.String("session_id", sessionID))
	return nil
}
