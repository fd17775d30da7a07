package bookservice

import (
	"context"
	"errors"

	"github.com/avoropai/library-service/internal/domain"
	"go.uber.org/zap"
)

var ErrBookNotFound = errors.New("book not found")

type Repo interface {
	FindByID(ctx context.Context, bookID int) (*domain.Book, error)
	List(ctx context.Context) ([]domain.Book, error)
	DecrementInventory(ctx context.Context, bookID int) (bool, error)
	IncrementInventory(ctx context.Context, bookID int) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetBooks(ctx context.Context) ([]domain.Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("failed to get books", zap.Error(err))
		return nil, err
	}
	return books, nil
}

func (s *Service) GetBook(ctx context.Context, bookID int) (*domain.Book, error) {
	book, err := s.repo.FindByID(ctx, bookID)
	if err != nil {
		zap.L().Error("failed to get book", zap.Error(err))
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	return book, nil
}
