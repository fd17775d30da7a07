package bookrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/avoropai/library-service/internal/domain"
	"github.com/avoropai/library-service/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) FindByID(ctx context.Context, bookID int) (*domain.Book, error) {
	query := `
        SELECT id, title, author, cover, inventory, daily_fee
        FROM books
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, bookID)

	var book domain.Book
	err := row.Scan(&book.ID, &book.Title, &book.Author, &book.Cover, &book.Inventory, &book.DailyFee)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find book", zap.Error(err))
		return nil, err
	}
	return &book, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Book, error) {
	query := `
        SELECT id, title, author, cover, inventory, daily_fee
        FROM books
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get books", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		var book domain.Book
		err := rows.Scan(&book.ID, &book.Title, &book.Author, &book.Cover, &book.Inventory, &book.DailyFee)
		if err != nil {
			zap.L().Error("can't scan book row", zap.Error(err))
			return nil, err
		}
		books = append(books, book)
	}
	return books, nil
}

// DecrementInventory takes one copy off the shelf. The condition keeps
// the counter from going below zero under concurrent borrows; the
// returned flag reports whether a copy was actually taken.
func (r *Repository) DecrementInventory(ctx context.Context, bookID int) (bool, error) {
	query := `
        UPDATE books
        SET inventory = inventory - 1
        WHERE id = $1 AND inventory > 0
    `
	tag, err := r.db.Exec(ctx, query, bookID)
	if err != nil {
		zap.L().Error("can't decrement book inventory", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) IncrementInventory(ctx context.Context, bookID int) error {
	query := `
        UPDATE books
        SET inventory = inventory + 1
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, bookID)
	if err != nil {
		zap.L().Error("can't increment book inventory", zap.Error(err))
		return err
	}
	return nil
}
