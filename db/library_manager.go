package db

import (
	"context"
	"errors"

	"restapi/models"
)

// ErrBookNotFound signals that no book exists for the requested id.
var ErrBookNotFound = errors.New("book not found")

type LibraryManager interface {
	Create(ctx context.Context, book *models.Book) (int, error)
	GetById(ctx context.Context, id int) (*models.Book, error)
	GetAll(ctx context.Context) ([]*models.Book, error)
	Update(ctx context.Context, book *models.Book) error
	Delete(ctx context.Context, id int) error
	Search(ctx context.Context, title, author, minPrice, maxPrice string) ([]*models.Book, error)
	Store(ctx context.Context) (*models.StoreSummary, error)
}
