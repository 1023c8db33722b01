package db

import (
	"context"
	"database/sql"
	"fmt"

	"restapi/models"
)

const createBooksTable = `
CREATE TABLE IF NOT EXISTS books (
	id BIGSERIAL PRIMARY KEY,
	title TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	isbn TEXT NOT NULL DEFAULT '',
	publisher TEXT NOT NULL DEFAULT '',
	language TEXT NOT NULL DEFAULT '',
	author TEXT NOT NULL DEFAULT '',
	price DOUBLE PRECISION NOT NULL DEFAULT 0,
	pages INTEGER NOT NULL DEFAULT 0
)`

const bookColumns = "id, title, description, isbn, publisher, language, author, price, pages"

// PostgresLibraryManager stores books in a single table. The BIGSERIAL key
// keeps ids monotonic and never reused after a delete.
type PostgresLibraryManager struct {
	DB *sql.DB
}

func CreatePostgresLibrary(database *sql.DB) (*PostgresLibraryManager, error) {
	if _, err := database.Exec(createBooksTable); err != nil {
		return nil, err
	}
	return &PostgresLibraryManager{DB: database}, nil
}

func (library *PostgresLibraryManager) Create(ctx context.Context, book *models.Book) (int, error) {
	err := library.DB.QueryRowContext(ctx,
		`INSERT INTO books (title, description, isbn, publisher, language, author, price, pages)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		book.Title, book.Description, book.Isbn, book.Publisher,
		book.Language, book.Author, float64(book.Price), int(book.Pages),
	).Scan(&book.ID)

	return book.ID, err
}

func (library *PostgresLibraryManager) GetById(ctx context.Context, id int) (*models.Book, error) {
	row := library.DB.QueryRowContext(ctx,
		"SELECT "+bookColumns+" FROM books WHERE id = $1", id)

	book, err := scanBook(row)
	if err == sql.ErrNoRows {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}
	return book, nil
}

func (library *PostgresLibraryManager) GetAll(ctx context.Context) ([]*models.Book, error) {
	rows, err := library.DB.QueryContext(ctx,
		"SELECT "+bookColumns+" FROM books ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBooks(rows)
}

func (library *PostgresLibraryManager) Update(ctx context.Context, book *models.Book) error {
	result, err := library.DB.ExecContext(ctx,
		`UPDATE books SET title = $1, description = $2, isbn = $3, publisher = $4,
		 language = $5, author = $6, price = $7, pages = $8 WHERE id = $9`,
		book.Title, book.Description, book.Isbn, book.Publisher,
		book.Language, book.Author, float64(book.Price), int(book.Pages), book.ID)
	if err != nil {
		return err
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if updated == 0 {
		return ErrBookNotFound
	}
	return nil
}

func (library *PostgresLibraryManager) Delete(ctx context.Context, id int) error {
	result, err := library.DB.ExecContext(ctx, "DELETE FROM books WHERE id = $1", id)
	if err != nil {
		return err
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrBookNotFound
	}
	return nil
}

func (library *PostgresLibraryManager) Search(ctx context.Context, title, author, minPrice, maxPrice string) ([]*models.Book, error) {
	bounds, err := parsePriceBounds(minPrice, maxPrice)
	if err != nil {
		return nil, err
	}

	query := "SELECT " + bookColumns + " FROM books WHERE TRUE"
	args := make([]interface{}, 0, 4)

	if title != "" {
		args = append(args, title)
		query += fmt.Sprintf(" AND title = $%d", len(args))
	}
	if author != "" {
		args = append(args, "%"+author+"%")
		query += fmt.Sprintf(" AND author ILIKE $%d", len(args))
	}
	if bounds.hasMin {
		args = append(args, bounds.min)
		query += fmt.Sprintf(" AND price >= $%d", len(args))
	}
	if bounds.hasMax {
		args = append(args, bounds.max)
		query += fmt.Sprintf(" AND price <= $%d", len(args))
	}
	query += " ORDER BY id"

	rows, err := library.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBooks(rows)
}

func (library *PostgresLibraryManager) Store(ctx context.Context) (*models.StoreSummary, error) {
	summary := &models.StoreSummary{}
	err := library.DB.QueryRowContext(ctx,
		"SELECT COUNT(*), COUNT(DISTINCT author) FROM books",
	).Scan(&summary.NumberOfBooks, &summary.NumberOfAuthors)
	if err != nil {
		return nil, err
	}
	return summary, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBook(row rowScanner) (*models.Book, error) {
	book := &models.Book{}
	var price float64
	var pages int
	err := row.Scan(&book.ID, &book.Title, &book.Description, &book.Isbn,
		&book.Publisher, &book.Language, &book.Author, &price, &pages)
	if err != nil {
		return nil, err
	}
	book.Price = models.Price(price)
	book.Pages = models.Pages(pages)
	return book, nil
}

func scanBooks(rows *sql.Rows) ([]*models.Book, error) {
	books := make([]*models.Book, 0)
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}
