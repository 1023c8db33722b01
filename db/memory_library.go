package db

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"restapi/models"
)

// MemoryLibraryManager keeps books in process memory. Ids grow monotonically
// and are never handed out twice, even after a delete.
type MemoryLibraryManager struct {
	mu     sync.RWMutex
	books  map[int]models.Book
	nextID int
}

func CreateMemoryLibrary() *MemoryLibraryManager {
	return &MemoryLibraryManager{books: make(map[int]models.Book)}
}

func (library *MemoryLibraryManager) Create(_ context.Context, book *models.Book) (int, error) {
	library.mu.Lock()
	defer library.mu.Unlock()

	library.nextID++
	book.ID = library.nextID
	library.books[book.ID] = *book

	return book.ID, nil
}

func (library *MemoryLibraryManager) GetById(_ context.Context, id int) (*models.Book, error) {
	library.mu.RLock()
	defer library.mu.RUnlock()

	book, ok := library.books[id]
	if !ok {
		return nil, ErrBookNotFound
	}
	return &book, nil
}

func (library *MemoryLibraryManager) GetAll(_ context.Context) ([]*models.Book, error) {
	library.mu.RLock()
	defer library.mu.RUnlock()

	books := make([]*models.Book, 0, len(library.books))
	for id := range library.books {
		book := library.books[id]
		books = append(books, &book)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })

	return books, nil
}

func (library *MemoryLibraryManager) Update(_ context.Context, book *models.Book) error {
	library.mu.Lock()
	defer library.mu.Unlock()

	if _, ok := library.books[book.ID]; !ok {
		return ErrBookNotFound
	}
	library.books[book.ID] = *book

	return nil
}

func (library *MemoryLibraryManager) Delete(_ context.Context, id int) error {
	library.mu.Lock()
	defer library.mu.Unlock()

	if _, ok := library.books[id]; !ok {
		return ErrBookNotFound
	}
	delete(library.books, id)

	return nil
}

func (library *MemoryLibraryManager) Search(ctx context.Context, title, author, minPrice, maxPrice string) ([]*models.Book, error) {
	bounds, err := parsePriceBounds(minPrice, maxPrice)
	if err != nil {
		return nil, err
	}

	all, err := library.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	books := make([]*models.Book, 0)
	for _, book := range all {
		if title != "" && book.Title != title {
			continue
		}
		if author != "" && !strings.Contains(strings.ToLower(book.Author), strings.ToLower(author)) {
			continue
		}
		if !bounds.contains(float64(book.Price)) {
			continue
		}
		books = append(books, book)
	}

	return books, nil
}

func (library *MemoryLibraryManager) Store(_ context.Context) (*models.StoreSummary, error) {
	library.mu.RLock()
	defer library.mu.RUnlock()

	authors := make(map[string]struct{})
	for _, book := range library.books {
		authors[book.Author] = struct{}{}
	}

	return &models.StoreSummary{
		NumberOfBooks:   int64(len(library.books)),
		NumberOfAuthors: int64(len(authors)),
	}, nil
}

type priceBounds struct {
	min, max       float64
	hasMin, hasMax bool
}

func parsePriceBounds(minPrice, maxPrice string) (priceBounds, error) {
	bounds := priceBounds{}
	if minPrice != "" {
		price, err := strconv.ParseFloat(minPrice, 64)
		if err != nil {
			return bounds, err
		}
		bounds.min, bounds.hasMin = price, true
	}
	if maxPrice != "" {
		price, err := strconv.ParseFloat(maxPrice, 64)
		if err != nil {
			return bounds, err
		}
		bounds.max, bounds.hasMax = price, true
	}
	return bounds, nil
}

func (b priceBounds) contains(price float64) bool {
	if b.hasMin && price < b.min {
		return false
	}
	if b.hasMax && price > b.max {
		return false
	}
	return true
}
