package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"restapi/models"
)

func TestMemoryLibrary_CreateAssignsSequentialIds(t *testing.T) {
	library := CreateMemoryLibrary()
	ctx := context.Background()

	id1, err1 := library.Create(ctx, &models.Book{Title: "first"})
	id2, err2 := library.Create(ctx, &models.Book{Title: "second"})

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, 1, id1)
	assert.Equal(t, 2, id2)
}

func TestMemoryLibrary_IdsNotReusedAfterDelete(t *testing.T) {
	library := CreateMemoryLibrary()
	ctx := context.Background()

	id1, _ := library.Create(ctx, &models.Book{Title: "first"})
	assert.NoError(t, library.Delete(ctx, id1))

	id2, _ := library.Create(ctx, &models.Book{Title: "second"})
	assert.Greater(t, id2, id1)
}

func TestMemoryLibrary_GetById(t *testing.T) {
	library := CreateMemoryLibrary()
	ctx := context.Background()

	id, _ := library.Create(ctx, &models.Book{Title: "first", Author: "A", Price: 10, Pages: 100})

	book, err := library.GetById(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, id, book.ID)
	assert.Equal(t, "first", book.Title)
	assert.Equal(t, "A", book.Author)
}

func TestMemoryLibrary_GetById_NotFound(t *testing.T) {
	library := CreateMemoryLibrary()

	_, err := library.GetById(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestMemoryLibrary_GetAll_EmptyAndSorted(t *testing.T) {
	library := CreateMemoryLibrary()
	ctx := context.Background()

	books, err := library.GetAll(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(books))

	library.Create(ctx, &models.Book{Title: "first"})
	library.Create(ctx, &models.Book{Title: "second"})
	library.Create(ctx, &models.Book{Title: "third"})

	books, err = library.GetAll(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 3, len(books))
	assert.Equal(t, []int{1, 2, 3}, []int{books[0].ID, books[1].ID, books[2].ID})
}

func TestMemoryLibrary_Update_ReplacesAllFields(t *testing.T) {
	library := CreateMemoryLibrary()
	ctx := context.Background()

	id, _ := library.Create(ctx, &models.Book{Title: "old", Author: "A", Price: 1, Pages: 10})

	err := library.Update(ctx, &models.Book{ID: id, Title: "new", Author: "B", Price: 2, Pages: 20})
	assert.NoError(t, err)

	book, _ := library.GetById(ctx, id)
	assert.Equal(t, "new", book.Title)
	assert.Equal(t, "B", book.Author)
	assert.Equal(t, models.Price(2), book.Price)
	assert.Equal(t, models.Pages(20), book.Pages)
}

func TestMemoryLibrary_Update_NotFound(t *testing.T) {
	library := CreateMemoryLibrary()

	err := library.Update(context.Background(), &models.Book{ID: 7, Title: "ghost"})
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestMemoryLibrary_Delete(t *testing.T) {
	library := CreateMemoryLibrary()
	ctx := context.Background()

	id1, _ := library.Create(ctx, &models.Book{Title: "first"})
	id2, _ := library.Create(ctx, &models.Book{Title: "second"})

	assert.NoError(t, library.Delete(ctx, id1))

	_, err := library.GetById(ctx, id1)
	assert.ErrorIs(t, err, ErrBookNotFound)

	books, _ := library.GetAll(ctx)
	assert.Equal(t, 1, len(books))
	assert.Equal(t, id2, books[0].ID)
}

func TestMemoryLibrary_Delete_Twice(t *testing.T) {
	library := CreateMemoryLibrary()
	ctx := context.Background()

	id, _ := library.Create(ctx, &models.Book{Title: "first"})
	assert.NoError(t, library.Delete(ctx, id))
	assert.ErrorIs(t, library.Delete(ctx, id), ErrBookNotFound)
}

func searchFixture(t *testing.T) *MemoryLibraryManager {
	t.Helper()
	library := CreateMemoryLibrary()
	ctx := context.Background()

	library.Create(ctx, &models.Book{Title: "Dune", Author: "Frank Herbert", Price: 15})
	library.Create(ctx, &models.Book{Title: "Dune Messiah", Author: "Frank Herbert", Price: 25})
	library.Create(ctx, &models.Book{Title: "Hyperion", Author: "Dan Simmons", Price: 30})

	return library
}

func TestMemoryLibrary_Search_ByTitle(t *testing.T) {
	library := searchFixture(t)

	books, err := library.Search(context.Background(), "Dune", "", "", "")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(books))
	assert.Equal(t, "Dune", books[0].Title)
}

func TestMemoryLibrary_Search_ByAuthorSubstring(t *testing.T) {
	library := searchFixture(t)

	books, err := library.Search(context.Background(), "", "herbert", "", "")
	assert.NoError(t, err)
	assert.Equal(t, 2, len(books))
}

func TestMemoryLibrary_Search_ByPriceRange(t *testing.T) {
	library := searchFixture(t)

	books, err := library.Search(context.Background(), "", "", "20", "30")
	assert.NoError(t, err)
	assert.Equal(t, 2, len(books))
	assert.Equal(t, "Dune Messiah", books[0].Title)
	assert.Equal(t, "Hyperion", books[1].Title)
}

func TestMemoryLibrary_Search_Combined(t *testing.T) {
	library := searchFixture(t)

	books, err := library.Search(context.Background(), "", "Frank", "20", "")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(books))
	assert.Equal(t, "Dune Messiah", books[0].Title)
}

func TestMemoryLibrary_Search_BadPrice(t *testing.T) {
	library := searchFixture(t)

	_, err := library.Search(context.Background(), "", "", "cheap", "")
	assert.Error(t, err)
}

func TestMemoryLibrary_Store(t *testing.T) {
	library := searchFixture(t)

	summary, err := library.Store(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(3), summary.NumberOfBooks)
	assert.Equal(t, int64(2), summary.NumberOfAuthors)
}
