package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"restapi/cache"
	"restapi/db"
	"restapi/models"
)

const MAX_NUMBER_CACHED = 3

type Handlers struct {
	Library db.LibraryManager
	Cache   cache.RequestCacher
}

func NewHandlers(library db.LibraryManager, requestCache cache.RequestCacher) *Handlers {
	return &Handlers{Library: library, Cache: requestCache}
}

func parseBookID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("invalid book id %q", c.Param("id"))})
		return 0, false
	}
	return id, true
}

func bookNotFound(c *gin.Context, id int) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("book with id %d not found", id)})
}

func (h *Handlers) GetAllBooks(c *gin.Context) {
	books, err := h.Library.GetAll(c)

	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, books)
}

func (h *Handlers) GetBookById(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	book, err := h.Library.GetById(c, id)

	if errors.Is(err, db.ErrBookNotFound) {
		bookNotFound(c, id)
		return
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, book)
}

func (h *Handlers) CreateBook(c *gin.Context) {
	var book models.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	// ids come from the store, never from the client
	book.ID = 0

	if _, err := h.Library.Create(c, &book); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.Status(http.StatusCreated)
}

func (h *Handlers) UpdateBookById(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	var payload models.Book
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	book, err := h.Library.GetById(c, id)
	if errors.Is(err, db.ErrBookNotFound) {
		bookNotFound(c, id)
		return
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	// full replacement of every field except the id
	book.Title = payload.Title
	book.Description = payload.Description
	book.Isbn = payload.Isbn
	book.Publisher = payload.Publisher
	book.Language = payload.Language
	book.Author = payload.Author
	book.Price = payload.Price
	book.Pages = payload.Pages

	if err := h.Library.Update(c, book); err != nil {
		if errors.Is(err, db.ErrBookNotFound) {
			bookNotFound(c, id)
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.Status(http.StatusOK)
}

func (h *Handlers) DeleteBookById(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	if _, err := h.Library.GetById(c, id); err != nil {
		if errors.Is(err, db.ErrBookNotFound) {
			bookNotFound(c, id)
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	if err := h.Library.Delete(c, id); err != nil {
		if errors.Is(err, db.ErrBookNotFound) {
			bookNotFound(c, id)
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.Status(http.StatusOK)
}

func (h *Handlers) SearchBooks(c *gin.Context) {
	title := c.Query("title")
	author := c.Query("author")
	minPrice := c.Query("min_price")
	maxPrice := c.Query("max_price")

	if title == "" && author == "" && minPrice == "" && maxPrice == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "at least one query parameter is required for search"})
		return
	}

	for _, price := range []string{minPrice, maxPrice} {
		if price == "" {
			continue
		}
		if _, err := strconv.ParseFloat(price, 64); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
	}

	books, err := h.Library.Search(c, title, author, minPrice, maxPrice)

	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, books)
}

func (h *Handlers) Store(c *gin.Context) {
	summary, err := h.Library.Store(c)

	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *Handlers) Activity(c *gin.Context) {
	username := c.Param("username")

	if h.Cache == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "request cache is not configured"})
		return
	}

	userRequests, err := h.Cache.Read(username)

	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	requests := make([]models.UserRequest, 0, len(userRequests))
	for _, request := range userRequests {
		var userRequest models.UserRequest
		if err := json.Unmarshal([]byte(request), &userRequest); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		requests = append(requests, userRequest)
	}

	c.JSON(http.StatusOK, requests)
}

// CacheUserRequest records the request in the caller's activity list when a
// username query param is present. A caching failure never fails the request.
func (h *Handlers) CacheUserRequest(c *gin.Context) {
	if h.Cache == nil {
		return
	}

	username, ok := c.GetQuery("username")
	if !ok {
		return
	}

	userRequest := models.UserRequest{
		RequestID: uuid.NewString(),
		Method:    c.Request.Method,
		Route:     c.Request.URL.Path,
	}

	request, err := json.Marshal(userRequest)
	if err == nil {
		_ = h.Cache.Write(username, request)
	}

	c.Next()
}
