package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"bookjourney/internal/entity"
	"bookjourney/internal/httpx"
	"bookjourney/internal/usecase"
)

type BookHandler struct {
	books usecase.BookRepository
}

func NewBookHandler(books usecase.BookRepository) *BookHandler {
	return &BookHandler{books: books}
}

type addBookReq struct {
	GoogleBookID string `json:"googleBookId"`
	Title        string `json:"title" validate:"required"`
	Author       string `json:"author"`
	CoverURL     string `json:"coverUrl"`
	Status       string `json:"status" validate:"omitempty,oneof='To Read' 'Reading' 'Read'"`
	Rating       int    `json:"rating" validate:"gte=0,lte=5"`
	Comment      string `json:"comment"`
}

func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID := httpx.UserIDFrom(r)
	if ownerID == "" {
		httpx.Error(w, http.StatusUnauthorized, "Access denied")
		return
	}

	books, err := h.books.ListByOwner(r.Context(), ownerID)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Fetch failed")
		return
	}
	if books == nil {
		books = []entity.Book{}
	}
	httpx.JSON(w, http.StatusOK, books)
}

func (h *BookHandler) Rankings(w http.ResponseWriter, r *http.Request) {
	ownerID := httpx.UserIDFrom(r)
	if ownerID == "" {
		httpx.Error(w, http.StatusUnauthorized, "Access denied")
		return
	}

	books, err := h.books.ListRankedByRating(r.Context(), ownerID)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Fetch rankings failed")
		return
	}
	if books == nil {
		books = []entity.Book{}
	}
	httpx.JSON(w, http.StatusOK, books)
}

func (h *BookHandler) Add(w http.ResponseWriter, r *http.Request) {
	ownerID := httpx.UserIDFrom(r)
	if ownerID == "" {
		httpx.Error(w, http.StatusUnauthorized, "Access denied")
		return
	}

	var req addBookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSON(w, http.StatusBadRequest, map[string]any{
			"error":   validationErrors[0].Message,
			"details": validationErrors,
		})
		return
	}

	if req.Status == "" {
		req.Status = entity.StatusToRead
	}

	book := &entity.Book{
		OwnerID:      ownerID,
		GoogleBookID: req.GoogleBookID,
		Title:        req.Title,
		Author:       req.Author,
		CoverURL:     req.CoverURL,
		Status:       req.Status,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}
	if err := h.books.Add(r.Context(), book); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Add failed")
		return
	}

	httpx.JSON(w, http.StatusCreated, book)
}

type updateBookReq struct {
	Status  *string `json:"status" validate:"omitempty,oneof='To Read' 'Reading' 'Read'"`
	Rating  *int    `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Comment *string `json:"comment"`
}

func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request, bookID string) {
	ownerID := httpx.UserIDFrom(r)
	if ownerID == "" {
		httpx.Error(w, http.StatusUnauthorized, "Access denied")
		return
	}

	var req updateBookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSON(w, http.StatusBadRequest, map[string]any{
			"error":   validationErrors[0].Message,
			"details": validationErrors,
		})
		return
	}

	patch := usecase.BookPatch{
		Status:  req.Status,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	book, err := h.books.Update(r.Context(), ownerID, bookID, patch)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "Book not found")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "Update failed")
		return
	}

	httpx.JSON(w, http.StatusOK, book)
}

func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request, bookID string) {
	ownerID := httpx.UserIDFrom(r)
	if ownerID == "" {
		httpx.Error(w, http.StatusUnauthorized, "Access denied")
		return
	}

	if err := h.books.Delete(r.Context(), ownerID, bookID); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Delete failed")
		return
	}

	httpx.Message(w, http.StatusOK, "Deleted")
}

// ServeByID dispatches /api/books/{id} requests by method.
func (h *BookHandler) ServeByID(w http.ResponseWriter, r *http.Request) {
	const prefix = "/api/books/"
	bookID := strings.TrimPrefix(r.URL.Path, prefix)
	if bookID == "" || strings.Contains(bookID, "/") {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodPatch:
		h.Update(w, r, bookID)
	case http.MethodDelete:
		h.Delete(w, r, bookID)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
