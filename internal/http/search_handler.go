package http

import (
	"errors"
	"net/http"

	"bookjourney/internal/catalog"
	"bookjourney/internal/httpx"
)

type SearchHandler struct {
	search *catalog.Service
}

func NewSearchHandler(search *catalog.Service) *SearchHandler {
	return &SearchHandler{search: search}
}

func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	items, err := h.search.Search(r.Context(), query)
	switch {
	case errors.Is(err, catalog.ErrEmptyQuery):
		httpx.Error(w, http.StatusBadRequest, "Query required")
		return
	case errors.Is(err, catalog.ErrRateLimited):
		httpx.Error(w, http.StatusTooManyRequests, "Search rate limited, try again later")
		return
	case err != nil:
		httpx.Error(w, http.StatusInternalServerError, "Search failed")
		return
	}

	httpx.JSON(w, http.StatusOK, items)
}
