package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bookjourney/internal/catalog"
	"bookjourney/internal/entity"
	"bookjourney/internal/testutil"
)

// stubSearcher stands in for the Google Books client.
type stubSearcher struct {
	items []entity.CatalogItem
	err   error
	calls int
}

func (s *stubSearcher) Search(ctx context.Context, query string) ([]entity.CatalogItem, error) {
	s.calls++
	return s.items, s.err
}

func TestSearchHandler(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		stub           *stubSearcher
		expectedStatus int
	}{
		{
			name:           "success",
			query:          "dune",
			stub:           &stubSearcher{items: []entity.CatalogItem{{ID: "vol-1"}}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing query",
			query:          "",
			stub:           &stubSearcher{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "upstream rate limited",
			query:          "dune",
			stub:           &stubSearcher{err: catalog.ErrRateLimited},
			expectedStatus: http.StatusTooManyRequests,
		},
		{
			name:           "upstream failure",
			query:          "dune",
			stub:           &stubSearcher{err: catalog.ErrSearchFailed},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := catalog.NewService(tt.stub, catalog.NewCache(time.Hour))
			handler := NewSearchHandler(service)

			w := httptest.NewRecorder()
			r := testutil.NewRequest(http.MethodGet, "/api/search?query="+tt.query, nil)

			handler.Search(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestSearchHandler_MissingQueryNeverReachesUpstream(t *testing.T) {
	stub := &stubSearcher{}
	handler := NewSearchHandler(catalog.NewService(stub, catalog.NewCache(time.Hour)))

	w := httptest.NewRecorder()
	r := testutil.NewRequest(http.MethodGet, "/api/search", nil)

	handler.Search(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, stub.calls)
}
