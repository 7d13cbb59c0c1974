package http

import (
	"context"
	"net/http"
	"time"

	"bookjourney/internal/auth"
	"bookjourney/internal/catalog"
	"bookjourney/internal/httpx"
	"bookjourney/internal/usecase"
)

type RouterConfig struct {
	Users  usecase.UserRepository
	Books  usecase.BookRepository
	Search *catalog.Service
	Tokens *auth.TokenManager
	// Ready reports whether downstream dependencies are reachable.
	// Optional; /readyz returns 200 when nil.
	Ready func(ctx context.Context) error
}

// NewRouter wires the REST surface. Protected routes pass through the
// auth middleware; ownership filtering happens again at the store layer.
func NewRouter(cfg RouterConfig) http.Handler {
	authHandler := NewAuthHandler(cfg.Users, cfg.Tokens)
	searchHandler := NewSearchHandler(cfg.Search)
	bookHandler := NewBookHandler(cfg.Books)

	guard := httpx.AuthMiddleware(cfg.Tokens)

	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if cfg.Ready != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
			defer cancel()
			if err := cfg.Ready(ctx); err != nil {
				http.Error(w, "not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	mux.HandleFunc("/api/auth/register", requireMethod(http.MethodPost, authHandler.Register))
	mux.HandleFunc("/api/auth/login", requireMethod(http.MethodPost, authHandler.Login))

	mux.HandleFunc("/api/search", requireMethod(http.MethodGet, searchHandler.Search))

	mux.Handle("/api/books", guard(requireMethod(http.MethodGet, bookHandler.List)))
	mux.Handle("/api/books/add", guard(requireMethod(http.MethodPost, bookHandler.Add)))
	mux.Handle("/api/books/rankings", guard(requireMethod(http.MethodGet, bookHandler.Rankings)))
	mux.Handle("/api/books/", guard(http.HandlerFunc(bookHandler.ServeByID)))

	return mux
}

func requireMethod(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}
