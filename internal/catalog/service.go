package catalog

import (
	"context"

	"bookjourney/internal/entity"
)

type Searcher interface {
	Search(ctx context.Context, query string) ([]entity.CatalogItem, error)
}

// Service is the search proxy: cache lookup first, upstream on a miss.
type Service struct {
	client Searcher
	cache  *Cache
}

func NewService(client Searcher, cache *Cache) *Service {
	return &Service{
		client: client,
		cache:  cache,
	}
}

// Search returns catalog items for a free-text query. The raw query is
// the cache key; no trimming or case folding is applied.
func (s *Service) Search(ctx context.Context, query string) ([]entity.CatalogItem, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}

	if items, ok := s.cache.Get(query); ok {
		return items, nil
	}

	items, err := s.client.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entity.CatalogItem{}
	}

	s.cache.Set(query, items)
	return items, nil
}
