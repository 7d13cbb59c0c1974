package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"bookjourney/internal/entity"
)

var (
	// ErrEmptyQuery is returned before any upstream work when the search
	// query is empty.
	ErrEmptyQuery = errors.New("search query is required")
	// ErrRateLimited signals upstream throttling (HTTP 429) so the client
	// can show a "try again later" message.
	ErrRateLimited = errors.New("catalog rate limited")
	// ErrSearchFailed covers every other upstream failure.
	ErrSearchFailed = errors.New("catalog search failed")
)

const defaultBaseURL = "https://www.googleapis.com/books/v1"

// Client calls the Google Books volumes API. Failed calls are reported
// once to the caller; there is no retry.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
}

func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		limiter: rate.NewLimiter(rate.Every(200*time.Millisecond), 5),
	}
}

type volumesResponse struct {
	Items []entity.CatalogItem `json:"items"`
}

func (c *Client) Search(ctx context.Context, query string) ([]entity.CatalogItem, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}

	u := fmt.Sprintf("%s/volumes?q=%s", c.baseURL, url.QueryEscape(query))
	if c.apiKey != "" {
		u += "&key=" + url.QueryEscape(c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrSearchFailed, resp.StatusCode)
	}

	var payload volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}
	return payload.Items, nil
}
