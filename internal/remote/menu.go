package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/msomdec/little-lemon/internal/domain"
)

// menuResponse is the wire shape of the menu endpoint. Menu is a pointer so a
// body without the "menu" key is told apart from an empty menu.
type menuResponse struct {
	Menu *[]menuItemJSON `json:"menu"`
}

type menuItemJSON struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

// HTTPMenuSource implements domain.MenuSource against a fixed URL.
type HTTPMenuSource struct {
	client *http.Client
	url    string
}

// NewHTTPMenuSource creates a source for url. A zero timeout leaves the
// transport defaults in place.
func NewHTTPMenuSource(url string, timeout time.Duration) *HTTPMenuSource {
	return &HTTPMenuSource{
		client: &http.Client{Timeout: timeout},
		url:    url,
	}
}

// FetchMenu issues a single GET and decodes the menu. It never retries. Any
// failure comes back as an error wrapping domain.ErrFetchFailed together
// with an empty, non-nil slice.
func (s *HTTPMenuSource) FetchMenu(ctx context.Context) ([]domain.MenuItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return []domain.MenuItem{}, fmt.Errorf("%w: build request: %v", domain.ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return []domain.MenuItem{}, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return []domain.MenuItem{}, fmt.Errorf("%w: unexpected status %d", domain.ErrFetchFailed, resp.StatusCode)
	}

	var body menuResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return []domain.MenuItem{}, fmt.Errorf("%w: decode body: %v", domain.ErrFetchFailed, err)
	}
	if body.Menu == nil {
		return []domain.MenuItem{}, fmt.Errorf("%w: response has no menu", domain.ErrFetchFailed)
	}

	items := make([]domain.MenuItem, 0, len(*body.Menu))
	for _, m := range *body.Menu {
		items = append(items, domain.MenuItem{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
			Price:       m.Price,
			Image:       m.Image,
			Category:    m.Category,
		})
	}
	return items, nil
}
