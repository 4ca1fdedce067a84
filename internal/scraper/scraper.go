package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pfrederiksen/pavilion-events/internal/logger"
)

const (
	// VenuePageURL is the ticketing site's public listing page for the
	// pavilion. Structured-data blocks embedded in this page are the
	// primary event source.
	VenuePageURL = "https://www.ticketmaster.com/the-cynthia-woods-mitchell-pavilion-sponsored-tickets-the-woodlands/venue/475245"

	UserAgent      = "pavilion-events/1.0 (github.com/pfrederiksen/pavilion-events)"
	DefaultTimeout = 30 * time.Second

	// maxPages caps pagination as a safety limit.
	maxPages = 10
)

// Scraper fetches the venue page and extracts raw event records from it.
type Scraper struct {
	client  *http.Client
	baseURL string
	pages   int
}

// New creates a Scraper against the live venue page with default settings.
func New() *Scraper {
	return NewWithOptions(VenuePageURL, DefaultTimeout, maxPages)
}

// NewWithOptions creates a Scraper with an explicit base URL, fetch timeout
// and page cap. Used by tests and by deployments pointing at a mirror.
func NewWithOptions(baseURL string, timeout time.Duration, pages int) *Scraper {
	if pages <= 0 || pages > maxPages {
		pages = maxPages
	}
	return &Scraper{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		pages:   pages,
	}
}

// FetchPage performs a single GET for one page of the venue listing and
// returns the raw markup. One attempt, no retry: the next scheduled refresh
// is the retry.
func (s *Scraper) FetchPage(ctx context.Context, page int) (string, error) {
	url := s.baseURL
	if page > 0 {
		sep := "?"
		if strings.Contains(url, "?") {
			sep = "&"
		}
		url = fmt.Sprintf("%s%spage=%d", url, sep, page)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}
	return string(body), nil
}

// FetchAll walks the paginated listing, extracts raw events from each page
// and returns them deduplicated by URL in document order. A failure on the
// first page aborts; failures on later pages keep what was already
// gathered, since each page is independently useful.
func (s *Scraper) FetchAll(ctx context.Context) ([]RawEvent, error) {
	all := make([]RawEvent, 0)

	for page := 0; page < s.pages; page++ {
		html, err := s.FetchPage(ctx, page)
		if err != nil {
			if page == 0 {
				return nil, err
			}
			logger.Warn("page fetch failed, keeping earlier pages", logger.Fields{
				"page": page, "error": err.Error(),
			})
			break
		}

		raws := Extract(html)
		if len(raws) == 0 {
			break
		}
		all = append(all, raws...)

		if !strings.Contains(html, `rel="next"`) {
			break
		}
	}

	return DedupeRaw(all), nil
}
