package mal

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"ListMender/internal/domain"
	"ListMender/internal/ports"
)

// HistoryScraper pulls an entry's progress history from the site's ajaxtb
// endpoint, the iframe the "Episode Details" link opens. There is no API
// equivalent; the reply is HTML with one div.spaceit_pad line per recorded
// progress event, newest first.
type HistoryScraper struct {
	siteBase string
	token    string
	http     *http.Client
}

var _ ports.HistoryProvider = (*HistoryScraper)(nil)

// NewHistoryScraper creates a reusable scraper.
func NewHistoryScraper(opts Options) *HistoryScraper {
	return &HistoryScraper{
		siteBase: opts.SiteBaseURL,
		token:    opts.AccessToken,
		http:     opts.httpClient(20 * time.Second),
	}
}

// Fetch returns the raw history records for one entry. Any failure means the
// history is unavailable; the caller decides what that implies.
func (s *HistoryScraper) Fetch(ctx context.Context, entryID int64, listType domain.ListType) ([]string, error) {
	modifier := "a"
	if listType == domain.ListManga {
		modifier = "m"
	}
	endpoint := fmt.Sprintf("%s/ajaxtb.php?keepThis=true&detailed%sid=%d&TB_iframe=true&height=420&width=390",
		s.siteBase, modifier, entryID)

	doc, err := s.fetchDocument(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var records []string
	doc.Find("div.spaceit_pad").Each(func(i int, div *goquery.Selection) {
		records = append(records, strings.TrimSpace(div.Text()))
	})

	return records, nil
}

func (s *HistoryScraper) fetchDocument(ctx context.Context, endpoint string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("history endpoint returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	return doc, nil
}
