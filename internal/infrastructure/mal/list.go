package mal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"ListMender/internal/domain"
	"ListMender/internal/ports"
)

// ListClient fetches a user's tracked list through the MAL v2 API.
type ListClient struct {
	apiBase string
	token   string
	http    *http.Client
}

var _ ports.ListProvider = (*ListClient)(nil)

// NewListClient creates a reusable list client.
func NewListClient(opts Options) *ListClient {
	return &ListClient{
		apiBase: opts.APIBaseURL,
		token:   opts.AccessToken,
		http:    opts.httpClient(15 * time.Second),
	}
}

// Fetch requests the owner's anime or manga list with its list_status
// fields. The API serves at most 1000 entries per call; pagination beyond
// that is out of scope.
func (c *ListClient) Fetch(ctx context.Context, listType domain.ListType, owner string, limit int) ([]domain.ListEntry, error) {
	endpoint := fmt.Sprintf("%s/users/%s/%slist", c.apiBase, url.PathEscape(owner), listType)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	query := req.URL.Query()
	query.Set("fields", "list_status")
	query.Set("limit", strconv.Itoa(limit))
	req.URL.RawQuery = query.Encode()
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list fetch returned %s", resp.Status)
	}

	var payload struct {
		Data []struct {
			Node struct {
				ID    int64  `json:"id"`
				Title string `json:"title"`
			} `json:"node"`
			ListStatus struct {
				Status     string `json:"status"`
				StartDate  string `json:"start_date"`
				FinishDate string `json:"finish_date"`
			} `json:"list_status"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	entries := make([]domain.ListEntry, 0, len(payload.Data))
	for _, item := range payload.Data {
		start, err := parseOptionalDate(item.ListStatus.StartDate)
		if err != nil {
			return nil, fmt.Errorf("entry %d start date: %w", item.Node.ID, err)
		}
		finish, err := parseOptionalDate(item.ListStatus.FinishDate)
		if err != nil {
			return nil, fmt.Errorf("entry %d finish date: %w", item.Node.ID, err)
		}

		entries = append(entries, domain.ListEntry{
			ID:         item.Node.ID,
			Title:      item.Node.Title,
			Status:     domain.EntryStatus(item.ListStatus.Status),
			StartDate:  start,
			FinishDate: finish,
		})
	}

	return entries, nil
}

// parseOptionalDate maps the API's omitted date field to the absent Date.
func parseOptionalDate(s string) (domain.Date, error) {
	if s == "" {
		return domain.Date{}, nil
	}
	return domain.ParseDate(s)
}
