package mal

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ListMender/internal/domain"
	"ListMender/internal/ports"
)

// UpdateClient submits partial date updates through the MAL v2 API.
type UpdateClient struct {
	apiBase string
	token   string
	http    *http.Client
}

var _ ports.UpdateSubmitter = (*UpdateClient)(nil)

// NewUpdateClient creates a reusable update client.
func NewUpdateClient(opts Options) *UpdateClient {
	return &UpdateClient{
		apiBase: opts.APIBaseURL,
		token:   opts.AccessToken,
		http:    opts.httpClient(15 * time.Second),
	}
}

// Submit sends a form-encoded my_list_status update carrying only the fields
// present in the patch, and reports the API's status code. Fields the patch
// does not carry are never transmitted, so the API leaves them untouched.
func (c *UpdateClient) Submit(ctx context.Context, entryID int64, listType domain.ListType, patch domain.DatePatch) (int, error) {
	if patch.Empty() {
		return 0, fmt.Errorf("refusing to submit an empty patch for entry %d", entryID)
	}

	endpoint := fmt.Sprintf("%s/%s/%d/my_list_status", c.apiBase, listType, entryID)

	form := url.Values{}
	if patch.StartDate.Present() {
		form.Set("start_date", patch.StartDate.String())
	}
	if patch.FinishDate.Present() {
		form.Set("finish_date", patch.FinishDate.String())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return 0, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}
