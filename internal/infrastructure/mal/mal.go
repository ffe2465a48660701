// Package mal implements the collaborator ports against MyAnimeList: the
// v2 REST API for list reads and status updates, and the site's ajaxtb
// endpoint for episode/chapter history scraping.
package mal

import (
	"net/http"
	"time"
)

// Options wires the endpoints and the pre-acquired OAuth access token shared
// by all MAL adapters. HTTPClient is optional; each adapter falls back to a
// client with a transport-level timeout.
type Options struct {
	APIBaseURL  string
	SiteBaseURL string
	AccessToken string
	HTTPClient  *http.Client
}

func (o Options) httpClient(timeout time.Duration) *http.Client {
	if o.HTTPClient != nil {
		return o.HTTPClient
	}
	return &http.Client{Timeout: timeout}
}
