// Package feeds consumes the reservation-sync collaborator's REST
// interface. It only reads: feed synchronization itself (iCal scraping)
// lives upstream.
package feeds

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"staycal/internal/app/view"
	"staycal/internal/domain/reservation"
	"staycal/internal/infra/obs"
)

var (
	// ErrFeedUnavailable wraps non-2xx upstream responses.
	ErrFeedUnavailable = errors.New("feeds: upstream returned error status")
)

// reservationsResponse is the upstream payload shape. Records may mix
// camelCase and snake_case field naming within one batch; Record carries
// both spellings.
type reservationsResponse struct {
	Success      bool                 `json:"success"`
	Reservations []reservation.Record `json:"reservations"`
}

// Client fetches per-property reservation batches.
type Client struct {
	base   string
	client *http.Client
	logger *slog.Logger
}

// NewClient builds a client against the upstream base URL.
func NewClient(base string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		base:   base,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Reservations fetches and normalizes one property's reservations.
// Records with unparsable dates are kept here and excluded later at
// placement; fetch errors are the caller's to degrade on.
func (c *Client) Reservations(ctx context.Context, prop view.Property) ([]reservation.Reservation, error) {
	log := c.logger
	if id := obs.RequestIDFromContext(ctx); id != "" {
		log = log.With("request_id", id)
	}
	url := fmt.Sprintf("%s/reservations/%s", c.base, prop.ID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feeds: fetch %s: %w", prop.ID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: %s for property %s", ErrFeedUnavailable, resp.Status, prop.ID)
	}

	var payload reservationsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("feeds: decode %s: %w", prop.ID, err)
	}
	if !payload.Success {
		return nil, fmt.Errorf("%w: success=false for property %s", ErrFeedUnavailable, prop.ID)
	}

	out := make([]reservation.Reservation, 0, len(payload.Reservations))
	for _, rec := range payload.Reservations {
		out = append(out, reservation.FromRecord(rec, prop.ID, prop.Name))
	}
	log.Debug("feed fetched", "property_id", prop.ID, "reservations", len(out))
	return out, nil
}

var _ view.Source = (*Client)(nil)
