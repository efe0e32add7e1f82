// Package view owns the dashboard's calendar view state: which month is
// shown, which property and channel are filtered, and the reservation set
// the views render from. State lives in one explicit controller instead of
// scattered globals; every view is re-derived from it on demand.
package view

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"staycal/internal/domain/calendar"
	"staycal/internal/domain/dateonly"
	"staycal/internal/domain/reservation"
)

// Mode selects the presentation of the loaded reservation set. Switching
// modes never refetches; both render the same in-memory data.
type Mode string

const (
	ModeList     Mode = "list"
	ModeTimeline Mode = "timeline"
)

var (
	// ErrAllPropertiesFailed signals the aggregate "could not load
	// calendar" state: every property fetch failed. A partial failure is
	// not an error, the view renders with partial data.
	ErrAllPropertiesFailed = errors.New("view: all property feeds failed")
	// ErrReservationNotFound is returned by Reservation for unknown ids.
	ErrReservationNotFound = errors.New("view: reservation not found")
)

// State is the full view state. It is a plain value so handlers can read a
// consistent snapshot under one lock acquisition.
type State struct {
	Mode           Mode                 `json:"mode"`
	PropertyFilter string               `json:"property_filter,omitempty"`
	ChannelFilter  reservation.Platform `json:"channel_filter,omitempty"`
	Period         calendar.Period      `json:"period"`
	Partial        bool                 `json:"partial,omitempty"`
}

// Property is the weak property reference reservations are fetched under.
type Property struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Source fetches the already-synced reservations of one property.
type Source interface {
	Reservations(ctx context.Context, prop Property) ([]reservation.Reservation, error)
}

// Directory lists the properties whose calendars are shown.
type Directory interface {
	List(ctx context.Context) ([]Property, error)
}

// Controller is the single state container behind the calendar API.
type Controller struct {
	source    Source
	directory Directory
	logger    *slog.Logger
	now       func() dateonly.Date

	// token is a monotonic reload counter; a reload whose token is no
	// longer current discards its result instead of clobbering a newer
	// one (stale render race guard).
	token atomic.Uint64

	mu           sync.RWMutex
	state        State
	reservations []reservation.Reservation
	// activeTooltip is the reservation id of the one open tooltip, if any.
	// Showing a tooltip always replaces the prior instance.
	activeTooltip string
}

// NewController starts on the current month in timeline mode.
func NewController(source Source, directory Directory, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Controller{
		source:    source,
		directory: directory,
		logger:    logger,
		now:       dateonly.Today,
	}
	c.state = State{Mode: ModeTimeline, Period: calendar.PeriodOf(c.now())}
	return c
}

// State returns a snapshot of the current view state.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Today returns the controller's notion of the current day.
func (c *Controller) Today() dateonly.Date { return c.now() }

// SetMode switches between list and timeline presentation.
func (c *Controller) SetMode(m Mode) {
	if m != ModeList && m != ModeTimeline {
		return
	}
	c.mu.Lock()
	c.state.Mode = m
	c.mu.Unlock()
}

// SetPropertyFilter narrows the view to one property; empty clears the
// filter. No network call: filtering re-derives from the loaded set.
func (c *Controller) SetPropertyFilter(propertyID string) {
	c.mu.Lock()
	c.state.PropertyFilter = propertyID
	c.mu.Unlock()
}

// SetChannelFilter narrows the view to one booking channel; empty clears.
func (c *Controller) SetChannelFilter(p reservation.Platform) {
	c.mu.Lock()
	c.state.ChannelFilter = p
	c.mu.Unlock()
}

// Navigate shifts the displayed month. Month rollover across year
// boundaries is native date arithmetic: January shifted by -1 lands on the
// prior December.
func (c *Controller) Navigate(months int) calendar.Period {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Period = c.state.Period.Shift(months)
	return c.state.Period
}

// GoToToday resets the period to the real current month.
func (c *Controller) GoToToday() calendar.Period {
	period := calendar.PeriodOf(c.now())
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Period = period
	return period
}

// Visible returns the reservations matching the current filters together
// with the state they were filtered under.
func (c *Controller) Visible() ([]reservation.Reservation, State) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]reservation.Reservation, 0, len(c.reservations))
	for _, r := range c.reservations {
		if c.state.PropertyFilter != "" && r.PropertyID != c.state.PropertyFilter {
			continue
		}
		if c.state.ChannelFilter != "" && r.Platform != c.state.ChannelFilter {
			continue
		}
		out = append(out, r)
	}
	return out, c.state
}

// Reservation looks up one loaded reservation by id, for the click-through
// details view.
func (c *Controller) Reservation(id string) (reservation.Reservation, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, r := range c.reservations {
		if r.ID == id {
			return r, nil
		}
	}
	return reservation.Reservation{}, ErrReservationNotFound
}

// ShowTooltip marks the reservation's tooltip as the active one,
// replacing any prior instance, and reports the id it replaced.
func (c *Controller) ShowTooltip(id string) (replaced string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	replaced = c.activeTooltip
	c.activeTooltip = id
	return replaced
}

// HideTooltip closes the active tooltip, if any.
func (c *Controller) HideTooltip() {
	c.mu.Lock()
	c.activeTooltip = ""
	c.mu.Unlock()
}

// ActiveTooltip returns the reservation id of the open tooltip, or empty.
func (c *Controller) ActiveTooltip() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.activeTooltip
}

// Reload fetches every property's reservations in parallel and replaces
// the loaded set. One property failing degrades to an empty list for that
// property; only all of them failing is an error. A reload that lost the
// race to a newer one discards its result.
func (c *Controller) Reload(ctx context.Context) error {
	token := c.token.Add(1)

	props, err := c.directory.List(ctx)
	if err != nil {
		return err
	}

	results := make([][]reservation.Reservation, len(props))
	failures := make([]error, len(props))
	var wg sync.WaitGroup
	for i, prop := range props {
		wg.Add(1)
		go func(i int, prop Property) {
			defer wg.Done()
			recs, err := c.source.Reservations(ctx, prop)
			if err != nil {
				c.logger.Warn("property feed failed", "property_id", prop.ID, "error", err)
				failures[i] = err
				return
			}
			results[i] = recs
		}(i, prop)
	}
	wg.Wait()

	failed := 0
	merged := make([]reservation.Reservation, 0)
	for i := range props {
		if failures[i] != nil {
			failed++
			continue
		}
		merged = append(merged, results[i]...)
	}

	if len(props) > 0 && failed == len(props) {
		return ErrAllPropertiesFailed
	}

	// The token compare must happen under the same lock as the commit,
	// or a newer reload could slip in between check and write.
	c.mu.Lock()
	if c.token.Load() != token {
		c.mu.Unlock()
		c.logger.Info("discarding stale reload", "token", token)
		return nil
	}
	c.reservations = merged
	c.state.Partial = failed > 0
	c.mu.Unlock()
	c.logger.Info("reservations loaded", "properties", len(props), "failed", failed, "reservations", len(merged))
	return nil
}
