package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/winhire/interview-engine/internal/httperr"
	"github.com/winhire/interview-engine/internal/models"
)

// Request is a proposed interview slot on one calendar day.
type Request struct {
	PanelistID uint
	Date       time.Time
	Start      time.Duration
	End        time.Duration
}

// RequestAt converts an absolute interval into the calendar day and clock
// offsets observed in loc.
func RequestAt(panelistID uint, start time.Time, duration time.Duration, loc *time.Location) Request {
	local := start.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	offset := local.Sub(midnight)

	return Request{
		PanelistID: panelistID,
		Date:       DateOnly(local),
		Start:      offset,
		End:        offset + duration,
	}
}

// Validate decides whether req fits one of the windows declared for its
// date. windows must already be restricted to the panelist and the date.
// Any single covering Available window is sufficient.
func Validate(req Request, windows []models.PanelistAvailability) error {
	date := FormatDate(req.Date)

	if len(windows) == 0 {
		return httperr.SchedulingConflict(
			fmt.Sprintf("no availability declared for %s", date),
			map[string]any{
				"panelist_id":       req.PanelistID,
				"date":              date,
				"available_windows": []TimeSlot{},
			},
		)
	}

	open := make([]TimeSlot, 0, len(windows))
	for _, m := range windows {
		w, err := WindowOf(m)
		if err != nil || w.Status != StatusAvailable {
			continue
		}
		if w.Covers(req.Start, req.End) {
			return nil
		}
		open = append(open, w.Slot())
	}

	return httperr.SchedulingConflict(
		fmt.Sprintf("outside declared availability windows on %s", date),
		map[string]any{
			"panelist_id":       req.PanelistID,
			"date":              date,
			"available_windows": open,
		},
	)
}

// ===============================
// Checker
// ===============================

// Checker runs Validate against stored windows.
type Checker struct {
	repo Repository
	loc  *time.Location
}

func NewChecker(repo Repository, loc *time.Location) *Checker {
	if loc == nil {
		loc = time.UTC
	}
	return &Checker{repo: repo, loc: loc}
}

func (c *Checker) Location() *time.Location {
	return c.loc
}

// CheckInterval validates an interview starting at start and lasting
// duration. Windows never cross midnight, so neither may the interview.
func (c *Checker) CheckInterval(
	ctx context.Context,
	panelistID uint,
	start time.Time,
	duration time.Duration,
) error {
	req := RequestAt(panelistID, start, duration, c.loc)
	if req.End > day {
		return httperr.SchedulingConflict(
			fmt.Sprintf("interview on %s runs past midnight", FormatDate(req.Date)),
			map[string]any{
				"panelist_id": panelistID,
				"date":        FormatDate(req.Date),
			},
		)
	}
	return c.Check(ctx, req)
}

func (c *Checker) Check(ctx context.Context, req Request) error {
	windows, err := c.repo.ListByPanelistAndDate(ctx, req.PanelistID, req.Date)
	if err != nil {
		return fmt.Errorf("list availability: %w", err)
	}
	return Validate(req, windows)
}
