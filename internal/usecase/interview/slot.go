package interview

import (
	"context"
	"time"

	"github.com/winhire/interview-engine/internal/httperr"
	"github.com/winhire/interview-engine/internal/logger"
)

// SlotChecker validates an interview interval against the panelist's
// declared availability.
type SlotChecker interface {
	Location() *time.Location
	CheckInterval(ctx context.Context, panelistID uint, start time.Time, duration time.Duration) error
}

// checkSlot runs the availability check. With force a scheduling conflict
// is logged and ignored; store errors always fail.
func checkSlot(
	ctx context.Context,
	checker SlotChecker,
	log logger.Logger,
	panelistID uint,
	start time.Time,
	duration time.Duration,
	force bool,
) error {

	err := checker.CheckInterval(ctx, panelistID, start, duration)
	if err == nil {
		return nil
	}
	if !force || !httperr.IsConflict(err) {
		return err
	}

	log.Warn("scheduling outside declared availability", map[string]interface{}{
		"panelist_id": panelistID,
		"start":       start,
		"reason":      err.Error(),
	})
	return nil
}
