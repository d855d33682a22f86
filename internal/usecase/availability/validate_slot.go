package availability

import (
	"context"

	domain "github.com/winhire/interview-engine/internal/domain/availability"
	"github.com/winhire/interview-engine/internal/httperr"
)

type ValidateSlotInput struct {
	PanelistID uint
	Date       string
	StartTime  string
	EndTime    string
}

// SlotCheck is the outcome of a pre-check. A conflict is a result here,
// not an error.
type SlotCheck struct {
	Valid            bool
	Reason           string
	Date             string
	AvailableWindows []domain.TimeSlot
}

type ValidateSlot struct {
	checker *domain.Checker
	repo    domain.Repository
}

func NewValidateSlot(repo domain.Repository, checker *domain.Checker) *ValidateSlot {
	return &ValidateSlot{checker: checker, repo: repo}
}

func (uc *ValidateSlot) Execute(ctx context.Context, in ValidateSlotInput) (SlotCheck, error) {
	req, err := parseSlot(in.Date, in.StartTime, in.EndTime)
	if err != nil {
		return SlotCheck{}, err
	}
	req.PanelistID = in.PanelistID

	if _, err := uc.repo.GetPanelist(ctx, in.PanelistID); err != nil {
		return SlotCheck{}, err
	}

	date := domain.FormatDate(req.Date)
	err = uc.checker.Check(ctx, req)
	if err == nil {
		return SlotCheck{Valid: true, Date: date}, nil
	}

	e, ok := httperr.As(err)
	if !ok || e.Kind != httperr.KindConflict {
		return SlotCheck{}, err
	}

	slots, _ := e.Details["available_windows"].([]domain.TimeSlot)
	return SlotCheck{
		Reason:           e.Message,
		Date:             date,
		AvailableWindows: slots,
	}, nil
}

func parseSlot(date, start, end string) (domain.Request, error) {
	d, err := domain.ParseDate("date", date)
	if err != nil {
		return domain.Request{}, err
	}
	s, err := domain.ParseClock("start_time", start)
	if err != nil {
		return domain.Request{}, err
	}
	e, err := domain.ParseClock("end_time", end)
	if err != nil {
		return domain.Request{}, err
	}
	if err := domain.ValidateRange(s, e); err != nil {
		return domain.Request{}, err
	}
	return domain.Request{Date: d, Start: s, End: e}, nil
}
