package availability

import (
	"context"

	domain "github.com/winhire/interview-engine/internal/domain/availability"
)

type FindAvailablePanelistsInput struct {
	Date      string
	StartTime string
	EndTime   string
}

// AvailablePanelist is one covering window and who declared it.
type AvailablePanelist struct {
	WindowID   uint
	PanelistID uint
	Name       string
	Email      string
	Department string
	Date       string
	StartTime  string
	EndTime    string
}

type FindAvailablePanelists struct {
	repo domain.Repository
}

func NewFindAvailablePanelists(repo domain.Repository) *FindAvailablePanelists {
	return &FindAvailablePanelists{repo: repo}
}

// Execute lists every Available window on the date covering the slot. A
// panelist with several covering windows appears once per window.
func (uc *FindAvailablePanelists) Execute(
	ctx context.Context,
	in FindAvailablePanelistsInput,
) ([]AvailablePanelist, error) {

	req, err := parseSlot(in.Date, in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}

	rows, err := uc.repo.ListAvailableOnDate(ctx, req.Date)
	if err != nil {
		return nil, err
	}

	out := make([]AvailablePanelist, 0, len(rows))
	for _, row := range rows {
		w, err := domain.WindowOf(row.Window)
		if err != nil || w.Status != domain.StatusAvailable {
			continue
		}
		if !w.Covers(req.Start, req.End) {
			continue
		}
		out = append(out, AvailablePanelist{
			WindowID:   row.Window.ID,
			PanelistID: row.Window.PanelistID,
			Name:       row.Panelist.Name,
			Email:      row.Panelist.Email,
			Department: row.Panelist.Department,
			Date:       domain.FormatDate(row.Window.AvailableDate),
			StartTime:  row.Window.StartTime,
			EndTime:    row.Window.EndTime,
		})
	}
	return out, nil
}
