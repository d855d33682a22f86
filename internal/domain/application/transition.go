package application

import (
	"fmt"
	"strings"

	"github.com/winhire/interview-engine/internal/httperr"
)

type edge struct {
	to Status
	// needsCompletedInterview gates the out-of-band Selected/OnHold decision.
	needsCompletedInterview bool
}

var graph = map[Status][]edge{
	StatusApplied:   {{to: StatusScreening}},
	StatusScreening: {{to: StatusInterview}},
	StatusInterview: {
		{to: StatusOffered},
		{to: StatusRejected},
		{to: StatusSelected, needsCompletedInterview: true},
		{to: StatusOnHold, needsCompletedInterview: true},
	},
	StatusOnHold: {
		{to: StatusOffered},
		{to: StatusRejected},
		{to: StatusSelected, needsCompletedInterview: true},
	},
	StatusSelected: {{to: StatusOffered}},
	StatusOffered: {
		{to: StatusAccepted},
		{to: StatusRejected},
	},
}

// CanTransition validates from -> to against the intended pipeline.
func CanTransition(from, to Status, hasCompletedInterview bool) error {
	for _, e := range graph[from] {
		if e.to != to {
			continue
		}
		if e.needsCompletedInterview && !hasCompletedInterview {
			return httperr.Conflict("no_completed_interview",
				fmt.Sprintf("%s requires at least one completed interview", to))
		}
		return nil
	}
	return httperr.Conflict("invalid_transition",
		fmt.Sprintf("cannot move application from %s to %s", from, to))
}

// NextStatuses lists the edges leaving from, for client display.
func NextStatuses(from Status) []Status {
	out := make([]Status, 0, len(graph[from]))
	for _, e := range graph[from] {
		out = append(out, e.to)
	}
	return out
}

// ===============================
// Decisions
// ===============================

type Decision string

const (
	DecisionSelect Decision = "Select"
	DecisionHold   Decision = "Hold"
	DecisionReject Decision = "Reject"
)

func ParseDecision(s string) (Decision, error) {
	for _, d := range []Decision{DecisionSelect, DecisionHold, DecisionReject} {
		if strings.EqualFold(strings.TrimSpace(s), string(d)) {
			return d, nil
		}
	}
	return "", httperr.Validation("decision", "decision must be one of Select, Hold, Reject")
}

func (d Decision) Target() Status {
	switch d {
	case DecisionSelect:
		return StatusSelected
	case DecisionHold:
		return StatusOnHold
	}
	return StatusRejected
}
