package notify

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/winhire/interview-engine/internal/models"
	"github.com/winhire/interview-engine/internal/validators"
)

const KindCandidateSelected = "candidate_selected"

type Message struct {
	ID      string
	Kind    string
	To      string
	Subject string
	Body    string

	// Attributes travel with structured channels such as SNS.
	Attributes map[string]string
}

// Notifier delivers a message over one channel.
type Notifier interface {
	Name() string
	Notify(ctx context.Context, msg Message) error
}

// Publisher accepts messages for best-effort delivery.
type Publisher interface {
	Publish(msg Message)
}

// SelectionMessage addresses the candidate of app. The candidate and job
// must be loaded.
func SelectionMessage(app *models.Application) (Message, error) {
	if app.Candidate == nil || app.Candidate.Email == "" {
		return Message{}, fmt.Errorf("application %d has no candidate e-mail", app.ID)
	}
	if !validators.IsEmail(app.Candidate.Email) {
		return Message{}, fmt.Errorf("application %d: candidate e-mail %q is not deliverable", app.ID, app.Candidate.Email)
	}

	jobTitle := "the position"
	if app.Job != nil && app.Job.Title != "" {
		jobTitle = app.Job.Title
	}

	return Message{
		ID:      uuid.NewString(),
		Kind:    KindCandidateSelected,
		To:      app.Candidate.Email,
		Subject: fmt.Sprintf("Your application for %s", jobTitle),
		Body: fmt.Sprintf(
			"Dear %s,\n\nWe are pleased to let you know that you have been selected for %s. "+
				"Our recruiting team will contact you shortly with next steps.\n\nBest regards,\nTalent Acquisition",
			app.Candidate.Name, jobTitle,
		),
		Attributes: map[string]string{
			"kind":           KindCandidateSelected,
			"application_id": fmt.Sprint(app.ID),
			"candidate_id":   fmt.Sprint(app.CandidateID),
			"job_id":         fmt.Sprint(app.JobID),
		},
	}, nil
}
