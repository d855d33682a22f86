package application

import (
	"context"
	"strings"

	"github.com/winhire/interview-engine/internal/audit"
	domain "github.com/winhire/interview-engine/internal/domain/application"
	"github.com/winhire/interview-engine/internal/domain/identity"
	"github.com/winhire/interview-engine/internal/httperr"
	"github.com/winhire/interview-engine/internal/logger"
	"github.com/winhire/interview-engine/internal/models"
	"github.com/winhire/interview-engine/internal/notify"
	"github.com/winhire/interview-engine/internal/timezone"
)

// UpdateApplicationStatus writes any non-empty status. It is the permissive
// path; Transition is the guarded one.
type UpdateApplicationStatus struct {
	repo     domain.Repository
	clock    timezone.Clock
	notifier notify.Publisher
	audit    audit.Sink
	log      logger.Logger
}

func NewUpdateApplicationStatus(
	repo domain.Repository,
	clock timezone.Clock,
	notifier notify.Publisher,
	audit audit.Sink,
	log logger.Logger,
) *UpdateApplicationStatus {
	return &UpdateApplicationStatus{
		repo:     repo,
		clock:    clock,
		notifier: notifier,
		audit:    audit,
		log:      log,
	}
}

func (uc *UpdateApplicationStatus) Execute(
	ctx context.Context,
	actor identity.Actor,
	id uint,
	status string,
) (*models.Application, error) {

	status = strings.TrimSpace(status)
	if status == "" {
		return nil, httperr.Validation("status", "status is required")
	}

	app, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.apply(ctx, actor, app, status)
}

// apply persists status on a loaded application and fires the selection
// notification when it enters Selected.
func (uc *UpdateApplicationStatus) apply(
	ctx context.Context,
	actor identity.Actor,
	app *models.Application,
	status string,
) (*models.Application, error) {

	previous := app.Status
	now := uc.clock.Now()

	if err := uc.repo.UpdateStatus(ctx, app.ID, status, now); err != nil {
		return nil, err
	}
	app.Status = status
	app.LastUpdated = &now

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ptr(actor.UserID),
		Action:   "application_status_changed",
		Entity:   "application",
		EntityID: audit.Ptr(app.ID),
		Metadata: map[string]any{
			"from": previous,
			"to":   status,
		},
	})

	if domain.EntersSelected(previous, status) {
		uc.notifySelected(ctx, app.ID)
	}

	return app, nil
}

// notifySelected never fails the status change.
func (uc *UpdateApplicationStatus) notifySelected(ctx context.Context, id uint) {
	app, err := uc.repo.GetWithParties(ctx, id)
	if err != nil {
		uc.log.Warn("selection notification skipped: application lookup failed", map[string]interface{}{
			"application_id": id,
			"error":          err,
		})
		return
	}

	msg, err := notify.SelectionMessage(app)
	if err != nil {
		uc.log.Warn("selection notification skipped", map[string]interface{}{
			"application_id": id,
			"error":          err,
		})
		return
	}

	uc.notifier.Publish(msg)
	uc.log.Info("selection notification queued", map[string]interface{}{
		"application_id": id,
		"message_id":     msg.ID,
	})
}
