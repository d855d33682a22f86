package application

import (
	"context"

	domain "github.com/winhire/interview-engine/internal/domain/application"
	"github.com/winhire/interview-engine/internal/domain/identity"
	"github.com/winhire/interview-engine/internal/httperr"
	"github.com/winhire/interview-engine/internal/models"
)

// TransitionApplication moves an application along the hiring pipeline,
// refusing edges the pipeline does not define.
type TransitionApplication struct {
	repo    domain.Repository
	updater *UpdateApplicationStatus
}

func NewTransitionApplication(
	repo domain.Repository,
	updater *UpdateApplicationStatus,
) *TransitionApplication {
	return &TransitionApplication{
		repo:    repo,
		updater: updater,
	}
}

func (uc *TransitionApplication) Execute(
	ctx context.Context,
	actor identity.Actor,
	id uint,
	to domain.Status,
) (*models.Application, error) {

	if to == "" {
		return nil, httperr.Validation("status", "status is required")
	}
	if !actor.CanDecide() {
		return nil, httperr.Forbidden("only recruiters, hiring managers and admins may move applications")
	}

	app, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hasCompleted, err := uc.repo.HasCompletedInterview(ctx, app.ID)
	if err != nil {
		return nil, err
	}
	if err := domain.CanTransition(domain.Status(app.Status), to, hasCompleted); err != nil {
		return nil, err
	}

	return uc.updater.apply(ctx, actor, app, string(to))
}

// ===============================
// Decision
// ===============================

// DecideApplication records a human Select, Hold or Reject decision.
type DecideApplication struct {
	transition *TransitionApplication
}

func NewDecideApplication(transition *TransitionApplication) *DecideApplication {
	return &DecideApplication{transition: transition}
}

func (uc *DecideApplication) Execute(
	ctx context.Context,
	actor identity.Actor,
	id uint,
	decision string,
) (*models.Application, error) {

	d, err := domain.ParseDecision(decision)
	if err != nil {
		return nil, err
	}
	return uc.transition.Execute(ctx, actor, id, d.Target())
}
