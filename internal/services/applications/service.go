// Package applications manages scouts: directional proposals between a
// company and a CFO that, once accepted, open a conversation.
package applications

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"cfomatch/internal/domain"
	"cfomatch/internal/ports"
	"cfomatch/internal/services/guard"
	"cfomatch/internal/validate"
)

type Repository interface {
	ports.UserRepository
	ports.ApplicationRepository
}

type Service struct {
	repo Repository
	now  ports.Clock
}

func New(repo Repository, now ports.Clock) *Service {
	return &Service{repo: repo, now: guard.Clock(now)}
}

type CreateInput struct {
	CompanyID    string           `json:"companyId" validate:"required,uuid"`
	CFOID        string           `json:"cfoId" validate:"required,uuid,nefield=CompanyID"`
	Direction    domain.Direction `json:"direction" validate:"required,oneof=company_to_cfo cfo_to_company"`
	CoverMessage string           `json:"coverMessage" validate:"max=2000"`
}

type Decision string

const (
	Accept Decision = "accept"
	Reject Decision = "reject"
)

type RespondInput struct {
	Decision Decision `json:"decision" validate:"required,oneof=accept reject"`
}

// Create opens a pending application. Only the initiating side of the
// direction may create it, and only one pending application may exist for a
// company/CFO pair.
func (s *Service) Create(ctx context.Context, actor domain.Actor, in CreateInput) (domain.Application, error) {
	if err := validate.Struct(in); err != nil {
		return domain.Application{}, err
	}
	if actor.Role != in.Direction.Initiator() {
		return domain.Application{}, domain.Forbidden("a %s cannot send a %s application", actor.Role, in.Direction)
	}
	initiatorID, recipientID := in.CompanyID, in.CFOID
	if in.Direction == domain.CFOToCompany {
		initiatorID, recipientID = in.CFOID, in.CompanyID
	}
	if actor.UserID != initiatorID {
		return domain.Application{}, domain.Forbidden("applications can only be sent on your own behalf")
	}
	if _, err := guard.Active(ctx, s.repo, actor); err != nil {
		return domain.Application{}, err
	}
	recipient, err := s.repo.GetUser(ctx, recipientID)
	if err != nil {
		return domain.Application{}, err
	}
	wantRole := domain.RoleCFO
	if in.Direction == domain.CFOToCompany {
		wantRole = domain.RoleCompany
	}
	if recipient.Role != wantRole {
		return domain.Application{}, domain.FieldError(fieldFor(wantRole), fmt.Sprintf("user is not a %s", wantRole))
	}
	if recipient.Status != domain.UserActive {
		return domain.Application{}, domain.Conflict("recipient %s is %s", recipient.ID, recipient.Status)
	}

	now := s.now()
	app := domain.Application{
		ID:           uuid.NewString(),
		CompanyID:    in.CompanyID,
		CFOID:        in.CFOID,
		Direction:    in.Direction,
		Status:       domain.ApplicationPending,
		CoverMessage: in.CoverMessage,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.CreateApplication(ctx, app); err != nil {
		return domain.Application{}, err
	}
	return app, nil
}

// Respond accepts or rejects a pending application. Accepting also opens (or
// reuses) the pair's conversation at the negotiation stage. A response to an
// application that is no longer pending is a conflict, including the loser
// of two concurrent responses.
func (s *Service) Respond(ctx context.Context, actor domain.Actor, id string, in RespondInput) (domain.Application, *domain.Conversation, error) {
	if err := validate.Struct(in); err != nil {
		return domain.Application{}, nil, err
	}
	if _, err := guard.Active(ctx, s.repo, actor); err != nil {
		return domain.Application{}, nil, err
	}
	app, err := s.repo.GetApplication(ctx, id)
	if err != nil {
		return domain.Application{}, nil, err
	}
	if app.Recipient() != actor.UserID {
		return domain.Application{}, nil, domain.Forbidden("only the recipient can respond to application %s", id)
	}
	if app.Status != domain.ApplicationPending {
		return domain.Application{}, nil, domain.Conflict("application is already %s", app.Status)
	}

	now := s.now()
	if in.Decision == Reject {
		app, err = s.repo.RejectApplication(ctx, id, now)
		return app, nil, err
	}
	seed := domain.Conversation{
		ID:             uuid.NewString(),
		Participant1ID: app.CompanyID,
		Participant2ID: app.CFOID,
		Stage:          domain.StageInitial,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	app, conv, err := s.repo.AcceptApplication(ctx, id, seed, now)
	if err != nil {
		return domain.Application{}, nil, err
	}
	return app, &conv, nil
}

func (s *Service) Get(ctx context.Context, actor domain.Actor, id string) (domain.Application, error) {
	if _, err := guard.Active(ctx, s.repo, actor); err != nil {
		return domain.Application{}, err
	}
	app, err := s.repo.GetApplication(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	if !app.HasParty(actor.UserID) {
		return domain.Application{}, domain.Forbidden("not a party to application %s", id)
	}
	return app, nil
}

// List returns the actor's applications in either direction, newest first.
func (s *Service) List(ctx context.Context, actor domain.Actor, status domain.ApplicationStatus, page domain.PageRequest) (domain.Page[domain.Application], error) {
	switch status {
	case "", domain.ApplicationPending, domain.ApplicationAccepted, domain.ApplicationRejected:
	default:
		return domain.Page[domain.Application]{}, domain.FieldError("status", "must be one of pending accepted rejected")
	}
	if _, err := guard.Active(ctx, s.repo, actor); err != nil {
		return domain.Page[domain.Application]{}, err
	}
	items, total, err := s.repo.ListApplications(ctx, actor.UserID, status, page)
	if err != nil {
		return domain.Page[domain.Application]{}, err
	}
	return domain.NewPage(items, page, total), nil
}

func fieldFor(role domain.Role) string {
	if role == domain.RoleCompany {
		return "companyId"
	}
	return "cfoId"
}
