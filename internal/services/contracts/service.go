// Package contracts turns an accepted application into a binding contract
// with computed fee terms and ends it by completion or termination.
package contracts

import (
	"context"

	"github.com/google/uuid"

	"cfomatch/internal/domain"
	"cfomatch/internal/fees"
	"cfomatch/internal/ports"
	"cfomatch/internal/services/guard"
	"cfomatch/internal/validate"
)

type Repository interface {
	ports.UserRepository
	ports.ApplicationRepository
	ports.ContractRepository
}

type Service struct {
	repo Repository
	now  ports.Clock
}

func New(repo Repository, now ports.Clock) *Service {
	return &Service{repo: repo, now: guard.Clock(now)}
}

type CreateInput struct {
	ApplicationID  string          `json:"applicationId" validate:"required,uuid"`
	FeeBasis       domain.FeeBasis `json:"feeBasis" validate:"required,oneof=hourly monthly"`
	Rate           float64         `json:"rate" validate:"gt=0,lte=9999999999.99"`
	DurationMonths int             `json:"durationMonths" validate:"gte=1,lte=120"`
}

type TerminateInput struct {
	Reason string `json:"reason" validate:"required,max=1000"`
}

// Create materializes an accepted application into an active contract and
// moves the pair's conversation to the contract stage.
func (s *Service) Create(ctx context.Context, actor domain.Actor, in CreateInput) (domain.Contract, domain.Conversation, error) {
	if err := validate.Struct(in); err != nil {
		return domain.Contract{}, domain.Conversation{}, err
	}
	fee, err := fees.ComputeContractFee(in.FeeBasis, in.Rate, in.DurationMonths)
	if err != nil {
		return domain.Contract{}, domain.Conversation{}, err
	}
	if _, err := guard.Active(ctx, s.repo, actor); err != nil {
		return domain.Contract{}, domain.Conversation{}, err
	}
	app, err := s.repo.GetApplication(ctx, in.ApplicationID)
	if err != nil {
		return domain.Contract{}, domain.Conversation{}, err
	}
	if !app.HasParty(actor.UserID) {
		return domain.Contract{}, domain.Conversation{}, domain.Forbidden("not a party to application %s", app.ID)
	}
	if app.Status != domain.ApplicationAccepted {
		return domain.Contract{}, domain.Conversation{}, domain.Conflict("application is %s, not accepted", app.Status)
	}

	now := s.now()
	c := domain.Contract{
		ID:             uuid.NewString(),
		ApplicationID:  app.ID,
		CompanyID:      app.CompanyID,
		CFOID:          app.CFOID,
		FeeBasis:       in.FeeBasis,
		Rate:           in.Rate,
		DurationMonths: in.DurationMonths,
		FeePercentage:  fees.RecurringPercent,
		FeeAmount:      fee.BaseFee,
		RecurringFee:   fee.RecurringFeePerMonth,
		Status:         domain.ContractActive,
		StartedAt:      now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	seed := domain.Conversation{
		ID:             uuid.NewString(),
		Participant1ID: app.CompanyID,
		Participant2ID: app.CFOID,
		Stage:          domain.StageInitial,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	conv, err := s.repo.CreateContract(ctx, c, seed)
	if err != nil {
		return domain.Contract{}, domain.Conversation{}, err
	}
	return c, conv, nil
}

// Terminate ends an active contract early. Either party may terminate; no
// new invoices can be created afterwards.
func (s *Service) Terminate(ctx context.Context, actor domain.Actor, id string, in TerminateInput) (domain.Contract, error) {
	if err := validate.Struct(in); err != nil {
		return domain.Contract{}, err
	}
	return s.finish(ctx, actor, id, domain.ContractTerminated, in.Reason)
}

// Complete closes an active contract normally. Completion is what opens
// reviews for both parties.
func (s *Service) Complete(ctx context.Context, actor domain.Actor, id string) (domain.Contract, error) {
	return s.finish(ctx, actor, id, domain.ContractCompleted, "")
}

func (s *Service) finish(ctx context.Context, actor domain.Actor, id string, to domain.ContractStatus, reason string) (domain.Contract, error) {
	c, err := s.Get(ctx, actor, id)
	if err != nil {
		return domain.Contract{}, err
	}
	if c.Status != domain.ContractActive {
		return domain.Contract{}, domain.Conflict("contract is already %s", c.Status)
	}
	return s.repo.FinishContract(ctx, id, to, reason, s.now())
}

func (s *Service) Get(ctx context.Context, actor domain.Actor, id string) (domain.Contract, error) {
	if _, err := guard.Active(ctx, s.repo, actor); err != nil {
		return domain.Contract{}, err
	}
	c, err := s.repo.GetContract(ctx, id)
	if err != nil {
		return domain.Contract{}, err
	}
	if !c.HasParty(actor.UserID) {
		return domain.Contract{}, domain.Forbidden("not a party to contract %s", id)
	}
	return c, nil
}

func (s *Service) List(ctx context.Context, actor domain.Actor, page domain.PageRequest) (domain.Page[domain.Contract], error) {
	if _, err := guard.Active(ctx, s.repo, actor); err != nil {
		return domain.Page[domain.Contract]{}, err
	}
	items, total, err := s.repo.ListContracts(ctx, actor.UserID, page)
	if err != nil {
		return domain.Page[domain.Contract]{}, err
	}
	return domain.NewPage(items, page, total), nil
}
