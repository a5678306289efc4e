// Package reviews accepts ratings once a contract has completed. Reviews
// are append-only: one per reviewer per contract, never edited.
package reviews

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"cfomatch/internal/domain"
	"cfomatch/internal/ports"
	"cfomatch/internal/services/guard"
	"cfomatch/internal/validate"
)

// Categories each reviewer must rate, keyed by the reviewer's role.
var Categories = map[domain.Role][]string{
	domain.RoleCompany: {"expertise", "communication", "reliability", "value"},
	domain.RoleCFO:     {"communication", "clarity", "responsiveness", "payment"},
}

type Repository interface {
	ports.UserRepository
	ports.ContractRepository
	ports.ReviewRepository
}

type Service struct {
	repo Repository
	now  ports.Clock
}

func New(repo Repository, now ports.Clock) *Service {
	return &Service{repo: repo, now: guard.Clock(now)}
}

type SubmitInput struct {
	OverallRating   int            `json:"overallRating" validate:"gte=1,lte=5"`
	CategoryRatings map[string]int `json:"categoryRatings" validate:"required,dive,gte=1,lte=5"`
	Comment         string         `json:"comment" validate:"min=10,max=500"`
}

// Submit records actor's review of the other party on a completed contract.
func (s *Service) Submit(ctx context.Context, actor domain.Actor, contractID string, in SubmitInput) (domain.Review, error) {
	in.Comment = strings.TrimSpace(in.Comment)
	if err := validate.Struct(in); err != nil {
		return domain.Review{}, err
	}
	if err := checkCategories(actor.Role, in.CategoryRatings); err != nil {
		return domain.Review{}, err
	}
	if _, err := guard.Active(ctx, s.repo, actor); err != nil {
		return domain.Review{}, err
	}
	c, err := s.repo.GetContract(ctx, contractID)
	if err != nil {
		return domain.Review{}, err
	}
	if !c.HasParty(actor.UserID) {
		return domain.Review{}, domain.Forbidden("not a party to contract %s", contractID)
	}
	if c.Status != domain.ContractCompleted {
		return domain.Review{}, domain.Conflict("contract is %s; reviews open once it is completed", c.Status)
	}

	now := s.now()
	r := domain.Review{
		ID:              uuid.NewString(),
		ContractID:      c.ID,
		ReviewerID:      actor.UserID,
		RevieweeID:      c.Counterparty(actor.UserID),
		OverallRating:   in.OverallRating,
		CategoryRatings: in.CategoryRatings,
		Comment:         in.Comment,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.CreateReview(ctx, r); err != nil {
		return domain.Review{}, err
	}
	return r, nil
}

// List returns the reviews written about a user, newest first. Reviews are
// public to any active user.
func (s *Service) List(ctx context.Context, actor domain.Actor, revieweeID string, page domain.PageRequest) (domain.Page[domain.Review], error) {
	if _, err := guard.Active(ctx, s.repo, actor); err != nil {
		return domain.Page[domain.Review]{}, err
	}
	items, total, err := s.repo.ListReviews(ctx, revieweeID, page)
	if err != nil {
		return domain.Page[domain.Review]{}, err
	}
	return domain.NewPage(items, page, total), nil
}

func checkCategories(reviewer domain.Role, ratings map[string]int) error {
	required := Categories[reviewer]
	fields := map[string]string{}
	for _, cat := range required {
		if _, ok := ratings[cat]; !ok {
			fields["categoryRatings."+cat] = "is required"
		}
	}
	known := make(map[string]bool, len(required))
	for _, cat := range required {
		known[cat] = true
	}
	var unknown []string
	for cat := range ratings {
		if !known[cat] {
			unknown = append(unknown, cat)
		}
	}
	sort.Strings(unknown)
	for _, cat := range unknown {
		fields["categoryRatings."+cat] = "is not a rating category"
	}
	if len(fields) > 0 {
		return domain.ValidationError("invalid category ratings", fields)
	}
	return nil
}
