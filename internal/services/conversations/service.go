// Package conversations tracks the negotiation stage of each company/CFO
// thread. Stages only move forward, and only through triggers.
package conversations

import (
	"context"

	"cfomatch/internal/domain"
	"cfomatch/internal/ports"
	"cfomatch/internal/services/guard"
)

type Repository interface {
	ports.UserRepository
	ports.ConversationRepository
}

type Service struct {
	repo Repository
	now  ports.Clock
}

func New(repo Repository, now ports.Clock) *Service {
	return &Service{repo: repo, now: guard.Clock(now)}
}

// AdvanceStage applies trigger to the conversation. A trigger whose stage is
// not above the current one leaves the conversation unchanged and is not an
// error, so retries are safe.
func (s *Service) AdvanceStage(ctx context.Context, conversationID string, trigger domain.Trigger) (domain.Conversation, error) {
	stage, ok := trigger.TargetStage()
	if !ok {
		return domain.Conversation{}, domain.FieldError("trigger", "unknown trigger")
	}
	return s.repo.AdvanceStage(ctx, conversationID, stage, s.now())
}

// RecordMessage is called by the message sender after a participant posts a
// message; it stamps the thread and moves it out of the initial stage.
func (s *Service) RecordMessage(ctx context.Context, actor domain.Actor, conversationID string) (domain.Conversation, error) {
	if _, err := s.Get(ctx, actor, conversationID); err != nil {
		return domain.Conversation{}, err
	}
	if err := s.repo.TouchConversation(ctx, conversationID, s.now()); err != nil {
		return domain.Conversation{}, err
	}
	return s.AdvanceStage(ctx, conversationID, domain.TriggerMessage)
}

// Get returns the conversation if actor participates in it.
func (s *Service) Get(ctx context.Context, actor domain.Actor, id string) (domain.Conversation, error) {
	if _, err := guard.Active(ctx, s.repo, actor); err != nil {
		return domain.Conversation{}, err
	}
	c, err := s.repo.GetConversation(ctx, id)
	if err != nil {
		return domain.Conversation{}, err
	}
	if !c.HasParticipant(actor.UserID) {
		return domain.Conversation{}, domain.Forbidden("not a participant of conversation %s", id)
	}
	return c, nil
}

func (s *Service) List(ctx context.Context, actor domain.Actor, page domain.PageRequest) (domain.Page[domain.Conversation], error) {
	if _, err := guard.Active(ctx, s.repo, actor); err != nil {
		return domain.Page[domain.Conversation]{}, err
	}
	items, total, err := s.repo.ListConversations(ctx, actor.UserID, page)
	if err != nil {
		return domain.Page[domain.Conversation]{}, err
	}
	return domain.NewPage(items, page, total), nil
}
