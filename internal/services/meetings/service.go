// Package meetings schedules calendar slots inside a conversation.
package meetings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"cfomatch/internal/domain"
	"cfomatch/internal/ports"
	"cfomatch/internal/services/guard"
	"cfomatch/internal/validate"
)

type Repository interface {
	ports.UserRepository
	ports.ConversationRepository
	ports.MeetingRepository
}

type Service struct {
	repo Repository
	now  ports.Clock
}

func New(repo Repository, now ports.Clock) *Service {
	return &Service{repo: repo, now: guard.Clock(now)}
}

type ProposeInput struct {
	ScheduledAt     time.Time `json:"scheduledAt" validate:"required"`
	DurationMinutes int       `json:"durationMinutes" validate:"gte=15,lte=480"`
}

type ResolveInput struct {
	Outcome domain.MeetingStatus `json:"outcome" validate:"required,oneof=completed cancelled"`
}

// Propose schedules a meeting with the other participant and moves the
// conversation to the meeting stage.
func (s *Service) Propose(ctx context.Context, actor domain.Actor, conversationID string, in ProposeInput) (domain.Meeting, domain.Conversation, error) {
	if err := validate.Struct(in); err != nil {
		return domain.Meeting{}, domain.Conversation{}, err
	}
	now := s.now()
	if !in.ScheduledAt.After(now) {
		return domain.Meeting{}, domain.Conversation{}, domain.FieldError("scheduledAt", "must be in the future")
	}
	if _, err := guard.Active(ctx, s.repo, actor); err != nil {
		return domain.Meeting{}, domain.Conversation{}, err
	}
	conv, err := s.repo.GetConversation(ctx, conversationID)
	if err != nil {
		return domain.Meeting{}, domain.Conversation{}, err
	}
	if !conv.HasParticipant(actor.UserID) {
		return domain.Meeting{}, domain.Conversation{}, domain.Forbidden("not a participant of conversation %s", conversationID)
	}

	m := domain.Meeting{
		ID:              uuid.NewString(),
		ConversationID:  conv.ID,
		OrganizerID:     actor.UserID,
		ParticipantID:   conv.Other(actor.UserID),
		ScheduledAt:     in.ScheduledAt.UTC(),
		DurationMinutes: in.DurationMinutes,
		Status:          domain.MeetingScheduled,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	conv, err = s.repo.CreateMeeting(ctx, m)
	if err != nil {
		return domain.Meeting{}, domain.Conversation{}, err
	}
	return m, conv, nil
}

// Resolve marks a scheduled meeting completed or cancelled. Both outcomes
// are terminal.
func (s *Service) Resolve(ctx context.Context, actor domain.Actor, meetingID string, in ResolveInput) (domain.Meeting, error) {
	if err := validate.Struct(in); err != nil {
		return domain.Meeting{}, err
	}
	if _, err := guard.Active(ctx, s.repo, actor); err != nil {
		return domain.Meeting{}, err
	}
	m, err := s.repo.GetMeeting(ctx, meetingID)
	if err != nil {
		return domain.Meeting{}, err
	}
	if actor.UserID != m.OrganizerID && actor.UserID != m.ParticipantID {
		return domain.Meeting{}, domain.Forbidden("not an attendee of meeting %s", meetingID)
	}
	if m.Status != domain.MeetingScheduled {
		return domain.Meeting{}, domain.Conflict("meeting is already %s", m.Status)
	}
	return s.repo.ResolveMeeting(ctx, meetingID, in.Outcome, s.now())
}

func (s *Service) List(ctx context.Context, actor domain.Actor, conversationID string, page domain.PageRequest) (domain.Page[domain.Meeting], error) {
	if _, err := guard.Active(ctx, s.repo, actor); err != nil {
		return domain.Page[domain.Meeting]{}, err
	}
	conv, err := s.repo.GetConversation(ctx, conversationID)
	if err != nil {
		return domain.Page[domain.Meeting]{}, err
	}
	if !conv.HasParticipant(actor.UserID) {
		return domain.Page[domain.Meeting]{}, domain.Forbidden("not a participant of conversation %s", conversationID)
	}
	items, total, err := s.repo.ListMeetings(ctx, conversationID, page)
	if err != nil {
		return domain.Page[domain.Meeting]{}, err
	}
	return domain.NewPage(items, page, total), nil
}
