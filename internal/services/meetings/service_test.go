package meetings

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"cfomatch/internal/adapters/memory"
	"cfomatch/internal/domain"
)

var fixed = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*Service, domain.Actor, domain.Actor, domain.Conversation) {
	t.Helper()
	store := memory.New()
	company := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleCompany}
	cfo := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleCFO}
	store.PutUser(domain.User{ID: company.UserID, Role: company.Role, Status: domain.UserActive})
	store.PutUser(domain.User{ID: cfo.UserID, Role: cfo.Role, Status: domain.UserActive})
	conv, err := store.GetOrCreateConversation(context.Background(), domain.Conversation{
		ID: uuid.NewString(), Participant1ID: company.UserID, Participant2ID: cfo.UserID, Stage: domain.StageNegotiation,
	})
	if err != nil {
		t.Fatal(err)
	}
	return New(store, func() time.Time { return fixed }), company, cfo, conv
}

func TestProposeAdvancesToMeeting(t *testing.T) {
	svc, company, cfo, conv := setup(t)
	m, got, err := svc.Propose(context.Background(), company, conv.ID, ProposeInput{ScheduledAt: fixed.Add(48 * time.Hour), DurationMinutes: 60})
	if err != nil {
		t.Fatalf("Propose: %v", err)
	}
	if m.Status != domain.MeetingScheduled || m.OrganizerID != company.UserID || m.ParticipantID != cfo.UserID {
		t.Fatalf("unexpected meeting %+v", m)
	}
	if got.Stage != domain.StageMeeting {
		t.Fatalf("expected meeting stage, got %s", got.Stage)
	}
}

func TestProposeRequiresFutureSlot(t *testing.T) {
	svc, company, _, conv := setup(t)
	for _, at := range []time.Time{fixed, fixed.Add(-time.Minute)} {
		_, _, err := svc.Propose(context.Background(), company, conv.ID, ProposeInput{ScheduledAt: at, DurationMinutes: 30})
		if !domain.IsKind(err, domain.KindValidation) {
			t.Fatalf("scheduledAt %v: expected validation error, got %v", at, err)
		}
	}
}

func TestProposeByOutsider(t *testing.T) {
	svc, _, _, conv := setup(t)
	outsider := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleCFO}
	svc.repo.(*memory.Store).PutUser(domain.User{ID: outsider.UserID, Role: domain.RoleCFO, Status: domain.UserActive})
	_, _, err := svc.Propose(context.Background(), outsider, conv.ID, ProposeInput{ScheduledAt: fixed.Add(time.Hour), DurationMinutes: 30})
	if !domain.IsKind(err, domain.KindForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestResolveIsTerminal(t *testing.T) {
	svc, company, cfo, conv := setup(t)
	ctx := context.Background()
	m, _, err := svc.Propose(ctx, company, conv.ID, ProposeInput{ScheduledAt: fixed.Add(time.Hour), DurationMinutes: 45})
	if err != nil {
		t.Fatal(err)
	}
	got, err := svc.Resolve(ctx, cfo, m.ID, ResolveInput{Outcome: domain.MeetingCompleted})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Status != domain.MeetingCompleted {
		t.Fatalf("expected completed, got %s", got.Status)
	}
	if _, err := svc.Resolve(ctx, company, m.ID, ResolveInput{Outcome: domain.MeetingCancelled}); !domain.IsKind(err, domain.KindConflict) {
		t.Fatalf("expected conflict on second resolution, got %v", err)
	}
	if _, err := svc.Resolve(ctx, company, m.ID, ResolveInput{Outcome: domain.MeetingScheduled}); !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error for outcome scheduled, got %v", err)
	}
}

func TestConcurrentResolveHasOneWinner(t *testing.T) {
	svc, company, cfo, conv := setup(t)
	ctx := context.Background()
	m, _, _ := svc.Propose(ctx, company, conv.ID, ProposeInput{ScheduledAt: fixed.Add(time.Hour), DurationMinutes: 30})

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, actor := range []domain.Actor{company, cfo} {
		wg.Add(1)
		go func(i int, actor domain.Actor) {
			defer wg.Done()
			_, results[i] = svc.Resolve(ctx, actor, m.ID, ResolveInput{Outcome: domain.MeetingCancelled})
		}(i, actor)
	}
	wg.Wait()
	var wins int
	for _, err := range results {
		if err == nil {
			wins++
		} else if !domain.IsKind(err, domain.KindConflict) {
			t.Fatalf("unexpected error %v", err)
		}
	}
	if wins != 1 {
		t.Fatalf("expected one winner, got %d", wins)
	}
}

func TestList(t *testing.T) {
	svc, company, cfo, conv := setup(t)
	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		if _, _, err := svc.Propose(ctx, cfo, conv.ID, ProposeInput{ScheduledAt: fixed.Add(time.Duration(i) * time.Hour), DurationMinutes: 30}); err != nil {
			t.Fatal(err)
		}
	}
	one := 2
	page, _ := domain.NewPageRequest(nil, &one)
	got, err := svc.List(ctx, company, conv.ID, page)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got.Pagination.Total != 3 || got.Pagination.TotalPages != 2 || len(got.Data) != 2 {
		t.Fatalf("unexpected page %+v (%d items)", got.Pagination, len(got.Data))
	}
	if !got.Data[0].ScheduledAt.Before(got.Data[1].ScheduledAt) {
		t.Fatalf("expected meetings ordered by slot")
	}
}
