// Package memory is an in-process store with the same atomicity and conflict
// semantics as the postgres adapter. Every method holds one lock for its
// whole check-and-set, which serializes racing writers.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"cfomatch/internal/domain"
	"cfomatch/internal/fees"
)

type Store struct {
	mu            sync.Mutex
	users         map[string]domain.User
	applications  map[string]domain.Application
	conversations map[string]domain.Conversation
	meetings      map[string]domain.Meeting
	contracts     map[string]domain.Contract
	invoices      map[string]domain.Invoice
	payments      map[string]domain.Payment
	reviews       map[string]domain.Review
}

func New() *Store {
	return &Store{
		users:         map[string]domain.User{},
		applications:  map[string]domain.Application{},
		conversations: map[string]domain.Conversation{},
		meetings:      map[string]domain.Meeting{},
		contracts:     map[string]domain.Contract{},
		invoices:      map[string]domain.Invoice{},
		payments:      map[string]domain.Payment{},
		reviews:       map[string]domain.Review{},
	}
}

// PutUser registers a user. Registration lives outside the engine, so this
// is how tests and local runs seed identities.
func (s *Store) PutUser(u domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

func (s *Store) GetUser(_ context.Context, id string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return u, domain.NotFound("user %s not found", id)
	}
	return u, nil
}

// Applications

func (s *Store) CreateApplication(_ context.Context, app domain.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.applications {
		if a.Status == domain.ApplicationPending && a.CompanyID == app.CompanyID && a.CFOID == app.CFOID {
			return domain.Conflict("a pending application already exists for this pair")
		}
	}
	s.applications[app.ID] = app
	return nil
}

func (s *Store) GetApplication(_ context.Context, id string) (domain.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.applications[id]
	if !ok {
		return a, domain.NotFound("application %s not found", id)
	}
	return a, nil
}

func (s *Store) ListApplications(_ context.Context, userID string, status domain.ApplicationStatus, page domain.PageRequest) ([]domain.Application, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Application
	for _, a := range s.applications {
		if a.HasParty(userID) && (status == "" || a.Status == status) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return newer(out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID) })
	return window(out, page), len(out), nil
}

func (s *Store) AcceptApplication(_ context.Context, id string, seed domain.Conversation, at time.Time) (domain.Application, domain.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.applications[id]
	if !ok {
		return a, domain.Conversation{}, domain.NotFound("application %s not found", id)
	}
	if a.Status != domain.ApplicationPending {
		return a, domain.Conversation{}, domain.Conflict("application is already %s", a.Status)
	}
	a.Status = domain.ApplicationAccepted
	a.UpdatedAt = at
	s.applications[id] = a
	c := s.getOrCreateConversationLocked(seed)
	c = s.advanceLocked(c.ID, domain.StageNegotiation, at)
	return a, c, nil
}

func (s *Store) RejectApplication(_ context.Context, id string, at time.Time) (domain.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.applications[id]
	if !ok {
		return a, domain.NotFound("application %s not found", id)
	}
	if a.Status != domain.ApplicationPending {
		return a, domain.Conflict("application is already %s", a.Status)
	}
	a.Status = domain.ApplicationRejected
	a.UpdatedAt = at
	s.applications[id] = a
	return a, nil
}

// Conversations

func (s *Store) GetOrCreateConversation(_ context.Context, seed domain.Conversation) (domain.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrCreateConversationLocked(seed), nil
}

func (s *Store) getOrCreateConversationLocked(seed domain.Conversation) domain.Conversation {
	p1, p2 := domain.OrderedPair(seed.Participant1ID, seed.Participant2ID)
	for _, c := range s.conversations {
		if c.Participant1ID == p1 && c.Participant2ID == p2 {
			return c
		}
	}
	seed.Participant1ID, seed.Participant2ID = p1, p2
	if seed.Stage == "" {
		seed.Stage = domain.StageInitial
	}
	s.conversations[seed.ID] = seed
	return seed
}

func (s *Store) GetConversation(_ context.Context, id string) (domain.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.conversations[id]
	if !ok {
		return c, domain.NotFound("conversation %s not found", id)
	}
	return c, nil
}

func (s *Store) ListConversations(_ context.Context, userID string, page domain.PageRequest) ([]domain.Conversation, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Conversation
	for _, c := range s.conversations {
		if c.HasParticipant(userID) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return newer(activity(out[i]), activity(out[j]), out[i].ID, out[j].ID) })
	return window(out, page), len(out), nil
}

func (s *Store) AdvanceStage(_ context.Context, id string, stage domain.Stage, at time.Time) (domain.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.conversations[id]; !ok {
		return domain.Conversation{}, domain.NotFound("conversation %s not found", id)
	}
	return s.advanceLocked(id, stage, at), nil
}

func (s *Store) advanceLocked(id string, stage domain.Stage, at time.Time) domain.Conversation {
	c := s.conversations[id]
	if stage.Rank() > c.Stage.Rank() {
		c.Stage = stage
		c.UpdatedAt = at
		s.conversations[id] = c
	}
	return c
}

func (s *Store) TouchConversation(_ context.Context, id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.conversations[id]
	if !ok {
		return domain.NotFound("conversation %s not found", id)
	}
	c.LastMessageAt = &at
	c.UpdatedAt = at
	s.conversations[id] = c
	return nil
}

// Meetings

func (s *Store) CreateMeeting(_ context.Context, m domain.Meeting) (domain.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.conversations[m.ConversationID]; !ok {
		return domain.Conversation{}, domain.NotFound("conversation %s not found", m.ConversationID)
	}
	s.meetings[m.ID] = m
	return s.advanceLocked(m.ConversationID, domain.StageMeeting, m.CreatedAt), nil
}

func (s *Store) GetMeeting(_ context.Context, id string) (domain.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.meetings[id]
	if !ok {
		return m, domain.NotFound("meeting %s not found", id)
	}
	return m, nil
}

func (s *Store) ListMeetings(_ context.Context, conversationID string, page domain.PageRequest) ([]domain.Meeting, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Meeting
	for _, m := range s.meetings {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ScheduledAt.Equal(out[j].ScheduledAt) {
			return out[i].ScheduledAt.Before(out[j].ScheduledAt)
		}
		return out[i].ID < out[j].ID
	})
	return window(out, page), len(out), nil
}

func (s *Store) ResolveMeeting(_ context.Context, id string, to domain.MeetingStatus, at time.Time) (domain.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.meetings[id]
	if !ok {
		return m, domain.NotFound("meeting %s not found", id)
	}
	if m.Status != domain.MeetingScheduled {
		return m, domain.Conflict("meeting is already %s", m.Status)
	}
	m.Status = to
	m.UpdatedAt = at
	s.meetings[id] = m
	return m, nil
}

// Contracts

func (s *Store) CreateContract(_ context.Context, c domain.Contract, seed domain.Conversation) (domain.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.applications[c.ApplicationID]
	if !ok {
		return domain.Conversation{}, domain.NotFound("application %s not found", c.ApplicationID)
	}
	if app.Status != domain.ApplicationAccepted {
		return domain.Conversation{}, domain.Conflict("application is %s, not accepted", app.Status)
	}
	for _, existing := range s.contracts {
		if existing.ApplicationID == c.ApplicationID {
			return domain.Conversation{}, domain.Conflict("application already has a contract")
		}
	}
	s.contracts[c.ID] = c
	conv := s.getOrCreateConversationLocked(seed)
	return s.advanceLocked(conv.ID, domain.StageContract, c.CreatedAt), nil
}

func (s *Store) GetContract(_ context.Context, id string) (domain.Contract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.contracts[id]
	if !ok {
		return c, domain.NotFound("contract %s not found", id)
	}
	return c, nil
}

func (s *Store) ListContracts(_ context.Context, userID string, page domain.PageRequest) ([]domain.Contract, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Contract
	for _, c := range s.contracts {
		if c.HasParty(userID) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return newer(out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID) })
	return window(out, page), len(out), nil
}

func (s *Store) FinishContract(_ context.Context, id string, to domain.ContractStatus, reason string, at time.Time) (domain.Contract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.contracts[id]
	if !ok {
		return c, domain.NotFound("contract %s not found", id)
	}
	if c.Status != domain.ContractActive {
		return c, domain.Conflict("contract is already %s", c.Status)
	}
	c.Status = to
	c.TerminationReason = reason
	c.EndedAt = &at
	c.UpdatedAt = at
	s.contracts[id] = c
	return c, nil
}

// Invoices

func (s *Store) CreateInvoice(_ context.Context, inv domain.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.contracts[inv.ContractID]
	if !ok {
		return domain.NotFound("contract %s not found", inv.ContractID)
	}
	if c.Status != domain.ContractActive {
		return domain.Conflict("contract is %s; no new invoices", c.Status)
	}
	s.invoices[inv.ID] = inv
	return nil
}

func (s *Store) GetInvoice(_ context.Context, id string) (domain.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv, ok := s.invoices[id]
	if !ok {
		return inv, domain.NotFound("invoice %s not found", id)
	}
	return inv, nil
}

func (s *Store) ListInvoices(_ context.Context, contractID string, page domain.PageRequest) ([]domain.Invoice, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Invoice
	for _, inv := range s.invoices {
		if inv.ContractID == contractID {
			out = append(out, inv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return newer(out[i].PeriodStart, out[j].PeriodStart, out[i].ID, out[j].ID) })
	return window(out, page), len(out), nil
}

func (s *Store) UpdateInvoice(_ context.Context, inv domain.Invoice, version int, from domain.InvoiceStatus) (domain.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.invoices[inv.ID]
	if !ok {
		return cur, domain.NotFound("invoice %s not found", inv.ID)
	}
	if cur.Version != version || cur.Status != from {
		return cur, domain.Conflict("invoice changed concurrently; reload and retry")
	}
	if paid := s.paidLocked(inv.ID); exceedsTotal(paid, 0, inv.TotalAmount) {
		return cur, domain.Conflict("invoice total %.2f would fall below the %.2f already paid", inv.TotalAmount, paid)
	}
	inv.Version = version + 1
	s.invoices[inv.ID] = inv
	return inv, nil
}

func (s *Store) DeleteDraftInvoice(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv, ok := s.invoices[id]
	if !ok {
		return domain.NotFound("invoice %s not found", id)
	}
	if inv.Status != domain.InvoiceDraft {
		return domain.Conflict("only draft invoices can be deleted; invoice is %s", inv.Status)
	}
	delete(s.invoices, id)
	for pid, p := range s.payments {
		if p.InvoiceID == id {
			delete(s.payments, pid)
		}
	}
	return nil
}

func (s *Store) RecordPayment(_ context.Context, p domain.Payment) (domain.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv, ok := s.invoices[p.InvoiceID]
	if !ok {
		return inv, domain.NotFound("invoice %s not found", p.InvoiceID)
	}
	if inv.Status != domain.InvoiceSent && inv.Status != domain.InvoiceOverdue {
		return inv, domain.Conflict("payments are only recorded against sent or overdue invoices; invoice is %s", inv.Status)
	}
	paid := s.paidLocked(inv.ID)
	if exceedsTotal(paid, p.Amount, inv.TotalAmount) {
		return inv, domain.Conflict("payment of %.2f exceeds outstanding %.2f", p.Amount, inv.TotalAmount-paid)
	}
	s.payments[p.ID] = p
	if coversTotal(paid, p.Amount, inv.TotalAmount) {
		inv.Status = domain.InvoicePaid
		inv.Version++
		inv.UpdatedAt = p.CreatedAt
		s.invoices[inv.ID] = inv
	}
	return inv, nil
}

func (s *Store) paidLocked(invoiceID string) float64 {
	var paid float64
	for _, p := range s.payments {
		if p.InvoiceID == invoiceID {
			paid += p.Amount
		}
	}
	return paid
}

func (s *Store) ListPayments(_ context.Context, invoiceID string, page domain.PageRequest) ([]domain.Payment, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.invoices[invoiceID]; !ok {
		return nil, 0, domain.NotFound("invoice %s not found", invoiceID)
	}
	var out []domain.Payment
	for _, p := range s.payments {
		if p.InvoiceID == invoiceID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PaymentDate.Equal(out[j].PaymentDate) {
			return out[i].PaymentDate.Before(out[j].PaymentDate)
		}
		return out[i].ID < out[j].ID
	})
	return window(out, page), len(out), nil
}

// Reviews

func (s *Store) CreateReview(_ context.Context, r domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.contracts[r.ContractID]
	if !ok {
		return domain.NotFound("contract %s not found", r.ContractID)
	}
	if c.Status != domain.ContractCompleted {
		return domain.Conflict("contract is %s; reviews open once it is completed", c.Status)
	}
	for _, existing := range s.reviews {
		if existing.ContractID == r.ContractID && existing.ReviewerID == r.ReviewerID {
			return domain.Conflict("reviewer already reviewed this contract")
		}
	}
	ratings := make(map[string]int, len(r.CategoryRatings))
	for k, v := range r.CategoryRatings {
		ratings[k] = v
	}
	r.CategoryRatings = ratings
	s.reviews[r.ID] = r
	return nil
}

func (s *Store) ListReviews(_ context.Context, revieweeID string, page domain.PageRequest) ([]domain.Review, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Review
	for _, r := range s.reviews {
		if r.RevieweeID == revieweeID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return newer(out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID) })
	return window(out, page), len(out), nil
}

// helpers

func newer(a, b time.Time, aID, bID string) bool {
	if !a.Equal(b) {
		return a.After(b)
	}
	return aID < bID
}

func activity(c domain.Conversation) time.Time {
	if c.LastMessageAt != nil {
		return *c.LastMessageAt
	}
	return c.CreatedAt
}

func window[T any](items []T, page domain.PageRequest) []T {
	start := page.Offset()
	if start >= len(items) {
		return nil
	}
	end := start + page.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func exceedsTotal(paid, amount, total float64) bool {
	return fees.Cents(paid)+fees.Cents(amount) > fees.Cents(total)
}

func coversTotal(paid, amount, total float64) bool {
	return fees.Cents(paid)+fees.Cents(amount) >= fees.Cents(total)
}
