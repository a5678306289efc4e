package ports

import (
	"context"
	"time"

	"cfomatch/internal/domain"
)

// Repositories report missing rows as domain NotFound errors and lost
// check-and-set races or uniqueness violations as domain Conflict errors.

// UserRepository reads users; the engine never writes them.
type UserRepository interface {
	GetUser(ctx context.Context, id string) (domain.User, error)
}

// ApplicationRepository stores scouts. At most one pending application may
// exist per (company, cfo) pair.
type ApplicationRepository interface {
	CreateApplication(ctx context.Context, app domain.Application) error
	GetApplication(ctx context.Context, id string) (domain.Application, error)
	ListApplications(ctx context.Context, userID string, status domain.ApplicationStatus, page domain.PageRequest) ([]domain.Application, int, error)
	// AcceptApplication flips a pending application to accepted, gets or
	// creates the pair's conversation (seed supplies the id for a new one)
	// and advances it to at least negotiation, all atomically.
	AcceptApplication(ctx context.Context, id string, seed domain.Conversation, at time.Time) (domain.Application, domain.Conversation, error)
	RejectApplication(ctx context.Context, id string, at time.Time) (domain.Application, error)
}

// ConversationRepository owns the stage of each conversation.
type ConversationRepository interface {
	GetOrCreateConversation(ctx context.Context, seed domain.Conversation) (domain.Conversation, error)
	GetConversation(ctx context.Context, id string) (domain.Conversation, error)
	ListConversations(ctx context.Context, userID string, page domain.PageRequest) ([]domain.Conversation, int, error)
	// AdvanceStage moves the conversation to stage if that is higher than the
	// current one and is a no-op otherwise.
	AdvanceStage(ctx context.Context, id string, stage domain.Stage, at time.Time) (domain.Conversation, error)
	TouchConversation(ctx context.Context, id string, at time.Time) error
}

type MeetingRepository interface {
	// CreateMeeting inserts the meeting and advances its conversation to
	// the meeting stage in one transaction.
	CreateMeeting(ctx context.Context, m domain.Meeting) (domain.Conversation, error)
	GetMeeting(ctx context.Context, id string) (domain.Meeting, error)
	ListMeetings(ctx context.Context, conversationID string, page domain.PageRequest) ([]domain.Meeting, int, error)
	// ResolveMeeting moves a scheduled meeting to a terminal status.
	ResolveMeeting(ctx context.Context, id string, to domain.MeetingStatus, at time.Time) (domain.Meeting, error)
}

type ContractRepository interface {
	// CreateContract requires the application to be accepted and without a
	// contract, then inserts the contract and advances the pair's
	// conversation (created from seed if missing) to the contract stage.
	CreateContract(ctx context.Context, c domain.Contract, seed domain.Conversation) (domain.Conversation, error)
	GetContract(ctx context.Context, id string) (domain.Contract, error)
	ListContracts(ctx context.Context, userID string, page domain.PageRequest) ([]domain.Contract, int, error)
	// FinishContract moves an active contract to completed or terminated.
	FinishContract(ctx context.Context, id string, to domain.ContractStatus, reason string, at time.Time) (domain.Contract, error)
}

type InvoiceRepository interface {
	// CreateInvoice inserts inv while its contract is active.
	CreateInvoice(ctx context.Context, inv domain.Invoice) error
	GetInvoice(ctx context.Context, id string) (domain.Invoice, error)
	ListInvoices(ctx context.Context, contractID string, page domain.PageRequest) ([]domain.Invoice, int, error)
	// UpdateInvoice writes inv if the stored row still has the given version
	// and status, bumping the version. The new total may not fall below the
	// sum of the invoice's payments.
	UpdateInvoice(ctx context.Context, inv domain.Invoice, version int, from domain.InvoiceStatus) (domain.Invoice, error)
	DeleteDraftInvoice(ctx context.Context, id string) error
	// RecordPayment adds p unless the invoice's payments would exceed its
	// total, marking the invoice paid once the total is covered.
	RecordPayment(ctx context.Context, p domain.Payment) (domain.Invoice, error)
	ListPayments(ctx context.Context, invoiceID string, page domain.PageRequest) ([]domain.Payment, int, error)
}

type ReviewRepository interface {
	// CreateReview inserts r while its contract is completed. A second review
	// by the same reviewer on the same contract is a conflict.
	CreateReview(ctx context.Context, r domain.Review) error
	ListReviews(ctx context.Context, revieweeID string, page domain.PageRequest) ([]domain.Review, int, error)
}

// Store is the full set of repositories one backend provides.
type Store interface {
	UserRepository
	ApplicationRepository
	ConversationRepository
	MeetingRepository
	ContractRepository
	InvoiceRepository
	ReviewRepository
}
