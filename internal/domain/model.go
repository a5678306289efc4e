package domain

import "time"

// Core engagement models. The HTTP adapter serializes these directly, so the
// json tags are the wire shape of every entity snapshot.

type Role string

const (
	RoleCompany Role = "company"
	RoleCFO     Role = "cfo"
)

func (r Role) Valid() bool { return r == RoleCompany || r == RoleCFO }

type UserStatus string

const (
	UserPending   UserStatus = "pending"
	UserActive    UserStatus = "active"
	UserSuspended UserStatus = "suspended"
)

type User struct {
	ID        string     `json:"id"`
	Role      Role       `json:"role"`
	Status    UserStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type Direction string

const (
	CompanyToCFO Direction = "company_to_cfo"
	CFOToCompany Direction = "cfo_to_company"
)

// Initiator is the role allowed to open an application in this direction.
func (d Direction) Initiator() Role {
	if d == CFOToCompany {
		return RoleCFO
	}
	return RoleCompany
}

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

type Application struct {
	ID           string            `json:"id"`
	CompanyID    string            `json:"companyId"`
	CFOID        string            `json:"cfoId"`
	Direction    Direction         `json:"direction"`
	Status       ApplicationStatus `json:"status"`
	CoverMessage string            `json:"coverMessage"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// Recipient is the party who must answer the application.
func (a Application) Recipient() string {
	if a.Direction == CFOToCompany {
		return a.CompanyID
	}
	return a.CFOID
}

func (a Application) HasParty(userID string) bool {
	return a.CompanyID == userID || a.CFOID == userID
}

type Conversation struct {
	ID             string     `json:"id"`
	Participant1ID string     `json:"participant1Id"`
	Participant2ID string     `json:"participant2Id"`
	Stage          Stage      `json:"stage"`
	LastMessageAt  *time.Time `json:"lastMessageAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// OrderedPair returns the two participant ids sorted, which is how a
// conversation pair is stored so that (a,b) and (b,a) collide.
func OrderedPair(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}

func (c Conversation) HasParticipant(userID string) bool {
	return c.Participant1ID == userID || c.Participant2ID == userID
}

// Other returns the participant that is not userID.
func (c Conversation) Other(userID string) string {
	if c.Participant1ID == userID {
		return c.Participant2ID
	}
	return c.Participant1ID
}

type MeetingStatus string

const (
	MeetingScheduled MeetingStatus = "scheduled"
	MeetingCompleted MeetingStatus = "completed"
	MeetingCancelled MeetingStatus = "cancelled"
)

type Meeting struct {
	ID              string        `json:"id"`
	ConversationID  string        `json:"conversationId"`
	OrganizerID     string        `json:"organizerId"`
	ParticipantID   string        `json:"participantId"`
	ScheduledAt     time.Time     `json:"scheduledAt"`
	DurationMinutes int           `json:"durationMinutes"`
	Status          MeetingStatus `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

type FeeBasis string

const (
	FeeHourly  FeeBasis = "hourly"
	FeeMonthly FeeBasis = "monthly"
)

type ContractStatus string

const (
	ContractActive     ContractStatus = "active"
	ContractCompleted  ContractStatus = "completed"
	ContractTerminated ContractStatus = "terminated"
)

type Contract struct {
	ID                string         `json:"id"`
	ApplicationID     string         `json:"applicationId"`
	CompanyID         string         `json:"companyId"`
	CFOID             string         `json:"cfoId"`
	FeeBasis          FeeBasis       `json:"feeBasis"`
	Rate              float64        `json:"rate"`
	DurationMonths    int            `json:"durationMonths"`
	FeePercentage     float64        `json:"feePercentage"`
	FeeAmount         float64        `json:"feeAmount"`
	RecurringFee      float64        `json:"recurringFee"`
	Status            ContractStatus `json:"status"`
	TerminationReason string         `json:"terminationReason,omitempty"`
	StartedAt         time.Time      `json:"startedAt"`
	EndedAt           *time.Time     `json:"endedAt,omitempty"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

func (c Contract) HasParty(userID string) bool {
	return c.CompanyID == userID || c.CFOID == userID
}

// Counterparty returns the other party of the contract.
func (c Contract) Counterparty(userID string) string {
	if c.CompanyID == userID {
		return c.CFOID
	}
	return c.CompanyID
}

type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// Editable reports whether the CFO may still change billing fields.
func (s InvoiceStatus) Editable() bool { return s == InvoiceDraft || s == InvoiceSent }

type Invoice struct {
	ID            string        `json:"id"`
	ContractID    string        `json:"contractId"`
	PeriodStart   time.Time     `json:"periodStart"`
	PeriodEnd     time.Time     `json:"periodEnd"`
	WorkingDays   *int          `json:"workingDays,omitempty"`
	WorkingHours  *float64      `json:"workingHours,omitempty"`
	HourlyRate    *float64      `json:"hourlyRate,omitempty"`
	Amount        float64       `json:"amount"`
	FeePercentage float64       `json:"feePercentage"`
	FeeAmount     float64       `json:"feeAmount"`
	TotalAmount   float64       `json:"totalAmount"`
	Description   string        `json:"description"`
	Status        InvoiceStatus `json:"status"`
	Version       int           `json:"version"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

type Payment struct {
	ID            string    `json:"id"`
	InvoiceID     string    `json:"invoiceId"`
	PaymentDate   time.Time `json:"paymentDate"`
	PaymentMethod string    `json:"paymentMethod"`
	Amount        float64   `json:"amount"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Review struct {
	ID              string         `json:"id"`
	ContractID      string         `json:"contractId"`
	ReviewerID      string         `json:"reviewerId"`
	RevieweeID      string         `json:"revieweeId"`
	OverallRating   int            `json:"overallRating"`
	CategoryRatings map[string]int `json:"categoryRatings"`
	Comment         string         `json:"comment"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}
