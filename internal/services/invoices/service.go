// Package invoices bills an active contract period by period and tracks
// payments against each invoice.
//
// The CFO drafts, edits and sends invoices; the company only acknowledges
// them as paid or overdue. Fee and total are always computed here from the
// contract's fee percentage, whatever the client sent.
package invoices

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	"cfomatch/internal/domain"
	"cfomatch/internal/fees"
	"cfomatch/internal/ports"
	"cfomatch/internal/services/guard"
	"cfomatch/internal/validate"
)

type Repository interface {
	ports.UserRepository
	ports.ContractRepository
	ports.InvoiceRepository
}

type Service struct {
	repo Repository
	now  ports.Clock
}

func New(repo Repository, now ports.Clock) *Service {
	return &Service{repo: repo, now: guard.Clock(now)}
}

// Billing holds the fields a CFO can set on an invoice.
type Billing struct {
	WorkingDays  *int     `json:"workingDays" validate:"omitempty,gte=0,lte=31"`
	WorkingHours *float64 `json:"workingHours" validate:"omitempty,gte=0,lte=744"`
	HourlyRate   *float64 `json:"hourlyRate" validate:"omitempty,gt=0,lte=9999999999.99"`
	Amount       *float64 `json:"amount" validate:"omitempty,gte=0,lte=9999999999.99"`
	// FeeAmount and TotalAmount are accepted from clients and ignored.
	FeeAmount   *float64 `json:"feeAmount,omitempty"`
	TotalAmount *float64 `json:"totalAmount,omitempty"`
}

type CreateInput struct {
	PeriodStart time.Time `json:"periodStart" validate:"required"`
	PeriodEnd   time.Time `json:"periodEnd" validate:"required,gtefield=PeriodStart"`
	Description string    `json:"description" validate:"max=2000"`
	Billing
}

type UpdateInput struct {
	Status      *domain.InvoiceStatus `json:"status" validate:"omitempty,oneof=draft sent paid overdue cancelled"`
	Description *string               `json:"description" validate:"omitempty,max=2000"`
	PeriodStart *time.Time            `json:"periodStart"`
	PeriodEnd   *time.Time            `json:"periodEnd"`
	Billing
}

func (in UpdateInput) editsFields() bool {
	b := in.Billing
	return in.Description != nil || in.PeriodStart != nil || in.PeriodEnd != nil || b.WorkingDays != nil || b.WorkingHours != nil || b.HourlyRate != nil ||
		b.Amount != nil || b.FeeAmount != nil || b.TotalAmount != nil
}

type PaymentInput struct {
	PaymentDate   time.Time `json:"paymentDate" validate:"required"`
	PaymentMethod string    `json:"paymentMethod" validate:"required,max=50"`
	Amount        float64   `json:"amount" validate:"gt=0,lte=9999999999999.99"`
	Notes         string    `json:"notes" validate:"max=1000"`
}

var (
	cfoTransitions = map[domain.InvoiceStatus][]domain.InvoiceStatus{
		domain.InvoiceDraft: {domain.InvoiceSent, domain.InvoiceCancelled},
	}
	companyTransitions = map[domain.InvoiceStatus][]domain.InvoiceStatus{
		domain.InvoiceSent:    {domain.InvoicePaid, domain.InvoiceOverdue},
		domain.InvoiceOverdue: {domain.InvoicePaid},
	}
)

// Create drafts an invoice for one billing period of an active contract.
func (s *Service) Create(ctx context.Context, actor domain.Actor, contractID string, in CreateInput) (domain.Invoice, error) {
	if err := validate.Struct(in); err != nil {
		return domain.Invoice{}, err
	}
	c, err := s.contract(ctx, actor, contractID)
	if err != nil {
		return domain.Invoice{}, err
	}
	if actor.UserID != c.CFOID {
		return domain.Invoice{}, domain.Forbidden("only the contracted CFO can issue invoices")
	}
	if c.Status != domain.ContractActive {
		return domain.Invoice{}, domain.Conflict("contract is %s; no new invoices", c.Status)
	}

	now := s.now()
	inv := domain.Invoice{
		ID:           uuid.NewString(),
		ContractID:   c.ID,
		PeriodStart:  in.PeriodStart.UTC(),
		PeriodEnd:    in.PeriodEnd.UTC(),
		WorkingDays:  in.WorkingDays,
		WorkingHours: in.WorkingHours,
		HourlyRate:   in.HourlyRate,
		Description:  in.Description,
		Status:       domain.InvoiceDraft,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := price(c, &inv, in.Amount); err != nil {
		return domain.Invoice{}, err
	}
	if err := s.repo.CreateInvoice(ctx, inv); err != nil {
		return domain.Invoice{}, err
	}
	return inv, nil
}

// Update applies a patch. A company may only move the status to paid or
// overdue; a CFO may edit billing fields while the invoice is draft or sent
// and may send or cancel a draft. The write fails with a conflict if the
// invoice changed since it was read, or if a repriced total would fall below
// what has already been paid.
func (s *Service) Update(ctx context.Context, actor domain.Actor, id string, in UpdateInput) (domain.Invoice, error) {
	if err := validate.Struct(in); err != nil {
		return domain.Invoice{}, err
	}
	if in.Status == nil && !in.editsFields() {
		return domain.Invoice{}, domain.ValidationError("nothing to update", nil)
	}
	inv, c, err := s.load(ctx, actor, id)
	if err != nil {
		return domain.Invoice{}, err
	}

	next := inv
	switch actor.UserID {
	case c.CompanyID:
		if in.editsFields() {
			return domain.Invoice{}, domain.Forbidden("a company can only acknowledge invoice status")
		}
		if *in.Status != domain.InvoicePaid && *in.Status != domain.InvoiceOverdue {
			return domain.Invoice{}, domain.Forbidden("a company can only mark invoices paid or overdue")
		}
		if !slices.Contains(companyTransitions[inv.Status], *in.Status) {
			return domain.Invoice{}, domain.Conflict("cannot move invoice from %s to %s", inv.Status, *in.Status)
		}
		next.Status = *in.Status
	case c.CFOID:
		if in.Status != nil && (*in.Status == domain.InvoicePaid || *in.Status == domain.InvoiceOverdue) {
			return domain.Invoice{}, domain.Forbidden("only the company can mark invoices paid or overdue")
		}
		if in.editsFields() {
			if !inv.Status.Editable() {
				return domain.Invoice{}, domain.Conflict("invoice is %s and can no longer be edited", inv.Status)
			}
			applyEdits(&next, in)
			if next.PeriodEnd.Before(next.PeriodStart) {
				return domain.Invoice{}, domain.FieldError("periodEnd", "must not be before periodStart")
			}
			if err := price(c, &next, in.Amount); err != nil {
				return domain.Invoice{}, err
			}
		}
		if in.Status != nil {
			if !slices.Contains(cfoTransitions[inv.Status], *in.Status) {
				return domain.Invoice{}, domain.Conflict("cannot move invoice from %s to %s", inv.Status, *in.Status)
			}
			next.Status = *in.Status
		}
	}
	next.UpdatedAt = s.now()
	return s.repo.UpdateInvoice(ctx, next, inv.Version, inv.Status)
}

// Delete removes a draft invoice. Only the CFO party may delete.
func (s *Service) Delete(ctx context.Context, actor domain.Actor, id string) error {
	inv, c, err := s.load(ctx, actor, id)
	if err != nil {
		return err
	}
	if actor.UserID != c.CFOID {
		return domain.Forbidden("only the contracted CFO can delete invoices")
	}
	if inv.Status != domain.InvoiceDraft {
		return domain.Conflict("only draft invoices can be deleted; invoice is %s", inv.Status)
	}
	return s.repo.DeleteDraftInvoice(ctx, id)
}

// RecordPayment logs a payment by the company. Payments never exceed the
// invoice total; the payment that covers it marks the invoice paid.
func (s *Service) RecordPayment(ctx context.Context, actor domain.Actor, invoiceID string, in PaymentInput) (domain.Payment, domain.Invoice, error) {
	if err := validate.Struct(in); err != nil {
		return domain.Payment{}, domain.Invoice{}, err
	}
	if fees.Cents(in.Amount) < 1 {
		return domain.Payment{}, domain.Invoice{}, domain.FieldError("amount", "must be at least 0.01")
	}
	inv, c, err := s.load(ctx, actor, invoiceID)
	if err != nil {
		return domain.Payment{}, domain.Invoice{}, err
	}
	if actor.UserID != c.CompanyID {
		return domain.Payment{}, domain.Invoice{}, domain.Forbidden("only the company records payments")
	}
	if inv.Status != domain.InvoiceSent && inv.Status != domain.InvoiceOverdue {
		return domain.Payment{}, domain.Invoice{}, domain.Conflict("invoice is %s; payments need a sent or overdue invoice", inv.Status)
	}
	now := s.now()
	p := domain.Payment{
		ID:            uuid.NewString(),
		InvoiceID:     inv.ID,
		PaymentDate:   in.PaymentDate.UTC(),
		PaymentMethod: in.PaymentMethod,
		Amount:        fees.Round(in.Amount),
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	inv, err = s.repo.RecordPayment(ctx, p)
	if err != nil {
		return domain.Payment{}, domain.Invoice{}, err
	}
	return p, inv, nil
}

// ListPayments returns an invoice's payments, oldest payment date first.
func (s *Service) ListPayments(ctx context.Context, actor domain.Actor, invoiceID string, page domain.PageRequest) (domain.Page[domain.Payment], error) {
	if _, _, err := s.load(ctx, actor, invoiceID); err != nil {
		return domain.Page[domain.Payment]{}, err
	}
	items, total, err := s.repo.ListPayments(ctx, invoiceID, page)
	if err != nil {
		return domain.Page[domain.Payment]{}, err
	}
	return domain.NewPage(items, page, total), nil
}

func (s *Service) Get(ctx context.Context, actor domain.Actor, id string) (domain.Invoice, error) {
	inv, _, err := s.load(ctx, actor, id)
	return inv, err
}

func (s *Service) List(ctx context.Context, actor domain.Actor, contractID string, page domain.PageRequest) (domain.Page[domain.Invoice], error) {
	if _, err := s.contract(ctx, actor, contractID); err != nil {
		return domain.Page[domain.Invoice]{}, err
	}
	items, total, err := s.repo.ListInvoices(ctx, contractID, page)
	if err != nil {
		return domain.Page[domain.Invoice]{}, err
	}
	return domain.NewPage(items, page, total), nil
}

func (s *Service) contract(ctx context.Context, actor domain.Actor, id string) (domain.Contract, error) {
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

func (s *Service) load(ctx context.Context, actor domain.Actor, id string) (domain.Invoice, domain.Contract, error) {
	if _, err := guard.Active(ctx, s.repo, actor); err != nil {
		return domain.Invoice{}, domain.Contract{}, err
	}
	inv, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return domain.Invoice{}, domain.Contract{}, err
	}
	c, err := s.repo.GetContract(ctx, inv.ContractID)
	if err != nil {
		return domain.Invoice{}, domain.Contract{}, err
	}
	if !c.HasParty(actor.UserID) {
		return domain.Invoice{}, domain.Contract{}, domain.Forbidden("not a party to invoice %s", id)
	}
	return inv, c, nil
}

func applyEdits(inv *domain.Invoice, in UpdateInput) {
	if in.Description != nil {
		inv.Description = *in.Description
	}
	if in.PeriodStart != nil {
		inv.PeriodStart = in.PeriodStart.UTC()
	}
	if in.PeriodEnd != nil {
		inv.PeriodEnd = in.PeriodEnd.UTC()
	}
	if in.WorkingDays != nil {
		inv.WorkingDays = in.WorkingDays
	}
	if in.WorkingHours != nil {
		inv.WorkingHours = in.WorkingHours
	}
	if in.HourlyRate != nil {
		inv.HourlyRate = in.HourlyRate
	}
}

// price sets amount, fee and total. Hours times the hourly rate (the
// contract rate unless overridden) wins; otherwise the client's amount is
// used, and a monthly contract falls back to its monthly rate.
func price(c domain.Contract, inv *domain.Invoice, amount *float64) error {
	switch {
	case inv.WorkingHours != nil:
		rate := c.Rate
		if inv.HourlyRate != nil {
			rate = *inv.HourlyRate
		}
		inv.Amount = fees.Round(*inv.WorkingHours * rate)
	case amount != nil:
		inv.Amount = fees.Round(*amount)
	case inv.Amount > 0:
		// keep the previously priced amount
	case c.FeeBasis == domain.FeeMonthly:
		inv.Amount = c.Rate
	default:
		return domain.FieldError("workingHours", "required for hourly contracts")
	}
	inv.FeePercentage = c.FeePercentage
	inv.FeeAmount = fees.Round(inv.Amount * c.FeePercentage / 100)
	inv.TotalAmount = fees.Round(inv.Amount + inv.FeeAmount)
	return nil
}
