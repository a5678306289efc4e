package invoices

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"cfomatch/internal/adapters/memory"
	"cfomatch/internal/domain"
)

var fixed = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

type fixture struct {
	svc      *Service
	store    *memory.Store
	company  domain.Actor
	cfo      domain.Actor
	contract domain.Contract
}

func setup(t *testing.T, basis domain.FeeBasis, rate float64) fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.New()
	f := fixture{
		svc:     New(store, func() time.Time { return fixed }),
		store:   store,
		company: domain.Actor{UserID: uuid.NewString(), Role: domain.RoleCompany},
		cfo:     domain.Actor{UserID: uuid.NewString(), Role: domain.RoleCFO},
	}
	store.PutUser(domain.User{ID: f.company.UserID, Role: domain.RoleCompany, Status: domain.UserActive})
	store.PutUser(domain.User{ID: f.cfo.UserID, Role: domain.RoleCFO, Status: domain.UserActive})
	app := domain.Application{ID: uuid.NewString(), CompanyID: f.company.UserID, CFOID: f.cfo.UserID, Direction: domain.CompanyToCFO, Status: domain.ApplicationPending}
	if err := store.CreateApplication(ctx, app); err != nil {
		t.Fatal(err)
	}
	seed := domain.Conversation{ID: uuid.NewString(), Participant1ID: app.CompanyID, Participant2ID: app.CFOID}
	if _, _, err := store.AcceptApplication(ctx, app.ID, seed, fixed); err != nil {
		t.Fatal(err)
	}
	f.contract = domain.Contract{
		ID: uuid.NewString(), ApplicationID: app.ID, CompanyID: app.CompanyID, CFOID: app.CFOID,
		FeeBasis: basis, Rate: rate, DurationMonths: 3, FeePercentage: 3, Status: domain.ContractActive,
	}
	if _, err := store.CreateContract(ctx, f.contract, seed); err != nil {
		t.Fatal(err)
	}
	return f
}

func march() CreateInput {
	return CreateInput{
		PeriodStart: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Description: "March retainer",
	}
}

func ptr[T any](v T) *T { return &v }

func (f fixture) sent(t *testing.T) domain.Invoice {
	t.Helper()
	inv, err := f.svc.Create(context.Background(), f.cfo, f.contract.ID, march())
	if err != nil {
		t.Fatal(err)
	}
	inv, err = f.svc.Update(context.Background(), f.cfo, inv.ID, UpdateInput{Status: ptr(domain.InvoiceSent)})
	if err != nil {
		t.Fatal(err)
	}
	return inv
}

func TestCreateMonthlyRecomputesTotals(t *testing.T) {
	f := setup(t, domain.FeeMonthly, 600_000)
	in := march()
	in.FeeAmount = ptr(1.0)
	in.TotalAmount = ptr(2.0)
	inv, err := f.svc.Create(context.Background(), f.cfo, f.contract.ID, in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if inv.Status != domain.InvoiceDraft {
		t.Fatalf("expected draft, got %s", inv.Status)
	}
	if inv.Amount != 600_000 || inv.FeePercentage != 3 || inv.FeeAmount != 18_000 || inv.TotalAmount != 618_000 {
		t.Fatalf("unexpected totals amount=%v fee=%v total=%v", inv.Amount, inv.FeeAmount, inv.TotalAmount)
	}
}

func TestCreateHourlyUsesHours(t *testing.T) {
	f := setup(t, domain.FeeHourly, 15_000)
	in := march()
	in.WorkingHours = ptr(12.5)
	in.WorkingDays = ptr(4)
	inv, err := f.svc.Create(context.Background(), f.cfo, f.contract.ID, in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if inv.Amount != 187_500 || inv.FeeAmount != 5_625 || inv.TotalAmount != 193_125 {
		t.Fatalf("unexpected totals %+v", inv)
	}

	if _, err := f.svc.Create(context.Background(), f.cfo, f.contract.ID, march()); !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("hourly without hours: expected validation error, got %v", err)
	}
}

func TestCreateGuards(t *testing.T) {
	f := setup(t, domain.FeeMonthly, 600_000)
	ctx := context.Background()
	if _, err := f.svc.Create(ctx, f.company, f.contract.ID, march()); !domain.IsKind(err, domain.KindForbidden) {
		t.Fatalf("company creating: expected forbidden, got %v", err)
	}
	bad := march()
	bad.PeriodEnd = bad.PeriodStart.Add(-24 * time.Hour)
	if _, err := f.svc.Create(ctx, f.cfo, f.contract.ID, bad); !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("inverted period: expected validation error, got %v", err)
	}
	if _, err := f.store.FinishContract(ctx, f.contract.ID, domain.ContractTerminated, "ended", fixed); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.Create(ctx, f.cfo, f.contract.ID, march()); !domain.IsKind(err, domain.KindConflict) {
		t.Fatalf("terminated contract: expected conflict, got %v", err)
	}
}

func TestCompanyRoleGating(t *testing.T) {
	f := setup(t, domain.FeeMonthly, 600_000)
	ctx := context.Background()
	inv := f.sent(t)

	_, err := f.svc.Update(ctx, f.company, inv.ID, UpdateInput{Billing: Billing{Amount: ptr(1.0)}})
	if !domain.IsKind(err, domain.KindForbidden) {
		t.Fatalf("company editing amount: expected forbidden, got %v", err)
	}
	_, err = f.svc.Update(ctx, f.company, inv.ID, UpdateInput{Status: ptr(domain.InvoiceCancelled)})
	if !domain.IsKind(err, domain.KindForbidden) {
		t.Fatalf("company cancelling: expected forbidden, got %v", err)
	}
	got, err := f.svc.Update(ctx, f.company, inv.ID, UpdateInput{Status: ptr(domain.InvoicePaid)})
	if err != nil {
		t.Fatalf("company marking paid: %v", err)
	}
	if got.Status != domain.InvoicePaid || got.Version != inv.Version+1 {
		t.Fatalf("unexpected invoice after paid: %+v", got)
	}
	if got.Amount != inv.Amount {
		t.Fatalf("amount changed on acknowledgement")
	}
}

func TestCompanyOverdueThenPaid(t *testing.T) {
	f := setup(t, domain.FeeMonthly, 600_000)
	ctx := context.Background()
	inv := f.sent(t)
	if _, err := f.svc.Update(ctx, f.company, inv.ID, UpdateInput{Status: ptr(domain.InvoiceOverdue)}); err != nil {
		t.Fatalf("overdue: %v", err)
	}
	if _, err := f.svc.Update(ctx, f.company, inv.ID, UpdateInput{Status: ptr(domain.InvoicePaid)}); err != nil {
		t.Fatalf("paid after overdue: %v", err)
	}
	if _, err := f.svc.Update(ctx, f.company, inv.ID, UpdateInput{Status: ptr(domain.InvoiceOverdue)}); !domain.IsKind(err, domain.KindConflict) {
		t.Fatalf("paid back to overdue: expected conflict, got %v", err)
	}
}

func TestCFOEditingWindow(t *testing.T) {
	f := setup(t, domain.FeeMonthly, 600_000)
	ctx := context.Background()
	inv := f.sent(t)

	got, err := f.svc.Update(ctx, f.cfo, inv.ID, UpdateInput{Description: ptr("March retainer, revised"), Billing: Billing{Amount: ptr(500_000.0)}})
	if err != nil {
		t.Fatalf("editing sent invoice: %v", err)
	}
	if got.Amount != 500_000 || got.FeeAmount != 15_000 || got.TotalAmount != 515_000 {
		t.Fatalf("expected repriced totals, got %+v", got)
	}
	if _, err := f.svc.Update(ctx, f.cfo, inv.ID, UpdateInput{Status: ptr(domain.InvoicePaid)}); !domain.IsKind(err, domain.KindForbidden) {
		t.Fatalf("cfo marking paid: expected forbidden, got %v", err)
	}
	if _, err := f.svc.Update(ctx, f.company, inv.ID, UpdateInput{Status: ptr(domain.InvoicePaid)}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.Update(ctx, f.cfo, inv.ID, UpdateInput{Billing: Billing{Amount: ptr(1.0)}}); !domain.IsKind(err, domain.KindConflict) {
		t.Fatalf("editing paid invoice: expected conflict, got %v", err)
	}
}

func TestCancelOnlyFromDraft(t *testing.T) {
	f := setup(t, domain.FeeMonthly, 600_000)
	ctx := context.Background()
	draft, _ := f.svc.Create(ctx, f.cfo, f.contract.ID, march())
	got, err := f.svc.Update(ctx, f.cfo, draft.ID, UpdateInput{Status: ptr(domain.InvoiceCancelled)})
	if err != nil || got.Status != domain.InvoiceCancelled {
		t.Fatalf("cancel draft: %v %+v", err, got)
	}
	inv := f.sent(t)
	if _, err := f.svc.Update(ctx, f.cfo, inv.ID, UpdateInput{Status: ptr(domain.InvoiceCancelled)}); !domain.IsKind(err, domain.KindConflict) {
		t.Fatalf("cancel sent: expected conflict, got %v", err)
	}
}

func TestEmptyPatch(t *testing.T) {
	f := setup(t, domain.FeeMonthly, 600_000)
	inv := f.sent(t)
	if _, err := f.svc.Update(context.Background(), f.cfo, inv.ID, UpdateInput{}); !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	f := setup(t, domain.FeeMonthly, 600_000)
	ctx := context.Background()
	draft, _ := f.svc.Create(ctx, f.cfo, f.contract.ID, march())
	if err := f.svc.Delete(ctx, f.company, draft.ID); !domain.IsKind(err, domain.KindForbidden) {
		t.Fatalf("company deleting: expected forbidden, got %v", err)
	}
	if err := f.svc.Delete(ctx, f.cfo, draft.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := f.svc.Get(ctx, f.cfo, draft.ID); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	inv := f.sent(t)
	if err := f.svc.Delete(ctx, f.cfo, inv.ID); !domain.IsKind(err, domain.KindConflict) {
		t.Fatalf("deleting sent invoice: expected conflict, got %v", err)
	}
}

func TestPayments(t *testing.T) {
	f := setup(t, domain.FeeMonthly, 600_000)
	ctx := context.Background()
	inv := f.sent(t)
	pay := func(actor domain.Actor, amount float64) (domain.Invoice, error) {
		_, got, err := f.svc.RecordPayment(ctx, actor, inv.ID, PaymentInput{PaymentDate: fixed, PaymentMethod: "bank_transfer", Amount: amount})
		return got, err
	}
	if _, err := pay(f.cfo, 100); !domain.IsKind(err, domain.KindForbidden) {
		t.Fatalf("cfo recording payment: expected forbidden, got %v", err)
	}
	got, err := pay(f.company, 300_000)
	if err != nil {
		t.Fatalf("partial payment: %v", err)
	}
	if got.Status != domain.InvoiceSent {
		t.Fatalf("expected still sent after partial, got %s", got.Status)
	}
	if _, err := pay(f.company, 318_000.01); !domain.IsKind(err, domain.KindConflict) {
		t.Fatalf("overpayment: expected conflict, got %v", err)
	}
	got, err = pay(f.company, 318_000)
	if err != nil {
		t.Fatalf("final payment: %v", err)
	}
	if got.Status != domain.InvoicePaid {
		t.Fatalf("expected paid once covered, got %s", got.Status)
	}
	page, _ := domain.NewPageRequest(nil, nil)
	payments, err := f.svc.ListPayments(ctx, f.cfo, inv.ID, page)
	if err != nil {
		t.Fatalf("ListPayments: %v", err)
	}
	if len(payments.Data) != 2 || payments.Pagination.Total != 2 {
		t.Fatalf("expected 2 payments, got %+v", payments)
	}
	if _, err := pay(f.company, 1); !domain.IsKind(err, domain.KindConflict) {
		t.Fatalf("paying a paid invoice: expected conflict, got %v", err)
	}
}

func TestConcurrentSendHasOneWinner(t *testing.T) {
	f := setup(t, domain.FeeMonthly, 600_000)
	ctx := context.Background()
	draft, _ := f.svc.Create(ctx, f.cfo, f.contract.ID, march())

	var wg sync.WaitGroup
	start := make(chan struct{})
	results := make([]error, 6)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, results[i] = f.svc.Update(ctx, f.cfo, draft.ID, UpdateInput{Status: ptr(domain.InvoiceSent)})
		}(i)
	}
	close(start)
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
		t.Fatalf("expected exactly one send to win, got %d", wins)
	}
}

func TestList(t *testing.T) {
	f := setup(t, domain.FeeMonthly, 600_000)
	ctx := context.Background()
	f.sent(t)
	f.sent(t)
	page, _ := domain.NewPageRequest(nil, nil)
	got, err := f.svc.List(ctx, f.company, f.contract.ID, page)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got.Pagination.Total != 2 {
		t.Fatalf("expected 2 invoices, got %d", got.Pagination.Total)
	}
}

func TestListPaymentsPages(t *testing.T) {
	f := setup(t, domain.FeeMonthly, 600_000)
	ctx := context.Background()
	inv := f.sent(t)
	for i, amount := range []float64{100, 200, 300} {
		in := PaymentInput{PaymentDate: fixed.AddDate(0, 0, i), PaymentMethod: "bank_transfer", Amount: amount}
		if _, _, err := f.svc.RecordPayment(ctx, f.company, inv.ID, in); err != nil {
			t.Fatal(err)
		}
	}
	page, _ := domain.NewPageRequest(ptr(2), ptr(2))
	got, err := f.svc.ListPayments(ctx, f.company, inv.ID, page)
	if err != nil {
		t.Fatalf("ListPayments: %v", err)
	}
	if got.Pagination.Total != 3 || got.Pagination.Page != 2 || got.Pagination.Limit != 2 {
		t.Fatalf("unexpected pagination %+v", got.Pagination)
	}
	if len(got.Data) != 1 || got.Data[0].Amount != 300 {
		t.Fatalf("expected the latest payment alone on page 2, got %+v", got.Data)
	}
}

func TestSubCentPaymentRejected(t *testing.T) {
	f := setup(t, domain.FeeMonthly, 600_000)
	ctx := context.Background()
	inv := f.sent(t)
	_, _, err := f.svc.RecordPayment(ctx, f.company, inv.ID, PaymentInput{PaymentDate: fixed, PaymentMethod: "bank_transfer", Amount: 0.001})
	if !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("sub-cent payment: expected validation error, got %v", err)
	}
	var de *domain.Error
	if errors.As(err, &de) && de.Fields["amount"] == "" {
		t.Fatalf("expected an amount field error, got %+v", de.Fields)
	}
	page, _ := domain.NewPageRequest(nil, nil)
	if got, _ := f.svc.ListPayments(ctx, f.company, inv.ID, page); got.Pagination.Total != 0 {
		t.Fatalf("sub-cent payment was recorded: %+v", got.Data)
	}
}

func TestRepricingBelowPaidConflicts(t *testing.T) {
	f := setup(t, domain.FeeMonthly, 600_000)
	ctx := context.Background()
	inv := f.sent(t)
	if _, _, err := f.svc.RecordPayment(ctx, f.company, inv.ID, PaymentInput{PaymentDate: fixed, PaymentMethod: "bank_transfer", Amount: 300_000}); err != nil {
		t.Fatal(err)
	}
	_, err := f.svc.Update(ctx, f.cfo, inv.ID, UpdateInput{Billing: Billing{Amount: ptr(1000.0)}})
	if !domain.IsKind(err, domain.KindConflict) {
		t.Fatalf("total below paid: expected conflict, got %v", err)
	}
	got, _ := f.svc.Get(ctx, f.cfo, inv.ID)
	if got.TotalAmount != 618_000 || got.Version != inv.Version {
		t.Fatalf("invoice changed after rejected repricing: %+v", got)
	}
	// 291,262.14 + 3% = 300,000.00 exactly, which the payment still covers.
	got, err = f.svc.Update(ctx, f.cfo, inv.ID, UpdateInput{Billing: Billing{Amount: ptr(291_262.14)}})
	if err != nil {
		t.Fatalf("repricing down to the paid sum: %v", err)
	}
	if got.TotalAmount != 300_000 {
		t.Fatalf("expected total 300000, got %v", got.TotalAmount)
	}
}

func TestPeriodEdits(t *testing.T) {
	f := setup(t, domain.FeeMonthly, 600_000)
	ctx := context.Background()
	inv := f.sent(t)
	start := time.Date(2026, 3, 2, 8, 30, 0, 0, time.FixedZone("CET", 3600))
	got, err := f.svc.Update(ctx, f.cfo, inv.ID, UpdateInput{PeriodStart: &start})
	if err != nil {
		t.Fatalf("cfo moving period start: %v", err)
	}
	if !got.PeriodStart.Equal(start) || got.PeriodStart.Location() != time.UTC {
		t.Fatalf("expected period start stored in UTC, got %v", got.PeriodStart)
	}
	end := start.Add(-time.Hour)
	if _, err := f.svc.Update(ctx, f.cfo, inv.ID, UpdateInput{PeriodEnd: &end}); !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("period end before start: expected validation error, got %v", err)
	}
	_, err = f.svc.Update(ctx, f.company, inv.ID, UpdateInput{Status: ptr(domain.InvoicePaid), PeriodStart: &start})
	if !domain.IsKind(err, domain.KindForbidden) {
		t.Fatalf("company editing period: expected forbidden, got %v", err)
	}
}

func TestOversizedAmountsRejected(t *testing.T) {
	f := setup(t, domain.FeeMonthly, 600_000)
	ctx := context.Background()
	in := march()
	in.WorkingHours = ptr(10.0)
	in.HourlyRate = ptr(1e12)
	if _, err := f.svc.Create(ctx, f.cfo, f.contract.ID, in); !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("oversized hourly rate: expected validation error, got %v", err)
	}
	in = march()
	in.Amount = ptr(1e13)
	in.WorkingHours = ptr(1.0)
	if _, err := f.svc.Create(ctx, f.cfo, f.contract.ID, in); !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("oversized amount: expected validation error, got %v", err)
	}
	inv := f.sent(t)
	_, _, err := f.svc.RecordPayment(ctx, f.company, inv.ID, PaymentInput{PaymentDate: fixed, PaymentMethod: "bank_transfer", Amount: 1e14})
	if !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("oversized payment: expected validation error, got %v", err)
	}
}
