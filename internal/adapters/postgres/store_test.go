package postgres

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"cfomatch/internal/domain"
)

// openTestDB connects to TEST_DATABASE_URL and migrates it. Tests are
// skipped when the variable is unset.
func openTestDB(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	db, err := Connect(ctx, url, 4)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(db.Close)
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *DB, role domain.Role) string {
	t.Helper()
	id := uuid.NewString()
	_, err := db.Pool.Exec(context.Background(), `INSERT INTO users (id, role, status) VALUES ($1, $2, 'active')`, id, role)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return id
}

func TestEngagementRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	company := seedUser(t, db, domain.RoleCompany)
	cfo := seedUser(t, db, domain.RoleCFO)

	app := domain.Application{ID: uuid.NewString(), CompanyID: company, CFOID: cfo, Direction: domain.CompanyToCFO,
		Status: domain.ApplicationPending, CreatedAt: now, UpdatedAt: now}
	if err := db.CreateApplication(ctx, app); err != nil {
		t.Fatalf("CreateApplication: %v", err)
	}
	dup := app
	dup.ID = uuid.NewString()
	if err := db.CreateApplication(ctx, dup); !domain.IsKind(err, domain.KindConflict) {
		t.Fatalf("duplicate pending application: expected conflict, got %v", err)
	}

	seed := domain.Conversation{ID: uuid.NewString(), Participant1ID: cfo, Participant2ID: company, CreatedAt: now, UpdatedAt: now}
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := db.AcceptApplication(ctx, app.ID, seed, now)
			if err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			} else if !domain.IsKind(err, domain.KindConflict) {
				t.Errorf("accept: unexpected error %v", err)
			}
		}()
	}
	wg.Wait()
	if accepted != 1 {
		t.Fatalf("expected exactly one accept, got %d", accepted)
	}
	conv, err := db.GetOrCreateConversation(ctx, domain.Conversation{ID: uuid.NewString(), Participant1ID: company, Participant2ID: cfo, CreatedAt: now, UpdatedAt: now})
	if err != nil {
		t.Fatalf("GetOrCreateConversation: %v", err)
	}
	if conv.ID != seed.ID || conv.Stage != domain.StageNegotiation {
		t.Fatalf("expected seeded conversation in negotiation, got %+v", conv)
	}

	contract := domain.Contract{ID: uuid.NewString(), ApplicationID: app.ID, CompanyID: company, CFOID: cfo,
		FeeBasis: domain.FeeMonthly, Rate: 600000, DurationMonths: 3, FeePercentage: 3, FeeAmount: 90000, RecurringFee: 18000,
		Status: domain.ContractActive, StartedAt: now, CreatedAt: now, UpdatedAt: now}
	conv, err = db.CreateContract(ctx, contract, seed)
	if err != nil {
		t.Fatalf("CreateContract: %v", err)
	}
	if conv.Stage != domain.StageContract {
		t.Fatalf("expected contract stage, got %s", conv.Stage)
	}
	again := contract
	again.ID = uuid.NewString()
	if _, err := db.CreateContract(ctx, again, seed); !domain.IsKind(err, domain.KindConflict) {
		t.Fatalf("second contract: expected conflict, got %v", err)
	}
	if conv, err = db.AdvanceStage(ctx, conv.ID, domain.StageMeeting, now); err != nil || conv.Stage != domain.StageContract {
		t.Fatalf("stage moved backwards: %+v, %v", conv, err)
	}

	inv := domain.Invoice{ID: uuid.NewString(), ContractID: contract.ID, PeriodStart: now, PeriodEnd: now.AddDate(0, 1, 0),
		Amount: 1000, FeePercentage: 3, FeeAmount: 30, TotalAmount: 1030, Status: domain.InvoiceDraft, Version: 1, CreatedAt: now, UpdatedAt: now}
	if err := db.CreateInvoice(ctx, inv); err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}
	sent := inv
	sent.Status = domain.InvoiceSent
	if sent, err = db.UpdateInvoice(ctx, sent, 1, domain.InvoiceDraft); err != nil || sent.Version != 2 {
		t.Fatalf("send invoice: %+v, %v", sent, err)
	}
	if _, err := db.UpdateInvoice(ctx, sent, 1, domain.InvoiceDraft); !domain.IsKind(err, domain.KindConflict) {
		t.Fatalf("stale update: expected conflict, got %v", err)
	}
	paidAt := now.Add(-90 * time.Minute)
	first := domain.Payment{ID: uuid.NewString(), InvoiceID: inv.ID, PaymentDate: paidAt, PaymentMethod: "bank_transfer", Amount: 500, CreatedAt: now, UpdatedAt: now}
	if _, err := db.RecordPayment(ctx, first); err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	repriced := sent
	repriced.Amount, repriced.FeeAmount, repriced.TotalAmount = 400, 12, 412
	if _, err := db.UpdateInvoice(ctx, repriced, sent.Version, domain.InvoiceSent); !domain.IsKind(err, domain.KindConflict) {
		t.Fatalf("total below paid: expected conflict, got %v", err)
	}
	if cur, _ := db.GetInvoice(ctx, inv.ID); cur.TotalAmount != 1030 || cur.Version != sent.Version {
		t.Fatalf("rejected repricing changed the invoice: %+v", cur)
	}
	pay := domain.Payment{ID: uuid.NewString(), InvoiceID: inv.ID, PaymentDate: now, PaymentMethod: "bank_transfer", Amount: 530, CreatedAt: now, UpdatedAt: now}
	paid, err := db.RecordPayment(ctx, pay)
	if err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	if paid.Status != domain.InvoicePaid {
		t.Fatalf("expected paid invoice, got %s", paid.Status)
	}
	one := 1
	firstPage, _ := domain.NewPageRequest(nil, &one)
	payments, total, err := db.ListPayments(ctx, inv.ID, firstPage)
	if err != nil || total != 2 || len(payments) != 1 {
		t.Fatalf("ListPayments: %+v (%d), %v", payments, total, err)
	}
	if payments[0].ID != first.ID || !payments[0].PaymentDate.Equal(paidAt) {
		t.Fatalf("payment date lost its time of day: got %v, want %v", payments[0].PaymentDate, paidAt)
	}
	if got, _ := db.GetInvoice(ctx, inv.ID); !got.PeriodStart.Equal(now) {
		t.Fatalf("period start lost its time of day: got %v, want %v", got.PeriodStart, now)
	}
	if err := db.DeleteDraftInvoice(ctx, inv.ID); !domain.IsKind(err, domain.KindConflict) {
		t.Fatalf("delete paid invoice: expected conflict, got %v", err)
	}

	if _, err := db.FinishContract(ctx, contract.ID, domain.ContractCompleted, "", now); err != nil {
		t.Fatalf("FinishContract: %v", err)
	}
	r := domain.Review{ID: uuid.NewString(), ContractID: contract.ID, ReviewerID: company, RevieweeID: cfo, OverallRating: 5,
		CategoryRatings: map[string]int{"expertise": 5}, Comment: "Clear thinking throughout.", CreatedAt: now, UpdatedAt: now}
	if err := db.CreateReview(ctx, r); err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	r.ID = uuid.NewString()
	if err := db.CreateReview(ctx, r); !domain.IsKind(err, domain.KindConflict) {
		t.Fatalf("duplicate review: expected conflict, got %v", err)
	}
	page, _ := domain.NewPageRequest(nil, nil)
	got, total, err := db.ListReviews(ctx, cfo, page)
	if err != nil || total != 1 || got[0].CategoryRatings["expertise"] != 5 {
		t.Fatalf("ListReviews: %+v (%d), %v", got, total, err)
	}
}
