package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"cfomatch/internal/adapters/memory"
	"cfomatch/internal/api"
	"cfomatch/internal/domain"
	"cfomatch/internal/fees"
	"cfomatch/internal/services/applications"
	"cfomatch/internal/services/contracts"
	"cfomatch/internal/services/conversations"
	"cfomatch/internal/services/invoices"
	"cfomatch/internal/services/meetings"
	"cfomatch/internal/services/reviews"
)

const secret = "test-secret"

type harness struct {
	t     *testing.T
	srv   *httptest.Server
	store *memory.Store
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	store := memory.New()
	policy, err := fees.NewPolicy(0.05)
	if err != nil {
		t.Fatal(err)
	}
	svc := Services{
		Applications:  applications.New(store, nil),
		Conversations: conversations.New(store, nil),
		Meetings:      meetings.New(store, nil),
		Contracts:     contracts.New(store, nil),
		Invoices:      invoices.New(store, nil),
		Reviews:       reviews.New(store, nil),
		Fees:          policy,
	}
	srv := httptest.NewServer(New(svc, secret).Routes())
	t.Cleanup(srv.Close)
	return &harness{t: t, srv: srv, store: store}
}

// user registers an active user and returns a bearer token for it.
func (h *harness) user(role domain.Role) (string, string) {
	h.t.Helper()
	id := uuid.NewString()
	h.store.PutUser(domain.User{ID: id, Role: role, Status: domain.UserActive})
	tok, err := IssueToken(secret, domain.Actor{UserID: id, Role: role}, time.Hour)
	if err != nil {
		h.t.Fatal(err)
	}
	return id, tok
}

// call sends a JSON request and decodes the response into out when non-nil.
func (h *harness) call(method, path, token string, body any, out any) int {
	h.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			h.t.Fatal(err)
		}
	}
	req, err := http.NewRequest(method, h.srv.URL+path, &buf)
	if err != nil {
		h.t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := h.srv.Client().Do(req)
	if err != nil {
		h.t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			h.t.Fatalf("%s %s: decode: %v", method, path, err)
		}
	}
	return resp.StatusCode
}

func (h *harness) expect(want int, method, path, token string, body any, out any) {
	h.t.Helper()
	var raw json.RawMessage
	target := out
	if target == nil {
		target = &raw
	}
	if got := h.call(method, path, token, body, target); got != want {
		h.t.Fatalf("%s %s: expected %d, got %d (%s)", method, path, want, got, raw)
	}
}

func TestHealthzIsPublic(t *testing.T) {
	h := newHarness(t)
	var out map[string]string
	h.expect(http.StatusOK, http.MethodGet, "/healthz", "", nil, &out)
	if out["status"] != "ok" {
		t.Fatalf("unexpected body %v", out)
	}
}

func TestEngagementLifecycle(t *testing.T) {
	h := newHarness(t)
	companyID, company := h.user(domain.RoleCompany)
	cfoID, cfo := h.user(domain.RoleCFO)

	var app domain.Application
	h.expect(http.StatusCreated, http.MethodPost, "/applications", company, map[string]any{
		"companyId": companyID, "cfoId": cfoID, "direction": "company_to_cfo", "coverMessage": "Help us close our seed round.",
	}, &app)

	var answered api.RespondResult
	h.expect(http.StatusOK, http.MethodPost, "/applications/"+app.ID+"/respond", cfo, map[string]string{"decision": "accept"}, &answered)
	if answered.Conversation == nil || answered.Conversation.Stage != domain.StageNegotiation {
		t.Fatalf("accept should open a negotiation, got %+v", answered.Conversation)
	}
	convID := answered.Conversation.ID

	var proposed api.MeetingResult
	h.expect(http.StatusCreated, http.MethodPost, "/conversations/"+convID+"/meetings", company, map[string]any{
		"scheduledAt": time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339), "durationMinutes": 60,
	}, &proposed)
	if proposed.Conversation.Stage != domain.StageMeeting {
		t.Fatalf("expected meeting stage, got %s", proposed.Conversation.Stage)
	}

	var created api.ContractResult
	h.expect(http.StatusCreated, http.MethodPost, "/contracts", company, map[string]any{
		"applicationId": app.ID, "feeBasis": "monthly", "rate": 600000, "durationMonths": 3,
	}, &created)
	c := created.Contract
	if c.FeeAmount != 90000 || c.RecurringFee != 18000 || created.Conversation.Stage != domain.StageContract {
		t.Fatalf("unexpected contract %+v / %s", c, created.Conversation.Stage)
	}

	// A message after the contract must not pull the stage back.
	var conv domain.Conversation
	h.expect(http.StatusOK, http.MethodPost, "/conversations/"+convID+"/messages", cfo, nil, &conv)
	if conv.Stage != domain.StageContract || conv.LastMessageAt == nil {
		t.Fatalf("unexpected conversation after message %+v", conv)
	}

	var inv domain.Invoice
	h.expect(http.StatusCreated, http.MethodPost, "/contracts/"+c.ID+"/invoices", cfo, map[string]any{
		"periodStart": "2026-07-01T00:00:00Z", "periodEnd": "2026-07-31T00:00:00Z", "description": "July retainer",
	}, &inv)
	if inv.Amount != 600000 || inv.FeeAmount != 18000 || inv.TotalAmount != 618000 {
		t.Fatalf("unexpected invoice pricing %+v", inv)
	}
	h.expect(http.StatusOK, http.MethodPatch, "/invoices/"+inv.ID, cfo, map[string]string{"status": "sent"}, &inv)
	h.expect(http.StatusForbidden, http.MethodPatch, "/invoices/"+inv.ID, cfo, map[string]string{"status": "paid"}, nil)
	h.expect(http.StatusOK, http.MethodPatch, "/invoices/"+inv.ID, company, map[string]string{"status": "paid"}, &inv)
	if inv.Status != domain.InvoicePaid {
		t.Fatalf("expected paid invoice, got %s", inv.Status)
	}

	var rv domain.Review
	review := map[string]any{
		"overallRating":   5,
		"categoryRatings": map[string]int{"expertise": 5, "communication": 4, "reliability": 5, "value": 4},
		"comment":         "Turned our books around in a quarter.",
	}
	h.expect(http.StatusConflict, http.MethodPost, "/contracts/"+c.ID+"/reviews", company, review, nil)
	h.expect(http.StatusOK, http.MethodPost, "/contracts/"+c.ID+"/complete", cfo, nil, &c)
	if c.Status != domain.ContractCompleted || c.EndedAt == nil {
		t.Fatalf("unexpected completed contract %+v", c)
	}
	h.expect(http.StatusCreated, http.MethodPost, "/contracts/"+c.ID+"/reviews", company, review, &rv)
	if rv.RevieweeID != cfoID {
		t.Fatalf("review should target the cfo, got %s", rv.RevieweeID)
	}
	h.expect(http.StatusConflict, http.MethodPost, "/contracts/"+c.ID+"/reviews", company, review, nil)
	h.expect(http.StatusCreated, http.MethodPost, "/contracts/"+c.ID+"/reviews", cfo, map[string]any{
		"overallRating":   4,
		"categoryRatings": map[string]int{"communication": 4, "clarity": 4, "responsiveness": 5, "payment": 5},
		"comment":         "Paid on time and answered quickly.",
	}, nil)

	var page domain.Page[domain.Review]
	h.expect(http.StatusOK, http.MethodGet, "/users/"+cfoID+"/reviews?limit=5", company, nil, &page)
	if page.Pagination.Total != 1 || page.Pagination.Limit != 5 || len(page.Data) != 1 {
		t.Fatalf("unexpected review page %+v", page)
	}
}

func TestErrorMapping(t *testing.T) {
	h := newHarness(t)
	companyID, company := h.user(domain.RoleCompany)
	cfoID, cfo := h.user(domain.RoleCFO)
	_, outsider := h.user(domain.RoleCompany)

	var env api.ErrorEnvelope
	h.expect(http.StatusUnauthorized, http.MethodGet, "/applications", "", nil, &env)
	if env.Error.Kind != domain.KindUnauthenticated {
		t.Fatalf("expected unauthenticated kind, got %+v", env)
	}
	h.expect(http.StatusUnauthorized, http.MethodGet, "/applications", "not-a-jwt", nil, nil)
	forged, _ := IssueToken("other-secret", domain.Actor{UserID: companyID, Role: domain.RoleCompany}, time.Hour)
	h.expect(http.StatusUnauthorized, http.MethodGet, "/applications", forged, nil, nil)

	env = api.ErrorEnvelope{}
	h.expect(http.StatusBadRequest, http.MethodPost, "/applications", company, map[string]any{
		"companyId": companyID, "cfoId": cfoID, "direction": "sideways",
	}, &env)
	if env.Error.Fields["direction"] == "" {
		t.Fatalf("expected a direction field error, got %+v", env.Error)
	}
	h.expect(http.StatusBadRequest, http.MethodGet, "/applications?limit=500", company, nil, nil)
	h.expect(http.StatusBadRequest, http.MethodGet, "/applications/not-a-uuid", company, nil, nil)
	h.expect(http.StatusNotFound, http.MethodGet, "/applications/"+uuid.NewString(), company, nil, nil)

	var app domain.Application
	h.expect(http.StatusCreated, http.MethodPost, "/applications", company, map[string]any{
		"companyId": companyID, "cfoId": cfoID, "direction": "company_to_cfo",
	}, &app)
	h.expect(http.StatusForbidden, http.MethodGet, "/applications/"+app.ID, outsider, nil, nil)
	h.expect(http.StatusForbidden, http.MethodPost, "/applications/"+app.ID+"/respond", company, map[string]string{"decision": "accept"}, nil)
	h.expect(http.StatusOK, http.MethodPost, "/applications/"+app.ID+"/respond", cfo, map[string]string{"decision": "reject"}, nil)
	h.expect(http.StatusConflict, http.MethodPost, "/applications/"+app.ID+"/respond", cfo, map[string]string{"decision": "accept"}, nil)
}

func TestFeeQuotes(t *testing.T) {
	h := newHarness(t)
	_, company := h.user(domain.RoleCompany)

	var quote fees.ContractFee
	h.expect(http.StatusOK, http.MethodPost, "/fees/contract", company, map[string]any{"feeBasis": "hourly", "rate": 20000, "durationMonths": 6}, &quote)
	if quote.BaseFee != 6000 || quote.RecurringFeePerMonth != 600 {
		t.Fatalf("unexpected contract quote %+v", quote)
	}
	var success api.SuccessFeeQuote
	h.expect(http.StatusOK, http.MethodPost, "/fees/success", company, map[string]any{"kind": "financing", "amount": 1000000}, &success)
	if success.Fee != 100000 {
		t.Fatalf("financing floor should apply, got %v", success.Fee)
	}
	h.expect(http.StatusOK, http.MethodPost, "/fees/success", company, map[string]any{"kind": "exit", "amount": 100000000}, &success)
	if success.Fee != 5000000 {
		t.Fatalf("exit fee at 5%%: got %v", success.Fee)
	}
	h.expect(http.StatusBadRequest, http.MethodPost, "/fees/success", company, map[string]any{"kind": "lottery", "amount": 10}, nil)
	h.expect(http.StatusBadRequest, http.MethodPost, "/fees/contract", company, map[string]any{"feeBasis": "weekly", "rate": 0, "durationMonths": 0}, nil)
}

func TestInvoicePaymentsOverHTTP(t *testing.T) {
	h := newHarness(t)
	companyID, company := h.user(domain.RoleCompany)
	cfoID, cfo := h.user(domain.RoleCFO)

	var app domain.Application
	h.expect(http.StatusCreated, http.MethodPost, "/applications", cfo, map[string]any{
		"companyId": companyID, "cfoId": cfoID, "direction": "cfo_to_company",
	}, &app)
	h.expect(http.StatusOK, http.MethodPost, "/applications/"+app.ID+"/respond", company, map[string]string{"decision": "accept"}, nil)
	h.expect(http.StatusBadRequest, http.MethodPost, "/contracts", company, map[string]any{
		"applicationId": app.ID, "feeBasis": "monthly", "rate": 1e12, "durationMonths": 3,
	}, nil)
	var created api.ContractResult
	h.expect(http.StatusCreated, http.MethodPost, "/contracts", company, map[string]any{
		"applicationId": app.ID, "feeBasis": "monthly", "rate": 600000, "durationMonths": 3,
	}, &created)
	invoices := "/contracts/" + created.Contract.ID + "/invoices"

	var inv domain.Invoice
	h.expect(http.StatusBadRequest, http.MethodPost, invoices, cfo, map[string]any{
		"periodStart": "2026-08-01T00:00:00Z", "periodEnd": "2026-08-31T00:00:00Z", "amount": 1e13,
	}, nil)
	h.expect(http.StatusCreated, http.MethodPost, invoices, cfo, map[string]any{
		"periodStart": "2026-08-01T00:00:00Z", "periodEnd": "2026-08-31T00:00:00Z",
	}, &inv)
	h.expect(http.StatusOK, http.MethodPatch, "/invoices/"+inv.ID, cfo, map[string]string{"status": "sent"}, &inv)

	// Period edits belong to the CFO; a company sending one is refused, not misparsed.
	var env api.ErrorEnvelope
	h.expect(http.StatusForbidden, http.MethodPatch, "/invoices/"+inv.ID, company, map[string]string{
		"status": "paid", "periodStart": "2026-08-02T00:00:00Z",
	}, &env)
	if env.Error.Kind != domain.KindForbidden {
		t.Fatalf("expected forbidden kind, got %+v", env.Error)
	}

	payments := "/invoices/" + inv.ID + "/payments"
	h.expect(http.StatusBadRequest, http.MethodPost, payments, company, map[string]any{
		"paymentDate": "2026-09-01T10:00:00Z", "paymentMethod": "bank_transfer", "amount": 0.001,
	}, nil)
	for _, amount := range []float64{200000, 100000} {
		h.expect(http.StatusCreated, http.MethodPost, payments, company, map[string]any{
			"paymentDate": "2026-09-01T10:00:00Z", "paymentMethod": "bank_transfer", "amount": amount,
		}, nil)
	}
	h.expect(http.StatusConflict, http.MethodPatch, "/invoices/"+inv.ID, cfo, map[string]any{"amount": 1000}, nil)

	var page domain.Page[domain.Payment]
	h.expect(http.StatusOK, http.MethodGet, payments+"?page=2&limit=1", cfo, nil, &page)
	if page.Pagination.Total != 2 || page.Pagination.Page != 2 || page.Pagination.Limit != 1 || len(page.Data) != 1 {
		t.Fatalf("unexpected payment page %+v", page)
	}
	h.expect(http.StatusBadRequest, http.MethodGet, payments+"?limit=abc", cfo, nil, nil)
}
