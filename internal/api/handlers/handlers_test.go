package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mahamudulhasan-me/bristo-boss-server/internal/middleware"
	"github.com/mahamudulhasan-me/bristo-boss-server/internal/model"
	"github.com/mahamudulhasan-me/bristo-boss-server/internal/store"
	"github.com/mahamudulhasan-me/bristo-boss-server/internal/token"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIssueToken_InvalidPayload(t *testing.T) {
	h := NewAuthHandler(token.New("secret"))

	r := gin.New()
	r.POST("/jwt", h.IssueToken)

	w := postJSON(t, r, "/jwt", []byte("{not json"))
	if w.Code != 400 {
		t.Errorf("expected 400 for malformed claims, got %d", w.Code)
	}
}

// failingCarts errors on DeleteMany to exercise the settlement-failure path.
type failingCarts struct {
	store.CartStore
}

func (f *failingCarts) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	return 0, errors.New("carts unavailable")
}

func TestRecordPayment_SettlementFailureIsReported(t *testing.T) {
	st := store.NewMemory()
	h := NewPaymentHandler(nil, st.Payments, &failingCarts{CartStore: st.Carts})

	r := gin.New()
	r.Use(middleware.Recovery())
	r.POST("/payments", h.Record)

	payload, err := json.Marshal(model.Payment{UserUID: "u1", Amount: 10, CartItemIDs: []string{"c1"}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	w := postJSON(t, r, "/payments", payload)
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["settlementError"] == nil {
		t.Errorf("expected settlementError in body, got %s", w.Body.String())
	}

	// The payment itself is still recorded.
	count, err := st.Payments.Count(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected payment to be recorded, got %d", count)
	}
}

func TestRecordPayment_FillsTransactionIDAndDate(t *testing.T) {
	st := store.NewMemory()
	h := NewPaymentHandler(nil, st.Payments, st.Carts)

	var recorded model.Payment
	recorder := &capturePayments{PaymentStore: st.Payments, captured: &recorded}
	h.payments = recorder

	r := gin.New()
	r.POST("/payments", h.Record)

	payload, err := json.Marshal(model.Payment{UserUID: "u1", Amount: 10})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	w := postJSON(t, r, "/payments", payload)
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if recorded.TransactionID == "" {
		t.Error("expected a generated transaction id")
	}
	if recorded.Date.IsZero() {
		t.Error("expected the payment date to be set")
	}
}

type capturePayments struct {
	store.PaymentStore
	captured *model.Payment
}

func (c *capturePayments) Insert(ctx context.Context, p model.Payment) (string, error) {
	*c.captured = p
	return c.PaymentStore.Insert(ctx, p)
}
