package handlers

import (
	"math"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mahamudulhasan-me/bristo-boss-server/internal/httperr"
	"github.com/mahamudulhasan-me/bristo-boss-server/internal/model"
	"github.com/mahamudulhasan-me/bristo-boss-server/internal/payment"
	"github.com/mahamudulhasan-me/bristo-boss-server/internal/store"
)

// PaymentHandler bridges to the payment processor and records settled
// checkouts.
type PaymentHandler struct {
	intents  payment.IntentCreator
	payments store.PaymentStore
	carts    store.CartStore
}

func NewPaymentHandler(intents payment.IntentCreator, payments store.PaymentStore, carts store.CartStore) *PaymentHandler {
	return &PaymentHandler{intents: intents, payments: payments, carts: carts}
}

// CreateIntent forwards the caller-supplied price to the processor and
// returns the client secret. The price is trusted as-is.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var body struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": true, "message": "invalid payment payload"})
		return
	}

	amount := int64(math.Round(body.Price * 100))
	clientSecret, err := h.intents.CreateIntent(amount, "usd")
	if err != nil {
		panic(httperr.Internal(err))
	}

	c.JSON(200, gin.H{"clientSecret": clientSecret})
}

// Record inserts the payment document, then deletes the settled cart items.
// The two operations are not transactional; delete-by-id is idempotent, so
// a settlement interrupted between them is safe to re-run.
func (h *PaymentHandler) Record(c *gin.Context) {
	var p model.Payment
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(400, gin.H{"error": true, "message": "invalid payment payload"})
		return
	}

	if p.TransactionID == "" {
		p.TransactionID = uuid.NewString()
	}
	if p.Date.IsZero() {
		p.Date = time.Now()
	}

	id, err := h.payments.Insert(c.Request.Context(), p)
	if err != nil {
		panic(httperr.Internal(err))
	}

	deleted, err := h.carts.DeleteMany(c.Request.Context(), p.CartItemIDs)
	if err != nil {
		// The payment is recorded; report the settlement failure instead
		// of pretending the whole operation failed.
		c.JSON(200, gin.H{"insertedId": id, "deletedCount": 0, "settlementError": "cart cleanup failed"})
		return
	}

	c.JSON(200, gin.H{"insertedId": id, "deletedCount": deleted})
}
