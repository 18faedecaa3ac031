package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mahamudulhasan-me/bristo-boss-server/internal/httperr"
	"github.com/mahamudulhasan-me/bristo-boss-server/internal/store"
)

// StatsHandler serves the admin dashboard counters.
type StatsHandler struct {
	users    store.UserStore
	menu     store.MenuStore
	payments store.PaymentStore
}

func NewStatsHandler(users store.UserStore, menu store.MenuStore, payments store.PaymentStore) *StatsHandler {
	return &StatsHandler{users: users, menu: menu, payments: payments}
}

// AdminStats returns document counts and total revenue. Admin only.
func (h *StatsHandler) AdminStats(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.users.Count(ctx)
	if err != nil {
		panic(httperr.Internal(err))
	}
	menuItems, err := h.menu.Count(ctx)
	if err != nil {
		panic(httperr.Internal(err))
	}
	payments, err := h.payments.Count(ctx)
	if err != nil {
		panic(httperr.Internal(err))
	}
	revenue, err := h.payments.TotalAmount(ctx)
	if err != nil {
		panic(httperr.Internal(err))
	}

	c.JSON(200, gin.H{
		"users":     users,
		"menuItems": menuItems,
		"payments":  payments,
		"revenue":   revenue,
	})
}
