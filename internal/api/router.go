package api

import (
	"github.com/gin-gonic/gin"

	"github.com/mahamudulhasan-me/bristo-boss-server/internal/api/handlers"
	"github.com/mahamudulhasan-me/bristo-boss-server/internal/guard"
	"github.com/mahamudulhasan-me/bristo-boss-server/internal/middleware"
	"github.com/mahamudulhasan-me/bristo-boss-server/internal/payment"
	"github.com/mahamudulhasan-me/bristo-boss-server/internal/store"
	"github.com/mahamudulhasan-me/bristo-boss-server/internal/token"
)

// Deps are the collaborators the route layer needs. Passing them in keeps
// the store substitutable in tests.
type Deps struct {
	Tokens  *token.Service
	Store   *store.Store
	Intents payment.IntentCreator
}

// NewRouter builds the gin engine with the full route table.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), middleware.Recovery(), middleware.CORS())

	authenticate := guard.Authenticate(d.Tokens)
	requireAdmin := guard.RequireAdmin(d.Store.Users)

	auth := handlers.NewAuthHandler(d.Tokens)
	users := handlers.NewUserHandler(d.Store.Users)
	menu := handlers.NewMenuHandler(d.Store.Menu)
	reviews := handlers.NewReviewHandler(d.Store.Reviews)
	carts := handlers.NewCartHandler(d.Store.Carts)
	payments := handlers.NewPaymentHandler(d.Intents, d.Store.Payments, d.Store.Carts)
	stats := handlers.NewStatsHandler(d.Store.Users, d.Store.Menu, d.Store.Payments)

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Bristo is cooking")
	})

	r.POST("/jwt", auth.IssueToken)

	r.GET("/users", authenticate, requireAdmin, users.List)
	r.POST("/users", users.Create)
	// Unguarded so the first admin can be bootstrapped; see DESIGN.md.
	r.PATCH("/users/admin/:id", users.Promote)
	r.GET("/users/admin/:uid", authenticate, users.AdminStatus)
	r.DELETE("/users/:id", users.Delete)

	r.GET("/menu", menu.List)
	r.POST("/menu", authenticate, requireAdmin, menu.Create)
	r.DELETE("/menu/:id", authenticate, requireAdmin, menu.Delete)

	r.GET("/review", reviews.List)

	r.POST("/carts", carts.Create)
	r.GET("/carts", authenticate, carts.List)
	r.DELETE("/carts/:id", carts.Delete)

	r.POST("/create-payment-intent", authenticate, payments.CreateIntent)
	r.POST("/payments", authenticate, payments.Record)

	r.GET("/admin-stats", authenticate, requireAdmin, stats.AdminStats)

	return r
}
