package store

import (
	"context"

	"github.com/mahamudulhasan-me/bristo-boss-server/internal/model"
)

// UserStore provides access to the users collection.
type UserStore interface {
	// All returns every user document.
	All(ctx context.Context) ([]model.User, error)
	// FindByUID returns the user with the given external auth subject id,
	// or nil if no such user exists.
	FindByUID(ctx context.Context, uid string) (*model.User, error)
	// FindByEmail returns the user with the given email, or nil.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// Insert stores a new user document and returns its generated id.
	Insert(ctx context.Context, user model.User) (string, error)
	// SetRole updates the role of the user with the given document id and
	// returns the number of modified documents (0 if the id is unknown).
	SetRole(ctx context.Context, id, role string) (int64, error)
	// Delete removes the user with the given document id and returns the
	// number of deleted documents.
	Delete(ctx context.Context, id string) (int64, error)
	// Count returns the number of user documents.
	Count(ctx context.Context) (int64, error)
}

// MenuStore provides access to the menu collection.
type MenuStore interface {
	All(ctx context.Context) ([]model.MenuItem, error)
	Insert(ctx context.Context, item model.MenuItem) (string, error)
	Delete(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// ReviewStore provides read access to the review collection. The API
// defines no write route for reviews.
type ReviewStore interface {
	All(ctx context.Context) ([]model.Review, error)
}

// CartStore provides access to the carts collection.
type CartStore interface {
	Insert(ctx context.Context, item model.CartItem) (string, error)
	// FindByOwner returns the cart items whose owner field equals uid.
	FindByOwner(ctx context.Context, uid string) ([]model.CartItem, error)
	Delete(ctx context.Context, id string) (int64, error)
	// DeleteMany removes the cart items with the given document ids and
	// returns the number deleted. Unknown ids are skipped, so the call is
	// safe to repeat.
	DeleteMany(ctx context.Context, ids []string) (int64, error)
}

// PaymentStore provides access to the payments collection. Payments are
// insert-only; there is no update or delete.
type PaymentStore interface {
	Insert(ctx context.Context, payment model.Payment) (string, error)
	Count(ctx context.Context) (int64, error)
	// TotalAmount returns the sum of the amount field across all payments.
	TotalAmount(ctx context.Context) (float64, error)
}

// Store bundles the per-collection stores. Route constructors receive the
// stores they need explicitly, so tests can substitute the in-memory
// implementation.
type Store struct {
	Users    UserStore
	Menu     MenuStore
	Reviews  ReviewStore
	Carts    CartStore
	Payments PaymentStore
}
