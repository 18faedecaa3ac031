package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mahamudulhasan-me/bristo-boss-server/internal/model"
)

// NewMemory builds an in-memory Store with the same semantics as the Mongo
// implementation. Tests use it in place of a running database.
func NewMemory() *Store {
	return &Store{
		Users:    &memoryUsers{docs: map[string]model.User{}},
		Menu:     &memoryMenu{docs: map[string]model.MenuItem{}},
		Reviews:  &memoryReviews{},
		Carts:    &memoryCarts{docs: map[string]model.CartItem{}},
		Payments: &memoryPayments{docs: map[string]model.Payment{}},
	}
}

type memoryUsers struct {
	mu   sync.RWMutex
	docs map[string]model.User
}

func (s *memoryUsers) All(ctx context.Context) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]model.User, 0, len(s.docs))
	for _, u := range s.docs {
		users = append(users, u)
	}
	return users, nil
}

func (s *memoryUsers) FindByUID(ctx context.Context, uid string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.docs {
		if u.UserUID == uid {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (s *memoryUsers) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.docs {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (s *memoryUsers) Insert(ctx context.Context, user model.User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.docs[user.ID.Hex()] = user
	return user.ID.Hex(), nil
}

func (s *memoryUsers) SetRole(ctx context.Context, id, role string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.docs[id]
	if !ok {
		return 0, nil
	}
	user.Role = role
	s.docs[id] = user
	return 1, nil
}

func (s *memoryUsers) Delete(ctx context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return 0, nil
	}
	delete(s.docs, id)
	return 1, nil
}

func (s *memoryUsers) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.docs)), nil
}

type memoryMenu struct {
	mu   sync.RWMutex
	docs map[string]model.MenuItem
}

func (s *memoryMenu) All(ctx context.Context) ([]model.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]model.MenuItem, 0, len(s.docs))
	for _, item := range s.docs {
		items = append(items, item)
	}
	return items, nil
}

func (s *memoryMenu) Insert(ctx context.Context, item model.MenuItem) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	s.docs[item.ID.Hex()] = item
	return item.ID.Hex(), nil
}

func (s *memoryMenu) Delete(ctx context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return 0, nil
	}
	delete(s.docs, id)
	return 1, nil
}

func (s *memoryMenu) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.docs)), nil
}

type memoryReviews struct {
	mu   sync.RWMutex
	docs []model.Review
}

func (s *memoryReviews) All(ctx context.Context) ([]model.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Review(nil), s.docs...), nil
}

// Seed loads review documents, standing in for the out-of-band seeding the
// API itself does not offer.
func (s *memoryReviews) Seed(reviews ...model.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = append(s.docs, reviews...)
}

type memoryCarts struct {
	mu   sync.RWMutex
	docs map[string]model.CartItem
}

func (s *memoryCarts) Insert(ctx context.Context, item model.CartItem) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	s.docs[item.ID.Hex()] = item
	return item.ID.Hex(), nil
}

func (s *memoryCarts) FindByOwner(ctx context.Context, uid string) ([]model.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []model.CartItem
	for _, item := range s.docs {
		if item.UserUID == uid {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *memoryCarts) Delete(ctx context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return 0, nil
	}
	delete(s.docs, id)
	return 1, nil
}

func (s *memoryCarts) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for _, id := range ids {
		if _, ok := s.docs[id]; ok {
			delete(s.docs, id)
			deleted++
		}
	}
	return deleted, nil
}

type memoryPayments struct {
	mu   sync.RWMutex
	docs map[string]model.Payment
}

func (s *memoryPayments) Insert(ctx context.Context, payment model.Payment) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	s.docs[payment.ID.Hex()] = payment
	return payment.ID.Hex(), nil
}

func (s *memoryPayments) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.docs)), nil
}

func (s *memoryPayments) TotalAmount(ctx context.Context) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, p := range s.docs {
		total += p.Amount
	}
	return total, nil
}
