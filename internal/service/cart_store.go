package service

import (
	"sync"

	"comanda-pos/internal/model"

	"github.com/google/uuid"
)

type cartEntry struct {
	mu   sync.Mutex
	cart *model.Cart
}

// CartStore keeps server-side carts, each owned by the client holding its id
type CartStore struct {
	mu    sync.Mutex
	carts map[string]*cartEntry
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string]*cartEntry)}
}

func (s *CartStore) Create(kind model.CartKind) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.carts[id] = &cartEntry{cart: model.NewCart(kind)}
	s.mu.Unlock()
	return id
}

// With runs fn with exclusive access to the cart
func (s *CartStore) With(id string, fn func(cart *model.Cart) error) error {
	s.mu.Lock()
	entry, ok := s.carts[id]
	s.mu.Unlock()
	if !ok {
		return ErrCartNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return fn(entry.cart)
}

func (s *CartStore) Get(id string) (*model.Cart, error) {
	var out *model.Cart
	err := s.With(id, func(cart *model.Cart) error {
		out = cart.Clone()
		return nil
	})
	return out, err
}

func (s *CartStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.carts[id]; !ok {
		return false
	}
	delete(s.carts, id)
	return true
}

func (s *CartStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.carts)
}
