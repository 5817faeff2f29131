package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"comanda-pos/internal/model"
)

type AddItemRequest struct {
	ProductID   string          `json:"product_id"`
	CompositeID string          `json:"composite_id"`
	PortionID   string          `json:"portion_id"`
	Quantity    int             `json:"quantity"`
	Observation string          `json:"observation"`
	Toggles     map[string]bool `json:"toggles"` // ingredient product id -> included
}

type CustomerRequest struct {
	CustomerName string `json:"customer_name" validate:"max=255"`
}

type CartService interface {
	Create(kind model.CartKind) (string, *model.Cart)
	Get(id string) (*model.Cart, error)
	Delete(id string) error
	AddItem(id string, req *AddItemRequest) (*model.Cart, error)
	UpdateQuantity(id string, index, delta int) (*model.Cart, error)
	RemoveItem(id string, index int) (*model.Cart, error)
	Clear(id string) (*model.Cart, error)
	SetCustomer(id string, req *CustomerRequest) (*model.Cart, error)
	Submit(ctx context.Context, id string, table int) (model.Order, error)
	LoadTable(id string, raw string) (*LoadedTab, error)
	Checkout(ctx context.Context, id string, req *SettleRequest) (*Settlement, error)
}

type cartService struct {
	store    *CartStore
	catalog  *Catalog
	checkout CheckoutService
}

func NewCartService(store *CartStore, catalog *Catalog, checkout CheckoutService) CartService {
	return &cartService{store: store, catalog: catalog, checkout: checkout}
}

func (s *cartService) Create(kind model.CartKind) (string, *model.Cart) {
	if kind != model.CartCounter {
		kind = model.CartTable
	}
	id := s.store.Create(kind)
	cart, _ := s.store.Get(id)
	return id, cart
}

func (s *cartService) Get(id string) (*model.Cart, error) {
	return s.store.Get(id)
}

func (s *cartService) Delete(id string) error {
	if !s.store.Delete(id) {
		return ErrCartNotFound
	}
	return nil
}

// AddItem resolves the catalog entry and stages it. Counter carts check
// ingredient stock up front; table carts only at submission.
func (s *cartService) AddItem(id string, req *AddItemRequest) (*model.Cart, error) {
	if req.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if utf8.RuneCountInString(req.Observation) > model.MaxObservationLength {
		return nil, ErrObservationTooLong
	}
	chosen := 0
	for _, ref := range []string{req.ProductID, req.CompositeID, req.PortionID} {
		if ref != "" {
			chosen++
		}
	}
	if chosen != 1 {
		return nil, ErrInvalidItemRequest
	}

	return s.mutate(id, func(cart *model.Cart) error {
		switch {
		case req.ProductID != "":
			product, err := s.catalog.Product(req.ProductID)
			if err != nil {
				return err
			}
			if !product.Active || product.IsFractional() {
				return ErrInactiveItem
			}
			cart.AddSimple(product.Snapshot(), req.Quantity, req.Observation)

		case req.CompositeID != "":
			composite, err := s.catalog.Composite(req.CompositeID)
			if err != nil {
				return err
			}
			if !composite.Active {
				return ErrInactiveItem
			}
			selected := ResolveIngredients(composite, req.Toggles)
			if cart.Kind == model.CartCounter {
				if err := s.checkout.CheckAvailability(selected, req.Quantity); err != nil {
					return err
				}
			}
			cart.AddComposite(composite.Snapshot(), composite.ID, selected, req.Observation, req.Quantity)

		default:
			portion, err := s.catalog.Portion(req.PortionID)
			if err != nil {
				return err
			}
			if !portion.Active {
				return ErrInactiveItem
			}
			if cart.Kind == model.CartCounter {
				if err := s.checkout.CheckAvailability(portion.SelectedIngredients(), req.Quantity+portionQuantity(cart, portion.ID, req.Observation)); err != nil {
					return err
				}
			}
			cart.AddPortion(portion, req.Quantity, req.Observation)
		}
		return nil
	})
}

// UpdateQuantity rechecks ingredient stock when a counter line grows
func (s *cartService) UpdateQuantity(id string, index, delta int) (*model.Cart, error) {
	return s.mutate(id, func(cart *model.Cart) error {
		if delta > 0 && cart.Kind == model.CartCounter && index >= 0 && index < len(cart.Items) {
			line := cart.Items[index]
			if line.TracksIngredients() && !line.IngredientsDeducted {
				if err := s.checkout.CheckAvailability(line.SelectedIngredients, line.Quantity+delta); err != nil {
					return err
				}
			}
		}
		if !cart.UpdateQuantity(index, delta) {
			return ErrCartLineNotFound
		}
		return nil
	})
}

func (s *cartService) RemoveItem(id string, index int) (*model.Cart, error) {
	return s.mutate(id, func(cart *model.Cart) error {
		if !cart.Remove(index) {
			return ErrCartLineNotFound
		}
		return nil
	})
}

func (s *cartService) Clear(id string) (*model.Cart, error) {
	return s.mutate(id, func(cart *model.Cart) error {
		cart.Clear()
		return nil
	})
}

func (s *cartService) SetCustomer(id string, req *CustomerRequest) (*model.Cart, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return s.mutate(id, func(cart *model.Cart) error {
		cart.CustomerName = strings.TrimSpace(req.CustomerName)
		return nil
	})
}

func (s *cartService) Submit(ctx context.Context, id string, table int) (model.Order, error) {
	var order model.Order
	err := s.store.With(id, func(cart *model.Cart) error {
		if cart.Kind != model.CartTable {
			return ErrWrongCartKind
		}
		var err error
		order, err = s.checkout.SubmitTable(ctx, cart, table)
		return err
	})
	return order, err
}

// LoadTable accepts a typed number or a decoded QR payload
func (s *cartService) LoadTable(id string, raw string) (*LoadedTab, error) {
	table, err := ParseTableNumber(raw)
	if err != nil {
		return nil, err
	}

	var tab *LoadedTab
	err = s.store.With(id, func(cart *model.Cart) error {
		if cart.Kind != model.CartCounter {
			return ErrWrongCartKind
		}
		var err error
		tab, err = s.checkout.LoadTable(cart, table)
		return err
	})
	return tab, err
}

func (s *cartService) Checkout(ctx context.Context, id string, req *SettleRequest) (*Settlement, error) {
	var result *Settlement
	err := s.store.With(id, func(cart *model.Cart) error {
		if cart.Kind != model.CartCounter {
			return ErrWrongCartKind
		}
		var err error
		result, err = s.checkout.Settle(ctx, cart, req)
		return err
	})
	return result, err
}

func (s *cartService) mutate(id string, fn func(cart *model.Cart) error) (*model.Cart, error) {
	var out *model.Cart
	err := s.store.With(id, func(cart *model.Cart) error {
		if err := fn(cart); err != nil {
			return err
		}
		out = cart.Clone()
		return nil
	})
	return out, err
}

func portionQuantity(cart *model.Cart, portionID, observation string) int {
	for _, item := range cart.Items {
		if item.PortionID == portionID && item.Observation == observation && !item.IngredientsDeducted {
			return item.Quantity
		}
	}
	return 0
}
