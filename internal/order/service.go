package order

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/MananRadadiya/Gaming-Store-sub001/internal/address"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/cart"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/logging"
)

// Carts is the part of the cart service checkout needs.
type Carts interface {
	Checkout(userID int, place func(cart.Cart) error) error
}

// Addresses resolves the shipping address chosen at checkout.
type Addresses interface {
	Get(userID, addressID int) (address.Address, error)
}

// Service provides business logic for orders.
type Service struct {
	repo      Repository
	carts     Carts
	addresses Addresses
	now       func() time.Time
	log       zerolog.Logger
}

func NewService(r Repository, carts Carts, addresses Addresses) *Service {
	return &Service{repo: r, carts: carts, addresses: addresses, now: time.Now, log: logging.With("order")}
}

// PlaceOrder turns the user's cart into an order and empties the cart.
// addressID 0 places the order without a shipping address. No payment is
// taken; the order is recorded as placed.
func (s *Service) PlaceOrder(userID, addressID int) (Order, error) {
	if userID <= 0 {
		return Order{}, cart.ErrInvalidUser
	}
	var shipTo *address.Address
	if addressID != 0 {
		a, err := s.addresses.Get(userID, addressID)
		if err != nil {
			return Order{}, err
		}
		shipTo = &a
	}

	var created Order
	err := s.carts.Checkout(userID, func(c cart.Cart) error {
		ord := fromCart(c, s.now().UTC().Format(time.RFC3339))
		ord.ShippingAddress = shipTo
		stored, err := s.repo.Create(userID, ord)
		if err != nil {
			return err
		}
		created = stored
		return nil
	})
	if err != nil {
		return Order{}, err
	}
	s.log.Info().
		Int("user_id", userID).
		Int64("order_id", created.OrderID).
		Int("grand_price", created.GrandPrice).
		Msg("order placed")
	return created, nil
}

func (s *Service) List(userID int) ([]Order, error) {
	if userID <= 0 {
		return nil, cart.ErrInvalidUser
	}
	return s.repo.ListByUser(userID)
}
