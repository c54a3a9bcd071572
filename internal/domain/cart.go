package domain

import "context"

// CartItem groups under CartID; there is no cart entity, the id is purely a
// partition key. ProductID is a weak reference: never enforced by the store,
// resolved best-effort at read time.
type CartItem struct {
	ID        string   `json:"id,omitempty"`
	CartID    string   `json:"cart_id"`
	ProductID string   `json:"product_id,omitempty"`
	Quantity  int      `json:"quantity"`
	Size      string   `json:"size,omitempty"`
	Product   *Product `json:"product,omitempty"`
}

type CartItemRepository interface {
	CreateCartItem(ctx context.Context, item *CartItem) (string, error)
	ListCartItems(ctx context.Context, cartID string) ([]CartItem, error)
}
