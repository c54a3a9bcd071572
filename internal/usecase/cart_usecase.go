package usecase

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"storefront_service/internal/domain"
)

type CartUseCase interface {
	AddItem(ctx context.Context, item *domain.CartItem) (string, error)
	ListItems(ctx context.Context, cartID string) ([]domain.CartItem, error)
}

type cartUseCase struct {
	cartRepo    domain.CartItemRepository
	productRepo domain.ProductRepository
	log         *logrus.Logger
}

func NewCartUseCase(cartRepo domain.CartItemRepository, productRepo domain.ProductRepository, logger *logrus.Logger) CartUseCase {
	return &cartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		log:         logger,
	}
}

func (uc *cartUseCase) AddItem(ctx context.Context, item *domain.CartItem) (string, error) {
	if item.CartID == "" {
		uc.log.Warn("Use Case: Attempted to add cart item without cart_id")
		return "", fmt.Errorf("%w: cart_id cannot be empty", domain.ErrValidation)
	}
	if item.Quantity < 0 {
		uc.log.Warnf("Use Case: Attempted to add cart item with negative quantity: %d", item.Quantity)
		return "", fmt.Errorf("%w: quantity cannot be negative", domain.ErrValidation)
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	// The product reference is not checked: it is a weak reference and a
	// dangling value simply hydrates to nothing on read.

	uc.log.Infof("Use Case: Adding item to cart %s (product: %q)", item.CartID, item.ProductID)
	id, err := uc.cartRepo.CreateCartItem(ctx, item)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to add item to cart %s: %v", item.CartID, err)
		return "", err
	}

	uc.log.Infof("Use Case: Cart item created successfully with ID %s", id)
	return id, nil
}

// ListItems fetches every item in a cart and hydrates each with its referenced
// product. Products are fetched in one batch query rather than per item; a
// product_id that resolves to nothing leaves the item without a product.
func (uc *cartUseCase) ListItems(ctx context.Context, cartID string) ([]domain.CartItem, error) {
	if cartID == "" {
		uc.log.Warn("Use Case: Attempted to list cart items without cart_id")
		return nil, fmt.Errorf("%w: cart_id cannot be empty", domain.ErrValidation)
	}

	uc.log.Infof("Use Case: Listing items for cart %s", cartID)
	items, err := uc.cartRepo.ListCartItems(ctx, cartID)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list items for cart %s: %v", cartID, err)
		return nil, fmt.Errorf("could not retrieve cart items: %w", err)
	}

	productIDs := distinctProductIDs(items)
	if len(productIDs) == 0 {
		uc.log.Infof("Use Case: Retrieved %d items for cart %s, nothing to hydrate", len(items), cartID)
		return items, nil
	}

	products, err := uc.productRepo.GetProductsByIDs(ctx, productIDs)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to hydrate cart %s: %v", cartID, err)
		return nil, fmt.Errorf("could not hydrate cart items: %w", err)
	}

	productMap := make(map[string]domain.Product, len(products))
	for _, p := range products {
		productMap[p.ID] = p
	}

	for i := range items {
		if items[i].ProductID == "" {
			continue
		}
		if p, ok := productMap[items[i].ProductID]; ok {
			hydrated := p
			items[i].Product = &hydrated
		}
	}

	uc.log.Infof("Use Case: Retrieved %d items for cart %s, hydrated from %d products", len(items), cartID, len(products))
	return items, nil
}

func distinctProductIDs(items []domain.CartItem) []string {
	seen := make(map[string]struct{}, len(items))
	var ids []string
	for _, it := range items {
		if it.ProductID == "" {
			continue
		}
		if _, ok := seen[it.ProductID]; ok {
			continue
		}
		seen[it.ProductID] = struct{}{}
		ids = append(ids, it.ProductID)
	}
	return ids
}
