package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront_service/internal/domain"
)

// MemoryStore backs the service when no DATABASE_URL is configured, and doubles
// as the store for tests. Keys use the same hex format as the real store so
// hydration behaves identically against either backend. Listing follows
// insertion order.
type MemoryStore struct {
	mu       sync.RWMutex
	products []domain.Product
	items    []domain.CartItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) CreateProduct(ctx context.Context, product *domain.Product) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *product
	stored.ID = primitive.NewObjectID().Hex()
	stored.Sizes = append([]string(nil), product.Sizes...)
	s.products = append(s.products, stored)

	product.ID = stored.ID
	return stored.ID, nil
}

func (s *MemoryStore) ListProducts(ctx context.Context, filter domain.ProductFilter, limit int64) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		out = append(out, p)
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
	}
	return out, nil
}

func (s *MemoryStore) GetProductsByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Product
	for _, p := range s.products {
		if _, ok := wanted[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemoryStore) CreateCartItem(ctx context.Context, item *domain.CartItem) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *item
	stored.ID = primitive.NewObjectID().Hex()
	stored.Product = nil
	s.items = append(s.items, stored)

	item.ID = stored.ID
	return stored.ID, nil
}

func (s *MemoryStore) ListCartItems(ctx context.Context, cartID string) ([]domain.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.CartItem
	for _, it := range s.items {
		if it.CartID == cartID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *MemoryStore) Ping(ctx context.Context) error { return nil }

func (s *MemoryStore) CollectionNames(ctx context.Context) ([]string, error) {
	return []string{ProductCollection, CartItemCollection}, nil
}
