package usecase

import (
	"context"
	"errors"
	"testing"

	"storefront_service/internal/domain"
	"storefront_service/internal/repository"
)

func newCartFixture(t *testing.T) (CartUseCase, ProductUseCase, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	logger := newTestLogger()
	return NewCartUseCase(store, store, logger), NewProductUseCase(store, logger), store
}

func TestAddItemValidation(t *testing.T) {
	cartUC, _, _ := newCartFixture(t)

	t.Run("missing cart_id -> validation error", func(t *testing.T) {
		_, err := cartUC.AddItem(context.Background(), &domain.CartItem{ProductID: "abc"})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("negative quantity -> validation error", func(t *testing.T) {
		_, err := cartUC.AddItem(context.Background(), &domain.CartItem{CartID: "c1", Quantity: -2})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("quantity defaults to 1", func(t *testing.T) {
		item := &domain.CartItem{CartID: "c1"}
		if _, err := cartUC.AddItem(context.Background(), item); err != nil {
			t.Fatalf("AddItem: %v", err)
		}
		if item.Quantity != 1 {
			t.Fatalf("expected quantity 1, got %d", item.Quantity)
		}
	})
}

func TestListItemsHydration(t *testing.T) {
	cartUC, productUC, _ := newCartFixture(t)

	productID, err := productUC.CreateProduct(context.Background(), &domain.Product{
		Title:    "Leather Derby",
		Price:    420,
		Category: "footwear",
		InStock:  true,
		Sizes:    []string{"42", "43"},
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	if _, err := cartUC.AddItem(context.Background(), &domain.CartItem{
		CartID:    "cart-1",
		ProductID: productID,
		Quantity:  2,
		Size:      "42",
	}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	items, err := cartUC.ListItems(context.Background(), "cart-1")
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	item := items[0]
	if item.Product == nil {
		t.Fatal("expected item to carry its hydrated product")
	}
	if item.Product.ID != productID || item.Product.Title != "Leather Derby" || item.Product.Price != 420 {
		t.Fatalf("hydrated product does not match stored product: %+v", item.Product)
	}
	if item.Quantity != 2 || item.Size != "42" {
		t.Fatalf("item attributes not preserved: %+v", item)
	}
}

func TestListItemsDanglingReference(t *testing.T) {
	cartUC, _, _ := newCartFixture(t)

	if _, err := cartUC.AddItem(context.Background(), &domain.CartItem{
		CartID:    "cart-2",
		ProductID: "64f000000000000000000000",
	}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	items, err := cartUC.ListItems(context.Background(), "cart-2")
	if err != nil {
		t.Fatalf("dangling reference must not be an error, got %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Product != nil {
		t.Fatalf("expected no hydrated product, got %+v", items[0].Product)
	}
}

func TestListItemsNoProductReference(t *testing.T) {
	cartUC, _, _ := newCartFixture(t)

	if _, err := cartUC.AddItem(context.Background(), &domain.CartItem{CartID: "cart-3"}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	items, err := cartUC.ListItems(context.Background(), "cart-3")
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 1 || items[0].Product != nil {
		t.Fatalf("expected one bare item, got %+v", items)
	}
}

func TestListItemsSharedProductHydratesAll(t *testing.T) {
	cartUC, productUC, _ := newCartFixture(t)

	productID, err := productUC.CreateProduct(context.Background(), &domain.Product{
		Title: "Ribbed Beanie", Price: 80, Category: "accessories",
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	for _, size := range []string{"", ""} {
		if _, err := cartUC.AddItem(context.Background(), &domain.CartItem{
			CartID: "cart-4", ProductID: productID, Size: size,
		}); err != nil {
			t.Fatalf("AddItem: %v", err)
		}
	}

	items, err := cartUC.ListItems(context.Background(), "cart-4")
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	for _, it := range items {
		if it.Product == nil || it.Product.ID != productID {
			t.Fatalf("item %s not hydrated from shared product", it.ID)
		}
	}
}

func TestListItemsEmptyCartID(t *testing.T) {
	cartUC, _, _ := newCartFixture(t)

	_, err := cartUC.ListItems(context.Background(), "")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
