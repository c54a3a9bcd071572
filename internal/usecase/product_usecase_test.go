package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"storefront_service/internal/domain"
	"storefront_service/internal/repository"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestCreateProductValidation(t *testing.T) {
	uc := NewProductUseCase(repository.NewMemoryStore(), newTestLogger())

	t.Run("empty title -> validation error", func(t *testing.T) {
		_, err := uc.CreateProduct(context.Background(), &domain.Product{Category: "tops", Price: 10})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("empty category -> validation error", func(t *testing.T) {
		_, err := uc.CreateProduct(context.Background(), &domain.Product{Title: "Knit Polo", Price: 10})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("negative price -> validation error", func(t *testing.T) {
		_, err := uc.CreateProduct(context.Background(), &domain.Product{Title: "Knit Polo", Category: "tops", Price: -1})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("zero price is accepted", func(t *testing.T) {
		id, err := uc.CreateProduct(context.Background(), &domain.Product{Title: "Sticker", Category: "accessories"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id == "" {
			t.Fatal("expected a generated id")
		}
	})
}

func TestCreateThenListRoundTrip(t *testing.T) {
	uc := NewProductUseCase(repository.NewMemoryStore(), newTestLogger())

	in := &domain.Product{
		Title:       "Wool Overcoat",
		Description: "Double-faced wool.",
		Price:       780,
		Category:    "outerwear",
		InStock:     true,
		Sizes:       []string{"M", "L"},
	}
	id, err := uc.CreateProduct(context.Background(), in)
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	products, err := uc.ListProducts(context.Background(), "", 0)
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}

	var found *domain.Product
	for i := range products {
		if products[i].ID == id {
			found = &products[i]
			break
		}
	}
	if found == nil {
		t.Fatalf("created product %s not returned by listing", id)
	}
	if found.Title != in.Title || found.Price != in.Price || found.Category != in.Category {
		t.Fatalf("listed product %+v does not match input %+v", found, in)
	}
	if len(found.Sizes) != 2 || found.Sizes[0] != "M" {
		t.Fatalf("sizes not preserved: %v", found.Sizes)
	}
}

func TestListProductsLimit(t *testing.T) {
	uc := NewProductUseCase(repository.NewMemoryStore(), newTestLogger())

	t.Run("empty store -> empty list", func(t *testing.T) {
		products, err := uc.ListProducts(context.Background(), "", 1)
		if err != nil {
			t.Fatalf("ListProducts: %v", err)
		}
		if len(products) != 0 {
			t.Fatalf("expected no products, got %d", len(products))
		}
	})

	t.Run("limit 1 -> exactly one", func(t *testing.T) {
		for _, title := range []string{"Raw Denim", "Tech Runner"} {
			if _, err := uc.CreateProduct(context.Background(), &domain.Product{Title: title, Category: "misc", Price: 1}); err != nil {
				t.Fatalf("CreateProduct: %v", err)
			}
		}
		products, err := uc.ListProducts(context.Background(), "", 1)
		if err != nil {
			t.Fatalf("ListProducts: %v", err)
		}
		if len(products) != 1 {
			t.Fatalf("expected exactly one product, got %d", len(products))
		}
	})
}

func TestSeedProducts(t *testing.T) {
	uc := NewProductUseCase(repository.NewMemoryStore(), newTestLogger())

	inserted, err := uc.SeedProducts(context.Background())
	if err != nil {
		t.Fatalf("SeedProducts: %v", err)
	}
	if len(inserted) != 10 {
		t.Fatalf("expected 10 inserted ids, got %d", len(inserted))
	}

	t.Run("category filter after seed", func(t *testing.T) {
		products, err := uc.ListProducts(context.Background(), "footwear", 0)
		if err != nil {
			t.Fatalf("ListProducts: %v", err)
		}
		if len(products) != 2 {
			t.Fatalf("expected 2 footwear products, got %d", len(products))
		}
		for _, p := range products {
			if p.Category != "footwear" {
				t.Fatalf("filter leaked category %q", p.Category)
			}
		}
	})

	t.Run("seeding twice doubles the catalog", func(t *testing.T) {
		if _, err := uc.SeedProducts(context.Background()); err != nil {
			t.Fatalf("SeedProducts: %v", err)
		}
		products, err := uc.ListProducts(context.Background(), "", 100)
		if err != nil {
			t.Fatalf("ListProducts: %v", err)
		}
		if len(products) != 20 {
			t.Fatalf("expected 20 products after double seed, got %d", len(products))
		}
	})
}

func TestSeedCatalogShape(t *testing.T) {
	counts := map[string]int{}
	for _, p := range sampleProducts {
		counts[p.Category]++
		if p.Title == "" || p.Price <= 0 {
			t.Fatalf("seed record %+v is incomplete", p)
		}
	}
	for _, category := range []string{"outerwear", "tops", "bottoms", "footwear", "accessories"} {
		if counts[category] != 2 {
			t.Fatalf("expected 2 %s records, got %d", category, counts[category])
		}
	}
}
