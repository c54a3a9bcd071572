package usecase

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"storefront_service/internal/domain"
)

// DefaultListLimit caps product listings when the caller does not ask for a
// specific limit.
const DefaultListLimit = 50

type ProductUseCase interface {
	CreateProduct(ctx context.Context, product *domain.Product) (string, error)
	ListProducts(ctx context.Context, category string, limit int64) ([]domain.Product, error)
	SeedProducts(ctx context.Context) ([]string, error)
}

type productUseCase struct {
	productRepo domain.ProductRepository
	log         *logrus.Logger
}

func NewProductUseCase(repo domain.ProductRepository, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		productRepo: repo,
		log:         logger,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, product *domain.Product) (string, error) {
	if product.Title == "" {
		uc.log.Warn("Use Case: Attempted to create product with empty title")
		return "", fmt.Errorf("%w: product title cannot be empty", domain.ErrValidation)
	}
	if product.Category == "" {
		uc.log.Warnf("Use Case: Attempted to create product '%s' with empty category", product.Title)
		return "", fmt.Errorf("%w: product category cannot be empty", domain.ErrValidation)
	}
	if product.Price < 0 {
		uc.log.Warnf("Use Case: Attempted to create product '%s' with negative price: %f", product.Title, product.Price)
		return "", fmt.Errorf("%w: product price cannot be negative", domain.ErrValidation)
	}

	uc.log.Infof("Use Case: Attempting to create product '%s'", product.Title)
	id, err := uc.productRepo.CreateProduct(ctx, product)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create product '%s': %v", product.Title, err)
		return "", err
	}

	uc.log.Infof("Use Case: Product '%s' created successfully with ID %s", product.Title, id)
	return id, nil
}

// ListProducts returns up to limit products, optionally narrowed to one
// category. Order is whatever the store returns; it is not specified.
func (uc *productUseCase) ListProducts(ctx context.Context, category string, limit int64) ([]domain.Product, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	uc.log.Infof("Use Case: Listing products (category: %q, limit: %d)", category, limit)
	products, err := uc.productRepo.ListProducts(ctx, domain.ProductFilter{Category: category}, limit)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products: %v", err)
		return nil, fmt.Errorf("could not retrieve products: %w", err)
	}

	uc.log.Infof("Use Case: Retrieved %d products", len(products))
	return products, nil
}

// SeedProducts inserts the demonstration catalog. There is no idempotence
// check: calling it twice duplicates every record.
func (uc *productUseCase) SeedProducts(ctx context.Context) ([]string, error) {
	uc.log.Infof("Use Case: Seeding %d demonstration products", len(sampleProducts))

	inserted := make([]string, 0, len(sampleProducts))
	for _, sample := range sampleProducts {
		product := sample
		id, err := uc.productRepo.CreateProduct(ctx, &product)
		if err != nil {
			uc.log.Errorf("Use Case: Seed failed after %d inserts on '%s': %v", len(inserted), sample.Title, err)
			return nil, fmt.Errorf("could not seed products: %w", err)
		}
		inserted = append(inserted, id)
	}

	uc.log.Infof("Use Case: Seeded %d products successfully", len(inserted))
	return inserted, nil
}
