package repository

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront_service/internal/domain"
)

const ProductCollection = "product"

// productDocument is the persisted shape; the store key stays private to this
// package and is surfaced to the rest of the service as a hex string.
type productDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Price       float64            `bson:"price"`
	Category    string             `bson:"category"`
	Image       string             `bson:"image,omitempty"`
	InStock     bool               `bson:"in_stock"`
	Sizes       []string           `bson:"sizes,omitempty"`
}

func (d productDocument) toDomain() domain.Product {
	return domain.Product{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Price:       d.Price,
		Category:    d.Category,
		Image:       d.Image,
		InStock:     d.InStock,
		Sizes:       d.Sizes,
	}
}

type mongoProductRepository struct {
	db  *mongo.Database
	log *logrus.Logger
}

func NewMongoProductRepository(db *mongo.Database, logger *logrus.Logger) domain.ProductRepository {
	return &mongoProductRepository{
		db:  db,
		log: logger,
	}
}

func (r *mongoProductRepository) CreateProduct(ctx context.Context, product *domain.Product) (string, error) {
	doc := productDocument{
		Title:       product.Title,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category,
		Image:       product.Image,
		InStock:     product.InStock,
		Sizes:       product.Sizes,
	}

	result, err := r.db.Collection(ProductCollection).InsertOne(ctx, doc)
	if err != nil {
		r.log.Errorf("Failed to insert product '%s': %v", product.Title, err)
		return "", storeError("could not create product", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("could not create product: unexpected inserted id type %T", result.InsertedID)
	}

	id := oid.Hex()
	product.ID = id
	r.log.Infof("Product created successfully with ID: %s, Title: %s", id, product.Title)
	return id, nil
}

func (r *mongoProductRepository) ListProducts(ctx context.Context, filter domain.ProductFilter, limit int64) ([]domain.Product, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}

	cursor, err := r.db.Collection(ProductCollection).Find(ctx, query, options.Find().SetLimit(limit))
	if err != nil {
		r.log.Errorf("Failed to list products: %v", err)
		return nil, storeError("could not list products", err)
	}

	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		r.log.Errorf("Failed to decode products: %v", err)
		return nil, storeError("could not decode products", err)
	}

	products := make([]domain.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, d.toDomain())
	}

	r.log.Infof("Retrieved %d products from store", len(products))
	return products, nil
}

func (r *mongoProductRepository) GetProductsByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			r.log.Errorf("Malformed product id %q in batch fetch: %v", id, err)
			return nil, fmt.Errorf("invalid product id %q: %v", id, err)
		}
		oids = append(oids, oid)
	}

	cursor, err := r.db.Collection(ProductCollection).Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		r.log.Errorf("Failed to batch fetch %d products: %v", len(oids), err)
		return nil, storeError("could not fetch products by id", err)
	}

	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		r.log.Errorf("Failed to decode products in batch fetch: %v", err)
		return nil, storeError("could not decode products", err)
	}

	products := make([]domain.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, d.toDomain())
	}
	return products, nil
}
