package repository

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront_service/internal/domain"
)

const CartItemCollection = "cartitem"

type cartItemDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	CartID    string             `bson:"cart_id"`
	ProductID string             `bson:"product_id,omitempty"`
	Quantity  int                `bson:"quantity"`
	Size      string             `bson:"size,omitempty"`
}

func (d cartItemDocument) toDomain() domain.CartItem {
	return domain.CartItem{
		ID:        d.ID.Hex(),
		CartID:    d.CartID,
		ProductID: d.ProductID,
		Quantity:  d.Quantity,
		Size:      d.Size,
	}
}

type mongoCartItemRepository struct {
	db  *mongo.Database
	log *logrus.Logger
}

func NewMongoCartItemRepository(db *mongo.Database, logger *logrus.Logger) domain.CartItemRepository {
	return &mongoCartItemRepository{
		db:  db,
		log: logger,
	}
}

func (r *mongoCartItemRepository) CreateCartItem(ctx context.Context, item *domain.CartItem) (string, error) {
	doc := cartItemDocument{
		CartID:    item.CartID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Size:      item.Size,
	}

	result, err := r.db.Collection(CartItemCollection).InsertOne(ctx, doc)
	if err != nil {
		r.log.Errorf("Failed to insert cart item for cart %s: %v", item.CartID, err)
		return "", storeError("could not create cart item", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("could not create cart item: unexpected inserted id type %T", result.InsertedID)
	}

	id := oid.Hex()
	item.ID = id
	r.log.Infof("Cart item created successfully with ID: %s, CartID: %s", id, item.CartID)
	return id, nil
}

func (r *mongoCartItemRepository) ListCartItems(ctx context.Context, cartID string) ([]domain.CartItem, error) {
	// No limit: a cart is small by construction.
	cursor, err := r.db.Collection(CartItemCollection).Find(ctx, bson.M{"cart_id": cartID})
	if err != nil {
		r.log.Errorf("Failed to list cart items for cart %s: %v", cartID, err)
		return nil, storeError("could not list cart items", err)
	}

	var docs []cartItemDocument
	if err := cursor.All(ctx, &docs); err != nil {
		r.log.Errorf("Failed to decode cart items for cart %s: %v", cartID, err)
		return nil, storeError("could not decode cart items", err)
	}

	items := make([]domain.CartItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toDomain())
	}

	r.log.Infof("Retrieved %d cart items for cart %s", len(items), cartID)
	return items, nil
}
