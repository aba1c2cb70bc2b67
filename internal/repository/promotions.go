package repository

import (
	"context"
	"time"

	"github.com/guttosm/bakery-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PromotionDocument represents a promotion slot stored in MongoDB.
type PromotionDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	ProductID    string             `bson:"product_id"`
	Type         string             `bson:"promotion_type"`
	DisplayOrder int                `bson:"display_order"`
	Active       bool               `bson:"is_active"`
	CreatedAt    time.Time          `bson:"created_at"`
}

// PromotionRepository provides promotion persistence.
type PromotionRepository struct {
	collection *mongo.Collection
}

// NewPromotionRepository creates a new promotion repository.
func NewPromotionRepository(db *MongoDB) *PromotionRepository {
	return &PromotionRepository{collection: db.Promotions}
}

// ListActive returns active promotions of the given type ordered by display order.
func (r *PromotionRepository) ListActive(ctx context.Context, promotionType model.PromotionType) ([]model.Promotion, error) {
	filter := bson.M{
		"promotion_type": string(promotionType),
		"is_active":      true,
	}
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []PromotionDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]model.Promotion, len(docs))
	for i, d := range docs {
		out[i] = model.Promotion{
			ID:           d.ID.Hex(),
			ProductID:    d.ProductID,
			Type:         model.PromotionType(d.Type),
			DisplayOrder: d.DisplayOrder,
			Active:       d.Active,
			CreatedAt:    d.CreatedAt,
		}
	}
	return out, nil
}

// Create inserts a promotion and assigns its ID.
func (r *PromotionRepository) Create(ctx context.Context, p *model.Promotion) error {
	doc := PromotionDocument{
		ID:           primitive.NewObjectID(),
		ProductID:    p.ProductID,
		Type:         string(p.Type),
		DisplayOrder: p.DisplayOrder,
		Active:       p.Active,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	p.ID = doc.ID.Hex()
	p.CreatedAt = doc.CreatedAt
	return nil
}

// Delete removes a promotion.
func (r *PromotionRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.collection, id)
}
