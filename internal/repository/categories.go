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

// CategoryDocument represents a category stored in MongoDB.
type CategoryDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Description  string             `bson:"description,omitempty"`
	ImageURL     string             `bson:"image_url,omitempty"`
	DisplayOrder int                `bson:"display_order"`
	Active       bool               `bson:"is_active"`
	CreatedAt    time.Time          `bson:"created_at"`
}

// SubcategoryDocument represents a subcategory stored in MongoDB.
type SubcategoryDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	CategoryID   string             `bson:"category_id"`
	Name         string             `bson:"name"`
	DisplayOrder int                `bson:"display_order"`
	Active       bool               `bson:"is_active"`
	CreatedAt    time.Time          `bson:"created_at"`
}

// CategoryRepository provides category and subcategory persistence.
type CategoryRepository struct {
	categories    *mongo.Collection
	subcategories *mongo.Collection
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(db *MongoDB) *CategoryRepository {
	return &CategoryRepository{
		categories:    db.Categories,
		subcategories: db.Subcategories,
	}
}

var byDisplayOrder = bson.D{{Key: "display_order", Value: 1}, {Key: "name", Value: 1}}

// ListCategories returns categories ordered by display order.
func (r *CategoryRepository) ListCategories(ctx context.Context, activeOnly bool) ([]model.Category, error) {
	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}

	cursor, err := r.categories.Find(ctx, filter, options.Find().SetSort(byDisplayOrder))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []CategoryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]model.Category, len(docs))
	for i, d := range docs {
		out[i] = model.Category{
			ID:           d.ID.Hex(),
			Name:         d.Name,
			Description:  d.Description,
			ImageURL:     d.ImageURL,
			DisplayOrder: d.DisplayOrder,
			Active:       d.Active,
			CreatedAt:    d.CreatedAt,
		}
	}
	return out, nil
}

// ListSubcategories returns subcategories, optionally for one category, ordered by display order.
func (r *CategoryRepository) ListSubcategories(ctx context.Context, categoryID string, activeOnly bool) ([]model.Subcategory, error) {
	filter := bson.M{}
	if categoryID != "" {
		filter["category_id"] = categoryID
	}
	if activeOnly {
		filter["is_active"] = true
	}

	cursor, err := r.subcategories.Find(ctx, filter, options.Find().SetSort(byDisplayOrder))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []SubcategoryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]model.Subcategory, len(docs))
	for i, d := range docs {
		out[i] = model.Subcategory{
			ID:           d.ID.Hex(),
			CategoryID:   d.CategoryID,
			Name:         d.Name,
			DisplayOrder: d.DisplayOrder,
			Active:       d.Active,
			CreatedAt:    d.CreatedAt,
		}
	}
	return out, nil
}

// CreateCategory inserts a category and assigns its ID.
func (r *CategoryRepository) CreateCategory(ctx context.Context, c *model.Category) error {
	doc := CategoryDocument{
		ID:           primitive.NewObjectID(),
		Name:         c.Name,
		Description:  c.Description,
		ImageURL:     c.ImageURL,
		DisplayOrder: c.DisplayOrder,
		Active:       c.Active,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := r.categories.InsertOne(ctx, doc); err != nil {
		return err
	}
	c.ID = doc.ID.Hex()
	c.CreatedAt = doc.CreatedAt
	return nil
}

// CreateSubcategory inserts a subcategory and assigns its ID.
func (r *CategoryRepository) CreateSubcategory(ctx context.Context, s *model.Subcategory) error {
	doc := SubcategoryDocument{
		ID:           primitive.NewObjectID(),
		CategoryID:   s.CategoryID,
		Name:         s.Name,
		DisplayOrder: s.DisplayOrder,
		Active:       s.Active,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := r.subcategories.InsertOne(ctx, doc); err != nil {
		return err
	}
	s.ID = doc.ID.Hex()
	s.CreatedAt = doc.CreatedAt
	return nil
}

// DeleteCategory removes a category.
func (r *CategoryRepository) DeleteCategory(ctx context.Context, id string) error {
	return deleteByID(ctx, r.categories, id)
}

// DeleteSubcategory removes a subcategory.
func (r *CategoryRepository) DeleteSubcategory(ctx context.Context, id string) error {
	return deleteByID(ctx, r.subcategories, id)
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string) error {
	oid, ok := objectIDFromHex(id)
	if !ok {
		return ErrNotFound
	}
	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
