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

// ProductDocument is the stored form of a product. Flavors are embedded.
type ProductDocument struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`
	SubcategoryID string               `bson:"subcategory_id"`
	Name          string               `bson:"name"`
	Description   string               `bson:"description,omitempty"`
	BasePrice     primitive.Decimal128 `bson:"base_price"`
	WeightOptions []string             `bson:"weight_options"`
	Flavors       []FlavorDocument     `bson:"flavors"`
	ImageURLs     []string             `bson:"image_urls"`
	Active        bool                 `bson:"is_active"`
	Featured      bool                 `bson:"is_featured"`
	CreatedAt     time.Time            `bson:"created_at"`
	UpdatedAt     time.Time            `bson:"updated_at"`
}

// FlavorDocument is an embedded flavor variant.
type FlavorDocument struct {
	ID              string               `bson:"id"`
	Name            string               `bson:"flavor_name"`
	PriceAdjustment primitive.Decimal128 `bson:"price_adjustment"`
	Available       bool                 `bson:"is_available"`
}

// ProductRepository provides product persistence.
type ProductRepository struct {
	collection *mongo.Collection
}

// NewProductRepository creates a new product repository.
func NewProductRepository(db *MongoDB) *ProductRepository {
	return &ProductRepository{collection: db.Products}
}

// FindByID returns the product or nil when it does not exist.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	oid, ok := objectIDFromHex(id)
	if !ok {
		return nil, nil
	}

	var doc ProductDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p := doc.toModel()
	return &p, nil
}

// List returns products matching the filter, newest first.
func (r *ProductRepository) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	query := bson.M{}
	if filter.SubcategoryID != "" {
		query["subcategory_id"] = filter.SubcategoryID
	}
	if filter.ExcludeID != "" {
		if oid, ok := objectIDFromHex(filter.ExcludeID); ok {
			query["_id"] = bson.M{"$ne": oid}
		}
	}
	if filter.ActiveOnly {
		query["is_active"] = true
	}
	if filter.FeaturedOnly {
		query["is_featured"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []ProductDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	products := make([]model.Product, len(docs))
	for i := range docs {
		products[i] = docs[i].toModel()
	}
	return products, nil
}

// Create inserts a product and assigns its ID and timestamps.
func (r *ProductRepository) Create(ctx context.Context, p *model.Product) error {
	now := time.Now().UTC()
	doc := productToDocument(p)
	doc.ID = primitive.NewObjectID()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}

	p.ID = doc.ID.Hex()
	p.CreatedAt = now
	p.UpdatedAt = now
	for i := range p.Flavors {
		p.Flavors[i].ProductID = p.ID
	}
	return nil
}

// Update replaces a product's editable fields, including its whole flavor list.
func (r *ProductRepository) Update(ctx context.Context, p *model.Product) error {
	oid, ok := objectIDFromHex(p.ID)
	if !ok {
		return ErrNotFound
	}

	doc := productToDocument(p)
	now := time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"subcategory_id": doc.SubcategoryID,
		"name":           doc.Name,
		"description":    doc.Description,
		"base_price":     doc.BasePrice,
		"weight_options": doc.WeightOptions,
		"flavors":        doc.Flavors,
		"image_urls":     doc.ImageURLs,
		"is_active":      doc.Active,
		"is_featured":    doc.Featured,
		"updated_at":     now,
	}}

	var stored ProductDocument
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&stored)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	*p = stored.toModel()
	return nil
}

// Delete removes a product.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectIDFromHex(id)
	if !ok {
		return ErrNotFound
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetActive toggles storefront visibility.
func (r *ProductRepository) SetActive(ctx context.Context, id string, active bool) error {
	return r.setFlag(ctx, id, "is_active", active)
}

// SetFeatured toggles the featured badge.
func (r *ProductRepository) SetFeatured(ctx context.Context, id string, featured bool) error {
	return r.setFlag(ctx, id, "is_featured", featured)
}

func (r *ProductRepository) setFlag(ctx context.Context, id, field string, value bool) error {
	oid, ok := objectIDFromHex(id)
	if !ok {
		return ErrNotFound
	}
	res, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{field: value, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func productToDocument(p *model.Product) ProductDocument {
	flavors := make([]FlavorDocument, len(p.Flavors))
	for i, f := range p.Flavors {
		flavors[i] = FlavorDocument{
			ID:              f.ID,
			Name:            f.Name,
			PriceAdjustment: toDecimal128(f.PriceAdjustment),
			Available:       f.Available,
		}
	}
	return ProductDocument{
		SubcategoryID: p.SubcategoryID,
		Name:          p.Name,
		Description:   p.Description,
		BasePrice:     toDecimal128(p.BasePrice),
		WeightOptions: nonNil(p.WeightOptions),
		Flavors:       flavors,
		ImageURLs:     nonNil(p.ImageURLs),
		Active:        p.Active,
		Featured:      p.Featured,
	}
}

func (d ProductDocument) toModel() model.Product {
	id := d.ID.Hex()
	flavors := make([]model.FlavorVariant, len(d.Flavors))
	for i, f := range d.Flavors {
		flavors[i] = model.FlavorVariant{
			ID:              f.ID,
			ProductID:       id,
			Name:            f.Name,
			PriceAdjustment: fromDecimal128(f.PriceAdjustment),
			Available:       f.Available,
		}
	}
	return model.Product{
		ID:            id,
		SubcategoryID: d.SubcategoryID,
		Name:          d.Name,
		Description:   d.Description,
		BasePrice:     fromDecimal128(d.BasePrice),
		WeightOptions: nonNil(d.WeightOptions),
		Flavors:       flavors,
		ImageURLs:     nonNil(d.ImageURLs),
		Active:        d.Active,
		Featured:      d.Featured,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
