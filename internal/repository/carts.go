package repository

import (
	"context"
	"time"

	"github.com/guttosm/bakery-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CartDocument is a persisted cart snapshot keyed by session ID.
type CartDocument struct {
	SessionID string               `bson:"_id"`
	Lines     []CartLineDocument   `bson:"lines"`
	Total     primitive.Decimal128 `bson:"total"`
	Version   int64                `bson:"version"`
	UpdatedAt time.Time            `bson:"updated_at"`
}

// CartLineDocument stores a line together with the product and flavor
// data it was priced with, so a restored cart renders without catalog lookups.
type CartLineDocument struct {
	ID           string               `bson:"id"`
	ProductID    string               `bson:"product_id"`
	ProductName  string               `bson:"product_name"`
	ImageURL     string               `bson:"image_url,omitempty"`
	BasePrice    primitive.Decimal128 `bson:"base_price"`
	FlavorID     string               `bson:"flavor_id,omitempty"`
	FlavorName   string               `bson:"flavor_name,omitempty"`
	FlavorAdjust primitive.Decimal128 `bson:"flavor_adjustment"`
	Weight       string               `bson:"weight,omitempty"`
	Quantity     int                  `bson:"quantity"`
	UnitPrice    primitive.Decimal128 `bson:"unit_price"`
	Subtotal     primitive.Decimal128 `bson:"subtotal"`
	AddedAt      time.Time            `bson:"added_at"`
}

// CartRepository stores cart snapshots.
type CartRepository struct {
	collection *mongo.Collection
}

// NewCartRepository creates a new cart snapshot repository.
func NewCartRepository(db *MongoDB) *CartRepository {
	return &CartRepository{collection: db.Carts}
}

// Load returns the stored snapshot for a session, or nil when there is none.
func (r *CartRepository) Load(ctx context.Context, sessionID string) (*model.CartSnapshot, error) {
	var doc CartDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	snap := doc.toModel()
	return &snap, nil
}

// Save upserts a snapshot unless a newer or equal version is already stored.
func (r *CartRepository) Save(ctx context.Context, snap model.CartSnapshot) error {
	doc := cartToDocument(snap)
	filter := bson.M{
		"_id":     snap.SessionID,
		"version": bson.M{"$lt": snap.Version},
	}
	_, err := r.collection.ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		// The stored snapshot is at least as new; the upsert collided on _id.
		return nil
	}
	return err
}

// Delete removes a session's snapshot. Missing snapshots are not an error.
func (r *CartRepository) Delete(ctx context.Context, sessionID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": sessionID})
	return err
}

func cartToDocument(snap model.CartSnapshot) CartDocument {
	lines := make([]CartLineDocument, len(snap.Lines))
	for i, l := range snap.Lines {
		cfg := l.Configuration
		ld := CartLineDocument{
			ID:           l.ID,
			Weight:       cfg.Weight,
			Quantity:     cfg.Quantity,
			FlavorAdjust: toDecimal128(decimal.Zero),
			UnitPrice:    toDecimal128(l.UnitPrice),
			Subtotal:     toDecimal128(l.Subtotal),
			AddedAt:      l.AddedAt,
		}
		if p := cfg.Product; p != nil {
			ld.ProductID = p.ID
			ld.ProductName = p.Name
			ld.BasePrice = toDecimal128(p.BasePrice)
			if len(p.ImageURLs) > 0 {
				ld.ImageURL = p.ImageURLs[0]
			}
		}
		if f := cfg.Flavor; f != nil {
			ld.FlavorID = f.ID
			ld.FlavorName = f.Name
			ld.FlavorAdjust = toDecimal128(f.PriceAdjustment)
		}
		lines[i] = ld
	}

	updatedAt := snap.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	return CartDocument{
		SessionID: snap.SessionID,
		Lines:     lines,
		Total:     toDecimal128(snap.Total),
		Version:   snap.Version,
		UpdatedAt: updatedAt,
	}
}

func (d CartDocument) toModel() model.CartSnapshot {
	lines := make([]model.CartLine, len(d.Lines))
	for i, ld := range d.Lines {
		product := &model.Product{
			ID:        ld.ProductID,
			Name:      ld.ProductName,
			BasePrice: fromDecimal128(ld.BasePrice),
			ImageURLs: []string{},
			Active:    true,
		}
		if ld.ImageURL != "" {
			product.ImageURLs = []string{ld.ImageURL}
		}
		if ld.Weight != "" {
			product.WeightOptions = []string{ld.Weight}
		}

		var flavor *model.FlavorVariant
		if ld.FlavorID != "" {
			product.Flavors = []model.FlavorVariant{{
				ID:              ld.FlavorID,
				ProductID:       ld.ProductID,
				Name:            ld.FlavorName,
				PriceAdjustment: fromDecimal128(ld.FlavorAdjust),
				Available:       true,
			}}
			flavor = &product.Flavors[0]
		}

		lines[i] = model.CartLine{
			ID: ld.ID,
			Configuration: model.LineConfiguration{
				Product:  product,
				Flavor:   flavor,
				Weight:   ld.Weight,
				Quantity: ld.Quantity,
			},
			UnitPrice: fromDecimal128(ld.UnitPrice),
			Subtotal:  fromDecimal128(ld.Subtotal),
			AddedAt:   ld.AddedAt,
		}
	}
	return model.CartSnapshot{
		SessionID: d.SessionID,
		Lines:     lines,
		Total:     fromDecimal128(d.Total),
		Version:   d.Version,
		UpdatedAt: d.UpdatedAt,
	}
}
