package repository

import (
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// toDecimal128 converts a money amount to its BSON representation.
func toDecimal128(d decimal.Decimal) primitive.Decimal128 {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		// d.String() is always a plain decimal literal; only out-of-range values land here.
		return primitive.NewDecimal128(0, 0)
	}
	return v
}

// fromDecimal128 converts a BSON decimal back to a money amount.
func fromDecimal128(v primitive.Decimal128) decimal.Decimal {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

// objectIDFromHex parses an ID, reporting false for malformed input.
func objectIDFromHex(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}
