package books

import (
	"go.mongodb.org/mongo-driver/bson"

	"bookdb/pkg/model"
)

// buildProjection translates a field include map into a projection
// document. Nil means no projection. The record id is suppressed unless the
// caller names "_id"; an invalid include/exclude mix is left for the store
// to reject.
func buildProjection(proj model.Projection) bson.M {
	if proj == nil {
		return nil
	}

	doc := bson.M{}
	for field, include := range proj {
		if include {
			doc[field] = 1
		} else {
			doc[field] = 0
		}
	}
	if _, ok := proj["_id"]; !ok {
		doc["_id"] = 0
	}
	return doc
}

// buildPriceSort orders results by price in the given direction.
func buildPriceSort(dir model.SortDirection) bson.D {
	return bson.D{{Key: "price", Value: int(dir)}}
}
