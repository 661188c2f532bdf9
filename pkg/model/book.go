package model

// Book is a single record in the books collection. Title acts as the natural
// lookup key for the point operations but is not enforced unique by the
// store. The bson tags are the persisted field names and must not change.
type Book struct {
	Title         string  `bson:"title" json:"title"`
	Author        string  `bson:"author" json:"author"`
	Genre         string  `bson:"genre" json:"genre"`
	PublishedYear int     `bson:"published_year" json:"published_year"`
	Price         float64 `bson:"price" json:"price"`
	InStock       bool    `bson:"in_stock" json:"in_stock"`
}

// Decade returns the decade bucket the book's published year falls into,
// e.g. 1999 -> 1990 and 2000 -> 2000. The aggregation computes the same
// bucket server-side; this helper exists for callers and tests.
func (b Book) Decade() int {
	return b.PublishedYear / 10 * 10
}
