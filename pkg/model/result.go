package model

// UpdateResult reports the outcome of a point update. Matched and Modified
// are counts (0 or 1 for title-matched updates); a zero Matched means no
// record had the given title, which is not an error.
type UpdateResult struct {
	Matched  int64 `json:"matched"`
	Modified int64 `json:"modified"`
}

// DeleteResult reports the outcome of a point delete. Zero Deleted means no
// record had the given title, which is not an error.
type DeleteResult struct {
	Deleted int64 `json:"deleted"`
}

// GenreStats is one row of the average-price-per-genre aggregation.
type GenreStats struct {
	Genre        string  `bson:"_id" json:"genre"`
	AveragePrice float64 `bson:"averagePrice" json:"averagePrice"`
	Count        int64   `bson:"count" json:"count"`
}

// AuthorTally is the result of the most-records-per-author aggregation.
type AuthorTally struct {
	Author string `bson:"_id" json:"author"`
	Count  int64  `bson:"count" json:"count"`
}

// DecadeCount is one row of the count-by-decade aggregation. Decade is the
// lower bound of a ten year bucket, so 1999 counts under 1990 and 2000
// under 2000.
type DecadeCount struct {
	Decade int64 `bson:"_id" json:"decade"`
	Count  int64 `bson:"count" json:"count"`
}
