package models

// All is the constraint value meaning "no restriction on this field".
const All = "all"

// Bucket names a promotional boolean tag.
type Bucket string

const (
	BucketAll      Bucket = All
	BucketPopular  Bucket = "popular"
	BucketNew      Bucket = "new"
	BucketTrending Bucket = "trending"
	BucketFeatured Bucket = "featured"
)

// Facets are the record fields the search predicate looks at.
type Facets struct {
	Title       string
	Description string
	Category    string
	Level       Level
}

// FilterRequest binds the listing query string. Empty values fall back to All.
type FilterRequest struct {
	Query    string `form:"q"`
	Level    string `form:"level"`
	Category string `form:"category"`
	Bucket   string `form:"bucket"`
}

type FilterResponse struct {
	Query    string `json:"q"`
	Level    string `json:"level"`
	Category string `json:"category"`
	Bucket   string `json:"bucket"`
}
