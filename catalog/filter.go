package catalog

import (
	"strings"

	"edulearn_backend/models"
)

// Record is implemented by models.Course and models.Tutorial.
type Record interface {
	Facets() models.Facets
	InBucket(b models.Bucket) bool
}

// Criteria narrows a record sequence. Empty Level or Category behave like
// models.All.
type Criteria struct {
	Query    string
	Level    string
	Category string
}

// CriteriaFrom normalizes a bound listing request.
func CriteriaFrom(req models.FilterRequest) Criteria {
	return Criteria{
		Query:    req.Query,
		Level:    orAll(req.Level),
		Category: orAll(req.Category),
	}
}

// BucketFrom returns the bucket named in the request, defaulting to all.
func BucketFrom(req models.FilterRequest) models.Bucket {
	return models.Bucket(orAll(req.Bucket))
}

func orAll(v string) string {
	if v == "" {
		return models.All
	}
	return v
}

// Match reports whether r satisfies every active constraint in c.
func (c Criteria) Match(r Record) bool {
	f := r.Facets()
	return matchText(f, c.Query) &&
		matchField(string(f.Level), c.Level) &&
		matchField(f.Category, c.Category)
}

func matchText(f models.Facets, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(f.Title), q) ||
		strings.Contains(strings.ToLower(f.Description), q)
}

func matchField(value, constraint string) bool {
	if constraint == "" || constraint == models.All {
		return true
	}
	return value == constraint
}

// Filter returns the records matching c in their original order.
func Filter[R Record](records []R, c Criteria) []R {
	result := make([]R, 0, len(records))
	for _, r := range records {
		if c.Match(r) {
			result = append(result, r)
		}
	}
	return result
}

// SelectBucket returns the records tagged with bucket in their original order.
func SelectBucket[R Record](records []R, bucket models.Bucket) []R {
	if bucket == "" {
		bucket = models.BucketAll
	}
	result := make([]R, 0, len(records))
	for _, r := range records {
		if r.InBucket(bucket) {
			result = append(result, r)
		}
	}
	return result
}

// Categories returns each distinct category once, in first-appearance order.
func Categories[R Record](records []R) []string {
	seen := make(map[string]struct{}, len(records))
	result := make([]string, 0, len(records))
	for _, r := range records {
		category := r.Facets().Category
		if _, exists := seen[category]; !exists {
			seen[category] = struct{}{}
			result = append(result, category)
		}
	}
	return result
}
