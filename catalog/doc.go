// Package catalog holds the immutable course and tutorial records and the
// pure functions that filter them.
//
// # Contract
//
// A Catalog is built once from fixture data and never mutated. Every accessor
// returns a copy, so callers may reorder or edit what they receive without
// affecting other readers. A Catalog is safe for concurrent use.
//
//	Filter(records, Criteria) []R
//	  - Keeps records whose lower-cased title or description contains the
//	    lower-cased query, AND whose level equals Criteria.Level, AND whose
//	    category equals Criteria.Category. "all" disables a field constraint.
//	  - Preserves input order. Never mutates the input. Never fails.
//
//	SelectBucket(records, bucket) []R
//	  - Keeps records whose tag named by bucket is set. "all" is the identity.
//
//	Categories(records) []string
//	  - Distinct category values in first-appearance order.
//
//	CourseByID(id) / TutorialByID(id)
//	  - Return the record and true, or the zero value and false.
package catalog
