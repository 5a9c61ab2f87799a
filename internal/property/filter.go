package property

// Filter operators understood by the storage layer.
const (
	OpContains = "contains" // Value is a case-insensitive LIKE pattern
	OpGte      = "gte"
	OpLte      = "lte"
)

// FilterCriteria holds the optional list filters. A nil or zero price bound is absent.
type FilterCriteria struct {
	Title    string
	MinPrice *float64
	MaxPrice *float64
}

// Predicate is a single condition on a property field. Predicates combine with AND.
type Predicate struct {
	Field string
	Op    string
	Value any
}

// BuildPredicates turns criteria into predicates, always in the order
// title, min price, max price. Empty criteria yield no predicates.
func BuildPredicates(c FilterCriteria) []Predicate {
	var preds []Predicate
	if c.Title != "" {
		preds = append(preds, Predicate{Field: "title", Op: OpContains, Value: "%" + c.Title + "%"})
	}
	if c.MinPrice != nil && *c.MinPrice != 0 {
		preds = append(preds, Predicate{Field: "price", Op: OpGte, Value: *c.MinPrice})
	}
	if c.MaxPrice != nil && *c.MaxPrice != 0 {
		preds = append(preds, Predicate{Field: "price", Op: OpLte, Value: *c.MaxPrice})
	}
	return preds
}
