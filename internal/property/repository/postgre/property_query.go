package postgre

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"property-listing/internal/property"
	repo "property-listing/internal/property/repository"
)

const propertyColumns = `id, title, description, price, slug, owner_id, created_at, updated_at`

// columns that predicates may reference.
var filterColumns = map[string]string{
	"title": "title",
	"price": "price",
}

var filterOperators = map[string]string{
	property.OpContains: "ILIKE",
	property.OpGte:      ">=",
	property.OpLte:      "<=",
}

// buildWhere renders predicates as $n-parameterised AND conditions, numbering
// placeholders from len(args)+1. It returns "" when there is nothing to filter.
func buildWhere(preds []property.Predicate, args []any) (string, []any, error) {
	if len(preds) == 0 {
		return "", args, nil
	}
	conditions := make([]string, 0, len(preds))
	for _, p := range preds {
		col, ok := filterColumns[p.Field]
		if !ok {
			return "", nil, fmt.Errorf("%w: field %q", repo.ErrUnknownFilter, p.Field)
		}
		op, ok := filterOperators[p.Op]
		if !ok {
			return "", nil, fmt.Errorf("%w: operator %q", repo.ErrUnknownFilter, p.Op)
		}
		args = append(args, p.Value)
		conditions = append(conditions, fmt.Sprintf("%s %s $%d", col, op, len(args)))
	}
	return "WHERE " + strings.Join(conditions, " AND "), args, nil
}

// buildListQuery builds the SELECT for one page, newest first with id as tie-breaker.
func buildListQuery(opt repo.ListPropertiesOptions) (string, []any, error) {
	where, args, err := buildWhere(opt.Predicates, nil)
	if err != nil {
		return "", nil, err
	}

	parts := []string{"SELECT " + propertyColumns + " FROM properties"}
	if where != "" {
		parts = append(parts, where)
	}
	parts = append(parts, "ORDER BY created_at DESC, id")

	if opt.Limit > 0 {
		args = append(args, opt.Limit)
		parts = append(parts, fmt.Sprintf("LIMIT $%d", len(args)))
	}
	if opt.Offset > 0 {
		args = append(args, opt.Offset)
		parts = append(parts, fmt.Sprintf("OFFSET $%d", len(args)))
	}
	return strings.Join(parts, " "), args, nil
}

// buildCountQuery builds the COUNT over the same predicates as the list query.
func buildCountQuery(opt repo.CountPropertiesOptions) (string, []any, error) {
	where, args, err := buildWhere(opt.Predicates, nil)
	if err != nil {
		return "", nil, err
	}
	query := "SELECT COUNT(*) FROM properties"
	if where != "" {
		query += " " + where
	}
	return query, args, nil
}

// buildGetOneQuery builds the WHERE clause for GetOneProperty.
// ok is false when the filter cannot match any row.
func buildGetOneQuery(opt repo.GetOnePropertyOptions) (query string, args []any, ok bool) {
	var conditions []string
	if opt.ID != "" {
		id, err := uuid.Parse(opt.ID)
		if err != nil {
			return "", nil, false
		}
		args = append(args, id)
		conditions = append(conditions, fmt.Sprintf("id = $%d", len(args)))
	}
	if opt.Slug != "" {
		args = append(args, opt.Slug)
		conditions = append(conditions, fmt.Sprintf("slug = $%d", len(args)))
	}
	if len(conditions) == 0 {
		return "", nil, false
	}
	query = fmt.Sprintf("SELECT %s FROM properties WHERE %s LIMIT 1", propertyColumns, strings.Join(conditions, " AND "))
	return query, args, true
}
