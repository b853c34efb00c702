package database

import (
	"fmt"
	"sort"
	"strings"
)

// Filter is a single field condition in a dynamic search
type Filter struct {
	Operator string
	Value    any
}

// FilterSet maps field names to conditions
type FilterSet map[string]Filter

// FilterError reports a bad filter field or operator; handlers map it to 400
type FilterError struct {
	Field  string
	Reason string
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("invalid filter on %q: %s", e.Field, e.Reason)
}

var filterOperators = map[string]string{
	"eq":  "=",
	"ne":  "!=",
	"gt":  ">",
	"gte": ">=",
	"lt":  "<",
	"lte": "<=",
}

// ParseFilters normalizes a decoded JSON filters object. Values are either
// direct ({"name": "John"}, meaning eq) or {"operator": ..., "value": ...}.
func ParseFilters(raw map[string]any) (FilterSet, error) {
	filters := make(FilterSet, len(raw))
	for field, v := range raw {
		switch cond := v.(type) {
		case map[string]any:
			op, ok := cond["operator"].(string)
			if !ok || op == "" {
				return nil, &FilterError{Field: field, Reason: "missing operator"}
			}
			value, ok := cond["value"]
			if !ok && op != "is_null" {
				return nil, &FilterError{Field: field, Reason: "missing value"}
			}
			filters[field] = Filter{Operator: op, Value: value}
		default:
			filters[field] = Filter{Operator: "eq", Value: v}
		}
	}
	return filters, nil
}

// buildFilterClause renders a FilterSet into a WHERE fragment and its
// arguments. Only whitelisted columns are allowed. Fields are processed in
// sorted order so the generated SQL is deterministic.
func buildFilterClause(columns map[string]bool, filters FilterSet) (string, []any, error) {
	fields := make([]string, 0, len(filters))
	for field := range filters {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var clauses []string
	var args []any

	for _, field := range fields {
		if !columns[field] {
			return "", nil, &FilterError{Field: field, Reason: "unknown field"}
		}
		f := filters[field]

		switch f.Operator {
		case "eq", "ne", "gt", "gte", "lt", "lte":
			clauses = append(clauses, fmt.Sprintf("%s %s ?", field, filterOperators[f.Operator]))
			args = append(args, f.Value)
		case "like", "ilike":
			pattern, ok := f.Value.(string)
			if !ok {
				return "", nil, &FilterError{Field: field, Reason: "like expects a string value"}
			}
			// SQLite LIKE is case-insensitive for ASCII, so like and ilike coincide
			clauses = append(clauses, fmt.Sprintf("%s LIKE ?", field))
			args = append(args, pattern)
		case "in":
			values, ok := f.Value.([]any)
			if !ok || len(values) == 0 {
				return "", nil, &FilterError{Field: field, Reason: "in expects a non-empty array"}
			}
			placeholders := strings.Repeat("?, ", len(values))
			clauses = append(clauses, fmt.Sprintf("%s IN (%s)", field, placeholders[:len(placeholders)-2]))
			args = append(args, values...)
		case "is_null":
			isNull := true
			if b, ok := f.Value.(bool); ok {
				isNull = b
			}
			if isNull {
				clauses = append(clauses, fmt.Sprintf("%s IS NULL", field))
			} else {
				clauses = append(clauses, fmt.Sprintf("%s IS NOT NULL", field))
			}
		default:
			return "", nil, &FilterError{Field: field, Reason: "unknown operator " + f.Operator}
		}
	}

	if len(clauses) == 0 {
		return "", nil, nil
	}
	return " AND " + strings.Join(clauses, " AND "), args, nil
}
