package search

import (
	"strings"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
)

var valueEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// quote renders a filter value as a double-quoted string literal.
func quote(v string) string {
	return `"` + valueEscaper.Replace(v) + `"`
}

// BuildFilter renders a filter set in the index's expression syntax:
//
//	brand IN ["Honda", "Toyota"] AND category IN ["SUV"]
//
// Attribute names are expected to be validated already; values are always
// quoted so they cannot change the structure of the expression.
func BuildFilter(filters models.Filters) string {
	parts := make([]string, 0, len(filters))
	for _, f := range filters {
		if len(f.Values) == 0 {
			continue
		}
		quoted := make([]string, len(f.Values))
		for i, v := range f.Values {
			quoted[i] = quote(v)
		}
		parts = append(parts, f.Attribute+" IN ["+strings.Join(quoted, ", ")+"]")
	}
	return strings.Join(parts, " AND ")
}
