package models

import "sort"

// ═══════════════════════════════════════════════════════════
// Listing Request
// ═══════════════════════════════════════════════════════════

const (
	DefaultPage     = 1
	DefaultPageSize = 12
	MaxPageSize     = 100
)

// SortOrder is the direction of a listing sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SortField enumerates the attributes a listing can be ordered by.
type SortField string

const (
	SortFieldCreatedAt SortField = "createdAt"
	SortFieldUpdatedAt SortField = "updatedAt"
	SortFieldName      SortField = "name"
	SortFieldPrice     SortField = "price"
	SortFieldStock     SortField = "stock"
	SortFieldBrand     SortField = "brand"
	SortFieldCategory  SortField = "category"
)

// DefaultSortField is used whenever the requested sort key is unknown.
const DefaultSortField = SortFieldCreatedAt

// sortFields maps the accepted sortBy values to a field. "newest" is kept
// for storefront links built before the camelCase keys existed.
var sortFields = map[string]SortField{
	"createdAt": SortFieldCreatedAt,
	"newest":    SortFieldCreatedAt,
	"updatedAt": SortFieldUpdatedAt,
	"name":      SortFieldName,
	"price":     SortFieldPrice,
	"stock":     SortFieldStock,
	"brand":     SortFieldBrand,
	"category":  SortFieldCategory,
}

// sortColumns holds the catalog_items column behind every sort field.
var sortColumns = map[SortField]string{
	SortFieldCreatedAt: "created_at",
	SortFieldUpdatedAt: "updated_at",
	SortFieldName:      "name",
	SortFieldPrice:     "price",
	SortFieldStock:     "stock",
	SortFieldBrand:     "brand",
	SortFieldCategory:  "category",
}

// LookupSortField resolves a raw sortBy value against the allow-list.
func LookupSortField(key string) (SortField, bool) {
	f, ok := sortFields[key]
	return f, ok
}

// Column returns the relational column for the field and whether it is known.
func (f SortField) Column() (string, bool) {
	col, ok := sortColumns[f]
	return col, ok
}

// IndexAttribute is the search-index attribute the field sorts on. The index
// documents use the same camelCase names as the JSON payloads.
func (f SortField) IndexAttribute() string {
	return string(f)
}

// SortableAttributes lists every index attribute a listing may sort on.
func SortableAttributes() []string {
	attrs := make([]string, 0, len(sortColumns))
	for f := range sortColumns {
		attrs = append(attrs, f.IndexAttribute())
	}
	sort.Strings(attrs)
	return attrs
}

// filterColumns is the relational allow-list of filterable attributes.
var filterColumns = map[string]string{
	"brand":    "brand",
	"category": "category",
	"fuelType": "fuel_type",
}

// FilterColumn resolves a filter attribute to its catalog_items column.
func FilterColumn(attribute string) (string, bool) {
	col, ok := filterColumns[attribute]
	return col, ok
}

// FilterableAttributes lists the attributes configured as filterable on the
// search index and accepted by the relational path.
func FilterableAttributes() []string {
	attrs := make([]string, 0, len(filterColumns))
	for a := range filterColumns {
		attrs = append(attrs, a)
	}
	sort.Strings(attrs)
	return attrs
}

// FilterSet holds the selected values of one attribute. Values are OR-ed.
type FilterSet struct {
	Attribute string   `json:"attribute"`
	Values    []string `json:"values"`
}

// Filters is the AND-combination of per-attribute selections, kept sorted
// by attribute name.
type Filters []FilterSet

// Attributes returns the attribute names in order.
func (f Filters) Attributes() []string {
	out := make([]string, 0, len(f))
	for _, s := range f {
		out = append(out, s.Attribute)
	}
	return out
}

// Without returns a copy of f with the given attribute removed.
func (f Filters) Without(attribute string) Filters {
	out := make(Filters, 0, len(f))
	for _, s := range f {
		if s.Attribute != attribute {
			out = append(out, s)
		}
	}
	return out
}

// Has reports whether a selection exists for attribute.
func (f Filters) Has(attribute string) bool {
	for _, s := range f {
		if s.Attribute == attribute {
			return true
		}
	}
	return false
}

// ListingRequest is the validated, normalized form of a listing query.
type ListingRequest struct {
	Page      int       `json:"page"`
	PageSize  int       `json:"pageSize"`
	SortBy    SortField `json:"sortBy"`
	SortOrder SortOrder `json:"sortOrder"`
	Query     string    `json:"q,omitempty"`
	Filters   Filters   `json:"filters,omitempty"`
}

// Offset is the number of rows skipped before the requested page.
func (r ListingRequest) Offset() int {
	if r.Page < 1 {
		return 0
	}
	return (r.Page - 1) * r.PageSize
}

// NeedsSearchIndex reports whether the request needs free-text search or
// attribute filtering, which the storefront serves from the search index.
func (r ListingRequest) NeedsSearchIndex() bool {
	return r.Query != "" || len(r.Filters) > 0
}

// ═══════════════════════════════════════════════════════════
// Facets
// ═══════════════════════════════════════════════════════════

// FacetDistribution maps attribute name -> value -> matching item count.
type FacetDistribution map[string]map[string]int64
