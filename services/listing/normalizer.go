package listing

import (
	"math"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
)

// MaxPage is the largest page whose offset still fits in an int at the
// maximum page size.
const MaxPage = math.MaxInt / models.MaxPageSize

var attributePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// shorthandFilters may be passed as plain query parameters (?brand=Toyota)
// in addition to the filter[attr]=value form.
var shorthandFilters = []string{"brand", "category", "fuelType"}

// NormalizeOptions tunes how forgiving Normalize is with malformed input.
type NormalizeOptions struct {
	// Strict rejects malformed page/pageSize input instead of falling back
	// to the defaults. Out-of-range page sizes are clamped either way.
	Strict bool
}

// Normalize turns raw query parameters into a ListingRequest. It performs no
// I/O. In the default permissive mode only invalid filter attribute names
// produce an error.
func Normalize(values url.Values, opts NormalizeOptions) (models.ListingRequest, error) {
	req := models.ListingRequest{
		Page:      models.DefaultPage,
		PageSize:  models.DefaultPageSize,
		SortBy:    models.DefaultSortField,
		SortOrder: models.SortDesc,
	}

	page, err := parsePage(values.Get("page"), opts.Strict)
	if err != nil {
		return models.ListingRequest{}, err
	}
	req.Page = page

	size, err := parsePageSize(values.Get("pageSize"), opts.Strict)
	if err != nil {
		return models.ListingRequest{}, err
	}
	req.PageSize = size

	if f, ok := models.LookupSortField(strings.TrimSpace(values.Get("sortBy"))); ok {
		req.SortBy = f
	}

	// Only the exact lowercase values are accepted.
	if models.SortOrder(strings.TrimSpace(values.Get("sortOrder"))) == models.SortAsc {
		req.SortOrder = models.SortAsc
	}

	req.Query = strings.TrimSpace(values.Get("q"))

	filters, err := parseFilters(values)
	if err != nil {
		return models.ListingRequest{}, err
	}
	req.Filters = filters

	return req, nil
}

func parsePage(raw string, strict bool) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.DefaultPage, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		if strict {
			return 0, newValidationError("page must be a positive integer")
		}
		return models.DefaultPage, nil
	}
	if page > MaxPage {
		if strict {
			return 0, newValidationError("page must not exceed %d", MaxPage)
		}
		return MaxPage, nil
	}
	return page, nil
}

func parsePageSize(raw string, strict bool) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.DefaultPageSize, nil
	}
	size, err := strconv.Atoi(raw)
	if err != nil {
		if strict {
			return 0, newValidationError("pageSize must be an integer")
		}
		return models.DefaultPageSize, nil
	}
	if size < 1 {
		return 1, nil
	}
	if size > models.MaxPageSize {
		return models.MaxPageSize, nil
	}
	return size, nil
}

func parseFilters(values url.Values) (models.Filters, error) {
	selected := make(map[string]map[string]struct{})

	add := func(attr string, raws []string) error {
		if !attributePattern.MatchString(attr) {
			return newValidationError("invalid filter attribute %q", attr)
		}
		for _, raw := range raws {
			for _, v := range strings.Split(raw, ",") {
				v = strings.TrimSpace(v)
				if v == "" {
					continue
				}
				if selected[attr] == nil {
					selected[attr] = make(map[string]struct{})
				}
				selected[attr][v] = struct{}{}
			}
		}
		return nil
	}

	for key, raws := range values {
		if !strings.HasPrefix(key, "filter[") || !strings.HasSuffix(key, "]") {
			continue
		}
		attr := strings.TrimSuffix(strings.TrimPrefix(key, "filter["), "]")
		if err := add(attr, raws); err != nil {
			return nil, err
		}
	}
	for _, attr := range shorthandFilters {
		if raws, ok := values[attr]; ok {
			if err := add(attr, raws); err != nil {
				return nil, err
			}
		}
	}

	if len(selected) == 0 {
		return nil, nil
	}

	attrs := make([]string, 0, len(selected))
	for attr := range selected {
		attrs = append(attrs, attr)
	}
	sort.Strings(attrs)

	filters := make(models.Filters, 0, len(attrs))
	for _, attr := range attrs {
		vals := make([]string, 0, len(selected[attr]))
		for v := range selected[attr] {
			vals = append(vals, v)
		}
		sort.Strings(vals)
		filters = append(filters, models.FilterSet{Attribute: attr, Values: vals})
	}
	return filters, nil
}
