package listing

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
)

func mustQuery(t *testing.T, raw string) url.Values {
	t.Helper()
	v, err := url.ParseQuery(raw)
	require.NoError(t, err)
	return v
}

func TestNormalize_Defaults(t *testing.T) {
	req, err := Normalize(url.Values{}, NormalizeOptions{})
	require.NoError(t, err)

	assert.Equal(t, models.DefaultPage, req.Page)
	assert.Equal(t, models.DefaultPageSize, req.PageSize)
	assert.Equal(t, models.SortFieldCreatedAt, req.SortBy)
	assert.Equal(t, models.SortDesc, req.SortOrder)
	assert.Empty(t, req.Query)
	assert.Nil(t, req.Filters)
}

func TestNormalize_Pagination(t *testing.T) {
	tests := []struct {
		raw      string
		page     int
		pageSize int
	}{
		{"page=3&pageSize=10", 3, 10},
		{"page=0", 1, models.DefaultPageSize},
		{"page=-4", 1, models.DefaultPageSize},
		{"page=abc&pageSize=xyz", 1, models.DefaultPageSize},
		{"pageSize=500", 1, models.MaxPageSize},
		{"pageSize=0", 1, 1},
		{"pageSize=-3", 1, 1},
		{"page=2000000&pageSize=10", 2000000, 10},
		{"page=99999999999999999", MaxPage, models.DefaultPageSize},
		{"page=99999999999999999999", 1, models.DefaultPageSize},
		{"page=%203%20", 3, models.DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			req, err := Normalize(mustQuery(t, tt.raw), NormalizeOptions{})
			require.NoError(t, err)
			assert.Equal(t, tt.page, req.Page)
			assert.Equal(t, tt.pageSize, req.PageSize)
		})
	}
}

func TestNormalize_StrictRejectsMalformedNumbers(t *testing.T) {
	for _, raw := range []string{"page=abc", "page=0", "pageSize=ten", "page=99999999999999999", "page=99999999999999999999"} {
		t.Run(raw, func(t *testing.T) {
			_, err := Normalize(mustQuery(t, raw), NormalizeOptions{Strict: true})

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr), "got %v", err)
		})
	}

	req, err := Normalize(mustQuery(t, "pageSize=500"), NormalizeOptions{Strict: true})
	require.NoError(t, err)
	assert.Equal(t, models.MaxPageSize, req.PageSize, "out-of-range sizes are clamped in strict mode too")
}

func TestNormalize_Sort(t *testing.T) {
	req, err := Normalize(mustQuery(t, "sortBy=price&sortOrder=asc"), NormalizeOptions{})
	require.NoError(t, err)
	assert.Equal(t, models.SortFieldPrice, req.SortBy)
	assert.Equal(t, models.SortAsc, req.SortOrder)

	for _, order := range []string{"ASC", "Asc", "ascending", ""} {
		req, err = Normalize(mustQuery(t, "sortOrder="+order), NormalizeOptions{})
		require.NoError(t, err)
		assert.Equal(t, models.SortDesc, req.SortOrder, order)
	}

	req, err = Normalize(mustQuery(t, "sortBy=password_hash&sortOrder=sideways"), NormalizeOptions{})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSortField, req.SortBy)
	assert.Equal(t, models.SortDesc, req.SortOrder)
}

func TestNormalize_Filters(t *testing.T) {
	raw := "q=+hybrid+&filter[brand]=Toyota,Honda&filter[brand]=Toyota&category=SUV&filter[fuelType]=+&filter[colour]=Red"
	req, err := Normalize(mustQuery(t, raw), NormalizeOptions{})
	require.NoError(t, err)

	assert.Equal(t, "hybrid", req.Query)
	assert.Equal(t, models.Filters{
		{Attribute: "brand", Values: []string{"Honda", "Toyota"}},
		{Attribute: "category", Values: []string{"SUV"}},
		{Attribute: "colour", Values: []string{"Red"}},
	}, req.Filters)
	assert.True(t, req.NeedsSearchIndex())
}

func TestNormalize_RejectsInjectedAttributeNames(t *testing.T) {
	for _, raw := range []string{
		`filter[brand = "x" OR 1]=a`,
		"filter[]=a",
		"filter[9lives]=a",
	} {
		t.Run(raw, func(t *testing.T) {
			_, err := Normalize(url.Values{raw[:len(raw)-2]: {"a"}}, NormalizeOptions{})

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr), "got %v", err)
		})
	}
}
