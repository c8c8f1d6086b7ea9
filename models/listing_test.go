package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupSortField(t *testing.T) {
	f, ok := LookupSortField("price")
	require.True(t, ok)
	assert.Equal(t, SortFieldPrice, f)

	f, ok = LookupSortField("newest")
	require.True(t, ok)
	assert.Equal(t, SortFieldCreatedAt, f)

	_, ok = LookupSortField("price; DROP TABLE catalog_items")
	assert.False(t, ok)
}

func TestSortField_ColumnCoversEveryAllowedKey(t *testing.T) {
	for key, field := range sortFields {
		col, ok := field.Column()
		assert.Truef(t, ok, "sort key %q has no column", key)
		assert.NotEmpty(t, col)
	}

	_, ok := SortField("bogus").Column()
	assert.False(t, ok)
}

func TestFilterColumn(t *testing.T) {
	col, ok := FilterColumn("fuelType")
	require.True(t, ok)
	assert.Equal(t, "fuel_type", col)

	_, ok = FilterColumn("colour")
	assert.False(t, ok)
}

func TestFilters_Without(t *testing.T) {
	f := Filters{
		{Attribute: "brand", Values: []string{"Toyota"}},
		{Attribute: "category", Values: []string{"SUV"}},
	}

	rest := f.Without("brand")

	assert.Equal(t, []string{"category"}, rest.Attributes())
	assert.Len(t, f, 2, "original filters must stay untouched")
	assert.True(t, f.Has("brand"))
	assert.False(t, rest.Has("brand"))
}

func TestListingRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, ListingRequest{Page: 1, PageSize: 10}.Offset())
	assert.Equal(t, 20, ListingRequest{Page: 3, PageSize: 10}.Offset())
	assert.Equal(t, 0, ListingRequest{Page: 0, PageSize: 10}.Offset())
}

func TestUpdateItemRequest_Apply(t *testing.T) {
	item := CatalogItem{Name: "Old", Price: 100, Stock: 1}
	name := "New"
	stock := 0
	req := UpdateItemRequest{Name: &name, Stock: &stock}

	require.False(t, req.IsEmpty())
	req.Apply(&item)

	assert.Equal(t, "New", item.Name)
	assert.Equal(t, int64(100), item.Price)
	assert.Equal(t, 0, item.Stock)
	assert.True(t, UpdateItemRequest{}.IsEmpty())
}
