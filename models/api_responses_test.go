package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name         string
		page, size   int
		total        int64
		wantPages    int
		wantNext     bool
		wantPrevious bool
	}{
		{"empty catalog", 1, 12, 0, 0, false, false},
		{"single partial page", 1, 12, 5, 1, false, false},
		{"exact multiple", 2, 10, 20, 2, false, true},
		{"first of many", 1, 10, 25, 3, true, false},
		{"middle page", 2, 10, 25, 3, true, true},
		{"last partial page", 3, 10, 25, 3, false, true},
		{"beyond last page", 7, 10, 25, 3, false, true},
		{"page size one", 4, 1, 4, 4, false, true},
		{"zero page size", 1, 0, 10, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.size, tt.total)

			assert.Equal(t, tt.page, p.CurrentPage)
			assert.Equal(t, tt.size, p.PageSize)
			assert.Equal(t, tt.total, p.TotalItems)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantNext, p.HasNextPage)
			assert.Equal(t, tt.wantPrevious, p.HasPreviousPage)
		})
	}
}

func TestNewPagination_CeilingHoldsForAllSizes(t *testing.T) {
	for size := 1; size <= MaxPageSize; size++ {
		for _, total := range []int64{0, 1, int64(size - 1), int64(size), int64(size + 1), 1000} {
			t.Run(fmt.Sprintf("size=%d/total=%d", size, total), func(t *testing.T) {
				p := NewPagination(1, size, total)

				want := int(total / int64(size))
				if total%int64(size) != 0 {
					want++
				}
				assert.Equal(t, want, p.TotalPages)
				assert.Equal(t, 1 < p.TotalPages, p.HasNextPage)
				assert.False(t, p.HasPreviousPage)
			})
		}
	}
}
