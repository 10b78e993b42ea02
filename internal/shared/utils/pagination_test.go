package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"defaults applied", 0, 0, 1, 20},
		{"negative values", -3, -1, 1, 20},
		{"within limits", 4, 50, 4, 50},
		{"page size capped", 1, 1000, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ValidatePagination(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPageSize, p.PageSize)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 5, TotalPages(100, 20))
	assert.Equal(t, 1, TotalPages(5, 0))
}
