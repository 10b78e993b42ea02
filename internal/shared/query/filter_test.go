package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageFilter_Offset(t *testing.T) {
	tests := []struct {
		name   string
		filter PageFilter
		want   int
	}{
		{"first page", PageFilter{Page: 1, PageSize: 20}, 0},
		{"third page", PageFilter{Page: 3, PageSize: 20}, 40},
		{"zero page", PageFilter{Page: 0, PageSize: 20}, 0},
		{"negative page", PageFilter{Page: -1, PageSize: 20}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Offset())
		})
	}
}

func TestPageFilter_Limit(t *testing.T) {
	assert.Equal(t, 10, PageFilter{PageSize: 0}.Limit())
	assert.Equal(t, 10, PageFilter{PageSize: -5}.Limit())
	assert.Equal(t, 25, PageFilter{PageSize: 25}.Limit())
	assert.Equal(t, 100, PageFilter{PageSize: 500}.Limit())
}

func TestSortFilter_OrderClause(t *testing.T) {
	assert.Equal(t, "", SortFilter{}.OrderClause())
	assert.Equal(t, "created_at DESC", SortFilter{SortBy: "created_at", SortOrder: "desc"}.OrderClause())
	assert.Equal(t, "created_at ASC", SortFilter{SortBy: "created_at"}.OrderClause())
}

func TestNewBaseFilter(t *testing.T) {
	f := NewBaseFilter(WithPage(2, 50), WithSort("created_at", "desc"))
	assert.Equal(t, 2, f.Page)
	assert.Equal(t, 50, f.PageSize)
	assert.Equal(t, 50, f.Offset())
	assert.True(t, f.IsDescending())
}
