package response

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		totalCount int
		wantPages  int
		wantNext   bool
		wantPrev   bool
	}{
		{name: "empty result set", page: 1, limit: 10, totalCount: 0, wantPages: 0, wantNext: false, wantPrev: false},
		{name: "single partial page", page: 1, limit: 10, totalCount: 7, wantPages: 1, wantNext: false, wantPrev: false},
		{name: "exact page boundary", page: 1, limit: 10, totalCount: 20, wantPages: 2, wantNext: true, wantPrev: false},
		{name: "count rounds up", page: 1, limit: 10, totalCount: 21, wantPages: 3, wantNext: true, wantPrev: false},
		{name: "middle page", page: 2, limit: 10, totalCount: 35, wantPages: 4, wantNext: true, wantPrev: true},
		{name: "last page", page: 4, limit: 10, totalCount: 35, wantPages: 4, wantNext: false, wantPrev: true},
		{name: "page beyond range", page: 9, limit: 10, totalCount: 35, wantPages: 4, wantNext: false, wantPrev: true},
		{name: "limit of one", page: 3, limit: 1, totalCount: 3, wantPages: 3, wantNext: false, wantPrev: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.totalCount)

			assert.Equal(t, tt.page, p.CurrentPage)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.totalCount, p.TotalCount)
			assert.Equal(t, tt.wantNext, p.HasNext)
			assert.Equal(t, tt.wantPrev, p.HasPrev)
		})
	}
}

func TestPageParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{name: "defaults", query: "", wantPage: 1, wantLimit: 10},
		{name: "explicit values", query: "page=3&limit=25", wantPage: 3, wantLimit: 25},
		{name: "non-numeric falls back", query: "page=abc&limit=xyz", wantPage: 1, wantLimit: 10},
		{name: "zero page clamps", query: "page=0", wantPage: 1, wantLimit: 10},
		{name: "negative limit falls back", query: "limit=-5", wantPage: 1, wantLimit: 10},
		{name: "limit capped", query: "limit=5000", wantPage: 1, wantLimit: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/?"+tt.query, nil)

			page, limit := PageParams(c)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 10))
	assert.Equal(t, 10, Offset(2, 10))
	assert.Equal(t, 80, Offset(5, 20))
}
