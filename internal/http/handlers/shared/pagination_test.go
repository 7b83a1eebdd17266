package shared

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestNormalizePagination(t *testing.T) {
	cases := []struct {
		name                 string
		page, pageSize       int
		defaultSize, maxSize int
		wantPage, wantSize   int
	}{
		{"defaults", 0, 0, 2, 50, 1, 2},
		{"negative page", -3, 10, 2, 50, 1, 10},
		{"capped size", 1, 500, 2, 50, 1, 50},
		{"passthrough", 3, 20, 2, 50, 3, 20},
		{"no cap", 1, 500, 2, 0, 1, 500},
	}
	for _, tc := range cases {
		page, size := NormalizePagination(tc.page, tc.pageSize, tc.defaultSize, tc.maxSize)
		if page != tc.wantPage || size != tc.wantSize {
			t.Fatalf("%s: got (%d, %d), want (%d, %d)", tc.name, page, size, tc.wantPage, tc.wantSize)
		}
	}
}

func TestQueryPage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		query string
		want  int
	}{
		{"", 1},
		{"page=3", 3},
		{"page=0", 1},
		{"page=abc", 1},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/products?"+tc.query, nil)
		if got := QueryPage(c); got != tc.want {
			t.Fatalf("query %q: expected %d, got %d", tc.query, tc.want, got)
		}
	}
}
