package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestTranslateFallsBack(t *testing.T) {
	if got := T(LocaleZH, "error.not_found"); got == "" || got == "error.not_found" {
		t.Fatalf("expected zh translation, got %q", got)
	}
	if got := T("fr", "error.not_found"); got != T(LocaleEN, "error.not_found") {
		t.Fatalf("unknown locale should fall back to english, got %q", got)
	}
	if got := T(LocaleEN, "no.such.key"); got != "no.such.key" {
		t.Fatalf("missing key should echo the key, got %q", got)
	}
}

func TestResolveLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		target string
		accept string
		want   string
	}{
		{"default", "/", "", LocaleEN},
		{"query wins", "/?lang=zh-CN", "en", LocaleZH},
		{"accept header", "/", "zh-CN,zh;q=0.9", LocaleZH},
		{"unknown tag", "/", "fr-FR", LocaleEN},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", tc.target, nil)
		if tc.accept != "" {
			c.Request.Header.Set("Accept-Language", tc.accept)
		}
		if got := ResolveLocale(c); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}
