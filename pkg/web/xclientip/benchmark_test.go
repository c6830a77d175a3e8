package xclientip_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/omeyang/xcommons/pkg/web/xclientip"
)

func BenchmarkClientIP_Header(b *testing.B) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Real-IP", "10.0.0.1")
	b.ReportAllocs()
	for b.Loop() {
		_ = xclientip.ClientIP(r)
	}
}

func BenchmarkClientIP_RemoteAddr(b *testing.B) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	b.ReportAllocs()
	for b.Loop() {
		_ = xclientip.ClientIP(r)
	}
}

func BenchmarkClientAddr(b *testing.B) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	b.ReportAllocs()
	for b.Loop() {
		_, _ = xclientip.ClientAddr(r)
	}
}
