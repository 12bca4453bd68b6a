//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// GeocodingKeyHeader carries the caller's geocoding credential.
const GeocodingKeyHeader = "X-Geocoding-Key"

// PerformRequest executes a bodiless request against router with the given headers.
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// WithKey is shorthand for a header map holding only the geocoding key.
func WithKey(key string) map[string]string {
	if key == "" {
		return nil
	}
	return map[string]string{GeocodingKeyHeader: key}
}
