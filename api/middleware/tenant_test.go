package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	pkgerrors "github.com/myezz/restaurant-api/pkg/errors"
	"github.com/myezz/restaurant-api/pkg/logger"
)

var (
	defaultTenant = uuid.MustParse("7d6c1f0e-4a55-4c2e-9b1e-3f1b2a9c8d01")
	queryTenant   = uuid.MustParse("3b2f8f4e-0a0e-4d59-8d6f-5c7a1f2e9b10")
	headerTenant  = uuid.MustParse("9a1d2c3b-4e5f-4a6b-8c7d-0e1f2a3b4c5d")
)

func captureTenant(t *testing.T, got *uuid.UUID, source *TenantSource) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := RestaurantIDFromContext(r.Context())
		if !ok {
			t.Fatalf("tenant missing from context")
		}
		*got = id
		*source = TenantSourceFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestTenantResolution(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		header     string
		want       uuid.UUID
		wantSource TenantSource
		fallback   bool
	}{
		{"query wins", "/api/orders?restaurantId=" + queryTenant.String(), headerTenant.String(), queryTenant, TenantFromQuery, false},
		{"header", "/api/orders", headerTenant.String(), headerTenant, TenantFromHeader, false},
		{"missing falls back", "/api/orders", "", defaultTenant, TenantFromFallback, true},
		{"malformed falls back", "/api/orders?restaurantId=not-a-uuid", "", defaultTenant, TenantFromFallback, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got uuid.UUID
			var source TenantSource
			handler := Tenant(TenantPolicy{DefaultID: defaultTenant}, logger.Nop())(captureTenant(t, &got, &source))

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			if tt.header != "" {
				req.Header.Set(tenantHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusNoContent {
				t.Fatalf("expected 204 got %d", rec.Code)
			}
			if got != tt.want {
				t.Fatalf("expected tenant %s got %s", tt.want, got)
			}
			if source != tt.wantSource {
				t.Fatalf("expected source %s got %s", tt.wantSource, source)
			}
			if flagged := rec.Header().Get(tenantFallbackHeader) == "true"; flagged != tt.fallback {
				t.Fatalf("expected fallback header=%v", tt.fallback)
			}
		})
	}
}

func TestTenantStrictRejectsMissingID(t *testing.T) {
	called := false
	handler := Tenant(TenantPolicy{DefaultID: defaultTenant, Strict: true}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	for _, url := range []string{"/api/orders", "/api/orders?restaurantId=bogus"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400 got %d", url, rec.Code)
		}
		var body struct {
			Success bool   `json:"success"`
			Code    string `json:"code"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Success || body.Code != string(pkgerrors.CodeValidation) {
			t.Fatalf("unexpected body %s", rec.Body.String())
		}
	}
	if called {
		t.Fatalf("handler must not run in strict mode without a tenant")
	}
}
