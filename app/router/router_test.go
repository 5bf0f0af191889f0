package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PGifts2025/Site2026-sub000/app/controller"
)

func testHandler() http.Handler {
	controllers := &Controllers{
		Product:      controller.NewProductController(nil, "static"),
		Quote:        controller.NewQuoteController(nil, nil, nil),
		AdminProduct: controller.NewAdminProductController(nil),
		Asset:        controller.NewAssetController(nil, ""),
	}
	return SetupRoutes(controllers, "static")
}

func TestPingEndpoint(t *testing.T) {
	handler := testHandler()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != `{"status":"ok"}` {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestUnknownRouteReturns404(t *testing.T) {
	handler := testHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestWrongMethodReturns405(t *testing.T) {
	handler := testHandler()

	req := httptest.NewRequest(http.MethodDelete, "/api/quote", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", w.Code)
	}
}

func TestSyncEndpointWithoutDriveConfigured(t *testing.T) {
	handler := testHandler()

	req := httptest.NewRequest(http.MethodPost, "/admin/assets/sync", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 when Drive credentials are absent", w.Code)
	}
}
