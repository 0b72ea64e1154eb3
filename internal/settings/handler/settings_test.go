package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"

	"careconnect/internal/settings/repository"
	"careconnect/internal/settings/service"
	"careconnect/pkg/config"
	"careconnect/pkg/logger"
	"careconnect/pkg/model"
)

func newRouter() *httprouter.Router {
	cfg := &config.Config{Log: logger.Discard()}
	svc := service.NewSettingsService(repository.NewMemorySettingsRepository(), cfg)

	router := httprouter.New()
	NewSettingsHandler(svc, cfg.Log).RegisterRoutes(router)
	return router
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeSettings(t *testing.T, rec *httptest.ResponseRecorder) model.Settings {
	t.Helper()
	var resp struct {
		Data model.Settings `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v (body %q)", err, rec.Body.String())
	}
	return resp.Data
}

func TestGetDefaults(t *testing.T) {
	rec := do(newRouter(), http.MethodGet, "/api/v1/settings/jane", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	got := decodeSettings(t, rec)
	if got.Owner != "jane" || got.Role != nil || got.ThemeMode != model.ThemeSystem || got.VisionTheme != model.VisionNormal || got.TextScale != 1 {
		t.Errorf("settings = %+v", got)
	}
}

func TestUpdateThenGet(t *testing.T) {
	router := newRouter()

	rec := do(router, http.MethodPut, "/api/v1/settings/jane", `{"themeMode":"dark","textScale":2.5,"role":"caregiver"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT status = %d body %q", rec.Code, rec.Body.String())
	}
	if got := decodeSettings(t, rec); got.TextScale != model.MaxTextScale {
		t.Errorf("TextScale = %v, want clamped %v", got.TextScale, model.MaxTextScale)
	}

	got := decodeSettings(t, do(router, http.MethodGet, "/api/v1/settings/jane", ""))
	if got.ThemeMode != model.ThemeDark || got.Role == nil || *got.Role != model.RoleCaregiver {
		t.Errorf("settings = %+v", got)
	}
}

func TestUpdateErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"unknown theme", `{"themeMode":"neon"}`, http.StatusBadRequest},
		{"unknown field", `{"fontSize":12}`, http.StatusBadRequest},
		{"malformed", `{"themeMode":`, http.StatusBadRequest},
	}

	router := newRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(router, http.MethodPut, "/api/v1/settings/jane", tt.body)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
