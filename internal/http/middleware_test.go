package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRoleFromHeader(t *testing.T) {
	mux, _ := setupAPI(t)
	handler := RoleFromHeader("", mux)

	cases := []struct {
		name   string
		method string
		path   string
		role   string
		body   string
		want   int
	}{
		{name: "anonymous read", method: http.MethodGet, path: "/admin/api/hero-sections", want: http.StatusForbidden},
		{name: "viewer read", method: http.MethodGet, path: "/admin/api/hero-sections", role: "viewer", want: http.StatusOK},
		{name: "viewer write", method: http.MethodPost, path: "/admin/api/hero-sections", role: "viewer", body: `{"code":"home","name":"Home"}`, want: http.StatusForbidden},
		{name: "admin write", method: http.MethodPost, path: "/admin/api/hero-sections", role: "admin", body: `{"code":"home","name":"Home"}`, want: http.StatusCreated},
		{name: "public hero", method: http.MethodGet, path: "/hero/en/sections/home", want: http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			if tc.role != "" {
				req.Header.Set(DefaultRoleHeader, tc.role)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, rec.Code, rec.Body.String())
			}
		})
	}
}
