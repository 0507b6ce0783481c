package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"myStyleShop/pkg/utils"

	"github.com/labstack/echo/v4"
)

func performProtected(t *testing.T, authHeader string, mw ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}
	for i := len(mw) - 1; i >= 0; i-- {
		handler = mw[i](handler)
	}

	if err := handler(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return rec
}

func TestAuthMiddleware_MissingAndMalformedHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer not-a-jwt"} {
		rec := performProtected(t, header, AuthMiddleware())
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestAuthMiddleware_ValidTokenPassesThrough(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateJWT("42", "customer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := performProtected(t, "Bearer "+token, AuthMiddleware())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for valid token, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthMiddleware_RejectsForeignSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "other-secret")
	token, err := utils.GenerateJWT("42", "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Setenv("JWT_SECRET", "test-secret")
	rec := performProtected(t, "Bearer "+token, AuthMiddleware())
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for foreign-secret token, got %d", rec.Code)
	}
}

func TestAdminOnly_GatesByRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cases := []struct {
		role string
		want int
	}{
		{"admin", http.StatusOK},
		{"ADMIN", http.StatusOK},
		{"customer", http.StatusForbidden},
	}

	for _, tc := range cases {
		token, err := utils.GenerateJWT("42", tc.role)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		rec := performProtected(t, "Bearer "+token, AuthMiddleware(), AdminOnly())
		if rec.Code != tc.want {
			t.Fatalf("role %q: expected %d, got %d", tc.role, tc.want, rec.Code)
		}
	}
}
