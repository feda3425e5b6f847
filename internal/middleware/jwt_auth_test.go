package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/IbrahimAlakbarov06/social-media-task/internal/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

func signToken(t *testing.T, secret string) string {
	t.Helper()
	claims := &models.JwtCustomClaims{
		UserID: 7,
		Email:  "alice@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestJWTAuthMiddlewareValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "supersecretjwtkey"))
	ctx := e.NewContext(req, httptest.NewRecorder())

	var got *models.JwtCustomClaims
	handler := JWTAuthMiddleware()(func(c echo.Context) error {
		got, _ = c.Get("user").(*models.JwtCustomClaims)
		return nil
	})

	if err := handler(ctx); err != nil {
		t.Fatalf("expected request to pass, got %v", err)
	}
	if got == nil {
		t.Fatalf("claims not stored in context")
	}
	if got.UserID != 7 || got.Email != "alice@example.com" {
		t.Fatalf("unexpected claims: %+v", got)
	}
}

func TestJWTAuthMiddlewareRejections(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"malformed header", "Token abc"},
		{"garbage token", "Bearer not.a.token"},
		{"wrong secret", "Bearer " + signToken(t, "someothersecret")},
	}
	e := echo.New()
	for _, c := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if c.header != "" {
			req.Header.Set("Authorization", c.header)
		}
		ctx := e.NewContext(req, httptest.NewRecorder())

		handler := JWTAuthMiddleware()(func(echo.Context) error { return nil })
		err := handler(ctx)
		if err == nil {
			t.Fatalf("%s: expected rejection", c.name)
		}
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %v", c.name, err)
		}
	}
}
