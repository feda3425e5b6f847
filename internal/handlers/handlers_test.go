package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/IbrahimAlakbarov06/social-media-task/internal/services"
	"github.com/labstack/echo/v4"
)

func TestHTTPErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{services.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: post", services.ErrNotFound), http.StatusNotFound},
		{services.ErrForbidden, http.StatusForbidden},
		{services.ErrSelfFollow, http.StatusBadRequest},
		{fmt.Errorf("%w: password too short", services.ErrValidation), http.StatusBadRequest},
		{services.ErrEmailTaken, http.StatusConflict},
		{services.ErrUsernameTaken, http.StatusConflict},
		{services.ErrInvalidCredentials, http.StatusUnauthorized},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}
	for i, c := range cases {
		he, ok := httpError(c.err).(*echo.HTTPError)
		if !ok {
			t.Fatalf("case %d: expected *echo.HTTPError", i)
		}
		if he.Code != c.code {
			t.Fatalf("case %d: got status %d, want %d", i, he.Code, c.code)
		}
	}
}

func TestGetPagination(t *testing.T) {
	cases := []struct {
		query    string
		wantPage int
		wantSize int
	}{
		{"", 0, 10},
		{"page=2&size=25", 2, 25},
		{"page=-3&size=0", 0, 10},
		{"page=abc&size=xyz", 0, 10},
		{"size=1000", 0, 10},
	}
	e := echo.New()
	for i, c := range cases {
		req := httptest.NewRequest(http.MethodGet, "/?"+c.query, nil)
		ctx := e.NewContext(req, httptest.NewRecorder())
		p := getPagination(ctx)
		if p.Page != c.wantPage || p.Size != c.wantSize {
			t.Fatalf("case %d (%q): got page=%d size=%d, want page=%d size=%d",
				i, c.query, p.Page, p.Size, c.wantPage, c.wantSize)
		}
	}
}

func TestParseIDParam(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := e.NewContext(req, httptest.NewRecorder())
	ctx.SetParamNames("id")
	ctx.SetParamValues("42")

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		t.Fatalf("parseIDParam: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected 42, got %d", id)
	}

	ctx.SetParamValues("not-a-number")
	if _, err := parseIDParam(ctx, "id"); err == nil {
		t.Fatalf("expected error for non-numeric id")
	}
}
