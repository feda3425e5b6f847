package validators

import (
	"net/http"
	"testing"

	"github.com/IbrahimAlakbarov06/social-media-task/internal/models"
	"github.com/labstack/echo/v4"
)

func TestValidateRegisterRequest(t *testing.T) {
	v := NewValidator()

	cases := []struct {
		name string
		req  models.RegisterRequest
		ok   bool
	}{
		{
			"valid",
			models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "longenough", Name: "Alice", Surname: "Smith"},
			true,
		},
		{
			"bad email",
			models.RegisterRequest{Username: "alice", Email: "nope", Password: "longenough", Name: "Alice", Surname: "Smith"},
			false,
		},
		{
			"short password",
			models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "short", Name: "Alice", Surname: "Smith"},
			false,
		},
		{
			"missing surname",
			models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "longenough", Name: "Alice"},
			false,
		},
	}
	for _, c := range cases {
		err := v.Validate(&c.req)
		if c.ok && err != nil {
			t.Fatalf("%s: expected ok, got %v", c.name, err)
		}
		if !c.ok {
			he, isHTTP := err.(*echo.HTTPError)
			if !isHTTP || he.Code != http.StatusBadRequest {
				t.Fatalf("%s: expected 400, got %v", c.name, err)
			}
		}
	}
}

func TestValidateOptionalFields(t *testing.T) {
	v := NewValidator()

	// An all-empty partial update is valid: absent fields are not validated
	if err := v.Validate(&models.UpdateUserRequest{}); err != nil {
		t.Fatalf("empty update request: %v", err)
	}
	if err := v.Validate(&models.UpdateUserRequest{ProfilePictureURL: "not a url"}); err == nil {
		t.Fatalf("expected invalid url to fail validation")
	}
}
