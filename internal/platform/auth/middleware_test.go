package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

var testCfg = JWTConfig{SigningKey: []byte("test-secret"), TokenTTL: time.Hour}

func doRequest(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return rec, handler(c)
}

func TestJWTMiddleware_ValidToken(t *testing.T) {
	token, err := IssueToken(testCfg, "user-1", RoleManager, "clinic-1")
	if err != nil {
		t.Fatalf("IssueToken() error: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotRole Role
	var gotUser, gotClinic string
	handler := JWTMiddleware(testCfg)(func(c echo.Context) error {
		ctx := c.Request().Context()
		gotRole, _ = RoleFromContext(ctx)
		gotUser = UserIDFromContext(ctx)
		gotClinic = ClinicIDFromContext(ctx)
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotRole != RoleManager {
		t.Errorf("expected role manager, got %q", gotRole)
	}
	if gotUser != "user-1" {
		t.Errorf("expected user-1, got %q", gotUser)
	}
	if gotClinic != "clinic-1" {
		t.Errorf("expected clinic-1, got %q", gotClinic)
	}
}

func TestJWTMiddleware_MissingHeader(t *testing.T) {
	_, err := doRequest(t, JWTMiddleware(testCfg), "")
	if err == nil {
		t.Error("expected error for missing header")
	}
}

func TestJWTMiddleware_BadFormat(t *testing.T) {
	_, err := doRequest(t, JWTMiddleware(testCfg), "Token abc")
	if err == nil {
		t.Error("expected error for non-bearer header")
	}
}

func TestJWTMiddleware_BadSignature(t *testing.T) {
	other := JWTConfig{SigningKey: []byte("other-secret"), TokenTTL: time.Hour}
	token, _ := IssueToken(other, "user-1", RoleAdmin, "")
	_, err := doRequest(t, JWTMiddleware(testCfg), "Bearer "+token)
	if err == nil {
		t.Error("expected error for token signed with wrong key")
	}
}

func TestJWTMiddleware_ExpiredToken(t *testing.T) {
	expired := JWTConfig{SigningKey: testCfg.SigningKey, TokenTTL: -time.Hour}
	token, _ := IssueToken(expired, "user-1", RoleAdmin, "")
	_, err := doRequest(t, JWTMiddleware(testCfg), "Bearer "+token)
	if err == nil {
		t.Error("expected error for expired token")
	}
}

func TestDevAuthMiddleware_GrantsAdmin(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotRole Role
	handler := DevAuthMiddleware()(func(c echo.Context) error {
		gotRole, _ = RoleFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotRole != RoleAdmin {
		t.Errorf("expected admin role, got %q", gotRole)
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"admin", RoleAdmin, false},
		{"MANAGER", RoleManager, false},
		{" doctor ", RoleDoctor, false},
		{"receptionist", RoleReceptionist, false},
		{"superuser", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseRole(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseRole(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRole(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
