package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func contextWithRole(t *testing.T, role Role) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), UserRoleKey, role)
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func okHandler(c echo.Context) error { return c.NoContent(http.StatusOK) }

func TestRequireRole_Match(t *testing.T) {
	c := contextWithRole(t, RoleManager)
	err := RequireRole(RoleManager)(okHandler)(c)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRequireRole_AdminAccessesAll(t *testing.T) {
	c := contextWithRole(t, RoleAdmin)
	err := RequireRole(RoleReceptionist)(okHandler)(c)
	if err != nil {
		t.Errorf("admin should pass any role check, got: %v", err)
	}
}

func TestRequireRole_Forbidden(t *testing.T) {
	c := contextWithRole(t, RoleReceptionist)
	err := RequireRole(RoleManager, RoleDoctor)(okHandler)(c)
	if err == nil {
		t.Fatal("expected forbidden error")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %v", err)
	}
}

func TestRequireRole_NoUser(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := RequireRole(RoleManager)(okHandler)(c)
	if err == nil {
		t.Fatal("expected unauthorized error")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}
