package http

import (
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"moneymornings-backend/internal/adapter/middleware"

	"github.com/labstack/echo/v4"
)

func newAdminServer() *echo.Echo {
	e := echo.New()
	h := NewAdminHandler()
	e.GET("/admin", h.Dashboard, middleware.AdminBasicAuth("admin", "s3cret"))
	return e
}

func TestDashboard_NoCredentials(t *testing.T) {
	e := newAdminServer()

	req := httptest.NewRequest(stdhttp.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != stdhttp.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if challenge := rec.Header().Get(echo.HeaderWWWAuthenticate); !strings.HasPrefix(challenge, "basic") && !strings.HasPrefix(challenge, "Basic") {
		t.Fatalf("WWW-Authenticate = %q, want a Basic challenge", challenge)
	}
}

func TestDashboard_WrongCredentials(t *testing.T) {
	e := newAdminServer()

	req := httptest.NewRequest(stdhttp.MethodGet, "/admin", nil)
	req.SetBasicAuth("admin", "wrong")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != stdhttp.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestDashboard_CorrectCredentials(t *testing.T) {
	e := newAdminServer()

	req := httptest.NewRequest(stdhttp.MethodGet, "/admin", nil)
	req.SetBasicAuth("admin", "s3cret")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Admin Dashboard") {
		t.Fatal("body missing dashboard marker")
	}
}
