package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const testKey = "3f2e1d0c9b8a7f6e5d4c3b2a19087f6e"

func newIdempServer(t *testing.T) (*echo.Echo, *int) {
	t.Helper()
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	calls := 0
	e := echo.New()
	e.POST("/api/applications/submit", func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusOK, map[string]string{"call": strconv.Itoa(calls)})
	}, Idempotency(rdb, time.Minute))
	return e, &calls
}

func postSubmit(e *echo.Echo, key, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/applications/submit", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if key != "" {
		req.Header.Set(idempotencyHeader, key)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestIdempotency_NoHeaderPassesThrough(t *testing.T) {
	e, calls := newIdempServer(t)

	r1 := postSubmit(e, "", `{"a":1}`)
	r2 := postSubmit(e, "", `{"a":1}`)
	if r1.Code != http.StatusOK || r2.Code != http.StatusOK {
		t.Fatalf("codes = %d/%d, want 200/200", r1.Code, r2.Code)
	}
	if *calls != 2 {
		t.Fatalf("handler calls = %d, want 2", *calls)
	}
}

func TestIdempotency_ReplaysStoredResponse(t *testing.T) {
	e, calls := newIdempServer(t)

	r1 := postSubmit(e, testKey, `{"a":1}`)
	r2 := postSubmit(e, testKey, `{"a":1}`)
	if r1.Code != http.StatusOK || r2.Code != http.StatusOK {
		t.Fatalf("codes = %d/%d, want 200/200", r1.Code, r2.Code)
	}
	if *calls != 1 {
		t.Fatalf("handler calls = %d, want 1 (second must be replayed)", *calls)
	}
	if r1.Body.String() != r2.Body.String() {
		t.Fatalf("replayed body differs: %q vs %q", r1.Body.String(), r2.Body.String())
	}
}

func TestIdempotency_KeyReuseDifferentBody(t *testing.T) {
	e, _ := newIdempServer(t)

	if r := postSubmit(e, testKey, `{"a":1}`); r.Code != http.StatusOK {
		t.Fatalf("first code = %d, want 200", r.Code)
	}
	r := postSubmit(e, testKey, `{"a":2}`)
	if r.Code != http.StatusConflict {
		t.Fatalf("code = %d, want 409", r.Code)
	}
}

func TestIdempotency_InvalidKeyFormat(t *testing.T) {
	e, calls := newIdempServer(t)

	r := postSubmit(e, "not a key!", `{"a":1}`)
	if r.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", r.Code)
	}
	if *calls != 0 {
		t.Fatalf("handler calls = %d, want 0", *calls)
	}
}

func TestIdempotency_GetBypassed(t *testing.T) {
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	e := echo.New()
	e.GET("/api/applications", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []string{})
	}, Idempotency(rdb, time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/api/applications", nil)
	req.Header.Set(idempotencyHeader, testKey)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200", rec.Code)
	}
	if s.Exists("idemp:get:/api/applications:" + testKey) {
		t.Fatal("GET must not create idempotency entries")
	}
}
