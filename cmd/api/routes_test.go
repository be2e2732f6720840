package main

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	httpadp "greenmarket-backend/internal/adapter/http"
)

func newRoutedEcho(t *testing.T) *echo.Echo {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	e := echo.New()
	e.Validator = httpadp.NewValidator()
	registerRoutes(e, handlers{health: httpadp.NewHandler(nil)}, rdb, time.Minute)
	return e
}

func TestRegisterRoutes_Table(t *testing.T) {
	e := newRoutedEcho(t)

	got := map[string]bool{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = true
	}
	want := []string{
		"GET /health",
		"GET /ready",
		"POST /estimations",
		"GET /quotations",
		"POST /quotations",
		"GET /quotations/:quotation_id",
		"GET /quotations/:quotation_id/versions",
		"POST /quotations/:quotation_id/versions",
		"GET /quotations/:quotation_id/versions/:version_id",
		"PUT /quotations/:quotation_id/versions/:version_id",
		"POST /quotations/:quotation_id/versions/:version_id/submit",
		"POST /quotations/:quotation_id/versions/:version_id/finalize",
		"GET /quotations/:quotation_id/versions/:version_id/export",
		"GET /projects/completed",
		"GET /projects/:project_id",
		"POST /projects/:project_id/steps/:step_type/complete",
		"GET /projects/:project_id/maintenances",
		"POST /projects/:project_id/maintenances",
		"GET /maintenances/:maintenance_id",
		"POST /maintenances/:maintenance_id/reschedule",
		"POST /maintenances/:maintenance_id/confirm",
		"POST /maintenances/:maintenance_id/reject",
		"POST /maintenances/:maintenance_id/complete",
	}
	var missing []string
	for _, w := range want {
		if !got[w] {
			missing = append(missing, w)
		}
	}
	sort.Strings(missing)
	if len(missing) > 0 {
		t.Fatalf("missing routes:\n%s", strings.Join(missing, "\n"))
	}
}

func TestRegisterRoutes_MutationsNeedRequestID(t *testing.T) {
	e := newRoutedEcho(t)

	// rejected by the idempotency middleware before any handler runs
	req := httptest.NewRequest(http.MethodPost, "/maintenances/44444444444444444444444444444444/confirm", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest || !strings.Contains(rec.Body.String(), "X-Request-Id") {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestRegisterRoutes_Health(t *testing.T) {
	e := newRoutedEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
