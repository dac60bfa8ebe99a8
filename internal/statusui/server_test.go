package statusui

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"roughcut/internal/services"
)

func TestHandleStatusJSONReturnsCounts(t *testing.T) {
	svc := services.New(1, nil)
	srv := New(svc)

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "WatchedProjects") {
		t.Fatalf("expected status JSON to mention WatchedProjects, got %s", rec.Body.String())
	}
}

func TestHandleDashboardRendersHTML(t *testing.T) {
	svc := services.New(1, nil)
	srv := New(svc)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "roughcut") {
		t.Fatal("expected dashboard HTML to mention roughcut")
	}
}

func TestHandleJobsJSONListsJobs(t *testing.T) {
	svc := services.New(1, nil)
	srv := New(svc)

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
