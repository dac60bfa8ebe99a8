package cmd

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roughcut/internal/services"
)

func TestFetchJSONDecodesStatusResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"WatchedProjects":2,"Running":true}`))
	}))
	defer srv.Close()

	client := &http.Client{Timeout: 2 * time.Second}
	var status services.Status
	if err := fetchJSON(client, srv.URL, &status); err != nil {
		t.Fatalf("fetchJSON returned error: %v", err)
	}
	if status.WatchedProjects != 2 || !status.Running {
		t.Fatalf("unexpected decoded status: %+v", status)
	}
}

func TestFetchJSONReturnsErrorOnNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := &http.Client{Timeout: 2 * time.Second}
	var status services.Status
	if err := fetchJSON(client, srv.URL, &status); err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
}

func TestCountsRowFormatsAllFields(t *testing.T) {
	row := countsRow("transcription", services.CountsByStatus{Pending: 1, Running: 2, Completed: 3, Failed: 4})
	want := []string{"transcription", "1", "2", "3", "4"}
	for i, v := range want {
		if row[i] != v {
			t.Fatalf("row[%d]: got %q want %q", i, row[i], v)
		}
	}
}
