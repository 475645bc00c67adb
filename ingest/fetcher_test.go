package ingest

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"oem-insights/config"
)

func fetcherConfig(sources ...string) *config.Config {
	return &config.Config{
		DataSources:     sources,
		FetchTimeoutMs:  2000,
		MaxConcurrency:  2,
		RateLimitPerSec: 0,
		MaxRetries:      1,
	}
}

func TestFetchHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	f := NewFetcher(fetcherConfig(srv.URL), newTestLogger())
	snapshot := f.Fetch()
	if len(snapshot) != 3 {
		t.Fatalf("snapshot: got %d records, want 3", len(snapshot))
	}
}

func TestFetchFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oem.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0644); err != nil {
		t.Fatal(err)
	}

	f := NewFetcher(fetcherConfig(path), newTestLogger())
	snapshot := f.Fetch()
	if len(snapshot) != 3 {
		t.Fatalf("snapshot: got %d records, want 3", len(snapshot))
	}
}

func TestFetchFailureDegradesToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewFetcher(fetcherConfig(srv.URL, "/does/not/exist.csv"), newTestLogger())
	snapshot := f.Fetch()
	if len(snapshot) != 0 {
		t.Fatalf("snapshot: got %d records, want empty on total failure", len(snapshot))
	}
}

func TestFetchMergeDeduplicates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	// Same document twice: first source wins, duplicates are skipped.
	f := NewFetcher(fetcherConfig(srv.URL, srv.URL), newTestLogger())
	snapshot := f.Fetch()
	if len(snapshot) != 3 {
		t.Fatalf("snapshot: got %d records, want 3 after dedup", len(snapshot))
	}
}
