package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/suenkler-ai/scraper-summarizer/pkg/browser"
)

func TestFetchHTML(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer srv.Close()

	f := NewFetcher(5*time.Second, "TestAgent/1.0")
	html, err := f.FetchHTML(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchHTML() failed: %v", err)
	}

	if html != "<html><body>hello</body></html>" {
		t.Errorf("html = %q", html)
	}
	if gotUA != "TestAgent/1.0" {
		t.Errorf("User-Agent = %q", gotUA)
	}
}

func TestFetchHTML_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	f := NewFetcher(5*time.Second, "")
	if _, err := f.FetchHTML(context.Background(), srv.URL); !errors.Is(err, browser.ErrNetwork) {
		t.Errorf("error = %v, want ErrNetwork", err)
	}
}

func TestFetchHTML_ConnectionRefused(t *testing.T) {
	// Grab a port nothing listens on.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	f := NewFetcher(2*time.Second, "")
	if _, err := f.FetchHTML(context.Background(), url); !errors.Is(err, browser.ErrNetwork) {
		t.Errorf("error = %v, want ErrNetwork", err)
	}
}
