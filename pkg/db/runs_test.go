package db

import (
	"testing"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func TestInsertRun(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	tests := []struct {
		name string
		run  Run
	}{
		{
			name: "successful browser run",
			run: Run{
				URL:        "https://example.com",
				Engine:     "browser",
				Language:   "English",
				Status:     "success",
				WordCount:  1200,
				Summary:    "A short summary.",
				DurationMS: 4200,
			},
		},
		{
			name: "failed run with error type",
			run: Run{
				URL:          "https://example.com/slow",
				Engine:       "browser",
				Status:       "failed",
				ErrorType:    "fetch_timeout",
				ErrorMessage: "fetch timeout: context deadline exceeded",
				DurationMS:   60000,
			},
		},
		{
			name: "cache hit run",
			run: Run{
				URL:       "https://example.com",
				Engine:    "cache",
				Status:    "success",
				WordCount: 1200,
				Summary:   "Same summary again.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runID, err := db.InsertRun(tt.run)
			if err != nil {
				t.Fatalf("InsertRun() failed: %v", err)
			}
			if runID == 0 {
				t.Error("InsertRun() returned 0 ID")
			}
		})
	}
}

func TestGetRunByID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	want := Run{
		URL:        "https://example.com/article",
		Engine:     "browser",
		Language:   "German",
		Status:     "success",
		WordCount:  800,
		Summary:    "Eine kurze Zusammenfassung.",
		OutputPath: "summary.txt",
		DurationMS: 3100,
	}
	runID, err := db.InsertRun(want)
	if err != nil {
		t.Fatalf("InsertRun() failed: %v", err)
	}

	got, err := db.GetRunByID(runID)
	if err != nil {
		t.Fatalf("GetRunByID() failed: %v", err)
	}

	if got.URL != want.URL {
		t.Errorf("URL = %q, want %q", got.URL, want.URL)
	}
	if got.Language != want.Language {
		t.Errorf("Language = %q, want %q", got.Language, want.Language)
	}
	if got.Summary != want.Summary {
		t.Errorf("Summary = %q, want %q", got.Summary, want.Summary)
	}
	if got.OutputPath != want.OutputPath {
		t.Errorf("OutputPath = %q, want %q", got.OutputPath, want.OutputPath)
	}
	if got.WordCount != want.WordCount {
		t.Errorf("WordCount = %d, want %d", got.WordCount, want.WordCount)
	}
}

func TestGetRunByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.GetRunByID(999); err == nil {
		t.Error("expected error for missing run")
	}
}

func TestListRuns(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for i := 0; i < 5; i++ {
		_, err := db.InsertRun(Run{
			URL:    "https://example.com",
			Engine: "browser",
			Status: "success",
		})
		if err != nil {
			t.Fatalf("InsertRun() failed: %v", err)
		}
	}

	runs, err := db.ListRuns(3)
	if err != nil {
		t.Fatalf("ListRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(runs))
	}

	// Newest first.
	for i := 1; i < len(runs); i++ {
		if runs[i-1].RunID < runs[i].RunID {
			t.Errorf("runs not ordered newest first: %d before %d",
				runs[i-1].RunID, runs[i].RunID)
		}
	}
}

func TestLatestRunID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.LatestRunID(); err == nil {
		t.Error("expected error on empty history")
	}

	var lastID int64
	for i := 0; i < 3; i++ {
		id, err := db.InsertRun(Run{URL: "https://example.com", Engine: "http", Status: "success"})
		if err != nil {
			t.Fatalf("InsertRun() failed: %v", err)
		}
		lastID = id
	}

	latest, err := db.LatestRunID()
	if err != nil {
		t.Fatalf("LatestRunID() failed: %v", err)
	}
	if latest != lastID {
		t.Errorf("LatestRunID() = %d, want %d", latest, lastID)
	}
}
