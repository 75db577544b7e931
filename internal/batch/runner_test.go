package batch

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dgallion1/pdfoutline/internal/config"
	"github.com/dgallion1/pdfoutline/internal/outline"
)

func testConfig() config.Config {
	return config.Config{
		WorkerCount:  2,
		MaxQueueSize: 16,
		JobTTL:       time.Hour,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestRunner_SubmitDirProcessesSupportedFiles(t *testing.T) {
	inDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")

	writeFile(t, inDir, "guide.md", "# Admin Guide For Operators\n\n## Setup\n")
	writeFile(t, inDir, "notes.html", "<html><body><h1>Meeting Notes</h1><h2>Action Items</h2></body></html>")
	writeFile(t, inDir, "ignored.txt", "not a supported format")

	r := NewRunner(testConfig(), discardLogger())
	r.Start(context.Background())

	submitted, err := r.SubmitDir(inDir, outDir)
	if err != nil {
		t.Fatalf("SubmitDir: %v", err)
	}
	if submitted != 2 {
		t.Errorf("submitted = %d, want 2", submitted)
	}
	r.Drain()

	completed, failed := r.Counts()
	if completed != 2 || failed != 0 {
		t.Errorf("Counts() = (%d, %d), want (2, 0)", completed, failed)
	}

	var doc outline.Document
	data, err := os.ReadFile(filepath.Join(outDir, "guide.json"))
	if err != nil {
		t.Fatalf("missing output record: %v", err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("invalid record JSON: %v", err)
	}
	if doc.Title != "Admin Guide For Operators  " {
		t.Errorf("title = %q", doc.Title)
	}
	if len(doc.Outline) != 2 {
		t.Errorf("outline entries = %d, want 2: %+v", len(doc.Outline), doc.Outline)
	}

	if _, err := os.Stat(filepath.Join(outDir, "notes.json")); err != nil {
		t.Errorf("missing notes.json: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "ignored.json")); !os.IsNotExist(err) {
		t.Errorf("unsupported file produced output")
	}
}

func TestRunner_FailureIsolation(t *testing.T) {
	inDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")

	// Garbage bytes with a .docx extension fail to parse; the valid
	// document beside it must still be processed.
	writeFile(t, inDir, "broken.docx", "this is not a zip archive")
	writeFile(t, inDir, "fine.md", "# Perfectly Valid Document\n")

	r := NewRunner(testConfig(), discardLogger())
	r.Start(context.Background())
	if _, err := r.SubmitDir(inDir, outDir); err != nil {
		t.Fatalf("SubmitDir: %v", err)
	}
	r.Drain()

	completed, failed := r.Counts()
	if completed != 1 {
		t.Errorf("completed = %d, want 1", completed)
	}
	if failed != 1 {
		t.Errorf("failed = %d, want 1", failed)
	}

	if _, err := os.Stat(filepath.Join(outDir, "fine.json")); err != nil {
		t.Errorf("valid document not processed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "broken.json")); !os.IsNotExist(err) {
		t.Errorf("failed document produced output")
	}
}

func TestRunner_MissingInputDir(t *testing.T) {
	r := NewRunner(testConfig(), discardLogger())
	r.Start(context.Background())
	defer r.Drain()

	if _, err := r.SubmitDir(filepath.Join(t.TempDir(), "nope"), t.TempDir()); err == nil {
		t.Error("expected error for missing input dir")
	}
}

func TestRunner_UploadedJobKeepsResultInMemory(t *testing.T) {
	r := NewRunner(testConfig(), discardLogger())
	r.Start(context.Background())

	job := NewJob("inline.md")
	job.SetData([]byte("# In Memory Document\n\n## Section One\n"))
	if err := r.Submit(job); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	r.Drain()

	if got := r.GetJob(job.ID); got == nil {
		t.Fatal("job not found in store")
	}
	if job.Status != StatusCompleted {
		t.Fatalf("status = %q, want completed (error: %s)", job.Status, job.Error)
	}
	doc := job.Result()
	if doc == nil {
		t.Fatal("expected in-memory result")
	}
	if len(doc.Outline) != 2 {
		t.Errorf("outline entries = %d, want 2", len(doc.Outline))
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
