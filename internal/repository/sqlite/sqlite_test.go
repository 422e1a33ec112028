package sqlite

import (
	"context"
	"testing"
	"time"

	"topoconvert/internal/repository"
)

// newTestRepo creates an in-memory SQLite repository for testing
func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test repository: %v", err)
	}
	t.Cleanup(func() {
		repo.Close()
	})
	return repo
}

func TestRecordAndGetRun(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	run := &repository.Run{
		Source:   "lab/topology.net",
		Name:     "lab",
		Nodes:    4,
		Links:    3,
		Warnings: []string{"destination node R9 not found"},
	}
	if err := repo.RecordRun(ctx, run); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}

	if run.ID == "" {
		t.Error("expected RecordRun to assign an id")
	}
	if run.CreatedAt.IsZero() {
		t.Error("expected RecordRun to assign a timestamp")
	}

	got, err := repo.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if got.Source != run.Source || got.Name != run.Name {
		t.Errorf("got run %q/%q, want %q/%q", got.Source, got.Name, run.Source, run.Name)
	}
	if got.Nodes != 4 || got.Links != 3 {
		t.Errorf("got counts %d/%d, want 4/3", got.Nodes, got.Links)
	}
	if len(got.Warnings) != 1 || got.Warnings[0] != run.Warnings[0] {
		t.Errorf("got warnings %v, want %v", got.Warnings, run.Warnings)
	}
}

func TestGetRunNotFound(t *testing.T) {
	repo := newTestRepo(t)

	if _, err := repo.GetRun(context.Background(), "missing"); err == nil {
		t.Error("expected error for missing run")
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		run := &repository.Run{
			ID:        string(rune('a' + i)),
			Source:    "topology.net",
			Name:      "net",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.RecordRun(ctx, run); err != nil {
			t.Fatalf("RecordRun failed: %v", err)
		}
	}

	runs, err := repo.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].ID != "c" || runs[1].ID != "b" {
		t.Errorf("got order %s, %s; want c, b", runs[0].ID, runs[1].ID)
	}
}

func TestListRunsDefaultLimit(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.RecordRun(ctx, &repository.Run{Source: "a.net", Name: "a"}); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}

	runs, err := repo.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("got %d runs, want 1", len(runs))
	}
}

func TestRecordRunEmptyWarnings(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	run := &repository.Run{Source: "clean.net", Name: "clean"}
	if err := repo.RecordRun(ctx, run); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}

	got, err := repo.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if len(got.Warnings) != 0 {
		t.Errorf("got warnings %v, want none", got.Warnings)
	}
}
