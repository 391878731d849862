package report

import (
	"testing"
	"time"
)

func TestDiskStore_SaveLoad(t *testing.T) {
	s := NewDiskStore(t.TempDir(), 5)

	want := &RunResult{
		ID:          "run-1",
		Kind:        Launch,
		Started:     time.Now().UTC().Truncate(time.Second),
		ScriptDir:   "/apps/spotdl",
		Interpreter: "py -3",
		App:         "URN_SpotDL.py",
		ExitCode:    0,
		Steps:       []Step{{Name: "launch", Status: "pass"}},
	}
	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load("run-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Interpreter != want.Interpreter {
		t.Errorf("Interpreter = %q, want %q", got.Interpreter, want.Interpreter)
	}
	if got.App != want.App {
		t.Errorf("App = %q, want %q", got.App, want.App)
	}
	if len(got.Steps) != 1 || got.Steps[0].Name != "launch" {
		t.Errorf("Steps = %v, want the launch step", got.Steps)
	}
}

func TestDiskStore_LoadMissing(t *testing.T) {
	s := NewDiskStore(t.TempDir(), 5)
	if _, err := s.Load("no-such-run"); err == nil {
		t.Fatal("expected error for missing run")
	}
}

func TestDiskStore_RetentionPrune(t *testing.T) {
	s := NewDiskStore(t.TempDir(), 3)

	ids := []string{"a", "b", "c", "d", "e"}
	for _, id := range ids {
		if err := s.Save(&RunResult{ID: id, Kind: Launch, Started: time.Now()}); err != nil {
			t.Fatalf("Save(%s): %v", id, err)
		}
		time.Sleep(5 * time.Millisecond) // distinct mod times for age ordering
	}

	runs, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("len(runs) = %d, want 3", len(runs))
	}

	// The oldest two are gone, the newest survives.
	if _, err := s.Load("a"); err == nil {
		t.Error("run a still present, want pruned")
	}
	if _, err := s.Load("e"); err != nil {
		t.Errorf("run e pruned, want retained: %v", err)
	}
}

func TestDiskStore_ListNewestFirst(t *testing.T) {
	s := NewDiskStore(t.TempDir(), 10)

	base := time.Now().Add(-time.Hour)
	for i, id := range []string{"old", "mid", "new"} {
		r := &RunResult{ID: id, Kind: Launch, Started: base.Add(time.Duration(i) * time.Minute)}
		if err := s.Save(r); err != nil {
			t.Fatalf("Save(%s): %v", id, err)
		}
	}

	runs, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("len(runs) = %d, want 3", len(runs))
	}
	if runs[0].ID != "new" || runs[2].ID != "old" {
		t.Errorf("order = [%s %s %s], want newest first", runs[0].ID, runs[1].ID, runs[2].ID)
	}
}

func TestDiskStore_ListEmpty(t *testing.T) {
	s := NewDiskStore(t.TempDir()+"/never-created", 3)
	runs, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("len(runs) = %d, want 0", len(runs))
	}
}
