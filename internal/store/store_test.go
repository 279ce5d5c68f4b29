package store

import (
	"path/filepath"
	"testing"
)

func TestOpenCreatesSchema(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "fresh.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("pragma: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func TestDefaultDBPath(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		want := filepath.Join(t.TempDir(), "custom.db")
		t.Setenv("STUDYLOOP_DB", want)

		got, err := DefaultDBPath()
		if err != nil {
			t.Fatalf("DefaultDBPath: %v", err)
		}
		if got != want {
			t.Errorf("path = %q, want %q", got, want)
		}
	})

	t.Run("xdg data home", func(t *testing.T) {
		dataHome := t.TempDir()
		t.Setenv("STUDYLOOP_DB", "")
		t.Setenv("XDG_DATA_HOME", dataHome)

		got, err := DefaultDBPath()
		if err != nil {
			t.Fatalf("DefaultDBPath: %v", err)
		}
		want := filepath.Join(dataHome, "studyloop", "studyloop.db")
		if got != want {
			t.Errorf("path = %q, want %q", got, want)
		}
	})
}

func TestStudentLocks(t *testing.T) {
	locks := newStudentLocks()

	release, err := locks.TryAcquire("s1")
	if err != nil {
		t.Fatalf("first acquire: %v", err)
	}

	_, err2 := locks.TryAcquire("s1")
	if err2 == nil {
		t.Error("second acquire succeeded, want ErrConcurrentModification")
	} else if _, ok := err2.(*ErrConcurrentModification); !ok {
		t.Errorf("error type = %T", err2)
	}

	// Other students are independent contention units.
	release2, err := locks.TryAcquire("s2")
	if err != nil {
		t.Fatalf("other student: %v", err)
	}
	release2()

	release()
	release3, err := locks.TryAcquire("s1")
	if err != nil {
		t.Fatalf("reacquire after release: %v", err)
	}
	release3()
}
