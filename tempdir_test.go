package pathkit

import (
	"context"
	"strings"
	"testing"
)

func TestNewTempDir(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a uniquely named directory", func(t *testing.T) {
		t.Setenv("BEAVER_PATHKIT_TEMP_ROOT", t.TempDir())

		dir, err := NewTempDir(ctx, "some-prefix-")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer dir.Cleanup()

		if !strings.Contains(dir.Path().Portable(), "some-prefix-") {
			t.Errorf("expected name to contain prefix, got %q", dir.Path())
		}
		if !strings.HasSuffix(dir.Path().Portable(), "/") {
			t.Errorf("expected trailing separator in portable form, got %q", dir.Path().Portable())
		}
		if !strings.HasSuffix(dir.Path().Native(), nativeSeparator) {
			t.Errorf("expected trailing separator in native form, got %q", dir.Path().Native())
		}

		exists, err := DirExists(ctx, dir.Path())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exists {
			t.Error("expected directory to exist after creation")
		}
	})

	t.Run("produces distinct directories for the same prefix", func(t *testing.T) {
		t.Setenv("BEAVER_PATHKIT_TEMP_ROOT", t.TempDir())

		a, err := NewTempDir(ctx, "p-")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer a.Cleanup()
		b, err := NewTempDir(ctx, "p-")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer b.Cleanup()

		if a.Path().Equal(b.Path()) {
			t.Errorf("expected distinct paths, both were %q", a.Path())
		}
	})
}

func TestTempDirCleanup(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the directory and its children", func(t *testing.T) {
		t.Setenv("BEAVER_PATHKIT_TEMP_ROOT", t.TempDir())

		dir, err := NewTempDir(ctx, "p-")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		child, err := dir.Join("child")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := CreateDir(ctx, child); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		exists, err := DirExists(ctx, child)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exists {
			t.Fatal("expected child to exist before cleanup")
		}

		dir.Cleanup()

		for _, fn := range []Filename{dir.Path(), child} {
			exists, err := Exists(ctx, fn)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if exists {
				t.Errorf("expected %q to be gone after cleanup", fn)
			}
		}
	})

	t.Run("second cleanup is a no-op", func(t *testing.T) {
		t.Setenv("BEAVER_PATHKIT_TEMP_ROOT", t.TempDir())

		dir, err := NewTempDir(ctx, "p-")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		dir.Cleanup()
		dir.Cleanup()

		exists, err := Exists(ctx, dir.Path())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exists {
			t.Error("expected directory to stay gone")
		}
	})

	t.Run("cleanup tolerates an already deleted directory", func(t *testing.T) {
		t.Setenv("BEAVER_PATHKIT_TEMP_ROOT", t.TempDir())

		dir, err := NewTempDir(ctx, "p-")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := DeleteDirTree(ctx, dir.Path()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Must not panic or fail
		dir.Cleanup()
	})
}
