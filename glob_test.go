package pathkit

import (
	"context"
	"os"
	"testing"
)

func TestListMatches(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) Filename {
		t.Helper()
		dir := scratchFilename(t)
		for _, name := range []string{"a.txt", "b.txt", "c.log"} {
			fn, err := dir.Join(name)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err := os.WriteFile(fn.Native(), []byte("x"), 0644); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		sub, err := dir.Join("sub")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := CreateDir(ctx, sub); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		nested, err := sub.Join("d.txt")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := os.WriteFile(nested.Native(), []byte("x"), 0644); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return dir
	}

	t.Run("matches immediate children by name", func(t *testing.T) {
		dir := setup(t)

		matches, err := ListMatches(ctx, dir, "*.txt", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(matches) != 2 {
			t.Fatalf("expected 2 matches, got %d: %v", len(matches), matches)
		}
		for _, m := range matches {
			if m.Portable() != dir.Portable()+"/a.txt" && m.Portable() != dir.Portable()+"/b.txt" {
				t.Errorf("unexpected match %q", m)
			}
		}
	})

	t.Run("recursive matching crosses separators", func(t *testing.T) {
		dir := setup(t)

		matches, err := ListMatches(ctx, dir, "**.txt", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(matches) != 3 {
			t.Fatalf("expected 3 matches, got %d: %v", len(matches), matches)
		}
	})

	t.Run("missing directory fails", func(t *testing.T) {
		_, err := ListMatches(ctx, scratchFilename(t, "nope"), "*", false)
		if !IsNotExist(err) {
			t.Errorf("expected ErrNotExist, got: %v", err)
		}
	})

	t.Run("non-directory fails", func(t *testing.T) {
		fn := scratchFilename(t, "f.txt")
		if err := os.WriteFile(fn.Native(), []byte("x"), 0644); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := ListMatches(ctx, fn, "*", false)
		if !IsNotDir(err) {
			t.Errorf("expected ErrNotDir, got: %v", err)
		}
	})

	t.Run("invalid pattern fails", func(t *testing.T) {
		_, err := ListMatches(ctx, scratchFilename(t), "[", false)
		if err == nil {
			t.Fatal("expected error for invalid pattern")
		}
		if !IsInvalidPath(err) {
			t.Errorf("expected ErrInvalidPath, got: %v", err)
		}
	})
}
