package filewatch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kinoplex/kinoplex/pkg/utils/filewatch"
)

func TestUntilModifyContext(t *testing.T) {
	t.Run("writing the watched file cancels the context", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "watched.db")
		if err := os.WriteFile(target, []byte("before"), 0o644); err != nil {
			t.Fatal(err)
		}

		ctx, cancel, err := filewatch.UntilModifyContext(context.Background(), target)
		if err != nil {
			t.Fatal(err)
		}
		defer cancel()

		if err := os.WriteFile(target, []byte("after"), 0o644); err != nil {
			t.Fatal(err)
		}

		select {
		case <-ctx.Done():
			if cause := context.Cause(ctx); cause == context.Canceled {
				t.Errorf("unexpected cause: %v", cause)
			}
		case <-time.After(3 * time.Second):
			t.Fatal("context not canceled by file update")
		}
	})

	t.Run("an untouched file leaves the context alive", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "watched.db")
		if err := os.WriteFile(target, []byte("data"), 0o644); err != nil {
			t.Fatal(err)
		}

		ctx, cancel, err := filewatch.UntilModifyContext(context.Background(), target)
		if err != nil {
			t.Fatal(err)
		}
		defer cancel()

		select {
		case <-ctx.Done():
			t.Errorf("context canceled without a change: %v", context.Cause(ctx))
		case <-time.After(100 * time.Millisecond):
			// pass
		}
	})

	t.Run("cancel releases the watch with a plain cancellation", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "watched.db")
		if err := os.WriteFile(target, []byte("data"), 0o644); err != nil {
			t.Fatal(err)
		}

		ctx, cancel, err := filewatch.UntilModifyContext(context.Background(), target)
		if err != nil {
			t.Fatal(err)
		}
		cancel()

		<-ctx.Done()
		if cause := context.Cause(ctx); cause != context.Canceled {
			t.Errorf("unexpected cause: %v", cause)
		}
	})

	t.Run("a missing file fails to start watching", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "no-such-file")
		if _, _, err := filewatch.UntilModifyContext(context.Background(), missing); err == nil {
			t.Error("no error occurred")
		}
	})
}
