package retry

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"syscall"
	"testing"
	"time"
)

var errBusy = &fs.PathError{Op: "rename", Path: "package.json", Err: syscall.EBUSY}

func TestDo_RetriesOnTransientError(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), Config{MaxAttempts: 3}, IsTransient, func() error {
		attempts++
		return errBusy
	})

	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}

func TestDo_NoRetryOnPermanentError(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), Config{MaxAttempts: 3}, IsTransient, func() error {
		attempts++
		return errors.New("boom")
	})

	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", attempts)
	}
}

func TestDo_SucceedsAfterRetry(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), Config{MaxAttempts: 3, BaseDelay: time.Millisecond}, nil, func() error {
		attempts++
		if attempts == 1 {
			return fmt.Errorf("manifest: %w", errBusy)
		}
		return nil
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", attempts)
	}
}

func TestDo_CustomPredicate(t *testing.T) {
	locked := errors.New("database is locked")
	attempts := 0
	err := Do(context.Background(), Config{MaxAttempts: 5}, func(err error) bool { return errors.Is(err, locked) }, func() error {
		attempts++
		if attempts < 4 {
			return locked
		}
		return nil
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if attempts != 4 {
		t.Fatalf("expected 4 attempts, got %d", attempts)
	}
}

func TestDo_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	err := Do(ctx, Config{MaxAttempts: 3}, IsTransient, func() error {
		attempts++
		return errBusy
	})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if attempts != 0 {
		t.Fatalf("expected 0 attempts, got %d", attempts)
	}
}

func TestIsTransient(t *testing.T) {
	if IsTransient(nil) {
		t.Error("nil must not be transient")
	}
	if !IsTransient(errBusy) {
		t.Error("EBUSY should be transient")
	}
	if IsTransient(fs.ErrNotExist) {
		t.Error("ErrNotExist should not be transient")
	}
}

func TestBackoffDelay(t *testing.T) {
	if delay := backoffDelay(0, time.Second, 1); delay != 0 {
		t.Fatalf("expected zero delay, got %v", delay)
	}
	for attempt := 1; attempt <= 6; attempt++ {
		if delay := backoffDelay(10*time.Millisecond, 40*time.Millisecond, attempt); delay > 40*time.Millisecond {
			t.Fatalf("attempt %d: delay %v exceeds max", attempt, delay)
		}
	}
}
