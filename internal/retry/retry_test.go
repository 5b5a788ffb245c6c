package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"TUI_playlist_duration/internal/core/domain"
)

func fastConfig() Config {
	return Config{
		MaxRetries:     2,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
		Multiplier:     2.0,
	}
}

func TestDo_SucceedsFirstTry(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(), nil, func(ctx context.Context) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("Do error=%v", err)
	}
	if calls != 1 {
		t.Fatalf("calls=%d, want 1", calls)
	}
}

func TestDo_RetriesTransient(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(), nil, func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return fmt.Errorf("%w: connection reset", domain.ErrTransientNetwork)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do error=%v", err)
	}
	if calls != 3 {
		t.Fatalf("calls=%d, want 3", calls)
	}
}

func TestDo_PermanentErrorNotRetried(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(), nil, func(ctx context.Context) error {
		calls++
		return domain.ErrQuotaExceeded
	})
	if !errors.Is(err, domain.ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("calls=%d, want 1 (quota errors are permanent)", calls)
	}
}

func TestDo_ExhaustsRetries(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(), nil, func(ctx context.Context) error {
		calls++
		return fmt.Errorf("%w: still down", domain.ErrTransientNetwork)
	})
	if !errors.Is(err, domain.ErrTransientNetwork) {
		t.Fatalf("expected wrapped ErrTransientNetwork, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("calls=%d, want 3 (initial + 2 retries)", calls)
	}
}

func TestDo_CancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	cfg := fastConfig()
	cfg.InitialBackoff = time.Minute
	cfg.MaxBackoff = time.Minute

	done := make(chan error, 1)
	go func() {
		done <- Do(ctx, cfg, nil, func(ctx context.Context) error {
			return fmt.Errorf("%w: flaky", domain.ErrTransientNetwork)
		})
	}()

	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Do did not return after cancellation")
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "transient", err: domain.ErrTransientNetwork, want: true},
		{name: "wrapped transient", err: fmt.Errorf("call: %w", domain.ErrTransientNetwork), want: true},
		{name: "quota", err: domain.ErrQuotaExceeded, want: false},
		{name: "not found", err: domain.ErrPlaylistNotFound, want: false},
		{name: "invalid reference", err: domain.ErrInvalidPlaylistReference, want: false},
		{name: "cancelled", err: context.Canceled, want: false},
	}
	for _, tt := range tests {
		if got := IsRetryable(tt.err); got != tt.want {
			t.Fatalf("%s: IsRetryable()=%v, want %v", tt.name, got, tt.want)
		}
	}
}
