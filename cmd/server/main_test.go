package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestRun_ExitCodes(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	if code := run(context.Background(), func(context.Context) error { return nil }); code != 0 {
		t.Errorf("clean run: exit code %d, want 0", code)
	}

	code := run(context.Background(), func(context.Context) error { return errors.New("listen: address in use") })
	if code != 1 {
		t.Errorf("failed run: exit code %d, want 1", code)
	}
	if !strings.Contains(buf.String(), "address in use") {
		t.Errorf("expected error to be logged, got %q", buf.String())
	}
}

func TestRun_ReleasesSignalContext(t *testing.T) {
	var inner context.Context
	run(context.Background(), func(ctx context.Context) error {
		inner = ctx
		return nil
	})

	select {
	case <-inner.Done():
	default:
		t.Error("signal context should be released when run returns")
	}
}
