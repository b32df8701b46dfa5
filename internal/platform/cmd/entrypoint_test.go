package cmd

import (
	"context"
	"errors"
	"testing"
)

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServiceGallery, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	t.Setenv("PORTFOLIO_OTEL_ENDPOINT", "")

	want := errors.New("boom")
	got := RunWithTelemetry(context.Background(), ServiceGallery, func(context.Context) error { return want })
	if !errors.Is(got, want) {
		t.Fatalf("RunWithTelemetry() error = %v, want %v", got, want)
	}
}

func TestLogPrefix(t *testing.T) {
	t.Parallel()

	if got := LogPrefix(ServiceGallery); got != "[GALLERY] " {
		t.Fatalf("LogPrefix() = %q, want %q", got, "[GALLERY] ")
	}
	if got := LogPrefix("  "); got != "" {
		t.Fatalf("LogPrefix(blank) = %q, want empty", got)
	}
}
