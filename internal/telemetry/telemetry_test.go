package telemetry

import (
	"context"
	"testing"
)

func TestNoopTracerDoesNotRecord(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "level.generate")
	defer span.End()
	if span.IsRecording() {
		t.Error("noop span is recording")
	}
}

func TestTracerIsNamed(t *testing.T) {
	if Tracer("generator") == nil {
		t.Fatal("Tracer returned nil")
	}
}

func TestDiagnosticsLoggerVerbosity(t *testing.T) {
	l := DiagnosticsLogger(1)
	if !l.V(1).Enabled() {
		t.Error("V(1) disabled at verbosity 1")
	}
	if l.V(4).Enabled() {
		t.Error("V(4) enabled at verbosity 1")
	}
}
