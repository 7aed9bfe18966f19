package telemetry

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	defer func() {
		os.Stdout = origStdout
	}()

	fn()

	_ = w.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("read log output: %v", err)
	}
	return buf.String()
}

func TestInfoEmitsJSONLine(t *testing.T) {
	out := captureStdout(t, func() {
		Info("stacks.plan_created", map[string]any{
			"plan_id":   "plan-1",
			"scenarios": 3,
		})
	})

	line := strings.TrimSpace(out)
	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		t.Fatalf("decode log json: %v", err)
	}
	if payload["level"] != "info" {
		t.Fatalf("expected info level, got %v", payload["level"])
	}
	if payload["msg"] != "stacks.plan_created" {
		t.Fatalf("unexpected msg: %v", payload["msg"])
	}
	if payload["service"] != "stackpilot-api" {
		t.Fatalf("unexpected service: %v", payload["service"])
	}
	if payload["plan_id"] != "plan-1" {
		t.Fatalf("unexpected plan_id: %v", payload["plan_id"])
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("missing ts field")
	}
}

func TestErrorEmitsErrorLevel(t *testing.T) {
	out := captureStdout(t, func() {
		Error("engine.empty_pool", nil)
	})

	var payload map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &payload); err != nil {
		t.Fatalf("decode log json: %v", err)
	}
	if payload["level"] != "error" {
		t.Fatalf("expected error level, got %v", payload["level"])
	}
}
