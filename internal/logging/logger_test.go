// Copyright (c) 2026 Tally Team
// Tally - four-function terminal calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestDebugf_GatedByLevel(t *testing.T) {
	var buf bytes.Buffer
	L.SetOutput(&buf)
	defer SetDebug(false)

	SetDebug(false)
	Debugf("hidden %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("expected no debug output when disabled, got %q", buf.String())
	}

	SetDebug(true)
	Debugf("visible %d", 2)
	if !strings.Contains(buf.String(), "visible 2") {
		t.Fatalf("expected debug output when enabled, got %q", buf.String())
	}
}

func TestErrorf_AlwaysLogs(t *testing.T) {
	var buf bytes.Buffer
	L.SetOutput(&buf)

	Errorf("boom: %v", "reason")
	if !strings.Contains(buf.String(), "boom: reason") {
		t.Fatalf("expected error output, got %q", buf.String())
	}
}
