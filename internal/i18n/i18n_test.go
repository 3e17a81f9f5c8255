// Copyright (c) 2026 Tally Team
// Tally - four-function terminal calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package i18n

import "testing"

func TestT_KnownMessage(t *testing.T) {
	Init("en")
	if got := T("tui.copied"); got != "copied to clipboard" {
		t.Fatalf("expected English translation, got %q", got)
	}
}

func TestT_UnknownMessageFallsBackToID(t *testing.T) {
	Init("en")
	if got := T("no.such.message"); got != "no.such.message" {
		t.Fatalf("expected message ID fallback, got %q", got)
	}
}

func TestSetLang_SwitchesLocale(t *testing.T) {
	SetLang("de")
	defer SetLang("en")
	if got := T("tui.copied"); got != "in Zwischenablage kopiert" {
		t.Fatalf("expected German translation, got %q", got)
	}
}

func TestT_InitializesLazily(t *testing.T) {
	localizer = nil
	if got := T("tui.help.quit"); got != "quit" {
		t.Fatalf("expected lazy English init, got %q", got)
	}
}
