// Copyright 2026 The ScreenPilot Authors
//
// Chrome workflow helper tests

package main

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	if got := truncate("short", 100); got != "short" {
		t.Errorf("truncate(short, 100) = %q", got)
	}
	if got := truncate("abcdef", 3); got != "abc..." {
		t.Errorf("truncate(abcdef, 3) = %q", got)
	}
	if got := truncate("abc", 3); got != "abc" {
		t.Errorf("truncate at exact length = %q", got)
	}
}

func TestTruncate_RuneBoundary(t *testing.T) {
	// Each rune is 3 bytes; cut points inside a rune must back up.
	s := strings.Repeat("日", 10)
	for max := 1; max < len(s); max++ {
		got := truncate(s, max)
		if !utf8.ValidString(got) {
			t.Fatalf("truncate(%q, %d) = %q is not valid UTF-8", s, max, got)
		}
		if cut := strings.TrimSuffix(got, "..."); len(cut) > max {
			t.Fatalf("truncate(%q, %d) kept %d bytes", s, max, len(cut))
		}
	}
}
