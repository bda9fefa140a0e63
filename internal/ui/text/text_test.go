package text

import (
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"", 10, ""},
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 8, "hello w…"},
		{"hello", 0, ""},
		{"hello", 1, "…"},
		{"日本語テスト", 7, "日本語…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestTruncateANSI(t *testing.T) {
	styled := "\033[38;2;125;207;255m●\033[0m hello world"
	if w := ansi.StringWidth(Truncate(styled, 8)); w != 8 {
		t.Errorf("expected visual width 8, got %d", w)
	}
}

func TestFit(t *testing.T) {
	if got := Fit("hi", 5); got != "hi   " {
		t.Errorf("Fit pad: got %q", got)
	}
	if got := Fit("CTF Challenges", 6); got != "CTF C…" {
		t.Errorf("Fit truncate: got %q", got)
	}
	styled := "\033[1mbold\033[0m"
	if w := ansi.StringWidth(Fit(styled, 9)); w != 9 {
		t.Errorf("Fit ANSI: expected width 9, got %d", w)
	}
}

func TestCenter(t *testing.T) {
	if got := Center("ab", 6); got != "  ab  " {
		t.Errorf("Center even: got %q", got)
	}
	if got := Center("abc", 6); got != " abc  " {
		t.Errorf("Center odd: got %q", got)
	}
	if got := Center("Leaderboard", 8); ansi.StringWidth(got) != 8 {
		t.Errorf("Center overflow: got %q", got)
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("the quick brown fox\n\njumps", 10)
	want := []string{"the quick", "brown fox", "", "jumps"}
	if len(got) != len(want) {
		t.Fatalf("Wrap: got %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Wrap line %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWrapLongWord(t *testing.T) {
	got := Wrap("supercalifragilistic", 6)
	if len(got) != 1 || got[0] != "super…" {
		t.Errorf("expected long word cut, got %q", got)
	}
}

func TestClock(t *testing.T) {
	ts := time.Date(2024, 3, 1, 9, 5, 0, 0, time.UTC)
	if got := Clock(ts); got != "09:05" {
		t.Errorf("Clock: got %q", got)
	}
}
