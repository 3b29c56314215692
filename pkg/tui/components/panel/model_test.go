package panel

import (
	"strings"
	"testing"

	"tableflip.dev/datepick/pkg/tui/theme"
)

func TestCenter(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{in: "ab", width: 6, want: "  ab  "},
		{in: "abc", width: 6, want: " abc  "},
		{in: "Kesäkuu", width: 9, want: " Kesäkuu "},
		{in: "\x1b[1mab\x1b[0m", width: 4, want: " \x1b[1mab\x1b[0m "},
		{in: "too long", width: 3, want: "too long"},
	}
	for _, tt := range tests {
		if got := Center(tt.in, tt.width); got != tt.want {
			t.Fatalf("Center(%q, %d): want %q, got %q", tt.in, tt.width, tt.want, got)
		}
	}
}

func TestViewCentersTitleOverBody(t *testing.T) {
	p := New(theme.Plain().Panel)
	p.SetContent("Title", []string{"0123456789", "abc"})
	view, height := p.View()
	lines := strings.Split(view, "\n")
	if height != 3 || len(lines) != 3 {
		t.Fatalf("expected three lines, got %d:\n%s", height, view)
	}
	if strings.TrimRight(lines[0], " ") != "  Title" {
		t.Fatalf("unexpected title line %q", lines[0])
	}
	if strings.TrimRight(lines[2], " ") != "abc" {
		t.Fatalf("unexpected body line %q", lines[2])
	}
}

func TestViewFixedWidth(t *testing.T) {
	p := New(theme.Plain().Panel)
	p.SetWidth(9)
	p.SetContent("ab", nil)
	view, height := p.View()
	if height != 1 || view != "   ab    " {
		t.Fatalf("unexpected view %q (%d lines)", view, height)
	}
}
