package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/five82/jade/internal/logs"
)

func TestThemeOrder(t *testing.T) {
	names := themeOrder
	want := []string{"Nightfox", "Kanagawa", "Slate"}
	if len(names) != len(want) {
		t.Fatalf("themeOrder has %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("themeOrder = %v, want %v", names, want)
		}
	}
}

func TestNextTheme(t *testing.T) {
	tests := []struct {
		current, want string
	}{
		{"Nightfox", "Kanagawa"},
		{"Kanagawa", "Slate"},
		{"Slate", "Nightfox"},
		{"Unknown", "Nightfox"},
	}
	for _, tt := range tests {
		if got := NextTheme(tt.current); got != tt.want {
			t.Fatalf("NextTheme(%s) = %q, want %s", tt.current, got, tt.want)
		}
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range themeOrder {
		if got := GetTheme(name); got.Name != name {
			t.Fatalf("GetTheme(%s).Name = %q", name, got.Name)
		}
	}

	unknown := GetTheme("Unknown")
	if unknown.Name != "Nightfox" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Nightfox (fallback)", unknown.Name)
	}
}

func TestRenderLogLine(t *testing.T) {
	styles := GetTheme("Slate").Styles()

	tests := []struct {
		name  string
		line  logs.Line
		width int
		want  string
	}{
		{"info", logs.Line{Level: logs.Info, Text: "hi"}, 0, "[Info]: hi"},
		{"warning", logs.Line{Level: logs.Warning, Text: "careful"}, 0, "[Warning]: careful"},
		{"error", logs.Line{Level: logs.Error, Text: "boom"}, 0, "[Error]: boom"},
		{"padded", logs.Line{Level: logs.Info, Text: "hi"}, 12, "[Info]: hi  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ansi.Strip(renderLogLine(tt.line, styles, tt.width))
			if got != tt.want {
				t.Fatalf("renderLogLine = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderLogLine_TruncatesLongMessages(t *testing.T) {
	styles := GetTheme("Slate").Styles()
	long := logs.Line{Level: logs.Info, Text: strings.Repeat("x", 200)}

	out := ansi.Strip(renderLogLine(long, styles, 10))
	flat := strings.Join(strings.Fields(out), "")
	if got := len([]rune(flat)); got > 10*maxWrappedRows {
		t.Fatalf("rendered %d cells of content, want at most %d", got, 10*maxWrappedRows)
	}
	if !strings.HasSuffix(flat, "…") {
		t.Fatalf("output %q should end with an ellipsis", flat)
	}
}
