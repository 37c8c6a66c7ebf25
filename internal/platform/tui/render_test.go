package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridshift/internal/core"
)

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextColor(0, 0, "▓▓▓", core.ColorCyan)
	s.DrawText(4, 0, "@")
	s.DrawTextColor(0, 2, "GRIDSHIFT", core.ColorBrightCyan)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, expected 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 12 {
			t.Errorf("line %d is %d cells wide, expected 12", i, w)
		}
	}
	if !strings.Contains(out, "GRIDSHIFT") {
		t.Error("styled output lost the text")
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	colors := []core.Color{
		core.ColorDefault, core.ColorRed, core.ColorGreen, core.ColorYellow,
		core.ColorBlue, core.ColorMagenta, core.ColorCyan, core.ColorWhite,
		core.ColorBrightRed, core.ColorBrightMagenta, core.ColorBrightCyan,
		core.ColorBrightWhite, core.ColorOrange, core.ColorGray, core.ColorDim,
		core.ColorViolet,
	}
	for _, c := range colors {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}
