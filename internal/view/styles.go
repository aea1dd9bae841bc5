package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	humanize "github.com/dustin/go-humanize"
)

var (
	unselectedFg = lipgloss.AdaptiveColor{Light: "#9DB6CF", Dark: "#3B5F80"}
	selectedFg   = lipgloss.Color("#FFA500")
	brushFg      = lipgloss.Color("#7C3AED")
	axisFg       = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#4B5563"}
	labelFg      = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}

	layerStyles = [numLayers]lipgloss.Style{
		axisLayer:      lipgloss.NewStyle().Foreground(axisFg),
		baseLayer:      lipgloss.NewStyle().Foreground(unselectedFg),
		highlightLayer: lipgloss.NewStyle().Foreground(selectedFg).Bold(true),
		brushLayer:     lipgloss.NewStyle().Foreground(brushFg),
	}

	labelStyle = lipgloss.NewStyle().Foreground(labelFg)
	titleStyle = lipgloss.NewStyle().Foreground(brushFg).Bold(true)
)

// Number formats an axis value compactly, e.g. 13.3M or 7.4k.
func Number(v float64) string {
	return strings.ReplaceAll(humanize.SIWithDigits(v, 1, ""), " ", "")
}

// place writes text into row centred on col, clipped to the row.
func place(row []rune, col int, text string) {
	t := []rune(text)
	start := col - len(t)/2
	if start+len(t) > len(row) {
		start = len(row) - len(t)
	}
	if start < 0 {
		start = 0
	}
	for i, r := range t {
		if start+i >= len(row) {
			break
		}
		row[start+i] = r
	}
}

func blank(n int) []rune {
	return []rune(strings.Repeat(" ", max(0, n)))
}
