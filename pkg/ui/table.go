package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/plankworks/cabd/pkg/model"
)

// RenderCutlist renders the grouped cutlist as a fixed-column table that fits
// in width characters. Rows that fail the sheet-fit check are flagged.
func RenderCutlist(panels []model.CutlistPanel, width int) string {
	if width < 30 {
		width = 30
	}

	// Fixed-width numeric columns; the name column takes the rest.
	const numCols = "%6.0f %6.0f %4.0f %3d  %-4s"
	nameW := width - runewidth.StringWidth(fmt.Sprintf(numCols, 0.0, 0.0, 0.0, 0, "")) - 1
	if nameW < 8 {
		nameW = 8
	}

	var b strings.Builder
	header := fmt.Sprintf("%s %6s %6s %4s %3s  %-4s",
		padName("Panel", nameW), "W", "H", "T", "Qty", "Fits")
	b.WriteString(TitleStyle.Render(header))
	b.WriteByte('\n')
	b.WriteString(RenderDivider(width))

	for _, p := range panels {
		fits := "yes"
		style := lipgloss.NewStyle().Foreground(ColorText)
		if !p.FitsInSheet {
			fits = "NO"
			style = lipgloss.NewStyle().Foreground(ColorDanger)
		}
		row := fmt.Sprintf("%s "+numCols,
			padName(p.Name, nameW), p.WidthMm, p.HeightMm, p.ThicknessMm, p.Quantity, fits)
		b.WriteByte('\n')
		b.WriteString(style.Render(row))
	}
	return b.String()
}

func padName(s string, w int) string {
	s = truncate.StringWithTail(s, uint(w), "…")
	return s + strings.Repeat(" ", w-runewidth.StringWidth(s))
}
