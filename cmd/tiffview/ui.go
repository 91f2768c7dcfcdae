package main

import (
	"fmt"

	"tiffview/internal/catalog"
	"tiffview/internal/errors"
	"tiffview/internal/tiff"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4F4FB7")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#959595"))
)

// renderSummary formats one row per load result followed by a count line.
// When headers is non-nil an ENCODING column shows each file's compression
// and photometric interpretation.
func renderSummary(results []catalog.Result, headers map[string]tiff.Header) string {
	cols := []string{"FILE", "SIZE"}
	if headers != nil {
		cols = append(cols, "ENCODING")
	}
	cols = append(cols, "RAW MIN/MAX", "WINDOW", "STATUS")
	statusCol := len(cols) - 1

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))).
		Headers(cols...)

	loaded := 0
	failed := map[int]bool{}
	for i, r := range results {
		row := []string{r.Path, "-"}
		if headers != nil {
			enc := "-"
			if h, ok := headers[r.Path]; ok {
				enc = h.Encoding()
			}
			row = append(row, enc)
		}

		if !r.OK() {
			failed[i] = true
			t.Row(append(row, "-", "-", errors.KindOf(r.Err).String())...)
			continue
		}
		loaded++
		row[1] = fmt.Sprintf("%dx%d", r.Width, r.Height)
		t.Row(append(row,
			fmt.Sprintf("%d / %d", r.Raw.Min, r.Raw.Max),
			fmt.Sprintf("%.4f - %.4f", r.Bounds.Min, r.Bounds.Max),
			"ok",
		)...)
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return headerStyle
		case failed[row] && col == statusCol:
			return errorStyle
		}
		return cellStyle
	})

	footer := footerStyle.Render(fmt.Sprintf("%d of %d images loaded", loaded, len(results)))
	return lipgloss.JoinVertical(lipgloss.Left, t.Render(), footer)
}
