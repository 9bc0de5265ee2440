package printer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/harness/github-deploy/internal/style"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/pterm/pterm"
)

// renderStyledTable renders a table using lipgloss/table with the project's colour theme.
func renderStyledTable(headers []string, rows [][]string) string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(style.Cyan).
		Padding(0, 1)

	cellStyle := lipgloss.NewStyle().
		Foreground(style.White).
		Padding(0, 1)

	dimCellStyle := lipgloss.NewStyle().
		Foreground(style.Dim).
		Padding(0, 1)

	t := lgtable.New().
		Headers(headers...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(style.Subtle)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			if row%2 == 0 {
				return cellStyle
			}
			return dimCellStyle
		})

	for _, r := range rows {
		t = t.Row(r...)
	}

	return t.Render()
}

// renderPtermTable renders a plain boxed table for non-TTY / no-color output.
func renderPtermTable(headers []string, rows [][]string) (string, error) {
	data := pterm.TableData{headers}
	for _, r := range rows {
		data = append(data, r)
	}
	return pterm.DefaultTable.
		WithHasHeader().
		WithBoxed(true).
		WithData(data).
		Srender()
}

// PrintTable writes rows under headers to w. Nothing is written for no rows.
func PrintTable(w io.Writer, headers []string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}

	if style.Enabled {
		_, err := fmt.Fprintln(w, renderStyledTable(headers, rows))
		return err
	}

	out, err := renderPtermTable(headers, rows)
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// PrintJson writes res to w as indented JSON.
func PrintJson(w io.Writer, res any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("failed to marshal data to JSON: %w", err)
	}
	return nil
}
