package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD700")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	warnStyle   = cellStyle.Foreground(lipgloss.Color("#FF5F5F"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF8C1A"))
)

const remainderColumn = 6

func renderReport(results []result, dt float64) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#5F5F5F"))).
		Headers("size", "ticks", "first ember", "full void", "peak ember", "mean ember", "remainder", "front p50", "front max", "consumed at").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == remainderColumn && row >= 0 && row < len(results) && results[row].remainder > 0 {
				return warnStyle
			}
			return cellStyle
		})
	for _, r := range results {
		t.Row(reportRow(r)...)
	}
	title := titleStyle.Render(fmt.Sprintf("burn sweep, dt=%.4fs", dt))
	return lipgloss.JoinVertical(lipgloss.Left, title, t.String())
}

func reportRow(r result) []string {
	return []string{
		r.scenario.String(),
		strconv.Itoa(r.ticks),
		tickString(r.firstEmber),
		tickString(r.fullVoid),
		percent(r.peakEmber),
		percent(r.meanEmber),
		percent(r.remainder),
		strconv.FormatFloat(r.front.P50, 'f', 3, 64),
		strconv.FormatFloat(r.front.Max, 'f', 3, 64),
		strconv.FormatFloat(r.front.ConsumedAt, 'f', 3, 64),
	}
}

func tickString(t int) string {
	if t < 0 {
		return "never"
	}
	return strconv.Itoa(t)
}

func percent(v float64) string {
	return strconv.FormatFloat(v*100, 'f', 1, 64) + "%"
}
