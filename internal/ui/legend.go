package ui

import (
	"image/color"

	"paper-burn/internal/burn"
	"paper-burn/internal/core"
	"paper-burn/internal/render"
)

type legendEntry struct {
	label    string
	swatch   color.RGBA
	coverage float64
}

func zoneLegend(zones *core.ByteGrid) []legendEntry {
	if zones == nil {
		return nil
	}
	total := float64(len(zones.Cells()))
	out := make([]legendEntry, 0, len(render.ZonePalette))
	for i, col := range render.ZonePalette {
		entry := legendEntry{label: burn.Zone(i).String(), swatch: col}
		if total > 0 {
			entry.coverage = float64(zones.Count(uint8(i))) / total
		}
		out = append(out, entry)
	}
	return out
}
