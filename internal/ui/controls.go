package ui

import (
	"image"
	"math"
	"strconv"
	"strings"

	"paper-burn/internal/core"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

type controlState struct {
	control core.ParameterControl
	value   string

	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 18
	controlsTop    = panelPadding + headerBaseline + 14
	igniteHeight   = 28
)

func newControlStates(controls []core.ParameterControl) []controlState {
	out := make([]controlState, len(controls))
	for i, ctrl := range controls {
		out[i] = controlState{control: ctrl, value: "--"}
	}
	return out
}

// layoutControls stacks one row per control and returns the y below the last.
func layoutControls(states []controlState, width int) int {
	for i := range states {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		states[i].top = top
		states[i].minusRect = minusRect
		states[i].plusRect = plusRect
	}
	return controlsTop + len(states)*lineHeight
}

func igniteRect(top, width int) image.Rectangle {
	return image.Rect(panelPadding, top+panelPadding, width-panelPadding, top+panelPadding+igniteHeight)
}

func refreshControlValues(states []controlState, snap core.ParameterSnapshot) {
	for i := range states {
		state := &states[i]
		param, ok := snap.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.floatValue = parsed
		state.value = formatFloat(state.control, parsed)
		state.hasValue = true
	}
}

// nextValue returns the value one step in direction, clamped to bounds, and
// whether it differs from the current one.
func nextValue(state *controlState, direction int) (float64, bool) {
	if state == nil || direction == 0 || !state.hasValue {
		return 0, false
	}
	step := state.control.Step
	if step <= 0 {
		step = 0.05
	}
	target := state.floatValue + float64(direction)*step
	if state.control.HasMin && target < state.control.Min {
		target = state.control.Min
	}
	if state.control.HasMax && target > state.control.Max {
		target = state.control.Max
	}
	if math.Abs(target-state.floatValue) < 1e-9 {
		return target, false
	}
	return target, true
}

func applyAdjustment(setter core.FloatParameterSetter, state *controlState, direction int) bool {
	if setter == nil {
		return false
	}
	target, ok := nextValue(state, direction)
	if !ok {
		return false
	}
	if !setter.SetFloatParameter(state.control.Key, target) {
		return false
	}
	state.floatValue = target
	state.value = formatFloat(state.control, target)
	return true
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 2
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	default:
		precision = 1
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// statusLines summarises progress and zone coverage from a snapshot.
func statusLines(snap core.ParameterSnapshot) []string {
	var lines []string
	if p, ok := snap.Lookup("progress"); ok {
		lines = append(lines, "progress "+trimFloat(p.Value, 2))
	}
	if p, ok := snap.Lookup("seed"); ok {
		lines = append(lines, "seed "+p.Value)
	}
	for _, g := range snap.Groups {
		if g.Name != "Zones" {
			continue
		}
		parts := make([]string, 0, len(g.Params))
		for _, p := range g.Params {
			v, err := strconv.ParseFloat(p.Value, 64)
			if err != nil {
				continue
			}
			parts = append(parts, strings.ToLower(p.Label)+" "+strconv.Itoa(int(math.Round(v*100)))+"%")
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return lines
}

func trimFloat(s string, precision int) string {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

func buildTitle(name string) string {
	if name == "" {
		return "Controls"
	}
	return strings.ToUpper(name[:1]) + name[1:] + " Controls"
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
