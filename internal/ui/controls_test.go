package ui

import (
	"image"
	"testing"

	"paper-burn/internal/core"
)

type recordingSetter struct {
	key    string
	value  float64
	accept bool
}

func (r *recordingSetter) SetFloatParameter(key string, value float64) bool {
	r.key, r.value = key, value
	return r.accept
}

func testSnapshot() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Burn", Params: []core.Parameter{
			{Key: "progress", Label: "Progress", Type: core.ParamTypeFloat, Value: "1.23456"},
			{Key: "burn_rate", Label: "Burn rate", Type: core.ParamTypeFloat, Value: "0.3"},
		}},
		{Name: "Sheet", Params: []core.Parameter{
			{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: "1942"},
		}},
		{Name: "Zones", Params: []core.Parameter{
			{Key: "intact", Label: "Intact", Type: core.ParamTypeFloat, Value: "0.5"},
			{Key: "void", Label: "Void", Type: core.ParamTypeFloat, Value: "0.25"},
		}},
	}}
}

func TestRefreshAndAdjust(t *testing.T) {
	states := newControlStates([]core.ParameterControl{
		{Key: "burn_rate", Label: "Burn rate", Step: 0.05, Min: 0.05, Max: 0.33, HasMin: true, HasMax: true},
		{Key: "missing", Label: "Missing", Step: 1},
	})
	refreshControlValues(states, testSnapshot())
	if !states[0].hasValue || states[0].value != "0.30" {
		t.Fatalf("burn_rate state %+v", states[0])
	}
	if states[1].hasValue || states[1].value != "--" {
		t.Fatalf("missing state %+v", states[1])
	}

	setter := &recordingSetter{accept: true}
	if !applyAdjustment(setter, &states[0], 1) {
		t.Fatal("increment rejected")
	}
	if setter.key != "burn_rate" || setter.value != 0.33 {
		t.Fatalf("setter got %s=%v", setter.key, setter.value)
	}
	if applyAdjustment(setter, &states[0], 1) {
		t.Fatal("increment past max should be a no-op")
	}
	if applyAdjustment(setter, &states[1], 1) {
		t.Fatal("control without a value adjusted")
	}

	setter.accept = false
	if applyAdjustment(setter, &states[0], -1) {
		t.Fatal("rejected set reported success")
	}
	if states[0].floatValue != 0.33 {
		t.Fatalf("rejected set changed state to %v", states[0].floatValue)
	}
}

func TestLayoutControls(t *testing.T) {
	states := newControlStates(make([]core.ParameterControl, 3))
	bottom := layoutControls(states, 240)
	if bottom != controlsTop+3*lineHeight {
		t.Fatalf("bottom %d", bottom)
	}
	for i, s := range states {
		if s.plusRect.Max.X != 240-panelPadding {
			t.Fatalf("control %d plus button at %v", i, s.plusRect)
		}
		if s.minusRect.Max.X > s.plusRect.Min.X {
			t.Fatalf("control %d buttons overlap", i)
		}
	}
	if !pointInRect(5, 5, image.Rect(0, 0, 10, 10)) || pointInRect(10, 5, image.Rect(0, 0, 10, 10)) {
		t.Fatal("pointInRect bounds wrong")
	}
	r := igniteRect(bottom, 240)
	if r.Dy() != igniteHeight || r.Min.Y <= bottom {
		t.Fatalf("ignite button %v", r)
	}
}

func TestStatusLines(t *testing.T) {
	lines := statusLines(testSnapshot())
	want := []string{"progress 1.23", "seed 1942", "intact 50% void 25%"}
	if len(lines) != len(want) {
		t.Fatalf("lines %q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestFormatFloatPrecision(t *testing.T) {
	cases := []struct {
		step float64
		want string
	}{
		{1, "0.1"},
		{0.05, "0.12"},
		{0.005, "0.123"},
		{0.0001, "0.1235"},
	}
	for _, tc := range cases {
		if got := formatFloat(core.ParameterControl{Step: tc.step}, 0.12345); got != tc.want {
			t.Fatalf("step %v: got %q, want %q", tc.step, got, tc.want)
		}
	}
	if buildTitle("paper") != "Paper Controls" || buildTitle("") != "Controls" {
		t.Fatal("unexpected title")
	}
}
