package burn

import (
	"math"
	"strconv"

	"paper-burn/internal/core"
)

// Parameters reports the live tunables and zone coverage for the HUD.
func (c *Controller) Parameters() core.ParameterSnapshot {
	if c == nil || c.inst == nil {
		return core.ParameterSnapshot{}
	}
	params := c.cfg.Params
	u := c.Uniforms()
	f := c.inst.frame
	groups := []core.ParameterGroup{
		{
			Name: "Sheet",
			Params: []core.Parameter{
				intParam("w", "Width", c.cfg.Width),
				intParam("h", "Height", c.cfg.Height),
				int64Param("seed", "Seed", c.inst.seed),
			},
		},
		{
			Name: "Burn",
			Params: []core.Parameter{
				floatParam("progress", "Progress", u.Progress),
				floatParam("threshold", "Threshold", u.Threshold),
				floatParam("burn_rate", "Burn rate", params.BurnRate),
				floatParam("max_progress", "Max progress", params.MaxProgress),
				floatParam("front_offset", "Front offset", params.FrontOffset),
			},
		},
		{
			Name: "Front",
			Params: []core.Parameter{
				floatParam("noise_strength", "Noise strength", params.NoiseStrength),
				floatParam("noise_scale", "Noise scale", params.NoiseScale),
				floatParam("curl_max", "Curl", params.CurlMax),
			},
		},
		{
			Name: "Zones",
			Params: []core.Parameter{
				floatParam("intact", "Intact", f.Coverage(ZoneIntact)),
				floatParam("char", "Char", f.Coverage(ZoneChar)),
				floatParam("ember", "Ember", f.Coverage(ZoneEmber)),
				floatParam("void", "Void", f.Coverage(ZoneVoid)),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables the HUD may adjust.
func (c *Controller) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "burn_rate", Label: "Burn rate", Step: 0.05, Min: 0.05, Max: 2, HasMin: true, HasMax: true},
		{Key: "noise_strength", Label: "Noise strength", Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "noise_scale", Label: "Noise scale", Step: 1, Min: 1, Max: 32, HasMin: true, HasMax: true},
		{Key: "front_offset", Label: "Front offset", Step: 0.05, Min: -0.5, Max: 1, HasMin: true, HasMax: true},
		{Key: "curl_max", Label: "Curl", Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a tunable and re-shades the current frame at the
// same progress. Only keys listed by ParameterControls are accepted, and the
// value is clamped to that control's range. It reports false for any other
// key, for non-finite values and for values that would make the params invalid.
// Progress is never moved; only Restart resets it.
func (c *Controller) SetFloatParameter(key string, value float64) bool {
	if c == nil || c.inst == nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	listed := false
	for _, ctrl := range c.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		listed = true
		if ctrl.HasMin && value < ctrl.Min {
			value = ctrl.Min
		}
		if ctrl.HasMax && value > ctrl.Max {
			value = ctrl.Max
		}
	}
	if !listed {
		return false
	}
	next := c.cfg.Params
	ptr := next.floatField(key)
	if ptr == nil {
		return false
	}
	*ptr = value
	if err := next.Validate(); err != nil {
		return false
	}
	inst := c.inst
	if next.MaxProgress < inst.driver.Progress() {
		return false
	}

	shader := NewShader(next, inst.surface)
	if err := inst.frame.evaluate(shader, inst.driver.Progress(), c.cfg.Workers); err != nil {
		c.log.Error().Err(err).Str("key", key).Msg("re-shade failed")
		return false
	}
	c.cfg.Params = next
	inst.shader = shader
	inst.driver.retune(next.BurnRate, next.MaxProgress)
	c.log.Debug().Str("key", key).Float64("value", value).Msg("parameter updated")
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
