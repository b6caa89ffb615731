package burn

import (
	"errors"
	"fmt"
	"math"
	"os"
	"runtime"
	"strconv"

	"paper-burn/internal/noise"
	"paper-burn/internal/texture"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("burn: invalid config")

// Params holds the tunables of the burn simulation.
type Params struct {
	BurnRate    float64 `yaml:"burnRate"`
	MaxProgress float64 `yaml:"maxProgress"`

	FrontSpeed    float64    `yaml:"frontSpeed"`
	FrontOffset   float64    `yaml:"frontOffset"`
	NoiseStrength float64    `yaml:"noiseStrength"`
	NoiseScale    float64    `yaml:"noiseScale"`
	Ignition      [2]float64 `yaml:"ignition"`

	EmberBand float64 `yaml:"emberBand"`
	CharBand  float64 `yaml:"charBand"`

	BurnColor [3]float64 `yaml:"burnColor"`
	HotColor  [3]float64 `yaml:"hotColor"`
	AshColor  [3]float64 `yaml:"ashColor"`

	PulseBase      float64 `yaml:"pulseBase"`
	PulseAmplitude float64 `yaml:"pulseAmplitude"`
	PulseRate      float64 `yaml:"pulseRate"`
	PulseSpread    float64 `yaml:"pulseSpread"`
	EmberGain      float64 `yaml:"emberGain"`
	CharDarken     float64 `yaml:"charDarken"`

	CurlRamp      float64 `yaml:"curlRamp"`
	CurlMax       float64 `yaml:"curlMax"`
	WaveFrequency float64 `yaml:"waveFrequency"`
	WaveAmplitude float64 `yaml:"waveAmplitude"`
}

// Config controls one animation instance.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Segments is the mesh resolution per side used for vertex offsets.
	Segments int `yaml:"segments"`
	Workers  int `yaml:"workers"`

	Seed int64 `yaml:"seed"`

	Texture texture.Config `yaml:"texture"`
	Params  Params         `yaml:"params"`
}

// DefaultParams returns the stock burn tuning.
func DefaultParams() Params {
	return Params{
		BurnRate:    0.3,
		MaxProgress: 2.5,

		FrontSpeed:    1.0,
		FrontOffset:   0.2,
		NoiseStrength: 0.4,
		NoiseScale:    8,
		Ignition:      [2]float64{1, 0},

		EmberBand: 0.08,
		CharBand:  0.22,

		BurnColor: [3]float64{1.5, 0.5, 0.0},
		HotColor:  [3]float64{1.0, 1.0, 0.8},
		AshColor:  [3]float64{0, 0, 0},

		PulseBase:      0.8,
		PulseAmplitude: 0.2,
		PulseRate:      20,
		PulseSpread:    50,
		EmberGain:      2,
		CharDarken:     0.5,

		CurlRamp:      1.5,
		CurlMax:       0.2,
		WaveFrequency: 5,
		WaveAmplitude: 0.05,
	}
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	return Config{
		Width:    300,
		Height:   420,
		Segments: 64,
		Workers:  workers,
		Seed:     1942,
		Texture:  texture.DefaultConfig(),
		Params:   DefaultParams(),
	}
}

// Validate reports configuration values the simulation cannot run with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: frame size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Segments <= 0 || (c.Segments+1)*(c.Segments+1) > math.MaxUint16 {
		return fmt.Errorf("%w: segments %d", ErrInvalidConfig, c.Segments)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Workers)
	}
	return c.Params.Validate()
}

// Validate checks the burn tunables.
func (p Params) Validate() error {
	switch {
	case p.BurnRate <= 0:
		return fmt.Errorf("%w: burnRate %v must be positive", ErrInvalidConfig, p.BurnRate)
	case p.MaxProgress <= 0:
		return fmt.Errorf("%w: maxProgress %v must be positive", ErrInvalidConfig, p.MaxProgress)
	case p.FrontSpeed <= 0:
		return fmt.Errorf("%w: frontSpeed %v must be positive", ErrInvalidConfig, p.FrontSpeed)
	case p.EmberBand <= 0 || p.CharBand <= p.EmberBand:
		return fmt.Errorf("%w: zone bands must satisfy 0 < emberBand (%v) < charBand (%v)", ErrInvalidConfig, p.EmberBand, p.CharBand)
	case p.NoiseStrength < 0 || p.NoiseScale < 0:
		return fmt.Errorf("%w: noise strength and scale must be non-negative", ErrInvalidConfig)
	case p.CurlRamp <= 0:
		return fmt.Errorf("%w: curlRamp %v must be positive", ErrInvalidConfig, p.CurlRamp)
	}
	return nil
}

// IgnitionPoint returns the ignition corner as a surface coordinate.
func (p Params) IgnitionPoint() mgl64.Vec2 {
	return mgl64.Vec2{p.Ignition[0], p.Ignition[1]}
}

// MaxFront is the largest front value any point on the unit square can take.
func (p Params) MaxFront() float64 {
	far := 0.0
	for _, corner := range []mgl64.Vec2{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		far = math.Max(far, corner.Sub(p.IgnitionPoint()).Len())
	}
	return far + p.NoiseStrength*noise.FBMMax()
}

// FullyConsumes reports whether the threshold at MaxProgress passes every
// possible front value, leaving no intact slivers.
func (p Params) FullyConsumes() bool {
	return p.MaxProgress*p.FrontSpeed-p.FrontOffset > p.MaxFront()
}

// LoadConfig reads a YAML file on top of DefaultConfig and validates it.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read burn config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse burn config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	ApplyMap(&c, cfg)
	return c
}

// ApplyMap overlays key/value overrides onto c. Unknown keys and values that
// fail to parse are ignored.
func ApplyMap(c *Config, cfg map[string]string) {
	if c == nil || cfg == nil {
		return
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["segments"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Segments = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["texture_w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Texture.Width = parsed
		}
	}
	if v, ok := cfg["texture_h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Texture.Height = parsed
		}
	}
	if v, ok := cfg["stains"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Texture.StainCount = parsed
		}
	}
	if v, ok := cfg["grain"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Texture.Grain = parsed
		}
	}
	for key, v := range cfg {
		ptr := c.Params.floatField(key)
		if ptr == nil {
			continue
		}
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			*ptr = parsed
		}
	}
}

// floatField maps a snake_case parameter key onto its field.
func (p *Params) floatField(key string) *float64 {
	switch key {
	case "burn_rate":
		return &p.BurnRate
	case "max_progress":
		return &p.MaxProgress
	case "front_speed":
		return &p.FrontSpeed
	case "front_offset":
		return &p.FrontOffset
	case "noise_strength":
		return &p.NoiseStrength
	case "noise_scale":
		return &p.NoiseScale
	case "ember_band":
		return &p.EmberBand
	case "char_band":
		return &p.CharBand
	case "pulse_rate":
		return &p.PulseRate
	case "ember_gain":
		return &p.EmberGain
	case "curl_ramp":
		return &p.CurlRamp
	case "curl_max":
		return &p.CurlMax
	case "wave_frequency":
		return &p.WaveFrequency
	case "wave_amplitude":
		return &p.WaveAmplitude
	}
	return nil
}
