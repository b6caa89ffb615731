package burn

import (
	"fmt"

	"paper-burn/internal/core"
	"paper-burn/internal/texture"

	"github.com/rs/zerolog"
)

// Uniforms is a read-only copy of the values driving the current frame.
type Uniforms struct {
	Progress    float64
	MaxProgress float64
	Threshold   float64
	Done        bool
	Seed        int64
	Params      Params
}

// instance is everything a restart replaces.
type instance struct {
	seed    int64
	base    *texture.Texture
	surface *texture.Texture
	shader  *Shader
	driver  *Driver
	frame   *Frame
	settled bool
}

// Controller owns one burning sheet: its texture, progress and frame.
// It is not safe for concurrent use; the host calls it from one loop.
type Controller struct {
	cfg  Config
	log  zerolog.Logger
	inst *instance
}

// New synthesizes the base texture and evaluates the first frame at
// progress 0. A texture failure is fatal; there is no fallback sheet.
func New(cfg Config, log zerolog.Logger) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{cfg: cfg, log: log.With().Str("component", "burn").Logger()}
	if !cfg.Params.FullyConsumes() {
		c.log.Warn().
			Float64("ceiling_threshold", cfg.Params.MaxProgress*cfg.Params.FrontSpeed-cfg.Params.FrontOffset).
			Float64("max_front", cfg.Params.MaxFront()).
			Msg("ceiling leaves surface partly intact")
	}
	inst, err := c.build(cfg.Seed, nil)
	if err != nil {
		return nil, err
	}
	c.inst = inst
	c.log.Info().
		Int64("seed", cfg.Seed).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Int("workers", cfg.Workers).
		Msg("sheet created")
	return c, nil
}

func (c *Controller) build(seed int64, reuse *texture.Texture) (*instance, error) {
	base := reuse
	if base == nil {
		var err error
		base, err = texture.Synthesize(c.cfg.Texture, seed)
		if err != nil {
			return nil, fmt.Errorf("burn: synthesize texture: %w", err)
		}
	}
	surface, err := base.Resample(c.cfg.Width, c.cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("burn: resample texture: %w", err)
	}
	inst := &instance{
		seed:    seed,
		base:    base,
		surface: surface,
		shader:  NewShader(c.cfg.Params, surface),
		driver:  NewDriver(c.cfg.Params.BurnRate, c.cfg.Params.MaxProgress),
		frame:   newFrame(c.cfg.Width, c.cfg.Height, c.cfg.Segments),
	}
	if err := inst.frame.evaluate(inst.shader, 0, c.cfg.Workers); err != nil {
		return nil, err
	}
	return inst, nil
}

// Tick advances progress by dt and re-evaluates the frame. Calling Tick on a
// nil controller is a no-op so hosts can tick before construction finishes.
func (c *Controller) Tick(dt float64) {
	if c == nil || c.inst == nil {
		return
	}
	inst := c.inst
	inst.driver.Advance(dt)
	progress := inst.driver.Progress()
	if err := inst.frame.evaluate(inst.shader, progress, c.cfg.Workers); err != nil {
		c.log.Error().Err(err).Float64("progress", progress).Msg("frame evaluation failed")
		return
	}
	if inst.driver.Done() && !inst.settled {
		inst.settled = true
		c.log.Debug().
			Float64("progress", progress).
			Float64("void", inst.frame.Coverage(ZoneVoid)).
			Msg("burn reached ceiling")
	}
}

// Restart replaces the whole instance with a fresh one at progress 0. The
// texture is reused when seed matches the current one; otherwise a new one
// is synthesized first and the old instance is kept if that fails.
func (c *Controller) Restart(seed int64) error {
	if c == nil {
		return nil
	}
	var reuse *texture.Texture
	if c.inst != nil && c.inst.seed == seed {
		reuse = c.inst.base
	}
	inst, err := c.build(seed, reuse)
	if err != nil {
		c.log.Error().Err(err).Int64("seed", seed).Msg("restart failed")
		return err
	}
	c.inst = inst
	c.log.Info().Int64("seed", seed).Bool("texture_reused", reuse != nil).Msg("sheet reignited")
	return nil
}

// Name returns the surface identifier.
func (c *Controller) Name() string { return "paper" }

// The accessors below return zero values on a nil or unbuilt controller,
// matching Tick and Restart.

// Size reports the frame dimensions.
func (c *Controller) Size() core.Size {
	if c == nil {
		return core.Size{}
	}
	return core.Size{W: c.cfg.Width, H: c.cfg.Height}
}

// Seed reports the seed of the current instance.
func (c *Controller) Seed() int64 {
	if c == nil || c.inst == nil {
		return 0
	}
	return c.inst.seed
}

// Config returns a copy of the active configuration.
func (c *Controller) Config() Config {
	if c == nil {
		return Config{}
	}
	return c.cfg
}

// Frame exposes the current frame. It is overwritten by the next Tick.
func (c *Controller) Frame() *Frame {
	if c == nil || c.inst == nil {
		return nil
	}
	return c.inst.frame
}

// Pixels returns the RGBA buffer of the current frame.
func (c *Controller) Pixels() []byte {
	if f := c.Frame(); f != nil {
		return f.Pixels
	}
	return nil
}

// Offsets returns the per-vertex z offsets of the current frame.
func (c *Controller) Offsets() []float64 {
	if f := c.Frame(); f != nil {
		return f.Offsets
	}
	return nil
}

// MeshSegments reports the mesh resolution per side.
func (c *Controller) MeshSegments() int {
	if c == nil {
		return 0
	}
	return c.cfg.Segments
}

// Zones returns the zone classification of the current frame.
func (c *Controller) Zones() *core.ByteGrid {
	if f := c.Frame(); f != nil {
		return f.Zones
	}
	return nil
}

// Texture returns the full-resolution base texture.
func (c *Controller) Texture() *texture.Texture {
	if c == nil || c.inst == nil {
		return nil
	}
	return c.inst.base
}

// Progress reports the current burn progress.
func (c *Controller) Progress() float64 {
	if c == nil || c.inst == nil {
		return 0
	}
	return c.inst.driver.Progress()
}

// Shader exposes the shader of the current instance.
func (c *Controller) Shader() *Shader {
	if c == nil || c.inst == nil {
		return nil
	}
	return c.inst.shader
}

// Uniforms returns a copy of the values driving the current frame.
func (c *Controller) Uniforms() Uniforms {
	if c == nil || c.inst == nil {
		return Uniforms{}
	}
	d := c.inst.driver
	return Uniforms{
		Progress:    d.Progress(),
		MaxProgress: d.Max(),
		Threshold:   c.inst.shader.Threshold(d.Progress()),
		Done:        d.Done(),
		Seed:        c.inst.seed,
		Params:      c.cfg.Params,
	}
}

var _ core.Surface = (*Controller)(nil)
