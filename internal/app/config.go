package app

import (
	"flag"
	"fmt"
	"strings"

	"paper-burn/internal/burn"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map splits the entries into a map. Later entries win.
func (l KVList) Map() (map[string]string, error) {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("override %q is not key=value", kv)
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}

// Config represents the command-line parameters for the application.
type Config struct {
	ConfigPath string
	TPS        int
	Seed       int64
	HUDWidth   int
	LogLevel   string
	Pretty     bool
	Overrides  KVList

	seedSet bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{TPS: 60, Seed: burn.DefaultConfig().Seed, HUDWidth: 240, LogLevel: "info", Pretty: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.BindBurn(fs)
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.BoolVar(&c.Pretty, "pretty", c.Pretty, "human-readable console logs")
}

// BindBurn attaches only the flags shared by every host.
func (c *Config) BindBurn(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML burn config file")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Func("seed", fmt.Sprintf("texture seed (default %d)", c.Seed), func(v string) error {
		var seed int64
		if _, err := fmt.Sscan(v, &seed); err != nil {
			return fmt.Errorf("invalid seed %q", v)
		}
		c.Seed = seed
		c.seedSet = true
		return nil
	})
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: trace, debug, info, warn, error")
	fs.Var(&c.Overrides, "set", "burn parameter override in key=value form (repeatable)")
}

// BurnConfig resolves the burn configuration: defaults, then the YAML file,
// then -set overrides, then an explicit -seed.
func (c *Config) BurnConfig() (burn.Config, error) {
	cfg := burn.DefaultConfig()
	if c.ConfigPath != "" {
		loaded, err := burn.LoadConfig(c.ConfigPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	overrides, err := c.Overrides.Map()
	if err != nil {
		return cfg, err
	}
	burn.ApplyMap(&cfg, overrides)
	if c.seedSet {
		cfg.Seed = c.Seed
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// DeltaSeconds is the fixed tick length for the configured rate.
func (c *Config) DeltaSeconds() float64 {
	if c.TPS <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(c.TPS)
}
