package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	TPS  int
	Seed int64
	Mode string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{TPS: 10, Seed: 42, Mode: "upper"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random grid fills")
	fs.StringVar(&c.Mode, "mode", c.Mode, "mouse paint mode: upper, lower or full")
}
