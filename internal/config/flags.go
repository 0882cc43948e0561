package config

import "flag"

// Flags holds command-line overrides.
type Flags struct {
	Config  string
	Debug   bool
	Workers int
	Lenient bool
	Output  string
}

// Register adds the config flags to fs.
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.Config, "config", "", "Path to config file (.yaml or .toml)")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.IntVar(&f.Workers, "workers", 0, "Faces processed in parallel (0 = config/GOMAXPROCS)")
	fs.BoolVar(&f.Lenient, "lenient", false, "Skip bad faces instead of aborting")
	fs.StringVar(&f.Output, "o", "", "Output file (default stdout)")
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Workers > 0 {
		cfg.UV.Workers = f.Workers
	}
	if f.Lenient {
		cfg.UV.Strict = false
	}
	if f.Output != "" {
		cfg.Output.Path = f.Output
	}
}
