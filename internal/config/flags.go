package config

import "flag"

// Flags are the command-line overrides shared by every subcommand.
type Flags struct {
	Config    string
	Debug     bool
	LogFile   string
	Namespace string
}

// Bind registers the flags on fs.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.Config, "config", "", "Path to config file (.yaml or .toml)")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.LogFile, "log", "", "Also write logs to this file")
	fs.StringVar(&f.Namespace, "namespace", "", "Target namespace (overrides the pack's info.namespace)")
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.LogFile != "" {
		cfg.Logging.LogFile = f.LogFile
	}
	if f.Namespace != "" {
		cfg.Convert.Namespace = f.Namespace
	}
}
