package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// config is the optional per-project settings file, .chef.toml, consulted
// for CLI defaults only; it never changes language semantics. Absent or
// unreadable config is not an error — the zero value's defaults apply.
type config struct {
	Format  string `toml:"format"`  // default AST dump format for "chef parse": json or yaml
	Verbose bool   `toml:"verbose"` // echo each executed instruction's line number to stderr
}

func loadConfig(path string) config {
	var cfg config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return config{}
	}
	return cfg
}

func defaultConfigPath() string {
	return ".chef.toml"
}
