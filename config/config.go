// Package config loads the YAML configuration for the example cmd/
// binaries, generalized from the teacher's src/config.go (which parses a
// Dire Wolf .conf text format into a C config_t) into a small typed YAML
// document, with flag overrides layered on via pflag the way the
// teacher's cmd/ binaries take command-line arguments.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config is the configuration for cmd/aprs-is-tap: which APRS-IS style
// server to connect to and how to log in.
type Config struct {
	Server   string `yaml:"server"`
	Callsign string `yaml:"callsign"`
	Passcode int    `yaml:"passcode"`
	Filter   string `yaml:"filter"`
}

// Load reads and parses a YAML config file at path.
func Load(path string) (Config, error) {
	var c Config

	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("aprs: config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("aprs: config: parsing %s: %w", path, err)
	}

	return c, nil
}

// Flags registers the override flags cmd/aprs-is-tap accepts on top of
// (or instead of) a config file, in the teacher's style of exposing every
// config_t field as a flag on its cmd/ binaries.
func Flags(fs *pflag.FlagSet, c *Config) {
	fs.StringVar(&c.Server, "server", c.Server, "APRS-IS server host:port")
	fs.StringVar(&c.Callsign, "callsign", c.Callsign, "login callsign, with optional -SSID")
	fs.IntVar(&c.Passcode, "passcode", c.Passcode, "APRS-IS login passcode")
	fs.StringVar(&c.Filter, "filter", c.Filter, "server-side filter string")
}
