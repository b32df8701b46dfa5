// Package config loads process configuration from the environment and
// command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable read by the portfolio binaries.
const EnvPrefix = "PORTFOLIO_"

// ParseEnv loads configuration from PORTFOLIO_-prefixed environment variables.
//
// Struct tags name the unprefixed key, e.g. `env:"HTTP_ADDR"` reads
// PORTFOLIO_HTTP_ADDR.
func ParseEnv(target any) error {
	if target == nil {
		return errors.New("config target is required")
	}
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseArgs parses command-line flags.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// ParseEnvAndArgs loads env values into cfg, registers flags with bind, and
// then applies explicit flags.
//
// bind runs after the environment is read, so flags registered against cfg
// fields default to the env values and only flags present in args override
// them.
func ParseEnvAndArgs(cfg any, fs *flag.FlagSet, args []string, bind func(*flag.FlagSet)) error {
	if err := ParseEnv(cfg); err != nil {
		return err
	}
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if bind != nil {
		bind(fs)
	}
	return ParseArgs(fs, args)
}
