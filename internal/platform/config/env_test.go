package config

import (
	"flag"
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int    `env:"TEST_PORT" envDefault:"123"`
	Mode string `env:"TEST_MODE" envDefault:"serve"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvReadsPrefixedKeys(t *testing.T) {
	t.Setenv("PORTFOLIO_TEST_PORT", "9090")
	t.Setenv("TEST_PORT", "1")

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 9090 {
		t.Fatalf("port = %d, want 9090", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("PORTFOLIO_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvRejectsNilTarget(t *testing.T) {
	if err := ParseEnv(nil); err == nil {
		t.Fatal("expected nil target error")
	}
}

func TestParseEnvAndArgsFlagsOverrideEnv(t *testing.T) {
	t.Setenv("PORTFOLIO_TEST_PORT", "7000")
	t.Setenv("PORTFOLIO_TEST_MODE", "env-mode")

	var cfg envTestConfig
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	bind := func(fs *flag.FlagSet) {
		fs.IntVar(&cfg.Port, "port", cfg.Port, "port")
		fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "mode")
	}

	if err := ParseEnvAndArgs(&cfg, fs, []string{"-port", "7001"}, bind); err != nil {
		t.Fatalf("parse env and args: %v", err)
	}
	if cfg.Port != 7001 {
		t.Fatalf("port = %d, want 7001", cfg.Port)
	}
	if cfg.Mode != "env-mode" {
		t.Fatalf("mode = %q, want %q", cfg.Mode, "env-mode")
	}
	if got := fs.Lookup("mode").DefValue; got != "env-mode" {
		t.Fatalf("mode flag default = %q, want env value", got)
	}
}

func TestParseEnvAndArgsRejectsNilParser(t *testing.T) {
	var cfg envTestConfig
	if err := ParseEnvAndArgs(&cfg, nil, nil, nil); err == nil {
		t.Fatal("expected nil parser error")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, nil); err == nil {
		t.Fatal("expected nil parser error")
	}
}
