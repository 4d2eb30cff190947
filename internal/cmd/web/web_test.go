package web

import (
	"flag"
	"io"
	"testing"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("ParseConfig() = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8086" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8086")
	}
	if cfg.AppName != "relief" {
		t.Fatalf("AppName = %q, want %q", cfg.AppName, "relief")
	}
	if cfg.Theme != "default" {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, "default")
	}
	if cfg.Debug || cfg.CDN {
		t.Fatalf("Debug/CDN = %v/%v, want false/false", cfg.Debug, cfg.CDN)
	}
}

func TestParseConfigEnvOverridesDefaults(t *testing.T) {
	t.Setenv("RELIEFGRID_WEB_HTTP_ADDR", "localhost:9090")
	t.Setenv("RELIEFGRID_WEB_DEBUG", "true")

	cfg, err := ParseConfig(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("ParseConfig() = %v", err)
	}
	if cfg.HTTPAddr != "localhost:9090" {
		t.Fatalf("HTTPAddr = %q, want env override", cfg.HTTPAddr)
	}
	if !cfg.Debug {
		t.Fatalf("Debug = false, want env override true")
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("RELIEFGRID_WEB_THEME", "coastal")

	cfg, err := ParseConfig(newFlagSet(), []string{"-theme", "inland", "-cdn"})
	if err != nil {
		t.Fatalf("ParseConfig() = %v", err)
	}
	if cfg.Theme != "inland" {
		t.Fatalf("Theme = %q, want flag override", cfg.Theme)
	}
	if !cfg.CDN {
		t.Fatalf("CDN = false, want flag override true")
	}
}

func TestParseConfigRejectsUnknownFlag(t *testing.T) {
	if _, err := ParseConfig(newFlagSet(), []string{"-nope"}); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}
