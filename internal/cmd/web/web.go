// Package web wires configuration and startup for the web command.
package web

import (
	"context"
	"flag"
	"fmt"

	"github.com/reliefgrid/platform/internal/platform/config"
	"github.com/reliefgrid/platform/internal/services/web"
)

// Config holds the web command configuration. Environment variables
// provide defaults; flags override.
type Config struct {
	HTTPAddr    string `env:"RELIEFGRID_WEB_HTTP_ADDR" envDefault:"localhost:8086"`
	AppName     string `env:"RELIEFGRID_WEB_APP_NAME" envDefault:"relief"`
	Root        string `env:"RELIEFGRID_WEB_ROOT" envDefault:"."`
	Theme       string `env:"RELIEFGRID_WEB_THEME" envDefault:"default"`
	MapKitTheme string `env:"RELIEFGRID_WEB_MAPKIT_THEME"`
	Debug       bool   `env:"RELIEFGRID_WEB_DEBUG"`
	CDN         bool   `env:"RELIEFGRID_WEB_CDN"`
}

// ParseConfig parses environment defaults and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse web config: %w", err)
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.AppName, "app-name", cfg.AppName, "application URL prefix")
	fs.StringVar(&cfg.Root, "root", cfg.Root, "application root directory")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "active theme configuration")
	fs.StringVar(&cfg.MapKitTheme, "mapkit-theme", cfg.MapKitTheme, "map-kit theme stylesheet under static/themes")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "serve unminified assets")
	fs.BoolVar(&cfg.CDN, "cdn", cfg.CDN, "load third-party assets from CDNs")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the web server with the parsed configuration.
func Run(ctx context.Context, cfg Config) error {
	server, err := web.NewServer(web.Config{
		HTTPAddr:    cfg.HTTPAddr,
		AppName:     cfg.AppName,
		Root:        cfg.Root,
		Theme:       cfg.Theme,
		MapKitTheme: cfg.MapKitTheme,
		Debug:       cfg.Debug,
		CDN:         cfg.CDN,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
