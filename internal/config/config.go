package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port              int    `envconfig:"PORT" default:"8080"`
	AllowedOrigins    string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	LogLevel          string `envconfig:"LOG_LEVEL" default:"info"`
	PreviewWidth      int    `envconfig:"PREVIEW_WIDTH" default:"1280"`
	PreviewHeight     int    `envconfig:"PREVIEW_HEIGHT" default:"800"`
	PreviewBackground string `envconfig:"PREVIEW_BACKGROUND" default:"#ffffff"`
	SampleCanvas      bool   `envconfig:"SAMPLE_CANVAS" default:"true"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.PreviewWidth <= 0 || cfg.PreviewHeight <= 0 {
		return nil, fmt.Errorf("preview size %dx%d: must be positive", cfg.PreviewWidth, cfg.PreviewHeight)
	}
	return &cfg, nil
}

// Origins splits AllowedOrigins into trimmed, non-empty entries.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// OriginPatterns returns the origins without their scheme, the form the
// websocket handshake matches against.
func (c *Config) OriginPatterns() []string {
	origins := c.Origins()
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		if i := strings.Index(o, "://"); i >= 0 {
			o = o[i+3:]
		}
		out = append(out, o)
	}
	return out
}

// Level maps LogLevel onto a slog level. Unknown names fall back to info.
func (c *Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
