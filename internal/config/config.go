// Package config loads service settings from environment variables and
// an optional config file, with working defaults for a host that has
// the usual conversion tools on PATH.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// envPrefix namespaces the environment variables, e.g.
// IMAGE_CONVERT_EXTERNAL_TIMEOUT or IMAGE_CONVERT_TOOLS_DCRAW.
const envPrefix = "IMAGE_CONVERT"

// ToolPaths names the external converter binaries.
type ToolPaths struct {
	Magick      string
	Dcraw       string
	HeifConvert string
	Ghostscript string
	PDF2SVG     string
	DXF2SVG     string
}

// Config carries the settings the converter needs.
type Config struct {
	// ExternalTimeout bounds each external tool invocation.
	ExternalTimeout time.Duration

	// JPEGBackground is the hex color composited under transparent
	// pixels when the target format has no alpha channel.
	JPEGBackground string

	Tools ToolPaths
}

// DefaultTools returns the standard binary names, resolved via PATH.
func DefaultTools() ToolPaths {
	return ToolPaths{
		Magick:      "magick",
		Dcraw:       "dcraw",
		HeifConvert: "heif-convert",
		Ghostscript: "gs",
		PDF2SVG:     "pdf2svg",
		DXF2SVG:     "dxf2svg",
	}
}

// Load reads configuration from the environment and, when file is
// non-empty, from the named YAML file. Environment variables win over
// the file; defaults fill the rest.
func Load(file string) (*Config, error) {
	v := viper.New()

	v.SetDefault("external_timeout", "120s")
	v.SetDefault("jpeg_background", "#ffffff")
	def := DefaultTools()
	v.SetDefault("tools.magick", def.Magick)
	v.SetDefault("tools.dcraw", def.Dcraw)
	v.SetDefault("tools.heif_convert", def.HeifConvert)
	v.SetDefault("tools.ghostscript", def.Ghostscript)
	v.SetDefault("tools.pdf2svg", def.PDF2SVG)
	v.SetDefault("tools.dxf2svg", def.DXF2SVG)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	cfg := &Config{
		ExternalTimeout: v.GetDuration("external_timeout"),
		JPEGBackground:  v.GetString("jpeg_background"),
		Tools: ToolPaths{
			Magick:      v.GetString("tools.magick"),
			Dcraw:       v.GetString("tools.dcraw"),
			HeifConvert: v.GetString("tools.heif_convert"),
			Ghostscript: v.GetString("tools.ghostscript"),
			PDF2SVG:     v.GetString("tools.pdf2svg"),
			DXF2SVG:     v.GetString("tools.dxf2svg"),
		},
	}
	if cfg.ExternalTimeout <= 0 {
		return nil, fmt.Errorf("external_timeout must be positive, got %s", cfg.ExternalTimeout)
	}
	return cfg, nil
}
