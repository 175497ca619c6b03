// Package sceneconfig implements the optional YAML overlay described in
// SPEC_FULL.md §3/§4.13: camera field-of-view, output resolution,
// supersampling factor, recursion depth, and named-color overrides for the
// currently selected canned example. Grounded on gazed-vu's
// gopkg.in/yaml.v3-based asset-description loading (load/shd.go) for the
// "plain struct + yaml.Unmarshal" idiom, and on golang.org/x/image/colornames
// for resolving a color given as a CSS name rather than a hex string.
package sceneconfig

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	wray "github.com/kestrel-render/wray"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Config is the overlay document. Every field is optional; a zero value
// means "use the example's own hard-coded default" — this is purely
// additive, matching SPEC_FULL.md §3's contract that every example still
// renders correctly with zero config file present.
type Config struct {
	Width          int               `yaml:"width"`
	Height         int               `yaml:"height"`
	FieldOfViewDeg float64           `yaml:"field_of_view_deg"`
	Supersample    int               `yaml:"supersample"`
	RecursionDepth int               `yaml:"recursion_depth"`
	ColorOverrides map[string]string `yaml:"colors"`
}

// Load parses a YAML scene-config overlay from path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sceneconfig: reading %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("sceneconfig: parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// ResolveColor resolves name as a 6-digit hex string (via the same
// go-colorful-backed wray.ColorFromHex the rest of the renderer uses);
// failing that, as a CSS color name via golang.org/x/image/colornames.
// Returns each channel in [0,1].
func ResolveColor(name string) (r, g, b float64, err error) {
	hex := strings.TrimPrefix(name, "#")
	if len(hex) == 6 {
		if c, err := wray.ColorFromHex(hex); err == nil {
			return c.R, c.G, c.B, nil
		}
	}
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return 0, 0, 0, fmt.Errorf("sceneconfig: unrecognized color %q (not a 6-digit hex or a known CSS name)", name)
	}
	return channelsOf(c), nil
}

func channelsOf(c color.RGBA) (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// ColorOverride looks up key in cfg's overrides and resolves it, returning
// ok=false if the key is absent (the caller should keep its own default).
func (cfg *Config) ColorOverride(key string) (r, g, b float64, ok bool) {
	if cfg == nil {
		return 0, 0, 0, false
	}
	name, present := cfg.ColorOverrides[key]
	if !present {
		return 0, 0, 0, false
	}
	rr, gg, bb, err := ResolveColor(name)
	if err != nil {
		return 0, 0, 0, false
	}
	return rr, gg, bb, true
}
