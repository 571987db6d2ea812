// Package config holds the platform-tunable thresholds of the input layer
// and loads them from a TOML file under the XDG config directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// ErrNotFound is returned by FindPath when no config file exists.
var ErrNotFound = errors.New("config: no input config file")

// RelPath is the config file location relative to the XDG config home.
const RelPath = "canopy/input.toml"

// Input groups the gesture and dimming thresholds.
type Input struct {
	DoubleClickMillis   int     `toml:"double_click_ms"`       // max interval between the two presses of a double-click
	DoubleClickDistance float32 `toml:"double_click_distance"` // max pointer travel between the two presses, in pixels
	DelayedClickMillis  int     `toml:"delayed_click_ms"`      // hold time before a delayed right-click fires
	DelayedClickSlop    float32 `toml:"delayed_click_slop"`    // pointer travel that disqualifies a delayed right-click from firing on time
	DimRiseRate         float32 `toml:"dim_rise_rate"`         // per-second rate the dim overlay approaches 1 while a dialog is open
	DimFallRate         float32 `toml:"dim_fall_rate"`         // per-second rate the dim overlay decays once no dialog is open
	DimMaxAlpha         float32 `toml:"dim_max_alpha"`         // overlay alpha at full dim
}

// Default returns the built-in thresholds.
func Default() Input {
	return Input{
		DoubleClickMillis:   500,
		DoubleClickDistance: 4,
		DelayedClickMillis:  250,
		DelayedClickSlop:    2,
		DimRiseRate:         6,
		DimFallRate:         12,
		DimMaxAlpha:         0.5,
	}
}

func (in Input) DoubleClickTime() time.Duration {
	return time.Duration(in.DoubleClickMillis) * time.Millisecond
}

func (in Input) DelayedClickTime() time.Duration {
	return time.Duration(in.DelayedClickMillis) * time.Millisecond
}

// Validate replaces non-positive or out-of-range values with defaults.
func (in Input) Validate() Input {
	def := Default()
	if in.DoubleClickMillis <= 0 {
		in.DoubleClickMillis = def.DoubleClickMillis
	}
	if in.DoubleClickDistance < 0 {
		in.DoubleClickDistance = def.DoubleClickDistance
	}
	if in.DelayedClickMillis <= 0 {
		in.DelayedClickMillis = def.DelayedClickMillis
	}
	if in.DelayedClickSlop < 0 {
		in.DelayedClickSlop = def.DelayedClickSlop
	}
	if in.DimRiseRate <= 0 {
		in.DimRiseRate = def.DimRiseRate
	}
	if in.DimFallRate <= 0 {
		in.DimFallRate = def.DimFallRate
	}
	if in.DimMaxAlpha <= 0 || in.DimMaxAlpha > 1 {
		in.DimMaxAlpha = def.DimMaxAlpha
	}
	return in
}

// Parse decodes TOML on top of the defaults, so a partial file only
// overrides the keys it names.
func Parse(data []byte) (Input, error) {
	in := Default()
	if err := toml.Unmarshal(data, &in); err != nil {
		return Default(), fmt.Errorf("parse input config: %w", err)
	}
	return in.Validate(), nil
}

// Load reads the config at path. A missing file yields the defaults.
func Load(path string) (Input, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read input config: %w", err)
	}
	return Parse(data)
}

// Save writes in to path as TOML, creating parent directories.
func Save(path string, in Input) error {
	data, err := toml.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode input config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// FindPath looks up an existing config file in the XDG search path.
func FindPath() (string, error) {
	path, err := xdg.SearchConfigFile(RelPath)
	if err != nil {
		return "", ErrNotFound
	}
	return path, nil
}

// DefaultPath is where a new config file would be created.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, RelPath)
}
