// Package config holds the tunable parameters of the route engine and loads
// them from YAML. Meter-valued fields are converted to editor pixels with
// GridSize at the edge of each package call.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config groups every engine setting. Zero-valued sections in a YAML file
// keep their defaults.
type Config struct {
	GridSize float64 `yaml:"grid_size"` // pixels per meter

	Nav      NavConfig      `yaml:"nav"`
	Connect  ConnectConfig  `yaml:"connect"`
	Rules    RulesConfig    `yaml:"rules"`
	Analysis AnalysisConfig `yaml:"analysis"`
}

// NavConfig configures grid building and A*.
type NavConfig struct {
	CellMeters   float64 `yaml:"cell_meters"`
	PaddingCells int     `yaml:"padding_cells"`
	NearWallCost float64 `yaml:"near_wall_cost"`
	MidWallCost  float64 `yaml:"mid_wall_cost"`
	SearchRadius int     `yaml:"search_radius"`
	Randomness   float64 `yaml:"randomness"`
}

// ConnectConfig configures the corridor connector.
type ConnectConfig struct {
	ToleranceMeters  float64 `yaml:"tolerance_meters"`
	CorridorWidth    float64 `yaml:"corridor_width"` // meters
	MaxGapMeters     float64 `yaml:"max_gap_meters"`
	NearestFloorDist float64 `yaml:"nearest_floor_meters"`
}

// RulesConfig holds the advisory level-design thresholds.
type RulesConfig struct {
	PlayerSpeed          float64 `yaml:"player_speed"` // m/s
	StraightRunSeconds   float64 `yaml:"straight_run_seconds"`
	MinRoutes            int     `yaml:"min_routes"`
	MinCorridorWidth     float64 `yaml:"min_corridor_width"`
	MaxCorridorWidth     float64 `yaml:"max_corridor_width"`
	DefenceObjectiveDist float64 `yaml:"defence_objective_distance"`
	OffenceObjectiveDist float64 `yaml:"offence_objective_distance"`
	MinOffencePaths      int     `yaml:"min_offence_paths"`
}

// AnalysisConfig configures the distance overlay.
type AnalysisConfig struct {
	Cooldown time.Duration `yaml:"cooldown"`
}

// Default returns the editor's stock settings.
func Default() Config {
	return Config{
		GridSize: 32,
		Nav: NavConfig{
			CellMeters:   1,
			PaddingCells: 2,
			NearWallCost: 5,
			MidWallCost:  2,
			SearchRadius: 20,
			Randomness:   0,
		},
		Connect: ConnectConfig{
			ToleranceMeters:  0.5,
			CorridorWidth:    5,
			MaxGapMeters:     100,
			NearestFloorDist: 500.0 / 32,
		},
		Rules: RulesConfig{
			PlayerSpeed:          4.5,
			StraightRunSeconds:   3,
			MinRoutes:            3,
			MinCorridorWidth:     4,
			MaxCorridorWidth:     6,
			DefenceObjectiveDist: 25,
			OffenceObjectiveDist: 50,
			MinOffencePaths:      2,
		},
		Analysis: AnalysisConfig{
			Cooldown: 100 * time.Millisecond,
		},
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch {
	case c.GridSize <= 0:
		return fmt.Errorf("%w: grid_size must be positive (%v)", ErrInvalidConfig, c.GridSize)
	case c.Nav.CellMeters <= 0:
		return fmt.Errorf("%w: nav.cell_meters must be positive (%v)", ErrInvalidConfig, c.Nav.CellMeters)
	case c.Nav.PaddingCells < 0:
		return fmt.Errorf("%w: nav.padding_cells cannot be negative (%d)", ErrInvalidConfig, c.Nav.PaddingCells)
	case c.Nav.NearWallCost < 1 || c.Nav.MidWallCost < 1:
		return fmt.Errorf("%w: wall costs must be >= 1", ErrInvalidConfig)
	case c.Nav.SearchRadius < 0:
		return fmt.Errorf("%w: nav.search_radius cannot be negative (%d)", ErrInvalidConfig, c.Nav.SearchRadius)
	case c.Nav.Randomness < 0:
		return fmt.Errorf("%w: nav.randomness cannot be negative (%v)", ErrInvalidConfig, c.Nav.Randomness)
	case c.Connect.CorridorWidth <= 0:
		return fmt.Errorf("%w: connect.corridor_width must be positive (%v)", ErrInvalidConfig, c.Connect.CorridorWidth)
	case c.Connect.ToleranceMeters < 0 || c.Connect.MaxGapMeters <= 0:
		return fmt.Errorf("%w: connect tolerance/max gap out of range", ErrInvalidConfig)
	case c.Rules.PlayerSpeed <= 0:
		return fmt.Errorf("%w: rules.player_speed must be positive (%v)", ErrInvalidConfig, c.Rules.PlayerSpeed)
	case c.Rules.MinCorridorWidth > c.Rules.MaxCorridorWidth:
		return fmt.Errorf("%w: rules corridor width min > max", ErrInvalidConfig)
	case c.Analysis.Cooldown < 0:
		return fmt.Errorf("%w: analysis.cooldown cannot be negative", ErrInvalidConfig)
	}
	return nil
}

// Px converts meters to editor pixels.
func (c Config) Px(meters float64) float64 {
	return meters * c.GridSize
}

// Meters converts editor pixels to meters.
func (c Config) Meters(px float64) float64 {
	return px / c.GridSize
}

// CellSize returns the nav grid cell edge in pixels.
func (c Config) CellSize() float64 {
	return c.Px(c.Nav.CellMeters)
}
