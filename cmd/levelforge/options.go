package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/levelforge/analysis"
	"github.com/katalvlaran/levelforge/config"
	"github.com/katalvlaran/levelforge/corridor"
	"github.com/katalvlaran/levelforge/geom"
	"github.com/katalvlaran/levelforge/level"
	"github.com/katalvlaran/levelforge/navgrid"
	"github.com/katalvlaran/levelforge/rules"
)

// The config is translated into package options here and nowhere else.

func gridOptions(cfg config.Config) []navgrid.BuildOption {
	return []navgrid.BuildOption{
		navgrid.WithPadding(cfg.Nav.PaddingCells),
		navgrid.WithWallCosts(cfg.Nav.NearWallCost, cfg.Nav.MidWallCost),
	}
}

func searchOptions(cfg config.Config) []navgrid.SearchOption {
	return []navgrid.SearchOption{
		navgrid.WithSearchRadius(cfg.Nav.SearchRadius),
		navgrid.WithRandomness(cfg.Nav.Randomness),
	}
}

func connectOptions(cfg config.Config, log *slog.Logger, layer int, next func() int) []corridor.Option {
	return []corridor.Option{
		corridor.WithLogger(log),
		corridor.WithLayer(layer),
		corridor.WithTolerance(cfg.Px(cfg.Connect.ToleranceMeters)),
		corridor.WithMaxGap(cfg.Connect.MaxGapMeters),
		corridor.WithNearestDist(cfg.Px(cfg.Connect.NearestFloorDist)),
		corridor.WithIDAllocator(next),
	}
}

func analysisOptions(cfg config.Config, log *slog.Logger) []analysis.Option {
	return []analysis.Option{
		analysis.WithLogger(log),
		analysis.WithCooldown(cfg.Analysis.Cooldown),
		analysis.WithPlayerSpeed(cfg.Rules.PlayerSpeed),
		analysis.WithSearchOptions(searchOptions(cfg)...),
	}
}

func ruleOptions(cfg config.Config, layer int) []rules.Option {
	r := cfg.Rules
	return []rules.Option{
		rules.WithLayer(layer),
		rules.WithPlayerSpeed(r.PlayerSpeed),
		rules.WithStraightRun(r.StraightRunSeconds),
		rules.WithMinRoutes(r.MinRoutes),
		rules.WithCorridorWidth(r.MinCorridorWidth, r.MaxCorridorWidth),
		rules.WithObjectiveDistance(r.DefenceObjectiveDist, r.OffenceObjectiveDist),
		rules.WithMinOffencePaths(r.MinOffencePaths),
		rules.WithTolerance(cfg.Px(cfg.Connect.ToleranceMeters)),
	}
}

// loadFile decodes an editor save file.
func loadFile(path string) (*level.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening level: %w", err)
	}
	defer f.Close()

	return level.Decode(f)
}

// writeFile replaces path with f.
func writeFile(path string, f *level.File) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing level: %w", err)
	}
	if err := level.Encode(out, f); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// parsePoint reads "x,y" in pixels.
func parsePoint(s string) (geom.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geom.Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return geom.Pt(x, y), nil
}
