package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/levelforge/geom"
	"github.com/katalvlaran/levelforge/navgrid"
)

func (a *app) pathCmd() *cobra.Command {
	var (
		from, to string
		layer    int
		simplify bool
	)

	cmd := &cobra.Command{
		Use:   "path [level.json]",
		Short: "Find a walking path between two points on one floor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parsePoint(from)
			if err != nil {
				return err
			}
			end, err := parsePoint(to)
			if err != nil {
				return err
			}
			return a.runPath(cmd, args[0], start, end, layer, simplify)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start point in pixels, x,y")
	cmd.Flags().StringVar(&to, "to", "", "end point in pixels, x,y")
	cmd.Flags().IntVar(&layer, "floor", 0, "vertical level to search")
	cmd.Flags().BoolVar(&simplify, "simplify", false, "reduce the path to line-of-sight corners")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func (a *app) runPath(cmd *cobra.Command, path string, start, end geom.Point, layer int, simplify bool) error {
	f, err := loadFile(path)
	if err != nil {
		return err
	}
	s := f.Document().Snapshot()

	g, err := navgrid.BuildSnapshot(s, layer, a.cfg.CellSize(), gridOptions(a.cfg)...)
	if err != nil {
		return err
	}
	a.log.Debug("grid built", "width", g.Width, "height", g.Height, "walkable", g.WalkableCount(), "regions", g.RegionCount())

	points, err := g.FindPath(start, end, searchOptions(a.cfg)...)
	if err != nil {
		return err
	}
	if simplify {
		points = g.Simplify(points)
	}

	out := cmd.OutOrStdout()
	for _, p := range points {
		fmt.Fprintf(out, "%.0f,%.0f\n", p.X, p.Y)
	}
	fmt.Fprintf(out, "%d points, %.1fm\n", len(points), s.Meters(navgrid.PathLength(points)))
	return nil
}
