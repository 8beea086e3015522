package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/levelforge/corridor"
	"github.com/katalvlaran/levelforge/geom"
)

func (a *app) connectCmd() *cobra.Command {
	var (
		width    float64
		layer    int
		write    bool
		from, to string
	)

	cmd := &cobra.Command{
		Use:   "connect [level.json]",
		Short: "Generate corridors from both spawns to the objective, or between two points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("width") {
				width = a.cfg.Connect.CorridorWidth
			}
			var pts []geom.Point
			if from != "" || to != "" {
				start, err := parsePoint(from)
				if err != nil {
					return err
				}
				end, err := parsePoint(to)
				if err != nil {
					return err
				}
				pts = []geom.Point{start, end}
			}
			return a.runConnect(cmd, args[0], width, layer, write, pts)
		},
	}

	cmd.Flags().Float64VarP(&width, "width", "w", corridor.DefaultWidthMeters, "corridor width in meters (config value when unset)")
	cmd.Flags().IntVar(&layer, "floor", 0, "vertical level to connect")
	cmd.Flags().BoolVar(&write, "write", false, "save the corridors back into the file")
	cmd.Flags().StringVar(&from, "from", "", "lay a corridor from this point, x,y in pixels (needs --to)")
	cmd.Flags().StringVar(&to, "to", "", "end point of the --from corridor, x,y in pixels")
	cmd.MarkFlagsRequiredTogether("from", "to")
	return cmd
}

// runConnect connects the spawns to the objective, or lays a corridor
// between pts[0] and pts[1] when pts is set.
func (a *app) runConnect(cmd *cobra.Command, path string, width float64, layer int, write bool, pts []geom.Point) error {
	f, err := loadFile(path)
	if err != nil {
		return err
	}
	doc := f.Document()

	c, err := corridor.NewConnector(connectOptions(a.cfg, a.log, layer, doc.NextID)...)
	if err != nil {
		return err
	}
	var res corridor.Result
	if len(pts) == 2 {
		res = c.ConnectPoints(doc.Snapshot(), pts[0], pts[1], width)
	} else {
		res = c.Connect(doc.Snapshot(), width)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, res.Message)
	for _, obj := range res.Corridors {
		b, err := obj.Bounds()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  #%d %s [%.0f,%.0f]-[%.0f,%.0f]\n", obj.ID, obj.Label, b.MinX, b.MinY, b.MaxX, b.MaxY)
	}

	if !res.Success {
		a.log.Debug("nothing to write", "path", path)
		return nil
	}
	rev := c.Apply(doc, res)
	if !write {
		return nil
	}
	if err := writeFile(path, doc.File()); err != nil {
		return err
	}
	a.log.Info("level saved", "path", path, "corridors", len(res.Corridors), "revision", rev)
	return nil
}
