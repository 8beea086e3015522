package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/levelforge/analysis"
	"github.com/katalvlaran/levelforge/navgrid"
	"github.com/katalvlaran/levelforge/rules"
)

func (a *app) checkCmd() *cobra.Command {
	var layer int

	cmd := &cobra.Command{
		Use:   "check [level.json]",
		Short: "Measure spawn routes and run the level-design rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, args[0], layer)
		},
	}

	cmd.Flags().IntVar(&layer, "floor", 0, "vertical level to analyse")
	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, path string, layer int) error {
	f, err := loadFile(path)
	if err != nil {
		return err
	}
	s := f.Document().Snapshot()
	out := cmd.OutOrStdout()

	an, err := analysis.New(navgrid.NewCache(a.cfg.CellSize(), gridOptions(a.cfg)...), analysisOptions(a.cfg, a.log)...)
	if err != nil {
		return err
	}
	routes, err := an.Routes(s, layer)
	switch {
	case errors.Is(err, analysis.ErrNoObjective):
		a.log.Warn("no objective, skipping route analysis")
		routes = nil
	case err != nil:
		return err
	default:
		printRoutes(cmd, routes)
	}

	checker, err := rules.New(ruleOptions(a.cfg, layer)...)
	if err != nil {
		return err
	}
	rep, err := checker.CheckAll(s, routes)
	if err != nil {
		return err
	}
	for _, r := range rep.Results {
		mark := "ok  "
		if !r.Valid {
			mark = "FAIL"
		}
		fmt.Fprintf(out, "[%s] %-14s %s\n", mark, r.Name, r.Message)
	}

	if failed := rep.Failed(); len(failed) > 0 {
		return fmt.Errorf("%d rule(s) failed", len(failed))
	}
	fmt.Fprintln(out, "Result: VALID")
	return nil
}

func printRoutes(cmd *cobra.Command, rep *analysis.Report) {
	out := cmd.OutOrStdout()
	for _, rt := range rep.Routes {
		status := "verified"
		if !rt.Verified {
			status = "straight line: " + rt.Reason
		}
		fmt.Fprintf(out, "%s→Objective: %.1fm (%.1fm direct), %.1fs, longest straight %.1fm, %s\n",
			rt.Name, rt.LengthMeters, rt.StraightMeters, rt.TimeSeconds, rt.LongestStraight, status)
	}
}
