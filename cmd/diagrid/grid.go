package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"diagrid/internal/config"
	"diagrid/internal/grid"
	"diagrid/internal/gridscript"
)

var gridCmd = &cobra.Command{
	Use:   "grid [flags]",
	Short: "Build diagram lines from placement commands on stdin",
	Long: `Grid reads placement commands (line, put, fill, hline, box, emit, ruler,
blank) from stdin and writes the built lines to stdout. Any placement outside
the grid is a hard error, never a silent truncation.`,
	RunE: runGrid,
}

var rulerCmd = &cobra.Command{
	Use:   "ruler [flags]",
	Short: "Print a column ruler for planning placements",
	RunE:  runRuler,
}

func init() {
	gridCmd.Flags().IntP("width", "w", 0, "grid width in characters (default from config, else 80)")
	rulerCmd.Flags().IntP("width", "w", 0, "ruler width in characters (default from config, else 80)")
}

func effectiveWidth(cmd *cobra.Command) (int, error) {
	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return 0, fmt.Errorf("failed to get width flag: %w", err)
	}
	if width != 0 {
		return width, nil
	}
	cfg, _, err := config.Load(".")
	if err != nil {
		return 0, err
	}
	return cfg.Grid.Width, nil
}

func runGrid(cmd *cobra.Command, args []string) error {
	width, err := effectiveWidth(cmd)
	if err != nil {
		return err
	}
	return gridscript.Run(cmd.InOrStdin(), os.Stdout, width)
}

func runRuler(cmd *cobra.Command, args []string) error {
	width, err := effectiveWidth(cmd)
	if err != nil {
		return err
	}
	g, err := grid.New(width)
	if err != nil {
		return err
	}
	tens, units := g.Ruler()
	fmt.Fprintln(os.Stdout, g.Emit(tens))
	fmt.Fprintln(os.Stdout, g.Emit(units))
	return nil
}
