package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"diagrid/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "diagrid",
	Short: "ASCII diagram toolkit",
	Long:  `diagrid builds and verifies ASCII box-and-line diagrams with exact column placement`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(gridCmd)
	rootCmd.AddCommand(rulerCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the persistent --color flag for output going to f.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
