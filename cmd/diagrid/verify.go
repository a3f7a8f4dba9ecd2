package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"diagrid/internal/config"
	"diagrid/internal/diagram"
	"diagrid/internal/driver"
	"diagrid/internal/extract"
	"diagrid/internal/reportfmt"
	"diagrid/internal/ui"
	"diagrid/internal/verify"
)

// Exit codes: 0 pass, 1 violations, 2 extraction/input errors. Extraction
// failures must never look like a pass.
const (
	exitPass     = 0
	exitFail     = 1
	exitBadInput = 2
)

var verifyCmd = &cobra.Command{
	Use:   "verify [flags] [file ...]",
	Short: "Verify the geometry and character set of ASCII diagrams",
	Long: `Verify reads a diagram from stdin (or one or more files) and runs the four
structural checks: banned-character scan, junction audit, box consistency,
and arrow connectivity.`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringP("extract", "e", "", "extract the diagram under this markdown heading")
	verifyCmd.Flags().IntP("block", "b", 0, "extract the Nth fenced code block (1-based)")
	verifyCmd.Flags().IntP("columns", "c", 0, "show structural column positions for one line number")
	verifyCmd.Flags().String("format", "pretty", "output format (pretty|short|json|msgpack)")
	verifyCmd.Flags().Int("jobs", 0, "max parallel workers for multiple files (0=auto)")
	verifyCmd.Flags().Bool("ui", false, "show live progress while verifying multiple files")
	verifyCmd.MarkFlagsMutuallyExclusive("extract", "block")
}

func runVerify(cmd *cobra.Command, args []string) error {
	heading, err := cmd.Flags().GetString("extract")
	if err != nil {
		return fmt.Errorf("failed to get extract flag: %w", err)
	}
	blockNum, err := cmd.Flags().GetInt("block")
	if err != nil {
		return fmt.Errorf("failed to get block flag: %w", err)
	}
	columnsLine, err := cmd.Flags().GetInt("columns")
	if err != nil {
		return fmt.Errorf("failed to get columns flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	withUI, err := cmd.Flags().GetBool("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	cfg, _, err := config.Load(".")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitBadInput)
	}
	opts := verify.Options{
		BandTolerance: cfg.Verify.BandTolerance,
		BannedExtra:   []rune(cfg.Verify.BannedExtra),
	}
	if jobs == 0 {
		jobs = cfg.Verify.Jobs
	}

	if len(args) > 1 {
		// A diagnostic listing of one line has no meaning across files.
		if columnsLine > 0 {
			fmt.Fprintln(os.Stderr, "Error: --columns applies to a single input only")
			os.Exit(exitBadInput)
		}
		return runVerifyBatch(cmd, args, opts, jobs, batchLoader(heading, blockNum), withUI, quiet)
	}

	lines, err := readDiagramLines(cmd.InOrStdin(), args, heading, blockNum)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitBadInput)
	}
	d := diagram.FromLines(lines)
	if d.LineCount() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no diagram content found")
		os.Exit(exitBadInput)
	}

	// Diagnostic listing only; never affects pass/fail.
	if columnsLine > 0 {
		if err := reportfmt.Columns(os.Stdout, d, columnsLine); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(exitBadInput)
		}
		os.Exit(exitPass)
	}

	rep := verify.Verify(d, opts)
	if err := renderReport(cmd, rep, format, quiet); err != nil {
		return err
	}
	if !rep.Pass() {
		os.Exit(exitFail)
	}
	return nil
}

// readDiagramLines resolves the verification input: whole stream, Nth fenced
// block, or first block after a heading.
func readDiagramLines(stdin io.Reader, args []string, heading string, blockNum int) ([]string, error) {
	var text string
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		text = string(data)
	} else {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(data)
	}

	var (
		lines []string
		err   error
	)
	switch {
	case heading != "":
		lines, err = extract.AfterHeading(text, heading)
	case blockNum != 0:
		lines, err = extract.ByIndex(text, blockNum)
	default:
		lines = strings.Split(text, "\n")
	}
	if err != nil {
		return nil, err
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

func renderReport(cmd *cobra.Command, rep *verify.Report, format string, quiet bool) error {
	switch format {
	case "pretty":
		reportfmt.Pretty(os.Stdout, rep, reportfmt.PrettyOpts{
			Color: useColor(cmd, os.Stdout),
			Quiet: quiet,
		})
	case "short":
		if out := reportfmt.Short(rep); out != "" {
			fmt.Fprintln(os.Stdout, out)
		}
	case "json":
		if err := reportfmt.JSON(os.Stdout, rep); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
	case "msgpack":
		if err := reportfmt.Msgpack(os.Stdout, rep); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	return nil
}

// batchLoader turns the extraction flags into a per-file loader so that
// --extract/--block apply to every file in a batch exactly as they do to a
// single input. Returns nil when no selector is set.
func batchLoader(heading string, blockNum int) driver.Loader {
	switch {
	case heading != "":
		return func(text string) ([]string, error) {
			return extract.AfterHeading(text, heading)
		}
	case blockNum != 0:
		return func(text string) ([]string, error) {
			return extract.ByIndex(text, blockNum)
		}
	}
	return nil
}

// runVerifyBatch verifies several files in parallel and prints one summary
// line per file plus any violations.
func runVerifyBatch(cmd *cobra.Command, paths []string, opts verify.Options, jobs int, loader driver.Loader, withUI, quiet bool) error {
	var events chan driver.Event
	uiDone := make(chan error, 1)
	if withUI {
		events = make(chan driver.Event, len(paths)*2)
		go func() { uiDone <- ui.Run("verifying diagrams", paths, events) }()
	}

	results, err := driver.VerifyFiles(cmd.Context(), paths, opts, jobs, loader, events)
	if withUI {
		if uiErr := <-uiDone; uiErr != nil {
			fmt.Fprintln(os.Stderr, "ui error:", uiErr)
		}
	}
	if err != nil {
		return fmt.Errorf("batch verification failed: %w", err)
	}

	exit := exitPass
	for _, res := range results {
		switch {
		case res.Err != nil:
			fmt.Fprintf(os.Stdout, "%s: ERROR: %v\n", res.Path, res.Err)
			exit = exitBadInput
		case res.Report.Pass():
			if !quiet {
				fmt.Fprintf(os.Stdout, "%s: PASS\n", res.Path)
			}
		default:
			fmt.Fprintf(os.Stdout, "%s: FAIL\n", res.Path)
			for _, line := range strings.Split(reportfmt.Short(res.Report), "\n") {
				fmt.Fprintf(os.Stdout, "  %s\n", line)
			}
			if exit == exitPass {
				exit = exitFail
			}
		}
	}
	if exit != exitPass {
		os.Exit(exit)
	}
	return nil
}
