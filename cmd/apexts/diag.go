package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"apexts/internal/diag"
	"apexts/internal/diagfmt"
	"apexts/internal/driver"
)

var diagCmd = &cobra.Command{
	Use:   "diag [flags] <file.cls|directory>",
	Short: "Report diagnostics for Apex class files",
	Long: `Diag runs the conversion pipeline without writing output and prints every
diagnostic: lexer errors, structural errors, skipped members and duplicates.
Exits with status 1 when any error is reported.`,
	Args: cobra.ExactArgs(1),
	RunE: runDiagnose,
}

func init() {
	diagCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	diagCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	diagCmd.Flags().String("path-mode", "relative", "how to print file paths (relative|absolute|basename)")
	diagCmd.Flags().Bool("no-warnings", false, "ignore warnings in diagnostics")
	diagCmd.Flags().String("min-severity", "info", "lowest severity to print (info|warning|error)")
	diagCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	diagCmd.Flags().String("marker", "@tsexport", "doc-comment marker that exports a class")
	diagCmd.Flags().String("annotation", "AuraEnabled", "annotation that marks remote-callable members")
	diagCmd.Flags().String("extension", ".cls", "source file extension")
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	noWarnings, err := cmd.Flags().GetBool("no-warnings")
	if err != nil {
		return fmt.Errorf("failed to get no-warnings flag: %w", err)
	}
	minFlag, err := cmd.Flags().GetString("min-severity")
	if err != nil {
		return fmt.Errorf("failed to get min-severity flag: %w", err)
	}
	minSev, err := diag.ParseSeverity(minFlag)
	if err != nil {
		return fmt.Errorf("invalid --min-severity: %w", err)
	}
	pathModeFlag, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	pathMode, ok := diagfmt.ParsePathMode(pathModeFlag)
	if !ok {
		return fmt.Errorf("invalid --path-mode value %q", pathModeFlag)
	}

	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	opts := s.Driver
	opts.Timings = s.Timings

	res, err := driver.ConvertDir(cmd.Context(), args[0], opts)
	if err != nil {
		return fmt.Errorf("diagnostics failed: %w", err)
	}

	bag := res.Bag
	bag.Filter(func(d diag.Diagnostic) bool {
		if noWarnings && d.Severity == diag.SevWarning {
			return false
		}
		// тайминги запрошены явно, порог на них не действует
		return d.Code == diag.ObsTimings || d.Severity.AtLeast(minSev)
	})
	bag.Dedup()
	bag.Sort()

	out := cmd.OutOrStdout()
	switch format {
	case "pretty":
		diagfmt.Pretty(out, bag, res.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stdout),
			PathMode:  pathMode,
			ShowNotes: withNotes,
		})
		if !s.Quiet {
			fmt.Fprintf(out, "%d file(s): %d converted, %d skipped, %d failed\n",
				len(res.Files), res.Succeeded, res.Skipped, res.Failed)
		}
	case "json":
		if err := diagfmt.JSON(out, bag, res.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     withNotes,
		}); err != nil {
			return fmt.Errorf("failed to encode diagnostics: %w", err)
		}
	case "short":
		if err := diagfmt.Short(out, bag, res.FileSet, withNotes); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if bag.HasErrors() {
		return exitCodeError{code: 1}
	}
	return nil
}
