package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"apexts/internal/diag"
	"apexts/internal/diagfmt"
	"apexts/internal/driver"
)

var genCmd = &cobra.Command{
	Use:   "gen [flags]",
	Short: "Generate a TypeScript declaration file from Apex classes",
	Long: `Generate scans the input directory for Apex classes marked with @tsexport and
writes their @AuraEnabled fields and static methods as TypeScript declarations.`,
	Args: cobra.NoArgs,
	RunE: runGen,
}

func init() {
	genCmd.Flags().StringP("input", "i", "", "input directory containing Apex class files")
	genCmd.Flags().StringP("output", "o", "types.d.ts", "output TypeScript declaration file")
	genCmd.Flags().BoolP("verbose", "v", false, "enable verbose output")
	genCmd.Flags().String("namespace", "@salesforce/apex", "module path prefix for remote methods")
	genCmd.Flags().String("marker", "@tsexport", "doc-comment marker that exports a class")
	genCmd.Flags().String("annotation", "AuraEnabled", "annotation that marks remote-callable members")
	genCmd.Flags().String("extension", ".cls", "source file extension")
	genCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	genCmd.Flags().Bool("strict", false, "fail when any file fails or any duplicate is dropped")
	genCmd.Flags().Bool("header", false, "prepend a generated-code header")
	genCmd.Flags().String("cache", "", "directory for the per-file parse cache")
	genCmd.Flags().Bool("clear-cache", false, "drop cached parse results before generating")
	genCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	genCmd.Flags().Bool("watch", false, "regenerate when source files change")
}

func runGen(cmd *cobra.Command, _ []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	if s.Input == "" {
		return fmt.Errorf("no input directory: pass -i or set [generate].input in apexts.toml")
	}

	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	watch, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return fmt.Errorf("failed to get watch flag: %w", err)
	}
	clearCache, err := cmd.Flags().GetBool("clear-cache")
	if err != nil {
		return fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	if clearCache {
		if err := s.Driver.Cache.DropAll(); err != nil {
			return err
		}
		s.logger().Debugw("cache cleared", "dir", s.Driver.Cache.Dir())
	}
	// TUI перерисовывает экран и мешает -v и --watch
	withUI := shouldUseTUI(mode) && !s.Verbose && !s.Quiet && !watch

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	err = generate(ctx, s, withUI, out, errOut)
	if !watch {
		return err
	}
	if err != nil {
		fmt.Fprintf(errOut, "generation failed: %v\n", err)
	}
	return watchAndRegenerate(ctx, s, out, errOut)
}

// generate runs one conversion and writes the output file.
func generate(ctx context.Context, s *settings, withUI bool, out, errOut io.Writer) error {
	if s.Verbose {
		fmt.Fprintf(out, "Scanning directory: %s\n", s.Input)
	}
	files, err := driver.Discover(s.Input, s.Driver.Extension)
	if err != nil {
		return err
	}
	if s.Verbose {
		fmt.Fprintf(out, "Found %d Apex class files\n", len(files))
	}
	if len(files) == 0 {
		fmt.Fprintf(out, "No Apex class files (.cls) found in %s\n", s.Input)
		return nil
	}

	opts := s.Driver
	var res *driver.Result
	if withUI {
		res, err = runGenWithUI(ctx, "apexts gen", relativeTo(s.Input, files), s.Input, opts)
	} else {
		res, err = driver.ConvertDir(ctx, s.Input, opts)
	}
	if err != nil {
		return err
	}

	if s.Verbose && res.Bag.Len() > 0 {
		res.Bag.Sort()
		diagfmt.Pretty(errOut, res.Bag, res.FileSet, diagfmt.PrettyOpts{Color: s.ColorErr, ShowNotes: true})
	} else if nErr := res.Bag.Count(diag.SevError); nErr > 0 && !s.Quiet {
		fmt.Fprintf(errOut, "%d error(s) in %d file(s); run `apexts diag %s` for details\n", nErr, res.Failed, s.Input)
	}
	if s.Verbose {
		fmt.Fprintf(out, "Found %d classes with %s annotation\n", res.Succeeded, markerOf(s))
	}
	if res.NonClass > 0 && !s.Quiet {
		fmt.Fprintf(errOut, "note: %d file(s) declare a top-level interface or enum and were skipped\n", res.NonClass)
	}
	if s.Timings {
		fmt.Fprint(errOut, res.Timing.Summary())
	}

	verdict := res.Verdict(s.Strict)
	if res.Succeeded == 0 {
		if verdict == nil {
			fmt.Fprintf(out, "No classes with %s annotation found\n", markerOf(s))
		}
		return verdict
	}
	if verdict != nil {
		return verdict
	}

	if err := driver.WriteOutput(s.Output, res.Output); err != nil {
		return err
	}
	if !s.Quiet {
		fmt.Fprintf(out, "✓ Successfully generated TypeScript definitions: %s\n", s.Output)
		fmt.Fprintf(out, "  %d interface(s) generated\n", res.Stats.Interfaces)
	}
	return nil
}

func watchAndRegenerate(ctx context.Context, s *settings, out, errOut io.Writer) error {
	w, err := driver.NewWatcher(s.Input, s.Driver.Extension, driver.DefaultDebounce, s.logger())
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	if !s.Quiet {
		fmt.Fprintf(out, "Watching %s for changes (Ctrl+C to stop)\n", s.Input)
	}
	return w.Run(ctx, func(changed []string) {
		s.logger().Infow("regenerating", "changed", len(changed))
		if err := generate(ctx, s, false, out, errOut); err != nil {
			fmt.Fprintf(errOut, "generation failed: %v\n", err)
		}
	})
}

func markerOf(s *settings) string {
	if s.Driver.ExportMarker != "" {
		return s.Driver.ExportMarker
	}
	return "@tsexport"
}

func relativeTo(base string, files []string) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = driver.DisplayPath(base, f)
	}
	return out
}
