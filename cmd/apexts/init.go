package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"apexts/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create an apexts.toml with default settings",
	Long: `Init writes apexts.toml into [dir] (the current directory by default) with
the default [generate] settings and an empty [types] override table. The
directory is created when missing; an existing manifest is never overwritten.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringP("input", "i", "", "input directory to record in the manifest")
	initCmd.Flags().StringP("output", "o", "", "output file to record in the manifest")
}

func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	target, err := filepath.Abs(target)
	if err != nil {
		return err
	}

	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	manifestPath := filepath.Join(target, project.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}

	cfg := project.Defaults()
	if v, _ := cmd.Flags().GetString("input"); v != "" {
		cfg.Generate.Input = filepath.ToSlash(v)
	}
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		cfg.Generate.Output = filepath.ToSlash(v)
	}
	cfg.Types = map[string]string{}

	var buf bytes.Buffer
	buf.WriteString("# apexts configuration; command-line flags override these values.\n")
	if err := project.Encode(&buf, cfg); err != nil {
		return err
	}
	if err := os.WriteFile(manifestPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", manifestPath)
	}
	return nil
}
