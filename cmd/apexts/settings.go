package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"apexts/internal/driver"
	"apexts/internal/project"
	"apexts/internal/typemap"
)

// settings: итоговая конфигурация команды: flags > apexts.toml > defaults.
type settings struct {
	Input    string
	Output   string
	CacheDir string
	Strict   bool
	Verbose  bool
	Quiet    bool
	Timings  bool
	ColorErr bool
	Manifest *project.Manifest
	Driver   driver.Options
}

// loadManifest reads --config or discovers apexts.toml upwards from the working directory.
func loadManifest(cmd *cobra.Command) (*project.Manifest, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		m, err := project.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return m, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	m, _, err := project.Discover(wd)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return m, nil
}

// resolveSettings merges the manifest with the flags that were set explicitly.
// Flags absent from cmd are ignored, so gen and diag share this code.
func resolveSettings(cmd *cobra.Command) (*settings, error) {
	m, err := loadManifest(cmd)
	if err != nil {
		return nil, err
	}
	cfg := project.Defaults()
	if m != nil {
		cfg = m.Config
	}
	gc := cfg.Generate

	s := &settings{
		Input:    m.Resolve(gc.Input),
		Output:   m.Resolve(gc.Output),
		CacheDir: m.Resolve(gc.CacheDir),
		Strict:   gc.Strict,
		Manifest: m,
	}

	flags := cmd.Flags()
	// пути из флагов относительны рабочей директории, а не манифеста
	str := func(name string, dst *string) {
		if flags.Lookup(name) == nil || !flags.Changed(name) {
			return
		}
		*dst, _ = flags.GetString(name)
	}
	boolean := func(name string, dst *bool) {
		if flags.Lookup(name) == nil || !flags.Changed(name) {
			return
		}
		*dst, _ = flags.GetBool(name)
	}

	str("input", &s.Input)
	str("output", &s.Output)
	str("cache", &s.CacheDir)
	str("namespace", &gc.Namespace)
	str("marker", &gc.ExportMarker)
	str("annotation", &gc.RemoteAnnotation)
	str("extension", &gc.Extension)
	boolean("strict", &s.Strict)
	boolean("header", &gc.Header)
	if flags.Lookup("jobs") != nil && flags.Changed("jobs") {
		gc.Jobs, _ = flags.GetInt("jobs")
	}
	if flags.Lookup("verbose") != nil {
		s.Verbose, _ = flags.GetBool("verbose")
	}

	root := cmd.Root().PersistentFlags()
	if s.Quiet, err = root.GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.Timings, err = root.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	maxDiagnostics, err := root.GetInt("max-diagnostics")
	if err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	s.ColorErr = useColor(cmd, os.Stderr)
	s.Driver = driver.Options{
		ExportMarker:     gc.ExportMarker,
		RemoteAnnotation: gc.RemoteAnnotation,
		Extension:        gc.Extension,
		Namespace:        gc.Namespace,
		Header:           gc.Header,
		Mapper:           typemap.New(cfg.Types),
		Jobs:             gc.Jobs,
		MaxDiagnostics:   maxDiagnostics,
		Logger:           newLogger(s.Verbose, s.Quiet, s.ColorErr),
	}
	if s.CacheDir != "" {
		cache, err := driver.OpenDiskCache(s.CacheDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open cache: %w", err)
		}
		s.Driver.Cache = cache
	}
	return s, nil
}

func (s *settings) logger() *zap.SugaredLogger { return s.Driver.Logger }
