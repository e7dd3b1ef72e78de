// Package project loads and writes the apexts.toml manifest.
//
// Precedence is flags > manifest > defaults; this package only deals with
// the last two. Relative paths in the manifest are resolved against the
// directory that contains it.
package project

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
)

const ManifestName = "apexts.toml"

// Config mirrors apexts.toml.
type Config struct {
	Generate GenerateConfig    `toml:"generate"`
	Types    map[string]string `toml:"types,omitempty"`
}

type GenerateConfig struct {
	Input            string `toml:"input"`
	Output           string `toml:"output"`
	Namespace        string `toml:"namespace"`
	ExportMarker     string `toml:"export_marker"`
	RemoteAnnotation string `toml:"remote_annotation"`
	Extension        string `toml:"extension"`
	Strict           bool   `toml:"strict"`
	Jobs             int    `toml:"jobs"`
	Header           bool   `toml:"header"`
	CacheDir         string `toml:"cache_dir,omitempty"`
}

// Defaults returns the configuration used when no manifest is present.
func Defaults() Config {
	return Config{
		Generate: GenerateConfig{
			Input:            "force-app/main/default/classes",
			Output:           "types.d.ts",
			Namespace:        "@salesforce/apex",
			ExportMarker:     "@tsexport",
			RemoteAnnotation: "AuraEnabled",
			Extension:        ".cls",
		},
	}
}

// Manifest is a decoded apexts.toml together with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Find searches startDir and its parents for apexts.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, errors.Wrap(err, "failed to resolve start directory")
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, errors.Wrapf(err, "failed to stat %q", candidate)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover finds and loads the nearest manifest. ok is false when none exists.
func Discover(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err := Load(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

// Load decodes path on top of Defaults and validates it.
func Load(path string) (*Manifest, error) {
	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: failed to parse TOML", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.WithHint(
			errors.Newf("%s: unknown keys: %s", path, strings.Join(keys, ", ")),
			"known sections are [generate] and [types]")
	}
	if meta.IsDefined("generate", "extension") && !strings.HasPrefix(cfg.Generate.Extension, ".") {
		return nil, errors.Newf("%s: [generate].extension must start with '.', got %q", path, cfg.Generate.Extension)
	}
	if cfg.Generate.Jobs < 0 {
		return nil, errors.Newf("%s: [generate].jobs must be >= 0", path)
	}
	if meta.IsDefined("generate", "remote_annotation") && strings.TrimPrefix(cfg.Generate.RemoteAnnotation, "@") == "" {
		return nil, errors.Newf("%s: [generate].remote_annotation is empty", path)
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, nil
}

// Resolve makes a manifest-relative path absolute; absolute and empty paths are returned as is.
func (m *Manifest) Resolve(p string) string {
	if m == nil || p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(m.Root, filepath.FromSlash(p))
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg Config) error {
	enc := toml.NewEncoder(w)
	enc.Indent = ""
	return errors.Wrap(enc.Encode(cfg), "encode manifest")
}
