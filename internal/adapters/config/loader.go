// Package config loads the override environment for an invocation.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.hartos.dev/mach/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileName is the optional per-workspace override file.
const FileName = "mach.yaml"

// Loader builds the override snapshot from an optional mach.yaml and the
// recognized MACH_* environment keys. Environment values win over file
// values; built-in defaults fill whatever neither supplies.
type Loader struct {
	environ map[string]string
}

// NewLoader snapshots the given process environment ("KEY=VALUE" entries).
// The snapshot is taken once; later environment changes are not observed.
func NewLoader(environ []string) *Loader {
	env := make(map[string]string, len(environ))
	for _, entry := range environ {
		if k, v, ok := strings.Cut(entry, "="); ok {
			env[k] = v
		}
	}
	return &Loader{environ: env}
}

// Load implements ports.ConfigLoader.
func (l *Loader) Load(dir string) (domain.Overrides, error) {
	ov := domain.DefaultOverrides()

	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path) //nolint:gosec // path is the fixed workspace config file
	switch {
	case errors.Is(err, os.ErrNotExist):
		// The file is optional.
	case err != nil:
		return domain.Overrides{}, errors.Join(zerr.With(domain.ErrConfigReadFailed, "path", path), err)
	default:
		var f File
		if err := yaml.Unmarshal(data, &f); err != nil {
			return domain.Overrides{}, errors.Join(zerr.With(domain.ErrConfigParseFailed, "path", path), err)
		}
		applyFile(&ov, f)
	}

	l.applyEnviron(&ov)
	return ov, nil
}

func applyFile(ov *domain.Overrides, f File) {
	if f.Target != "" {
		ov.Target = f.Target
	}
	if f.BaseFlags != nil {
		ov.BaseFlags = f.BaseFlags
	}
	if f.CrossFlags != nil {
		ov.CrossFlags = f.CrossFlags
	}
	if f.Release {
		ov.Release = true
	}
}

// applyEnviron overlays the recognized override keys. A present, non-empty
// value replaces the current one verbatim; no validation happens here, a bad
// triple is diagnosed by the toolchain downstream.
func (l *Loader) applyEnviron(ov *domain.Overrides) {
	if v := l.environ[domain.VarTarget]; v != "" {
		ov.Target = v
	}
	if v := l.environ[domain.VarBaseFlags]; v != "" {
		ov.BaseFlags = strings.Fields(v)
	}
	if v := l.environ[domain.VarCrossFlags]; v != "" {
		ov.CrossFlags = strings.Fields(v)
	}
	if v := l.environ[domain.VarRelease]; v != "" {
		ov.Release = true
	}
}
