package domain

import "strings"

// Recognized override variable names. They double as the expansion variables
// visible to task steps, together with the derived MACH_PROFILE_DIR.
const (
	VarTarget     = "MACH_TARGET"
	VarBaseFlags  = "MACH_BASE_FLAGS"
	VarCrossFlags = "MACH_CROSS_FLAGS"
	VarRelease    = "MACH_RELEASE"
	VarProfileDir = "MACH_PROFILE_DIR"
)

// Overrides is the read-only snapshot of recognized override inputs for one
// invocation. It is taken once at entry and threaded through resolution and
// composition; the engine never mutates it.
type Overrides struct {
	Target     string
	BaseFlags  []string
	CrossFlags []string
	Release    bool
}

// DefaultOverrides returns the built-in defaults used for absent entries.
func DefaultOverrides() Overrides {
	return Overrides{
		Target:    DefaultTriple,
		BaseFlags: DefaultBaseFlags(),
	}
}

// ExpandVars returns the variables visible to ${...} references in task
// steps: the recognized override values plus derived values for the resolved
// target and profile.
func ExpandVars(ov Overrides, target Target, profile Profile) map[string]string {
	release := ""
	if ov.Release {
		release = "1"
	}
	return map[string]string{
		VarTarget:     target.Triple,
		VarBaseFlags:  strings.Join(ov.BaseFlags, " "),
		VarCrossFlags: strings.Join(ov.CrossFlags, " "),
		VarRelease:    release,
		VarProfileDir: profile.Dir(),
	}
}
