package domain

// Profile selects the optimization mode of a build.
type Profile int

const (
	// Debug is the toolchain's implicit default profile.
	Debug Profile = iota
	// Release is selected only by explicit opt-in.
	Release
)

func (p Profile) String() string {
	if p == Release {
		return "release"
	}
	return "debug"
}

// Dir returns the artifact directory cargo uses for the profile.
func (p Profile) Dir() string {
	return p.String()
}

// ResolveProfile returns the active profile for an invocation. Any non-empty
// release toggle selects release; absence means debug.
func ResolveProfile(ov Overrides) Profile {
	if ov.Release {
		return Release
	}
	return Debug
}
