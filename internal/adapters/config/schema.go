package config

// File is the on-disk structure of the optional mach.yaml override file.
// Every field falls back to a built-in default when absent.
type File struct {
	Target     string   `yaml:"target"`
	BaseFlags  []string `yaml:"base-flags"`
	CrossFlags []string `yaml:"cross-flags"`
	Release    bool     `yaml:"release"`
}
