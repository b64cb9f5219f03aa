package domain

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Kind selects the flag-composition variant for a step.
type Kind int

const (
	// KindNative composes flags for the host toolchain.
	KindNative Kind = iota
	// KindCross composes flags for the kernel's cross target.
	KindCross
)

func (k Kind) String() string {
	if k == KindCross {
		return "cross"
	}
	return "native"
}

// Flag is one logical toolchain flag, possibly spanning multiple argv tokens.
type Flag []string

// TargetFlag selects the cross compilation target.
func TargetFlag(triple string) Flag {
	return Flag{"--target", triple}
}

// ReleaseFlag enables release optimization.
func ReleaseFlag() Flag {
	return Flag{"--release"}
}

// DefaultBaseFlags returns the default base flag group: the sysroot crates
// rebuilt from source. Both native and cross builds rebuild the same crates
// so host unit tests exercise the exact code the kernel links against.
func DefaultBaseFlags() []string {
	return []string{
		"-Zbuild-std=core,alloc,compiler_builtins",
		"-Zbuild-std-features=compiler-builtins-mem",
	}
}

// FlagSet is an ordered sequence of flags composed for one step. Cargo treats
// later occurrences of overlapping settings as authoritative, so group order
// is a contract: base flags, then target selection, then profile.
type FlagSet struct {
	flags []Flag
}

// Compose maps a (kind, target, profile, overrides) tuple to the flag
// sequence for a step. It is pure: identical inputs yield byte-identical
// token sequences.
func Compose(kind Kind, target Target, profile Profile, ov Overrides) FlagSet {
	var fs FlagSet

	base := ov.BaseFlags
	if base == nil {
		base = DefaultBaseFlags()
	}
	for _, tok := range base {
		fs.flags = append(fs.flags, Flag{tok})
	}

	if kind == KindCross {
		fs.flags = append(fs.flags, TargetFlag(target.Triple))
		for _, tok := range ov.CrossFlags {
			fs.flags = append(fs.flags, Flag{tok})
		}
	}

	if profile == Release {
		fs.flags = append(fs.flags, ReleaseFlag())
	}

	return fs
}

// Tokens returns the flattened argv tokens in composition order.
func (fs FlagSet) Tokens() []string {
	var tokens []string
	for _, f := range fs.flags {
		tokens = append(tokens, f...)
	}
	return tokens
}

func (fs FlagSet) String() string {
	return strings.Join(fs.Tokens(), " ")
}

// Fingerprint returns a digest of the token sequence. Two compositions with
// the same fingerprint produced identical flags in identical order.
func (fs FlagSet) Fingerprint() uint64 {
	h := xxhash.New()
	for _, tok := range fs.Tokens() {
		_, _ = h.WriteString(tok)
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}
