package domain

// DefaultTriple is the bare-metal RISC-V triple the kernel is built for
// unless overridden.
const DefaultTriple = "riscv64gc-unknown-none-elf"

// defaultRebuildStd lists the sysroot crates that must be rebuilt from source
// for nonstandard targets, which ship no prebuilt standard library.
var defaultRebuildStd = []string{"core", "alloc", "compiler_builtins"}

// Target identifies a compilation destination. An empty Triple means the
// native host.
type Target struct {
	Name       string
	Triple     string
	RebuildStd []string
}

// NativeTarget returns the host target. It carries no sysroot rebuild set
// because the host has a prebuilt standard library.
func NativeTarget() Target {
	return Target{Name: "native"}
}

// CrossTarget returns the cross target for the given triple.
func CrossTarget(triple string) Target {
	return Target{
		Name:       triple,
		Triple:     triple,
		RebuildStd: defaultRebuildStd,
	}
}

// Validate checks the sysroot invariant: a non-empty triple always carries a
// non-empty rebuild set, and the native target carries none.
func (t Target) Validate() error {
	if (t.Triple != "") != (len(t.RebuildStd) != 0) {
		return ErrInvalidTarget
	}
	return nil
}

// ResolveTarget returns the active cross target for an invocation. A non-empty
// target override replaces the default triple verbatim; an invalid triple is
// diagnosed by the toolchain downstream, not here.
func ResolveTarget(ov Overrides) Target {
	if ov.Target != "" {
		return CrossTarget(ov.Target)
	}
	return CrossTarget(DefaultTriple)
}
