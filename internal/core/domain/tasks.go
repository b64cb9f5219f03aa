package domain

import "slices"

// kernelImage is the artifact path of the cross-built kernel, relative to the
// cargo workspace root.
const kernelImage = "target/${MACH_TARGET}/${MACH_PROFILE_DIR}/kernel"

// Builtin returns the task table for the kernel workspace. It is constructed
// once at process start and immutable thereafter.
func Builtin() (*TaskTable, error) {
	clean := TaskDefinition{
		Name:        "clean",
		Description: "Remove all build output",
		Steps:       []Step{cargo(KindNative, false, "clean")},
	}

	build := TaskDefinition{
		Name:        "build",
		Description: "Build the kernel for the cross target",
		Steps:       []Step{cargo(KindCross, true, "build")},
	}

	buildNative := TaskDefinition{
		Name:        "build-native",
		Description: "Build the workspace for the host",
		Steps:       []Step{cargo(KindNative, true, "build")},
	}

	// Building block for run; no description keeps it out of the catalog.
	qemu := TaskDefinition{
		Name: "qemu",
		Steps: []Step{{
			Kind: KindCross,
			Pipeline: []Command{{
				Argv: []string{
					"qemu-system-riscv64",
					"-machine", "virt",
					"-serial", "mon:stdio",
					"-nographic",
					"-kernel", kernelImage,
				},
			}},
		}},
	}

	run := TaskDefinition{
		Name:        "run",
		Description: "Build the kernel and boot it under qemu",
		Steps:       concat(build.Steps, qemu.Steps),
	}

	test := TaskDefinition{
		Name:        "test",
		Description: "Run the test suite including documentation tests",
		Steps: []Step{
			cargo(KindNative, true, "test"),
			cargo(KindNative, true, "test", "--doc"),
		},
	}

	clippy := TaskDefinition{
		Name:        "clippy",
		Description: "Run static analysis for the cross target",
		Steps:       []Step{clippyStep(KindCross)},
	}

	clippyNative := TaskDefinition{
		Name:        "clippy-native",
		Description: "Run static analysis for the host",
		Steps:       []Step{clippyStep(KindNative)},
	}

	tidy := TaskDefinition{
		Name:        "tidy",
		Description: "Run static analysis over both cross and native configurations",
		Steps:       concat(clippy.Steps, clippyNative.Steps),
	}

	return NewTaskTable(
		clean,
		build,
		buildNative,
		qemu,
		run,
		test,
		clippy,
		clippyNative,
		tidy,
	)
}

func cargo(kind Kind, useFlags bool, args ...string) Step {
	return Step{
		Kind: kind,
		Pipeline: []Command{{
			Argv:     append([]string{"cargo"}, args...),
			UseFlags: useFlags,
		}},
	}
}

func clippyStep(kind Kind) Step {
	return Step{
		Kind: kind,
		Pipeline: []Command{{
			Argv:     []string{"cargo", "clippy"},
			UseFlags: true,
			Tail:     []string{"--", "-D", "warnings"},
		}},
	}
}

func concat(steps ...[]Step) []Step {
	var out []Step
	for _, s := range steps {
		out = append(out, slices.Clone(s)...)
	}
	return out
}
