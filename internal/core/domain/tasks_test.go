package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.hartos.dev/mach/internal/core/domain"
)

func TestBuiltin(t *testing.T) {
	table, err := domain.Builtin()
	require.NoError(t, err)

	t.Run("documented surface", func(t *testing.T) {
		entries := domain.Catalog(table)
		var names []string
		for _, e := range entries {
			names = append(names, e.Name)
		}
		assert.Equal(t, []string{
			"build",
			"build-native",
			"clean",
			"clippy",
			"clippy-native",
			"run",
			"test",
			"tidy",
		}, names)
	})

	t.Run("qemu is a hidden building block", func(t *testing.T) {
		def, ok := table.Lookup("qemu")
		require.True(t, ok)
		assert.Empty(t, def.Description)
	})

	t.Run("tidy concatenates both clippy configurations", func(t *testing.T) {
		tidy, ok := table.Lookup("tidy")
		require.True(t, ok)
		clippy, _ := table.Lookup("clippy")
		clippyNative, _ := table.Lookup("clippy-native")

		expected := append(append([]domain.Step{}, clippy.Steps...), clippyNative.Steps...)
		assert.Equal(t, expected, tidy.Steps)
	})

	t.Run("run concatenates build and qemu", func(t *testing.T) {
		run, ok := table.Lookup("run")
		require.True(t, ok)
		build, _ := table.Lookup("build")
		qemu, _ := table.Lookup("qemu")

		expected := append(append([]domain.Step{}, build.Steps...), qemu.Steps...)
		assert.Equal(t, expected, run.Steps)
	})

	t.Run("build is cross and build-native is native", func(t *testing.T) {
		build, _ := table.Lookup("build")
		require.Len(t, build.Steps, 1)
		assert.Equal(t, domain.KindCross, build.Steps[0].Kind)
		assert.True(t, build.Steps[0].Pipeline[0].UseFlags)

		native, _ := table.Lookup("build-native")
		require.Len(t, native.Steps, 1)
		assert.Equal(t, domain.KindNative, native.Steps[0].Kind)
	})

	t.Run("clean takes no composed flags", func(t *testing.T) {
		clean, _ := table.Lookup("clean")
		require.Len(t, clean.Steps, 1)
		assert.False(t, clean.Steps[0].Pipeline[0].UseFlags)
	})

	t.Run("test includes documentation tests", func(t *testing.T) {
		test, _ := table.Lookup("test")
		require.Len(t, test.Steps, 2)
		assert.Equal(t, []string{"cargo", "test"}, test.Steps[0].Pipeline[0].Argv)
		assert.Equal(t, []string{"cargo", "test", "--doc"}, test.Steps[1].Pipeline[0].Argv)
	})

	t.Run("clippy denies warnings after passthrough", func(t *testing.T) {
		clippy, _ := table.Lookup("clippy")
		assert.Equal(t, []string{"--", "-D", "warnings"}, clippy.Steps[0].Pipeline[0].Tail)
	})
}
