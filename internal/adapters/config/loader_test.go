package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.hartos.dev/mach/internal/adapters/config"
	"go.hartos.dev/mach/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(content), 0o600))
	return dir
}

func TestLoader_Defaults(t *testing.T) {
	loader := config.NewLoader(nil)

	ov, err := loader.Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultTriple, ov.Target)
	assert.Equal(t, domain.DefaultBaseFlags(), ov.BaseFlags)
	assert.Empty(t, ov.CrossFlags)
	assert.False(t, ov.Release)
}

func TestLoader_File(t *testing.T) {
	dir := writeConfig(t, `
target: riscv64imac-unknown-none-elf
base-flags: ["-Zbuild-std=core"]
cross-flags: ["--features", "qemu"]
release: true
`)

	loader := config.NewLoader(nil)
	ov, err := loader.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "riscv64imac-unknown-none-elf", ov.Target)
	assert.Equal(t, []string{"-Zbuild-std=core"}, ov.BaseFlags)
	assert.Equal(t, []string{"--features", "qemu"}, ov.CrossFlags)
	assert.True(t, ov.Release)
}

func TestLoader_EnvironmentWinsOverFile(t *testing.T) {
	dir := writeConfig(t, "target: riscv64imac-unknown-none-elf\n")

	loader := config.NewLoader([]string{
		"MACH_TARGET=riscv32i-unknown-none-elf",
		"MACH_CROSS_FLAGS=--verbose --frozen",
	})
	ov, err := loader.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "riscv32i-unknown-none-elf", ov.Target)
	assert.Equal(t, []string{"--verbose", "--frozen"}, ov.CrossFlags)
}

func TestLoader_ReleaseToggle(t *testing.T) {
	t.Run("any non-empty value enables release", func(t *testing.T) {
		loader := config.NewLoader([]string{"MACH_RELEASE=yes"})
		ov, err := loader.Load(t.TempDir())
		require.NoError(t, err)
		assert.True(t, ov.Release)
	})

	t.Run("empty value stays debug", func(t *testing.T) {
		loader := config.NewLoader([]string{"MACH_RELEASE="})
		ov, err := loader.Load(t.TempDir())
		require.NoError(t, err)
		assert.False(t, ov.Release)
	})
}

func TestLoader_BaseFlagsOverrideReplaces(t *testing.T) {
	loader := config.NewLoader([]string{"MACH_BASE_FLAGS=-Zbuild-std=core,alloc"})
	ov, err := loader.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, []string{"-Zbuild-std=core,alloc"}, ov.BaseFlags)
}

func TestLoader_MalformedFile(t *testing.T) {
	dir := writeConfig(t, "target: [not a scalar\n")

	loader := config.NewLoader(nil)
	_, err := loader.Load(dir)
	assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestLoader_UnrecognizedEnvironmentIgnored(t *testing.T) {
	loader := config.NewLoader([]string{"MACH_BOGUS=1", "PATH=/usr/bin"})
	ov, err := loader.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultOverrides(), ov)
}
