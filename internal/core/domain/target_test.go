package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.hartos.dev/mach/internal/core/domain"
)

func TestTarget_Validate(t *testing.T) {
	t.Run("cross target carries rebuild set", func(t *testing.T) {
		target := domain.CrossTarget("riscv64imac-unknown-none-elf")
		require.NoError(t, target.Validate())
		assert.NotEmpty(t, target.RebuildStd)
	})

	t.Run("native target carries none", func(t *testing.T) {
		target := domain.NativeTarget()
		require.NoError(t, target.Validate())
		assert.Empty(t, target.RebuildStd)
	})

	t.Run("triple without rebuild set is invalid", func(t *testing.T) {
		target := domain.Target{Name: "bad", Triple: "riscv64gc-unknown-none-elf"}
		assert.ErrorIs(t, target.Validate(), domain.ErrInvalidTarget)
	})

	t.Run("rebuild set without triple is invalid", func(t *testing.T) {
		target := domain.Target{Name: "bad", RebuildStd: []string{"core"}}
		assert.ErrorIs(t, target.Validate(), domain.ErrInvalidTarget)
	})
}

func TestResolveTarget(t *testing.T) {
	t.Run("default triple without override", func(t *testing.T) {
		target := domain.ResolveTarget(domain.Overrides{})
		assert.Equal(t, domain.DefaultTriple, target.Triple)
	})

	t.Run("override replaces triple verbatim", func(t *testing.T) {
		target := domain.ResolveTarget(domain.Overrides{Target: "riscv32i-unknown-none-elf"})
		assert.Equal(t, "riscv32i-unknown-none-elf", target.Triple)
		require.NoError(t, target.Validate())
	})
}

func TestResolveProfile(t *testing.T) {
	assert.Equal(t, domain.Debug, domain.ResolveProfile(domain.Overrides{}))
	assert.Equal(t, domain.Release, domain.ResolveProfile(domain.Overrides{Release: true}))
	assert.Equal(t, "debug", domain.Debug.String())
	assert.Equal(t, "release", domain.Release.Dir())
}
