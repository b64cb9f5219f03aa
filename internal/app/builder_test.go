package app_test

import (
	"context"
	"os"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.hartos.dev/mach/internal/app"
	_ "go.hartos.dev/mach/internal/wiring" // Register providers
)

func TestAppWiring(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	defer func() {
		errChdir := os.Chdir(cwd)
		require.NoError(t, errChdir)
	}()

	tmpDir := t.TempDir()
	err = os.Chdir(tmpDir)
	require.NoError(t, err)

	// Verify that the application graph can be constructed
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
}
