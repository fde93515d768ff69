package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func TestResolve_MarkerAtRoot(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, MarkerFile))

	paths, err := Resolve(root, "")

	require.NoError(t, err)
	require.Equal(t, paths.Root, paths.Base)
	require.Equal(t, filepath.Join(paths.Root, ConfigFileName), paths.ConfigPath)
	require.Equal(t, filepath.Join(paths.Root, "configure.log"), paths.LogPath)
}

func TestResolve_MarkerInTemplateSubdir(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "template", MarkerFile))

	paths, err := Resolve(root, "")

	require.NoError(t, err)
	require.Equal(t, filepath.Join(paths.Root, "template"), paths.Base)
}

func TestResolve_NoMarker_Fails(t *testing.T) {
	_, err := Resolve(t.TempDir(), "")

	require.Error(t, err)
	require.Contains(t, err.Error(), MarkerFile)
}

func TestResolve_ConfigPathPrecedence(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "template", MarkerFile))

	// Neither copy exists: default to the root location.
	paths, err := Resolve(root, "")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(paths.Root, ConfigFileName), paths.ConfigPath)

	// Base copy exists, root copy does not: base wins.
	touch(t, filepath.Join(root, "template", ConfigFileName))
	paths, err = Resolve(root, "")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(paths.Root, "template", ConfigFileName), paths.ConfigPath)

	// Root copy exists: root wins over base.
	touch(t, filepath.Join(root, ConfigFileName))
	paths, err = Resolve(root, "")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(paths.Root, ConfigFileName), paths.ConfigPath)

	// Explicit override wins over everything.
	paths, err = Resolve(root, "/elsewhere/my-config.yaml")
	require.NoError(t, err)
	require.Equal(t, "/elsewhere/my-config.yaml", paths.ConfigPath)
}
