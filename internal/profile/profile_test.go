package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goplus/llrecipe/recipe"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
settings:
  arch: armv8
  build_type: Debug
options:
  fPIC: false
deps_dir: packages
index: ../shared/versions.json
`), 0644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, recipe.Settings{Arch: "armv8", BuildType: "Debug"}, p.Settings)
	assert.Equal(t, map[string]bool{"fPIC": false}, p.Options)
	assert.Equal(t, filepath.Join(dir, "packages"), p.DepsDir)
	assert.Equal(t, filepath.Join(dir, "..", "shared", "versions.json"), p.Index)
	assert.Equal(t, path, p.Path())

	host := recipe.Settings{OS: "Linux", Compiler: "gcc", BuildType: "Release", Arch: "x86_64"}
	assert.Equal(t, recipe.Settings{OS: "Linux", Compiler: "gcc", BuildType: "Debug", Arch: "armv8"}, p.Apply(host))
}

func TestLoad_FromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ci.yaml")
	require.NoError(t, os.WriteFile(path, []byte("settings:\n  arch: x86\n"), 0644))
	t.Setenv(EnvVar, path)

	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "x86", p.Settings.Arch)
}

func TestLoad_Missing(t *testing.T) {
	t.Run("explicit", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("default", func(t *testing.T) {
		t.Setenv(EnvVar, "")
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("HOME", t.TempDir())
		t.Setenv("AppData", t.TempDir())

		p, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, recipe.Settings{}, p.Settings)
		assert.Empty(t, p.Options)
	})
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("settings: [arch\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "profile.yaml")
	p := &Profile{Settings: recipe.Settings{OS: "Linux", Arch: "x86_64"}, Options: map[string]bool{"shared": true}}
	require.NoError(t, p.Save(path))
	assert.Equal(t, path, p.Path())

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, p.Settings, got.Settings)
	assert.Equal(t, p.Options, got.Options)
}
