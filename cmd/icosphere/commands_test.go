package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/icosphere/internal/config"
)

func testConfig(depth int) *config.Config {
	cfg := config.Default()
	cfg.Sphere.Color = &[3]float32{0.1, 0.5, 0.9}
	cfg.Sphere.Center = [3]float32{2, 0, 0}
	cfg.Generation.Depth = depth
	return cfg
}

func TestCmdInfo(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, cmdInfo(&out, testConfig(1)))

	assert.Contains(t, out.String(), "Faces:        80")
	assert.Contains(t, out.String(), "Depth:        1")
}

func TestCmdInfoPlacement(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, cmdInfo(&out, testConfig(1)))
	assert.NotContains(t, out.String(), "Placed:")

	cfg := testConfig(1)
	cfg.Placement.Rotate = [3]float32{0, 0, 45}
	cfg.Placement.Scale = 2

	out.Reset()
	require.NoError(t, cmdInfo(&out, cfg))
	assert.Contains(t, out.String(), "Placed:")
	assert.Contains(t, out.String(), "scale 2")
}

func TestCmdCheck(t *testing.T) {
	for _, workers := range []int{1, 4} {
		cfg := testConfig(3)
		cfg.Generation.Workers = workers

		var out bytes.Buffer
		require.NoError(t, cmdCheck(&out, cfg), out.String())
		assert.NotContains(t, out.String(), "FAIL")
		assert.Equal(t, 4, strings.Count(out.String(), "ok "))
	}
}

func TestCmdCheckInvalidConfig(t *testing.T) {
	cfg := testConfig(1)
	cfg.Sphere.Radius = 0

	var out bytes.Buffer
	assert.Error(t, cmdCheck(&out, cfg))
}

func TestCmdConfig(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, cmdConfig(&out, testConfig(2)))

	assert.Contains(t, out.String(), "depth: 2")
	assert.Contains(t, out.String(), "shade_difference: 0.2")
}

func TestCmdSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "icosphere.yaml")

	var out bytes.Buffer
	require.NoError(t, cmdSave(&out, testConfig(2), []string{path}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "depth: 2")
	assert.Contains(t, out.String(), path)
}

func TestCmdSaveDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("APPDATA", dir)

	var out bytes.Buffer
	require.NoError(t, cmdSave(&out, testConfig(2), nil))

	path := config.DefaultPath()
	assert.Equal(t, "config.yaml", filepath.Base(path))
	assert.Equal(t, "Saved config to "+path+"\n", out.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "depth: 2")
}
