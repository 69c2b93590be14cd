package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Black-And-White-Club/pingpong-scoreboard/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRun_PrintsWiring(t *testing.T) {
	path := writeConfig(t, "service:\n  name: table-1\n  version: v1\n")
	var out bytes.Buffer

	require.NoError(t, run([]string{"-config", path}, &out))

	got := out.String()
	assert.Contains(t, got, "table-1 v1")
	assert.Contains(t, got, "GP16 key 'a' -> p1_sub")
	assert.Contains(t, got, "i2c1 0x3C 128x64 \"Player 2\"")
}

func TestRun_Quiet(t *testing.T) {
	path := writeConfig(t, "log:\n  level: debug\n")
	var out bytes.Buffer
	require.NoError(t, run([]string{"-config", path, "-quiet"}, &out))
	assert.Empty(t, out.String())
}

func TestRun_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		err := run([]string{"-config", filepath.Join(t.TempDir(), "nope.yaml")}, &bytes.Buffer{})
		require.Error(t, err)
	})

	t.Run("bad mapping", func(t *testing.T) {
		path := writeConfig(t, `
inputs:
  - { name: a, pin: 16, player: 1, delta: -1 }
  - { name: b, pin: 17, player: 1, delta: 1 }
  - { name: c, pin: 18, player: 3, delta: -1 }
  - { name: d, pin: 19, player: 2, delta: 1 }
`)
		err := run([]string{"-config", path}, &bytes.Buffer{})
		require.Error(t, err)
		assert.True(t, config.IsMappingError(err))
	})

	t.Run("unknown flag", func(t *testing.T) {
		require.Error(t, run([]string{"-guild", "x"}, &bytes.Buffer{}))
	})
}
