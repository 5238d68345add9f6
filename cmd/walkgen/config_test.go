package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Layering(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "walkgen.env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"LVWALK_P=0.25\nLVWALK_Q=4\nLVWALK_EPOCHS=3\nLVWALK_GRAPH=from-dotenv.edges\n"), 0o600))

	environ := []string{
		"LVWALK_ENV_FILE=" + envFile,
		"LVWALK_EPOCHS=5", // environment beats dotenv
		"LVWALK_WEIGHTED=true",
		"UNRELATED=1",
	}
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{"-walk-len", "7", "-q", "2"}, &out, environ)
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, 0.25, cfg.P)
	assert.Equal(t, 2.0, cfg.Q, "flags beat environment")
	assert.Equal(t, 5, cfg.Epochs)
	assert.Equal(t, 7, cfg.WalkLen)
	assert.True(t, cfg.Weighted)
	assert.Equal(t, "from-dotenv.edges", cfg.GraphPath)
	assert.Equal(t, "-", cfg.Out)
}

func TestParse_Positional(t *testing.T) {
	cfg, exit, err := Parse([]string{"-format", "adjlist", "g.adj"}, &bytes.Buffer{}, nil)
	require.NoError(t, err)
	require.False(t, exit)
	assert.Equal(t, "g.adj", cfg.GraphPath)
	assert.Equal(t, DefaultConfig().WalkLen, cfg.WalkLen)
}

func TestParse_HelpAndUsage(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{"-h"}, &out, nil)
	assert.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)

	out.Reset()
	_, exit, err = Parse(nil, &out, nil)
	assert.NoError(t, err)
	assert.True(t, exit)
	assert.Contains(t, out.String(), "walkgen [options]")
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]struct {
		args    []string
		environ []string
	}{
		"unknown flag":   {args: []string{"-nope"}},
		"bad format":     {args: []string{"-graph", "g", "-format", "gml"}},
		"bad log level":  {args: []string{"-graph", "g", "-log-level", "loud"}},
		"bad log format": {args: []string{"-graph", "g", "-log-format", "xml"}},
		"both sources":   {args: []string{"-graph", "g", "-synthetic", "cycle:4"}},
		"negative":       {args: []string{"-graph", "g", "-workers", "-1"}},
		"bad env value":  {args: []string{"-graph", "g"}, environ: []string{"LVWALK_EPOCHS=ten"}},
		"missing dotenv": {args: []string{"-graph", "g"}, environ: []string{"LVWALK_ENV_FILE=/does/not/exist"}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := Parse(tc.args, &bytes.Buffer{}, tc.environ)
			require.Error(t, err)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}
