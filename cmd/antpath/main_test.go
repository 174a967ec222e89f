package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antpath/report"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(&out, &errOut, args)

	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	require.Equal(t, "antpath version dev\n", out)
}

func TestRun_TextQuiet(t *testing.T) {
	out, logs, err := execute(t, "run", "--seed", "7", "--workers", "1", "--quiet", "--no-color")
	require.NoError(t, err)

	require.Contains(t, out, "seed=7  nodes=4  ants=50  iterations=50")
	require.Contains(t, out, "best: [0 2 3 1 | 0] cost=4.5 closed=7.5")
	require.NotContains(t, out, "iteration 1\n")
	require.Contains(t, logs, "starting colony")
	require.Contains(t, logs, "seed=7")
}

func TestRun_PrintsEveryIteration(t *testing.T) {
	out, _, err := execute(t, "run", "--seed", "2", "--iterations", "3", "--colony-size", "5", "--no-color")
	require.NoError(t, err)
	for _, want := range []string{"iteration 1\n", "iteration 2\n", "iteration 3\n"} {
		require.Contains(t, out, want)
	}
	require.NotContains(t, out, "iteration 4\n")
}

func TestRun_JSONIsDeterministic(t *testing.T) {
	args := []string{"run", "--seed", "11", "--quiet", "--format", "json", "--aggregation", "normalized"}
	first, _, err := execute(t, args...)
	require.NoError(t, err)
	second, _, err := execute(t, append(args, "--workers", "3")...)
	require.NoError(t, err)

	var a, b report.Summary
	require.NoError(t, json.Unmarshal([]byte(first), &a))
	require.NoError(t, json.Unmarshal([]byte(second), &b))
	require.Equal(t, 2500, a.Total)
	require.Equal(t, "normalized", a.Aggregation)
	require.Equal(t, a.Routes, b.Routes)
	require.Equal(t, a.Pheromone, b.Pheromone)
	require.NotEqual(t, a.RunID, b.RunID)
}

func TestRun_RandomNodes(t *testing.T) {
	out, _, err := execute(t, "run", "--random-nodes", "6", "--seed", "5", "--iterations", "2", "--quiet", "--format", "json")
	require.NoError(t, err)

	var s report.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	require.Equal(t, 6, s.Nodes)
	require.Len(t, s.Best.Route, 6)
}

func TestRun_Errors(t *testing.T) {
	_, _, err := execute(t, "run", "--colony-size", "0", "--quiet")
	require.Error(t, err)
	require.Equal(t, exitConfiguration, exitCode(err))

	_, _, err = execute(t, "run", "--aggregation", "elitist", "--quiet")
	require.Error(t, err)
	require.Equal(t, exitConfiguration, exitCode(err))

	_, _, err = execute(t, "run", "--format", "xml")
	require.Error(t, err)
	require.Equal(t, exitFailure, exitCode(err))

	_, _, err = execute(t, "run", "--random-nodes", "1")
	require.Error(t, err)
	require.Equal(t, exitConfiguration, exitCode(err))
}

func TestRoutes(t *testing.T) {
	out, _, err := execute(t, "routes", "--no-color")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	require.True(t, strings.HasPrefix(lines[1], "0 2 3 1"), lines[1])
}

func TestInitConfigThenRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colony.yaml")

	out, _, err := execute(t, "init-config", path, "--no-color")
	require.NoError(t, err)
	require.Contains(t, out, "wrote "+path)

	_, _, err = execute(t, "init-config", path)
	require.Error(t, err)

	_, _, err = execute(t, "init-config", path, "--force")
	require.NoError(t, err)

	out, _, err = execute(t, "run", "--config", path, "--seed", "3", "--iterations", "4", "--quiet", "--format", "yaml")
	require.NoError(t, err)
	require.Contains(t, out, "nodes: 4")
	require.Contains(t, out, "iterations: 4")
}
