package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	root := Root()
	out := &bytes.Buffer{}
	root.SetIn(strings.NewReader(input))
	root.SetOut(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestUciCommand(t *testing.T) {
	for _, args := range [][]string{{}, {"uci"}} {
		out, err := execute(t, "uci\nposition startpos\ngo depth 1\nquit\n", args...)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 4, out)
		assert.Equal(t, "uciok", lines[2])
		assert.True(t, strings.HasPrefix(lines[3], "bestmove "), lines[3])
	}
}

func TestBenchCommand(t *testing.T) {
	out, err := execute(t, "", "bench", "--suite", "mates", "--depth", "1", "--quiet", "-j", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "back rank")
	assert.Contains(t, out, "solved 4/4")

	_, err = execute(t, "", "bench", "--suite", "puzzles")
	assert.ErrorContains(t, err, "unknown suite")
}
