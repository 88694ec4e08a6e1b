package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A single state chasing the right end of the tape: never halts, so the run
// only terminates when the step limit kicks in.
const loopingSpec = "1 1\n_\n0 _ _ d 0\n1\n_\n"

func writeLoopingSpec(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "loop.txt")
	require.NoError(t, os.WriteFile(path, []byte(loopingSpec), 0644))
	return path
}

func TestRun_StepLimitFlag(t *testing.T) {
	rootCmd.SetArgs([]string{"run", writeLoopingSpec(t), "--step-limit", "5", "--no-color"})
	assert.NoError(t, rootCmd.Execute())
}

// The bare form 'tapir <file>' must accept the same flags as 'tapir run <file>'.
func TestRun_DefaultCommandStepLimitFlag(t *testing.T) {
	rootCmd.SetArgs([]string{writeLoopingSpec(t), "--step-limit", "5", "--no-color"})
	assert.NoError(t, rootCmd.Execute())
}
