package cli

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NO t.Parallel() because of shared command state.
func TestVersionCommand_Plain(t *testing.T) {
	defer func() {
		versionPlain = false
		rootCmd.SetOut(nil)
	}()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version", "--plain"})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, Version+"\n", out.String(), "plain output is just the version string")
}

func TestVersionCommand_Full(t *testing.T) {
	defer func() {
		versionPlain = false
		rootCmd.SetOut(nil)
	}()
	versionPlain = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "pushover "+Version)
	assert.Contains(t, out.String(), "commit: "+Commit)
	assert.Contains(t, out.String(), "go: "+runtime.Version())
	assert.Contains(t, out.String(), "platform: "+runtime.GOOS)
}
