package config

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	Bind(cmd)
	return cmd
}

func TestLoadDefaults(t *testing.T) {
	cmd := newTestCmd()
	c, err := Load(cmd)
	require.NoError(t, err)
	require.Equal(t, "json", c.Format)
	require.False(t, c.Strict)
	require.Empty(t, c.ModelDirs)
}

func TestLoadReadsBoundFlags(t *testing.T) {
	cmd := newTestCmd()
	require.NoError(t, cmd.Flags().Set("strict", "true"))
	require.NoError(t, cmd.Flags().Set("format", "yaml"))
	require.NoError(t, cmd.Flags().Set("model-dir", "a,b"))

	c, err := Load(cmd)
	require.NoError(t, err)
	require.True(t, c.Strict)
	require.Equal(t, "yaml", c.Format)
	require.Equal(t, []string{"a", "b"}, c.ModelDirs)
}
