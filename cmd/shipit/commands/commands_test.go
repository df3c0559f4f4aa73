package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shipit/cmd/shipit/commands"
)

func TestCLI_VersionCommand(t *testing.T) {
	t.Parallel()

	cli := commands.New(nil)
	cli.SetArgs([]string{"version"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestCLI_UnknownCommand(t *testing.T) {
	t.Parallel()

	cli := commands.New(nil)
	cli.SetArgs([]string{"frobnicate"})
	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestCLI_HelpWithoutArgs(t *testing.T) {
	t.Parallel()

	cli := commands.New(nil)
	cli.SetArgs([]string{"--help"})
	require.NoError(t, cli.Execute(context.Background()))
}
