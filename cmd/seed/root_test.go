package main

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseStoreAfterFailedCommand(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Cleanup(func() { recomputeMode = "rank" })

	rootCmd.SetArgs([]string{"recompute", "--mode", "bogus"})
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown recompute mode")

	// The pre-run hook opened the store and nothing has released it yet.
	require.NotNil(t, conn)
	ctx := recomputeCmd.Context()
	require.NoError(t, ctx.Err())

	require.NoError(t, closeStore())
	assert.Nil(t, conn)
	assert.Nil(t, repos)
	assert.ErrorIs(t, ctx.Err(), context.Canceled)

	require.NoError(t, closeStore())
}
