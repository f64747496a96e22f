package cmd_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trknhr/postflow/cmd"
)

func runRequest(t *testing.T, args ...string) string {
	t.Helper()

	c := cmd.NewRequestCmd()
	var buf bytes.Buffer
	c.SetOut(&buf)
	c.SetErr(&buf)
	c.SetArgs(args)

	require.NoError(t, c.Execute())
	return buf.String()
}

func TestRequestCmd_Get(t *testing.T) {
	out := runRequest(t, "get")
	assert.Equal(t, "get: loading\nget: finished(Get Post Response)\n", out)
}

func TestRequestCmd_Send(t *testing.T) {
	out := runRequest(t, "send", "--text", "hello")
	assert.Equal(t, "send: loading\nsend: finished(10)\n", out)
}

func TestRequestCmd_UnknownKind(t *testing.T) {
	c := cmd.NewRequestCmd()
	c.SetOut(&bytes.Buffer{})
	c.SetErr(&bytes.Buffer{})
	c.SetArgs([]string{"delete"})

	err := c.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown request kind")
}
