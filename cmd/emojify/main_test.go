package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/npillmayer/emojify"
	"github.com/npillmayer/emojify/internal/fixture"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(trace2go.Teardown)
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--dataset", fixture.Path("annotations.json")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestTextCommand(t *testing.T) {
	out, err := run(t, "", "text", "🌅☕")
	require.NoError(t, err)
	assert.Equal(t, "sunrise hot beverage\n", out)
}

func TestEmojiCommandFromStdin(t *testing.T) {
	out, err := run(t, "good morning\npizza and coffee\n", "emoji")
	require.NoError(t, err)
	assert.Equal(t, "🌅\n🍕☕\n", out)
}

func TestExplainCommand(t *testing.T) {
	out, err := run(t, "", "explain", "--json", "pizza!")
	require.NoError(t, err)
	var segments []emojify.Segment
	require.NoError(t, json.Unmarshal([]byte(out), &segments))
	require.Len(t, segments, 2)
	assert.Equal(t, "🍕", segments[0].Emoji)
	assert.False(t, segments[1].Matched)
}

func TestStatsCommand(t *testing.T) {
	out, err := run(t, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "emojis:")
	assert.Contains(t, out, "matcher:")
	assert.Contains(t, out, "bucket")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "emojify dev"))
}

func TestMissingDataset(t *testing.T) {
	t.Cleanup(trace2go.Teardown)
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--dataset", "/does/not/exist.json", "text", "🍕"})
	assert.Error(t, cmd.Execute())
}
