package runner

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Success(t *testing.T) {
	r := New(true, nil)

	result, err := r.Run(context.Background(), []string{"echo", "hello"}, Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "hello\n", result.Output)
	assert.False(t, result.Truncated)
}

func TestRun_NonZeroExit(t *testing.T) {
	r := New(true, nil)

	result, err := r.Run(context.Background(), []string{"/bin/sh", "-c", "echo oops; exit 3"}, Options{})
	require.Error(t, err)

	var cmdErr *CommandFailedError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, 3, cmdErr.ExitCode)
	assert.Contains(t, cmdErr.Output, "oops")
	assert.Equal(t, 3, result.ExitCode)
}

func TestRun_AllowFailure(t *testing.T) {
	r := New(true, nil)

	result, err := r.Run(context.Background(), []string{"/bin/sh", "-c", "exit 7"}, Options{
		AllowFailure: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, result.ExitCode)
}

func TestRun_MergesStderr(t *testing.T) {
	r := New(true, nil)

	result, err := r.Run(context.Background(), []string{"/bin/sh", "-c", "echo out; echo err 1>&2"}, Options{})
	require.NoError(t, err)
	assert.Contains(t, result.Output, "out")
	assert.Contains(t, result.Output, "err")
}

func TestRun_Stream(t *testing.T) {
	r := New(true, nil)

	var lines []string
	_, err := r.Run(context.Background(), []string{"/bin/sh", "-c", "echo one; echo two"}, Options{
		Stream: func(line string) { lines = append(lines, line) },
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, lines)
}

func TestRun_Stdin(t *testing.T) {
	r := New(true, nil)

	result, err := r.Run(context.Background(), []string{"cat"}, Options{
		Stdin: strings.NewReader("piped input\n"),
	})
	require.NoError(t, err)
	assert.Equal(t, "piped input\n", result.Output)
}

func TestRun_Timeout(t *testing.T) {
	r := New(true, nil)

	start := time.Now()
	_, err := r.Run(context.Background(), []string{"sleep", "10"}, Options{
		Timeout: 100 * time.Millisecond,
	})
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestRun_OutputCap(t *testing.T) {
	r := New(true, nil)

	result, err := r.Run(context.Background(), []string{"/bin/sh", "-c", "yes x | head -c 4096"}, Options{
		MaxOutputBytes: 128,
	})
	require.NoError(t, err)
	assert.True(t, result.Truncated)
	assert.LessOrEqual(t, len(result.Output), 128)
}

func TestRun_DryRun(t *testing.T) {
	r := New(false, nil)
	assert.False(t, r.Executing())

	result, err := r.Run(context.Background(), []string{"definitely-not-a-binary"}, Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.Empty(t, result.Output)
}

func TestRun_EmptyCommand(t *testing.T) {
	r := New(true, nil)

	_, err := r.Run(context.Background(), nil, Options{})
	require.Error(t, err)
}
