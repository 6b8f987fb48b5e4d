package commands

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheck_Symmetrical(t *testing.T) {
	out, err := run(t, "", "check", "(-5;-4),(1;9),(7;-4),(-6;4),(8;4),(-5;-4)")
	require.NoError(t, err)
	assert.Contains(t, out, "POINTS: (-5;-4),(1;9),(7;-4),(-6;4),(8;4),(-5;-4)")
	assert.Contains(t, out, ">> SYMMETRICAL")
	assert.Contains(t, out, "Axis: x=1")
	assert.NotContains(t, out, "Stored:")
}

func TestCheck_NotSymmetricalExitCode(t *testing.T) {
	out, err := run(t, "", "check", "--exit-code", "(2;4),(2;0)", "(-5;-4),(1;9)")
	assert.Contains(t, out, ">> SYMMETRICAL")
	assert.Contains(t, out, ">> NOT SYMMETRICAL")

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "got %v", err)
	assert.Equal(t, 2, exitErr.Code)
}

func TestCheck_NotSymmetricalDefaultsToSuccess(t *testing.T) {
	_, err := run(t, "", "check", "(-5;-4),(1;9)")
	assert.NoError(t, err)
}

func TestCheck_Stdin(t *testing.T) {
	out, err := run(t, "(0;0),(2;0)\n\n(0;0),(1;0)\n", "check", "--stdin")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, ">> SYMMETRICAL"))
	assert.Equal(t, 1, strings.Count(out, ">> NOT SYMMETRICAL"))
}

func TestCheck_UsageErrors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{"no points", "", []string{"check"}},
		{"bad points", "", []string{"check", "(1;x)"}},
		{"stdin and args", "(0;0)", []string{"check", "--stdin", "(0;0)"}},
		{"empty stdin", "\n", []string{"check", "--stdin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.stdin, tt.args...)
			var usageErr *UsageError
			assert.True(t, errors.As(err, &usageErr), "got %v", err)
		})
	}
}

func TestCheckShowForget_WithFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "checks.json")

	out, err := run(t, "", "check", "--file", file, "--label", "batch", "(-5;-4),(1;-4),(7;-4)", "(-5;-4),(1;9)")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "Stored: v1:"))

	out, err = run(t, "", "show", "--file", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Total records: 2")
	assert.Contains(t, out, "Label: batch")

	out, err = run(t, "", "show", "--file", file, "--symmetrical", "--format", "compact")
	require.NoError(t, err)
	assert.Contains(t, out, "Total records: 1")
	assert.Contains(t, out, "x=1")

	id, err := run(t, "", "id", "(1;9),(-5;-4)")
	require.NoError(t, err)
	id = strings.TrimSpace(id)

	out, err = run(t, "", "forget", "--file", file, id)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted: "+id)

	out, err = run(t, "", "show", "--file", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Total records: 1")

	_, err = run(t, "", "forget", "--file", file, id)
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "got %v", err)
	assert.Equal(t, 1, exitErr.Code)
}

func TestShow_RequiresPersistence(t *testing.T) {
	_, err := run(t, "", "show")
	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr), "got %v", err)
}

func TestShow_ConflictingVerdictFlags(t *testing.T) {
	file := filepath.Join(t.TempDir(), "checks.json")
	_, err := run(t, "", "show", "--file", file, "--symmetrical", "--asymmetrical")
	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr), "got %v", err)
}

func TestSamples(t *testing.T) {
	out, err := run(t, "", "samples")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, ">> SYMMETRICAL"))
	assert.Equal(t, 3, strings.Count(out, ">> NOT SYMMETRICAL"))
	assert.NotContains(t, out, "!! expected")
}

func TestID_OrderInvariant(t *testing.T) {
	a, err := run(t, "", "id", "(0;0),(2;0),(0;0)")
	require.NoError(t, err)
	b, err := run(t, "", "id", "(2,0) (0,0)")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", truncateString("short", 10))
	assert.Equal(t, "abcd...", truncateString("abcdefghij", 7))
	assert.Equal(t, "ab", truncateString("abcdef", 2))
}
