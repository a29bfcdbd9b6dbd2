package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"chucknorris/internal/domain"
)

type fixedSource int

func (f fixedSource) IntN(n int) int { return int(f) % n }

func run(t *testing.T, rng domain.RandomSource, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(rng)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_DefaultNameRandom(t *testing.T) {
	out, _, err := run(t, fixedSource(2))
	require.NoError(t, err)
	assert.Equal(t, "Chuck Norris doesn't call the wrong number. You answer the wrong phone.\n", out)
}

func TestRoot_NameAndNumber(t *testing.T) {
	out, _, err := run(t, nil, "Bob", "-n", "0")
	require.NoError(t, err)
	assert.Equal(t, "When Alexander Bell invented the telephone, he had three missed calls from Bob.\n", out)
}

func TestRoot_NegativeNumberWraps(t *testing.T) {
	last, _, err := run(t, nil, "--number", "6")
	require.NoError(t, err)
	wrapped, _, err := run(t, nil, "--number", "-1")
	require.NoError(t, err)
	assert.Equal(t, last, wrapped)
	assert.Equal(t, "Chuck Norris won American Idol using only sign language.\n", wrapped)
}

func TestRoot_EmptyName(t *testing.T) {
	out, _, err := run(t, nil, "", "-n", "4")
	require.NoError(t, err)
	assert.Equal(t, "Ghosts sit around the campfire and tell  stories.\n", out)
}

func TestRoot_NonIntegerNumberIsUsageError(t *testing.T) {
	out, errOut, err := run(t, nil, "-n", "abc")
	require.Error(t, err)
	assert.Contains(t, errOut, "invalid argument")
	assert.Contains(t, out, "Usage:")
}

func TestRoot_TooManyArgs(t *testing.T) {
	_, _, err := run(t, nil, "Bob", "Alice")
	require.Error(t, err)
}

func TestRoot_UnknownFormat(t *testing.T) {
	out, errOut, err := run(t, nil, "-o", "xml")
	require.ErrorIs(t, err, domain.ErrUnknownFormat)
	assert.NotContains(t, out, "Usage:")
	assert.Contains(t, errOut, "unknown output format")
}

func TestRoot_JSON(t *testing.T) {
	out, _, err := run(t, nil, "Bob", "-n", "9", "-o", "json")
	require.NoError(t, err)

	var got struct {
		Index       int    `json:"index"`
		Fingerprint string `json:"fingerprint"`
		Quip        string `json:"quip"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 2, got.Index)
	assert.Len(t, got.Fingerprint, 12)
	assert.Equal(t, "Bob doesn't call the wrong number. You answer the wrong phone.", got.Quip)
}

func TestRoot_AllText(t *testing.T) {
	out, _, err := run(t, nil, "Bob", "--all")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 7)
	for i, line := range lines {
		fields := strings.SplitN(line, " ", 3)
		require.Len(t, fields, 3, "line %d", i)
		assert.Len(t, fields[1], 12, "line %d", i)
		assert.Contains(t, fields[2], "Bob", "line %d", i)
	}
	assert.True(t, strings.HasPrefix(lines[0], "0 "))
	assert.True(t, strings.HasPrefix(lines[6], "6 "))
}

func TestRoot_AllYAML(t *testing.T) {
	out, _, err := run(t, nil, "Bob", "-a", "-o", "yaml")
	require.NoError(t, err)

	var got []struct {
		Index       int    `yaml:"index"`
		Fingerprint string `yaml:"fingerprint"`
		Quip        string `yaml:"quip"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 7)
	assert.Equal(t, 6, got[6].Index)
	assert.Equal(t, "Bob won American Idol using only sign language.", got[6].Quip)
}

func TestRoot_DebugLogsToStderr(t *testing.T) {
	out, errOut, err := run(t, nil, "-n", "1", "--log-level", "debug")
	require.NoError(t, err)
	assert.NotContains(t, out, "picked")
	assert.Contains(t, errOut, "picked indexed quip")
}

func TestRoot_Version(t *testing.T) {
	out, _, err := run(t, nil, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}

func TestRoot_UndocumentedLogLevelRejected(t *testing.T) {
	for _, level := range []string{"", "trace", "disabled"} {
		_, errOut, err := run(t, nil, "--log-level", level)
		require.ErrorIs(t, err, domain.ErrUnknownLogLevel, "level %q", level)
		assert.Contains(t, errOut, "unknown log level")
	}
}
