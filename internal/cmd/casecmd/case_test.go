package casecmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vomodo/microtools/internal/cmd/cmdutil"
	"github.com/vomodo/microtools/internal/config"
)

func newTestOptions(t *testing.T, stdin string) (*caseOptions, *bytes.Buffer) {
	t.Helper()
	for _, v := range config.EnvVars {
		t.Setenv(v, "")
	}

	var stdout bytes.Buffer
	return &caseOptions{
		GlobalOptions: cmdutil.GlobalOptions{
			ConfigPath: filepath.Join(t.TempDir(), "config.yml"),
			NoColor:    true,
		},
		stdin:  strings.NewReader(stdin),
		stdout: &stdout,
		stderr: &bytes.Buffer{},
	}, &stdout
}

func TestRunCase_Args(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"upper", []string{"upper", "hello", "world"}, "HELLO WORLD\n"},
		{"lower", []string{"lower", "Hello World"}, "hello world\n"},
		{"title", []string{"title", "hello wORLD"}, "Hello World\n"},
		{"camel", []string{"camel", "hello world-wide"}, "helloWorldWide\n"},
		{"snake", []string{"snake", "helloWorld foo"}, "hello_world_foo\n"},
		{"mode is case-insensitive", []string{"SNAKE", "a b"}, "a_b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, stdout := newTestOptions(t, "")
			require.NoError(t, runCase(tt.args, opts))
			assert.Equal(t, tt.want, stdout.String())
		})
	}
}

func TestRunCase_Stdin(t *testing.T) {
	opts, stdout := newTestOptions(t, "first name\nlast name\n")

	require.NoError(t, runCase([]string{"camel"}, opts))
	assert.Equal(t, "firstName\nlastName\n", stdout.String())
}

func TestRunCase_StdinLongLine(t *testing.T) {
	line := strings.Repeat("ab ", 100_000)
	opts, stdout := newTestOptions(t, line+"\n")

	require.NoError(t, runCase([]string{"upper"}, opts))
	assert.Equal(t, strings.ToUpper(line)+"\n", stdout.String())
}

func TestRunCase_UnknownMode(t *testing.T) {
	opts, stdout := newTestOptions(t, "")

	err := runCase([]string{"snak", "x"}, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown case mode "snak"`)
	assert.Contains(t, err.Error(), `did you mean "snake"`)
	assert.Empty(t, stdout.String())
}

func TestRunCase_JSON(t *testing.T) {
	opts, stdout := newTestOptions(t, "")
	opts.Output = "json"

	require.NoError(t, runCase([]string{"upper", "abc"}, opts))

	var results []caseResult
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &results))
	assert.Equal(t, []caseResult{{Mode: "upper", Input: "abc", Output: "ABC"}}, results)
}

func TestRunModes(t *testing.T) {
	for _, v := range config.EnvVars {
		t.Setenv(v, "")
	}
	var stdout bytes.Buffer
	g := cmdutil.GlobalOptions{
		ConfigPath: filepath.Join(t.TempDir(), "config.yml"),
		Output:     "plain",
		NoColor:    true,
	}

	require.NoError(t, runModes(g, &stdout, &bytes.Buffer{}))
	assert.Equal(t, strings.Join([]string{
		"upper\tHELLO WORLD EXAMPLE",
		"lower\thello world example",
		"title\tHello World Example",
		"camel\thelloWorldExample",
		"snake\thello_world_example",
	}, "\n")+"\n", stdout.String())
}

func TestNewCmdCase_RequiresMode(t *testing.T) {
	cmd := NewCmdCase()
	cmd.SetArgs([]string{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}
