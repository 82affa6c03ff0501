package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TsubasaBE/go-lexnum"
)

// execute runs the command line with the given stdin and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), err
}

func TestParseArgs(t *testing.T) {
	out, err := execute(t, "", "parse", "1", "inf", " 6 . 2 ", "0. 111")
	require.NoError(t, err)
	assert.Equal(t, "\"1\"\t1\n\"inf\"\tinf\n\" 6 . 2 \"\t6\n\"0. 111\"\t0\n", out)
}

func TestParseInt(t *testing.T) {
	out, err := execute(t, "", "parse", "--int", "6.0e-10", ".0", "0.")
	assert.Error(t, err)
	assert.Equal(t, "\"6.0e-10\"\t6\n\".0\"\tinvalid\n\"0.\"\t0\n", out)
}

func TestParseStdin(t *testing.T) {
	out, err := execute(t, "2.5\nnan(ind)!\n", "parse")
	require.NoError(t, err)
	assert.Equal(t, "\"2.5\"\t2.5\n\"nan(ind)!\"\tnan\n", out)
}

func TestParseMinDigits(t *testing.T) {
	out, err := execute(t, "", "parse", "--min-digits", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "\"3\"\t3.00\n", out)
}

func TestParseConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexnum.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kind: int\n"), 0o644))

	out, err := execute(t, "", "--config", path, "parse", "3.9")
	require.NoError(t, err)
	assert.Equal(t, "\"3.9\"\t3\n", out)
}

func TestFormat(t *testing.T) {
	out, err := execute(t, "", "format", "--", "-0.0", "100.101", "-100")
	require.NoError(t, err)
	assert.Equal(t, "0\n100.101\n-100\n", out)

	out, err = execute(t, "", "format", "--pattern", "0.0000", "100")
	require.NoError(t, err)
	assert.Equal(t, "100.0000\n", out)

	out, err = execute(t, "", "format", "--min-digits", "1", "100.1", "7")
	require.NoError(t, err)
	assert.Equal(t, "100.1\n7.0\n", out)
}

func TestFormatInvalid(t *testing.T) {
	_, err := execute(t, "", "format", "abc")
	assert.True(t, errors.IsNotValid(err), "got %v", err)

	_, err = execute(t, "", "format")
	assert.Error(t, err)

	_, err = execute(t, "", "format", "--min-digits", "-1", "1")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version:")
	assert.Contains(t, out, lexnum.Version)
}
