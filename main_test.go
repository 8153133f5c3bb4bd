//go:build !js && !wasm

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestDumpCommand(t *testing.T) {
	out, _, err := execute(t, "(integer 4 (+ 1 2))", "dump", "--color", "never", "-")
	require.NoError(t, err)
	require.Equal(t, "(Integer(4) (1+2))\n", out)
}

func TestFoldCommand(t *testing.T) {
	out, diags, err := execute(t, "(integer 1 (neg -128))", "fold", "--color", "never", "-")
	require.NoError(t, err)
	require.Equal(t, "(Integer(1) -128)\n", out)
	require.Contains(t, diags, "warning[W0101]: integer negation overflowed")

	out, diags, err = execute(t, "(integer 1 (neg -128))", "fold", "--no-diagnostics", "-")
	require.NoError(t, err)
	require.Equal(t, "(Integer(1) -128)\n", out)
	require.Empty(t, diags)

	out, _, err = execute(t, "(integer 4 (+ 1 2))", "fold", "--no-fold", "-")
	require.NoError(t, err)
	require.Equal(t, "(Integer(4) (1+2))\n", out)
}

func TestLenCommand(t *testing.T) {
	out, _, err := execute(t, `(character 1 (// "ab" "c"))`, "len", "-")
	require.NoError(t, err)
	require.Equal(t, "3\n", out)
}

func TestFailureExitsWithError(t *testing.T) {
	_, diags, err := execute(t, "(integer 5 1)", "dump", "--color", "never", "-")
	require.ErrorIs(t, err, errFailed)
	require.Contains(t, diags, "error[R0006]")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "f18expr.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("fold:\n  enabled: false\noutput:\n  color: never\n"), 0o644))
	src := filepath.Join(dir, "e.f18x")
	require.NoError(t, os.WriteFile(src, []byte("(integer 4 (* 6 7))\n"), 0o644))

	out, _, err := execute(t, "", "fold", "--config", cfgPath, src)
	require.NoError(t, err)
	require.Equal(t, "(Integer(4) (6*7))\n", out)

	_, _, err = execute(t, "", "dump", "--format", "pdf", src)
	require.ErrorContains(t, err, "output.format")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "--version")
	require.NoError(t, err)
	require.Equal(t, "f18expr version "+version+"\n", out)
}
