package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fractalqb/rcut"
)

func run(t *testing.T, input string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("RCUT_LOG_FORMAT", "json")
	cmd := newCutCmd()
	var out, errOut bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCut_inputOutput(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		input string
		want  string
	}{
		{"simple1", []string{"-d,", "-f2"}, "a,b,c\nd,e,f", "b\ne\n"},
		{"simple2", []string{"-z", "-b=2,2,2"}, "\xff\xfe\xfd\x00abc\x00", "\xfe\xfe\xfe\x00bbb\x00"},
		{"simple3", []string{"--complement", "-f", "2,4"}, "a\t \tb   c\td\n", "a\tc\n"},
		{"widechar", []string{"-c", "2"}, "💩😀💩", "😀\n"},
		{"reverse", []string{"-b4-2"}, "abcde\n", "dcb\n"},
		{"only delimited",
			[]string{"--only-delimited", "-d", "banana", "-f-", "-j "},
			"abananabbananac\na b c d\nqbananarbanana",
			"a b c\nq r \n"},
		{"all reversed", []string{"-f~", "-d", " "}, "a b c\n", "c b a\n"},
		{"open end", []string{"-t", "-f", "-2"}, "a\tb\tc\n", "a\tb\n"},
		{"nul delimiter", []string{"-Z", "-f2", "-j", ","}, "a\x00b\n", "b\n"},
		{"empty joiner", []string{"-d,", "-f1,3", "-j", ""}, "a,b,c\n", "ac\n"},
		{"graphemes", []string{"-gc", "2"}, "xe\u0301y\n", "e\u0301\n"},
		{"stdin dash", []string{"-b1", "-"}, "xy\n", "x\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, _, err := run(t, test.input, test.args...)
			require.NoError(t, err)
			assert.Equal(t, test.want, out)
		})
	}
}

func TestCut_configErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no mode", []string{"-d,"}},
		{"two modes", []string{"-f1", "-b1"}},
		{"bad range", []string{"-f", "1,x"}},
		{"zero position", []string{"-b0"}},
		{"empty delimiter", []string{"-d", "", "-f1"}},
		{"two delimiters", []string{"-d,", "-t", "-f1"}},
		{"only delimited bytes", []string{"-s", "-b1"}},
		{"graphemes fields", []string{"-g", "-f1"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, _, err := run(t, "a,b\n", test.args...)
			require.Error(t, err)
			assert.Empty(t, out, "no output before configuration error")
		})
	}
	t.Run("range error type", func(t *testing.T) {
		_, _, err := run(t, "", "-f", "3,-,x-2")
		var rerr *rcut.RangeError
		require.True(t, errors.As(err, &rerr), "error %v", err)
		assert.Equal(t, "x-2", rerr.Token)
	})
}

func TestCut_skipDiagnostics(t *testing.T) {
	out, errOut, err := run(t, "a b\n\xff c\nd e\n", "-f2")
	require.NoError(t, err)
	assert.Equal(t, "b\ne\n", out)
	assert.Contains(t, errOut, `"record":2`)
	assert.Contains(t, errOut, `"input":"-"`)
	assert.Contains(t, errOut, "invalid UTF-8")
}

func TestCut_files(t *testing.T) {
	dir := t.TempDir()
	f1 := filepath.Join(dir, "one.txt")
	f2 := filepath.Join(dir, "two.txt")
	require.NoError(t, os.WriteFile(f1, []byte("1:a\n2:b\n"), 0o600))
	require.NoError(t, os.WriteFile(f2, []byte("3:c"), 0o600))

	out, _, err := run(t, "0:z\n", "-d:", "-f2", f1, "-", f2)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nz\nc\n", out)

	_, _, err = run(t, "", "-d:", "-f2", filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCut_envFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "rcut.env")
	require.NoError(t, os.WriteFile(envFile, []byte("RCUT_MAX_RECORD=4\n"), 0o600))
	t.Setenv("RCUT_MAX_RECORD", "")
	os.Unsetenv("RCUT_MAX_RECORD")

	out, _, err := run(t, "abcd\nabcdefg\n", "--env-file", envFile, "-b1")
	assert.ErrorContains(t, err, "token too long")
	assert.Equal(t, "a\n", out)
}

func TestCut_version(t *testing.T) {
	out, _, err := run(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}
