package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kamilkhanlab/nonogram-ilp/convert"
)

const puzzle = "2\n2\n2\n1 1\n2\n\na b\na\n\n1\n1 1\n\na\nb a\n"

// execute runs the root command with fresh flag values.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func entries(t *testing.T, dir string) []string {
	t.Helper()
	list, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range list {
		names = append(names, e.Name())
	}
	return names
}

func TestConvertWritesAllDocuments(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "48.cwc"), []byte(puzzle), 0644))

	require.NoError(t, execute(t, "--dir", dir, "48"))
	assert.ElementsMatch(t,
		[]string{"48.cwc", "p48.inc", "p48sR.csv", "p48cR.csv", "p48sC.csv", "p48cC.csv"},
		entries(t, dir))

	data, err := os.ReadFile(filepath.Join(dir, "p48cC.csv"))
	require.NoError(t, err)
	assert.Equal(t, ",t1,t2\r\nj1,a,\r\nj2,b,a\r\n", string(data))
}

func TestConvertMissingInputInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	err := execute(t, "48")
	require.Error(t, err)
	assert.Equal(t, `did not locate "48.cwc" in current directory`, err.Error())
	assert.Empty(t, entries(t, dir))
}

func TestConvertDryRunAndOutputDir(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(in, "3.cwc"), []byte(puzzle), 0644))

	require.NoError(t, execute(t, "--dir", in, "--out", out, "--dry-run", "3"))
	assert.Empty(t, entries(t, out))

	require.NoError(t, execute(t, "--dir", in, "--out", out, "3"))
	assert.Len(t, entries(t, out), 5)
	assert.Equal(t, []string{"3.cwc"}, entries(t, in))
}

func TestConvertStrict(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1.cwc"), []byte("1\n1\n1\n1\n"), 0644))

	err := execute(t, "--dir", dir, "--strict", "1")
	require.Error(t, err)
	assert.Equal(t, []string{"1.cwc"}, entries(t, dir))

	require.NoError(t, execute(t, "--dir", dir, "1"))
	assert.Len(t, entries(t, dir), 6)
}

func TestConvertRequiresOneArgument(t *testing.T) {
	assert.Error(t, execute(t))
	assert.Error(t, execute(t, "1", "2"))
}

func TestLogEvent(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	listener := logEvent(zap.New(core))

	listener(convert.HeaderParsedEvent("run-1", 2, 3, 4))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.DebugLevel, entry.Level)
	fields := entry.ContextMap()
	assert.Equal(t, "header_parsed", fields["event"])
	assert.Equal(t, "run-1", fields["run_id"])
	assert.EqualValues(t, 3, fields["columns"])
}

func TestMissingInputIsTyped(t *testing.T) {
	err := execute(t, "--dir", t.TempDir(), "nope")
	var mi *convert.MissingInputError
	assert.True(t, errors.As(err, &mi))
}

// observeLogs routes the command's logger into an observer, filtered at the
// same level the real logger would use.
func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	orig := buildLogger
	buildLogger = func(verbose bool) (*zap.Logger, error) {
		if verbose {
			return zap.New(core), nil
		}
		quiet, err := zapcore.NewIncreaseLevelCore(core, zapcore.WarnLevel)
		if err != nil {
			return nil, err
		}
		return zap.New(quiet), nil
	}
	t.Cleanup(func() {
		buildLogger = orig
		logger = zap.NewNop()
	})
	return logs
}

func TestConvertShortInputIsSilentByDefault(t *testing.T) {
	logs := observeLogs(t)
	dir := t.TempDir()
	// Eleven lines where the header implies fourteen.
	src := "2\n2\n2\n1 1\n2\na b\na\n1\n1\na\nb\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1.cwc"), []byte(src), 0644))

	require.NoError(t, execute(t, "--dir", dir, "1"))
	assert.Equal(t, 0, logs.Len())

	data, err := os.ReadFile(filepath.Join(dir, "p1sR.csv"))
	require.NoError(t, err)
	assert.Equal(t, ",t1,t2\r\ni1,1,1\r\ni2,2,\r\n", string(data))
}

func TestConvertVerboseReportsMissingLines(t *testing.T) {
	logs := observeLogs(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1.cwc"), []byte("1\n1\n1\n1\n"), 0644))

	require.NoError(t, execute(t, "--dir", dir, "--verbose", "1"))

	missing := logs.FilterMessage("input ended early, missing lines read as blank").All()
	require.Len(t, missing, 1)
	assert.Equal(t, zapcore.InfoLevel, missing[0].Level)
	assert.EqualValues(t, 6, missing[0].ContextMap()["missing_lines"])
	assert.NotZero(t, logs.FilterField(zap.String("event", "conversion_completed")).Len())
}
