// ABOUTME: Tests for CLI helper functions and command execution.
// ABOUTME: Runs commands end to end against temp XDG directories with a fixed clock.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/harperreed/daylog/internal/daykey"
	"github.com/harperreed/daylog/internal/tracker"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

// setupCLI points config and data at temp dirs and freezes the clock.
func setupCLI(t *testing.T) string {
	t.Helper()
	dataHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", dataHome)

	color.NoColor = true
	days = daykey.Fixed(testNow)
	t.Cleanup(func() {
		days = daykey.New()
		logger = zap.NewNop()
	})
	return filepath.Join(dataHome, "daylog")
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := Execute()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := runCLI(t, "", args...)
	require.NoError(t, err, "daylog %s\n%s", strings.Join(args, " "), out)
	return out
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"1", 0, false},
		{" 12 ", 11, false},
		{"0", 0, true},
		{"-2", 0, true},
		{"two", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseNumber(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"", 5, ""},
		{"Run 🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃", 24, "Run 🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃"},
		{"Run 🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃", 10, "Run 🏃🏃🏃..."},
		{"Café au lait", 7, "Café..."},
	}

	for _, tt := range tests {
		got := truncate(tt.input, tt.maxLen)
		assert.Equal(t, tt.want, got)
		assert.True(t, utf8.ValidString(got), "truncate(%q, %d) produced invalid UTF-8", tt.input, tt.maxLen)
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "abcdef", padRight("abcdef", 3))
	assert.Equal(t, "   ", padRight("", 3))
	assert.Equal(t, "🏃é   ", padRight("🏃é", 5))
}

func TestCommandTree(t *testing.T) {
	for _, name := range []string{"habit", "workout", "wellbeing", "note", "summary", "export", "import", "migrate", "mcp", "serve"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}

	aliases := map[string]string{"h": "habit", "w": "workout", "wb": "wellbeing", "n": "note", "s": "summary"}
	for alias, want := range aliases {
		cmd, _, err := rootCmd.Find([]string{alias})
		require.NoError(t, err, alias)
		assert.Equal(t, want, cmd.Name())
	}

	for _, flag := range []string{"config", "backend", "verbose"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), flag)
	}
	assert.Equal(t, ":3000", serveCmd.Flags().Lookup("addr").DefValue)
	assert.Equal(t, "./view", serveCmd.Flags().Lookup("root").DefValue)
}

func TestHabitCommands(t *testing.T) {
	setupCLI(t)

	out := mustRun(t, "habit", "add", "Meditate")
	assert.Contains(t, out, "✓ Added habit Meditate")
	assert.Contains(t, out, "habits 0/1")

	mustRun(t, "habit", "add", "Read", "20", "pages")

	out = mustRun(t, "habit", "toggle", "1")
	assert.Contains(t, out, "Meditate is done")
	assert.Contains(t, out, "habits 1/2")

	out = mustRun(t, "habit", "list")
	assert.Contains(t, out, "[x] Meditate")
	assert.Contains(t, out, "[ ] Read 20 pages")

	out = mustRun(t, "habit", "list", "--filter", "pending")
	assert.NotContains(t, out, "Meditate")
	assert.Contains(t, out, "Read 20 pages")

	// The filter flag must not leak into the next run.
	out = mustRun(t, "habit", "list")
	assert.Contains(t, out, "Meditate")

	out = mustRun(t, "summary")
	assert.Contains(t, out, "Summary for 2025-03-10")
	assert.Contains(t, out, "1/2 done")
	assert.Contains(t, out, "no data yet")

	out = mustRun(t, "summary", "--day", "2025-03-11")
	assert.Contains(t, out, "0/2 done")

	_, err := runCLI(t, "", "summary", "--day", "garbage")
	assert.Error(t, err)

	out = mustRun(t, "habit", "rm", "1")
	assert.Contains(t, out, "Removed habit Meditate")
	out = mustRun(t, "habit", "list")
	assert.Contains(t, out, "  1 [ ] Read 20 pages")
}

func TestHabitAddRejectionIsNotAnError(t *testing.T) {
	setupCLI(t)

	out, err := runCLI(t, "", "habit", "add", "   ")
	require.NoError(t, err)
	assert.Contains(t, out, "⚠ habit name is empty")

	out = mustRun(t, "habit", "list")
	assert.Contains(t, out, "No habits found.")
}

func TestHabitToggleOutOfRange(t *testing.T) {
	setupCLI(t)
	mustRun(t, "habit", "add", "Read")

	_, err := runCLI(t, "", "habit", "toggle", "3")
	require.Error(t, err)
	assert.ErrorIs(t, err, tracker.ErrIndexOutOfRange)

	_, err = runCLI(t, "", "habit", "toggle", "zero")
	assert.Error(t, err)
}

func TestClearAsksForConfirmation(t *testing.T) {
	setupCLI(t)
	mustRun(t, "note", "add", "keep", "me")

	out, err := runCLI(t, "n\n", "note", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled.")
	assert.Contains(t, mustRun(t, "note", "list"), "keep me")

	out, err = runCLI(t, "yes\n", "note", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared notes")
	assert.Contains(t, mustRun(t, "note", "list"), "No notes found.")

	mustRun(t, "habit", "add", "Read")
	mustRun(t, "habit", "clear", "--yes")
	assert.Contains(t, mustRun(t, "habit", "list"), "No habits found.")
}

func TestNoteCommands(t *testing.T) {
	setupCLI(t)

	out := mustRun(t, "note", "add", "first")
	assert.Contains(t, out, "✓ Saved note")
	assert.Contains(t, out, "2025-03-10 09:00")
	mustRun(t, "note", "add", "second")

	out = mustRun(t, "note", "list")
	assert.Less(t, strings.Index(out, "second"), strings.Index(out, "first"))

	out, err := runCLI(t, "", "note", "add", " ")
	require.NoError(t, err)
	assert.Contains(t, out, "⚠ note is empty")
}

func TestWorkoutCommands(t *testing.T) {
	setupCLI(t)

	out := mustRun(t, "workout", "add", "squat", "--sets", "5", "--reps", "5", "--rest", "120")
	assert.Contains(t, out, "✓ Logged squat")
	assert.Contains(t, out, "5 x 5, rest 120s")
	assert.Contains(t, out, "workouts 1")

	mustRun(t, "workout", "add", "bench", "-s", "3", "-r", "8")

	out = mustRun(t, "workout", "list")
	assert.Less(t, strings.Index(out, "bench"), strings.Index(out, "squat"))

	out = mustRun(t, "workout", "rm", "1")
	assert.Contains(t, out, "Removed bench")
	out = mustRun(t, "workout", "list")
	assert.Contains(t, out, "squat")
	assert.NotContains(t, out, "bench")

	out, err := runCLI(t, "", "workout", "add", "plank", "--sets", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "⚠ sets must be at least 1")

	out, err = runCLI(t, "", "workout", "add", "plank", "--rest", "-1")
	require.NoError(t, err)
	assert.Contains(t, out, "⚠ rest must not be negative")
}

func TestWellbeingCommands(t *testing.T) {
	setupCLI(t)

	out := mustRun(t, "wellbeing", "log", "monday", "--water", "55", "--sleep", "30", "--mood", "9")
	assert.Contains(t, out, "✓ Logged Monday")
	assert.Contains(t, out, "water 50, sleep 24.0h, mood -")

	mustRun(t, "wb", "log", "Monday", "--water", "4", "--mood", "3")

	out = mustRun(t, "wellbeing", "latest", "Monday")
	assert.Contains(t, out, "water 4, sleep -, mood good")

	out = mustRun(t, "wellbeing", "latest", "Friday")
	assert.Contains(t, out, "No entry for Friday.")

	out = mustRun(t, "summary")
	assert.Contains(t, out, "2 entries (window 7)")
	assert.Contains(t, out, "water    27.0")
	assert.Contains(t, out, "sleep    12.0")
	assert.Contains(t, out, "mood     low")

	out, err := runCLI(t, "", "wellbeing", "log", "--water", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "⚠ select a day or date before saving")

	mustRun(t, "wellbeing", "clear", "-y")
	assert.Contains(t, mustRun(t, "wellbeing", "list"), "No wellbeing entries found.")
}

func TestExportImport(t *testing.T) {
	setupCLI(t)
	mustRun(t, "habit", "add", "Meditate")
	mustRun(t, "workout", "add", "row", "--sets", "3", "--reps", "10")
	mustRun(t, "wellbeing", "log", "today", "--water", "6", "--mood", "4")

	backup := filepath.Join(t.TempDir(), "backup.json")
	out := mustRun(t, "export", "json", "-o", backup)
	assert.Contains(t, out, "Exported to "+backup)

	out = mustRun(t, "export", "markdown")
	assert.Contains(t, out, "# Daylog Export")
	assert.Contains(t, out, "| 2025-03-10 | Meditate |   |")

	out = mustRun(t, "export", "yaml")
	assert.Contains(t, out, "mood: great")

	_, err := runCLI(t, "", "export", "markdown", "--since", "March")
	assert.Error(t, err)
	_, err = runCLI(t, "", "export", "csv")
	assert.Error(t, err)

	// A fresh data directory receives the backup.
	setupCLI(t)
	out = mustRun(t, "import", backup)
	assert.Contains(t, out, "1 habits, 1 workouts, 1 wellbeing entries, 0 notes")
	assert.Contains(t, mustRun(t, "habit", "list"), "Meditate")
}

func TestMigrateToBadger(t *testing.T) {
	dataDir := setupCLI(t)
	mustRun(t, "habit", "add", "Meditate")
	mustRun(t, "note", "add", "moved")

	out := mustRun(t, "migrate", "--to", "badger", "--dry-run")
	assert.Contains(t, out, "Would copy 2 collections")
	assert.Contains(t, out, "habits")
	_, err := os.Stat(filepath.Join(dataDir, "badger"))
	assert.True(t, os.IsNotExist(err), "dry run must not create the badger directory")

	out = mustRun(t, "migrate", "--to", "badger")
	assert.Contains(t, out, "Copied 2 collections")

	assert.Contains(t, mustRun(t, "--backend", "badger", "habit", "list"), "Meditate")
	assert.Contains(t, mustRun(t, "--backend", "badger", "note", "list"), "moved")

	_, err = runCLI(t, "", "migrate", "--to", "badger")
	assert.Error(t, err, "existing destination needs --force")
	mustRun(t, "migrate", "--to", "badger", "--force")

	_, err = runCLI(t, "", "migrate", "--to", "sqlite")
	assert.Error(t, err, "same source and destination")
}

func TestMemoryBackendStartsEmpty(t *testing.T) {
	setupCLI(t)

	mustRun(t, "--backend", "memory", "habit", "add", "Ephemeral")
	assert.Contains(t, mustRun(t, "--backend", "memory", "habit", "list"), "No habits found.")
}

func TestConfigFileFlag(t *testing.T) {
	setupCLI(t)
	dataDir := filepath.Join(t.TempDir(), "elsewhere")
	cfgPath := filepath.Join(t.TempDir(), "daylog.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"data_dir": "`+dataDir+`", "summary_window": 3}`), 0600))

	mustRun(t, "--config", cfgPath, "habit", "add", "Stretch")
	_, err := os.Stat(filepath.Join(dataDir, "daylog.db"))
	assert.NoError(t, err)

	out := mustRun(t, "--config", cfgPath, "summary")
	assert.Contains(t, out, "0/1 done")

	// The device id is written back to the chosen file.
	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "device_id")
}
