// ABOUTME: Shared output helpers for CLI commands.
// ABOUTME: Colored status lines, rejection handling, confirmation, and the summary line.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/harperreed/daylog/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	faint  = color.New(color.Faint)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
)

func success(w io.Writer, format string, a ...interface{}) {
	green.Fprintf(w, "✓ "+format+"\n", a...)
}

func warn(w io.Writer, format string, a ...interface{}) {
	yellow.Fprintf(w, "⚠ "+format+"\n", a...)
}

// finish reports a rejection as a warning and succeeds; other errors pass through.
func finish(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	var r *tracker.Rejection
	if errors.As(err, &r) {
		warn(cmd.OutOrStdout(), "%s", r.Reason)
		return nil
	}
	return err
}

// printSummary writes the one-line summary shown after every change.
func printSummary(w io.Writer, v tracker.SummaryView) {
	wb := "no data yet"
	if !v.NoData() {
		wb = fmt.Sprintf("water %s, sleep %s, mood %s",
			v.Wellbeing.Water, v.Wellbeing.Sleep, v.Wellbeing.Mood)
	}
	faint.Fprintf(w, "  habits %d/%d · workouts %d · last %d: %s\n",
		v.HabitsDone, v.HabitsTotal, v.WorkoutsToday, v.Window, wb)
}

func showSummary(cmd *cobra.Command) {
	printSummary(cmd.OutOrStdout(), trk.Summary.Summarize())
}

// parseNumber converts a 1-based number from the command line to a 0-based index.
func parseNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid number: %s", s)
	}
	if n < 1 {
		return 0, fmt.Errorf("number must be 1 or more, got %d", n)
	}
	return n - 1, nil
}

// confirm asks a yes/no question on the command's input.
func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
	line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// truncate shortens s to maxLen runes, ending in "..." when cut.
func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-3]) + "..."
}

func padRight(s string, length int) string {
	n := utf8.RuneCountInString(s)
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}
