// ABOUTME: CLI commands for the habit ledger.
// ABOUTME: Supports add, toggle, rm, list with a completion filter, and clear.
package main

import (
	"fmt"
	"strings"

	"github.com/harperreed/daylog/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	habitFilter string
	habitYes    bool
)

var habitCmd = &cobra.Command{
	Use:     "habit",
	Aliases: []string{"h"},
	Short:   "Manage daily habits",
	Long: `Track daily habits and tick them off.

Habits are numbered by their position in the list. Removing a habit renumbers
the ones after it, so run 'daylog habit list' before toggling or removing.

COMMANDS:

  add      Add a habit (created today, not done)
  toggle   Flip a habit between done and pending
  rm       Remove a habit
  list     List habits (--filter all|completed|pending)
  clear    Remove every habit`,
}

var habitAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a habit",
	Long: `Add a habit created today.

Examples:
  daylog habit add Meditate
  daylog habit add "Read 20 pages"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := trk.Habits.Add(strings.Join(args, " "))
		if err != nil {
			return finish(cmd, fmt.Errorf("add habit: %w", err))
		}

		n := len(trk.Habits.All())
		success(cmd.OutOrStdout(), "Added habit %s", h.Name)
		fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", faint.Sprintf("#%d", n), h.CreatedOn)
		showSummary(cmd)
		return nil
	},
}

var habitToggleCmd = &cobra.Command{
	Use:     "toggle <number>",
	Aliases: []string{"done", "t"},
	Short:   "Toggle a habit",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseNumber(args[0])
		if err != nil {
			return err
		}

		h, err := trk.Habits.Toggle(index)
		if err != nil {
			return fmt.Errorf("toggle habit: %w", err)
		}

		state := "pending"
		if h.Done {
			state = "done"
		}
		success(cmd.OutOrStdout(), "%s is %s", h.Name, state)
		showSummary(cmd)
		return nil
	},
}

var habitRmCmd = &cobra.Command{
	Use:     "rm <number>",
	Aliases: []string{"remove", "delete"},
	Short:   "Remove a habit",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseNumber(args[0])
		if err != nil {
			return err
		}

		h, err := trk.Habits.Remove(index)
		if err != nil {
			return fmt.Errorf("remove habit: %w", err)
		}

		success(cmd.OutOrStdout(), "Removed habit %s", h.Name)
		showSummary(cmd)
		return nil
	},
}

var habitListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List habits",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := tracker.ParseHabitFilter(habitFilter)
		if err != nil {
			return err
		}

		habits := trk.Habits.List(filter)
		if len(habits) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No habits found.")
			return nil
		}

		for _, h := range habits {
			mark := "[ ]"
			if h.Done {
				mark = "[x]"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				faint.Sprintf("%3d", h.Index+1),
				mark,
				padRight(truncate(h.Name, 40), 40),
				faint.Sprint(h.CreatedOn))
		}
		return nil
	},
}

var habitClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every habit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !habitYes && !confirm(cmd, "Remove all habits?") {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		if err := trk.Habits.ClearAll(); err != nil {
			return fmt.Errorf("clear habits: %w", err)
		}
		success(cmd.OutOrStdout(), "Cleared habits")
		showSummary(cmd)
		return nil
	},
}

func init() {
	habitListCmd.Flags().StringVarP(&habitFilter, "filter", "f", "all", "all, completed or pending")
	habitClearCmd.Flags().BoolVarP(&habitYes, "yes", "y", false, "skip confirmation")

	habitCmd.AddCommand(habitAddCmd, habitToggleCmd, habitRmCmd, habitListCmd, habitClearCmd)
	rootCmd.AddCommand(habitCmd)
}
