// ABOUTME: CLI commands for the workout log.
// ABOUTME: Workouts list newest first; rm takes the number shown by list.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	workoutSets  int
	workoutReps  int
	workoutRest  int
	workoutLimit int
	workoutYes   bool
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage workouts",
	Long: `Log exercises with their set and rep scheme.

COMMANDS:

  add      Log an exercise for today
  list     List workouts, newest first
  rm       Remove a workout by its number in list
  clear    Remove every workout`,
}

var workoutAddCmd = &cobra.Command{
	Use:   "add <exercise>",
	Short: "Log an exercise",
	Long: `Log an exercise for today. Sets and reps must be at least 1.

Examples:
  daylog workout add squat --sets 5 --reps 5 --rest 120
  daylog workout add "push ups" -s 3 -r 15`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := trk.Workouts.Add(strings.Join(args, " "), workoutSets, workoutReps, workoutRest)
		if err != nil {
			return finish(cmd, fmt.Errorf("add workout: %w", err))
		}

		success(cmd.OutOrStdout(), "Logged %s", w.Name)
		fmt.Fprintf(cmd.OutOrStdout(), "  %d x %d, rest %ds\n", w.Sets, w.Reps, w.RestSeconds)
		showSummary(cmd)
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts := trk.Workouts.ListNewestFirst()
		if len(workouts) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No workouts found.")
			return nil
		}

		for i, w := range workouts {
			if workoutLimit > 0 && i >= workoutLimit {
				break
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %d x %d  rest %ds\n",
				faint.Sprintf("%3d", i+1),
				faint.Sprint(w.LoggedOn),
				padRight(truncate(w.Name, 24), 24),
				w.Sets, w.Reps, w.RestSeconds)
		}
		return nil
	},
}

var workoutRmCmd = &cobra.Command{
	Use:     "rm <number>",
	Aliases: []string{"remove", "delete"},
	Short:   "Remove a workout",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseNumber(args[0])
		if err != nil {
			return err
		}

		w, err := trk.Workouts.RemoveDisplayed(index)
		if err != nil {
			return fmt.Errorf("remove workout: %w", err)
		}

		success(cmd.OutOrStdout(), "Removed %s (%s)", w.Name, w.LoggedOn)
		showSummary(cmd)
		return nil
	},
}

var workoutClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every workout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !workoutYes && !confirm(cmd, "Remove all workouts?") {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		if err := trk.Workouts.ClearAll(); err != nil {
			return fmt.Errorf("clear workouts: %w", err)
		}
		success(cmd.OutOrStdout(), "Cleared workouts")
		showSummary(cmd)
		return nil
	},
}

func init() {
	workoutAddCmd.Flags().IntVarP(&workoutSets, "sets", "s", 1, "number of sets")
	workoutAddCmd.Flags().IntVarP(&workoutReps, "reps", "r", 1, "reps per set")
	workoutAddCmd.Flags().IntVar(&workoutRest, "rest", 0, "rest between sets in seconds")
	workoutListCmd.Flags().IntVarP(&workoutLimit, "limit", "n", 20, "max number of results (0 for all)")
	workoutClearCmd.Flags().BoolVarP(&workoutYes, "yes", "y", false, "skip confirmation")

	workoutCmd.AddCommand(workoutAddCmd, workoutListCmd, workoutRmCmd, workoutClearCmd)
	rootCmd.AddCommand(workoutCmd)
}
