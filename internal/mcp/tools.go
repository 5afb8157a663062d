// ABOUTME: MCP tool implementations for habits, workouts, wellbeing, and notes.
// ABOUTME: Numbers exchanged with clients are 1-based, matching list output.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/daylog/internal/models"
	"github.com/harperreed/daylog/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_habit",
		Description: "Add a daily habit, created today and not yet done",
	}, s.handleAddHabit)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "toggle_habit",
		Description: "Flip a habit between done and pending",
	}, s.handleToggleHabit)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "remove_habit",
		Description: "Remove a habit; later habits are renumbered",
	}, s.handleRemoveHabit)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_habits",
		Description: "List habits, optionally only completed or pending ones",
	}, s.handleListHabits)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_workout",
		Description: "Log an exercise with sets, reps and rest for today",
	}, s.handleAddWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "remove_workout",
		Description: "Remove a workout by its number in list_workouts (newest first)",
	}, s.handleRemoveWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List logged workouts, newest first",
	}, s.handleListWorkouts)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_wellbeing",
		Description: "Record water, sleep and mood for a weekday or date",
	}, s.handleLogWellbeing)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "latest_wellbeing",
		Description: "Get the most recent wellbeing entry for a weekday or date",
	}, s.handleLatestWellbeing)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_note",
		Description: "Add a free-text note stamped with the current time",
	}, s.handleAddNote)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_notes",
		Description: "List notes, newest first",
	}, s.handleListNotes)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_summary",
		Description: "Get wellbeing averages, workout count and habit completion for a day",
	}, s.handleGetSummary)
}

// Tool input/output types

type addHabitInput struct {
	Name string `json:"name" jsonschema:"Habit name"`
}

type habitNumberInput struct {
	Number int `json:"number" jsonschema:"Habit number as shown by list_habits (1-based)"`
}

type habitItem struct {
	Number    int    `json:"number"`
	Name      string `json:"name"`
	Done      bool   `json:"done"`
	CreatedOn string `json:"created_on"`
}

type habitOutput struct {
	Habit   habitItem `json:"habit"`
	Message string    `json:"message"`
}

type listHabitsInput struct {
	Filter string `json:"filter,omitempty" jsonschema:"all, completed or pending (default all)"`
}

type listHabitsOutput struct {
	Habits []habitItem `json:"habits"`
	Count  int         `json:"count"`
}

type addWorkoutInput struct {
	Name        string `json:"name" jsonschema:"Exercise name"`
	Sets        int    `json:"sets" jsonschema:"Number of sets (at least 1)"`
	Reps        int    `json:"reps" jsonschema:"Reps per set (at least 1)"`
	RestSeconds int    `json:"rest_seconds,omitempty" jsonschema:"Rest between sets in seconds"`
}

type workoutNumberInput struct {
	Number int `json:"number" jsonschema:"Workout number as shown by list_workouts (1-based, newest first)"`
}

type workoutItem struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
	RestSeconds int    `json:"rest_seconds"`
	LoggedOn    string `json:"logged_on"`
}

type workoutOutput struct {
	Workout workoutItem `json:"workout"`
	Message string      `json:"message"`
}

type listWorkoutsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type listWorkoutsOutput struct {
	Workouts []workoutItem `json:"workouts"`
	Count    int           `json:"count"`
}

type logWellbeingInput struct {
	Day   string   `json:"day" jsonschema:"Weekday name, YYYY-MM-DD date, or today"`
	Water int      `json:"water,omitempty" jsonschema:"Glasses of water, 0 to 50"`
	Sleep *float64 `json:"sleep,omitempty" jsonschema:"Hours slept, 0 to 24"`
	Mood  *int     `json:"mood,omitempty" jsonschema:"Mood 1 (very low) to 4 (great)"`
}

type wellbeingItem struct {
	Day      string   `json:"day"`
	Water    int      `json:"water"`
	Sleep    *float64 `json:"sleep,omitempty"`
	Mood     string   `json:"mood,omitempty"`
	LoggedAt string   `json:"logged_at"`
}

type wellbeingOutput struct {
	Entry   *wellbeingItem `json:"entry,omitempty"`
	Found   bool           `json:"found"`
	Message string         `json:"message"`
}

type dayInput struct {
	Day string `json:"day" jsonschema:"Weekday name, YYYY-MM-DD date, or today"`
}

type addNoteInput struct {
	Text string `json:"text" jsonschema:"Note text"`
}

type noteItem struct {
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

type noteOutput struct {
	Note    noteItem `json:"note"`
	Message string   `json:"message"`
}

type listNotesInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default all)"`
}

type listNotesOutput struct {
	Notes []noteItem `json:"notes"`
	Count int        `json:"count"`
}

type summaryInput struct {
	Day string `json:"day,omitempty" jsonschema:"YYYY-MM-DD date (default today)"`
}

type summaryOutput struct {
	Day           string `json:"day"`
	Window        int    `json:"window"`
	Entries       int    `json:"entries"`
	AvgWater      string `json:"avg_water"`
	AvgSleep      string `json:"avg_sleep"`
	AvgMood       string `json:"avg_mood"`
	WorkoutsToday int    `json:"workouts_today"`
	HabitsDone    int    `json:"habits_done"`
	HabitsTotal   int    `json:"habits_total"`
	NoData        bool   `json:"no_data"`
}

// Conversions

func toHabitItem(index int, h models.Habit) habitItem {
	return habitItem{Number: index + 1, Name: h.Name, Done: h.Done, CreatedOn: h.CreatedOn}
}

func toWorkoutItem(number int, w models.WorkoutEntry) workoutItem {
	return workoutItem{
		Number:      number,
		Name:        w.Name,
		Sets:        w.Sets,
		Reps:        w.Reps,
		RestSeconds: w.RestSeconds,
		LoggedOn:    w.LoggedOn,
	}
}

func toWellbeingItem(e *models.WellbeingEntry) *wellbeingItem {
	item := &wellbeingItem{
		Day:      e.Day,
		Water:    e.Water,
		Sleep:    e.Sleep,
		LoggedAt: e.LoggedAt.Format(time.RFC3339),
	}
	if e.Mood != nil {
		item.Mood = e.Mood.Label()
	}
	return item
}

func toNoteItem(n models.Note) noteItem {
	return noteItem{Text: n.Text, CreatedAt: n.Stamp()}
}

func toSummaryOutput(v tracker.SummaryView) summaryOutput {
	return summaryOutput{
		Day:           v.DayKey,
		Window:        v.Window,
		Entries:       v.Wellbeing.Count,
		AvgWater:      v.Wellbeing.Water.String(),
		AvgSleep:      v.Wellbeing.Sleep.String(),
		AvgMood:       v.Wellbeing.Mood.String(),
		WorkoutsToday: v.WorkoutsToday,
		HabitsDone:    v.HabitsDone,
		HabitsTotal:   v.HabitsTotal,
		NoData:        v.NoData(),
	}
}

// Tool handlers

func (s *Server) handleAddHabit(ctx context.Context, req *mcp.CallToolRequest, input addHabitInput) (*mcp.CallToolResult, habitOutput, error) {
	h, err := s.tracker.Habits.Add(input.Name)
	if err != nil {
		return nil, habitOutput{}, s.toolError("add habit", err)
	}

	index := len(s.tracker.Habits.All()) - 1
	return nil, habitOutput{
		Habit:   toHabitItem(index, *h),
		Message: fmt.Sprintf("Added habit %d: %s", index+1, h.Name),
	}, nil
}

func (s *Server) handleToggleHabit(ctx context.Context, req *mcp.CallToolRequest, input habitNumberInput) (*mcp.CallToolResult, habitOutput, error) {
	h, err := s.tracker.Habits.Toggle(input.Number - 1)
	if err != nil {
		return nil, habitOutput{}, s.toolError("toggle habit", err)
	}

	state := "pending"
	if h.Done {
		state = "done"
	}
	return nil, habitOutput{
		Habit:   toHabitItem(input.Number-1, *h),
		Message: fmt.Sprintf("Marked %s as %s", h.Name, state),
	}, nil
}

func (s *Server) handleRemoveHabit(ctx context.Context, req *mcp.CallToolRequest, input habitNumberInput) (*mcp.CallToolResult, habitOutput, error) {
	h, err := s.tracker.Habits.Remove(input.Number - 1)
	if err != nil {
		return nil, habitOutput{}, s.toolError("remove habit", err)
	}

	return nil, habitOutput{
		Habit:   toHabitItem(input.Number-1, *h),
		Message: fmt.Sprintf("Removed habit: %s", h.Name),
	}, nil
}

func (s *Server) handleListHabits(ctx context.Context, req *mcp.CallToolRequest, input listHabitsInput) (*mcp.CallToolResult, listHabitsOutput, error) {
	filter, err := tracker.ParseHabitFilter(input.Filter)
	if err != nil {
		return nil, listHabitsOutput{}, err
	}

	out := listHabitsOutput{Habits: []habitItem{}}
	for _, ih := range s.tracker.Habits.List(filter) {
		out.Habits = append(out.Habits, toHabitItem(ih.Index, ih.Habit))
	}
	out.Count = len(out.Habits)
	return nil, out, nil
}

func (s *Server) handleAddWorkout(ctx context.Context, req *mcp.CallToolRequest, input addWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	w, err := s.tracker.Workouts.Add(input.Name, input.Sets, input.Reps, input.RestSeconds)
	if err != nil {
		return nil, workoutOutput{}, s.toolError("add workout", err)
	}

	return nil, workoutOutput{
		Workout: toWorkoutItem(1, *w),
		Message: fmt.Sprintf("Logged %s: %d x %d", w.Name, w.Sets, w.Reps),
	}, nil
}

func (s *Server) handleRemoveWorkout(ctx context.Context, req *mcp.CallToolRequest, input workoutNumberInput) (*mcp.CallToolResult, workoutOutput, error) {
	w, err := s.tracker.Workouts.RemoveDisplayed(input.Number - 1)
	if err != nil {
		return nil, workoutOutput{}, s.toolError("remove workout", err)
	}

	return nil, workoutOutput{
		Workout: toWorkoutItem(input.Number, *w),
		Message: fmt.Sprintf("Removed workout: %s", w.Name),
	}, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, listWorkoutsOutput, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	out := listWorkoutsOutput{Workouts: []workoutItem{}}
	for i, w := range s.tracker.Workouts.ListNewestFirst() {
		if i >= input.Limit {
			break
		}
		out.Workouts = append(out.Workouts, toWorkoutItem(i+1, w))
	}
	out.Count = len(out.Workouts)
	return nil, out, nil
}

func (s *Server) handleLogWellbeing(ctx context.Context, req *mcp.CallToolRequest, input logWellbeingInput) (*mcp.CallToolResult, wellbeingOutput, error) {
	e, err := s.tracker.Wellbeing.LogEntry(input.Day, input.Water, input.Sleep, input.Mood)
	if err != nil {
		return nil, wellbeingOutput{}, s.toolError("log wellbeing", err)
	}

	return nil, wellbeingOutput{
		Entry:   toWellbeingItem(e),
		Found:   true,
		Message: fmt.Sprintf("Logged wellbeing for %s", e.Day),
	}, nil
}

func (s *Server) handleLatestWellbeing(ctx context.Context, req *mcp.CallToolRequest, input dayInput) (*mcp.CallToolResult, wellbeingOutput, error) {
	e, ok := s.tracker.Wellbeing.LatestFor(input.Day)
	if !ok {
		return nil, wellbeingOutput{
			Message: fmt.Sprintf("No wellbeing entry for %s", input.Day),
		}, nil
	}

	return nil, wellbeingOutput{
		Entry:   toWellbeingItem(e),
		Found:   true,
		Message: fmt.Sprintf("Latest entry for %s", e.Day),
	}, nil
}

func (s *Server) handleAddNote(ctx context.Context, req *mcp.CallToolRequest, input addNoteInput) (*mcp.CallToolResult, noteOutput, error) {
	n, err := s.tracker.Notes.Add(input.Text)
	if err != nil {
		return nil, noteOutput{}, s.toolError("add note", err)
	}

	return nil, noteOutput{
		Note:    toNoteItem(*n),
		Message: "Note saved",
	}, nil
}

func (s *Server) handleListNotes(ctx context.Context, req *mcp.CallToolRequest, input listNotesInput) (*mcp.CallToolResult, listNotesOutput, error) {
	out := listNotesOutput{Notes: []noteItem{}}
	for i, n := range s.tracker.Notes.ListNewestFirst() {
		if input.Limit > 0 && i >= input.Limit {
			break
		}
		out.Notes = append(out.Notes, toNoteItem(n))
	}
	out.Count = len(out.Notes)
	return nil, out, nil
}

func (s *Server) handleGetSummary(ctx context.Context, req *mcp.CallToolRequest, input summaryInput) (*mcp.CallToolResult, summaryOutput, error) {
	view := s.tracker.Summary.Summarize()
	if input.Day != "" {
		var err error
		if view, err = s.tracker.Summary.SummarizeFor(input.Day); err != nil {
			return nil, summaryOutput{}, s.toolError("get summary", err)
		}
	}
	return nil, toSummaryOutput(view), nil
}

// toolError logs storage failures; rejections are ordinary client feedback.
func (s *Server) toolError(op string, err error) error {
	if !tracker.IsRejection(err) {
		s.logger.Error(op+" failed", zap.Error(err))
	}
	return fmt.Errorf("%s: %w", op, err)
}
