// ABOUTME: MCP resource implementations for the daylog tracker.
// ABOUTME: Provides daylog://summary and daylog://today resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/daylog/internal/daykey"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	summaryURI = "daylog://summary"
	todayURI   = "daylog://today"
)

func (s *Server) registerResources() {
	// daylog://summary - rolling averages plus today's counts
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         summaryURI,
		Name:        "Daylog Summary",
		Description: "Trailing wellbeing averages, today's workouts and habit completion",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)

	// daylog://today - everything dated today
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         todayURI,
		Name:        "Today's Daylog",
		Description: "Habits, workouts, wellbeing and notes recorded today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)
}

// Resource handlers

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	result := map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
		"summary":      toSummaryOutput(s.tracker.Summary.Summarize()),
	}
	return jsonResource(summaryURI, result)
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	view := s.tracker.Summary.Summarize()
	today := view.DayKey

	habits := []habitItem{}
	for i, h := range s.tracker.Habits.All() {
		if h.CreatedOn == today {
			habits = append(habits, toHabitItem(i, h))
		}
	}

	workouts := []workoutItem{}
	for i, w := range s.tracker.Workouts.ListNewestFirst() {
		if w.LoggedOn == today {
			workouts = append(workouts, toWorkoutItem(i+1, w))
		}
	}

	wellbeing := []*wellbeingItem{}
	entries := s.tracker.Wellbeing.Entries()
	for i := range entries {
		e := entries[i]
		if e.Day == today || daykey.DateKey(e.LoggedAt) == today {
			wellbeing = append(wellbeing, toWellbeingItem(&e))
		}
	}

	notes := []noteItem{}
	for _, n := range s.tracker.Notes.ListNewestFirst() {
		if daykey.DateKey(n.CreatedAt) == today {
			notes = append(notes, toNoteItem(n))
		}
	}

	result := map[string]interface{}{
		"date":      today,
		"habits":    habits,
		"workouts":  workouts,
		"wellbeing": wellbeing,
		"notes":     notes,
		"counts": map[string]int{
			"habits_done":  view.HabitsDone,
			"habits_total": view.HabitsTotal,
			"workouts":     len(workouts),
			"wellbeing":    len(wellbeing),
			"notes":        len(notes),
		},
	}
	return jsonResource(todayURI, result)
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
