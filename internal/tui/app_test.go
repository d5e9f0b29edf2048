package tui

import (
	"strings"
	"testing"

	"ftracker/internal/config"
	"ftracker/internal/service"
	"ftracker/internal/workout"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// loadedApp returns an app whose report has been computed
func loadedApp(t *testing.T, packages []workout.Package) *App {
	t.Helper()

	app := NewApp(service.NewReportService(packages), config.DisplayConfig{})
	cmd := app.Init()
	require.NotNil(t, cmd)
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	app.Update(cmd())
	return app
}

func TestReportViewListsWorkouts(t *testing.T) {
	app := loadedApp(t, nil)

	view := app.View()
	for _, kind := range []string{"Swimming", "Running", "SportsWalking", "Calories per Workout"} {
		assert.Contains(t, view, kind)
	}
}

func TestReportViewShowsRejectedPackages(t *testing.T) {
	app := loadedApp(t, []workout.Package{
		{Code: "RUN", Values: []float64{15000, 1, 75}},
		{Code: "XYZ", Values: []float64{1, 1, 1}},
	})

	view := app.View()
	assert.Contains(t, view, "unknown workout kind")
	assert.Contains(t, view, "Rejected")
	// a single successful workout is not charted
	assert.NotContains(t, view, "Calories per Workout")
}

func TestOpenDetail(t *testing.T) {
	app := loadedApp(t, nil)

	app.Update(key("j"))
	_, cmd := app.Update(key("enter"))
	require.NotNil(t, cmd)

	msg, ok := cmd().(OpenDetailMsg)
	require.True(t, ok)
	assert.Equal(t, "Running", msg.Entry.Summary.Kind)
	assert.InDelta(t, 699.75/(336+699.75+157.5), msg.Share, 1e-9)

	app.Update(msg)
	assert.Equal(t, ScreenDetail, app.screen)
	assert.True(t, strings.Contains(app.View(), msg.Entry.Summary.Render()))

	app.Update(key("esc"))
	assert.Equal(t, ScreenReport, app.screen)
}

func TestHelpToggle(t *testing.T) {
	app := loadedApp(t, nil)

	app.Update(key("?"))
	assert.Equal(t, ScreenHelp, app.screen)
	assert.Contains(t, app.View(), "Keyboard Shortcuts")
	for _, code := range workout.Codes() {
		assert.Contains(t, app.View(), code)
	}

	app.Update(key("esc"))
	assert.Equal(t, ScreenReport, app.screen)
}

func TestQuit(t *testing.T) {
	app := loadedApp(t, nil)

	_, cmd := app.Update(key("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestRenderProgressBar(t *testing.T) {
	tests := []struct {
		percent float64
		full    int
	}{
		{0, 0},
		{0.5, 5},
		{1, 10},
		{1.5, 10},
		{-1, 0},
	}

	for _, tt := range tests {
		bar := RenderProgressBar(tt.percent, 10)
		assert.Equal(t, tt.full, strings.Count(bar, "█"), "percent=%v", tt.percent)
		assert.Equal(t, 10-tt.full, strings.Count(bar, "░"), "percent=%v", tt.percent)
	}
}
