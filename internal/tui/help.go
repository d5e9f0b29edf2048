package tui

import (
	"strings"

	"ftracker/internal/workout"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	sections = append(sections, cardTitleStyle.Render("Keyboard Shortcuts"))

	sections = append(sections, m.renderSection("Navigation", []keyHelp{
		{"1", "Workout report"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	}))

	sections = append(sections, m.renderSection("Report", []keyHelp{
		{"j / down", "Move cursor down"},
		{"k / up", "Move cursor up"},
		{"enter", "Show workout details"},
	}))

	sections = append(sections, m.renderSection("Details", []keyHelp{
		{"j / k", "Scroll"},
		{"esc", "Back to report"},
	}))

	sections = append(sections, m.renderKinds())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionStyle.Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

var kindDescriptions = map[string]struct {
	name   string
	values string
}{
	workout.CodeRunning:  {"Running", "steps, hours, weight kg"},
	workout.CodeWalking:  {"Sports walking", "steps, hours, weight kg, height cm"},
	workout.CodeSwimming: {"Swimming", "strokes, hours, weight kg, pool length m, pool laps"},
}

func (m HelpModel) renderKinds() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionStyle.Render("Workout Packages"))
	lines = append(lines, "")

	for _, code := range workout.Codes() {
		d := kindDescriptions[code]
		lines = append(lines, "  "+helpKeyStyle.Render(code)+" "+d.name)
		lines = append(lines, "  "+mutedStyle.Render(d.values))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
