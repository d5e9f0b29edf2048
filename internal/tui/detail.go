package tui

import (
	"fmt"
	"strings"

	"ftracker/internal/service"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DetailModel shows one report entry in a scrollable pane
type DetailModel struct {
	entry    service.Entry
	share    float64
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// NewDetailModel creates a new detail model
func NewDetailModel(entry service.Entry, share float64, width, height int) DetailModel {
	m := DetailModel{
		entry:  entry,
		share:  share,
		width:  width,
		height: height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6) // Reserve space for header/footer
		m.viewport.SetContent(m.renderContent())
		m.ready = true
	}

	return m
}

// Init initializes the detail screen
func (m DetailModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		m.viewport.SetContent(m.renderContent())
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the detail screen
func (m DetailModel) View() string {
	if !m.ready {
		return m.renderContent()
	}

	footer := statusStyle.Render(fmt.Sprintf("  %3.f%%  j/k: scroll  esc: back", m.viewport.ScrollPercent()*100))
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m DetailModel) renderContent() string {
	e := m.entry

	values := make([]string, len(e.Package.Values))
	for i, v := range e.Package.Values {
		values[i] = fmt.Sprintf("%g", v)
	}

	var sections []string

	if !e.OK() {
		title := cardTitleStyle.Render("Rejected package " + e.Package.Code)
		lines := []string{
			RenderMetric("Values", strings.Join(values, " ")),
			errorStyle.Render(e.Err.Error()),
		}
		sections = append(sections, cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinVertical(lipgloss.Left, lines...))))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	s := e.Summary
	title := cardTitleStyle.Render(s.Kind)
	lines := []string{
		RenderMetric("Package", e.Package.Code+" "+strings.Join(values, " ")),
		RenderMetric("Duration", fmt.Sprintf("%.3f h (%s)", s.Duration, service.FormatHours(s.Duration))),
		RenderMetric("Distance", fmt.Sprintf("%.3f km", s.Distance)),
		RenderMetric("Avg speed", fmt.Sprintf("%.3f km/h", s.Speed)),
		RenderMetric("Calories", fmt.Sprintf("%.3f", s.Calories)),
		"",
		RenderMetric("Share of calories", fmt.Sprintf("%.0f%%", m.share*100)),
		RenderProgressBar(m.share, 40),
	}
	sections = append(sections, cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinVertical(lipgloss.Left, lines...))))

	sections = append(sections, "", sectionStyle.Render("Report line"), s.Render())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
