package tui

import (
	"fmt"

	"ftracker/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// ReportModel is the workout report screen model
type ReportModel struct {
	reportService *service.ReportService
	entries       []service.Entry
	cursor        int
	showChart     bool
	loading       bool
}

// NewReportModel creates a new report model
func NewReportModel(rs *service.ReportService, showChart bool) ReportModel {
	return ReportModel{
		reportService: rs,
		showChart:     showChart,
		loading:       true,
	}
}

// Init initializes the report screen
func (m ReportModel) Init() tea.Cmd {
	return m.loadReport
}

type reportLoadedMsg struct {
	entries []service.Entry
}

func (m ReportModel) loadReport() tea.Msg {
	return reportLoadedMsg{entries: m.reportService.Report()}
}

// OpenDetailMsg asks the app to show the details of one report entry
type OpenDetailMsg struct {
	Entry service.Entry
	Share float64 // fraction of the report's calories
}

// Update handles messages
func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportLoadedMsg:
		m.loading = false
		m.entries = msg.entries
		if m.cursor >= len(m.entries) {
			m.cursor = 0
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor < len(m.entries) {
				entry := m.entries[m.cursor]
				share := 0.0
				if total := service.Sum(m.entries).Calories; entry.OK() && total > 0 {
					share = entry.Summary.Calories / total
				}
				return m, func() tea.Msg {
					return OpenDetailMsg{Entry: entry, Share: share}
				}
			}
		}
	}
	return m, nil
}

// View renders the report
func (m ReportModel) View() string {
	if m.loading {
		return "\n  Computing workouts..."
	}

	if len(m.entries) == 0 {
		return "\n  No workout packages configured."
	}

	var sections []string

	title := cardTitleStyle.Render(fmt.Sprintf("Workouts (%d)", len(m.entries)))
	sections = append(sections, title)

	header := tableHeaderStyle.Render(fmt.Sprintf("   %-4s  %-14s  %8s  %9s  %10s  %9s",
		"Code", "Type", "Duration", "Distance", "Speed", "Calories"))
	sections = append(sections, header)

	for i, e := range m.entries {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		var row string
		if e.OK() {
			s := e.Summary
			row = fmt.Sprintf("%s%-4s  %-14s  %8s  %6.3f km  %5.3f km/h  %9.3f",
				cursor,
				e.Package.Code,
				s.Kind,
				service.FormatHours(s.Duration),
				s.Distance,
				s.Speed,
				s.Calories,
			)
		} else {
			row = fmt.Sprintf("%s%-4s  %s", cursor, e.Package.Code, errorStyle.Render(e.Err.Error()))
		}

		if i == m.cursor {
			sections = append(sections, tableSelectedStyle.Render(row))
		} else {
			sections = append(sections, tableRowStyle.Render(row))
		}
	}

	sections = append(sections, m.renderTotals())

	if m.showChart {
		if chart := m.renderChart(); chart != "" {
			sections = append(sections, chart)
		}
	}

	help := statusStyle.Render("\n  enter: view details  j/k: navigate")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ReportModel) renderTotals() string {
	totals := service.Sum(m.entries)

	lines := []string{
		RenderMetric("Workouts", fmt.Sprintf("%d", totals.Count)),
		RenderMetric("Total time", service.FormatHours(totals.Duration)),
		RenderMetric("Total distance", fmt.Sprintf("%.3f km", totals.Distance)),
		RenderMetric("Total calories", fmt.Sprintf("%.3f", totals.Calories)),
	}
	if totals.Failed > 0 {
		lines = append(lines, RenderMetric("Rejected", errorStyle.Render(fmt.Sprintf("%d", totals.Failed))))
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m ReportModel) renderChart() string {
	calories := service.Calories(m.entries)
	if len(calories) < 2 {
		return ""
	}

	title := cardTitleStyle.Render("Calories per Workout")
	graph := asciigraph.Plot(calories,
		asciigraph.Height(service.ChartHeight),
		asciigraph.Width(service.ChartWidth),
		asciigraph.Precision(service.ChartPrecision),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}
