package tui

import (
	"ftracker/internal/config"
	"ftracker/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenReport Screen = iota
	ScreenDetail
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	report ReportModel
	detail DetailModel
	help   HelpModel

	// Services
	reportService *service.ReportService

	// Window dimensions
	width  int
	height int

	// Status message
	status string
}

// NewApp creates a new App with all dependencies
func NewApp(reportService *service.ReportService, display config.DisplayConfig) *App {
	return &App{
		screen:        ScreenReport,
		reportService: reportService,
		report:        NewReportModel(reportService, !display.HideChart),
		help:          NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.report.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "1":
			a.screen = ScreenReport
			return a, nil
		case "?":
			if a.screen != ScreenHelp {
				a.prevScreen = a.screen
				a.screen = ScreenHelp
			}
			return a, nil
		case "esc":
			switch a.screen {
			case ScreenHelp:
				a.screen = a.prevScreen
				return a, nil
			case ScreenDetail:
				a.screen = ScreenReport
				return a, nil
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case OpenDetailMsg:
		a.detail = NewDetailModel(msg.Entry, msg.Share, a.width, a.height)
		a.screen = ScreenDetail
		if msg.Entry.OK() {
			a.status = ""
		} else {
			a.status = "Package " + msg.Entry.Package.Code + " was rejected"
		}
		return a, a.detail.Init()
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenReport:
		var m tea.Model
		m, cmd = a.report.Update(msg)
		a.report = m.(ReportModel)
	case ScreenDetail:
		var m tea.Model
		m, cmd = a.detail.Update(msg)
		a.detail = m.(DetailModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenReport:
		content = a.report.View()
	case ScreenDetail:
		content = a.detail.View()
	case ScreenHelp:
		content = a.help.View()
	}

	footer := a.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content, footer)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("Fitness Tracker Workout Report")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Report", ScreenReport},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

func (a *App) renderFooter() string {
	if a.status != "" {
		return statusStyle.Render(a.status)
	}
	return ""
}
