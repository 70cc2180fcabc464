// Package tui implements the interactive message viewer: a viewport that
// toggles between the raw and parsed representation of one assistant
// message. Every toggle re-runs the parsing pipeline on the retained raw
// text, which is exactly how the chat UI's display toggle behaves.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/andydunkin/launchkit-frontend/internal/message"
)

var (
	barStyle    = lipgloss.NewStyle().Background(lipgloss.Color("#1E1E2E")).Foreground(lipgloss.Color("#CDD6F4")).Padding(0, 1)
	modeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	keyHelpText = "tab raw/parsed · d developer · t technical · c code · f files · q quit"
)

// Model is the bubbletea model for the viewer.
type Model struct {
	raw          string
	opts         message.Options
	glamourStyle string

	result  message.Parsed
	showRaw bool
	ready   bool
	width   int
	height  int
	vp      viewport.Model
}

// New creates a viewer over one raw message with starting options.
func New(raw string, opts message.Options, glamourStyle string) Model {
	m := Model{
		raw:          raw,
		opts:         opts,
		glamourStyle: glamourStyle,
	}
	m.result = message.ParseMessage(raw, opts)
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-1)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - 1
		}
		m.vp.SetContent(m.renderBody())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.showRaw = !m.showRaw
		case "d":
			if m.opts.UserType == message.UserDeveloper {
				m.opts.UserType = message.UserBeginner
			} else {
				m.opts.UserType = message.UserDeveloper
			}
		case "t":
			m.opts.ShowTechnicalDetails = !m.opts.ShowTechnicalDetails
		case "c":
			m.opts.HideCodeBlocks = !m.opts.HideCodeBlocks
		case "f":
			m.opts.HideFileMarkers = !m.opts.HideFileMarkers
		default:
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return m, cmd
		}

		// Any option change re-parses the retained raw text. The pipeline
		// is stateless, so this deterministically reproduces whichever
		// representation the current options select.
		m.result = message.ParseMessage(m.raw, m.opts)
		if m.ready {
			m.vp.SetContent(m.renderBody())
			m.vp.GotoTop()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.vp.View() + "\n" + m.statusBar()
}

// Result returns the current parse result, mainly for tests.
func (m Model) Result() message.Parsed {
	return m.result
}

func (m Model) renderBody() string {
	if m.showRaw {
		return m.raw
	}

	content := m.result.Content
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(m.width)}
	if m.glamourStyle == "" || m.glamourStyle == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(m.glamourStyle))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

func (m Model) statusBar() string {
	mode := "PARSED"
	if m.showRaw {
		mode = "RAW"
	}

	parts := []string{modeStyle.Render(mode), string(m.opts.UserType)}
	if m.opts.ShowTechnicalDetails {
		parts = append(parts, "technical")
	}
	if m.result.DeploymentStatus != message.StatusUnknown {
		parts = append(parts, string(m.result.DeploymentStatus))
	}
	if n := len(m.result.FilesGenerated); n > 0 {
		parts = append(parts, fmt.Sprintf("%d files", n))
	}
	parts = append(parts, keyHelpText)

	bar := barStyle.Render(strings.Join(parts, "  ·  "))
	if m.width > 0 {
		bar = truncate.String(bar, uint(m.width))
	}
	return bar
}
