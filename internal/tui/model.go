package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/duplocloud-labs/assistant/internal/types"
)

// Turn is one entry in the session transcript. The transcript is append-only
// and lives only for the lifetime of the chat session.
type Turn struct {
	Role       string
	Content    string
	Source     string
	Confidence string
}

const (
	roleUser      = "user"
	roleAssistant = "assistant"
)

type queryResultMsg struct {
	resp *types.QueryResponse
}

type queryErrMsg struct {
	err error
}

// Model is the chat TUI state.
type Model struct {
	client   *Client
	renderer *glamour.TermRenderer

	turns   []Turn
	input   textinput.Model
	view    viewport.Model
	spin    spinner.Model
	waiting bool
	ready   bool
	errLine string
	width   int
	height  int
}

// NewModel creates the chat model pointed at the assistant API.
func NewModel(apiURL string) (Model, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return Model{}, fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	input := textinput.New()
	input.Placeholder = "Ask a question..."
	input.Focus()
	input.CharLimit = 500

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))

	return Model{
		client:   NewClient(apiURL),
		renderer: renderer,
		input:    input,
		spin:     spin,
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Leave room for title, input and status lines
		m.view = viewport.New(msg.Width, max(msg.Height-6, 3))
		m.view.SetContent(m.transcriptView())
		m.input.Width = msg.Width - 4
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text == "" || m.waiting {
				return m, nil
			}
			m.turns = append(m.turns, Turn{Role: roleUser, Content: text})
			m.input.Reset()
			m.waiting = true
			m.errLine = ""
			m.refreshViewport()
			return m, tea.Batch(m.spin.Tick, m.sendQuery(text))
		}

	case queryResultMsg:
		m.waiting = false
		m.turns = append(m.turns, Turn{
			Role:       roleAssistant,
			Content:    msg.resp.Answer,
			Source:     msg.resp.Source,
			Confidence: msg.resp.Confidence,
		})
		m.refreshViewport()
		return m, nil

	case queryErrMsg:
		// Network failure: show the error, keep the transcript as-is
		m.waiting = false
		m.errLine = msg.err.Error()
		return m, nil

	case spinner.TickMsg:
		if m.waiting {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var inputCmd, viewCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	m.view, viewCmd = m.view.Update(msg)
	return m, tea.Batch(inputCmd, viewCmd)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Starting..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("DuploCloud Assistant"))
	b.WriteString("\n")
	b.WriteString(m.view.View())
	b.WriteString("\n")

	if m.waiting {
		b.WriteString(m.spin.View() + " Thinking...")
	} else if m.errLine != "" {
		b.WriteString(errorStyle.Render("Error communicating with the assistant: " + m.errLine))
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: send • esc: quit"))

	return b.String()
}

func (m *Model) refreshViewport() {
	m.view.SetContent(m.transcriptView())
	m.view.GotoBottom()
}

func (m Model) transcriptView() string {
	var b strings.Builder

	for _, turn := range m.turns {
		switch turn.Role {
		case roleUser:
			b.WriteString(userLabelStyle.Render("You"))
			b.WriteString("\n")
			b.WriteString(turn.Content)
			b.WriteString("\n\n")
		case roleAssistant:
			b.WriteString(assistantLabelStyle.Render("Assistant"))
			b.WriteString("\n")
			b.WriteString(m.renderMarkdown(turn.Content))
			if caption := turnCaption(turn); caption != "" {
				b.WriteString(captionStyle.Render(caption))
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) renderMarkdown(content string) string {
	rendered, err := m.renderer.Render(content)
	if err != nil {
		return content + "\n"
	}
	return rendered
}

func (m Model) sendQuery(text string) tea.Cmd {
	return func() tea.Msg {
		resp, err := m.client.Query(context.Background(), text)
		if err != nil {
			return queryErrMsg{err: err}
		}
		return queryResultMsg{resp: resp}
	}
}

func turnCaption(turn Turn) string {
	var parts []string
	if turn.Source != "" {
		parts = append(parts, "Source: "+turn.Source)
	}
	if turn.Confidence != "" {
		parts = append(parts, "Confidence: "+turn.Confidence)
	}
	return strings.Join(parts, " • ")
}
