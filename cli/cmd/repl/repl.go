// Package repl implements the interactive substitution evaluator.
//
// Lines are parsed for $(tag …) markers and performed against a persistent
// context, so configurations bound by one line (or by flags at startup)
// remain visible to later lines. Input history persists across sessions in
// the user cache directory.
package repl

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zflat/launch/cli/cmd"
	"github.com/zflat/launch/frontend"
	"github.com/zflat/launch/log"
	"github.com/zflat/launch/pkg"
	"github.com/zflat/launch/sub"
)

const prompt = "➜ "

// transcriptLimit is the number of evaluated lines kept on screen.
const transcriptLimit = 10

// Styles.
//
//nolint:gochecknoglobals
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2"))
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1"))
	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Bold(true)
)

// Command is the repl subcommand. It accepts the same context bindings as
// eval and evaluates lines interactively against the resulting context.
type Command struct {
	Arg         []string `help:"Bind a launch configuration (NAME=VALUE)"      name:"arg" short:"a"`
	Env         []string `help:"Bind an environment variable (NAME=VALUE)"     name:"env" short:"e"`
	Description string   `help:"Launch description to visit before evaluating" short:"d"  type:"existingfile"`
}

// Run executes the repl command.
func (c *Command) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	sctx, err := cmd.MakeContext(c.Arg, c.Env, c.Description)
	if err != nil {
		return sub.WrapError(err).
			With(slog.String("command", "repl"))
	}

	history := NewHistory(filepath.Join(pkg.CacheDir(), baseHistory))
	if err := history.Load(); err != nil {
		log.WarnContext(ctx, "load history",
			slog.String("error", err.Error()),
		)
	}

	_, err = tea.NewProgram(
		newModel(sctx, history),
		tea.WithContext(ctx),
	).Run()

	return err
}

// transcriptEntry is one evaluated line with its result or error.
type transcriptEntry struct {
	line   string
	result string
	err    error
}

type model struct {
	input      textinput.Model
	sctx       *sub.Context
	history    *History
	histIdx    int
	pending    string
	candidates []string
	candIdx    int
	transcript []transcriptEntry
	quitting   bool
}

func newModel(sctx *sub.Context, history *History) *model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.Placeholder = "$(eval 'sqrt(16)')"
	ti.Focus()

	return &model{
		input:   ti,
		sctx:    sctx,
		history: history,
		histIdx: history.Len(),
	}
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInput(msg)
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		m.quitting = true

		return m, tea.Quit

	case tea.KeyEnter:
		return m.evaluate()

	case tea.KeyUp:
		m.browseHistory(-1)

		return m, nil

	case tea.KeyDown:
		m.browseHistory(+1)

		return m, nil

	case tea.KeyTab:
		m.acceptCandidate()

		return m, nil

	case tea.KeyShiftTab:
		m.cycleCandidate()

		return m, nil

	default:
		return m.updateInput(msg)
	}
}

// View implements tea.Model.
func (m *model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	for _, entry := range m.transcript {
		b.WriteString(promptStyle.Render(prompt))
		b.WriteString(entry.line)
		b.WriteByte('\n')

		if entry.err != nil {
			b.WriteString(errorStyle.Render(entry.err.Error()))
		} else {
			b.WriteString(resultStyle.Render(entry.result))
		}

		b.WriteByte('\n')
	}

	b.WriteString(m.input.View())
	b.WriteByte('\n')

	if len(m.candidates) > 0 {
		hints := make([]string, len(m.candidates))

		for i, candidate := range m.candidates {
			if i == m.candIdx {
				hints[i] = selectedStyle.Render(candidate)
			} else {
				hints[i] = hintStyle.Render(candidate)
			}
		}

		b.WriteString(strings.Join(hints, "  "))
		b.WriteByte('\n')
	}

	return b.String()
}

// updateInput forwards the message to the text input and refreshes the
// completion candidates for the new cursor position.
func (m *model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	m.candidates = complete(m.input.Value(), m.input.Position())
	m.candIdx = 0

	return m, cmd
}

// evaluate performs the current line and appends it to the transcript.
func (m *model) evaluate() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return m, nil
	}

	if line == "quit" || line == "exit" {
		m.quitting = true

		return m, tea.Quit
	}

	entry := transcriptEntry{line: line}

	subs, err := frontend.Parse(line)
	if err == nil {
		entry.result, err = sub.Perform(m.sctx, subs)
	}

	entry.err = err

	m.transcript = append(m.transcript, entry)
	if len(m.transcript) > transcriptLimit {
		m.transcript = m.transcript[len(m.transcript)-transcriptLimit:]
	}

	if err := m.history.Write(line); err != nil {
		log.Warn("write history", slog.String("error", err.Error()))
	}

	m.histIdx = m.history.Len()
	m.pending = ""
	m.candidates = nil
	m.input.Reset()

	return m, nil
}

// browseHistory moves through history by delta, saving the edited line so it
// can be restored when navigating past the newest entry.
func (m *model) browseHistory(delta int) {
	next := m.histIdx + delta
	if next < 0 || next > m.history.Len() {
		return
	}

	if m.histIdx == m.history.Len() {
		m.pending = m.input.Value()
	}

	m.histIdx = next

	if next == m.history.Len() {
		m.input.SetValue(m.pending)
	} else {
		entry, err := m.history.Entry(next)
		if err != nil {
			return
		}

		m.input.SetValue(entry)
	}

	m.input.CursorEnd()
	m.candidates = nil
	m.candIdx = 0
}

// acceptCandidate replaces the word at the cursor with the selected
// completion candidate.
func (m *model) acceptCandidate() {
	if len(m.candidates) == 0 {
		m.candidates = complete(m.input.Value(), m.input.Position())
		m.candIdx = 0

		return
	}

	value, cursor := accept(
		m.input.Value(),
		m.input.Position(),
		m.candidates[m.candIdx],
	)

	m.input.SetValue(value)
	m.input.SetCursor(cursor)
	m.candidates = nil
	m.candIdx = 0
}

// cycleCandidate advances the selected completion candidate.
func (m *model) cycleCandidate() {
	if len(m.candidates) == 0 {
		return
	}

	m.candIdx = (m.candIdx + 1) % len(m.candidates)
}
