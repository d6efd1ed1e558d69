package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ErrNotTerminal is returned by Editor.ReadLine when stdin is not a terminal.
var ErrNotTerminal = errors.New("stdin is not a terminal, use --message to pass the commit message")

// KeyMap defines the key bindings of the line editor.
type KeyMap struct {
	Accept     key.Binding
	Complete   key.Binding
	AcceptHint key.Binding
	Cancel     key.Binding
	Interrupt  key.Binding
	EndOfInput key.Binding
}

// DefaultKeyMap is the default key map of the line editor.
var DefaultKeyMap = KeyMap{
	Accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "accept"),
	),
	Complete: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "complete"),
	),
	AcceptHint: key.NewBinding(
		key.WithKeys("right", "ctrl+f", "end"),
		key.WithHelp("→", "accept hint"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "undo completion"),
	),
	Interrupt: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "abort"),
	),
	EndOfInput: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "abort on empty line"),
	),
}

// Styles defines how the line editor renders.
type Styles struct {
	Prompt            lipgloss.Style
	Hint              lipgloss.Style
	Candidate         lipgloss.Style
	SelectedCandidate lipgloss.Style
}

// DefaultStyles returns the default styles,
// rendering hints in hintColor.
func DefaultStyles(hintColor string) Styles {
	hint := lipgloss.NewStyle().Faint(true)
	if hintColor != "" {
		hint = hint.Foreground(lipgloss.Color(hintColor))
	}
	return Styles{
		Prompt:            lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"}).Bold(true),
		Hint:              hint,
		Candidate:         lipgloss.NewStyle().Faint(true),
		SelectedCandidate: lipgloss.NewStyle().Reverse(true),
	}
}

// EditorOptions configures an Editor.
type EditorOptions struct {
	// Input defaults to os.Stdin, which must be a terminal.
	Input io.Reader

	// Output defaults to os.Stderr.
	Output io.Writer

	KeyMap *KeyMap
	Styles *Styles
	Log    *slog.Logger
}

// Editor is a single-line editor session with completion and hints
// supplied by a Helper. It keeps no history.
type Editor struct {
	helper Helper
	input  io.Reader
	output io.Writer
	keys   KeyMap
	styles Styles
	log    *slog.Logger
}

var _ LineReader = (*Editor)(nil)

// NewEditor starts an editor session using helper.
func NewEditor(helper Helper, opts EditorOptions) *Editor {
	e := &Editor{
		helper: helper,
		input:  opts.Input,
		output: opts.Output,
		keys:   DefaultKeyMap,
		styles: DefaultStyles(""),
		log:    opts.Log,
	}
	if e.input == nil {
		e.input = os.Stdin
	}
	if e.output == nil {
		e.output = os.Stderr
	}
	if opts.KeyMap != nil {
		e.keys = *opts.KeyMap
	}
	if opts.Styles != nil {
		e.styles = *opts.Styles
	}
	if e.log == nil {
		e.log = slog.New(slog.DiscardHandler)
	}
	return e
}

// ReadLine shows prompt and reads one line.
//
// It returns ErrInterrupted for Ctrl+C or a cancelled ctx,
// and ErrEndOfInput for Ctrl+D on an empty line.
func (e *Editor) ReadLine(ctx context.Context, prompt string) (string, error) {
	if f, ok := e.input.(*os.File); ok {
		if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
			return "", ErrNotTerminal
		}
	}

	m := newLineModel(prompt, e.helper, e.keys, e.styles)
	program := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(e.input),
		tea.WithOutput(e.output),
	)

	final, err := program.Run()
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, tea.ErrProgramKilled) {
			return "", ErrInterrupted
		}
		return "", fmt.Errorf("line editor: %w", err)
	}

	result, ok := final.(*lineModel)
	if !ok {
		return "", fmt.Errorf("line editor: unexpected model %T", final)
	}
	if result.err != nil {
		return "", result.err
	}
	e.log.Debug("Read message", "length", len(result.line))
	return result.line, nil
}

// completionCycle tracks Tab presses cycling through candidates.
// Index -1 stands for the text before completion.
type completionCycle struct {
	original   string
	cursor     int
	start      int
	candidates []Candidate
	index      int
}

// lineModel is the bubbletea model behind Editor.
type lineModel struct {
	input  textinput.Model
	helper Helper
	keys   KeyMap
	styles Styles

	hint  string
	cycle *completionCycle

	line string
	err  error
	done bool
}

var _ tea.Model = (*lineModel)(nil)

func newLineModel(prompt string, helper Helper, keys KeyMap, styles Styles) *lineModel {
	input := textinput.New()
	input.Prompt = prompt
	input.PromptStyle = styles.Prompt
	input.CharLimit = 0
	input.Focus()

	m := &lineModel{
		input:  input,
		helper: helper,
		keys:   keys,
		styles: styles,
	}
	m.refreshHint()
	return m
}

func (m *lineModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *lineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Interrupt):
		m.err = ErrInterrupted
		m.done = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.EndOfInput) && m.input.Value() == "":
		m.err = ErrEndOfInput
		m.done = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Accept):
		m.line = m.input.Value()
		m.done = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Complete):
		m.complete()
		return m, nil

	case key.Matches(keyMsg, m.keys.Cancel) && m.cycle != nil:
		m.setLine(m.cycle.original, m.cycle.cursor)
		m.cycle = nil
		return m, nil

	case key.Matches(keyMsg, m.keys.AcceptHint) && m.canAcceptHint():
		value := m.input.Value() + m.hint
		m.cycle = nil
		m.setLine(value, len([]rune(value)))
		return m, nil
	}

	m.cycle = nil
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refreshHint()
	return m, cmd
}

// complete starts a completion cycle, or advances the current one.
// Candidates replace the text between the start offset and the cursor.
func (m *lineModel) complete() {
	if m.cycle == nil {
		line, cursor := m.input.Value(), m.input.Position()
		start, candidates := m.helper.Complete(line, cursor)
		if len(candidates) == 0 {
			return
		}
		m.cycle = &completionCycle{
			original:   line,
			cursor:     cursor,
			start:      start,
			candidates: candidates,
			index:      -1,
		}
	}

	c := m.cycle
	c.index++
	if c.index >= len(c.candidates) {
		// Wrap around to the original text.
		c.index = -1
		m.setLine(c.original, c.cursor)
		return
	}

	runes := []rune(c.original)
	start := min(max(c.start, 0), c.cursor)
	replacement := []rune(c.candidates[c.index].Replacement)

	var b strings.Builder
	b.WriteString(string(runes[:start]))
	b.WriteString(string(replacement))
	b.WriteString(string(runes[c.cursor:]))
	m.setLine(b.String(), start+len(replacement))

	// A single candidate completes without cycling.
	if len(c.candidates) == 1 {
		m.cycle = nil
	}
}

func (m *lineModel) canAcceptHint() bool {
	return m.hint != "" && m.input.Position() == len([]rune(m.input.Value()))
}

func (m *lineModel) setLine(value string, cursor int) {
	m.input.SetValue(value)
	m.input.SetCursor(cursor)
	m.refreshHint()
}

func (m *lineModel) refreshHint() {
	m.hint = m.helper.Hint(m.input.Value(), m.input.Position())
}

func (m *lineModel) View() string {
	if m.done {
		return m.styles.Prompt.Render(m.input.Prompt) + m.input.Value() + "\n"
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	if m.hint != "" {
		b.WriteString(m.styles.Hint.Render(m.hint))
	}

	if c := m.cycle; c != nil {
		b.WriteString("\n")
		for i, candidate := range c.candidates {
			if i > 0 {
				b.WriteString("  ")
			}
			style := m.styles.Candidate
			if i == c.index {
				style = m.styles.SelectedCandidate
			}
			b.WriteString(style.Render(candidate.Display))
		}
	}
	return b.String()
}
