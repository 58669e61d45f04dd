// Package textbox is the message composer: a single line input with a
// row of icons next to it.
package textbox

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// DefaultPlaceholder is shown while the input is empty.
const DefaultPlaceholder = "Digite uma mensagem..."

// SubmitMsg carries accepted input, already trimmed and never empty.
type SubmitMsg struct {
	Text string
}

// Icon is a decorative affordance shown to the right of the input. Icons
// have no behaviour attached.
type Icon struct {
	Name     string
	Glyph    string
	Position int
}

var icons = []Icon{
	{Name: "message-circle", Glyph: "💬", Position: 0},
	{Name: "gift", Glyph: "🎁", Position: 1},
	{Name: "share", Glyph: "🔗", Position: 2},
	{Name: "image", Glyph: "🖼", Position: 3},
}

// Icons returns a copy of the fixed icon row, left to right.
func Icons() []Icon {
	out := make([]Icon, len(icons))
	copy(out, icons)
	return out
}

var (
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(lipgloss.Color("#1F2937")) // gray-800

	iconStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			PaddingLeft(1)
)

var submitKey = key.NewBinding(key.WithKeys("enter"))

type Options struct {
	Width       int
	Placeholder string
	Logger      *zap.Logger
}

type Model struct {
	ta  textarea.Model
	log *zap.Logger
}

func New(opts Options) Model {
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Placeholder == "" {
		opts.Placeholder = DefaultPlaceholder
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	ta := textarea.New()
	ta.Placeholder = opts.Placeholder
	ta.ShowLineNumbers = false
	ta.Prompt = "> "
	ta.CharLimit = 0
	ta.SetHeight(1)
	ta.KeyMap.InsertNewline.SetEnabled(false)

	m := Model{ta: ta, log: opts.Logger}
	m.SetWidth(opts.Width)
	return m
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, submitKey) {
		return m, m.submit()
	}
	ta, cmd := m.ta.Update(msg)
	m.ta = ta
	return m, cmd
}

// submit clears the input and returns a SubmitMsg, or does nothing at
// all when the input is blank.
func (m *Model) submit() tea.Cmd {
	text := strings.TrimSpace(m.ta.Value())
	if text == "" {
		m.log.Debug("ignoring empty submission")
		return nil
	}
	m.ta.Reset()
	return func() tea.Msg {
		return SubmitMsg{Text: text}
	}
}

func (m Model) View() string {
	glyphs := make([]string, 0, len(icons))
	for _, ic := range icons {
		glyphs = append(glyphs, iconStyle.Render(ic.Glyph))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center,
		m.ta.View(),
		lipgloss.JoinHorizontal(lipgloss.Center, glyphs...),
	)
	return borderStyle.Render(row)
}

// Height is the number of rows View takes up.
func (m Model) Height() int {
	return m.ta.Height() + borderStyle.GetVerticalFrameSize()
}

// SetWidth sizes the input so that it and the icon row fill w columns.
func (m *Model) SetWidth(w int) {
	m.ta.SetWidth(max(w-iconsWidth(), 1))
}

func (m *Model) Focus() tea.Cmd {
	return m.ta.Focus()
}

func (m *Model) Blur() {
	m.ta.Blur()
}

func (m Model) Focused() bool {
	return m.ta.Focused()
}

func (m Model) Value() string {
	return m.ta.Value()
}

func (m *Model) SetValue(s string) {
	m.ta.SetValue(s)
}

func iconsWidth() int {
	w := 0
	for _, ic := range icons {
		w += lipgloss.Width(iconStyle.Render(ic.Glyph))
	}
	return w
}
