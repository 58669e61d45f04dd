// Package chatlist renders the chat history in a scrollable viewport and
// keeps the newest message in view unless the user has scrolled away.
package chatlist

import (
	"math"
	"strings"
	"time"

	"github.com/a-poor/chatbox/chat"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"go.uber.org/zap"
)

const fps = 60

// Options configures a Model.
type Options struct {
	Width, Height int

	// Smooth animates auto-scroll instead of jumping to the bottom.
	Smooth bool

	// Tolerance in rows, see AtBottom. Defaults to DefaultRowTolerance.
	Tolerance int

	Logger *zap.Logger
}

// Model is the message list half of the chat view.
type Model struct {
	vp     viewport.Model
	width  int
	smooth bool
	log    *zap.Logger

	msgs  []chat.Message
	keys  []string
	cache map[string]string // Rendered message, by ID

	tracker Tracker

	// Auto-scroll animation
	spring    harmonica.Spring
	animID    int
	animating bool
	pos, vel  float64
	target    float64
}

// frameMsg advances the auto-scroll animation with the given id.
type frameMsg struct {
	id int
}

func New(opts Options) Model {
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 20
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultRowTolerance
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return Model{
		vp:      viewport.New(opts.Width, opts.Height),
		width:   opts.Width,
		smooth:  opts.Smooth,
		log:     opts.Logger,
		cache:   map[string]string{},
		tracker: Tracker{Tolerance: opts.Tolerance},
		spring:  harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		return m, m.step(msg)
	case tea.KeyMsg, tea.MouseMsg:
		before := m.vp.YOffset
		vp, cmd := m.vp.Update(msg)
		m.vp = vp

		// Only input that actually moves the list counts as a scroll
		if m.vp.YOffset != before {
			m.animating = false
			m.track()
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	return m.vp.View()
}

// SetSize resizes the list. Rendered messages are thrown away when the
// width changes.
func (m *Model) SetSize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	if w != m.width {
		m.width = w
		clear(m.cache)
	}
	m.vp.Width = w
	m.vp.Height = h
	m.refresh()
	if !m.tracker.Away() {
		m.animating = false
		m.vp.GotoBottom()
		return
	}

	// A resize can leave the offset past the new bottom, or bring the
	// bottom back into range. Either way it counts as a scroll.
	m.vp.SetYOffset(m.vp.YOffset)
	m.track()
}

// SetMessages replaces the rendered history and, unless the user has
// scrolled away, scrolls to the newest message. The scroll is computed
// after the new content is laid out.
func (m *Model) SetMessages(msgs []chat.Message) tea.Cmd {
	m.msgs = msgs
	m.refresh()
	if m.tracker.Away() {
		return nil
	}
	return m.scrollToBottom()
}

// ScrolledAway reports whether auto-scroll is currently suspended.
func (m Model) ScrolledAway() bool {
	return m.tracker.Away()
}

// Keys returns the IDs of the rendered messages, in render order.
func (m Model) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Animating reports whether an auto-scroll animation is in flight.
func (m Model) Animating() bool {
	return m.animating
}

func (m *Model) geometry() Geometry {
	return Geometry{
		ScrollHeight: max(m.vp.TotalLineCount(), m.vp.Height),
		ClientHeight: m.vp.Height,
		ScrollTop:    m.vp.YOffset,
	}
}

func (m *Model) track() {
	was := m.tracker.Away()
	if away := m.tracker.Track(m.geometry()); away != was {
		m.log.Debug("scroll tracking changed",
			zap.Bool("scrolled_away", away),
			zap.Int("offset", m.vp.YOffset),
		)
	}
}

func (m *Model) maxOffset() int {
	return max(0, m.vp.TotalLineCount()-m.vp.Height)
}

func (m *Model) scrollToBottom() tea.Cmd {
	target := m.maxOffset()
	if m.vp.YOffset == target {
		m.animating = false
		return nil
	}
	if !m.smooth {
		m.animating = false
		m.vp.GotoBottom()
		return nil
	}

	// Keep the current velocity if we're retargeting mid-flight
	if !m.animating {
		m.pos, m.vel = float64(m.vp.YOffset), 0
	}
	m.animID++
	m.animating = true
	m.target = float64(target)
	return m.frame()
}

func (m *Model) frame() tea.Cmd {
	id := m.animID
	return tea.Tick(time.Second/fps, func(time.Time) tea.Msg {
		return frameMsg{id: id}
	})
}

func (m *Model) step(msg frameMsg) tea.Cmd {
	if !m.animating || msg.id != m.animID || m.tracker.Away() {
		return nil
	}
	m.pos, m.vel = m.spring.Update(m.pos, m.vel, m.target)
	if math.Abs(m.target-m.pos) < 0.5 && math.Abs(m.vel) < 0.5 {
		m.vp.SetYOffset(int(m.target))
		m.animating = false
		return nil
	}
	m.vp.SetYOffset(int(math.Round(m.pos)))
	return m.frame()
}

func (m *Model) refresh() {
	parts := make([]string, 0, len(m.msgs)+1)
	keys := make([]string, 0, len(m.msgs))
	for _, msg := range m.msgs {
		s, ok := m.cache[msg.ID]
		if !ok {
			s = m.renderMessage(msg)
			m.cache[msg.ID] = s
		}
		keys = append(keys, msg.ID)
		parts = append(parts, s)
	}

	// Empty line after the last message; it's what auto-scroll brings
	// into view.
	parts = append(parts, "")

	m.keys = keys
	m.vp.SetContent(strings.Join(parts, "\n\n"))
}

func (m *Model) renderMessage(msg chat.Message) string {
	switch msg.Type {
	case chat.TypeWelcome:
		return welcomeStyle.Width(m.width).Render(msg.Content)
	case chat.TypeUser:
		w := max(m.width*bubbleNum/bubbleDen-userStyle.GetHorizontalFrameSize(), 1)
		text := wrap.String(wordwrap.String(msg.Content, w), w)
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, userStyle.Render(text))
	default:
		return defaultStyle.Width(m.width).Render(msg.Content)
	}
}
