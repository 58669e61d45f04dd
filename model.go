package main

import (
	"github.com/a-poor/chatbox/bubbles/chatlist"
	"github.com/a-poor/chatbox/bubbles/textbox"
	"github.com/a-poor/chatbox/chat"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

var _ tea.Model = (*model)(nil)

const (
	focusInput = "textarea"
	focusList  = "viewport"
)

type model struct {
	log  *zap.Logger
	w, h int // Track the size of the window

	focus string

	store *chat.Store
	list  chatlist.Model
	tb    textbox.Model
}

func newModel(cfg config, log *zap.Logger) *model {
	// Set a default size (this will be updated quickly)
	w, h := 80, 24

	// Create the input
	tb := textbox.New(textbox.Options{
		Width:       w,
		Placeholder: cfg.placeholder,
		Logger:      log,
	})
	tb.Focus()

	// Create the message list
	list := chatlist.New(chatlist.Options{
		Width:     w,
		Height:    h - tb.Height(),
		Smooth:    cfg.smooth,
		Tolerance: cfg.tolerance,
		Logger:    log,
	})

	// Combine and return
	return &model{
		log:   log,
		w:     w,
		h:     h,
		focus: focusInput,
		store: chat.NewStore(cfg.welcome),
		list:  list,
		tb:    tb,
	}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(
		m.tb.Init(),
		func() tea.Msg {
			return UpdateChatMsg{}
		},
	)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Update the tracked size
		m.w, m.h = msg.Width, msg.Height

		// Input gets what it needs, the list gets the rest
		m.tb.SetWidth(msg.Width)
		m.list.SetSize(msg.Width, msg.Height-m.tb.Height())
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			if m.focus == focusInput {
				return m, func() tea.Msg {
					return SetFocusMsg{focus: focusList}
				}
			}
			return m, func() tea.Msg {
				return SetFocusMsg{focus: focusInput}
			}
		case "pgup", "pgdown":
			return m.updateList(msg)
		default:
			if m.focus == focusList {
				return m.updateList(msg)
			}
			return m.updateInput(msg)
		}
	case tea.MouseMsg:
		return m.updateList(msg)
	case SetFocusMsg:
		switch msg.focus {
		case focusInput:
			m.focus = focusInput
			return m, m.tb.Focus()
		case focusList:
			m.focus = focusList
			m.tb.Blur()
		}
		return m, nil
	case textbox.SubmitMsg:
		m.store.Append(msg.Text)
		m.log.Info("message sent",
			zap.Int("length", len(msg.Text)),
			zap.Int("total", m.store.Len()),
		)
		return m, m.list.SetMessages(m.store.Messages())
	case UpdateChatMsg:
		return m, m.list.SetMessages(m.store.Messages())
	}

	// Anything else (animation frames, cursor blinks) goes to both
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	m.tb, cmd = m.tb.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.tb, cmd = m.tb.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.list.View(),
		m.tb.View(),
	)
}

type SetFocusMsg struct {
	focus string
}

// UpdateChatMsg re-renders the list from the store.
type UpdateChatMsg struct{}
