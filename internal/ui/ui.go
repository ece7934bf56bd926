// Package ui runs the interactive terminal front end: it routes key and
// mouse events to the task list, persists after every mutation, and
// renders the fixed box layout.
package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"todoline/internal/config"
	"todoline/internal/list"
	"todoline/internal/storage"
)

type keymap struct {
	Quit   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

func newKeymap(k config.Keymap) keymap {
	return keymap{
		Quit:   key.NewBinding(key.WithKeys(k.Quit), key.WithHelp(k.Quit, "quit")),
		Submit: key.NewBinding(key.WithKeys(k.Submit), key.WithHelp(k.Submit, "add")),
		Cancel: key.NewBinding(key.WithKeys(k.Cancel), key.WithHelp(k.Cancel, "back")),
	}
}

type Model struct {
	store  *storage.Store
	cfg    config.Config
	list   *list.List
	keys   keymap
	logger *log.Logger
	err    error
}

func newModel(store *storage.Store, cfg config.Config, l *list.List, logger *log.Logger) Model {
	return Model{
		store:  store,
		cfg:    cfg,
		list:   l,
		keys:   newKeymap(cfg.Keys),
		logger: logger,
	}
}

// Run loads the stored tasks and drives the program until the quit key is
// pressed or persistence fails. The terminal is restored on every exit
// path, error paths included.
func Run(store *storage.Store, cfg config.Config, logger *log.Logger) error {
	tasks, err := store.Load()
	if err != nil {
		return err
	}
	m := newModel(store, cfg, list.New(tasks), logger)
	// Seed write: the renumbered snapshot becomes the stored baseline
	// before the first event is read.
	if err := store.Save(m.list.Tasks()); err != nil {
		return err
	}

	logger.Info("starting", "tasks", m.list.Len())
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	out, err := program.Run()
	if err != nil {
		return err
	}
	if final, ok := out.(Model); ok && final.err != nil {
		return final.err
	}
	logger.Info("exited")
	return nil
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.cfg.UI.Title)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	switch m.list.Mode() {
	case list.ModeNormal:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	case list.ModeInput:
		return m.updateInputMode(msg)
	case list.ModeUpdate:
		return m.updateEditMode(msg)
	}
	return m, nil
}

// updateInputMode edits the new-task buffer. Enter submits and returns to
// Normal mode; escape returns without submitting, keeping the buffer for
// the next visit to the input box.
func (m Model) updateInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.list.Add()
		m.list.SetMode(list.ModeNormal)
		return m.persist()
	case key.Matches(msg, m.keys.Cancel):
		m.list.SetMode(list.ModeNormal)
		return m, nil
	}
	switch msg.Type {
	case tea.KeyBackspace:
		m.list.DeleteBeforeCursor()
	case tea.KeyLeft:
		m.list.MoveCursor(-1)
	case tea.KeyRight:
		m.list.MoveCursor(1)
	case tea.KeySpace:
		m.list.InsertRune(' ')
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.list.InsertRune(r)
		}
	}
	return m, nil
}

// updateEditMode applies character edits directly to the marked task.
func (m Model) updateEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Submit) {
		m.list.EndEdit()
		return m, nil
	}
	switch msg.Type {
	case tea.KeyBackspace:
		m.list.BackspaceEdit()
		return m.persist()
	case tea.KeySpace:
		m.list.AppendEditRune(' ')
		return m.persist()
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.list.AppendEditRune(r)
		}
		return m.persist()
	}
	return m, nil
}

// handleMouse acts on left-button presses only. Release events are
// dropped so a physical click fires exactly once.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	target := hitTest(msg.X, msg.Y, m.list.Len())
	switch target.kind {
	case hitInput:
		m.list.EndEdit()
		m.list.SetMode(list.ModeInput)
	case hitCheckbox:
		m.list.EndEdit()
		if err := m.list.Toggle(target.index); err != nil {
			m.logger.Error("toggle", "index", target.index, "err", err)
			return m, nil
		}
		m.logger.Debug("toggled", "index", target.index)
		return m.persist()
	case hitDelete:
		m.list.EndEdit()
		if err := m.list.Delete(target.index); err != nil {
			m.logger.Error("delete", "index", target.index, "err", err)
			return m, nil
		}
		m.logger.Debug("deleted", "index", target.index)
		return m.persist()
	case hitText:
		if err := m.list.BeginEdit(target.index); err != nil {
			m.logger.Error("begin edit", "index", target.index, "err", err)
		}
	case hitNone:
		m.list.EndEdit()
	}
	return m, nil
}

// persist writes the full snapshot. A write failure ends the run; the
// on-screen list must never diverge from the stored one.
func (m Model) persist() (tea.Model, tea.Cmd) {
	if err := m.store.Save(m.list.Tasks()); err != nil {
		m.logger.Error("save tasks", "err", err)
		m.err = err
		return m, tea.Quit
	}
	return m, nil
}
