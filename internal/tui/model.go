package tui

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/mythoscape/internal/assets"
	"github.com/papapumpkin/mythoscape/internal/creature"
	"github.com/papapumpkin/mythoscape/internal/journal"
	"github.com/papapumpkin/mythoscape/internal/mood"
	"github.com/papapumpkin/mythoscape/internal/store"
)

// defaultFrameInterval paces the creature animation.
const defaultFrameInterval = 400 * time.Millisecond

// Options wires a Model to a journal session and its storage.
type Options struct {
	// Session receives submitted entries. Required.
	Session *journal.Session
	// Save persists the state after each accepted entry. Nil skips saving.
	Save func(journal.SavedState) error
	// Reload reads the journal from disk after an external change.
	Reload func() (journal.SavedState, error)
	// Changes delivers external changes to the journal file. May be nil.
	Changes <-chan store.Change
	// Library supplies glow animations. Nil shows placeholders.
	Library *assets.Library
	// FrameInterval overrides the animation speed.
	FrameInterval time.Duration
}

// Model is the root BubbleTea model for the journal.
type Model struct {
	Tab    Tab
	Keys   KeyMap
	Width  int
	Height int
	Notice Notice

	// LastEntry is the most recent entry accepted in this run.
	LastEntry *journal.Entry

	session  *journal.Session
	save     func(journal.SavedState) error
	reload   func() (journal.SavedState, error)
	changes  <-chan store.Change
	library  *assets.Library
	interval time.Duration

	moods   []mood.Mood
	moodIdx int
	editor  textarea.Model
	scroll  viewport.Model

	anim     assets.Animation
	animErr  error
	frame    int
	animGlow creature.Glow
}

// NewModel creates the root model on the journal tab.
func NewModel(opts Options) Model {
	ed := textarea.New()
	ed.Placeholder = "Write about your emotion, memory, or moment..."
	ed.CharLimit = 5000
	ed.ShowLineNumbers = false
	ed.SetWidth(defaultWidth - 4)
	ed.SetHeight(6)
	ed.Focus()

	interval := opts.FrameInterval
	if interval <= 0 {
		interval = defaultFrameInterval
	}

	m := Model{
		Tab:      TabJournal,
		Keys:     JournalKeyMap(),
		Width:    defaultWidth,
		Height:   defaultHeight,
		session:  opts.Session,
		save:     opts.Save,
		reload:   opts.Reload,
		changes:  opts.Changes,
		library:  opts.Library,
		interval: interval,
		moods:    mood.All(),
		editor:   ed,
		scroll:   viewport.New(defaultWidth, defaultHeight-chromeHeight),
	}
	m.loadAnimation()
	return m
}

// Init starts the cursor blink, the animation clock and the file watch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		frameCmd(m.interval),
		watchCmd(m.changes),
	)
}

// SelectedMood returns the mood the next entry will carry.
func (m Model) SelectedMood() mood.Mood {
	return m.moods[m.moodIdx]
}

// Session returns the session backing the model.
func (m Model) Session() *journal.Session {
	return m.session
}

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case MsgFrame:
		m.frame++
		return m, frameCmd(m.interval)

	case MsgStateChanged:
		m.handleExternalChange(msg.Change)
		return m, watchCmd(m.changes)
	}

	if m.Tab == TabJournal {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey routes a key press by the active tab.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.Keys.NextTab):
		return m.switchTab(m.Tab.Next())
	case key.Matches(msg, m.Keys.PrevTab):
		return m.switchTab(m.Tab.Prev())
	}

	if m.Tab == TabJournal {
		switch {
		case key.Matches(msg, m.Keys.Submit):
			m.submit()
			return m, nil
		case key.Matches(msg, m.Keys.NextMood):
			m.moodIdx = (m.moodIdx + 1) % len(m.moods)
			return m, nil
		case key.Matches(msg, m.Keys.PrevMood):
			m.moodIdx = (m.moodIdx + len(m.moods) - 1) % len(m.moods)
			return m, nil
		}
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.Keys.JumpTab):
		n, err := strconv.Atoi(msg.String())
		if err != nil {
			return m, nil
		}
		if tab, ok := TabFromNumber(n); ok {
			return m.switchTab(tab)
		}
		return m, nil
	}

	if m.Tab == TabMap || m.Tab == TabArchive {
		var cmd tea.Cmd
		m.scroll, cmd = m.scroll.Update(msg)
		return m, cmd
	}
	return m, nil
}

// switchTab activates tab, moving focus into or out of the editor.
func (m Model) switchTab(tab Tab) (tea.Model, tea.Cmd) {
	m.Tab = tab
	if tab == TabJournal {
		m.Keys = JournalKeyMap()
		return m, m.editor.Focus()
	}
	m.Keys = DefaultKeyMap()
	m.editor.Blur()
	m.refreshScroll()
	return m, nil
}

// submit hands the editor text to the session and persists the result.
func (m *Model) submit() {
	entry, err := m.session.Submit(m.editor.Value(), m.SelectedMood())
	if errors.Is(err, journal.ErrEmptyEntry) {
		m.Notice = Notice{Kind: NoticeWarn, Text: "Write something before submitting."}
		return
	}
	if err != nil {
		m.Notice = Notice{Kind: NoticeError, Text: err.Error()}
		return
	}

	m.LastEntry = &entry
	m.editor.Reset()
	m.loadAnimation()

	if m.save != nil {
		if err := m.save(m.session.State()); err != nil {
			m.Notice = Notice{Kind: NoticeError, Text: fmt.Sprintf("entry kept for this session but not saved: %v", err)}
			return
		}
	}
	m.Notice = Notice{Kind: NoticeInfo, Text: "Entry saved! Your soul creature has evolved."}
}

// handleExternalChange reloads the journal after it changed on disk. A
// malformed file is reported and the session keeps its current state.
func (m *Model) handleExternalChange(c store.Change) {
	if m.reload == nil || c.Kind == store.ChangeRemoved {
		return
	}
	state, err := m.reload()
	if err != nil {
		m.Notice = Notice{Kind: NoticeError, Text: fmt.Sprintf("journal file changed but could not be loaded: %v", err)}
		return
	}
	if reflect.DeepEqual(state, m.session.State()) {
		return
	}
	m.session.Replace(state)
	m.loadAnimation()
	m.refreshScroll()
	m.Notice = Notice{Kind: NoticeInfo, Text: fmt.Sprintf("Reloaded journal from disk (%d entries).", len(state.Entries))}
}

// loadAnimation fetches the animation for the creature's current glow if
// it changed since the last load.
func (m *Model) loadAnimation() {
	g := m.session.Creature().Glow
	if g == m.animGlow && len(m.anim.Frames) > 0 {
		return
	}
	m.animGlow = g
	m.frame = 0
	if m.library == nil {
		m.anim, m.animErr = assets.Placeholder(g), fmt.Errorf("%w: no asset library configured", assets.ErrMissing)
		return
	}
	m.anim, m.animErr = m.library.Load(g)
}

// resize fits the editor and scroll area to the window.
func (m *Model) resize() {
	w := m.Width - 4
	if w < 20 {
		w = 20
	}
	m.editor.SetWidth(w)
	m.scroll.Width = m.Width
	m.scroll.Height = m.bodyHeight()
	m.refreshScroll()
}

// bodyHeight is the space left for the active view.
func (m Model) bodyHeight() int {
	h := m.Height - chromeHeight
	if h < 3 {
		h = 3
	}
	return h
}

// refreshScroll re-renders the scrollable content for the map and archive.
func (m *Model) refreshScroll() {
	state := m.session.State()
	switch m.Tab {
	case TabMap:
		m.scroll.SetContent(renderMap(state.Regions(), m.Width))
		m.scroll.GotoTop()
	case TabArchive:
		m.scroll.SetContent(renderArchive(state.Archive(), m.Width))
		m.scroll.GotoTop()
	}
}
