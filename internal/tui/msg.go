package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/mythoscape/internal/store"
)

// MsgFrame advances the creature animation by one frame.
type MsgFrame struct {
	Time time.Time
}

// MsgStateChanged reports that the journal file changed on disk.
type MsgStateChanged struct {
	Change store.Change
}

// NoticeKind is the severity of a footer notice.
type NoticeKind int

const (
	NoticeInfo  NoticeKind = iota // saved, reloaded
	NoticeWarn                    // nothing changed
	NoticeError                   // save or load failed
)

// Notice is a one-line message shown above the footer until replaced.
type Notice struct {
	Kind NoticeKind
	Text string
}

// frameCmd schedules the next animation frame.
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return MsgFrame{Time: t}
	})
}

// watchCmd waits for the next journal file change. It returns nil once the
// channel is closed, which ends the wait loop.
func watchCmd(changes <-chan store.Change) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		c, ok := <-changes
		if !ok {
			return nil
		}
		return MsgStateChanged{Change: c}
	}
}
