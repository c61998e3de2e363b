package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/junetapa-juncheol/portfolio-search/internal/ports"
	"github.com/junetapa-juncheol/portfolio-search/internal/session"
)

// snapshotMsg carries a session state change into the bubbletea loop.
type snapshotMsg struct {
	snap session.Snapshot
}

// navMsg reports a resolved navigation for the status line.
type navMsg struct {
	url  string
	kind ports.NavKind
}

// bridge forwards controller callbacks into the bubbletea message loop.
// Sends never block: if the UI is behind, the stale snapshot is replaced
// by the newer one.
type bridge struct {
	ch chan tea.Msg
}

func newBridge() *bridge {
	return &bridge{ch: make(chan tea.Msg, 8)}
}

// Render implements session.Renderer.
func (b *bridge) Render(snap session.Snapshot) {
	b.send(snapshotMsg{snap})
}

// Navigate implements ports.Navigator. In a terminal there is nothing to
// scroll or open; the selection is surfaced on the status line.
func (b *bridge) Navigate(url string, kind ports.NavKind) {
	b.send(navMsg{url: url, kind: kind})
}

func (b *bridge) send(msg tea.Msg) {
	for {
		select {
		case b.ch <- msg:
			return
		default:
			// Drop the oldest queued message and retry.
			select {
			case <-b.ch:
			default:
			}
		}
	}
}

// wait returns a command that delivers the next controller message.
func (b *bridge) wait() tea.Cmd {
	return func() tea.Msg {
		return <-b.ch
	}
}
