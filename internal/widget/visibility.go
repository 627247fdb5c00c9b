package widget

import tea "github.com/charmbracelet/bubbletea"

// Phase is the show/hide state of the player bar.
//
//	Hidden ──show──▶ Showing ──done──▶ Shown
//	  ▲                                  │
//	  └────done──── Hiding ◀────hide─────┘
type Phase int

const (
	PhaseHidden Phase = iota
	PhaseShowing
	PhaseShown
	PhaseHiding
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseHidden:
		return "hidden"
	case PhaseShowing:
		return "showing"
	case PhaseShown:
		return "shown"
	case PhaseHiding:
		return "hiding"
	default:
		return "unknown"
	}
}

// Animating reports whether a transition is in flight.
func (p Phase) Animating() bool {
	return p == PhaseShowing || p == PhaseHiding
}

// Visible reports whether the phase is, or is becoming, shown.
func (p Phase) Visible() bool {
	return p == PhaseShowing || p == PhaseShown
}

// Visibility is the show/hide and panel state of the widget.
type Visibility struct {
	Phase       Phase
	Locked      bool
	VolumePanel bool
	ListPanel   bool
}

// OutsideClickBound reports whether outside clicks are being listened for.
// It holds exactly while a panel is open.
func (v Visibility) OutsideClickBound() bool {
	return v.VolumePanel || v.ListPanel
}

// togglePlayer starts the transition to shown or hidden. Ignored while
// locked, while a transition is in flight, or when already settled there.
func (m *Model) togglePlayer(show bool) tea.Cmd {
	if m.vis.Locked || m.vis.Phase.Animating() {
		return nil
	}
	if show {
		if m.vis.Phase == PhaseShown {
			return nil
		}
		m.vis.Phase = PhaseShowing
		return animationCmd(m.opts.ShowDuration, PhaseShowing)
	}
	if m.vis.Phase == PhaseHidden {
		return nil
	}
	m.vis.Phase = PhaseHiding
	m.closePanels()
	return animationCmd(m.opts.HideDuration, PhaseHiding)
}

// animationDone settles the transition that started in from. A pending
// tooltip is displayed on the Showing to Shown edge; one that arrived while
// hiding shows the player again first.
func (m *Model) animationDone(from Phase) tea.Cmd {
	if m.vis.Phase != from {
		return nil
	}
	switch from {
	case PhaseShowing:
		m.vis.Phase = PhaseShown
		if m.tooltip.pending {
			return m.showTooltip()
		}
	case PhaseHiding:
		m.vis.Phase = PhaseHidden
		if m.tooltip.pending {
			return m.togglePlayer(true)
		}
	}
	return nil
}

func (m *Model) toggleLock() {
	m.vis.Locked = !m.vis.Locked
}

func (m *Model) toggleVolumePanel() {
	m.vis.VolumePanel = !m.vis.VolumePanel
}

// toggleListPanel flips the list panel. It only opens over a non-empty
// play list.
func (m *Model) toggleListPanel() {
	if !m.vis.ListPanel && len(m.playList) == 0 {
		return
	}
	m.vis.ListPanel = !m.vis.ListPanel
	if m.vis.ListPanel {
		m.cursor.Jump(max(m.currentIndex, 0), len(m.playList), listRows)
	}
}

// outsideClick closes both panels. Ignored while no panel is open.
func (m *Model) outsideClick() bool {
	if !m.vis.OutsideClickBound() {
		return false
	}
	m.closePanels()
	return true
}

func (m *Model) closePanels() {
	m.vis.VolumePanel = false
	m.vis.ListPanel = false
}
