// Package view holds the display model of an action sheet: what is on screen,
// which row has focus, and how virtual buttons map to taps. It implements
// actionsheet.Renderer without drawing anything, so any backend (SDL, terminal,
// tests) can draw from it.
package view

import (
	"time"

	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet"
	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/constants"
	"github.com/google/uuid"
)

// Tapper receives taps. *actionsheet.Controller satisfies it.
type Tapper interface {
	Tap(id uuid.UUID)
}

// Row is one drawable action row.
type Row struct {
	Entry   actionsheet.Entry
	Focused bool
	Enabled bool
}

// Header is the drawable header content.
type Header struct {
	Title       string
	Message     string
	ShowTitle   bool
	ShowMessage bool
	ShowDivider bool
	Alignment   constants.TextAlign
}

// Model is the display state of one sheet.
type Model struct {
	appearance actionsheet.Appearance
	title      string
	message    string

	buttons []actionsheet.Entry
	cancel  actionsheet.Entry
	state   actionsheet.State
	pair    [2]actionsheet.Entry

	focus         int
	scroll        int
	layoutVersion uint64
	flashUntil    time.Time

	now    func() time.Time
	tapper Tapper
}

// New creates an empty model reading the wall clock.
func New() *Model {
	return NewWithClock(time.Now)
}

// NewWithClock creates an empty model reading the given clock.
func NewWithClock(now func() time.Time) *Model {
	return &Model{now: now}
}

// Bind connects the model to the controller that handles its taps.
func (m *Model) Bind(t Tapper) {
	m.tapper = t
}

func (m *Model) SetAppearance(appearance actionsheet.Appearance) {
	m.appearance = appearance
}

func (m *Model) UpdateHeader(title, message string) {
	m.title = title
	m.message = message
}

func (m *Model) SetActionButtons(entries []actionsheet.Entry) {
	m.buttons = entries
	m.state = actionsheet.StateDefault
	m.focus = 0
	m.scroll = 0
}

func (m *Model) SetCancelAction(entry actionsheet.Entry) {
	m.cancel = entry
}

// EnterConfirmationState swaps the rows for the confirmation pair and focuses cancel.
func (m *Model) EnterConfirmationState(confirmation, cancel actionsheet.Entry, position constants.CancelPosition) {
	m.state = actionsheet.StateConfirmation
	m.cancel = cancel
	m.pair = actionsheet.ConfirmationSlots(position, confirmation, cancel)
	m.scroll = 0

	m.focus = 1
	if position == constants.CancelPositionLeft {
		m.focus = 0
	}
}

func (m *Model) SetNeedsLayout() {
	m.layoutVersion++
}

func (m *Model) SetCornerRadius(radius float64) {
	m.appearance.CornerRadius = radius
	m.layoutVersion++
}

func (m *Model) FlashScrollIndicators() {
	m.flashUntil = m.now().Add(constants.ScrollIndicatorFlashLength)
}

func (m *Model) State() actionsheet.State          { return m.state }
func (m *Model) Appearance() actionsheet.Appearance { return m.appearance }
func (m *Model) Focus() int                         { return m.focus }

// LayoutVersion increases every time the content size may have changed.
func (m *Model) LayoutVersion() uint64 { return m.layoutVersion }

// ScrollIndicatorsVisible reports whether a flash is still showing.
func (m *Model) ScrollIndicatorsVisible() bool {
	return m.now().Before(m.flashUntil)
}

// Header returns the header content with visibility resolved. Title and message
// show only when non-empty; the divider hides only when both are empty.
func (m *Model) Header() Header {
	return Header{
		Title:       m.title,
		Message:     m.message,
		ShowTitle:   m.title != "",
		ShowMessage: m.message != "",
		ShowDivider: m.title != "" || m.message != "",
		Alignment:   m.appearance.HeaderAlignment,
	}
}

// IsPaired reports whether rows are laid out side by side.
func (m *Model) IsPaired() bool {
	return m.state == actionsheet.StateConfirmation
}

func (m *Model) entries() []actionsheet.Entry {
	if m.state == actionsheet.StateConfirmation {
		return m.pair[:]
	}

	out := make([]actionsheet.Entry, 0, len(m.buttons)+1)
	out = append(out, m.buttons...)
	if m.cancel.Action != nil {
		out = append(out, m.cancel)
	}
	return out
}

// Rows returns the rows in display order. In the default state the cancel row is last.
func (m *Model) Rows() []Row {
	entries := m.entries()
	rows := make([]Row, len(entries))
	for i, e := range entries {
		rows[i] = Row{
			Entry:   e,
			Focused: i == m.focus,
			Enabled: e.Action != nil && e.Action.IsEnabled(),
		}
	}
	return rows
}

// Focused returns the focused entry, or false when there are no rows.
func (m *Model) Focused() (actionsheet.Entry, bool) {
	entries := m.entries()
	if m.focus < 0 || m.focus >= len(entries) {
		return actionsheet.Entry{}, false
	}
	return entries[m.focus], true
}

// VisibleRange returns the half-open row range that fits in maxRows while
// keeping the focused row on screen.
func (m *Model) VisibleRange(maxRows int) (start, end int) {
	total := len(m.entries())
	if maxRows <= 0 || total <= maxRows {
		m.scroll = 0
		return 0, total
	}

	if m.focus < m.scroll {
		m.scroll = m.focus
	} else if m.focus >= m.scroll+maxRows {
		m.scroll = m.focus - maxRows + 1
	}
	if m.scroll > total-maxRows {
		m.scroll = total - maxRows
	}

	return m.scroll, m.scroll + maxRows
}

// HandleButton applies a virtual button press and reports whether it was used.
//
// In the default state Up and Down move focus; in the confirmation state Left and
// Right do. A (or Start) taps the focused row and B taps the cancel action.
func (m *Model) HandleButton(button constants.VirtualButton) bool {
	total := len(m.entries())
	if total == 0 {
		return false
	}

	switch button {
	case constants.VirtualButtonUp:
		if m.IsPaired() {
			return false
		}
		m.moveFocus(-1, total)
	case constants.VirtualButtonDown:
		if m.IsPaired() {
			return false
		}
		m.moveFocus(1, total)
	case constants.VirtualButtonLeft:
		if !m.IsPaired() {
			return false
		}
		m.focus = 0
	case constants.VirtualButtonRight:
		if !m.IsPaired() {
			return false
		}
		m.focus = 1
	case constants.VirtualButtonA, constants.VirtualButtonStart:
		entry, ok := m.Focused()
		if !ok {
			return false
		}
		m.tap(entry)
	case constants.VirtualButtonB:
		if m.cancel.Action == nil {
			return false
		}
		m.tap(m.cancel)
	default:
		return false
	}
	return true
}

func (m *Model) moveFocus(delta, total int) {
	m.focus = (m.focus + delta + total) % total
}

func (m *Model) tap(entry actionsheet.Entry) {
	if m.tapper == nil || entry.Action == nil {
		return
	}
	m.tapper.Tap(entry.Action.ID())
}
