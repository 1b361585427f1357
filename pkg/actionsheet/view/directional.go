package view

import (
	"time"

	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/constants"
)

// Direction represents a cardinal direction for navigation.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

const (
	defaultRepeatDelay    = 300 * time.Millisecond
	defaultRepeatInterval = 50 * time.Millisecond
)

// DirectionalInput tracks held directions and handles repeat timing, so a held
// d-pad keeps moving focus through a long sheet.
type DirectionalInput struct {
	held           map[Direction]bool
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// NewDirectionalInput creates a DirectionalInput with default timing.
// Default delay is 300ms before first repeat, then 50ms between repeats.
func NewDirectionalInput() *DirectionalInput {
	return NewDirectionalInputWithTiming(defaultRepeatDelay, defaultRepeatInterval, time.Now)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing and clock.
func NewDirectionalInputWithTiming(delay, interval time.Duration, now func() time.Time) *DirectionalInput {
	return &DirectionalInput{
		held:           make(map[Direction]bool, 4),
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: now(),
		now:            now,
	}
}

// SetHeld updates the held state for a direction based on a virtual button.
// Returns true if the button was a directional button.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) bool {
	dir := DirectionFor(button)
	if dir == DirectionNone {
		return false
	}

	d.held[dir] = held
	if held {
		d.lastRepeatTime = d.now()
	} else {
		d.hasRepeated = false
	}
	return true
}

// IsHeld returns true if any direction is currently held.
func (d *DirectionalInput) IsHeld() bool {
	return d.HeldDirection() != DirectionNone
}

// HeldDirection returns the currently held direction.
// If multiple directions are held, priority is: up, down, left, right.
func (d *DirectionalInput) HeldDirection() Direction {
	for _, dir := range []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight} {
		if d.held[dir] {
			return dir
		}
	}
	return DirectionNone
}

// Update checks if a repeat should fire. Call it every frame.
// The first repeat occurs after the repeat delay, later ones after the interval.
func (d *DirectionalInput) Update() Direction {
	now := d.now()
	if !d.IsHeld() {
		d.lastRepeatTime = now
		d.hasRepeated = false
		return DirectionNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if now.Sub(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = now
		d.hasRepeated = true
		return d.HeldDirection()
	}

	return DirectionNone
}

// Reset clears all held directions and timing state.
func (d *DirectionalInput) Reset() {
	clear(d.held)
	d.hasRepeated = false
	d.lastRepeatTime = d.now()
}

// DirectionFor returns the Direction of a directional button, or DirectionNone.
func DirectionFor(button constants.VirtualButton) Direction {
	switch button {
	case constants.VirtualButtonUp:
		return DirectionUp
	case constants.VirtualButtonDown:
		return DirectionDown
	case constants.VirtualButtonLeft:
		return DirectionLeft
	case constants.VirtualButtonRight:
		return DirectionRight
	default:
		return DirectionNone
	}
}

// VirtualButton returns the button for a Direction.
func (d Direction) VirtualButton() constants.VirtualButton {
	switch d {
	case DirectionUp:
		return constants.VirtualButtonUp
	case DirectionDown:
		return constants.VirtualButtonDown
	case DirectionLeft:
		return constants.VirtualButtonLeft
	case DirectionRight:
		return constants.VirtualButtonRight
	default:
		return constants.VirtualButtonUnassigned
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return ""
	}
}
