// SPDX-License-Identifier: Unlicense OR MIT

package positioner

import (
	"image"

	"github.com/openvirtualkeyboard/ovk/io/event"
	"github.com/openvirtualkeyboard/ovk/unit"
)

// Screen is a display the keyboard window can be placed on.
type Screen interface {
	// Bounds returns the screen area in desktop coordinates.
	Bounds() image.Rectangle
	// Metric returns the dp to pixel conversion of the screen.
	Metric() unit.Metric
}

// Display lists the screens of the system in a stable order.
type Display interface {
	Screens() []Screen
}

// HostWindow is a window containing focusable input items.
type HostWindow interface {
	// Screen returns the screen showing the window, or nil.
	Screen() Screen
	// Watch delivers ScreenEvent and VisibilityEvent to fn until the
	// returned stop function is called.
	Watch(fn func(e event.Event)) (stop func())
}

// FocusItem is an input capable element of a host window. The
// positioner does not own focus items; it checks Alive before every
// use and drops items that have gone.
type FocusItem interface {
	// Alive reports whether the item still exists.
	Alive() bool
	// Window returns the window hosting the item, or nil.
	Window() HostWindow
}

// Window is the keyboard's own window. It covers the target screen and
// is transparent; the input mask decides which part of it accepts
// pointer input.
type Window interface {
	// SetGeometry moves and resizes the window.
	SetGeometry(r image.Rectangle)
	// SetMask restricts input to r, in window coordinates. An empty
	// rectangle lets all input pass through.
	SetMask(r image.Rectangle)
	// SetVisible maps or unmaps the window.
	SetVisible(visible bool)
}

// Keyboard is the visual keyboard root placed by the positioner.
type Keyboard interface {
	// Height returns the keyboard height for the given width.
	Height(width unit.Dp) unit.Dp
}

// FixedHeight is a Keyboard with a constant height.
type FixedHeight unit.Dp

func (h FixedHeight) Height(unit.Dp) unit.Dp {
	return unit.Dp(h)
}

// ScreenEvent is delivered by a HostWindow when it moves to another
// screen.
type ScreenEvent struct {
	Screen Screen
}

// VisibilityEvent is delivered by a HostWindow when it is shown or
// hidden.
type VisibilityEvent struct {
	Visible bool
}

// StateEvent is emitted by a Positioner after its state changes.
type StateEvent struct {
	State State
}

// MaskEvent is emitted by a Positioner after its input mask changes.
type MaskEvent struct {
	Mask image.Rectangle
}

func (ScreenEvent) ImplementsEvent()     {}
func (VisibilityEvent) ImplementsEvent() {}
func (StateEvent) ImplementsEvent()      {}
func (MaskEvent) ImplementsEvent()       {}
