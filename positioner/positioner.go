// SPDX-License-Identifier: Unlicense OR MIT

/*
Package positioner places the on-screen keyboard window and shows or
hides it.

A Positioner is a state machine with four states. Show and Hide start a
slide animation when animation is enabled; the animation advances only
when the host calls Frame with the current frame time, and the
transition completes on the frame where the slide reaches its end:

	Hidden --Show--> Appearing --Frame--> Visible
	Visible --Hide--> Disappearing --Frame--> Hidden

Show during Disappearing and Hide during Appearing reverse the slide
from its current position. Only the latest request is honoured.

The positioner follows the focused input item: it watches the item's
host window for screen and visibility changes, places the keyboard
window on the right screen and keeps the window's input mask equal to
the visible part of the keyboard, so that input outside the keyboard
reaches the windows behind it.

A Positioner is not safe for concurrent use; call it from the goroutine
that handles window events.
*/
package positioner

import (
	"fmt"
	"image"
	"log"
	"math"
	"time"

	"github.com/openvirtualkeyboard/ovk/anim"
	"github.com/openvirtualkeyboard/ovk/io/event"
)

// State is the visibility phase of the keyboard.
type State uint8

const (
	// Hidden is the initial state.
	Hidden State = iota
	// Appearing is reported while the show animation runs.
	Appearing
	// Visible is reported when the keyboard is fully shown.
	Visible
	// Disappearing is reported while the hide animation runs.
	Disappearing
)

// Option configures a Positioner.
type Option func(*config)

type config struct {
	screenIndex int
	animate     bool
	duration    time.Duration
	now         func() time.Time
	logger      *log.Logger
}

// ScreenIndex pins the keyboard to screen i of the Display regardless
// of where the focused item is. A negative index follows the focused
// item, which is the default.
func ScreenIndex(i int) Option {
	return func(cnf *config) {
		cnf.screenIndex = i
	}
}

// Animation enables or disables the show and hide animation. The
// default is enabled.
func Animation(enabled bool) Option {
	return func(cnf *config) {
		cnf.animate = enabled
	}
}

// Duration sets the time of a complete show or hide animation.
func Duration(d time.Duration) Option {
	return func(cnf *config) {
		cnf.duration = d
	}
}

// Clock sets the source of the time used to start animations. The
// default is time.Now.
func Clock(now func() time.Time) Option {
	return func(cnf *config) {
		cnf.now = now
	}
}

// Logger sets the logger for diagnostics. The default is log.Default().
func Logger(l *log.Logger) Option {
	return func(cnf *config) {
		cnf.logger = l
	}
}

// Positioner owns the placement and visibility of the keyboard window.
type Positioner struct {
	cnf      config
	window   Window
	display  Display
	keyboard Keyboard

	state State
	slide anim.Slide

	focus     FocusItem
	host      HostWindow
	stopWatch func()

	screen   Screen
	geometry image.Rectangle
	mask     image.Rectangle
	warned   bool

	subs event.Subscribers
}

// New returns a hidden positioner for the keyboard window w. The
// display d is needed for ScreenIndex and may be nil otherwise.
func New(w Window, d Display, options ...Option) *Positioner {
	cnf := config{
		screenIndex: -1,
		animate:     true,
		duration:    250 * time.Millisecond,
		now:         time.Now,
	}
	for _, o := range options {
		o(&cnf)
	}
	if cnf.logger == nil {
		cnf.logger = log.Default()
	}
	p := &Positioner{
		cnf:     cnf,
		window:  w,
		display: d,
	}
	p.slide.Duration = cnf.duration
	// Nothing accepts input until the keyboard is shown.
	w.SetMask(image.Rectangle{})
	w.SetVisible(false)
	return p
}

// Subscribe registers h for StateEvent and MaskEvent and returns a
// function that removes it.
func (p *Positioner) Subscribe(h event.Handler) (cancel func()) {
	return p.subs.Subscribe(h)
}

// State returns the current state.
func (p *Positioner) State() State {
	return p.state
}

// Animating reports whether a show or hide animation is in progress.
// The host should keep calling Frame while it is true.
func (p *Positioner) Animating() bool {
	return p.state == Appearing || p.state == Disappearing
}

// Mask returns the current input mask in window coordinates.
func (p *Positioner) Mask() image.Rectangle {
	return p.mask
}

// Geometry returns the current geometry of the keyboard window.
func (p *Positioner) Geometry() image.Rectangle {
	return p.geometry
}

// Progress returns how far the keyboard is shown, from 0 (hidden) to
// 1 (fully visible).
func (p *Positioner) Progress() float32 {
	return p.slide.Value()
}

// FocusItem returns the tracked focus item if it is still alive.
func (p *Positioner) FocusItem() FocusItem {
	if p.focus != nil && !p.focus.Alive() {
		p.dropFocus()
	}
	return p.focus
}

// SetKeyboard binds the keyboard root and places the keyboard window
// on the target screen.
func (p *Positioner) SetKeyboard(k Keyboard) {
	p.keyboard = k
	p.place(nil)
	p.updateMask()
}

// EnableAnimation enables or disables animation. Disabling it during
// a transition completes the transition immediately.
func (p *Positioner) EnableAnimation(enabled bool) {
	p.cnf.animate = enabled
	if enabled || !p.Animating() {
		return
	}
	switch p.state {
	case Appearing:
		p.slide.Set(1)
		p.setState(Visible)
	case Disappearing:
		p.slide.Set(0)
		p.setState(Hidden)
	}
	p.updateMask()
}

// AnimationEnabled reports whether Show and Hide animate.
func (p *Positioner) AnimationEnabled() bool {
	return p.cnf.animate
}

// Show shows the keyboard. It does nothing if the keyboard is visible
// or appearing.
func (p *Positioner) Show() {
	switch p.state {
	case Visible, Appearing:
		return
	}
	if p.cnf.animate {
		p.slide.Start(p.cnf.now(), 1)
		p.setState(Appearing)
	} else {
		p.slide.Set(1)
		p.setState(Visible)
	}
	p.updateMask()
}

// Hide hides the keyboard. It does nothing if the keyboard is hidden
// or disappearing.
func (p *Positioner) Hide() {
	p.hide(false)
}

func (p *Positioner) hide(suppressAnimation bool) {
	switch p.state {
	case Hidden:
		return
	case Disappearing:
		if !suppressAnimation {
			return
		}
	}
	if p.cnf.animate && !suppressAnimation {
		p.slide.Start(p.cnf.now(), 0)
		p.setState(Disappearing)
	} else {
		p.slide.Set(0)
		p.setState(Hidden)
	}
	p.updateMask()
}

// Frame advances the animation to now and completes the transition
// when the animation ends. It reports whether another frame is needed.
func (p *Positioner) Frame(now time.Time) bool {
	if !p.Animating() {
		return false
	}
	if p.slide.Update(now) {
		switch p.state {
		case Appearing:
			p.setState(Visible)
		case Disappearing:
			p.setState(Hidden)
		}
	}
	p.updateMask()
	return p.Animating()
}

// UpdateFocusItem replaces the tracked focus item. The host window of
// the previous item is no longer watched; the host window of the new
// item is watched if it has one. A nil item clears the focus.
func (p *Positioner) UpdateFocusItem(item FocusItem) {
	p.dropFocus()
	if item != nil && item.Alive() {
		p.focus = item
		if h := item.Window(); h != nil {
			p.host = h
			p.stopWatch = h.Watch(p.hostEvent)
		}
	}
	p.place(nil)
	p.updateMask()
}

func (p *Positioner) dropFocus() {
	if p.stopWatch != nil {
		p.stopWatch()
	}
	p.stopWatch = nil
	p.focus = nil
	p.host = nil
}

// liveHost returns the host window of the focus item, dropping the
// item if it has gone.
func (p *Positioner) liveHost() HostWindow {
	if p.focus == nil {
		return nil
	}
	if !p.focus.Alive() {
		p.dropFocus()
		return nil
	}
	return p.host
}

func (p *Positioner) hostEvent(e event.Event) {
	if p.liveHost() == nil {
		p.updateMask()
		return
	}
	switch e := e.(type) {
	case ScreenEvent:
		p.ScreenChanged(e.Screen)
	case VisibilityEvent:
		p.WindowVisibleChanged(e.Visible)
	}
}

// ScreenChanged handles a screen change of the watched host window.
// The keyboard window moves to s unless it is pinned to a screen.
func (p *Positioner) ScreenChanged(s Screen) {
	p.place(s)
	p.updateMask()
}

// WindowVisibleChanged handles a visibility change of the watched host
// window. A keyboard shown for a window that disappears is hidden at
// once.
func (p *Positioner) WindowVisibleChanged(visible bool) {
	if visible {
		return
	}
	switch p.state {
	case Visible, Appearing:
		p.cnf.logger.Printf("positioner: host window hidden, hiding keyboard")
		p.hide(true)
	}
}

// targetScreen returns the pinned screen, or the screen of the host
// window, preferring hostScreen when it is known.
func (p *Positioner) targetScreen(hostScreen Screen) Screen {
	if i := p.cnf.screenIndex; i >= 0 {
		var screens []Screen
		if p.display != nil {
			screens = p.display.Screens()
		}
		if i < len(screens) {
			return screens[i]
		}
		if !p.warned {
			p.warned = true
			p.cnf.logger.Printf("positioner: screen %d not available, following focus", i)
		}
	}
	if hostScreen != nil {
		return hostScreen
	}
	if h := p.liveHost(); h != nil {
		return h.Screen()
	}
	return p.screen
}

func (p *Positioner) place(hostScreen Screen) {
	s := p.targetScreen(hostScreen)
	if s == nil {
		return
	}
	p.screen = s
	if g := s.Bounds(); g != p.geometry {
		p.geometry = g
		p.window.SetGeometry(g)
	}
}

// keyboardRect returns the part of the keyboard on screen, in window
// coordinates, for the current animation progress.
func (p *Positioner) keyboardRect() image.Rectangle {
	if p.keyboard == nil || p.screen == nil {
		return image.Rectangle{}
	}
	b := p.screen.Bounds()
	m := p.screen.Metric()
	h := m.Dp(p.keyboard.Height(m.PxToDp(b.Dx())))
	if h > b.Dy() {
		h = b.Dy()
	}
	if h <= 0 {
		return image.Rectangle{}
	}
	r := image.Rect(b.Min.X, b.Max.Y-h, b.Max.X, b.Max.Y)
	offset := int(math.Round(float64(1-p.slide.Value()) * float64(h)))
	r = r.Add(image.Pt(0, offset)).Intersect(b)
	return r.Sub(b.Min)
}

func (p *Positioner) updateMask() {
	var m image.Rectangle
	if p.state != Hidden && p.liveHost() != nil {
		m = p.keyboardRect()
	}
	if m.Empty() {
		m = image.Rectangle{}
	}
	if m == p.mask {
		return
	}
	p.mask = m
	p.window.SetMask(m)
	p.subs.Emit(MaskEvent{Mask: m})
}

func (p *Positioner) setState(s State) {
	if s == p.state {
		return
	}
	prev := p.state
	p.state = s
	switch {
	case prev == Hidden:
		p.window.SetVisible(true)
	case s == Hidden:
		p.window.SetVisible(false)
	}
	p.subs.Emit(StateEvent{State: s})
}

func (s State) String() string {
	switch s {
	case Hidden:
		return "Hidden"
	case Appearing:
		return "Appearing"
	case Visible:
		return "Visible"
	case Disappearing:
		return "Disappearing"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}
