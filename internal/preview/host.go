// SPDX-License-Identifier: Unlicense OR MIT

package preview

import (
	"image"

	"github.com/openvirtualkeyboard/ovk/io/event"
	"github.com/openvirtualkeyboard/ovk/positioner"
	"github.com/openvirtualkeyboard/ovk/unit"
)

// terminal is the only screen of the preview. One cell is one pixel
// and one dp.
type terminal struct {
	bounds image.Rectangle
}

func (t *terminal) Bounds() image.Rectangle { return t.bounds }
func (t *terminal) Metric() unit.Metric     { return unit.Metric{PxPerDp: 1} }

type display struct {
	screen *terminal
}

func (d display) Screens() []positioner.Screen { return []positioner.Screen{d.screen} }

// field is the simulated text input. It is its own host window.
type field struct {
	screen *terminal
	alive  bool
	subs   event.Subscribers
}

func (f *field) Alive() bool                       { return f.alive }
func (f *field) Window() positioner.HostWindow     { return f }
func (f *field) Screen() positioner.Screen         { return f.screen }
func (f *field) Watch(fn func(event.Event)) func() { return f.subs.Subscribe(fn) }

// keyboardWindow records what the positioner asks of the keyboard
// window.
type keyboardWindow struct {
	geometry image.Rectangle
	mask     image.Rectangle
	visible  bool
}

func (w *keyboardWindow) SetGeometry(r image.Rectangle) { w.geometry = r }
func (w *keyboardWindow) SetMask(r image.Rectangle)     { w.mask = r }
func (w *keyboardWindow) SetVisible(v bool)             { w.visible = v }

// pageKeyboard is as tall as the current page plus its frame.
type pageKeyboard struct {
	m *Model
}

func (k pageKeyboard) Height(unit.Dp) unit.Dp {
	v := k.m.provider.View(k.m.category)
	rows := 1
	if v != nil && len(v.CurrentPage()) > 0 {
		rows = len(v.CurrentPage())
	}
	return unit.Dp(rows + 2)
}
