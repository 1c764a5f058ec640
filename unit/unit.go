// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit converts device independent sizes to screen pixels.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display. The keyboard height is configured in dp so that
it keeps its apparent size on screens of different density; the
positioner converts it with the Metric of the target screen.
*/
package unit

import "math"

// Dp represents device independent pixels. 1 dp has the same apparent
// size across displays.
type Dp float32

// Metric converts dp values to pixels of a particular screen.
type Metric struct {
	// PxPerDp is the pixels per dp. Zero is treated as 1.
	PxPerDp float32
}

// Dp converts v to pixels, rounded to the nearest integer.
func (m Metric) Dp(v Dp) int {
	return int(math.Round(float64(nonZero(m.PxPerDp) * float32(v))))
}

// PxToDp converts v pixels to dp.
func (m Metric) PxToDp(v int) Dp {
	return Dp(float32(v) / nonZero(m.PxPerDp))
}

func nonZero(v float32) float32 {
	if v == 0 {
		return 1
	}
	return v
}
