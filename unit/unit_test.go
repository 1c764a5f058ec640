// SPDX-License-Identifier: Unlicense OR MIT

package unit_test

import (
	"testing"

	"github.com/openvirtualkeyboard/ovk/unit"
)

func TestMetricDp(t *testing.T) {
	for _, tc := range []struct {
		label string
		m     unit.Metric
		v     unit.Dp
		px    int
	}{
		{label: "zero metric", m: unit.Metric{}, v: 240, px: 240},
		{label: "scaled", m: unit.Metric{PxPerDp: 2}, v: 240, px: 480},
		{label: "rounded", m: unit.Metric{PxPerDp: 1.5}, v: 3, px: 5},
	} {
		t.Run(tc.label, func(t *testing.T) {
			if got := tc.m.Dp(tc.v); got != tc.px {
				t.Errorf("got %d px, expected %d", got, tc.px)
			}
		})
	}
}

func TestMetricPxToDp(t *testing.T) {
	m := unit.Metric{PxPerDp: 2}
	if got, exp := m.PxToDp(m.Dp(5)), unit.Dp(5); got != exp {
		t.Errorf("PxToDp conversion mismatch %v != %v", exp, got)
	}
}
