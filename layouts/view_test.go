// SPDX-License-Identifier: Unlicense OR MIT

package layouts

import (
	"encoding/json"
	"testing"
)

func pagesN(n int) CategoryPages {
	pages := make(CategoryPages, n)
	for i := range pages {
		pages[i] = Page{json.RawMessage([]byte{'0' + byte(i)})}
	}
	return pages
}

func TestAdvancePageWraps(t *testing.T) {
	var v PageView
	v.SetPages(pagesN(3))
	var cursors []int
	for i := 0; i < 4; i++ {
		cursors = append(cursors, v.Cursor())
		v.AdvancePage()
	}
	want := []int{0, 1, 2, 0}
	for i := range want {
		if cursors[i] != want[i] {
			t.Fatalf("got cursor sequence %v, expected %v", cursors, want)
		}
	}
	if got := string(v.CurrentPage()[0]); got != "1" {
		t.Errorf("got page %s after four advances, expected 1", got)
	}
}

func TestSetCurrentPageRejectsOutOfRange(t *testing.T) {
	var v PageView
	v.SetPages(pagesN(3))
	if !v.SetCurrentPage(2) {
		t.Fatal("SetCurrentPage(2) rejected")
	}
	for _, n := range []int{-1, 3, 100} {
		if v.SetCurrentPage(n) {
			t.Errorf("SetCurrentPage(%d) accepted", n)
		}
		if v.Cursor() != 2 {
			t.Errorf("SetCurrentPage(%d) moved the cursor to %d", n, v.Cursor())
		}
	}
}

func TestSetPagesResetsCursor(t *testing.T) {
	var v PageView
	v.SetPages(pagesN(3))
	v.SetCurrentPage(2)
	v.SetPages(pagesN(5))
	if v.Cursor() != 0 {
		t.Errorf("got cursor %d after SetPages, expected 0", v.Cursor())
	}
	if v.PageCount() != 5 {
		t.Errorf("got %d pages, expected 5", v.PageCount())
	}
}

func TestEmptyView(t *testing.T) {
	var v PageView
	v.AdvancePage()
	if v.Cursor() != 0 {
		t.Errorf("got cursor %d on empty view", v.Cursor())
	}
	if p := v.CurrentPage(); p == nil || len(p) != 0 {
		t.Errorf("got page %v, expected empty page", p)
	}
	if v.SetCurrentPage(0) {
		t.Error("SetCurrentPage(0) accepted on empty view")
	}
	v.SetPages(nil)
	if v.Pages() == nil {
		t.Error("got nil pages")
	}
}
