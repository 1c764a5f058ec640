// SPDX-License-Identifier: Unlicense OR MIT

package layouts

// PageView holds the pages of one category of the selected layout set
// and a cursor selecting the page on screen.
type PageView struct {
	category Category
	pages    CategoryPages
	cursor   int
}

// Category returns the category shown by the view.
func (v *PageView) Category() Category {
	return v.category
}

// SetPages replaces the pages of the view and moves the cursor to the
// first page.
func (v *PageView) SetPages(pages CategoryPages) {
	if pages == nil {
		pages = CategoryPages{}
	}
	v.pages = pages
	v.cursor = 0
}

// Pages returns the pages of the view.
func (v *PageView) Pages() CategoryPages {
	if v.pages == nil {
		return CategoryPages{}
	}
	return v.pages
}

// PageCount returns the number of pages.
func (v *PageView) PageCount() int {
	return len(v.pages)
}

// Cursor returns the index of the current page. It is 0 when the view
// has no pages.
func (v *PageView) Cursor() int {
	return v.cursor
}

// SetCurrentPage moves the cursor to page n. Values outside the page
// range are rejected and SetCurrentPage reports false.
func (v *PageView) SetCurrentPage(n int) bool {
	if n < 0 || n >= len(v.pages) {
		return false
	}
	v.cursor = n
	return true
}

// AdvancePage moves the cursor to the next page, wrapping from the
// last page to the first.
func (v *PageView) AdvancePage() {
	if len(v.pages) == 0 {
		return
	}
	v.cursor = (v.cursor + 1) % len(v.pages)
}

// CurrentPage returns the page under the cursor, or an empty page when
// the view has no pages.
func (v *PageView) CurrentPage() Page {
	if len(v.pages) == 0 {
		return Page{}
	}
	return v.pages[v.cursor]
}
