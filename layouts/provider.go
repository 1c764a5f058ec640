// SPDX-License-Identifier: Unlicense OR MIT

package layouts

import "github.com/openvirtualkeyboard/ovk/io/event"

// CountEvent is emitted when the number of available layouts changes.
type CountEvent struct {
	Count int
}

// SelectedIndexEvent is emitted after the selected index changes.
type SelectedIndexEvent struct {
	Index int
}

// SelectedLayoutEvent is emitted after the pages of the selected
// layout have been pushed to the page views.
type SelectedLayoutEvent struct {
	Locale LocaleID
}

// PageEvent is emitted when IncrementPage moves the cursor of a view.
type PageEvent struct {
	Category Category
	Page     int
}

// Provider selects a layout set from a Catalog and exposes its pages
// through one PageView per category.
type Provider struct {
	catalog  *Catalog
	resolver Resolver
	views    [NumCategories]PageView
	selected int
	subs     event.Subscribers
}

// NewProvider returns a provider over c with no selection. Call Load
// to discover layouts and apply the input method hint.
func NewProvider(c *Catalog, r Resolver) *Provider {
	p := &Provider{
		catalog:  c,
		resolver: r,
		selected: -1,
	}
	for _, cat := range Categories {
		p.views[cat].category = cat
		p.views[cat].pages = CategoryPages{}
	}
	return p
}

// Load discovers the layouts of the catalog, selects the locale
// resolved from hint and announces the number of layouts.
func (p *Provider) Load(hint string) {
	p.catalog.Discover()
	p.ApplyHint(hint)
	p.subs.Emit(CountEvent{Count: p.catalog.Len()})
}

// LoadDefault adds the catalog's default locale. If that locale is
// the selected one and its pages changed, the new pages replace those
// in the views.
func (p *Provider) LoadDefault() {
	n, set := p.catalog.Len(), p.selectedSet()
	p.catalog.LoadDefault()
	p.refresh(n, set)
}

// Reload discovers the catalog again. Locales keep their index. The
// selected locale's pages are pushed to the views again only if they
// changed; otherwise the page cursors stay where they are.
func (p *Provider) Reload() {
	n, set := p.catalog.Len(), p.selectedSet()
	p.catalog.Discover()
	p.refresh(n, set)
}

func (p *Provider) selectedSet() *LayoutSet {
	id, ok := p.catalog.Locale(p.selected)
	if !ok {
		return nil
	}
	set, _ := p.catalog.Lookup(id)
	return set
}

func (p *Provider) refresh(prevCount int, prevSet *LayoutSet) {
	if n := p.catalog.Len(); n != prevCount {
		p.subs.Emit(CountEvent{Count: n})
	}
	if p.selected < 0 || p.selectedSet() == prevSet {
		return
	}
	p.push(p.selected)
	id, _ := p.catalog.Locale(p.selected)
	p.subs.Emit(SelectedLayoutEvent{Locale: id})
}

// Subscribe registers h for the provider's events and returns a
// function that removes it.
func (p *Provider) Subscribe(h event.Handler) (cancel func()) {
	return p.subs.Subscribe(h)
}

// Catalog returns the catalog of the provider.
func (p *Provider) Catalog() *Catalog {
	return p.catalog
}

// LayoutsCount returns the number of available layouts.
func (p *Provider) LayoutsCount() int {
	return p.catalog.Len()
}

// SelectedIndex returns the index of the selected layout, or -1.
func (p *Provider) SelectedIndex() int {
	return p.selected
}

// SelectedLocale returns the locale of the selected layout. It
// reports false when nothing is selected.
func (p *Provider) SelectedLocale() (LocaleID, bool) {
	return p.catalog.Locale(p.selected)
}

// SetSelectedIndex selects the layout at index i. Selecting the
// current index or an index outside [0, LayoutsCount()) does nothing.
// The page views are updated before the change events are emitted.
func (p *Provider) SetSelectedIndex(i int) {
	if i == p.selected {
		return
	}
	id, ok := p.catalog.Locale(i)
	if !ok {
		return
	}
	p.push(i)
	p.selected = i
	p.subs.Emit(SelectedIndexEvent{Index: i})
	p.subs.Emit(SelectedLayoutEvent{Locale: id})
}

func (p *Provider) push(i int) {
	id, _ := p.catalog.Locale(i)
	set, ok := p.catalog.Lookup(id)
	if !ok {
		return
	}
	for _, cat := range Categories {
		p.views[cat].SetPages(set.Pages(cat))
	}
}

// SelectLocale selects the layout of id. It reports false, leaving the
// selection unchanged, when the catalog has no such locale.
func (p *Provider) SelectLocale(id LocaleID) bool {
	i := p.catalog.Index(id)
	if i < 0 {
		return false
	}
	p.SetSelectedIndex(i)
	return true
}

// ApplyHint resolves the input method hint and selects the resulting
// locale. It reports whether the resolved locale exists.
func (p *Provider) ApplyHint(hint string) bool {
	id := p.resolver.Resolve(p.catalog, hint)
	p.catalog.logf("layouts: applying keyboard layout: %s", id)
	if !p.SelectLocale(id) {
		p.catalog.logf("layouts: layout %s is not available", id)
		return false
	}
	return true
}

// View returns the page view of category c, or nil for an invalid
// category.
func (p *Provider) View(c Category) *PageView {
	if !c.Valid() {
		return nil
	}
	return &p.views[c]
}

// IncrementPage advances the view of category c to its next page.
func (p *Provider) IncrementPage(c Category) {
	v := p.View(c)
	if v == nil || v.PageCount() == 0 {
		return
	}
	v.AdvancePage()
	p.subs.Emit(PageEvent{Category: c, Page: v.Cursor()})
}

func (CountEvent) ImplementsEvent()          {}
func (SelectedIndexEvent) ImplementsEvent()  {}
func (SelectedLayoutEvent) ImplementsEvent() {}
func (PageEvent) ImplementsEvent()           {}
