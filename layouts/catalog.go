// SPDX-License-Identifier: Unlicense OR MIT

package layouts

import (
	"io/fs"
	"log"
	"path"
	"strings"

	"golang.org/x/exp/slices"
)

// DefaultLocale is the locale loaded by LoadDefault and chosen when a
// hint cannot be resolved, unless configured otherwise.
const DefaultLocale LocaleID = "en_US"

// Option configures a Catalog.
type Option func(*config)

type config struct {
	root          string
	defaultLocale LocaleID
	defaultFS     fs.FS
	defaultRoot   string
	logger        *log.Logger
}

// Root sets the directory of fsys whose subdirectories are locales.
// The default is the root of the file system.
func Root(dir string) Option {
	return func(cnf *config) {
		cnf.root = dir
	}
}

// Default sets the locale loaded by LoadDefault.
func Default(id LocaleID) Option {
	return func(cnf *config) {
		cnf.defaultLocale = id
	}
}

// DefaultSource makes LoadDefault read the default locale from
// <root>/<locale> of fsys instead of the catalog's own file system.
func DefaultSource(fsys fs.FS, root string) Option {
	return func(cnf *config) {
		cnf.defaultFS = fsys
		cnf.defaultRoot = root
	}
}

// Logger sets the logger for diagnostics. The default is log.Default().
func Logger(l *log.Logger) Option {
	return func(cnf *config) {
		cnf.logger = l
	}
}

// Catalog maps locales to their layout sets. Locales are enumerated in
// the order they were first added, and entries are never removed, so
// the index of a locale is stable.
type Catalog struct {
	fsys  fs.FS
	cnf   config
	order []LocaleID
	sets  map[LocaleID]*LayoutSet
}

// NewCatalog returns an empty catalog reading layouts from fsys.
func NewCatalog(fsys fs.FS, options ...Option) *Catalog {
	cnf := config{
		root:          ".",
		defaultLocale: DefaultLocale,
	}
	for _, o := range options {
		o(&cnf)
	}
	if cnf.logger == nil {
		cnf.logger = log.Default()
	}
	if cnf.defaultFS == nil {
		cnf.defaultFS = fsys
		cnf.defaultRoot = cnf.root
	}
	return &Catalog{
		fsys: fsys,
		cnf:  cnf,
		sets: make(map[LocaleID]*LayoutSet),
	}
}

// Discover loads every locale directory under the catalog root and
// returns the number of locales found. Locales are visited in
// directory order. An absent or empty root leaves the catalog
// unchanged.
func (c *Catalog) Discover() int {
	if c.fsys == nil {
		c.logf("layouts: no embedded layouts found")
		return 0
	}
	entries, err := fs.ReadDir(c.fsys, c.cnf.root)
	if err != nil {
		c.logf("layouts: no embedded layouts found")
		return 0
	}
	var locales []LocaleID
	for _, e := range entries {
		if e.IsDir() {
			locales = append(locales, LocaleID(e.Name()))
		}
	}
	if len(locales) == 0 {
		c.logf("layouts: layouts directory is empty")
		return 0
	}
	names := make([]string, len(locales))
	for i, id := range locales {
		names[i] = string(id)
	}
	c.logf("layouts: loading embedded layouts: %s", strings.Join(names, ", "))
	for _, id := range locales {
		c.load(c.fsys, c.cnf.root, id)
	}
	return len(locales)
}

// LoadDefault loads the default locale and adds it to the catalog,
// replacing an entry of the same name. Discover never calls it.
func (c *Catalog) LoadDefault() {
	if c.cnf.defaultFS == nil {
		c.Put(c.cnf.defaultLocale, NewLayoutSet([NumCategories]CategoryPages{}))
		return
	}
	c.load(c.cnf.defaultFS, c.cnf.defaultRoot, c.cnf.defaultLocale)
}

func (c *Catalog) load(fsys fs.FS, root string, id LocaleID) {
	set, err := LoadSet(fsys, path.Join(root, string(id)))
	if err != nil {
		c.logf("layouts: %s: %v", id, err)
	}
	c.Put(id, set)
}

// Put adds or replaces the layout set of id. A new locale is appended
// to the enumeration; a replaced one keeps its index. If the stored set
// equals set, the stored set is kept, so Lookup returns the same
// pointer until the layouts really change.
func (c *Catalog) Put(id LocaleID, set *LayoutSet) {
	if set == nil {
		set = NewLayoutSet([NumCategories]CategoryPages{})
	}
	old, exists := c.sets[id]
	if !exists {
		c.order = append(c.order, id)
	} else if old.Equal(set) {
		return
	}
	c.sets[id] = set
}

// DefaultLocale returns the configured default locale.
func (c *Catalog) DefaultLocale() LocaleID {
	return c.cnf.defaultLocale
}

// Len returns the number of locales.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Locales returns the locales in enumeration order.
func (c *Catalog) Locales() []LocaleID {
	return slices.Clone(c.order)
}

// Locale returns the locale at index i.
func (c *Catalog) Locale(i int) (LocaleID, bool) {
	if i < 0 || i >= len(c.order) {
		return "", false
	}
	return c.order[i], true
}

// Index returns the index of id, or -1 if the catalog has no such
// locale.
func (c *Catalog) Index(id LocaleID) int {
	return slices.Index(c.order, id)
}

// Contains reports whether the catalog has a set for id.
func (c *Catalog) Contains(id LocaleID) bool {
	if c == nil {
		return false
	}
	_, ok := c.sets[id]
	return ok
}

// Lookup returns the layout set of id.
func (c *Catalog) Lookup(id LocaleID) (*LayoutSet, bool) {
	s, ok := c.sets[id]
	return s, ok
}

func (c *Catalog) logf(format string, args ...interface{}) {
	c.cnf.logger.Printf(format, args...)
}
