// SPDX-License-Identifier: Unlicense OR MIT

package layouts

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// LocaleID identifies a layout set, for example "en_US". Lookups are
// exact and case-sensitive.
type LocaleID string

// Page is one screenful of keys: an ordered list of opaque records.
type Page []json.RawMessage

// CategoryPages is the ordered list of pages of one category.
type CategoryPages []Page

// Category is one of the five key groups of a layout set.
type Category uint8

const (
	Alphabet Category = iota
	Symbols
	Dial
	Numbers
	Digits

	// NumCategories is the number of categories in a LayoutSet.
	NumCategories = int(Digits) + 1
)

// Categories lists every category in index order.
var Categories = [NumCategories]Category{Alphabet, Symbols, Dial, Numbers, Digits}

// Filename returns the name of the file holding the category, such as
// "alphabet.json".
func (c Category) Filename() string {
	return c.String() + ".json"
}

func (c Category) String() string {
	switch c {
	case Alphabet:
		return "alphabet"
	case Symbols:
		return "symbols"
	case Dial:
		return "dial"
	case Numbers:
		return "numbers"
	case Digits:
		return "digits"
	default:
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
}

// Valid reports whether c names one of the five categories.
func (c Category) Valid() bool {
	return int(c) < NumCategories
}

// LayoutSet holds the pages of all five categories of one locale. A
// LayoutSet is never modified after creation; the page slices it
// returns must not be modified either.
type LayoutSet struct {
	pages [NumCategories]CategoryPages
}

// NewLayoutSet returns a set with the given pages, indexed by Category.
// Nil entries become empty categories.
func NewLayoutSet(pages [NumCategories]CategoryPages) *LayoutSet {
	s := new(LayoutSet)
	for i, p := range pages {
		if p == nil {
			p = CategoryPages{}
		}
		s.pages[i] = p
	}
	return s
}

// Equal reports whether s and o hold the same records in the same
// order. Records are compared byte for byte.
func (s *LayoutSet) Equal(o *LayoutSet) bool {
	if s == nil || o == nil {
		return s == o
	}
	for c := range s.pages {
		if len(s.pages[c]) != len(o.pages[c]) {
			return false
		}
		for i, p := range s.pages[c] {
			q := o.pages[c][i]
			if len(p) != len(q) {
				return false
			}
			for j := range p {
				if !bytes.Equal(p[j], q[j]) {
					return false
				}
			}
		}
	}
	return true
}

// Pages returns the pages of category c. It returns an empty list for
// an invalid category.
func (s *LayoutSet) Pages(c Category) CategoryPages {
	if !c.Valid() {
		return CategoryPages{}
	}
	return s.pages[c]
}
