// SPDX-License-Identifier: Unlicense OR MIT

package layouts

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
)

// ErrNotArray is reported for layout data whose top level, or one of
// whose pages, is not a JSON array.
var ErrNotArray = errors.New("layout data is not an array")

// LoadCategory reads the category file name from fsys and returns its
// pages. The returned pages are always usable: a file that is missing
// or not valid JSON yields an empty list, and pages that are not
// arrays are left out. The error describes what was dropped; a
// missing file reports an error wrapping fs.ErrNotExist.
func LoadCategory(fsys fs.FS, name string) (CategoryPages, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return CategoryPages{}, fmt.Errorf("read %s: %w", name, err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return CategoryPages{}, fmt.Errorf("%s: %w", name, ErrNotArray)
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return CategoryPages{}, fmt.Errorf("parse %s: %w", name, err)
	}
	pages := make(CategoryPages, 0, len(raw))
	var errs []error
	for i, r := range raw {
		p, err := parsePage(r)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: page %d: %w", name, i, err))
			continue
		}
		pages = append(pages, p)
	}
	return pages, errors.Join(errs...)
}

func parsePage(r json.RawMessage) (Page, error) {
	r = bytes.TrimSpace(r)
	if len(r) == 0 || r[0] != '[' {
		return nil, ErrNotArray
	}
	p := Page{}
	if err := json.Unmarshal(r, &p); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadSet loads the five category files found in dir. The set is
// always returned; categories that could not be loaded are empty. The
// error joins the failures other than missing files.
func LoadSet(fsys fs.FS, dir string) (*LayoutSet, error) {
	var pages [NumCategories]CategoryPages
	var errs []error
	for _, c := range Categories {
		p, err := LoadCategory(fsys, path.Join(dir, c.Filename()))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
		pages[c] = p
	}
	return NewLayoutSet(pages), errors.Join(errs...)
}
