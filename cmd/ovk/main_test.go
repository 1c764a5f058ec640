// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/openvirtualkeyboard/ovk/internal/config"
	"github.com/openvirtualkeyboard/ovk/layouts"
)

var quiet = log.New(io.Discard, "", 0)

func testConfig() config.Config {
	var cfg config.Config
	cfg.Layouts.DefaultLocale = "en_US"
	cfg.Positioner.Screen = -1
	cfg.Positioner.KeyboardHeight = 240
	return cfg
}

func TestList(t *testing.T) {
	p := loadProvider(testConfig(), quiet, "lang=en_US")
	var buf bytes.Buffer
	if err := list(&buf, p); err != nil {
		t.Fatal(err)
	}
	if got, exp := buf.String(), "  0 de_DE\n* 1 en_US\n"; got != exp {
		t.Errorf("got %q, expected %q", got, exp)
	}
}

func TestResolve(t *testing.T) {
	cfg := testConfig()
	c := newCatalog(cfg, quiet)
	c.Discover()
	tests := []struct {
		label string
		hint  string
		exp   string
	}{
		{"exact", "ibus:lang=de_DE", "de_DE\n"},
		{"language", "lang=de", "de_DE\n"},
		{"region", "lang=de_CH", "de_DE\n"},
		{"unknown", "lang=ja", "en_US\n"},
		{"no hint", "", "en_US\n"},
	}
	for _, tc := range tests {
		t.Run(tc.label, func(t *testing.T) {
			var buf bytes.Buffer
			if err := resolve(&buf, c, cfg.Layouts.Resolver(), tc.hint); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tc.exp {
				t.Errorf("got %q, expected %q", got, tc.exp)
			}
		})
	}
}

func TestLayoutsDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "fr_FR"), 0o755); err != nil {
		t.Fatal(err)
	}
	page := []byte(`[[["a","z","e"]]]`)
	if err := os.WriteFile(filepath.Join(dir, "fr_FR", "alphabet.json"), page, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := testConfig()
	cfg.Layouts.Dir = dir
	cfg.Layouts.DefaultLocale = "it_IT"
	c := newCatalog(cfg, quiet)
	if n := c.Discover(); n != 1 {
		t.Fatalf("got %d locales, expected 1", n)
	}
	set, ok := c.Lookup("fr_FR")
	if !ok {
		t.Fatal("fr_FR missing")
	}
	if got := len(set.Pages(layouts.Alphabet)); got != 1 {
		t.Errorf("got %d alphabet pages, expected 1", got)
	}

	var buf bytes.Buffer
	if err := resolve(&buf, c, cfg.Layouts.Resolver(), "lang=ja"); err != nil {
		t.Fatal(err)
	}
	if got, exp := buf.String(), "it_IT (not available)\n"; got != exp {
		t.Errorf("got %q, expected %q", got, exp)
	}
}

func TestPlace(t *testing.T) {
	cfg := testConfig()
	var buf bytes.Buffer
	if err := place(&buf, cfg, image.Rect(0, 0, 1920, 1080), 2, quiet); err != nil {
		t.Fatal(err)
	}
	exp := "geometry (0,0)-(1920,1080)\nmask (0,600)-(1920,1080)\n"
	if got := buf.String(); got != exp {
		t.Errorf("got %q, expected %q", got, exp)
	}
}

func TestDefaultLocaleFromBuiltin(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "fr_FR"), 0o755); err != nil {
		t.Fatal(err)
	}
	page := []byte(`[[["a","z","e"]]]`)
	if err := os.WriteFile(filepath.Join(dir, "fr_FR", "alphabet.json"), page, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := testConfig()
	cfg.Layouts.Dir = dir

	for _, tc := range []struct {
		label string
		hint  string
		exp   string
	}{
		{"unknown hint", "lang=xx", "  0 fr_FR\n* 1 en_US\n"},
		{"known hint", "lang=fr", "* 0 fr_FR\n  1 en_US\n"},
	} {
		t.Run(tc.label, func(t *testing.T) {
			p := loadProvider(cfg, quiet, tc.hint)
			var buf bytes.Buffer
			if err := list(&buf, p); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tc.exp {
				t.Errorf("got %q, expected %q", got, tc.exp)
			}
			if n := p.View(layouts.Alphabet).PageCount(); n == 0 {
				t.Error("selected layout has no alphabet pages")
			}
		})
	}
}
