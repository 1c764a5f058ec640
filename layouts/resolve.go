// SPDX-License-Identifier: Unlicense OR MIT

package layouts

import (
	"os"
	"strings"

	textlang "github.com/go-text/typesetting/language"
	"golang.org/x/text/language"
)

const (
	hintMarker     = "lang="
	hintSeparators = ";:, \t\r\n"
)

// ParseHint extracts the locale tag from an input method hint of the
// form "...lang=<tag>". The marker must start the hint or follow a
// ';', ':', ',' or white space, so keys such as "xlang=" do not match.
// The tag ends at the next separator. ParseHint reports false when the
// hint has no marker or the tag is empty.
func ParseHint(raw string) (LocaleID, bool) {
	for off := 0; ; {
		i := strings.Index(raw[off:], hintMarker)
		if i < 0 {
			return "", false
		}
		start := off + i
		off = start + len(hintMarker)
		if start > 0 && strings.IndexByte(hintSeparators, raw[start-1]) < 0 {
			continue
		}
		v := raw[off:]
		if j := strings.IndexAny(v, hintSeparators); j >= 0 {
			v = v[:j]
		}
		if v == "" {
			return "", false
		}
		return LocaleID(v), true
	}
}

// HintFromEnv returns the input method hint stored in the environment
// variable name.
func HintFromEnv(name string) string {
	return os.Getenv(name)
}

// A Fallback proposes a locale for tag when the catalog has no exact
// match. The Resolver only accepts the proposal if the catalog
// contains it.
type Fallback func(tag LocaleID, c *Catalog) (LocaleID, bool)

// Resolver chooses the locale to activate for an input method hint.
type Resolver struct {
	// Fallbacks are tried in order after an exact match fails.
	Fallbacks []Fallback
	// Default is returned when nothing else matches. The empty value
	// means the catalog's default locale.
	Default LocaleID
}

// DefaultResolver returns a resolver that tries the likely region of
// the tag and then any locale of the same language.
func DefaultResolver() Resolver {
	return Resolver{
		Fallbacks: []Fallback{LikelyRegion(), SameLanguage()},
	}
}

// Resolve returns the locale for the hint raw. It always returns a
// locale, but the default locale it falls back to is not necessarily
// present in c.
func (r Resolver) Resolve(c *Catalog, raw string) LocaleID {
	if tag, ok := ParseHint(raw); ok {
		if id, ok := r.Match(c, tag); ok {
			return id
		}
	}
	return r.fallbackDefault(c)
}

// Match resolves tag without the final default.
func (r Resolver) Match(c *Catalog, tag LocaleID) (LocaleID, bool) {
	if c.Contains(tag) {
		return tag, true
	}
	for _, f := range r.Fallbacks {
		if f == nil {
			continue
		}
		if id, ok := f(tag, c); ok && c.Contains(id) {
			return id, true
		}
	}
	return "", false
}

func (r Resolver) fallbackDefault(c *Catalog) LocaleID {
	if r.Default != "" {
		return r.Default
	}
	if c != nil {
		return c.DefaultLocale()
	}
	return DefaultLocale
}

// Suffix proposes tag followed by s, for example "de" with "_DE".
func Suffix(s string) Fallback {
	return func(tag LocaleID, _ *Catalog) (LocaleID, bool) {
		if s == "" {
			return "", false
		}
		return tag + LocaleID(s), true
	}
}

// LikelyRegion proposes the canonical language_REGION form of tag,
// using the most likely region when tag has none: "de" becomes
// "de_DE", "en" becomes "en_US" and "pt-br" becomes "pt_BR". Encoding
// and modifier suffixes such as ".UTF-8" are ignored.
func LikelyRegion() Fallback {
	return func(tag LocaleID, _ *Catalog) (LocaleID, bool) {
		s := string(tag)
		if i := strings.IndexAny(s, ".@"); i >= 0 {
			s = s[:i]
		}
		t, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
		if err != nil {
			return "", false
		}
		base, conf := t.Base()
		if conf == language.No {
			return "", false
		}
		region, conf := t.Region()
		if conf == language.No {
			return "", false
		}
		return LocaleID(base.String() + "_" + region.String()), true
	}
}

// SameLanguage proposes the first locale of the catalog whose primary
// language equals that of tag, so "de" or "de_CH" select "de_DE" when
// that is the only German layout.
func SameLanguage() Fallback {
	return func(tag LocaleID, c *Catalog) (LocaleID, bool) {
		want := primary(tag)
		if want == "" || c == nil {
			return "", false
		}
		for _, id := range c.order {
			if primary(id) == want {
				return id, true
			}
		}
		return "", false
	}
}

func primary(id LocaleID) textlang.Language {
	return textlang.NewLanguage(string(id)).Primary()
}
