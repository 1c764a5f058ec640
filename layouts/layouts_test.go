// SPDX-License-Identifier: Unlicense OR MIT

package layouts

import (
	"fmt"
	"io"
	"log"
	"testing/fstest"
)

// testFS returns three locales with one page per category. The page
// holds a single record naming its locale and category. fr_FR has no
// symbols file.
func testFS(locales ...string) fstest.MapFS {
	if len(locales) == 0 {
		locales = []string{"de_DE", "en_US", "fr_FR"}
	}
	fsys := fstest.MapFS{}
	for _, loc := range locales {
		for _, c := range Categories {
			fsys[loc+"/"+c.Filename()] = &fstest.MapFile{Data: []byte(record(loc, c))}
		}
	}
	delete(fsys, "fr_FR/symbols.json")
	return fsys
}

func record(loc string, c Category) string {
	return fmt.Sprintf(`[[{"loc":%q,"cat":%q}]]`, loc, c.String())
}

func firstRecord(pages CategoryPages) string {
	if len(pages) == 0 || len(pages[0]) == 0 {
		return ""
	}
	return string(pages[0][0])
}

func wantRecord(loc string, c Category) string {
	return fmt.Sprintf(`{"loc":%q,"cat":%q}`, loc, c.String())
}

func quietLogger() Option {
	return Logger(log.New(io.Discard, "", 0))
}
