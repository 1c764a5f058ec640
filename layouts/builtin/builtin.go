// SPDX-License-Identifier: Unlicense OR MIT

// Package builtin embeds the layouts shipped with the keyboard. The
// root of FS holds one directory per locale.
package builtin

import (
	"embed"
	"io/fs"
)

//go:embed data
var data embed.FS

// FS contains the built-in layouts.
var FS fs.FS

func init() {
	sub, err := fs.Sub(data, "data")
	if err != nil {
		panic(err)
	}
	FS = sub
}
