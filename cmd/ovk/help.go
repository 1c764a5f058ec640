// SPDX-License-Identifier: Unlicense OR MIT

package main

const mainUsage = `The ovk command inspects and previews on-screen keyboard layouts.

Usage:

	ovk [flags] <command> [arguments]

The commands are:

	list            print the available layouts, marking the selected one
	resolve [hint]  print the layout chosen for an input method hint
	place           print the keyboard window geometry and input mask
	preview         run the keyboard in the terminal

The hint of resolve has the form "...lang=<locale>", for example
"ibus:lang=de_DE". Without an argument the hint is read from the
environment variable named by input.hint_env, QT_IM_MODULE by default.

The place command shows the keyboard on a screen of -width by -height
pixels at -scale pixels per dp and prints the resulting window geometry
and input mask.

Configuration is read from $OVK_CONFIG or ~/.config/ovk/config.toml.
The -config flag overrides both. Every setting can also be given in the
environment, for example OVK_LAYOUTS_DIR or OVK_POSITIONER_SCREEN.

Flags:

`
