// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layouts discovers, loads and selects keyboard layouts.

A layout set holds the key pages of one locale in five categories:
alphabet, symbols, dial, numbers and digits. Each category is stored as
a JSON file in a directory named after the locale:

	<root>/en_US/alphabet.json
	<root>/en_US/symbols.json
	...

A file contains an array of pages and every page is an array of key
records. The records are passed through unchanged; this package only
preserves their order.

A Catalog loads layout sets from an fs.FS and enumerates them in
discovery order, so that a locale keeps its index for the lifetime of
the catalog. A Resolver picks the locale to activate from the hint
supplied by the input method, and a Provider pushes the pages of the
selected locale into one PageView per category.

Missing or malformed files never fail an operation: the affected
category is empty and the rest of the locale is still usable.

Catalog, PageView and Provider are not safe for concurrent use; call
them from the goroutine that runs the user interface.
*/
package layouts
