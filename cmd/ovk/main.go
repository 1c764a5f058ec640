// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/openvirtualkeyboard/ovk/internal/config"
	"github.com/openvirtualkeyboard/ovk/internal/preview"
	"github.com/openvirtualkeyboard/ovk/io/event"
	"github.com/openvirtualkeyboard/ovk/layouts"
	"github.com/openvirtualkeyboard/ovk/layouts/builtin"
	"github.com/openvirtualkeyboard/ovk/positioner"
	"github.com/openvirtualkeyboard/ovk/unit"
)

var (
	configPath = flag.String("config", "", "configuration file (overrides $OVK_CONFIG).")
	width      = flag.Int("width", 1920, "screen width in pixels (place).")
	height     = flag.Int("height", 1080, "screen height in pixels (place).")
	scale      = flag.Float64("scale", 1, "pixels per dp (place).")
	verbose    = flag.Bool("v", false, "log diagnostics to stderr.")
)

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "ovk: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func mainErr() error {
	if *configPath != "" {
		os.Setenv("OVK_CONFIG", *configPath)
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	cmd := flag.Arg(0)
	switch cmd {
	case "list":
		p := loadProvider(cfg, logger, layouts.HintFromEnv(cfg.Input.HintEnv))
		return list(os.Stdout, p)
	case "resolve":
		hint := flag.Arg(1)
		if hint == "" {
			hint = layouts.HintFromEnv(cfg.Input.HintEnv)
		}
		c := newCatalog(cfg, logger)
		c.Discover()
		return resolve(os.Stdout, c, cfg.Layouts.Resolver(), hint)
	case "place":
		screen := image.Rect(0, 0, *width, *height)
		return place(os.Stdout, cfg, screen, float32(*scale), logger)
	case "preview":
		p := loadProvider(cfg, logger, layouts.HintFromEnv(cfg.Input.HintEnv))
		m := preview.New(p, positionerOptions(cfg, logger)...)
		_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
		return err
	case "":
		return errors.New("specify a command")
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// newCatalog returns a catalog over the configured layouts directory,
// or over the built-in layouts when none is configured. The default
// locale always comes from the built-in layouts.
func newCatalog(cfg config.Config, logger *log.Logger) *layouts.Catalog {
	root := cfg.Layouts.Root
	if root == "" {
		root = "."
	}
	options := []layouts.Option{
		layouts.Root(root),
		layouts.Default(layouts.LocaleID(cfg.Layouts.DefaultLocale)),
		layouts.DefaultSource(builtin.FS, "."),
		layouts.Logger(logger),
	}
	if cfg.Layouts.Dir == "" {
		return layouts.NewCatalog(builtin.FS, options...)
	}
	return layouts.NewCatalog(os.DirFS(cfg.Layouts.Dir), options...)
}

func newProvider(cfg config.Config, logger *log.Logger) *layouts.Provider {
	return layouts.NewProvider(newCatalog(cfg, logger), cfg.Layouts.Resolver())
}

// loadProvider discovers the configured layouts and applies hint. When
// the configured layouts lack the default locale, it is added from the
// built-in layouts, and the hint is applied again if nothing could be
// selected before.
func loadProvider(cfg config.Config, logger *log.Logger, hint string) *layouts.Provider {
	p := newProvider(cfg, logger)
	p.Load(hint)
	c := p.Catalog()
	if c.Contains(c.DefaultLocale()) {
		return p
	}
	p.LoadDefault()
	if p.SelectedIndex() < 0 {
		p.ApplyHint(hint)
	}
	return p
}

func positionerOptions(cfg config.Config, logger *log.Logger) []positioner.Option {
	return []positioner.Option{
		positioner.ScreenIndex(cfg.Positioner.Screen),
		positioner.Animation(cfg.Positioner.Animate),
		positioner.Duration(cfg.Positioner.Duration),
		positioner.Logger(logger),
	}
}

func list(w io.Writer, p *layouts.Provider) error {
	sel := p.SelectedIndex()
	for i, id := range p.Catalog().Locales() {
		mark := " "
		if i == sel {
			mark = "*"
		}
		if _, err := fmt.Fprintf(w, "%s %d %s\n", mark, i, id); err != nil {
			return err
		}
	}
	return nil
}

func resolve(w io.Writer, c *layouts.Catalog, r layouts.Resolver, hint string) error {
	id := r.Resolve(c, hint)
	if !c.Contains(id) {
		_, err := fmt.Fprintf(w, "%s (not available)\n", id)
		return err
	}
	_, err := fmt.Fprintf(w, "%s\n", id)
	return err
}

// place shows the keyboard on a single screen and prints where the
// keyboard window ends up.
func place(w io.Writer, cfg config.Config, bounds image.Rectangle, scale float32, logger *log.Logger) error {
	s := &staticScreen{bounds: bounds, metric: unit.Metric{PxPerDp: scale}}
	win := new(recordingWindow)
	options := append(positionerOptions(cfg, logger), positioner.Animation(false))
	p := positioner.New(win, staticDisplay{s}, options...)
	p.SetKeyboard(positioner.FixedHeight(cfg.Positioner.KeyboardHeight))
	p.UpdateFocusItem(staticItem{s})
	p.Show()
	_, err := fmt.Fprintf(w, "geometry %v\nmask %v\n", win.geometry, win.mask)
	return err
}

type staticScreen struct {
	bounds image.Rectangle
	metric unit.Metric
}

func (s *staticScreen) Bounds() image.Rectangle { return s.bounds }
func (s *staticScreen) Metric() unit.Metric     { return s.metric }

type staticDisplay []positioner.Screen

func (d staticDisplay) Screens() []positioner.Screen { return d }

// staticItem is a focus item whose host window never changes.
type staticItem struct {
	screen positioner.Screen
}

func (i staticItem) Alive() bool                           { return true }
func (i staticItem) Window() positioner.HostWindow         { return i }
func (i staticItem) Screen() positioner.Screen             { return i.screen }
func (i staticItem) Watch(func(event.Event)) (stop func()) { return func() {} }

type recordingWindow struct {
	geometry image.Rectangle
	mask     image.Rectangle
}

func (w *recordingWindow) SetGeometry(r image.Rectangle) { w.geometry = r }
func (w *recordingWindow) SetMask(r image.Rectangle)     { w.mask = r }
func (w *recordingWindow) SetVisible(bool)               {}
