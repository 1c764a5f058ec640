// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/openvirtualkeyboard/ovk/layouts"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("OVK_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "", cfg.Layouts.Dir)
	require.Equal(t, "en_US", cfg.Layouts.DefaultLocale)
	require.Equal(t, "QT_IM_MODULE", cfg.Input.HintEnv)
	require.Equal(t, -1, cfg.Positioner.Screen)
	require.True(t, cfg.Positioner.Animate)
	require.Equal(t, 250*time.Millisecond, cfg.Positioner.Duration)
	require.Equal(t, float32(240), cfg.Positioner.KeyboardHeight)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ovk.toml")
	data := `
[layouts]
dir = "/usr/share/ovk"
root = "layouts"
default_locale = "de_DE"
fallback_suffixes = ["_FR"]

[input]
hint_env = "OVK_IM"

[positioner]
screen = 1
animate = false
duration = "100ms"
keyboard_height = 300
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	t.Setenv("OVK_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/usr/share/ovk", cfg.Layouts.Dir)
	require.Equal(t, "layouts", cfg.Layouts.Root)
	require.Equal(t, "de_DE", cfg.Layouts.DefaultLocale)
	require.Equal(t, []string{"_FR"}, cfg.Layouts.FallbackSuffixes)
	require.Equal(t, "OVK_IM", cfg.Input.HintEnv)
	require.Equal(t, 1, cfg.Positioner.Screen)
	require.False(t, cfg.Positioner.Animate)
	require.Equal(t, 100*time.Millisecond, cfg.Positioner.Duration)
	require.Equal(t, float32(300), cfg.Positioner.KeyboardHeight)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("OVK_CONFIG", "")
	t.Setenv("OVK_POSITIONER_SCREEN", "2")
	t.Setenv("OVK_LAYOUTS_DEFAULT_LOCALE", "fr_FR")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Positioner.Screen)
	require.Equal(t, "fr_FR", cfg.Layouts.DefaultLocale)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("OVK_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))

	_, err := Load()
	require.Error(t, err)
}

func TestResolver(t *testing.T) {
	c := layouts.NewCatalog(nil)
	c.Put("en_US", nil)
	c.Put("fr_FR", nil)
	c.Put("de_AT", nil)

	r := LayoutsConfig{DefaultLocale: "en_US", FallbackSuffixes: []string{"_AT"}}.Resolver()
	require.Equal(t, layouts.LocaleID("de_AT"), r.Resolve(c, "lang=de"))
	require.Equal(t, layouts.LocaleID("fr_FR"), r.Resolve(c, "lang=fr"))
	require.Equal(t, layouts.LocaleID("en_US"), r.Resolve(c, "lang=ja"))
}
