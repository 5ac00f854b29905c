//go:build linux && !android

package dialog

import (
	"os"

	"github.com/rymdport/portal/settings"
	"github.com/rymdport/portal/settings/appearance"
)

const (
	interfaceNamespace = "org.gnome.desktop.interface"
	iconThemeEnv       = "XFILEDIALOG_ICON_THEME"
	defaultIconTheme   = "hicolor"
)

// systemPrefersDark asks the desktop portal for the colour scheme.
func systemPrefersDark() bool {
	scheme, err := appearance.GetColorScheme()
	return err == nil && scheme == appearance.Dark
}

func iconThemeName() string {
	if name := os.Getenv(iconThemeEnv); name != "" {
		return name
	}

	v, err := settings.ReadOne(interfaceNamespace, "icon-theme")
	if err != nil {
		return defaultIconTheme
	}
	if name, ok := unwrapString(v); ok && name != "" {
		return name
	}
	return defaultIconTheme
}

// unwrapString digs through D-Bus variants down to a string value.
func unwrapString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case interface{ Value() any }:
		return unwrapString(t.Value())
	}
	return "", false
}
