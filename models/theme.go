package models

import "strings"

// ThemeColor is a preset color offered in the setup form.
type ThemeColor struct {
	Hex  string
	Name string
}

// ThemePalette is the list of preset colors, default first.
var ThemePalette = []ThemeColor{
	{DefaultThemeColor, "Blue"},
	{"#059669", "Green"},
	{"#dc2626", "Red"},
	{"#7c3aed", "Purple"},
	{"#ea580c", "Orange"},
	{"#0891b2", "Cyan"},
	{"#1f2937", "Dark Gray"},
	{"#f59e0b", "Yellow"},
}

// ThemeColorName returns the preset name for hex, or "Custom".
func ThemeColorName(hex string) string {
	for _, c := range ThemePalette {
		if strings.EqualFold(c.Hex, hex) {
			return c.Name
		}
	}
	return "Custom"
}
