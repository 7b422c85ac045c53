package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNormalizeCardCode(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  string
		valid bool
	}{
		{"uppercase", "AB12CD34", "AB12CD34", true},
		{"lowercase is uppercased", "ab12cd34", "AB12CD34", true},
		{"empty", "", "", false},
		{"too short", "AB12CD3", "AB12CD3", false},
		{"too long", "AB12CD345", "AB12CD345", false},
		{"symbol", "AB12-D34", "AB12-D34", false},
		{"space", "AB12 D34", "AB12 D34", false},
		{"non ascii letter", "abcdefgı", "ABCDEFGI", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeCardCode(tt.raw)
			if ok != tt.valid {
				t.Errorf("NormalizeCardCode(%q) valid = %v, want %v", tt.raw, ok, tt.valid)
			}
			if tt.valid && got != tt.want {
				t.Errorf("NormalizeCardCode(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCardConfigTheme(t *testing.T) {
	var nilCfg *CardConfig
	if got := nilCfg.Theme(); got != DefaultThemeColor {
		t.Errorf("nil Theme() = %q, want %q", got, DefaultThemeColor)
	}
	tests := []struct {
		color string
		want  string
	}{
		{"", DefaultThemeColor},
		{"blue", DefaultThemeColor},
		{"#12345", DefaultThemeColor},
		{"#059669", "#059669"},
		{"#ABCDEF", "#ABCDEF"},
	}
	for _, tt := range tests {
		cfg := &CardConfig{ThemeColor: tt.color}
		if got := cfg.Theme(); got != tt.want {
			t.Errorf("Theme() with %q = %q, want %q", tt.color, got, tt.want)
		}
	}
}

func TestCardConfigOwnerName(t *testing.T) {
	if got := (&CardConfig{Name: "Ana"}).OwnerName(); got != "Ana" {
		t.Errorf("OwnerName() = %q, want %q", got, "Ana")
	}
	if got := (&CardConfig{}).OwnerName(); got != DefaultOwner {
		t.Errorf("OwnerName() = %q, want %q", got, DefaultOwner)
	}
}

func TestCardConfigValueOmitsLinkIDs(t *testing.T) {
	cfg := CardConfig{
		Name:       "Ana",
		ThemeColor: "#059669",
		Links:      []ProfileLink{{Title: "A", URL: "http://a", Icon: "website"}},
	}
	v, err := cfg.Value()
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}
	s, ok := v.(string)
	if !ok {
		t.Fatalf("Value() type = %T, want string", v)
	}
	if strings.Contains(s, `"id"`) {
		t.Errorf("stored links should carry no id: %s", s)
	}
	if strings.Contains(s, `"bio"`) {
		t.Errorf("empty bio should be omitted: %s", s)
	}

	var back CardConfig
	if err := json.Unmarshal([]byte(s), &back); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if len(back.Links) != 1 || back.Links[0].Title != "A" {
		t.Errorf("links = %+v, want one link titled A", back.Links)
	}
}

func TestIconGlyph(t *testing.T) {
	if got := IconGlyph("email"); got != "envelope" {
		t.Errorf("IconGlyph(email) = %q, want %q", got, "envelope")
	}
	if got := IconGlyph("website"); got != "globe" {
		t.Errorf("IconGlyph(website) = %q, want %q", got, "globe")
	}
	if got := IconGlyph("myspace"); got != FallbackIconGlyph {
		t.Errorf("IconGlyph(myspace) = %q, want %q", got, FallbackIconGlyph)
	}
	if !IsKnownIcon(IconWebsite) {
		t.Error("default icon must be part of the catalog")
	}
}

func TestThemeColorName(t *testing.T) {
	if got := ThemeColorName("#2563eb"); got != "Blue" {
		t.Errorf("ThemeColorName(#2563eb) = %q, want Blue", got)
	}
	if got := ThemeColorName("#000000"); got != "Custom" {
		t.Errorf("ThemeColorName(#000000) = %q, want Custom", got)
	}
}
