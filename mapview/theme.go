package mapview

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/waozixyz/volcanomap/render"
)

// Theme holds every user-visible string and colour of the sketch.
type Theme struct {
	Title          string
	FilterLabel    string
	MapUnavailable string
	AllLabel       string

	Background  color.RGBA
	Ink         color.RGBA
	LegendFill  color.RGBA
	TooltipFill color.RGBA
	TooltipText color.RGBA
	ControlFill color.RGBA
	MapFallback color.RGBA

	Palette []color.RGBA
}

// DefaultPalette is the fixed 7-colour cycle assigned to volcano types.
var DefaultPalette = []color.RGBA{
	render.MustHexColor("#FFB162"),
	render.MustHexColor("#A35139"),
	render.MustHexColor("#733635"),
	render.MustHexColor("#351E1C"),
	render.MustHexColor("#ffc562ff"),
	render.MustHexColor("#f9de7aff"),
	render.MustHexColor("#c2693aff"),
}

func DefaultTheme() Theme {
	palette := make([]color.RGBA, len(DefaultPalette))
	copy(palette, DefaultPalette)
	return Theme{
		Title:          "MAPPA DEI VULCANI",
		FilterLabel:    "Filtra per tipologia di vulcano",
		MapUnavailable: "Mappa non caricata",
		AllLabel:       "All",

		Background:  render.MustHexColor("#EEE9DF"),
		Ink:         render.MustHexColor("#1B2632"),
		LegendFill:  render.MustHexColor("#d6cdbcff"),
		TooltipFill: render.MustHexColor("#C9C1B1"),
		TooltipText: render.Gray(20),
		ControlFill: render.MustHexColor("#e6e1d8ff"),
		MapFallback: render.Gray(50),

		Palette: palette,
	}
}

type themeFile struct {
	Title          string   `yaml:"title"`
	FilterLabel    string   `yaml:"filter_label"`
	MapUnavailable string   `yaml:"map_unavailable"`
	AllLabel       string   `yaml:"all_label"`
	Palette        []string `yaml:"palette"`
	Colors         struct {
		Background  string `yaml:"background"`
		Ink         string `yaml:"ink"`
		Legend      string `yaml:"legend"`
		Tooltip     string `yaml:"tooltip"`
		TooltipText string `yaml:"tooltip_text"`
		Control     string `yaml:"control"`
		MapFallback string `yaml:"map_fallback"`
	} `yaml:"colors"`
}

// LoadTheme reads a YAML theme file. Fields left out keep their default.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: %w", err)
	}
	return ParseTheme(data)
}

// ParseTheme overlays YAML theme data on DefaultTheme.
func ParseTheme(data []byte) (Theme, error) {
	var f themeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Theme{}, fmt.Errorf("theme: %w", err)
	}

	t := DefaultTheme()
	setString(&t.Title, f.Title)
	setString(&t.FilterLabel, f.FilterLabel)
	setString(&t.MapUnavailable, f.MapUnavailable)
	setString(&t.AllLabel, f.AllLabel)

	var errs []error
	for _, c := range []struct {
		name string
		raw  string
		dst  *color.RGBA
	}{
		{"background", f.Colors.Background, &t.Background},
		{"ink", f.Colors.Ink, &t.Ink},
		{"legend", f.Colors.Legend, &t.LegendFill},
		{"tooltip", f.Colors.Tooltip, &t.TooltipFill},
		{"tooltip_text", f.Colors.TooltipText, &t.TooltipText},
		{"control", f.Colors.Control, &t.ControlFill},
		{"map_fallback", f.Colors.MapFallback, &t.MapFallback},
	} {
		if c.raw == "" {
			continue
		}
		parsed, err := render.ParseHexColor(c.raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("colors.%s: %w", c.name, err))
			continue
		}
		*c.dst = parsed
	}

	if len(f.Palette) > 0 {
		palette := make([]color.RGBA, 0, len(f.Palette))
		for i, raw := range f.Palette {
			parsed, err := render.ParseHexColor(raw)
			if err != nil {
				errs = append(errs, fmt.Errorf("palette[%d]: %w", i, err))
				continue
			}
			palette = append(palette, parsed)
		}
		t.Palette = palette
	}

	if err := errors.Join(errs...); err != nil {
		return Theme{}, fmt.Errorf("theme: %w", err)
	}
	return t, nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
