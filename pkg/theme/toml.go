package theme

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// thTOMLTheme is the TOML-serializable representation of a Theme.
type thTOMLTheme struct {
	Name    string        `toml:"name"`
	Base    thTOMLBase    `toml:"base"`
	Surface thTOMLSurface `toml:"surface"`
	Accent  thTOMLAccent  `toml:"accent"`
	Brand   thTOMLBrand   `toml:"brand"`
}

type thTOMLBase struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Muted      string `toml:"muted"`
	Subtle     string `toml:"subtle"`
}

type thTOMLSurface struct {
	Surface    string `toml:"surface"`
	SurfaceAlt string `toml:"surface_alt"`
	Border     string `toml:"border"`
}

type thTOMLAccent struct {
	Accent     string `toml:"accent"`
	AccentText string `toml:"accent_text"`
	Focus      string `toml:"focus"`
}

type thTOMLBrand struct {
	Pink    string `toml:"pink"`
	Blue    string `toml:"blue"`
	Orange  string `toml:"orange"`
	Yellow  string `toml:"yellow"`
	Red     string `toml:"red"`
	Overlay string `toml:"overlay"`
}

var thHexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses a TOML theme definition from raw bytes.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt thTOMLTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	t := Theme{
		Name:       tt.Name,
		Background: tt.Base.Background,
		Foreground: tt.Base.Foreground,
		Muted:      tt.Base.Muted,
		Subtle:     tt.Base.Subtle,

		Surface:    tt.Surface.Surface,
		SurfaceAlt: tt.Surface.SurfaceAlt,
		Border:     tt.Surface.Border,

		Accent:     tt.Accent.Accent,
		AccentText: tt.Accent.AccentText,
		Focus:      tt.Accent.Focus,

		Pink:    tt.Brand.Pink,
		Blue:    tt.Brand.Blue,
		Orange:  tt.Brand.Orange,
		Yellow:  tt.Brand.Yellow,
		Red:     tt.Brand.Red,
		Overlay: tt.Brand.Overlay,
	}

	if err := thValidateTheme(t); err != nil {
		return Theme{}, err
	}

	return t, nil
}

// LoadFile reads a TOML theme from path.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: read %s: %w", path, err)
	}
	return LoadFromTOML(data)
}

// SaveToTOML serializes a theme to TOML bytes.
func SaveToTOML(t Theme) ([]byte, error) {
	tt := thTOMLTheme{
		Name: t.Name,
		Base: thTOMLBase{
			Background: t.Background,
			Foreground: t.Foreground,
			Muted:      t.Muted,
			Subtle:     t.Subtle,
		},
		Surface: thTOMLSurface{
			Surface:    t.Surface,
			SurfaceAlt: t.SurfaceAlt,
			Border:     t.Border,
		},
		Accent: thTOMLAccent{
			Accent:     t.Accent,
			AccentText: t.AccentText,
			Focus:      t.Focus,
		},
		Brand: thTOMLBrand{
			Pink:    t.Pink,
			Blue:    t.Blue,
			Orange:  t.Orange,
			Yellow:  t.Yellow,
			Red:     t.Red,
			Overlay: t.Overlay,
		},
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tt); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// thColorFields lists every color field with its TOML key, in a stable
// order so validation errors are deterministic.
func thColorFields(t Theme) [][2]string {
	return [][2]string{
		{"background", t.Background},
		{"foreground", t.Foreground},
		{"muted", t.Muted},
		{"subtle", t.Subtle},
		{"surface", t.Surface},
		{"surface_alt", t.SurfaceAlt},
		{"border", t.Border},
		{"accent", t.Accent},
		{"accent_text", t.AccentText},
		{"focus", t.Focus},
		{"pink", t.Pink},
		{"blue", t.Blue},
		{"orange", t.Orange},
		{"yellow", t.Yellow},
		{"red", t.Red},
		{"overlay", t.Overlay},
	}
}

// thValidateTheme checks that all required fields are present and valid hex.
func thValidateTheme(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}
	for _, f := range thColorFields(t) {
		if f[1] == "" {
			return fmt.Errorf("theme: missing required field %q", f[0])
		}
		if !thHexColorRegex.MatchString(f[1]) {
			return fmt.Errorf("theme: invalid hex color %q for field %q (expected #RRGGBB)", f[1], f[0])
		}
	}
	return nil
}
