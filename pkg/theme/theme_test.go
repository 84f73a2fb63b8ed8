package theme

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Get / SetCurrent / Names ---

func TestGetDefault(t *testing.T) {
	th := Get("bird")
	assert.Equal(t, "bird", th.Name)
	assert.Equal(t, "#EBB343", th.Yellow)
	assert.Equal(t, "#D65239", th.Red)
}

func TestGetIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, "night", Get("NIGHT").Name)
}

func TestGetUnknownFallsBackToBird(t *testing.T) {
	assert.Equal(t, "bird", Get("unknown-theme-xyz").Name)
	_, ok := Lookup("unknown-theme-xyz")
	assert.False(t, ok)
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Subset(t, names, []string{"bird", "mono", "night"})
	assert.True(t, sort.StringsAreSorted(names), "Names() not sorted: %v", names)
}

func TestSetCurrent(t *testing.T) {
	t.Cleanup(func() { SetCurrent("bird") })
	SetCurrent("night")
	assert.Equal(t, "night", Current.Name)
}

func TestRegister(t *testing.T) {
	custom := Get("mono")
	custom.Name = "Test-Custom"
	Register(custom)

	got, ok := Lookup("test-custom")
	require.True(t, ok, "registered theme not found")
	assert.Equal(t, custom.Foreground, got.Foreground)
}

// --- Built-in theme completeness ---

func TestBuiltinsValidate(t *testing.T) {
	for _, th := range []Theme{thBirdTheme(), thNightTheme(), thMonoTheme()} {
		assert.NoError(t, thValidateTheme(th), "builtin %q", th.Name)
	}
}

// --- TOML ---

const thValidTOML = `
name = "sand"

[base]
background = "#fdf6e3"
foreground = "#073642"
muted = "#586e75"
subtle = "#93a1a1"

[surface]
surface = "#eee8d5"
surface_alt = "#e4ddc8"
border = "#d3cbb7"

[accent]
accent = "#073642"
accent_text = "#fdf6e3"
focus = "#d33682"

[brand]
pink = "#d33682"
blue = "#268bd2"
orange = "#cb4b16"
yellow = "#EBB343"
red = "#D65239"
overlay = "#002b36"
`

func TestLoadFromTOMLValid(t *testing.T) {
	th, err := LoadFromTOML([]byte(thValidTOML))
	require.NoError(t, err)
	assert.Equal(t, "sand", th.Name)
	assert.Equal(t, "#e4ddc8", th.SurfaceAlt)
	assert.Equal(t, "#002b36", th.Overlay)
}

func TestLoadFromTOMLMissingFields(t *testing.T) {
	data := strings.Replace(thValidTOML, `focus = "#d33682"`, "", 1)
	_, err := LoadFromTOML([]byte(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "focus", "error names the missing field")
}

func TestLoadFromTOMLMissingName(t *testing.T) {
	data := strings.Replace(thValidTOML, `name = "sand"`, "", 1)
	_, err := LoadFromTOML([]byte(data))
	assert.Error(t, err)
}

func TestLoadFromTOMLInvalidHex(t *testing.T) {
	data := strings.Replace(thValidTOML, `"#268bd2"`, `"blue"`, 1)
	_, err := LoadFromTOML([]byte(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blue", "error names the field")
}

func TestLoadFromTOMLSyntaxError(t *testing.T) {
	_, err := LoadFromTOML([]byte("name = "))
	assert.Error(t, err)
}

func TestSaveToTOMLRoundtrip(t *testing.T) {
	orig := Get("night")
	data, err := SaveToTOML(orig)
	require.NoError(t, err)

	back, err := LoadFromTOML(data)
	require.NoError(t, err, "%s", data)
	assert.Equal(t, orig, back)
}

// --- Styles ---

func TestSwatchWidth(t *testing.T) {
	assert.Empty(t, Swatch("#EBB343", 0))
	assert.Contains(t, Swatch("#EBB343", 4), "    ", "four cells")
}

func TestNewStylesRendersText(t *testing.T) {
	s := NewStyles(Get("bird"))
	assert.Contains(t, s.Heading.Render("Bird"), "Bird")
}
