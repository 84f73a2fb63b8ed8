// Package content loads the page copy and image references from a YAML
// catalog. The catalog is read-only to the rest of the program.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is the complete page content.
type Catalog struct {
	Brand      Brand      `yaml:"brand"`
	Nav        Nav        `yaml:"nav"`
	Hero       Hero       `yaml:"hero"`
	Value      Value      `yaml:"value"`
	Philosophy Philosophy `yaml:"philosophy"`
	Process    Process    `yaml:"process"`
	FAQ        FAQ        `yaml:"faq"`
	Footer     Footer     `yaml:"footer"`

	// BaseDir is the directory image paths are resolved against. Set by
	// Load; empty for the embedded catalog.
	BaseDir string `yaml:"-"`
}

// Brand names the fund.
type Brand struct {
	Name    string `yaml:"name" validate:"required"`
	Tagline string `yaml:"tagline"`
}

// Link is a labelled in-page anchor. An empty Href is an inert link.
type Link struct {
	Label string `yaml:"label" validate:"required"`
	Href  string `yaml:"href" validate:"omitempty,startswith=#"`
}

// Anchor returns Href without the leading '#'.
func (l Link) Anchor() string { return strings.TrimPrefix(l.Href, "#") }

// Image is a local image reference. Rows is the display height in
// terminal rows.
type Image struct {
	Src  string `yaml:"src"`
	Alt  string `yaml:"alt"`
	Rows int    `yaml:"rows" validate:"omitempty,min=1,max=60"`
}

// Nav is the header navigation.
type Nav struct {
	Links []Link `yaml:"links" validate:"dive"`
	CTA   Link   `yaml:"cta"`
}

// Stat is one hero statistic.
type Stat struct {
	Value string `yaml:"value" validate:"required"`
	Label string `yaml:"label" validate:"required"`
}

// Hero is the landing section.
type Hero struct {
	Anchor    string `yaml:"anchor"`
	Heading   string `yaml:"heading" validate:"required"`
	Accent    string `yaml:"accent"`
	Body      string `yaml:"body"`
	Primary   Link   `yaml:"primary"`
	Secondary Link   `yaml:"secondary"`
	Stats     []Stat `yaml:"stats" validate:"max=6,dive"`
	Image     Image  `yaml:"image"`
}

// Card is one value-proposition card.
type Card struct {
	Title string `yaml:"title" validate:"required"`
	Body  string `yaml:"body"`
	Span  int    `yaml:"span" validate:"min=1,max=3"`
	Side  bool   `yaml:"side"` // image beside the text instead of below
	Image Image  `yaml:"image"`
}

// Value is the value-proposition section.
type Value struct {
	Anchor  string `yaml:"anchor"`
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
	Cards   []Card `yaml:"cards" validate:"dive"`
}

// Philosophy is the centered statement between two decorative bars.
type Philosophy struct {
	Anchor  string `yaml:"anchor"`
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
	Yellow  string `yaml:"yellow" validate:"omitempty,hexcolor"`
	Red     string `yaml:"red" validate:"omitempty,hexcolor"`
}

// Step is one numbered process step.
type Step struct {
	Number string `yaml:"number" validate:"required,numeric"`
	Title  string `yaml:"title" validate:"required"`
	Body   string `yaml:"body"`
}

// ProcessCard groups steps with an image.
type ProcessCard struct {
	Span   int    `yaml:"span" validate:"min=1,max=3"`
	Kicker string `yaml:"kicker"`
	Side   bool   `yaml:"side"`
	Image  Image  `yaml:"image"`
	Steps  []Step `yaml:"steps" validate:"min=1,dive"`
}

// Process is the "how it works" section.
type Process struct {
	Anchor  string        `yaml:"anchor"`
	Heading string        `yaml:"heading"`
	Body    string        `yaml:"body"`
	Cards   []ProcessCard `yaml:"cards" validate:"dive"`
}

// QA is one FAQ entry.
type QA struct {
	Question string `yaml:"question" validate:"required"`
	Answer   string `yaml:"answer" validate:"required"`
}

// FAQ is the accordion section.
type FAQ struct {
	Anchor     string `yaml:"anchor"`
	Heading    string `yaml:"heading"`
	Body       string `yaml:"body"`
	Background Image  `yaml:"background"`
	Items      []QA   `yaml:"items" validate:"dive"`
}

// LinkColumn is one footer link list.
type LinkColumn struct {
	Title string `yaml:"title" validate:"required"`
	Links []Link `yaml:"links" validate:"dive"`
}

// Footer is the closing section.
type Footer struct {
	Anchor     string       `yaml:"anchor"`
	Blurb      string       `yaml:"blurb"`
	Background Image        `yaml:"background"`
	Columns    []LinkColumn `yaml:"columns" validate:"max=4,dive"`
	Copyright  string       `yaml:"copyright"`
}

// CopyrightLine returns the copyright text with {year} replaced.
func (f Footer) CopyrightLine(year int) string {
	return strings.ReplaceAll(f.Copyright, "{year}", strconv.Itoa(year))
}

// Anchors returns every section anchor defined by the catalog, in page
// order.
func (c *Catalog) Anchors() []string {
	var out []string
	for _, a := range []string{
		c.Hero.Anchor, c.Value.Anchor, c.Philosophy.Anchor,
		c.Process.Anchor, c.FAQ.Anchor, c.Footer.Anchor,
	} {
		if a != "" {
			out = append(out, a)
		}
	}
	return out
}

// ImagePath resolves an image source against BaseDir.
func (c *Catalog) ImagePath(img Image) string {
	if img.Src == "" || filepath.IsAbs(img.Src) || c.BaseDir == "" {
		return img.Src
	}
	return filepath.Join(c.BaseDir, img.Src)
}

// Images returns every image referenced by the catalog, deduplicated by
// resolved path, in page order.
func (c *Catalog) Images() []string {
	seen := map[string]bool{}
	var out []string
	add := func(img Image) {
		p := c.ImagePath(img)
		if p == "" || seen[p] {
			return
		}
		seen[p] = true
		out = append(out, p)
	}
	add(c.Hero.Image)
	for _, card := range c.Value.Cards {
		add(card.Image)
	}
	for _, card := range c.Process.Cards {
		add(card.Image)
	}
	add(c.FAQ.Background)
	add(c.Footer.Background)
	return out
}

var catalogValidate = validator.New()

// ErrUnknownAnchor is returned when a link points at an anchor no section
// defines.
var ErrUnknownAnchor = errors.New("unknown anchor")

// Validate checks struct constraints and that every link targets a
// section anchor.
func (c *Catalog) Validate() error {
	if err := catalogValidate.Struct(c); err != nil {
		return fmt.Errorf("content: validate: %w", err)
	}

	anchors := map[string]bool{}
	for _, a := range c.Anchors() {
		if anchors[a] {
			return fmt.Errorf("content: duplicate anchor %q", a)
		}
		anchors[a] = true
	}

	check := func(where string, l Link) error {
		if l.Href == "" || anchors[l.Anchor()] {
			return nil
		}
		return fmt.Errorf("content: %s %q: %w %q", where, l.Label, ErrUnknownAnchor, l.Href)
	}
	links := append([]Link{c.Nav.CTA, c.Hero.Primary, c.Hero.Secondary}, c.Nav.Links...)
	for _, l := range links {
		if err := check("link", l); err != nil {
			return err
		}
	}
	for _, col := range c.Footer.Columns {
		for _, l := range col.Links {
			if err := check("footer link", l); err != nil {
				return err
			}
		}
	}
	return nil
}

// Parse decodes and validates a YAML catalog. Unknown keys are errors.
func Parse(data []byte) (*Catalog, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a YAML catalog from r and validates it.
func Decode(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("content: empty catalog")
		}
		return nil, fmt.Errorf("content: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("content: embedded catalog: %v", err))
	}
	return c
}

// Load reads the catalog at path. An empty path returns Default.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("content: open: %w", err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.BaseDir = filepath.Dir(path)
	return c, nil
}
