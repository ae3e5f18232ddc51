package showcase

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"
	"gopkg.in/yaml.v3"

	"orhub/internal/codeblock"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Sample is one preview snippet.
type Sample struct {
	Name     string `yaml:"name" json:"name"`
	Label    string `yaml:"label" json:"label"`
	Language string `yaml:"language,omitempty" json:"language,omitempty"`
	Code     string `yaml:"code" json:"code"`
}

// Category groups samples; CommandLine categories render as transcripts.
type Category struct {
	ID          string   `yaml:"id" json:"id"`
	Label       string   `yaml:"label" json:"label"`
	CommandLine bool     `yaml:"commandLine,omitempty" json:"commandLine,omitempty"`
	Samples     []Sample `yaml:"samples" json:"samples"`
}

// Prop documents one component property.
type Prop struct {
	Name        string `yaml:"name" json:"name"`
	Type        string `yaml:"type" json:"type"`
	Description string `yaml:"description" json:"description"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Default     string `yaml:"default,omitempty" json:"default,omitempty"`
}

// Component is a documented library component.
type Component struct {
	Slug           string `yaml:"slug" json:"slug"`
	Title          string `yaml:"title" json:"title"`
	Description    string `yaml:"description" json:"description"`
	InstallCommand string `yaml:"installCommand" json:"installCommand"`
	UsageLanguage  string `yaml:"usageLanguage" json:"usageLanguage"`
	UsageCode      string `yaml:"usageCode" json:"usageCode"`
	Props          []Prop `yaml:"props" json:"props"`
}

// Catalog is the full showcase content.
type Catalog struct {
	Categories []Category  `yaml:"categories" json:"categories"`
	Components []Component `yaml:"components" json:"components"`
}

var loadOnce = sync.OnceValues(func() (*Catalog, error) {
	return Parse(catalogYAML)
})

// Load returns the embedded catalog, parsed once.
func Load() (*Catalog, error) { return loadOnce() }

// Parse decodes a catalog document and checks it is usable.
func Parse(b []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	for _, cat := range c.Categories {
		if len(cat.Samples) == 0 {
			return nil, fmt.Errorf("category %q has no samples", cat.ID)
		}
	}
	return &c, nil
}

// Category looks up a category by ID.
func (c *Catalog) Category(id string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// Sample looks up a sample by category and name.
func (c *Catalog) Sample(category, name string) (Sample, bool) {
	cat, ok := c.Category(category)
	if !ok {
		return Sample{}, false
	}
	for _, s := range cat.Samples {
		if s.Name == name {
			return s, true
		}
	}
	return Sample{}, false
}

// Component looks up a component by slug.
func (c *Catalog) Component(slug string) (Component, bool) {
	for _, comp := range c.Components {
		if comp.Slug == slug {
			return comp, true
		}
	}
	return Component{}, false
}

// Ref names a sample as "category/name".
type Ref struct {
	Category string
	Name     string
}

func (r Ref) String() string { return r.Category + "/" + r.Name }

// Refs lists every sample reference in catalog order.
func (c *Catalog) Refs() []Ref {
	var refs []Ref
	for _, cat := range c.Categories {
		for _, s := range cat.Samples {
			refs = append(refs, Ref{Category: cat.ID, Name: s.Name})
		}
	}
	return refs
}

// FindSample resolves a loose query ("git", "terminal/git", "algo/py")
// to the best matching sample reference.
func (c *Catalog) FindSample(query string) (Ref, bool) {
	query = strings.TrimSpace(query)
	refs := c.Refs()
	if len(refs) == 0 || query == "" {
		return Ref{}, false
	}
	for _, r := range refs {
		if r.String() == query {
			return r, true
		}
	}
	names := make([]string, len(refs))
	for i, r := range refs {
		names[i] = r.String()
	}
	matches := fuzzy.Find(query, names)
	if len(matches) == 0 {
		return Ref{}, false
	}
	return refs[matches[0].Index], true
}

// Options builds code block options for a sample of category cat.
// Transcript samples use the stock user@localhost:~ identity.
func (s Sample) Options(cat Category) codeblock.Options {
	o := codeblock.Options{Code: s.Code, Language: codeblock.ParseLanguage(s.Language)}
	if cat.CommandLine {
		o.IsCommandLine = true
		o.CommandLine = codeblock.CommandLineOverrides{
			User: codeblock.String("user"),
			Host: codeblock.String("localhost"),
			Path: codeblock.String("~"),
		}
	}
	return o
}
