// Package tailwind defines the build-theme configuration handed to the
// documentation site's CSS build: the semantic color palette, the
// content-scan globs, the dark-mode strategy, and the safelist patterns
// that keep dynamically assembled utility classes alive through the
// scanner's tree-shaking pass.
package tailwind

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/sigmaSd/deno-doc/internal/theme"
)

// Config is the top-level configuration value consumed by the CSS build.
type Config struct {
	Content  []string  `yaml:"content" json:"content"`
	DarkMode string    `yaml:"darkMode" json:"darkMode"`
	Safelist []Pattern `yaml:"safelist" json:"safelist"`
	Theme    Theme     `yaml:"theme" json:"theme"`
}

// Pattern is a safelist entry: a regular expression the class scanner
// matches against every candidate utility class name.
type Pattern struct {
	Pattern string `yaml:"pattern" json:"pattern"`
}

// Theme holds the theme extension block.
type Theme struct {
	Extend Extend `yaml:"extend" json:"extend"`
}

// Extend carries the colors added on top of the framework's defaults.
type Extend struct {
	Colors map[string]string `yaml:"colors" json:"colors"`
}

// Default content-scan globs: the site generator's Rust sources and its
// handlebars templates, which is where literal utility classes appear.
var defaultContent = []string{
	"./src/html/**/*.rs",
	"./src/html/templates/**/*.hbs",
}

// New returns the canonical configuration. Construction is pure: the
// color table comes from the theme package and the safelist is derived
// from its label set, never hand-listed.
func New() Config {
	colors := theme.Colors()
	return Config{
		Content:  append([]string(nil), defaultContent...),
		DarkMode: theme.DarkModeClass,
		Safelist: DeriveSafelist(colors),
		Theme:    Theme{Extend: Extend{Colors: colors}},
	}
}

// DeriveSafelist builds the two safelist patterns from a color table's
// label set: one matching text-<label> and one matching bg-<label>/15.
// Deriving at construction time keeps the safelist in lockstep with the
// table, so an added or renamed label can never drift out of coverage.
func DeriveSafelist(colors map[string]string) []Pattern {
	labels := theme.Labels(colors)
	quoted := make([]string, len(labels))
	for i, label := range labels {
		quoted[i] = regexp.QuoteMeta(label)
	}
	alternation := strings.Join(quoted, "|")

	return []Pattern{
		{Pattern: fmt.Sprintf("^text-(%s)$", alternation)},
		{Pattern: fmt.Sprintf("^bg-(%s)/15$", alternation)},
	}
}

// Validate checks the configuration the way the downstream build would:
// it reports every finding rather than stopping at the first.
func (c Config) Validate() error {
	var problems []error

	if len(c.Content) == 0 {
		problems = append(problems, errors.New("content: no scan globs configured"))
	}
	for i, glob := range c.Content {
		if strings.TrimSpace(glob) == "" {
			problems = append(problems, fmt.Errorf("content[%d]: empty glob", i))
		}
	}

	if c.DarkMode != theme.DarkModeClass && c.DarkMode != theme.DarkModeMedia {
		problems = append(problems, fmt.Errorf("darkMode: %q is not %q or %q", c.DarkMode, theme.DarkModeClass, theme.DarkModeMedia))
	}

	colors := c.Theme.Extend.Colors
	if len(colors) == 0 {
		problems = append(problems, errors.New("theme: color table is empty"))
	}
	for _, label := range theme.Labels(colors) {
		if !theme.ValidHex(colors[label]) {
			problems = append(problems, fmt.Errorf("theme: label %q has invalid color %q", label, colors[label]))
		}
	}

	problems = append(problems, c.validateSafelist()...)

	return errors.Join(problems...)
}

func (c Config) validateSafelist() []error {
	if len(c.Safelist) != 2 {
		return []error{fmt.Errorf("safelist: expected 2 derived patterns, found %d", len(c.Safelist))}
	}

	var problems []error
	compiled := make([]*regexp.Regexp, len(c.Safelist))
	for i, entry := range c.Safelist {
		re, err := regexp.Compile(entry.Pattern)
		if err != nil {
			problems = append(problems, fmt.Errorf("safelist[%d]: %w", i, err))
			continue
		}
		compiled[i] = re
	}
	if len(problems) > 0 {
		return problems
	}

	// Every label in the table must be covered by both patterns.
	for _, label := range theme.Labels(c.Theme.Extend.Colors) {
		if !compiled[0].MatchString("text-" + label) {
			problems = append(problems, fmt.Errorf("safelist: text-%s is not covered", label))
		}
		if !compiled[1].MatchString("bg-" + label + "/15") {
			problems = append(problems, fmt.Errorf("safelist: bg-%s/15 is not covered", label))
		}
	}
	return problems
}
