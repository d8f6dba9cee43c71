package theme

import (
	"regexp"
	"sort"
)

// Shared accent colors. The "new" and "abstract" tags alias these so that
// adjusting an accent recolors every aliased entry at once.
const (
	Purple = "#7B61FF"
	Cyan   = "#0CAFC6"
)

// Dark mode strategies understood by the downstream CSS build.
const (
	DarkModeClass = "class"
	DarkModeMedia = "media"
)

// Colors returns the semantic color table for the documentation site:
// one entry per doc-node kind and per doc tag. The returned map is a
// fresh copy, so callers may overlay entries without touching the
// canonical table.
func Colors() map[string]string {
	return map[string]string{
		// Doc node kinds
		"Function":   "#056CF0",
		"Method":     "#056CF0",
		"Variable":   "#7E57C0",
		"Property":   "#7E57C0",
		"Class":      "#20B44B",
		"Enum":       "#22ABB0",
		"EnumMember": "#22ABB0",
		"Interface":  "#D2A064",
		"TypeAlias":  "#A4478C",
		"Namespace":  "#D25646",
		"ModuleDoc":  "#056CF0",

		// Doc tags
		"new":         Purple,
		"abstract":    Cyan,
		"deprecated":  "#DC2626",
		"writeonly":   "#D97706",
		"readonly":    "#059669",
		"protected":   "#2563EB",
		"private":     "#9CA3AF",
		"optional":    "#4F46E5",
		"unstable":    "#F59E0B",
		"permissions": "#10B981",
		"other":       "#6B7280",
	}
}

// Labels returns the label set of a color table in sorted order, so
// everything derived from it (safelist patterns, rendered output,
// preview rows) is deterministic.
func Labels(colors map[string]string) []string {
	labels := make([]string, 0, len(colors))
	for label := range colors {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

var hexPattern = regexp.MustCompile(`^#?(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidHex reports whether s is a 3- or 6-digit hex color with an
// optional leading '#'.
func ValidHex(s string) bool {
	return hexPattern.MatchString(s)
}
