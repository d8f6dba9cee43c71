// Package config layers optional theme overrides on top of the
// canonical build-theme configuration.
//
// # Configuration Layers
//
// Configuration is assembled in the following order, with later sources
// overriding earlier ones:
//
//  1. Canonical Configuration (embedded in binary)
//     - The shipped palette, scan globs, and dark-mode strategy
//     - Ensures the tool works out-of-the-box
//
//  2. User Overlay (~/.config/ddoc-theme/theme.yaml)
//     - User-specific overrides that apply to all checkouts
//
//  3. Project Overlay (./.ddoc-theme/theme.yaml)
//     - Checkout-local overrides, shareable via version control
//
// # Overlay Structure
//
// Overlay files use YAML with the following sections, all optional:
//
//	colors:
//	  Function: "#0550AE"   # recolor an existing label
//	  experimental: "#123456" # or add a new one
//	content:
//	  - "./src/html/**/*.rs"
//	darkMode: "media"
//
// After merging, the safelist patterns are re-derived from the merged
// color table, so labels added by an overlay automatically receive
// text-* and bg-*/15 coverage. Overlays never edit the safelist
// directly.
package config
