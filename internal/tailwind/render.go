package tailwind

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/sigmaSd/deno-doc/internal/theme"
)

const configTemplate = `/** @type {import('tailwindcss').Config} */
export default {
  content: [{{range $i, $g := .Content}}{{if $i}}, {{end}}{{str $g}}{{end}}],
  darkMode: {{str .DarkMode}},
  safelist: [
{{- range .Safelist}}
    { pattern: {{pattern .Pattern}} },
{{- end}}
  ],
  theme: {
    extend: {
      colors: {
{{- range .Labels}}
        {{str .}}: {{str (index $.Colors .)}},
{{- end}}
      },
    },
  },
};
`

var configTmpl = template.Must(template.New("tailwind.config.js").Funcs(template.FuncMap{
	"str":     strconv.Quote,
	"pattern": jsRegexLiteral,
}).Parse(configTemplate))

// jsRegexLiteral wraps a Go regexp source in a JavaScript regex literal,
// escaping the slashes that would otherwise terminate it.
func jsRegexLiteral(pattern string) string {
	return "/" + strings.ReplaceAll(pattern, "/", `\/`) + "/"
}

type renderView struct {
	Content  []string
	DarkMode string
	Safelist []Pattern
	Labels   []string
	Colors   map[string]string
}

// Render writes cfg as a tailwind.config.js source file. Output is
// byte-stable: color keys are emitted in sorted order.
func Render(w io.Writer, cfg Config) error {
	view := renderView{
		Content:  cfg.Content,
		DarkMode: cfg.DarkMode,
		Safelist: cfg.Safelist,
		Labels:   theme.Labels(cfg.Theme.Extend.Colors),
		Colors:   cfg.Theme.Extend.Colors,
	}
	if err := configTmpl.Execute(w, view); err != nil {
		return fmt.Errorf("rendering config: %w", err)
	}
	return nil
}

// RenderString is Render into a string.
func RenderString(cfg Config) (string, error) {
	var b strings.Builder
	if err := Render(&b, cfg); err != nil {
		return "", err
	}
	return b.String(), nil
}
