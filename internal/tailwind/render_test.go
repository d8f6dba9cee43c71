package tailwind

import (
	"bytes"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderByteStable(t *testing.T) {
	first, err := RenderString(New())
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		next, err := RenderString(New())
		require.NoError(t, err)
		assert.Equal(t, first, next)
	}
}

func TestRenderShape(t *testing.T) {
	out, err := RenderString(New())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "/** @type {import('tailwindcss').Config} */\n"))
	assert.Contains(t, out, `content: ["./src/html/**/*.rs", "./src/html/templates/**/*.hbs"],`)
	assert.Contains(t, out, `darkMode: "class",`)
	assert.Contains(t, out, `"Function": "#056CF0",`)

	// The /15 in the bg pattern has to be escaped inside a JS regex literal.
	assert.Contains(t, out, `\/15$/`)
	assert.Contains(t, out, "{ pattern: /^text-(")
}

func TestRenderColorsSorted(t *testing.T) {
	out, err := RenderString(New())
	require.NoError(t, err)

	var keys []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, `"`) && strings.Contains(line, `": "`) {
			keys = append(keys, line[1:strings.Index(line, `": "`)])
		}
	}
	require.NotEmpty(t, keys)
	assert.True(t, sort.StringsAreSorted(keys), "color keys should render in sorted order: %v", keys)
}

func TestRenderWriterErrorsPropagate(t *testing.T) {
	w := &failingWriter{}
	err := Render(w, New())
	assert.ErrorContains(t, err, "rendering config")
}

type failingWriter struct{}

func (*failingWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}

func TestRenderRoundTripsColorTable(t *testing.T) {
	cfg := New()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, cfg))

	out := buf.String()
	for label, value := range cfg.Theme.Extend.Colors {
		assert.Contains(t, out, `"`+label+`": "`+value+`"`)
	}
}
