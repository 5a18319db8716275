// Package markdown renders course Markdown for the terminal with glamour.
// Renderers are built per (style, width) and outputs are memoized, since
// the course screen re-renders whole lessons on every navigation step.
package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	"github.com/abhisek/aula/internal/ui/theme"
)

// maxCacheEntries bounds the memo; it is cleared wholesale when full.
const maxCacheEntries = 512

type rendererKey struct {
	style string
	width int
}

type cacheKey struct {
	rendererKey
	src string
}

// Renderer converts Markdown to styled terminal text. It is not safe for
// concurrent use; screens own one each.
type Renderer struct {
	renderers map[rendererKey]*glamour.TermRenderer
	cache     map[cacheKey]string
}

// New returns an empty Renderer.
func New() *Renderer {
	return &Renderer{
		renderers: make(map[rendererKey]*glamour.TermRenderer),
		cache:     make(map[cacheKey]string),
	}
}

// StyleFor maps a UI theme to a glamour standard style.
func StyleFor(m theme.Mode) string {
	if m == theme.Light {
		return styles.LightStyle
	}
	return styles.DarkStyle
}

// Render renders src wrapped at width using the active theme. On a
// renderer error the source is returned unchanged.
func (r *Renderer) Render(src string, width int) string {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}
	rk := rendererKey{style: StyleFor(theme.Current()), width: width}
	ck := cacheKey{rendererKey: rk, src: src}
	if out, ok := r.cache[ck]; ok {
		return out
	}

	tr, ok := r.renderers[rk]
	if !ok {
		var err error
		tr, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(rk.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return src
		}
		r.renderers[rk] = tr
	}

	out, err := tr.Render(src)
	if err != nil {
		return src
	}
	out = strings.Trim(out, "\n")

	if len(r.cache) >= maxCacheEntries {
		clear(r.cache)
	}
	r.cache[ck] = out
	return out
}

// Len reports the number of memoized outputs.
func (r *Renderer) Len() int {
	return len(r.cache)
}
