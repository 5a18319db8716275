package markdown

import (
	"strings"
	"testing"

	"github.com/abhisek/aula/internal/ui/theme"
)

func TestRenderKeepsText(t *testing.T) {
	r := New()
	out := r.Render("Go is **simple**.\n\n- one\n- two", 60)
	for _, want := range []string{"simple", "one", "two"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "**") {
		t.Errorf("bold markers should be rendered, got:\n%s", out)
	}
}

func TestRenderEmpty(t *testing.T) {
	if out := New().Render("   \n", 60); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestRenderMemoizes(t *testing.T) {
	r := New()
	a := r.Render("# Title", 60)
	b := r.Render("# Title", 60)
	if a != b {
		t.Error("expected identical output for identical input")
	}
	if r.Len() != 1 {
		t.Errorf("cache len = %d, want 1", r.Len())
	}

	r.Render("# Title", 40)
	if r.Len() != 2 {
		t.Errorf("cache len = %d, want 2 after a new width", r.Len())
	}
}

func TestRenderFollowsTheme(t *testing.T) {
	t.Cleanup(func() { theme.Apply(theme.Dark) })

	r := New()
	r.Render("text", 60)
	theme.Apply(theme.Light)
	r.Render("text", 60)
	if r.Len() != 2 {
		t.Errorf("cache len = %d, want one entry per theme", r.Len())
	}
}

func TestStyleFor(t *testing.T) {
	if StyleFor(theme.Light) != "light" || StyleFor(theme.Dark) != "dark" {
		t.Error("unexpected glamour style mapping")
	}
}
