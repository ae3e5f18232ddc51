package showcase

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"

	"orhub/internal/codeblock"
	"orhub/internal/render"
)

func TestLoad_EmbeddedCatalog(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	ids := []string{"algorithms", "dataStructures", "terminal"}
	if len(c.Categories) != len(ids) {
		t.Fatalf("unexpected categories: %+v", c.Categories)
	}
	for i, id := range ids {
		if c.Categories[i].ID != id {
			t.Fatalf("category %d: got %q want %q", i, c.Categories[i].ID, id)
		}
	}
	term, ok := c.Category("terminal")
	if !ok || !term.CommandLine || len(term.Samples) != 3 {
		t.Fatalf("unexpected terminal category: %+v", term)
	}
	if _, ok := c.Component("code-block"); !ok {
		t.Fatalf("code-block component missing")
	}
}

func TestSample_TerminalOptionsClassify(t *testing.T) {
	c, _ := Load()
	cat, _ := c.Category("terminal")
	s, ok := c.Sample("terminal", "git")
	if !ok {
		t.Fatalf("git sample missing")
	}
	sess := render.NewSession(s.Options(cat), nil)
	if sess.Mode() != codeblock.ModeCommandLine {
		t.Fatalf("terminal sample should render as transcript")
	}
	want := "git init\ngit add .\ngit commit -m \"Initial commit\"\ngit branch -M main\n" +
		"git remote add origin https://github.com/user/repo.git\ngit push -u origin main"
	if got := sess.CopyText(); got != want {
		t.Fatalf("unexpected copy text:\n%s", got)
	}
}

func TestSample_CodeOptions(t *testing.T) {
	c, _ := Load()
	cat, _ := c.Category("algorithms")
	s, _ := c.Sample("algorithms", "python")
	o := s.Options(cat)
	if o.IsCommandLine || o.Language != codeblock.Python {
		t.Fatalf("unexpected options: %+v", o)
	}
	if strings.HasSuffix(o.Code, "\n") {
		t.Fatalf("sample code should not carry a trailing newline")
	}
}

func TestFindSample(t *testing.T) {
	c, _ := Load()
	cases := map[string]string{
		"terminal/docker":           "terminal/docker",
		"docker":                    "terminal/docker",
		"dataStructures/javascript": "dataStructures/javascript",
	}
	for q, want := range cases {
		ref, ok := c.FindSample(q)
		if !ok || ref.String() != want {
			t.Fatalf("%q: got %v %v want %s", q, ref, ok, want)
		}
	}
	if _, ok := c.FindSample("zzzzqqq"); ok {
		t.Fatalf("nonsense query should not match")
	}
}

func TestParse_RejectsEmptyCategory(t *testing.T) {
	_, err := Parse([]byte("categories:\n  - id: x\n    label: X\n"))
	if err == nil {
		t.Fatalf("expected error for empty category")
	}
}

func TestComponent_InstallOptionsIsCommand(t *testing.T) {
	c, _ := Load()
	comp, _ := c.Component("split-text")
	s := render.NewSession(comp.InstallOptions(), nil)
	if got := s.CopyText(); got != "npm install @open-react-hub/split-text @react-spring/web" {
		t.Fatalf("unexpected install copy text %q", got)
	}
}

func TestComponent_Markdown(t *testing.T) {
	c, _ := Load()
	comp, _ := c.Component("code-block")
	md := comp.Markdown()
	for _, want := range []string{"# Code Block Component", "## Installation", "```jsx", "`code`* (string)", "## Props"} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestRenderDoc(t *testing.T) {
	c, _ := Load()
	comp, _ := c.Component("split-text")
	out, err := RenderDoc(comp, codeblock.ThemeDark, 80, nil)
	if err != nil {
		t.Fatalf("RenderDoc error: %v", err)
	}
	plain := xansi.Strip(out)
	for _, want := range []string{"Split Text Component", "npm install", "SplitText", "delay"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("doc missing %q:\n%s", want, plain)
		}
	}
}
