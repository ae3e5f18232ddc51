package highlight

import (
	"errors"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"orhub/internal/codeblock"
)

// Span is a run of text sharing one token type.
type Span struct {
	Text string
	Type chroma.TokenType
}

// Highlighter tokenizes text for a single grammar.
type Highlighter interface {
	Highlight(text string) ([]Span, error)
}

// ErrNoLexer is returned when a grammar cannot be resolved.
var ErrNoLexer = errors.New("no lexer for language")

// lexerAliases maps the supported tags to chroma lexer names.
var lexerAliases = map[codeblock.Language][]string{
	codeblock.TypeScript:   {"typescript", "ts"},
	codeblock.JavaScript:   {"javascript", "js"},
	codeblock.JSX:          {"react", "jsx"},
	codeblock.TSX:          {"tsx", "typescript"},
	codeblock.CSS:          {"css"},
	codeblock.Python:       {"python", "py"},
	codeblock.Java:         {"java"},
	codeblock.JSON:         {"json"},
	codeblock.Bash:         {"bash", "sh"},
	codeblock.Markdown:     {"markdown", "md"},
	codeblock.ShellSession: {"shell-session", "console", "bash-session"},
}

// Registry resolves a Highlighter per language tag and caches lexers.
// It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	cache map[codeblock.Language]Highlighter
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{cache: make(map[codeblock.Language]Highlighter)}
}

// For returns the highlighter for lang. Tags outside the supported set,
// or whose grammar chroma cannot provide, get Passthrough.
func (r *Registry) For(lang codeblock.Language) Highlighter {
	r.mu.RLock()
	h, ok := r.cache[lang]
	r.mu.RUnlock()
	if ok {
		return h
	}
	h = Passthrough{}
	if lang.Supported() {
		if lx := resolveLexer(lang); lx != nil {
			h = lexerHighlighter{lexer: lx}
		}
	}
	r.mu.Lock()
	r.cache[lang] = h
	r.mu.Unlock()
	return h
}

// Highlight tokenizes text with the grammar for lang. On failure the text
// comes back as a single plain span together with the error.
func (r *Registry) Highlight(lang codeblock.Language, text string) ([]Span, error) {
	spans, err := r.For(lang).Highlight(text)
	if err != nil {
		return plain(text), err
	}
	return spans, nil
}

func resolveLexer(lang codeblock.Language) chroma.Lexer {
	for _, name := range lexerAliases[lang] {
		if lx := lexers.Get(name); lx != nil {
			return chroma.Coalesce(lx)
		}
	}
	if lx := lexers.Match("file." + string(lang)); lx != nil {
		return chroma.Coalesce(lx)
	}
	return nil
}

type lexerHighlighter struct {
	lexer chroma.Lexer
}

func (h lexerHighlighter) Highlight(text string) ([]Span, error) {
	if h.lexer == nil {
		return plain(text), ErrNoLexer
	}
	it, err := h.lexer.Tokenise(nil, text)
	if err != nil {
		return plain(text), err
	}
	var spans []Span
	for _, tok := range it.Tokens() {
		if tok.Value == "" {
			continue
		}
		spans = append(spans, Span{Text: tok.Value, Type: tok.Type})
	}
	return trimAddedNewline(spans, text), nil
}

// trimAddedNewline drops the trailing newline some lexers append, so the
// spans always concatenate back to the input.
func trimAddedNewline(spans []Span, text string) []Span {
	if len(spans) == 0 || strings.HasSuffix(text, "\n") {
		return spans
	}
	last := &spans[len(spans)-1]
	if !strings.HasSuffix(last.Text, "\n") {
		return spans
	}
	last.Text = strings.TrimSuffix(last.Text, "\n")
	if last.Text == "" {
		spans = spans[:len(spans)-1]
	}
	return spans
}

// Passthrough leaves text unhighlighted.
type Passthrough struct{}

func (Passthrough) Highlight(text string) ([]Span, error) { return plain(text), nil }

func plain(text string) []Span {
	if text == "" {
		return nil
	}
	return []Span{{Text: text, Type: chroma.Text}}
}

// SplitLines regroups spans by line. Spans crossing a newline are cut, and
// the result always has strings.Count(text, "\n")+1 entries.
func SplitLines(spans []Span) [][]Span {
	out := [][]Span{nil}
	for _, sp := range spans {
		parts := strings.Split(sp.Text, "\n")
		for i, p := range parts {
			if i > 0 {
				out = append(out, nil)
			}
			if p != "" {
				out[len(out)-1] = append(out[len(out)-1], Span{Text: p, Type: sp.Type})
			}
		}
	}
	return out
}

// Join concatenates span texts.
func Join(spans []Span) string {
	var b strings.Builder
	for _, sp := range spans {
		b.WriteString(sp.Text)
	}
	return b.String()
}
