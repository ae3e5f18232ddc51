package codeblock

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Language is a highlighting grammar tag. The supported set is closed, but
// any tag can be carried; unknown tags render as plain text.
type Language string

const (
	TypeScript   Language = "typescript"
	JavaScript   Language = "javascript"
	JSX          Language = "jsx"
	TSX          Language = "tsx"
	CSS          Language = "css"
	Python       Language = "python"
	Java         Language = "java"
	JSON         Language = "json"
	Bash         Language = "bash"
	Markdown     Language = "markdown"
	ShellSession Language = "shell-session"
)

// DefaultLanguage is used when no language is given.
const DefaultLanguage = TypeScript

// SupportedLanguages lists the closed tag set in display order.
var SupportedLanguages = []Language{
	TypeScript, JavaScript, JSX, TSX, CSS, Python, Java, JSON, Bash, Markdown, ShellSession,
}

// ParseLanguage normalizes a tag. Empty input yields DefaultLanguage;
// unknown tags are returned as-is (lowercased) rather than rejected.
func ParseLanguage(s string) Language {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultLanguage
	}
	return Language(s)
}

// Supported reports whether l is one of SupportedLanguages.
func (l Language) Supported() bool {
	for _, s := range SupportedLanguages {
		if s == l {
			return true
		}
	}
	return false
}

// Label is the header text for l: first letter upper-cased.
func (l Language) Label() string {
	s := string(l)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (l Language) String() string { return string(l) }

// SuggestLanguage returns the closest supported tag for a mistyped one.
func SuggestLanguage(tag string) (Language, bool) {
	names := make([]string, len(SupportedLanguages))
	for i, l := range SupportedLanguages {
		names[i] = string(l)
	}
	matches := fuzzy.Find(strings.ToLower(tag), names)
	if len(matches) == 0 {
		return "", false
	}
	return SupportedLanguages[matches[0].Index], true
}
