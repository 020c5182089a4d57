package plot

import "strings"

// Rule maps a model-name fragment to a one-character plot marker.
type Rule struct {
	Match string
	Glyph string
}

// FallbackGlyph marks models no rule matches.
const FallbackGlyph = "?"

// DefaultRules are checked in order; more specific fragments come first.
var DefaultRules = []Rule{
	{Match: "opus", Glyph: "O"},
	{Match: "sonnet", Glyph: "S"},
	{Match: "haiku", Glyph: "H"},
	{Match: "claude", Glyph: "C"},
	{Match: "gpt", Glyph: "G"},
	{Match: "o3", Glyph: "3"},
	{Match: "o4", Glyph: "4"},
	{Match: "gemini", Glyph: "M"},
	{Match: "llama", Glyph: "L"},
	{Match: "mistral", Glyph: "W"},
}

// GlyphFor returns the glyph of the first rule whose fragment occurs in
// model, ignoring case.
func GlyphFor(model string, rules []Rule) string {
	name := strings.ToLower(model)
	for _, r := range rules {
		if strings.Contains(name, strings.ToLower(r.Match)) {
			return r.Glyph
		}
	}
	return FallbackGlyph
}
