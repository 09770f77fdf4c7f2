// Package emoji rewrites ":alias:" shorthands into their unicode symbols,
// e.g. ":fire:" into 🔥. Unknown aliases pass through untouched.
package emoji

import (
	"sort"
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"
)

// aliases maps shorthand names to the symbol they render as. The list covers
// the shorthands clients actually type; anything else stays literal text.
var aliases = map[string]string{
	"smile":      "😄",
	"grin":       "😁",
	"joy":        "😂",
	"laughing":   "😆",
	"wink":       "😉",
	"cry":        "😢",
	"sob":        "😭",
	"heart":      "❤️",
	"broken":     "💔",
	"thumbsup":   "👍",
	"thumbsdown": "👎",
	"clap":       "👏",
	"wave":       "👋",
	"pray":       "🙏",
	"muscle":     "💪",
	"eyes":       "👀",
	"thinking":   "🤔",
	"shrug":      "🤷",
	"fire":       "🔥",
	"tada":       "🎉",
	"sparkles":   "✨",
	"star":       "⭐",
	"rocket":     "🚀",
	"coffee":     "☕",
	"pizza":      "🍕",
	"100":        "💯",
}

// Replacer substitutes every known ":alias:" occurrence in one pass using
// an Aho-Corasick automaton over the raw runes.
type Replacer struct {
	matcher *goahocorasick.Machine
	symbols map[string]string
}

// NewReplacer builds the automaton from the alias table.
func NewReplacer() (*Replacer, error) {
	symbols := make(map[string]string, len(aliases))
	patterns := make([][]rune, 0, len(aliases))
	for name, symbol := range aliases {
		shorthand := ":" + name + ":"
		symbols[shorthand] = symbol
		patterns = append(patterns, []rune(shorthand))
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Replacer{matcher: m, symbols: symbols}, nil
}

// Emojify returns the input with every known shorthand replaced by its
// symbol. Overlapping matches resolve left-to-right.
func (r *Replacer) Emojify(input string) string {
	runes := []rune(input)
	spans := r.matcher.MultiPatternSearch(runes, false)
	if len(spans) == 0 {
		return input
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].Pos < spans[j].Pos })

	var b strings.Builder
	last := 0
	for _, span := range spans {
		start := span.Pos
		if start < last {
			continue
		}
		b.WriteString(string(runes[last:start]))
		b.WriteString(r.symbols[string(span.Word)])
		last = start + len(span.Word)
	}
	b.WriteString(string(runes[last:]))
	return b.String()
}
