package heuristic

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/AnmolTwari/Ai-Debate-Analyzer/debate"
)

//nolint:gochecknoglobals // lookup table
var misspellings = map[string]string{
	"teh":        "the",
	"dont":       "don't",
	"doesnt":     "doesn't",
	"cant":       "can't",
	"wont":       "won't",
	"isnt":       "isn't",
	"im":         "I'm",
	"ive":        "I've",
	"thier":      "their",
	"recieve":    "receive",
	"beleive":    "believe",
	"definately": "definitely",
	"wich":       "which",
	"becuase":    "because",
	"arguement":  "argument",
	"untill":     "until",
	"alot":       "a lot",
}

// Grammar applies a handful of surface corrections: known misspellings, a lone "i",
// immediately repeated words, sentence-initial capitals and a terminal full stop.
// The error count is TokenDivergence between the input and the correction.
type Grammar struct{}

func (Grammar) Check(_ context.Context, text string) (debate.Grammar, error) {
	corrected := Correct(text)
	return debate.Grammar{
		ErrorCount:    TokenDivergence(text, corrected),
		CorrectedText: corrected,
	}, nil
}

// Correct returns text with the heuristic fixes applied.
func Correct(text string) string {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return ""
	}

	out := make([]string, 0, len(tokens))
	for i, tok := range tokens {
		core, trail := splitTrailingPunct(tok)
		lower := strings.ToLower(core)
		if fix, ok := misspellings[lower]; ok {
			core = fix
		} else if core == "i" {
			core = "I"
		}
		if i > 0 && trail == "" && len(out) > 0 && strings.EqualFold(out[len(out)-1], core) {
			continue
		}
		out = append(out, core+trail)
	}

	capNext := true
	for i, tok := range out {
		if capNext {
			out[i] = capitalize(tok)
		}
		capNext = strings.HasSuffix(tok, ".") || strings.HasSuffix(tok, "!") || strings.HasSuffix(tok, "?")
	}

	last := out[len(out)-1]
	if r, _ := utf8.DecodeLastRuneInString(last); !strings.ContainsRune(".!?", r) {
		out[len(out)-1] = last + "."
	}
	return strings.Join(out, " ")
}

// TokenDivergence counts aligned whitespace tokens that differ plus the difference in token count.
func TokenDivergence(original, corrected string) int {
	a, b := strings.Fields(original), strings.Fields(corrected)
	n := min(len(a), len(b))
	diff := 0
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			diff++
		}
	}
	if len(a) > len(b) {
		diff += len(a) - len(b)
	} else {
		diff += len(b) - len(a)
	}
	return diff
}

func splitTrailingPunct(tok string) (string, string) {
	end := len(tok)
	for end > 0 {
		r, size := utf8.DecodeLastRuneInString(tok[:end])
		if !unicode.IsPunct(r) || r == '\'' {
			break
		}
		end -= size
	}
	if end == 0 {
		return tok, ""
	}
	return tok[:end], tok[end:]
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
