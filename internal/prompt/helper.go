// Package prompt reads a commit message from the terminal.
//
// The line editor offers keyword completion on Tab
// and a dimmed hint naming the conventional commit type being typed.
package prompt

import "strings"

// Keywords are offered as completions, in this order.
var Keywords = []string{
	"fn", "let", "mut", "struct", "enum", "impl", "for", "loop", "match",
}

// ChangeTypes are the conventional commit types offered as hints.
// When several match, the earliest one wins.
var ChangeTypes = []string{
	"feat", "fix", "docs", "style", "refactor", "perf", "test", "chore",
}

// HintSeparator follows the change type in a hint.
const HintSeparator = ": "

// Candidate is one completion offered to the user.
type Candidate struct {
	Display     string
	Replacement string
}

// Helper decides what the line editor offers for the current line.
type Helper interface {
	// Complete returns the candidates for line with the cursor at pos,
	// and the rune offset in line where the replacement starts.
	Complete(line string, pos int) (start int, candidates []Candidate)

	// Hint returns the text shown after the line, or "" for none.
	Hint(line string, pos int) string
}

// KeywordHelper matches the whole line against Keywords and ChangeTypes.
// The cursor position is ignored.
type KeywordHelper struct{}

var _ Helper = KeywordHelper{}

// Complete returns every keyword that starts with line.
// The replacement always covers the line from its start.
func (KeywordHelper) Complete(line string, _ int) (int, []Candidate) {
	var candidates []Candidate
	for _, keyword := range Keywords {
		if strings.HasPrefix(keyword, line) {
			candidates = append(candidates, Candidate{
				Display:     keyword,
				Replacement: keyword,
			})
		}
	}
	return 0, candidates
}

// Hint returns the rest of the first change type that starts with line,
// followed by HintSeparator.
func (KeywordHelper) Hint(line string, _ int) string {
	if line == "" {
		return ""
	}
	for _, changeType := range ChangeTypes {
		if rest, ok := strings.CutPrefix(changeType, line); ok {
			return rest + HintSeparator
		}
	}
	return ""
}
