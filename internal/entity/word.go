package entity

import "strings"

// clozeBlank replaces the target term when rendering fill-in-the-blank prompts.
const clozeBlank = "____"

// Word is one vocabulary entry as supplied by the vocabulary source. The
// target-language Term doubles as the entry's identifying key; the remaining
// fields are display material the trainer shows alongside the blank.
type Word struct {
	Term        string              `json:"term"`
	Definition  string              `json:"definition,omitempty"`
	Example     string              `json:"example,omitempty"`
	Translation string              `json:"translation,omitempty"`
	Hints       map[Language]string `json:"hints,omitempty"`
}

// Key returns the identifying key of the entry: the target-language term.
func (w Word) Key() string {
	return w.Term
}

// Hint returns the auxiliary-language hint for lang, or the empty string.
func (w Word) Hint(lang Language) string {
	return w.Hints[lang]
}

// Cloze renders the example sentence with every occurrence of the term
// blanked out, case-insensitively. When the term does not occur in the
// example the sentence is returned untouched.
func (w Word) Cloze() string {
	if w.Example == "" || w.Term == "" {
		return w.Example
	}
	example := w.Example
	lower := strings.ToLower(example)
	term := strings.ToLower(w.Term)

	var b strings.Builder
	for {
		i := strings.Index(lower, term)
		if i < 0 {
			b.WriteString(example)
			return b.String()
		}
		b.WriteString(example[:i])
		b.WriteString(clozeBlank)
		example = example[i+len(term):]
		lower = lower[i+len(term):]
	}
}
