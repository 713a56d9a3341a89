// Package domain defines the core types for the teamforge bundle compiler.
package domain

import "sort"

// QuestionMode is the input mode of a question.
type QuestionMode string

const (
	ModeSingle QuestionMode = "single"
	ModeMulti  QuestionMode = "multiple"
	ModeText   QuestionMode = "text"
)

// Option is one selectable choice on a question. The ID is the stable
// machine-readable key answers are stored under; Label is display text.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Desc  string `json:"desc,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// Question is a single questionnaire step. Questions are immutable data
// defined at process start; ids are dense 0..N-1 and equal slice position.
type Question struct {
	ID          int          `json:"id"`
	Block       string       `json:"block"`
	Title       string       `json:"title"`
	Subtitle    string       `json:"subtitle,omitempty"`
	Mode        QuestionMode `json:"mode"`
	Options     []Option     `json:"options"`
	AllowCustom bool         `json:"allow_custom,omitempty"`
}

// OptionByID returns the option with the given id.
func (q Question) OptionByID(id string) (Option, bool) {
	for _, opt := range q.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// HasOption reports whether id is one of the question's option ids.
func (q Question) HasOption(id string) bool {
	_, ok := q.OptionByID(id)
	return ok
}

// Label resolves an option id to its display label. Unknown ids are returned
// verbatim: they are custom free-text answers, not errors.
func (q Question) Label(id string) string {
	if opt, ok := q.OptionByID(id); ok {
		return opt.Label
	}
	return id
}

// Recommendation is a suggested answer for one question. IDs holds a single
// element for single-choice questions and a bundle for multi-choice ones.
// Only the text fields vary by language, never the ids.
type Recommendation struct {
	IDs      []string `json:"ids"`
	Reason   string   `json:"reason"`
	Why      []string `json:"why,omitempty"`
	Benefits []string `json:"benefits,omitempty"`
	Context  string   `json:"context,omitempty"`
}

// FileSet maps a relative output path (forward slashes) to file content.
// It is created once per compilation and immutable thereafter.
type FileSet map[string]string

// Paths returns the output paths in sorted order.
func (f FileSet) Paths() []string {
	paths := make([]string, 0, len(f))
	for p := range f {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
