package domain

import (
	"encoding/json"
	"strings"
)

// Answer holds one collected response. Free-text and single-choice answers
// live in Value; multi-choice answers live in Values. List records which
// field is authoritative so an empty multi-selection stays distinguishable
// from an unanswered question.
type Answer struct {
	Value  string
	Values []string
	List   bool
}

// TextAnswer builds a free-text or single-choice answer.
func TextAnswer(v string) Answer {
	return Answer{Value: v}
}

// ListAnswer builds a multi-choice answer.
func ListAnswer(vs ...string) Answer {
	return Answer{Values: append([]string(nil), vs...), List: true}
}

// Empty reports whether the answer carries no selection.
func (a Answer) Empty() bool {
	if a.List {
		return len(a.Values) == 0
	}
	return a.Value == ""
}

// MarshalJSON emits a bare string for scalar answers and an array for lists,
// matching the wire shape the compiler input contract requires.
func (a Answer) MarshalJSON() ([]byte, error) {
	if a.List {
		if a.Values == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(a.Values)
	}
	return json.Marshal(a.Value)
}

// UnmarshalJSON accepts either a JSON string or an array of strings.
func (a *Answer) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Answer{Value: s}
		return nil
	}
	var vs []string
	if err := json.Unmarshal(data, &vs); err != nil {
		return err
	}
	*a = Answer{Values: vs, List: true}
	return nil
}

// AnswerSet maps question id to the collected answer. It is owned by the
// orchestrating layer; the recommendation engine and the compiler only read
// it. Absent keys mean "unanswered" and always resolve to fallbacks.
type AnswerSet map[int]Answer

// Has reports whether the question has a non-empty answer.
func (s AnswerSet) Has(id int) bool {
	a, ok := s[id]
	return ok && !a.Empty()
}

// Text returns the answer as a prose string. Lists are joined with " + ".
// Missing or empty answers resolve to fallback.
func (s AnswerSet) Text(id int, fallback string) string {
	a, ok := s[id]
	if !ok || a.Empty() {
		return fallback
	}
	if a.List {
		return strings.Join(a.Values, " + ")
	}
	return a.Value
}

// List returns the answer as an ordered list. Scalars are promoted to a
// one-element list; missing answers resolve to an empty list.
func (s AnswerSet) List(id int) []string {
	a, ok := s[id]
	if !ok || a.Empty() {
		return nil
	}
	if a.List {
		return append([]string(nil), a.Values...)
	}
	return []string{a.Value}
}

// Clone returns a deep copy of the answer set.
func (s AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(s))
	for id, a := range s {
		if a.List {
			a.Values = append([]string(nil), a.Values...)
		}
		out[id] = a
	}
	return out
}

// IsCustom reports whether the answer is a custom "other" value: a non-empty
// single-choice value that is not among the question's option ids, on a
// question that permits custom answers. Detection is structural, never a
// comparison against display strings.
func IsCustom(q Question, a Answer) bool {
	if !q.AllowCustom || q.Mode != ModeSingle {
		return false
	}
	if a.List || a.Value == "" {
		return false
	}
	return !q.HasOption(a.Value)
}
