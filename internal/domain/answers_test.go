package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestAnswer_JSONShapes(t *testing.T) {
	scalar, err := json.Marshal(TextAnswer("saas"))
	if err != nil {
		t.Fatalf("marshal scalar: %v", err)
	}
	if string(scalar) != `"saas"` {
		t.Errorf("scalar = %s, want %q", scalar, `"saas"`)
	}

	list, err := json.Marshal(ListAnswer("react", "nodejs"))
	if err != nil {
		t.Fatalf("marshal list: %v", err)
	}
	if string(list) != `["react","nodejs"]` {
		t.Errorf("list = %s, want %s", list, `["react","nodejs"]`)
	}

	var a Answer
	if err := json.Unmarshal([]byte(`["a","b"]`), &a); err != nil {
		t.Fatalf("unmarshal array: %v", err)
	}
	if !a.List || len(a.Values) != 2 {
		t.Errorf("unmarshal array = %+v, want list of 2", a)
	}

	if err := json.Unmarshal([]byte(`"text"`), &a); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if a.List || a.Value != "text" {
		t.Errorf("unmarshal string = %+v, want scalar %q", a, "text")
	}
}

func TestAnswerSet_Text(t *testing.T) {
	s := AnswerSet{
		0: TextAnswer("build a bot"),
		3: ListAnswer("react", "nodejs"),
	}

	if got := s.Text(0, "fallback"); got != "build a bot" {
		t.Errorf("Text(0) = %q", got)
	}
	if got := s.Text(3, "fallback"); got != "react + nodejs" {
		t.Errorf("Text(3) = %q, want joined list", got)
	}
	if got := s.Text(9, "manual"); got != "manual" {
		t.Errorf("Text(9) = %q, want fallback", got)
	}
	if got := s.Text(0, ""); got != "build a bot" {
		t.Errorf("Text with empty fallback = %q", got)
	}
}

func TestAnswerSet_List(t *testing.T) {
	s := AnswerSet{
		1: TextAnswer("saas"),
		3: ListAnswer("react"),
	}

	if got := s.List(1); !reflect.DeepEqual(got, []string{"saas"}) {
		t.Errorf("List(1) = %v, want scalar promoted", got)
	}
	if got := s.List(7); got != nil {
		t.Errorf("List(7) = %v, want nil for unanswered", got)
	}

	// The returned slice must be a copy.
	got := s.List(3)
	got[0] = "mutated"
	if s[3].Values[0] != "react" {
		t.Error("List returned the backing slice, not a copy")
	}
}

func TestAnswerSet_Clone(t *testing.T) {
	s := AnswerSet{3: ListAnswer("react", "nodejs")}
	c := s.Clone()

	c[3].Values[0] = "mutated"
	c[5] = TextAnswer("extra")

	if s[3].Values[0] != "react" {
		t.Error("Clone shares list storage with the original")
	}
	if _, ok := s[5]; ok {
		t.Error("Clone shares map storage with the original")
	}
}

func TestIsCustom(t *testing.T) {
	q := Question{
		ID:          1,
		Mode:        ModeSingle,
		AllowCustom: true,
		Options:     []Option{{ID: "saas", Label: "SaaS Platform"}},
	}

	tests := []struct {
		name string
		q    Question
		a    Answer
		want bool
	}{
		{"known option id", q, TextAnswer("saas"), false},
		{"free text on custom question", q, TextAnswer("a betting exchange"), true},
		{"empty answer", q, TextAnswer(""), false},
		{"list answer", q, ListAnswer("a", "b"), false},
		{"custom not allowed", Question{Mode: ModeSingle, Options: q.Options}, TextAnswer("whatever"), false},
		{"multi mode", Question{Mode: ModeMulti, AllowCustom: true, Options: q.Options}, TextAnswer("x"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCustom(tt.q, tt.a); got != tt.want {
				t.Errorf("IsCustom = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFileSet_Paths(t *testing.T) {
	fs := FileSet{
		"prompts/planner.md": "x",
		"AGENTS.md":          "y",
		".agent/state.json":  "z",
	}
	want := []string{".agent/state.json", "AGENTS.md", "prompts/planner.md"}
	if got := fs.Paths(); !reflect.DeepEqual(got, want) {
		t.Errorf("Paths = %v, want %v", got, want)
	}
}
