package team

import (
	"reflect"
	"testing"

	"github.com/anthropics/teamforge/internal/domain"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		selected []string
		want     []string
	}{
		{
			name:     "empty selection gets the baseline roster",
			selected: nil,
			want:     []string{"planner", "architect", "codewriter", "reviewer"},
		},
		{
			name:     "orchestrator is prepended",
			selected: []string{"codewriter"},
			want:     []string{"planner", "codewriter"},
		},
		{
			name:     "orchestrator already selected keeps its position",
			selected: []string{"codewriter", "planner", "tester"},
			want:     []string{"codewriter", "planner", "tester"},
		},
		{
			name:     "duplicates removed preserving first occurrence",
			selected: []string{"tester", "codewriter", "tester"},
			want:     []string{"planner", "tester", "codewriter"},
		},
		{
			name:     "custom role names survive",
			selected: []string{"growth_hacker"},
			want:     []string{"planner", "growth_hacker"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.selected); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Resolve(%v) = %v, want %v", tt.selected, got, tt.want)
			}
		})
	}
}

func TestResolve_DoesNotAliasInput(t *testing.T) {
	selected := []string{"codewriter", "tester"}
	got := Resolve(selected)
	got[1] = "mutated"
	if selected[0] != "codewriter" || selected[1] != "tester" {
		t.Errorf("Resolve mutated its input: %v", selected)
	}
}

func TestMatrixFromAnswers_Defaults(t *testing.T) {
	m := MatrixFromAnswers(domain.AnswerSet{})

	if m.FS.Create != DefaultCreate {
		t.Errorf("Create = %q, want %q", m.FS.Create, DefaultCreate)
	}
	if m.FS.Edit != DefaultEdit {
		t.Errorf("Edit = %q, want %q", m.FS.Edit, DefaultEdit)
	}
	if m.FS.Delete != DefaultDelete {
		t.Errorf("Delete = %q, want %q", m.FS.Delete, DefaultDelete)
	}
	if m.VCS != DefaultCommit {
		t.Errorf("VCS = %q, want %q", m.VCS, DefaultCommit)
	}
	if m.Forbidden == nil || len(m.Forbidden) != 0 {
		t.Errorf("Forbidden = %#v, want empty non-nil list", m.Forbidden)
	}
}

func TestMatrixFromAnswers_FromAnswers(t *testing.T) {
	ans := domain.AnswerSet{
		6:  domain.TextAnswer("full"),
		7:  domain.TextAnswer("any"),
		8:  domain.TextAnswer("approval"),
		9:  domain.TextAnswer("auto"),
		10: domain.ListAnswer("env", "secrets"),
	}
	m := MatrixFromAnswers(ans)

	want := PermissionMatrix{
		FS:        FSPermissions{Create: "full", Edit: "any", Delete: "approval"},
		VCS:       "auto",
		Forbidden: []string{"env", "secrets"},
	}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("MatrixFromAnswers = %+v, want %+v", m, want)
	}
}

func TestOrchestratorMatrix_OverridesFS(t *testing.T) {
	ans := domain.AnswerSet{
		6: domain.TextAnswer("never"),
		7: domain.TextAnswer("approval"),
		8: domain.TextAnswer("full"),
		9: domain.TextAnswer("auto"),
	}
	m := OrchestratorMatrix(ans)

	if m.FS.Create != "full" || m.FS.Edit != "any" || m.FS.Delete != "never" {
		t.Errorf("orchestrator FS = %+v, want full/any/never", m.FS)
	}
	// Non-FS permissions still follow the user's answers.
	if m.VCS != "auto" {
		t.Errorf("orchestrator VCS = %q, want %q", m.VCS, "auto")
	}
}

func TestTemplateFor_KnownRole(t *testing.T) {
	tmpl := TemplateFor("planner")
	if tmpl.Name != "Strategic Planner" {
		t.Errorf("Name = %q", tmpl.Name)
	}
	if len(tmpl.Guidelines) == 0 {
		t.Error("planner template has no guidelines")
	}
}

func TestTemplateFor_UnknownRoleFallsBack(t *testing.T) {
	tmpl := TemplateFor("growth_hacker")
	if tmpl.Name == "" || tmpl.Focus == "" {
		t.Errorf("fallback template is incomplete: %+v", tmpl)
	}
	if len(tmpl.Guidelines) == 0 {
		t.Error("fallback template has no guidelines")
	}
}
