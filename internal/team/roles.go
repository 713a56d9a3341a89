// Package team resolves agent rosters and the per-role permission model.
package team

import "github.com/anthropics/teamforge/internal/domain"

// OrchestratorID is the role that is always present in a resolved roster.
const OrchestratorID = "planner"

// baselineRoster is substituted when the user selected no roles at all.
var baselineRoster = []string{OrchestratorID, "architect", "codewriter", "reviewer"}

// Resolve turns the user's raw role selection into the final roster.
// The orchestrator is prepended unless already selected; an empty selection
// falls back to the baseline roster. Duplicates are removed preserving the
// first occurrence. All downstream generation iterates this list, never the
// raw selection.
func Resolve(selected []string) []string {
	if len(selected) == 0 {
		return append([]string(nil), baselineRoster...)
	}

	roster := make([]string, 0, len(selected)+1)
	seen := make(map[string]bool, len(selected)+1)

	add := func(role string) {
		if role == "" || seen[role] {
			return
		}
		seen[role] = true
		roster = append(roster, role)
	}

	if !contains(selected, OrchestratorID) {
		add(OrchestratorID)
	}
	for _, role := range selected {
		add(role)
	}
	return roster
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// FSPermissions is the create/edit/delete capability triple for one role.
type FSPermissions struct {
	Create string `json:"create"`
	Edit   string `json:"edit"`
	Delete string `json:"delete"`
}

// PermissionMatrix is the capability sheet derived from the permission
// answers. Worker roles share it verbatim; the orchestrator overrides it.
type PermissionMatrix struct {
	FS        FSPermissions `json:"fs"`
	VCS       string        `json:"vcs"`
	Forbidden []string      `json:"forbidden"`
}

// Default fallbacks for unanswered permission questions. Missing answers
// degrade to the most conservative documented value, never to an empty field.
const (
	DefaultCreate = "approval"
	DefaultEdit   = "approval"
	DefaultDelete = "never"
	DefaultCommit = "manual"
)

// MatrixFromAnswers derives the worker permission matrix from the
// create/edit/delete/commit answers (questions 6-10).
func MatrixFromAnswers(ans domain.AnswerSet) PermissionMatrix {
	forbidden := ans.List(10)
	if forbidden == nil {
		forbidden = []string{}
	}
	return PermissionMatrix{
		FS: FSPermissions{
			Create: ans.Text(6, DefaultCreate),
			Edit:   ans.Text(7, DefaultEdit),
			Delete: ans.Text(8, DefaultDelete),
		},
		VCS:       ans.Text(9, DefaultCommit),
		Forbidden: forbidden,
	}
}

// OrchestratorMatrix returns the fixed orchestrator capability sheet:
// maximal create/edit, no delete, regardless of the general answers.
func OrchestratorMatrix(ans domain.AnswerSet) PermissionMatrix {
	m := MatrixFromAnswers(ans)
	m.FS = FSPermissions{Create: "full", Edit: "any", Delete: "never"}
	return m
}
