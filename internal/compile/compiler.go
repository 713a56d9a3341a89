// Package compile transforms a finished answer set into the generated
// bundle: governance policy, machine-readable config, per-role instruction
// documents, state templates and the integration readme. Compilation is a
// pure function of the answers and the injected clock; it performs no I/O
// and never fails on missing or malformed answers.
package compile

import (
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/teamforge/internal/domain"
	"github.com/anthropics/teamforge/internal/team"
)

// Output paths. These names are a compatibility surface for downstream
// tooling and must not drift.
const (
	PathPolicy     = "AGENTS.md"
	PathConfig     = "agents-config.json"
	PathState      = ".agent/state.json"
	PathTaskMemory = "memory/current_task.md"
	PathReadme     = "README-agents.md"
	PathPrompts    = "prompts/"
)

// SchemaVersion is the generated config schema version.
const SchemaVersion = "1.3.1"

// Fallback markers for unanswered questions. Every derived value resolves to
// one of these instead of an empty field.
const (
	fallbackMission       = "GOAL_NOT_DEFINED"
	fallbackProjectType   = "GENERAL_SYSTEM"
	fallbackArchitecture  = "STANDARD_ARCH"
	fallbackStack         = "NOT_DETERMINED"
	fallbackToolchain     = "SYSTEM_DEFAULT"
	fallbackForbidden     = "NONE_SPECIFIED"
	fallbackAutonomy      = "SUPERVISED"
	fallbackTopology      = "DECENTRALIZED"
	fallbackInterface     = "FILE_LOGS"
	fallbackConflict      = "MANUAL"
	fallbackOptimization  = "BALANCED"
	fallbackStyle         = "STANDARD"
	fallbackDocumentation = "CONCISE"
)

// Compiler renders the bundle from a completed (or partial) answer set.
type Compiler struct {
	Catalog []domain.Question
	Clock   Clock
}

// New creates a Compiler over the given catalog and clock.
func New(catalog []domain.Question, clock Clock) *Compiler {
	return &Compiler{Catalog: catalog, Clock: clock}
}

// Compile produces the full output mapping. For a fixed answer set and a
// fixed clock the result is byte-identical across invocations.
func (c *Compiler) Compile(ans domain.AnswerSet) domain.FileSet {
	p := c.newProfile(ans)
	files := domain.FileSet{}

	files[PathPolicy] = c.renderPolicy(p)
	files[PathConfig] = c.renderConfig(p)
	files[PathState] = c.renderState(p)
	files[PathTaskMemory] = c.renderTaskMemory(p)
	files[PathReadme] = c.renderReadme(p)

	for _, role := range p.Roster {
		path := PathPrompts + strings.ToLower(role) + ".md"
		if role == team.OrchestratorID {
			files[path] = c.renderOrchestratorPrompt(p)
		} else {
			files[path] = c.renderWorkerPrompt(p, role)
		}
	}
	return files
}

// profile is the fully resolved view of the answer set: ids kept for JSON
// contexts, labels resolved for prose contexts, every field backed by a
// documented fallback.
type profile struct {
	Mission string

	ProjectTypeID    string
	ProjectTypeLabel string
	Architecture     string
	StackIDs         []string
	StackProse       string
	Toolchain        string

	ForbiddenIDs   []string
	ForbiddenProse string
	Workers        team.PermissionMatrix
	Orchestrator   team.PermissionMatrix

	AutonomyID    string
	TopologyID    string
	InterfaceID   string
	Autonomy      string
	Topology      string
	Interface     string
	Conflict      string
	PriorityID    string
	Priority      string
	Style         string
	Optimization  string
	Documentation string

	Roster   []string
	Commands CommandSet

	Date      string
	StartedAt string
	SessionID string
}

func (c *Compiler) newProfile(ans domain.AnswerSet) profile {
	now := c.Clock.Now().UTC()

	stackIDs := ans.List(3)
	stackProse := joinLabels(c.question(3), stackIDs, ", ")
	if stackProse == "" {
		stackProse = fallbackStack
	}

	forbiddenIDs := ans.List(10)
	forbiddenProse := fallbackForbidden
	if len(forbiddenIDs) > 0 {
		quoted := make([]string, len(forbiddenIDs))
		for i, id := range forbiddenIDs {
			quoted[i] = "`" + c.question(10).Label(id) + "`"
		}
		forbiddenProse = strings.Join(quoted, ", ")
	}

	arch := joinLabels(c.question(2), ans.List(2), " + ")
	if arch == "" {
		arch = fallbackArchitecture
	}

	projectTypeID := ans.Text(1, "")
	projectTypeLabel := fallbackProjectType
	if projectTypeID != "" {
		projectTypeLabel = c.question(1).Label(projectTypeID)
	}

	priorityID := ans.Text(17, "quality")

	return profile{
		Mission: ans.Text(0, fallbackMission),

		ProjectTypeID:    projectTypeID,
		ProjectTypeLabel: projectTypeLabel,
		Architecture:     arch,
		StackIDs:         stackIDs,
		StackProse:       stackProse,
		Toolchain:        c.labelOr(4, ans, fallbackToolchain),

		ForbiddenIDs:   forbiddenIDs,
		ForbiddenProse: forbiddenProse,
		Workers:        team.MatrixFromAnswers(ans),
		Orchestrator:   team.OrchestratorMatrix(ans),

		AutonomyID:    ans.Text(11, "medium"),
		TopologyID:    ans.Text(12, "sequential"),
		InterfaceID:   ans.Text(13, "log"),
		Autonomy:      c.labelOr(11, ans, fallbackAutonomy),
		Topology:      c.labelOr(12, ans, fallbackTopology),
		Interface:     c.labelOr(13, ans, fallbackInterface),
		Conflict:      c.labelOr(14, ans, fallbackConflict),
		PriorityID:    priorityID,
		Priority:      strings.ToUpper(priorityID),
		Style:         c.labelOr(18, ans, fallbackStyle),
		Optimization:  c.labelOr(16, ans, fallbackOptimization),
		Documentation: c.labelOr(15, ans, fallbackDocumentation),

		Roster:   team.Resolve(ans.List(5)),
		Commands: resolveCommands(stackIDs),

		Date:      now.Format("2006-01-02"),
		StartedAt: now.Format(time.RFC3339),
		SessionID: fmt.Sprintf("session-%d", now.UnixMilli()),
	}
}

// question returns the catalog entry for id, or an empty question when the
// catalog is shorter than expected. Label resolution then degrades to
// returning ids verbatim rather than failing.
func (c *Compiler) question(id int) domain.Question {
	if id < 0 || id >= len(c.Catalog) {
		return domain.Question{}
	}
	return c.Catalog[id]
}

// labelOr resolves the answer to question id into its display label, or the
// fallback marker when unanswered.
func (c *Compiler) labelOr(id int, ans domain.AnswerSet, fallback string) string {
	raw := ans.Text(id, "")
	if raw == "" {
		return fallback
	}
	return c.question(id).Label(raw)
}

func joinLabels(q domain.Question, ids []string, sep string) string {
	if len(ids) == 0 {
		return ""
	}
	labels := make([]string, len(ids))
	for i, id := range ids {
		labels[i] = q.Label(id)
	}
	return strings.Join(labels, sep)
}
