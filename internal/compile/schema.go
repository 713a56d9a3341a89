package compile

import (
	"encoding/json"

	"github.com/anthropics/teamforge/internal/team"
)

// agentsConfig is the machine-readable mirror of the governance policy.
// Field order is fixed by the struct layout so output is reproducible.
type agentsConfig struct {
	SchemaVersion string           `json:"schema_version"`
	Metadata      configMetadata   `json:"metadata"`
	Registry      []registryEntry  `json:"registry"`
	Workflow      workflowConfig   `json:"workflow"`
	Orchestration orchestrationCfg `json:"orchestration"`
	Commands      CommandSet       `json:"commands"`
}

type configMetadata struct {
	GeneratedAt string   `json:"generated_at"`
	Mission     string   `json:"mission"`
	TargetEnv   string   `json:"target_env"`
	TechBase    []string `json:"tech_base"`
	Toolchain   string   `json:"toolchain"`
}

type registryEntry struct {
	UID          string           `json:"uid"`
	Role         string           `json:"role"`
	Type         string           `json:"type"`
	Priority     int              `json:"priority"`
	Permissions  entryPermissions `json:"permissions"`
	Capabilities []string         `json:"capabilities"`
}

type entryPermissions struct {
	FS        fsPermissions `json:"fs"`
	VCS       string        `json:"vcs"`
	Forbidden []string      `json:"forbidden"`
}

type fsPermissions struct {
	Create string `json:"create"`
	Edit   string `json:"edit"`
	Delete string `json:"delete"`
}

type workflowConfig struct {
	Priority      string `json:"priority"`
	Style         string `json:"style"`
	Optimization  string `json:"optimization"`
	Documentation string `json:"documentation"`
	Conflict      string `json:"conflict_resolution"`
}

type orchestrationCfg struct {
	Method    string `json:"method"`
	Interface string `json:"interface"`
	Autonomy  string `json:"autonomy"`
	StatePath string `json:"state_path"`
}

var orchestratorCapabilities = []string{
	"task_planning",
	"agent_coordination",
	"state_management",
	"auto_trigger",
}

var workerCapabilities = []string{
	"implementation",
	"validation",
}

// renderConfig produces agents-config.json.
func (c *Compiler) renderConfig(p profile) string {
	registry := make([]registryEntry, len(p.Roster))
	for i, role := range p.Roster {
		if role == team.OrchestratorID {
			registry[i] = registryEntry{
				UID:      role,
				Role:     "Planner / Orchestrator",
				Type:     "orchestrator",
				Priority: 1,
				Permissions: entryPermissions{
					FS: fsPermissions{
						Create: p.Orchestrator.FS.Create,
						Edit:   p.Orchestrator.FS.Edit,
						Delete: p.Orchestrator.FS.Delete,
					},
					VCS:       p.Orchestrator.VCS,
					Forbidden: forbiddenList(p.ForbiddenIDs),
				},
				Capabilities: orchestratorCapabilities,
			}
			continue
		}
		registry[i] = registryEntry{
			UID:      role,
			Role:     team.TemplateFor(role).Name,
			Type:     "worker",
			Priority: 2,
			Permissions: entryPermissions{
				FS: fsPermissions{
					Create: p.Workers.FS.Create,
					Edit:   p.Workers.FS.Edit,
					Delete: p.Workers.FS.Delete,
				},
				VCS:       p.Workers.VCS,
				Forbidden: forbiddenList(p.ForbiddenIDs),
			},
			Capabilities: workerCapabilities,
		}
	}

	cfg := agentsConfig{
		SchemaVersion: SchemaVersion,
		Metadata: configMetadata{
			GeneratedAt: p.StartedAt,
			Mission:     p.Mission,
			TargetEnv:   orDefault(p.ProjectTypeID, fallbackProjectType),
			TechBase:    stringList(p.StackIDs),
			Toolchain:   p.Toolchain,
		},
		Registry: registry,
		Workflow: workflowConfig{
			Priority:      p.PriorityID,
			Style:         p.Style,
			Optimization:  p.Optimization,
			Documentation: p.Documentation,
			Conflict:      p.Conflict,
		},
		Orchestration: orchestrationCfg{
			Method:    p.TopologyID,
			Interface: p.InterfaceID,
			Autonomy:  p.AutonomyID,
			StatePath: PathState,
		},
		Commands: p.Commands,
	}
	return marshalIndent(cfg)
}

// sessionState is the initial execution-session template written to
// .agent/state.json. Agents mutate a copy of this file at run time; the
// compiler only ever emits the pristine form.
type sessionState struct {
	SchemaVersion string       `json:"schema_version"`
	Session       stateSession `json:"session"`
	Goal          stateGoal    `json:"goal"`
	Plan          statePlan    `json:"plan"`
	Errors        []string     `json:"errors"`
	Blockers      []string     `json:"blockers"`
}

type stateSession struct {
	ID        string `json:"id"`
	StartedAt string `json:"started_at"`
	UpdatedAt string `json:"updated_at"`
	Status    string `json:"status"`
}

type stateGoal struct {
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

type statePlan struct {
	TotalSteps     int      `json:"total_steps"`
	CompletedSteps int      `json:"completed_steps"`
	CurrentStep    int      `json:"current_step"`
	Steps          []string `json:"steps"`
}

// renderState produces .agent/state.json.
func (c *Compiler) renderState(p profile) string {
	st := sessionState{
		SchemaVersion: "1.0.0",
		Session: stateSession{
			ID:        p.SessionID,
			StartedAt: p.StartedAt,
			UpdatedAt: p.StartedAt,
			Status:    "initialized",
		},
		Goal: stateGoal{
			Description: p.Mission,
			Priority:    "high",
		},
		Plan: statePlan{
			Steps: []string{},
		},
		Errors:   []string{},
		Blockers: []string{},
	}
	return marshalIndent(st)
}

// forbiddenList keeps empty selections as [] rather than null in JSON.
func forbiddenList(ids []string) []string {
	return stringList(ids)
}

func stringList(ids []string) []string {
	if len(ids) == 0 {
		return []string{}
	}
	return append([]string(nil), ids...)
}

// marshalIndent serializes the fixed config structs. They contain no
// unmarshalable values, so the error path is unreachable in practice.
func marshalIndent(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}
