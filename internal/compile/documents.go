package compile

import (
	"fmt"
	"strings"

	"github.com/anthropics/teamforge/internal/team"
	"gopkg.in/yaml.v3"
)

// frontmatter renders a YAML frontmatter block for a generated markdown
// document. Marshal of the fixed frontmatter structs cannot fail; the empty
// block is a defensive fallback only.
func frontmatter(v any) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return "---\n---\n"
	}
	return "---\n" + string(b) + "---\n"
}

type policyFrontmatter struct {
	Type        string `yaml:"type"`
	Version     string `yaml:"version"`
	Status      string `yaml:"status"`
	LastRevised string `yaml:"last_revised"`
}

// renderPolicy produces AGENTS.md, the governance policy document.
func (c *Compiler) renderPolicy(p profile) string {
	var b strings.Builder
	b.WriteString(frontmatter(policyFrontmatter{
		Type:        "governance_policy",
		Version:     SchemaVersion,
		Status:      "operational",
		LastRevised: p.Date,
	}))

	fmt.Fprintf(&b, `
# AGENTIC GOVERNANCE AND SYSTEM ARCHITECTURE POLICY

## 1. PROJECT MISSION AND CONTEXT
**STRATEGIC GOAL:** %s

## 2. EXECUTIVE SUMMARY
This document defines the binding operational framework for all autonomous agents. It establishes technical boundaries, engineering standards, and the **Iterative Task Loop** protocol.

## 3. PROJECT TAXONOMY
| CATEGORY | SPECIFICATION |
| :--- | :--- |
| **Project Type** | %s |
| **Logic Architecture** | %s |
| **Technical Stack** | %s |
| **Toolchain** | %s |

## 4. AGENTIC STATE MANAGEMENT
Agents MUST maintain and synchronize state via the following artifacts:
*   **GLOBAL_STATE:** `+"`%s`"+` (Machine-readable task tree and agent status).
*   **TASK_MEMORY:** `+"`%s`"+` (Human-readable progress, blockers, and next steps).

## 5. THE ITERATIVE TASK LOOP (GOAL-PLAN-EXECUTE)
All agents operate within a continuous feedback loop:
1.  **GOAL:** Identify the high-level objective from the user or Planner.
2.  **PLAN:** Decompose the goal into atomic, executable steps in `+"`%s`"+`.
3.  **EXECUTE:** Perform the assigned step using specialized prompts.
4.  **VALIDATE:** Run tests, linters, or peer reviews (Reviewer agent) to verify the output.
5.  **DECIDE:** If validation fails, auto-trigger a fix step. If successful, proceed to the next step.

## 6. SECURITY AND PERMISSION MODEL (RBAC)
### 6.1 FS_ACCESS_CONTROL_LIST (ACL)
RESTRICTED_ZONES (Modification Prohibited): **%s**

### 6.2 CAPABILITY_MATRIX
*   **VFS_CREATE:** %s
*   **VFS_MODIFY:** %s
*   **VFS_DELETE:** %s
*   **VCS_COMMIT:** %s

## 7. ENGINEERING STANDARDS
*   **PRIORITY:** %s
*   **CODE_STYLE:** %s
*   **OPTIMIZATION:** %s
`,
		p.Mission,
		p.ProjectTypeLabel, p.Architecture, p.StackProse, p.Toolchain,
		PathState, PathTaskMemory,
		PathState,
		p.ForbiddenProse,
		strings.ToUpper(p.Workers.FS.Create),
		strings.ToUpper(p.Workers.FS.Edit),
		strings.ToUpper(p.Workers.FS.Delete),
		strings.ToUpper(p.Workers.VCS),
		p.Priority, p.Style, p.Optimization,
	)
	return b.String()
}

type orchestratorFrontmatter struct {
	Role     string `yaml:"role"`
	Domain   string `yaml:"domain"`
	Mission  string `yaml:"mission"`
	Type     string `yaml:"type"`
	Priority int    `yaml:"priority"`
}

// renderOrchestratorPrompt produces prompts/planner.md.
func (c *Compiler) renderOrchestratorPrompt(p profile) string {
	var b strings.Builder
	b.WriteString(frontmatter(orchestratorFrontmatter{
		Role:     strings.ToUpper(team.OrchestratorID),
		Domain:   orDefault(p.ProjectTypeID, fallbackProjectType),
		Mission:  p.Mission,
		Type:     "orchestrator",
		Priority: 1,
	}))

	fmt.Fprintf(&b, `
# SOP: PLANNER AGENT OPERATIONAL DIRECTIVE

## 1. PROJECT CONTEXT & MISSION
**MISSION:** %s

## 2. OBJECTIVE
You are the primary Planner/Orchestrator. Your mission is to decompose complex goals into atomic tasks, manage the Global State (%s), coordinate all worker agents, and maintain the GOAL-PLAN-EXECUTE-VALIDATE-DECIDE loop.

## 3. WORKFLOW
1.  **RECEIVE GOAL:** Extract high-level objective from user input.
2.  **DECOMPOSE:** Break down the goal into atomic, executable steps aligned with the MISSION.
3.  **WRITE STATE:** Update `+"`%s`"+` with the plan.
4.  **EXECUTE:** Launch steps sequentially by assigning them to relevant agents.
5.  **VALIDATE:** After each step, verify the output meets the target criteria.
6.  **DECIDE:** Based on validation result, move forward or trigger a fix.

## 4. AUTO-TRIGGER LOGIC
- **IF step.status == "failed":** Create fix_step -> Assign to agent -> Retry.
- **IF step.status == "completed":** Increment current_step -> Move to next step.
- **IF all_steps == "completed":** Mark goal as "achieved" -> Report to user.

## 5. STATE SYNC
**BEFORE action:**
- Read `+"`%s`"+`
- Read `+"`%s`"+`

**AFTER action:**
- Update `+"`%s`"+`
- Append progress to `+"`%s`"+`

## 6. DECISION ENGINE
Evaluate current state and validation results. If architectural ambiguity arises, HALT and request human intervention.
`,
		p.Mission, PathState, PathState,
		PathState, PathTaskMemory, PathState, PathTaskMemory,
	)
	return b.String()
}

type workerFrontmatter struct {
	Role    string `yaml:"role"`
	Domain  string `yaml:"domain"`
	Stack   string `yaml:"stack"`
	Mission string `yaml:"mission"`
	Type    string `yaml:"type"`
}

// renderWorkerPrompt produces prompts/<role>.md for a worker role, filling
// the role's static guidance template into the shared directive skeleton.
func (c *Compiler) renderWorkerPrompt(p profile, role string) string {
	tmpl := team.TemplateFor(role)

	var b strings.Builder
	b.WriteString(frontmatter(workerFrontmatter{
		Role:    strings.ToUpper(role),
		Domain:  orDefault(p.ProjectTypeID, fallbackProjectType),
		Stack:   p.StackProse,
		Mission: p.Mission,
		Type:    "worker",
	}))

	fmt.Fprintf(&b, `
# SOP: %s AGENT OPERATIONAL DIRECTIVE

## 1. STRATEGIC MISSION
**MISSION:** %s

## 2. OBJECTIVE
You are the %s unit. Your specialization is %s. Execute tasks focused on %s within the %s environment.

## 3. ROLE GUIDELINES
%s

## 4. OPERATIONAL PROTOCOL (TASK_LOOP)
1.  **CONSULT_STATE:** Read `+"`%s`"+` and `+"`%s`"+` before any action.
2.  **EXECUTE_STEP:** Perform the single most relevant step assigned to your role, prioritizing the PROJECT MISSION.
3.  **UPDATE_STATE:** Immediately record progress, output, and failures in the State Management artifacts.

## 5. AUTO-TRIGGER PROTOCOL
- **SUCCESS:** If current_step.status == "completed" -> Update state -> Trigger next.
- **FAILURE:** If validation == "failed" -> Create fix_step -> Retry immediately.
- **BLOCKER:** If mission boundary violated -> HALT and notify human.

## 6. TECHNICAL CONSTRAINTS
- **STACK:** %s
- **FS_WRITE:** %s | **FS_CREATE:** %s
- **DENY_LIST:** %s
- **SUGGESTED_OPS:** %s

## 7. QUALITY ASSURANCE
Maintain %s documentation level. Priority: **%s**.
`,
		strings.ToUpper(role),
		p.Mission,
		tmpl.Name, tmpl.Focus, p.PriorityID, p.StackProse,
		bulletList(tmpl.Guidelines),
		PathState, PathTaskMemory,
		p.StackProse,
		p.Workers.FS.Edit, p.Workers.FS.Create,
		p.ForbiddenProse,
		strings.Join(tmpl.Commands, ", "),
		p.Documentation, p.Priority,
	)
	return b.String()
}

// renderTaskMemory produces memory/current_task.md, the human-readable
// mirror of the initial session state.
func (c *Compiler) renderTaskMemory(p profile) string {
	return fmt.Sprintf(`# Project Mission: %s

**Session ID:** %s
**Started:** %s
**Status:** INITIALIZED

---

## MISSION CONTEXT
%s

## PLAN (0/0 completed)
[Steps will be added by Planner]

---

## PROGRESS LOG
### [START] Session initialized with mission context.

---

## BLOCKERS
*None*

## METRICS
- Steps completed: 0
`, p.Mission, p.SessionID, p.StartedAt, p.Mission)
}

// renderReadme produces README-agents.md, the top-level integration guide.
func (c *Compiler) renderReadme(p profile) string {
	roster := make([]string, len(p.Roster))
	for i, role := range p.Roster {
		tmpl := team.TemplateFor(role)
		roster[i] = fmt.Sprintf("*   **%s** (%s): %s.", role, tmpl.Name, upperFirst(tmpl.Focus))
	}

	return fmt.Sprintf(`# SYSTEM INTEGRATION: AGENTIC CORE v%s

## 1. PROJECT MISSION
**GOAL:** %s

## 2. OPERATIONAL INFRASTRUCTURE
To activate the autonomous system, initialize these core files:
*   `+"`%s`"+`: Machine-readable session state.
*   `+"`%s`"+`: Human-readable task journal.

## 3. WORKFLOW CONFIGURATION
*   **TOPOLOGY:** %s
*   **INTERFACE SYNC:** %s
*   **CONFLICT RESOLUTION:** %s
*   **AUTONOMY LEVEL:** %s

## 4. THE AUTONOMOUS LOOP
1. **INPUT:** Provide your goal to the **Strategic Planner**.
2. **ORCHESTRATION:** The Planner populates `+"`%s`"+` with an executable roadmap aligned with the project mission.
3. **AUTONOMOUS EXECUTION:** Workers execute steps and auto-trigger each other based on completion status.

## 5. ACTIVE AGENT REGISTRY
%s

---
*Generated by teamforge*
`,
		SchemaVersion,
		p.Mission,
		PathState, PathTaskMemory,
		p.Topology, p.Interface, p.Conflict, p.Autonomy,
		PathState,
		strings.Join(roster, "\n"),
	)
}

func bulletList(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
