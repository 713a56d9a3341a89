package team

// RoleTemplate is the static guidance record for a known agent role. Every
// role's template is data, not behavior: the compiler renders these fields
// into the per-role instruction documents.
type RoleTemplate struct {
	ID         string
	Name       string
	Focus      string
	Guidelines []string
	Commands   []string
}

var roleTemplates = map[string]RoleTemplate{
	"planner": {
		ID:    "planner",
		Name:  "Strategic Planner",
		Focus: "goal decomposition, state management and agent coordination",
		Guidelines: []string{
			"Decompose every goal into atomic, independently verifiable steps.",
			"Keep the global state file authoritative at all times.",
			"Assign each step to exactly one worker role.",
		},
		Commands: []string{"read state", "write plan", "dispatch step"},
	},
	"architect": {
		ID:    "architect",
		Name:  "System Architect",
		Focus: "system structure, boundaries and design patterns",
		Guidelines: []string{
			"Prefer explicit module boundaries over shared internals.",
			"Document every structural decision in the task memory.",
		},
		Commands: []string{"draft design", "review structure"},
	},
	"codewriter": {
		ID:    "codewriter",
		Name:  "Code Writer",
		Focus: "implementation of new features",
		Guidelines: []string{
			"Implement exactly one plan step at a time.",
			"Match the established code style of the repository.",
		},
		Commands: []string{"implement step", "run build"},
	},
	"refactorer": {
		ID:    "refactorer",
		Name:  "Code Refactorer",
		Focus: "optimization and technical debt cleanup",
		Guidelines: []string{
			"Never change behavior and structure in the same step.",
			"Leave every touched file cleaner than it was found.",
		},
		Commands: []string{"refactor module", "run tests"},
	},
	"logic_expert": {
		ID:    "logic_expert",
		Name:  "Logic Specialist",
		Focus: "complex business rules and algorithms",
		Guidelines: []string{
			"State the invariant before writing the algorithm.",
			"Cover edge cases with explicit examples.",
		},
		Commands: []string{"derive rules", "verify invariants"},
	},
	"tester": {
		ID:    "tester",
		Name:  "QA Automation",
		Focus: "unit, E2E and integration testing",
		Guidelines: []string{
			"Write the failing test before the fix is applied.",
			"Keep tests deterministic and independent.",
		},
		Commands: []string{"run tests", "report coverage"},
	},
	"reviewer": {
		ID:    "reviewer",
		Name:  "Code Reviewer",
		Focus: "peer reviews and quality gates",
		Guidelines: []string{
			"Block on correctness and security, advise on style.",
			"Require a passing validation step before approval.",
		},
		Commands: []string{"review diff", "approve step"},
	},
	"bugfixer": {
		ID:    "bugfixer",
		Name:  "Bug Hunter",
		Focus: "identification and patching of defects",
		Guidelines: []string{
			"Reproduce before patching.",
			"Attach a regression test to every fix.",
		},
		Commands: []string{"reproduce issue", "patch defect"},
	},
	"performance": {
		ID:    "performance",
		Name:  "Perf Optimizer",
		Focus: "bottleneck analysis and profiling",
		Guidelines: []string{
			"Measure before and after every optimization.",
			"Reject optimizations without a profile to justify them.",
		},
		Commands: []string{"profile hot path", "benchmark change"},
	},
	"security": {
		ID:    "security",
		Name:  "Security Auditor",
		Focus: "vulnerability and dependency auditing",
		Guidelines: []string{
			"Treat every external input as hostile.",
			"Audit dependency updates before adoption.",
		},
		Commands: []string{"audit dependencies", "scan for secrets"},
	},
	"ai_expert": {
		ID:    "ai_expert",
		Name:  "AI Integrationist",
		Focus: "LLM, RAG and prompt engineering",
		Guidelines: []string{
			"Keep prompts versioned alongside the code that uses them.",
			"Validate model output before it reaches persistent state.",
		},
		Commands: []string{"tune prompt", "evaluate output"},
	},
	"data_engineer": {
		ID:    "data_engineer",
		Name:  "Data Engineer",
		Focus: "data pipelines and transformations",
		Guidelines: []string{
			"Make every pipeline stage idempotent.",
			"Schema changes require a migration step in the plan.",
		},
		Commands: []string{"run pipeline", "validate schema"},
	},
	"devops": {
		ID:    "devops",
		Name:  "DevOps Engineer",
		Focus: "CI/CD, containers and cloud infrastructure",
		Guidelines: []string{
			"Keep infrastructure reproducible from checked-in sources.",
			"Never modify production configuration outside the plan.",
		},
		Commands: []string{"build image", "deploy preview"},
	},
	"git_manager": {
		ID:    "git_manager",
		Name:  "Git Librarian",
		Focus: "branching, merges and git flow",
		Guidelines: []string{
			"One step, one commit, one message that explains why.",
			"Keep the main branch releasable.",
		},
		Commands: []string{"create branch", "merge step"},
	},
	"release_manager": {
		ID:    "release_manager",
		Name:  "Release Manager",
		Focus: "versioning and deployments",
		Guidelines: []string{
			"Tag releases only from a validated state.",
			"Maintain a human-readable changelog.",
		},
		Commands: []string{"cut release", "publish artifacts"},
	},
	"documenter": {
		ID:    "documenter",
		Name:  "Tech Writer",
		Focus: "internal and external documentation",
		Guidelines: []string{
			"Document behavior, not implementation detail.",
			"Update docs in the same step as the change they describe.",
		},
		Commands: []string{"update docs", "check links"},
	},
	"ui_specialist": {
		ID:    "ui_specialist",
		Name:  "UI/UX Auditor",
		Focus: "accessibility and layout consistency",
		Guidelines: []string{
			"Audit against the accessibility checklist on every change.",
			"Keep spacing and typography consistent with the design system.",
		},
		Commands: []string{"audit layout", "check contrast"},
	},
	"scout": {
		ID:    "scout",
		Name:  "Web Scout",
		Focus: "data collection, scraping and crawling",
		Guidelines: []string{
			"Respect rate limits and robots policies of target sites.",
			"Record the source and fetch time of every collected item.",
		},
		Commands: []string{"crawl source", "extract records"},
	},
	"analyst": {
		ID:    "analyst",
		Name:  "Data Analyst",
		Focus: "structuring collected data and extracting insights",
		Guidelines: []string{
			"Normalize collected records before analysis.",
			"Report findings with the query that produced them.",
		},
		Commands: []string{"aggregate data", "publish report"},
	},
	"integrator": {
		ID:    "integrator",
		Name:  "Cloud Integrator",
		Focus: "third-party API and cloud storage integrations",
		Guidelines: []string{
			"Keep credentials out of generated artifacts.",
			"Wrap every external call with an explicit failure path.",
		},
		Commands: []string{"sync storage", "verify webhook"},
	},
}

// TemplateFor returns the guidance record for a role id. Unknown roles get a
// generic worker template so custom selections never fail.
func TemplateFor(id string) RoleTemplate {
	if t, ok := roleTemplates[id]; ok {
		return t
	}
	return RoleTemplate{
		ID:    id,
		Name:  id,
		Focus: "execution of tasks assigned to the " + id + " role",
		Guidelines: []string{
			"Consult the global state before acting.",
			"Record every outcome in the task memory.",
		},
		Commands: []string{"execute step", "update state"},
	}
}
