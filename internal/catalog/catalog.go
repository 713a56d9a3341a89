// Package catalog holds the ordered question definitions the wizard walks
// through. The catalog is immutable data: both the recommendation engine and
// the compiler treat it as a read-only input.
package catalog

import "github.com/anthropics/teamforge/internal/domain"

var questions = []domain.Question{
	{
		ID:       0,
		Block:    "Mission",
		Title:    "Describe your project idea",
		Subtitle: "This is the foundational context that shapes the behavior of every agent",
		Mode:     domain.ModeText,
	},
	{
		ID:          1,
		Block:       "Project",
		Title:       "What are you building?",
		Mode:        domain.ModeSingle,
		AllowCustom: true,
		Options: []domain.Option{
			{ID: "web_full", Label: "Fullstack Web App", Desc: "Complete solution (frontend + backend + db)", Icon: "layout"},
			{ID: "saas", Label: "SaaS Platform", Desc: "Multi-tenant subscription service", Icon: "cloud"},
			{ID: "nocode_builder", Label: "No-code / Website Builder", Desc: "Site builders and web platforms", Icon: "hammer"},
			{ID: "frontend", Label: "Frontend Only", Desc: "Client side (React, Vue, Next.js)", Icon: "monitor"},
			{ID: "backend", Label: "Backend / API", Desc: "Server logic, microservices, databases", Icon: "database"},
			{ID: "mobile", Label: "Mobile Application", Desc: "iOS/Android (React Native, Flutter, Swift)", Icon: "smartphone"},
			{ID: "desktop", Label: "Desktop Application", Desc: "Windows/macOS/Linux (Electron, Tauri)", Icon: "cpu"},
			{ID: "ai_service", Label: "AI / ML Service", Desc: "LLM integrations, data processing, pipelines", Icon: "brain"},
			{ID: "extension", Label: "Browser Extension", Desc: "Plugins for Chrome/Firefox/Safari", Icon: "chrome"},
			{ID: "library", Label: "Library / Framework", Desc: "Modules and packages (npm, pip, cargo)", Icon: "package"},
			{ID: "cli", Label: "CLI Tool", Desc: "Command-line tooling", Icon: "terminal"},
			{ID: "ecommerce", Label: "E-commerce Platform", Desc: "Online stores, payment systems", Icon: "shopping-cart"},
			{ID: "gamedev", Label: "Game Development", Desc: "2D/3D games and engines", Icon: "gamepad-2"},
			{ID: "embedded", Label: "IoT / Embedded", Desc: "Firmware, internet of things", Icon: "radio"},
			{ID: "other", Label: "Other (custom)", Desc: "Describe your project yourself", Icon: "edit-3"},
		},
	},
	{
		ID:    2,
		Block: "Project",
		Title: "How is your project organized?",
		Mode:  domain.ModeMulti,
		Options: []domain.Option{
			{ID: "monolith", Label: "Classic Monolith", Desc: "Single codebase, simple deployment", Icon: "box"},
			{ID: "modular_monolith", Label: "Modular Monolith", Desc: "Strict module isolation inside one repository", Icon: "layout-grid"},
			{ID: "fsd", Label: "Feature-Sliced Design (FSD)", Desc: "Modern standard for scalable frontend apps", Icon: "layers"},
			{ID: "monorepo", Label: "Monorepo", Desc: "Many packages in one repository (Turborepo, Nx, Lerna)", Icon: "git-branch"},
			{ID: "microservices", Label: "Microservices", Desc: "Distributed system of independent services", Icon: "share-2"},
			{ID: "hexagonal", Label: "Hexagonal / Clean Architecture", Desc: "DDD and separation of logic from infrastructure", Icon: "hexagon"},
			{ID: "serverless", Label: "Serverless / Event-driven", Desc: "Cloud functions and reactive architecture", Icon: "zap"},
		},
	},
	{
		ID:    3,
		Block: "Project",
		Title: "Which technologies does the project use?",
		Mode:  domain.ModeMulti,
		Options: []domain.Option{
			{ID: "react", Label: "React", Desc: "The most popular UI library", Icon: "atom"},
			{ID: "nextjs", Label: "Next.js", Desc: "React framework for production", Icon: "globe"},
			{ID: "vue", Label: "Vue.js", Desc: "Progressive JS framework", Icon: "layout"},
			{ID: "svelte", Label: "Svelte / SvelteKit", Desc: "Cybernetic UI framework", Icon: "zap"},
			{ID: "astro", Label: "Astro", Desc: "Static site generator for content", Icon: "rocket"},
			{ID: "typescript", Label: "TypeScript", Desc: "Static typing for JavaScript", Icon: "code-2"},
			{ID: "tailwind", Label: "Tailwind CSS", Desc: "Utility-first styling", Icon: "palette"},
			{ID: "framer", Label: "Framer Motion", Desc: "Advanced animations", Icon: "clapperboard"},
			{ID: "nodejs", Label: "Node.js", Desc: "Scalable JS runtime", Icon: "server"},
			{ID: "python", Label: "Python (FastAPI)", Desc: "High-performance AI/Web", Icon: "snake"},
			{ID: "go", Label: "Go", Desc: "Cloud-native services", Icon: "cpu"},
			{ID: "rust", Label: "Rust", Desc: "Memory-safe systems programming", Icon: "settings-2"},
			{ID: "bun", Label: "Bun", Desc: "All-in-one JS runtime", Icon: "cookie"},
			{ID: "java", Label: "Java (Spring)", Desc: "Enterprise applications", Icon: "coffee"},
			{ID: "graphql", Label: "GraphQL / Apollo", Desc: "Flexible API query language", Icon: "share-2"},
			{ID: "postgresql", Label: "PostgreSQL", Desc: "Advanced relational DB", Icon: "database"},
			{ID: "mongodb", Label: "MongoDB", Desc: "NoSQL document store", Icon: "file-code"},
			{ID: "redis", Label: "Redis", Desc: "In-memory cache & pub/sub", Icon: "zap"},
			{ID: "supabase", Label: "Supabase", Desc: "Open-source Firebase alternative", Icon: "bolt"},
			{ID: "prisma", Label: "Prisma", Desc: "Next-gen Node.js/TS ORM", Icon: "layers"},
			{ID: "drizzle", Label: "Drizzle ORM", Desc: "TypeScript-first SQL ORM", Icon: "droplets"},
			{ID: "pinecone", Label: "Pinecone", Desc: "Vector DB for AI apps", Icon: "tree-pine"},
			{ID: "docker", Label: "Docker", Desc: "Container orchestration", Icon: "ship"},
			{ID: "k8s", Label: "Kubernetes", Desc: "Large-scale management", Icon: "network"},
			{ID: "terraform", Label: "Terraform", Desc: "Infrastructure as Code", Icon: "mountain"},
			{ID: "gh_actions", Label: "GitHub Actions", Desc: "Automated CI/CD pipelines", Icon: "github"},
			{ID: "openai", Label: "OpenAI SDK", Desc: "LLM integration (GPT-4o/o1)", Icon: "brain"},
			{ID: "langchain", Label: "LangChain", Desc: "Framework for AI agents/chains", Icon: "link"},
			{ID: "pytorch", Label: "PyTorch", Desc: "Deep learning research", Icon: "flame"},
			{ID: "react_native", Label: "React Native", Desc: "Cross-platform mobile apps", Icon: "smartphone"},
			{ID: "flutter", Label: "Flutter", Desc: "UI toolkit for multi-platform", Icon: "bird"},
		},
	},
	{
		ID:    4,
		Block: "Project",
		Title: "How do you manage dependencies?",
		Mode:  domain.ModeSingle,
		Options: []domain.Option{
			{ID: "npm", Label: "npm"},
			{ID: "pnpm", Label: "pnpm"},
			{ID: "yarn", Label: "yarn"},
			{ID: "bun", Label: "bun"},
			{ID: "poetry", Label: "poetry (Python)"},
			{ID: "cargo", Label: "cargo (Rust)"},
			{ID: "none", Label: "Not using one"},
		},
	},
	{
		ID:       5,
		Block:    "Agent selection",
		Title:    "Which agents do you need?",
		Subtitle: "Pick the roles that will form your team",
		Mode:     domain.ModeMulti,
		Options: []domain.Option{
			{ID: "planner", Label: "Strategic Planner", Desc: "Orchestration, task decomposition & state management", Icon: "clipboard-list"},
			{ID: "architect", Label: "System Architect", Desc: "Design patterns & system structure", Icon: "layout"},
			{ID: "codewriter", Label: "Code Writer", Desc: "Implementation of new features", Icon: "code"},
			{ID: "refactorer", Label: "Code Refactorer", Desc: "Optimization & technical debt cleanup", Icon: "zap"},
			{ID: "logic_expert", Label: "Logic Specialist", Desc: "Complex business rules & algorithms", Icon: "binary"},
			{ID: "tester", Label: "QA Automation", Desc: "Unit, E2E, and integration tests", Icon: "test-tube"},
			{ID: "reviewer", Label: "Code Reviewer", Desc: "Peer reviews & quality gates", Icon: "eye"},
			{ID: "bugfixer", Label: "Bug Hunter", Desc: "Identification & patching of defects", Icon: "bug"},
			{ID: "performance", Label: "Perf Optimizer", Desc: "Bottleneck analysis & profiling", Icon: "activity"},
			{ID: "security", Label: "Security Auditor", Desc: "Vulnerability & dependency auditing", Icon: "shield-check"},
			{ID: "ai_expert", Label: "AI Integrationist", Desc: "LLM, RAG & prompt engineering", Icon: "brain"},
			{ID: "data_engineer", Label: "Data Engineer", Desc: "Data pipelines & transformations", Icon: "database"},
			{ID: "devops", Label: "DevOps Engineer", Desc: "CI/CD, Docker & Cloud infra", Icon: "server"},
			{ID: "git_manager", Label: "Git Librarian", Desc: "Branching, merges & git flow", Icon: "git-branch"},
			{ID: "release_manager", Label: "Release Manager", Desc: "Version control & deployments", Icon: "package-check"},
			{ID: "documenter", Label: "Tech Writer", Desc: "Internal & external documentation", Icon: "file-text"},
			{ID: "ui_specialist", Label: "UI/UX Auditor", Desc: "Accessibility & layout consistency", Icon: "clapperboard"},
			{ID: "scout", Label: "Web Scout", Desc: "Data collection, scraping & crawling", Icon: "compass"},
			{ID: "analyst", Label: "Data Analyst", Desc: "Collected data structuring & insights", Icon: "bar-chart"},
			{ID: "integrator", Label: "Cloud Integrator", Desc: "Third-party APIs, Drive/Notion/Slack sync", Icon: "plug"},
		},
	},
	{
		ID: 6, Block: "Permissions", Title: "Creating new files", Mode: domain.ModeSingle,
		Options: []domain.Option{
			{ID: "full", Label: "Yes, freely"},
			{ID: "restricted", Label: "Yes, but only in specific folders"},
			{ID: "approval", Label: "Yes, with confirmation"},
			{ID: "none", Label: "No, editing only"},
		},
	},
	{
		ID: 7, Block: "Permissions", Title: "Editing files", Mode: domain.ModeSingle,
		Options: []domain.Option{
			{ID: "any", Label: "Yes, any files"},
			{ID: "no_config", Label: "Except configuration files"},
			{ID: "approval", Label: "With confirmation"},
			{ID: "read_only", Label: "Read only"},
		},
	},
	{
		ID: 8, Block: "Permissions", Title: "Deleting files", Mode: domain.ModeSingle,
		Options: []domain.Option{
			{ID: "full", Label: "Yes, freely"},
			{ID: "temp", Label: "Only temporary files/tests"},
			{ID: "approval", Label: "Only with confirmation"},
			{ID: "never", Label: "No, never"},
		},
	},
	{
		ID: 9, Block: "Git", Title: "Can agents work with Git?", Mode: domain.ModeSingle,
		Options: []domain.Option{
			{ID: "full", Label: "Commits and Push"},
			{ID: "commit_only", Label: "Commits only"},
			{ID: "branch_only", Label: "Branches only"},
			{ID: "manual", Label: "No, Git stays manual"},
		},
	},
	{
		ID: 10, Block: "Restrictions", Title: "Which paths are off limits?", Mode: domain.ModeMulti,
		Options: []domain.Option{
			{ID: "env", Label: ".env files"},
			{ID: "package", Label: "package.json / lock"},
			{ID: "docker", Label: "Docker / CI-CD"},
			{ID: "db", Label: "Databases"},
			{ID: "prod", Label: "Production code"},
			{ID: "node_modules", Label: "node_modules"},
			{ID: "nothing", Label: "Everything is allowed"},
		},
	},
	{
		ID: 11, Block: "Workflow", Title: "Agent autonomy", Mode: domain.ModeSingle,
		Options: []domain.Option{
			{ID: "high", Label: "Full autonomy"},
			{ID: "medium", Label: "Medium (confirm important steps)"},
			{ID: "low", Label: "Low (I decide)"},
			{ID: "advisory", Label: "Advice only"},
		},
	},
	{
		ID: 12, Block: "Workflow", Title: "Agent coordination", Mode: domain.ModeSingle,
		Options: []domain.Option{
			{ID: "orchestrator", Label: "Main coordinator"},
			{ID: "sequential", Label: "One at a time"},
			{ID: "parallel", Label: "Independently"},
			{ID: "manual", Label: "Manually"},
		},
	},
	{
		ID: 13, Block: "Workflow", Title: "Handing over results", Mode: domain.ModeSingle,
		Options: []domain.Option{
			{ID: "log", Label: "Log file"},
			{ID: "comments", Label: "Comments"},
			{ID: "folder", Label: "Dedicated folder"},
			{ID: "none", Label: "No handover"},
		},
	},
	{
		ID: 14, Block: "Workflow", Title: "Conflicts", Mode: domain.ModeSingle,
		Options: []domain.Option{
			{ID: "ask", Label: "Ask me"},
			{ID: "last", Label: "Last one wins"},
			{ID: "priority", Label: "Priority agent wins"},
			{ID: "variants", Label: "Produce variants"},
		},
	},
	{
		ID: 15, Block: "Code style", Title: "Code comments", Mode: domain.ModeSingle,
		Options: []domain.Option{
			{ID: "detailed", Label: "Detailed"},
			{ID: "complex", Label: "For complex logic"},
			{ID: "minimal", Label: "Minimal"},
			{ID: "none", Label: "No comments"},
		},
	},
	{
		ID: 16, Block: "Code style", Title: "Optimization", Mode: domain.ModeSingle,
		Options: []domain.Option{
			{ID: "aggressive", Label: "Aggressive"},
			{ID: "balanced", Label: "Balanced"},
			{ID: "clean", Label: "Clarity first"},
			{ID: "none", Label: "Do not optimize"},
		},
	},
	{
		ID: 17, Block: "Priorities", Title: "What matters more?", Mode: domain.ModeSingle,
		Options: []domain.Option{
			{ID: "speed", Label: "Speed"},
			{ID: "quality", Label: "Quality"},
			{ID: "balance", Label: "Balance"},
			{ID: "best_practices", Label: "Best Practices"},
		},
	},
	{
		ID: 18, Block: "Code style", Title: "Linter / Style", Mode: domain.ModeSingle,
		Options: []domain.Option{
			{ID: "strict", Label: "Strict"},
			{ID: "moderate", Label: "Moderate"},
			{ID: "flexible", Label: "Flexible"},
			{ID: "none", Label: "No rules"},
		},
	},
	{
		ID: 19, Block: "Extras", Title: "Logging", Mode: domain.ModeSingle,
		Options: []domain.Option{
			{ID: "verbose", Label: "Verbose"},
			{ID: "important", Label: "Important only"},
			{ID: "minimal", Label: "Minimal"},
			{ID: "none", Label: "Not needed"},
		},
	},
	{
		ID: 20, Block: "Extras", Title: "Notifications", Mode: domain.ModeMulti,
		Options: []domain.Option{
			{ID: "start", Label: "On start"},
			{ID: "complete", Label: "On completion"},
			{ID: "error", Label: "On errors"},
			{ID: "major", Label: "On major events"},
			{ID: "conflict", Label: "On conflicts"},
			{ID: "none", Label: "Not needed"},
		},
	},
}

// All returns the full ordered catalog. Callers must treat it as read-only.
func All() []domain.Question {
	return questions
}

// Count returns the number of questions.
func Count() int {
	return len(questions)
}

// ByID returns the question with the given id. An out-of-range id is a
// caller contract breach and yields ErrInvalidQuestionID.
func ByID(id int) (domain.Question, error) {
	if id < 0 || id >= len(questions) {
		return domain.Question{}, domain.ErrInvalidQuestionID
	}
	return questions[id], nil
}
