package compile

// CommandSet holds the toolchain commands embedded in agents-config.json.
type CommandSet struct {
	Dev       string `json:"dev"`
	Build     string `json:"build"`
	Test      string `json:"test"`
	Lint      string `json:"lint"`
	Typecheck string `json:"typecheck,omitempty"`
}

// techFamilies maps recognized tech-stack tokens to a command family.
var techFamilies = map[string]string{
	"nodejs": "node", "react": "node", "nextjs": "node", "vue": "node",
	"svelte": "node", "astro": "node", "typescript": "node", "tailwind": "node",
	"framer": "node", "prisma": "node", "drizzle": "node", "graphql": "node",
	"react_native": "node", "bun": "node",
	"python": "python", "pytorch": "python",
	"go":      "go",
	"rust":    "rust",
	"java":    "java",
	"flutter": "flutter",
}

var familyCommands = map[string]CommandSet{
	"node": {
		Dev:       "npm run dev",
		Build:     "npm run build",
		Test:      "npm test",
		Lint:      "npm run lint",
		Typecheck: "npx tsc --noEmit",
	},
	"python": {
		Dev:   "uvicorn main:app --reload",
		Build: "pip install -r requirements.txt",
		Test:  "pytest",
		Lint:  "ruff check .",
	},
	"go": {
		Dev:   "go run ./...",
		Build: "go build ./...",
		Test:  "go test ./...",
		Lint:  "go vet ./...",
	},
	"rust": {
		Dev:   "cargo run",
		Build: "cargo build --release",
		Test:  "cargo test",
		Lint:  "cargo clippy",
	},
	"java": {
		Dev:   "./mvnw spring-boot:run",
		Build: "./mvnw package",
		Test:  "./mvnw test",
		Lint:  "./mvnw checkstyle:check",
	},
	"flutter": {
		Dev:   "flutter run",
		Build: "flutter build",
		Test:  "flutter test",
		Lint:  "flutter analyze",
	},
}

// defaultCommands is used when no stack token is recognized.
var defaultCommands = familyCommands["node"]

// resolveCommands picks the command set for the first recognized technology
// token in the user's stack selection. Unrecognized tokens are skipped, not
// errors; an empty or fully unrecognized stack gets the generic default.
func resolveCommands(stack []string) CommandSet {
	for _, tech := range stack {
		if family, ok := techFamilies[tech]; ok {
			return familyCommands[family]
		}
	}
	return defaultCommands
}
