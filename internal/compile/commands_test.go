package compile

import "testing"

func TestResolveCommands(t *testing.T) {
	tests := []struct {
		name    string
		stack   []string
		wantDev string
	}{
		{"node stack", []string{"react", "nodejs"}, "npm run dev"},
		{"python stack", []string{"python", "postgresql"}, "uvicorn main:app --reload"},
		{"go stack", []string{"go"}, "go run ./..."},
		{"rust stack", []string{"rust"}, "cargo run"},
		{"first recognized token wins", []string{"postgresql", "python", "react"}, "uvicorn main:app --reload"},
		{"unrecognized stack falls back to node", []string{"cobol"}, "npm run dev"},
		{"empty stack falls back to node", nil, "npm run dev"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveCommands(tt.stack)
			if got.Dev != tt.wantDev {
				t.Errorf("Dev = %q, want %q", got.Dev, tt.wantDev)
			}
			if got.Build == "" || got.Test == "" || got.Lint == "" {
				t.Errorf("command set has empty required fields: %+v", got)
			}
		})
	}
}
