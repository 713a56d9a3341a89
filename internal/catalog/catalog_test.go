package catalog

import (
	"testing"

	"github.com/anthropics/teamforge/internal/domain"
)

func TestAll_DenseIDs(t *testing.T) {
	qs := All()
	if len(qs) != Count() {
		t.Fatalf("len(All()) = %d, Count() = %d", len(qs), Count())
	}
	for i, q := range qs {
		if q.ID != i {
			t.Errorf("question at index %d has id %d", i, q.ID)
		}
		if q.Mode != domain.ModeText && len(q.Options) == 0 {
			t.Errorf("choice question %d has no options", q.ID)
		}
	}
}

func TestByID(t *testing.T) {
	q, err := ByID(1)
	if err != nil {
		t.Fatalf("ByID(1): %v", err)
	}
	if !q.HasOption("saas") {
		t.Error("question 1 should offer the saas option")
	}

	for _, id := range []int{-1, Count()} {
		if _, err := ByID(id); err != domain.ErrInvalidQuestionID {
			t.Errorf("ByID(%d) err = %v, want ErrInvalidQuestionID", id, err)
		}
	}
}

func TestAgentOptionsCoverTemplates(t *testing.T) {
	q, err := ByID(5)
	if err != nil {
		t.Fatalf("ByID(5): %v", err)
	}
	// Roles the recommendation engine may suggest must be selectable.
	for _, role := range []string{"planner", "architect", "codewriter", "reviewer", "documenter", "tester", "security", "devops", "scout", "analyst", "integrator"} {
		if !q.HasOption(role) {
			t.Errorf("agent question is missing option %q", role)
		}
	}
}
