// Package wizard holds the mutable session state of a questionnaire run: the
// current step and the answers collected so far. The session is externally
// owned and passed by handle into the recommendation and compile layers, which
// only ever see snapshot copies.
package wizard

import (
	"fmt"

	"github.com/anthropics/teamforge/internal/domain"
)

// StartStep is the step value before the first question is shown.
const StartStep = -1

// Session is a single questionnaire run. Not safe for concurrent use; the
// caller owns synchronization if the session is shared.
type Session struct {
	catalog []domain.Question
	step    int
	answers domain.AnswerSet
}

// NewSession creates a session over the given catalog, positioned before the
// first question.
func NewSession(catalog []domain.Question) *Session {
	return &Session{
		catalog: catalog,
		step:    StartStep,
		answers: domain.AnswerSet{},
	}
}

// Step returns the current step index. StartStep means the run has not begun.
func (s *Session) Step() int { return s.step }

// Done reports whether the session has advanced past the last question.
func (s *Session) Done() bool { return s.step >= len(s.catalog) }

// Current returns the question at the current step.
func (s *Session) Current() (domain.Question, error) {
	if s.step < 0 || s.step >= len(s.catalog) {
		return domain.Question{}, domain.NewEngineError(
			domain.ErrInvalidStep.Code,
			fmt.Sprintf("no question at step %d", s.step),
		)
	}
	return s.catalog[s.step], nil
}

// Next advances to the following step. Advancing is legal from StartStep up
// to one past the last question (the terminal "finished" position).
func (s *Session) Next() error {
	if s.step >= len(s.catalog) {
		return domain.NewEngineError(
			domain.ErrInvalidStep.Code,
			fmt.Sprintf("cannot advance past step %d", s.step),
		)
	}
	s.step++
	return nil
}

// Back returns to the previous step. Going back from StartStep is illegal.
func (s *Session) Back() error {
	if s.step <= StartStep {
		return domain.NewEngineError(
			domain.ErrInvalidStep.Code,
			"cannot go back before the first step",
		)
	}
	s.step--
	return nil
}

// SetAnswer records the answer for a question, replacing any prior value.
// Question ids outside the catalog are rejected.
func (s *Session) SetAnswer(questionID int, a domain.Answer) error {
	if questionID < 0 || questionID >= len(s.catalog) {
		return domain.ErrInvalidQuestionID
	}
	if a.Empty() {
		delete(s.answers, questionID)
		return nil
	}
	s.answers[questionID] = a
	return nil
}

// Toggle flips an option in a multi-select answer: absent ids are appended,
// present ids are removed preserving the order of the remaining entries.
// Toggling the same id twice restores the exact prior value.
func (s *Session) Toggle(questionID int, optionID string) error {
	if questionID < 0 || questionID >= len(s.catalog) {
		return domain.ErrInvalidQuestionID
	}

	current := s.answers.List(questionID)
	next := make([]string, 0, len(current)+1)
	removed := false
	for _, id := range current {
		if id == optionID {
			removed = true
			continue
		}
		next = append(next, id)
	}
	if !removed {
		next = append(next, optionID)
	}

	if len(next) == 0 {
		delete(s.answers, questionID)
		return nil
	}
	s.answers[questionID] = domain.ListAnswer(next...)
	return nil
}

// Answers returns a snapshot copy of the collected answers. Mutating the
// returned set does not affect the session.
func (s *Session) Answers() domain.AnswerSet {
	return s.answers.Clone()
}

// Reset clears all answers and returns to the position before the first
// question.
func (s *Session) Reset() {
	s.step = StartStep
	s.answers = domain.AnswerSet{}
}
