// Package recommend derives context-sensitive suggested answers from the
// free-text idea description and prior answers. The engine is stateless and
// pure: identical input always yields value-equal output, and nothing is
// cached between calls.
package recommend

import (
	"fmt"
	"strings"

	"github.com/anthropics/teamforge/internal/domain"
)

// Question ids the engine has bespoke rules for.
const (
	qIdea         = 0
	qProjectType  = 1
	qArchitecture = 2
	qTechStack    = 3
	qAgents       = 5
	qCreateFiles  = 6
	qAutonomy     = 11
	qCoordination = 12
	qPriority     = 17
	qLintStyle    = 18
)

// Keyword families matched as case-insensitive substrings of the idea text.
// English and Russian tokens are matched alike; first family wins where the
// rules are ordered.
var (
	saasTokens       = []string{"saas", "platform", "сервис", "платформа", "подписк", "subscription"}
	mobileTokens     = []string{"mobile", "app", "телефон", "мобильн", "ios", "android"}
	aiTokens         = []string{"ai", "ml", "bot", "бот", "ии", "нейро", "gpt"}
	aiStackTokens    = []string{"ai", "ml", "intelligence", "ии", "нейро", "gpt", "llm"}
	complexTokens    = []string{"complex", "scale", "сложн", "масштаб", "enterprise"}
	testingTokens    = []string{"test", "quality", "тест", "качеств"}
	securityTokens   = []string{"security", "audit", "безопасн", "защит"}
	devopsTokens     = []string{"deploy", "ci", "cloud", "деплой", "docker"}
	scoutTokens      = []string{"вакансии", "vacancy", "job", "поиск", "search", "сбор", "скрапинг", "scraping", "парс", "crawl", "данные с сайт"}
	integratorTokens = []string{"drive", "гугл", "google", "сохранить на диск", "notion", "slack", "интеграци", "integration", "api"}
	speedTokens      = []string{"fast", "speed", "mvp", "быстр", "прототип"}
)

// Engine maps (question id, answers so far) to at most one recommendation.
type Engine struct {
	catalog []domain.Question
}

// NewEngine creates an engine over the given question catalog.
func NewEngine(catalog []domain.Question) *Engine {
	return &Engine{catalog: catalog}
}

// Recommend returns the suggested answer for the question currently shown,
// or nil when no recommendation applies. An out-of-range question id is a
// caller contract breach; an unknown language is rejected the same way.
func (e *Engine) Recommend(questionID int, ans domain.AnswerSet, lang Language) (*domain.Recommendation, error) {
	if questionID < 0 || questionID >= len(e.catalog) {
		return nil, domain.ErrInvalidQuestionID
	}
	texts, ok := adviceTexts[lang]
	if !ok {
		return nil, domain.ErrUnknownLanguage
	}
	contexts := contextTexts[lang]

	idea := strings.ToLower(ans.Text(qIdea, ""))
	projectType := ans.Text(qProjectType, "")

	build := func(key adviceKey, context string, ids ...string) *domain.Recommendation {
		a := texts[key]
		return &domain.Recommendation{
			IDs:      ids,
			Reason:   a.Reason,
			Why:      append([]string(nil), a.Why...),
			Benefits: append([]string(nil), a.Benefits...),
			Context:  context,
		}
	}

	switch questionID {
	case qIdea:
		// Nothing to recommend against empty context.
		return nil, nil

	case qProjectType:
		if containsAny(idea, saasTokens) {
			return build(adviceSaaS, fmt.Sprintf(contexts[ctxDetected], snippet(idea, 50)), "saas"), nil
		}
		if containsAny(idea, mobileTokens) {
			return build(adviceMobile, contexts[ctxMobileKeywords], "mobile"), nil
		}
		if containsAny(idea, aiTokens) {
			return build(adviceAIService, contexts[ctxAIKeywords], "ai_service"), nil
		}
		return build(adviceWebFull, contexts[ctxUniversal], "web_full"), nil

	case qArchitecture:
		if projectType == "web_full" || projectType == "saas" || containsAny(idea, complexTokens) {
			return build(adviceMonorepoFSD, fmt.Sprintf(contexts[ctxProjectType], projectType),
				"monorepo", "fsd", "modular_monolith"), nil
		}
		return build(adviceMonolith, contexts[ctxSimpleStart], "monolith"), nil

	case qTechStack:
		if containsAny(idea, aiStackTokens) {
			return build(adviceAIStack, contexts[ctxAIProject],
				"typescript", "nextjs", "python", "openai", "langchain", "pinecone"), nil
		}
		switch projectType {
		case "web_full", "saas", "backend", "frontend":
			return build(adviceWebStack, contexts[ctxProvenWeb],
				"react", "nextjs", "typescript", "tailwind", "nodejs", "postgresql", "prisma", "docker"), nil
		}
		return build(adviceWebStack, contexts[ctxMinimalBase], "typescript", "react", "tailwind"), nil

	case qAgents:
		roster := e.suggestAgents(idea, projectType, ans.List(qTechStack))
		return build(adviceFullTeam, fmt.Sprintf(contexts[ctxTeamSize], len(roster)), roster...), nil

	case qCreateFiles:
		return build(adviceFullAccess, "", "full"), nil

	case qAutonomy:
		return build(adviceMediumAutonomy, contexts[ctxBalance], "medium"), nil

	case qCoordination:
		if selected := ans.List(qAgents); len(selected) > 4 {
			return build(adviceOrchestrator, fmt.Sprintf(contexts[ctxCoordinator], len(selected)), "orchestrator"), nil
		}
		return build(adviceSequential, contexts[ctxSmallTeam], "sequential"), nil

	case qPriority:
		if containsAny(idea, speedTokens) {
			return build(adviceSpeed, contexts[ctxSpeedFocus], "speed"), nil
		}
		return build(adviceQuality, contexts[ctxProduction], "quality"), nil

	case qLintStyle:
		return build(adviceStrictStyle, contexts[ctxConsistency], "strict"), nil

	default:
		// Fallback rule: the first option with a generic justification.
		q := e.catalog[questionID]
		if len(q.Options) == 0 {
			return nil, nil
		}
		return build(adviceStandard, "", q.Options[0].ID), nil
	}
}

// suggestAgents assembles the suggested roster: a fixed baseline plus
// specialized roles triggered by keyword families, project type and stack.
// Deduplicated preserving first occurrence.
func (e *Engine) suggestAgents(idea, projectType string, stack []string) []string {
	agents := []string{"planner", "architect", "codewriter", "reviewer", "documenter"}

	if containsAny(idea, testingTokens) {
		agents = append(agents, "tester")
	}
	if containsAny(idea, securityTokens) {
		agents = append(agents, "security")
	}
	if containsAny(idea, devopsTokens) {
		agents = append(agents, "devops")
	}
	if containsAny(idea, scoutTokens) {
		agents = append(agents, "scout", "analyst")
	}
	if containsAny(idea, integratorTokens) {
		agents = append(agents, "integrator")
	}

	frontend := false
	for _, tech := range stack {
		if tech == "react" || tech == "nextjs" || tech == "vue" {
			frontend = true
			break
		}
	}
	if frontend || projectType == "saas" || projectType == "web_full" {
		agents = append(agents, "tester")
	}

	seen := make(map[string]bool, len(agents))
	out := agents[:0]
	for _, a := range agents {
		if !seen[a] {
			seen[a] = true
			out = append(out, a)
		}
	}
	return out
}

func containsAny(text string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(text, tok) {
			return true
		}
	}
	return false
}

// snippet truncates text for use inside a context message, on rune
// boundaries so non-ASCII descriptions stay valid.
func snippet(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
