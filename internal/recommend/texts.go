package recommend

// Language selects the localization of justification text. The recommended
// ids are identical across languages.
type Language string

const (
	LangEN Language = "en"
	LangRU Language = "ru"
)

// advice is the localized justification block attached to a recommendation.
type advice struct {
	Reason   string
	Why      []string
	Benefits []string
}

// adviceKey names a justification block independent of language.
type adviceKey string

const (
	adviceSaaS           adviceKey = "saas"
	adviceWebFull        adviceKey = "web_full"
	adviceMobile         adviceKey = "mobile"
	adviceAIService      adviceKey = "ai_service"
	adviceMonorepoFSD    adviceKey = "monorepo_fsd"
	adviceMonolith       adviceKey = "monolith"
	adviceWebStack       adviceKey = "web_stack"
	adviceAIStack        adviceKey = "ai_stack"
	adviceFullTeam       adviceKey = "full_team"
	adviceOrchestrator   adviceKey = "orchestrator"
	adviceSequential     adviceKey = "sequential"
	adviceMediumAutonomy adviceKey = "medium_autonomy"
	adviceQuality        adviceKey = "quality"
	adviceSpeed          adviceKey = "speed"
	adviceStrictStyle    adviceKey = "strict_style"
	adviceFullAccess     adviceKey = "full_access"
	adviceStandard       adviceKey = "standard"
)

var adviceTexts = map[Language]map[adviceKey]advice{
	LangEN: {
		adviceSaaS: {
			Reason: "SaaS Platform is the optimal choice for your project",
			Why: []string{
				"Your description mentions subscription/platform model",
				"Multi-tenant architecture scales better",
				"Recurring revenue model is more sustainable",
			},
			Benefits: []string{
				"Built-in user management",
				"Subscription billing ready",
				"Multi-tenant data isolation",
			},
		},
		adviceWebFull: {
			Reason: "Fullstack Web App provides complete control",
			Why: []string{
				"Custom frontend + backend in one project",
				"Full control over all layers",
				"Most flexible architecture choice",
			},
			Benefits: []string{
				"Single codebase deployment",
				"Shared types between frontend/backend",
				"Faster development iteration",
			},
		},
		adviceMobile: {
			Reason: "Mobile app matches your requirements",
			Why: []string{
				"Your description indicates mobile-first needs",
				"Native experience for best UX",
				"Access to device features (camera, GPS, etc.)",
			},
			Benefits: []string{
				"App store distribution",
				"Push notifications",
				"Offline support possible",
			},
		},
		adviceAIService: {
			Reason: "AI/ML Service for intelligent features",
			Why: []string{
				"Your project involves AI/ML/bot capabilities",
				"LLM integration requires specialized architecture",
				"Vector databases needed for semantic search",
			},
			Benefits: []string{
				"Optimized for AI workloads",
				"RAG pipeline support",
				"Scalable inference infrastructure",
			},
		},
		adviceMonorepoFSD: {
			Reason: "Monorepo + FSD for maximum scalability",
			Why: []string{
				"Project type suggests complex structure",
				"Multiple packages share code efficiently",
				"Feature-Sliced Design prevents spaghetti code",
			},
			Benefits: []string{
				"Shared components library",
				"Atomic deployments",
				"Clear boundaries between features",
			},
		},
		adviceMonolith: {
			Reason: "Monolith for faster development",
			Why: []string{
				"Simpler projects benefit from less complexity",
				"Faster initial setup",
				"Easier to understand and maintain",
			},
			Benefits: []string{
				"Quick start development",
				"Simple deployment",
				"Lower cognitive load",
			},
		},
		adviceWebStack: {
			Reason: "Modern web stack for production apps",
			Why: []string{
				"Industry standard technologies",
				"Large ecosystem and community",
				"Proven at scale (Netflix, Airbnb, etc.)",
			},
			Benefits: []string{
				"TypeScript: Type safety, better DX",
				"Next.js: SSR, API routes, optimization",
				"Tailwind: Rapid UI development",
				"Prisma: Type-safe database access",
			},
		},
		adviceAIStack: {
			Reason: "AI-optimized stack for LLM integration",
			Why: []string{
				"Your project involves AI/ML features",
				"These tools are designed for AI workloads",
				"Best practices for LLM applications",
			},
			Benefits: []string{
				"OpenAI: GPT models integration",
				"LangChain: LLM orchestration",
				"Pinecone: Vector similarity search",
				"Python: ML ecosystem support",
			},
		},
		adviceFullTeam: {
			Reason: "Complete team for production-grade development",
			Why: []string{
				"Based on your project type and complexity",
				"Each agent handles specialized tasks",
				"Distributed workload = faster delivery",
			},
			Benefits: []string{
				"Planner: Strategic task decomposition",
				"Architect: System design decisions",
				"CodeWriter: Implementation",
				"Reviewer: Quality assurance",
				"Tester: Automated testing",
			},
		},
		adviceOrchestrator: {
			Reason: "Orchestrator topology for complex coordination",
			Why: []string{
				"You have 5+ agents that need coordination",
				"Central control prevents conflicts",
				"Clear chain of command",
			},
			Benefits: []string{
				"Single source of truth for tasks",
				"Parallel execution when possible",
				"Automatic conflict resolution",
			},
		},
		adviceSequential: {
			Reason: "Sequential workflow for smaller teams",
			Why: []string{
				"Fewer agents = simpler coordination",
				"Predictable execution order",
				"Easier to debug issues",
			},
			Benefits: []string{
				"Clear step-by-step process",
				"Less overhead",
				"Transparent progress tracking",
			},
		},
		adviceMediumAutonomy: {
			Reason: "Medium autonomy balances speed and control",
			Why: []string{
				"Agents work independently on routine tasks",
				"Critical decisions need your approval",
				"Best balance for most projects",
			},
			Benefits: []string{
				"Faster routine work",
				"Control over important decisions",
				"Learning opportunity from agent suggestions",
			},
		},
		adviceQuality: {
			Reason: "Quality-first ensures long-term success",
			Why: []string{
				"Technical debt is expensive to fix later",
				"Production apps need reliability",
				"Maintenance costs decrease with quality",
			},
			Benefits: []string{
				"Fewer bugs in production",
				"Easier to onboard new developers",
				"Lower long-term costs",
			},
		},
		adviceSpeed: {
			Reason: "Speed-first for rapid prototyping",
			Why: []string{
				"Your description mentions fast/quick delivery",
				"MVP validation before investing more",
				"Time-to-market advantage",
			},
			Benefits: []string{
				"Faster feedback loop",
				"Quick iteration on ideas",
				"Early market validation",
			},
		},
		adviceStrictStyle: {
			Reason: "Strict coding standards ensure consistency",
			Why: []string{
				"Multiple agents write code",
				"Consistency reduces cognitive load",
				"Easier code reviews",
			},
			Benefits: []string{
				"Uniform codebase",
				"Automatic formatting",
				"Fewer style debates",
			},
		},
		adviceFullAccess: {
			Reason: "Full access enables autonomous development",
			Why: []string{
				"Agents need to create project structure",
				"Less interruption = faster progress",
				"You can review via Git commits",
			},
			Benefits: []string{
				"Autonomous scaffolding",
				"Complete feature implementation",
				"Fewer approval bottlenecks",
			},
		},
		adviceStandard: {
			Reason:   "Standard recommendation",
			Why:      []string{"Optimal default choice"},
			Benefits: []string{"Proven setting"},
		},
	},
	LangRU: {
		adviceSaaS: {
			Reason: "SaaS платформа — оптимальный выбор для вашего проекта",
			Why: []string{
				"В описании упоминается подписочная/платформенная модель",
				"Мультитенантная архитектура лучше масштабируется",
				"Модель регулярного дохода более устойчива",
			},
			Benefits: []string{
				"Встроенное управление пользователями",
				"Готовность к подписочным платежам",
				"Изоляция данных между клиентами",
			},
		},
		adviceWebFull: {
			Reason: "Fullstack Web App даёт полный контроль",
			Why: []string{
				"Кастомный фронтенд + бэкенд в одном проекте",
				"Полный контроль над всеми слоями",
				"Максимально гибкий выбор архитектуры",
			},
			Benefits: []string{
				"Деплой одной кодовой базы",
				"Общие типы между фронтендом и бэкендом",
				"Быстрая итерация разработки",
			},
		},
		adviceMobile: {
			Reason: "Мобильное приложение соответствует вашим требованиям",
			Why: []string{
				"Описание указывает на mobile-first подход",
				"Нативный опыт для лучшего UX",
				"Доступ к фичам устройства (камера, GPS и т.д.)",
			},
			Benefits: []string{
				"Дистрибуция через App Store",
				"Push-уведомления",
				"Возможность офлайн-работы",
			},
		},
		adviceAIService: {
			Reason: "AI/ML сервис для интеллектуальных функций",
			Why: []string{
				"Ваш проект включает AI/ML/бот возможности",
				"Интеграция LLM требует специальной архитектуры",
				"Векторные БД нужны для семантического поиска",
			},
			Benefits: []string{
				"Оптимизация для AI-нагрузок",
				"Поддержка RAG-пайплайна",
				"Масштабируемая инфраструктура инференса",
			},
		},
		adviceMonorepoFSD: {
			Reason: "Monorepo + FSD для максимальной масштабируемости",
			Why: []string{
				"Тип проекта предполагает сложную структуру",
				"Несколько пакетов эффективно делят код",
				"Feature-Sliced Design предотвращает спагетти-код",
			},
			Benefits: []string{
				"Общая библиотека компонентов",
				"Атомарные деплои",
				"Чёткие границы между фичами",
			},
		},
		adviceMonolith: {
			Reason: "Монолит для быстрой разработки",
			Why: []string{
				"Простые проекты выигрывают от меньшей сложности",
				"Быстрая начальная настройка",
				"Проще понять и поддерживать",
			},
			Benefits: []string{
				"Быстрый старт разработки",
				"Простой деплой",
				"Меньше когнитивной нагрузки",
			},
		},
		adviceWebStack: {
			Reason: "Современный веб-стек для production приложений",
			Why: []string{
				"Индустриальные стандартные технологии",
				"Большая экосистема и сообщество",
				"Проверено в масштабе (Netflix, Airbnb и др.)",
			},
			Benefits: []string{
				"TypeScript: типобезопасность, лучший DX",
				"Next.js: SSR, API routes, оптимизация",
				"Tailwind: быстрая UI-разработка",
				"Prisma: типобезопасный доступ к БД",
			},
		},
		adviceAIStack: {
			Reason: "AI-оптимизированный стек для интеграции LLM",
			Why: []string{
				"Ваш проект включает AI/ML функции",
				"Эти инструменты созданы для AI-нагрузок",
				"Лучшие практики для LLM-приложений",
			},
			Benefits: []string{
				"OpenAI: интеграция GPT моделей",
				"LangChain: оркестрация LLM",
				"Pinecone: векторный семантический поиск",
				"Python: экосистема ML",
			},
		},
		adviceFullTeam: {
			Reason: "Полная команда для production-уровня разработки",
			Why: []string{
				"На основе типа и сложности вашего проекта",
				"Каждый агент выполняет специализированные задачи",
				"Распределённая нагрузка = быстрее доставка",
			},
			Benefits: []string{
				"Planner: стратегическая декомпозиция задач",
				"Architect: решения по системному дизайну",
				"CodeWriter: имплементация",
				"Reviewer: контроль качества",
				"Tester: автоматизированное тестирование",
			},
		},
		adviceOrchestrator: {
			Reason: "Оркестратор для сложной координации",
			Why: []string{
				"У вас 5+ агентов, требующих координации",
				"Центральный контроль предотвращает конфликты",
				"Понятная цепочка команд",
			},
			Benefits: []string{
				"Единый источник правды для задач",
				"Параллельное выполнение где возможно",
				"Автоматическое разрешение конфликтов",
			},
		},
		adviceSequential: {
			Reason: "Последовательный процесс для небольших команд",
			Why: []string{
				"Меньше агентов = проще координация",
				"Предсказуемый порядок выполнения",
				"Проще отлаживать проблемы",
			},
			Benefits: []string{
				"Понятный пошаговый процесс",
				"Меньше накладных расходов",
				"Прозрачное отслеживание прогресса",
			},
		},
		adviceMediumAutonomy: {
			Reason: "Средняя автономия балансирует скорость и контроль",
			Why: []string{
				"Агенты работают независимо над рутинными задачами",
				"Критические решения требуют вашего одобрения",
				"Лучший баланс для большинства проектов",
			},
			Benefits: []string{
				"Быстрее рутинная работа",
				"Контроль над важными решениями",
				"Возможность учиться на предложениях агентов",
			},
		},
		adviceQuality: {
			Reason: "Качество в приоритете обеспечивает долгосрочный успех",
			Why: []string{
				"Технический долг дорого исправлять позже",
				"Production приложениям нужна надёжность",
				"Затраты на поддержку снижаются с качеством",
			},
			Benefits: []string{
				"Меньше багов в production",
				"Легче onboarding новых разработчиков",
				"Ниже долгосрочные затраты",
			},
		},
		adviceSpeed: {
			Reason: "Скорость в приоритете для быстрого прототипирования",
			Why: []string{
				"Описание упоминает быструю доставку",
				"Валидация MVP до больших инвестиций",
				"Преимущество time-to-market",
			},
			Benefits: []string{
				"Быстрый цикл обратной связи",
				"Быстрая итерация идей",
				"Ранняя валидация рынка",
			},
		},
		adviceStrictStyle: {
			Reason: "Строгие стандарты обеспечивают консистентность",
			Why: []string{
				"Несколько агентов пишут код",
				"Консистентность снижает когнитивную нагрузку",
				"Легче code review",
			},
			Benefits: []string{
				"Единообразная кодовая база",
				"Автоматическое форматирование",
				"Меньше споров о стиле",
			},
		},
		adviceFullAccess: {
			Reason: "Полный доступ для автономной разработки",
			Why: []string{
				"Агентам нужно создавать структуру проекта",
				"Меньше прерываний = быстрее прогресс",
				"Можно ревьюить через Git коммиты",
			},
			Benefits: []string{
				"Автономный scaffolding",
				"Полная имплементация фич",
				"Меньше узких мест одобрения",
			},
		},
		adviceStandard: {
			Reason:   "Стандартная рекомендация",
			Why:      []string{"Оптимальный выбор по умолчанию"},
			Benefits: []string{"Проверенная настройка"},
		},
	},
}

// contextKey names a short context sentence derived from prior answers.
type contextKey string

const (
	ctxDetected       contextKey = "detected"        // %q — idea snippet
	ctxMobileKeywords contextKey = "mobile_keywords" // no args
	ctxAIKeywords     contextKey = "ai_keywords"     // no args
	ctxUniversal      contextKey = "universal"       // no args
	ctxProjectType    contextKey = "project_type"    // %s — project type id
	ctxSimpleStart    contextKey = "simple_start"    // no args
	ctxAIProject      contextKey = "ai_project"      // no args
	ctxProvenWeb      contextKey = "proven_web"      // no args
	ctxMinimalBase    contextKey = "minimal_base"    // no args
	ctxTeamSize       contextKey = "team_size"       // %d — roster size
	ctxBalance        contextKey = "balance"         // no args
	ctxCoordinator    contextKey = "coordinator"     // %d — roster size
	ctxSmallTeam      contextKey = "small_team"      // no args
	ctxSpeedFocus     contextKey = "speed_focus"     // no args
	ctxProduction     contextKey = "production"      // no args
	ctxConsistency    contextKey = "consistency"     // no args
)

var contextTexts = map[Language]map[contextKey]string{
	LangEN: {
		ctxDetected:       "Detected in description: %q",
		ctxMobileKeywords: "Mobile keywords detected",
		ctxAIKeywords:     "AI/ML keywords detected",
		ctxUniversal:      "Universal choice for most projects",
		ctxProjectType:    "Recommendation based on project type: %s",
		ctxSimpleStart:    "Optimal for starting and simple projects",
		ctxAIProject:      "AI stack for your AI project",
		ctxProvenWeb:      "Proven stack for web development",
		ctxMinimalBase:    "Minimal base set",
		ctxTeamSize:       "Team of %d agents based on project analysis",
		ctxBalance:        "Optimal balance for most projects",
		ctxCoordinator:    "You have %d agents — need a coordinator",
		ctxSmallTeam:      "Sufficient for a small team",
		ctxSpeedFocus:     "Detected: emphasis on speed",
		ctxProduction:     "Recommended for production projects",
		ctxConsistency:    "Consistency is important when working with agents",
	},
	LangRU: {
		ctxDetected:       "Обнаружено в описании: %q",
		ctxMobileKeywords: "Обнаружены мобильные ключевые слова",
		ctxAIKeywords:     "Обнаружены AI/ML ключевые слова",
		ctxUniversal:      "Универсальный выбор для большинства проектов",
		ctxProjectType:    "Рекомендация на основе типа проекта: %s",
		ctxSimpleStart:    "Оптимально для старта и простых проектов",
		ctxAIProject:      "AI-стек для вашего проекта с ИИ",
		ctxProvenWeb:      "Проверенный стек для веб-разработки",
		ctxMinimalBase:    "Минимальный базовый набор",
		ctxTeamSize:       "Команда из %d агентов на основе анализа проекта",
		ctxBalance:        "Оптимальный баланс для большинства проектов",
		ctxCoordinator:    "У вас %d агентов — нужен координатор",
		ctxSmallTeam:      "Достаточно для маленькой команды",
		ctxSpeedFocus:     "Обнаружено: акцент на скорости",
		ctxProduction:     "Рекомендуется для production проектов",
		ctxConsistency:    "Консистентность важна при работе с агентами",
	},
}
