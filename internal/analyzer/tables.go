package analyzer

// Static lookup tables for manifest parsing, classification, and agent
// suggestion. All tables are read-only after process start and shared
// across concurrent analyses without locking.

// keywordTag maps a keyword found in a manifest to a canonical technology tag.
type keywordTag struct {
	keyword string
	tag     string
}

// nodeDependencyTags maps package.json dependency names (exact key match)
// to technology tags.
var nodeDependencyTags = map[string]string{
	"react":         "react",
	"react-native":  "react-native",
	"vue":           "vue",
	"angular":       "angular",
	"@angular/core": "angular",
	"svelte":        "svelte",
	"next":          "next",
	"nuxt":          "nuxt",
	"express":       "express",
	"fastify":       "fastify",
	"koa":           "koa",
	"nest":          "nestjs",
	"@nestjs/core":  "nestjs",
	"electron":      "electron",
	"typescript":    "typescript",
	"vite":          "vite",
	"webpack":       "webpack",
	"jest":          "jest",
	"vitest":        "vitest",
	"cypress":       "cypress",
	"playwright":    "playwright",
	"pg":            "postgres",
	"postgres":      "postgres",
	"mysql":         "mysql",
	"mysql2":        "mysql",
	"mongodb":       "mongodb",
	"mongoose":      "mongodb",
}

// pythonKeywordTags maps requirements.txt package keywords (substring match
// against the lowercased specifier) to technology tags.
var pythonKeywordTags = []keywordTag{
	{"django", "django"},
	{"flask", "flask"},
	{"fastapi", "fastapi"},
	{"tornado", "tornado"},
	{"pyramid", "pyramid"},
	{"pandas", "pandas"},
	{"numpy", "numpy"},
	{"tensorflow", "tensorflow"},
	{"pytorch", "pytorch"},
	{"scikit-learn", "sklearn"},
	{"pytest", "pytest"},
	{"psycopg", "postgres"},
	{"pymongo", "mongodb"},
}

// rustDependencyTags maps Cargo.toml [dependencies] keys (exact key match)
// to technology tags.
var rustDependencyTags = map[string]string{
	"actix-web": "actix",
	"rocket":    "rocket",
	"axum":      "axum",
	"warp":      "warp",
	"tokio":     "tokio",
	"async-std": "async-std",
	"tauri":     "tauri",
}

// goImportTags maps go.mod import-path fragments (substring match per line)
// to technology tags.
var goImportTags = []keywordTag{
	{"gin-gonic/gin", "gin"},
	{"gofiber/fiber", "fiber"},
	{"labstack/echo", "echo"},
	{"gorilla/mux", "gorilla"},
}

// manifestKinds is the fixed set of manifest files probed at the project
// root, each with the parser routine for its format.
var manifestKinds = []struct {
	name  string
	parse func(*Parser, []byte) ([]string, error)
}{
	{"package.json", (*Parser).ParsePackageJSON},
	{"requirements.txt", (*Parser).ParseRequirements},
	{"Cargo.toml", (*Parser).ParseCargoTOML},
	{"go.mod", (*Parser).ParseGoMod},
}

// Classification signal sets. Rule order in classify depends on these sets
// staying disjoint in meaning, not in membership.
var (
	frontendTags = map[string]bool{
		"react":   true,
		"vue":     true,
		"angular": true,
		"svelte":  true,
		"next":    true,
		"nuxt":    true,
	}

	backendTags = map[string]bool{
		"express": true,
		"fastify": true,
		"koa":     true,
		"nestjs":  true,
		"django":  true,
		"flask":   true,
		"fastapi": true,
		"actix":   true,
		"rocket":  true,
		"axum":    true,
		"warp":    true,
		"gin":     true,
		"fiber":   true,
		"echo":    true,
		"gorilla": true,
	}

	mobileTags = map[string]bool{
		"react-native": true,
		"flutter":      true,
	}

	mobileExtensions = []string{"swift", "kotlin"}

	desktopTags = map[string]bool{
		"tauri":    true,
		"electron": true,
	}
)

// Suggestion tables. Every project gets the base agents; the classification
// adds its own set; detected technologies can add more on top.
var (
	baseAgents = []string{"code-reviewer", "test-engineer"}

	agentsByType = map[ProjectType][]string{
		WebFullstack: {"fullstack-developer", "api-designer", "frontend-developer", "backend-developer"},
		BackendApi:   {"backend-developer", "api-designer", "database-designer"},
		Frontend:     {"frontend-developer", "ux-designer"},
		Mobile:       {"mobile-developer", "ux-designer"},
		Desktop:      {"frontend-developer", "backend-developer"},
		Library:      {"tech-writer", "api-documenter"},
		Unknown:      {"fullstack-developer"},
	}

	databaseTags = map[string]bool{
		"postgres": true,
		"mysql":    true,
		"mongodb":  true,
	}

	testFrameworkTags = map[string]bool{
		"jest":       true,
		"vitest":     true,
		"pytest":     true,
		"cypress":    true,
		"playwright": true,
	}
)
