package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr        string
	DatabaseURL string
	JWTSecret   string

	LogLevel  string
	LogFormat string

	// Budget slider bounds used by the build recommender.
	BudgetMin  int
	BudgetMax  int
	BudgetStep int

	SavedBuildsLimit  int
	AllowResetCatalog bool
	// Emails allowed to create, update and delete catalog items. Empty
	// disables catalog writes.
	CatalogAdmins []string
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		Addr:              getString("GAMING_STORE_ADDR", ":8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		LogLevel:          getString("LOG_LEVEL", "info"),
		LogFormat:         getString("LOG_FORMAT", "json"),
		BudgetMin:         getInt("BUILDER_BUDGET_MIN", 30000),
		BudgetMax:         getInt("BUILDER_BUDGET_MAX", 300000),
		BudgetStep:        getInt("BUILDER_BUDGET_STEP", 5000),
		SavedBuildsLimit:  getInt("SAVED_BUILDS_LIMIT", 10),
		AllowResetCatalog: os.Getenv("ALLOW_RESET_CATALOG") == "1",
		CatalogAdmins:     getList("CATALOG_ADMIN_EMAILS"),
	}
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getInt falls back when the variable is unset, malformed or not positive.
func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// getList splits a comma separated variable, dropping blanks.
func getList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
