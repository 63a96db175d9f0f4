package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"GAMING_STORE_ADDR", "DATABASE_URL", "BUILDER_BUDGET_MIN", "BUILDER_BUDGET_MAX", "BUILDER_BUDGET_STEP", "SAVED_BUILDS_LIMIT", "ALLOW_RESET_CATALOG"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.Addr)
	}
	if cfg.BudgetMin != 30000 || cfg.BudgetMax != 300000 || cfg.BudgetStep != 5000 {
		t.Fatalf("unexpected budget defaults %+v", cfg)
	}
	if cfg.SavedBuildsLimit != 10 {
		t.Fatalf("expected saved builds limit 10, got %d", cfg.SavedBuildsLimit)
	}
	if cfg.AllowResetCatalog {
		t.Fatalf("reset must be disabled by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GAMING_STORE_ADDR", ":9090")
	t.Setenv("BUILDER_BUDGET_STEP", "1000")
	t.Setenv("SAVED_BUILDS_LIMIT", "not-a-number")
	t.Setenv("ALLOW_RESET_CATALOG", "1")

	cfg := Load()
	if cfg.Addr != ":9090" {
		t.Fatalf("expected :9090, got %q", cfg.Addr)
	}
	if cfg.BudgetStep != 1000 {
		t.Fatalf("expected step 1000, got %d", cfg.BudgetStep)
	}
	if cfg.SavedBuildsLimit != 10 {
		t.Fatalf("malformed value should fall back, got %d", cfg.SavedBuildsLimit)
	}
	if !cfg.AllowResetCatalog {
		t.Fatalf("expected reset to be allowed")
	}
}

func TestLoad_CatalogAdmins(t *testing.T) {
	t.Setenv("CATALOG_ADMIN_EMAILS", " ops@example.com, ,Buyer@Example.com ")
	cfg := Load()
	if len(cfg.CatalogAdmins) != 2 || cfg.CatalogAdmins[0] != "ops@example.com" || cfg.CatalogAdmins[1] != "Buyer@Example.com" {
		t.Fatalf("unexpected admins %q", cfg.CatalogAdmins)
	}

	t.Setenv("CATALOG_ADMIN_EMAILS", "")
	if admins := Load().CatalogAdmins; len(admins) != 0 {
		t.Fatalf("expected no admins, got %q", admins)
	}
}
