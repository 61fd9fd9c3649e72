package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for key := range defaults {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.AppPort != "9000" {
		t.Fatalf("AppPort = %q, want %q", cfg.AppPort, "9000")
	}
	if cfg.APIBase != "http://localhost:8000" {
		t.Fatalf("APIBase = %q, want %q", cfg.APIBase, "http://localhost:8000")
	}
	if cfg.PageSize != 50 {
		t.Fatalf("PageSize = %d, want 50", cfg.PageSize)
	}
	if len(cfg.Categories) != 2 || cfg.Categories[0] != "design" || cfg.Categories[1] != "psychology" {
		t.Fatalf("Categories = %v, want [design psychology]", cfg.Categories)
	}
	if cfg.WatchCronSpec != "*/5 * * * *" {
		t.Fatalf("WatchCronSpec = %q", cfg.WatchCronSpec)
	}
}

func TestLoadReadsAuthAndPorts(t *testing.T) {
	// t.Setenv 会在测试结束后恢复原值
	t.Setenv("APP_PORT", "1234")
	t.Setenv("APP_BASIC_USER", "user")
	t.Setenv("APP_BASIC_PASS", "pass")

	cfg := Load()
	if cfg.AppPort != "1234" {
		t.Fatalf("AppPort = %q, want %q", cfg.AppPort, "1234")
	}
	if cfg.BasicAuthUser != "user" || cfg.BasicAuthPass != "pass" {
		t.Fatalf("BasicAuthUser/Pass not loaded correctly: %+v", cfg)
	}
}

func TestLoadNormalizesFeedSettings(t *testing.T) {
	t.Setenv("FEED_API_BASE", " https://news.example.com/api/ ")
	t.Setenv("FEED_PAGE_SIZE", "-3")
	t.Setenv("FEED_CATEGORIES", " ux, ,ai ,")

	cfg := Load()
	if cfg.APIBase != "https://news.example.com/api" {
		t.Fatalf("APIBase = %q, want trailing slash trimmed", cfg.APIBase)
	}
	if cfg.PageSize != DefaultPageSize {
		t.Fatalf("PageSize = %d, want fallback %d", cfg.PageSize, DefaultPageSize)
	}
	want := []string{"ux", "ai"}
	if len(cfg.Categories) != len(want) {
		t.Fatalf("Categories = %v, want %v", cfg.Categories, want)
	}
	for i, c := range want {
		if cfg.Categories[i] != c {
			t.Fatalf("Categories[%d] = %q, want %q", i, cfg.Categories[i], c)
		}
	}
}

func TestLoadPageSizeFromEnv(t *testing.T) {
	t.Setenv("FEED_PAGE_SIZE", "20")
	if got := Load().PageSize; got != 20 {
		t.Fatalf("PageSize = %d, want 20", got)
	}
}
