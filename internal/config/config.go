package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultPageSize = 50
)

type Config struct {
	AppPort string

	// APIBase 是后端地址，所有 endpoint 直接拼接在其后
	APIBase    string
	PageSize   int
	Categories []string

	BasicAuthUser string
	BasicAuthPass string
	WebRoot       string

	WatchCronSpec string

	LogLevel string
	LogFile  string
}

var defaults = map[string]any{
	"APP_PORT":        "9000",
	"FEED_API_BASE":   "http://localhost:8000",
	"FEED_PAGE_SIZE":  DefaultPageSize,
	"FEED_CATEGORIES": "design,psychology",
	"APP_BASIC_USER":  "",
	"APP_BASIC_PASS":  "",
	"WEB_ROOT":        "",
	"WATCH_CRON_SPEC": "*/5 * * * *",
	"LOG_LEVEL":       "info",
	"LOG_FILE":        "",
}

// Load 读取环境变量（以及当前目录下可选的 .env 文件），未设置的项使用默认值
func Load() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	for key, def := range defaults {
		v.SetDefault(key, def)
	}

	cfg := &Config{
		AppPort:       v.GetString("APP_PORT"),
		APIBase:       strings.TrimRight(strings.TrimSpace(v.GetString("FEED_API_BASE")), "/"),
		PageSize:      v.GetInt("FEED_PAGE_SIZE"),
		Categories:    splitList(v.GetString("FEED_CATEGORIES")),
		BasicAuthUser: v.GetString("APP_BASIC_USER"),
		BasicAuthPass: v.GetString("APP_BASIC_PASS"),
		WebRoot:       v.GetString("WEB_ROOT"),
		WatchCronSpec: v.GetString("WATCH_CRON_SPEC"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		LogFile:       v.GetString("LOG_FILE"),
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}

	return cfg
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Now returns current time, 方便后续做可测试封装
func Now() time.Time {
	return time.Now()
}
