package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/LJTian/RetroNews/internal/api"
	"github.com/LJTian/RetroNews/internal/config"
	"github.com/LJTian/RetroNews/internal/feed"
	"github.com/LJTian/RetroNews/internal/logger"
	"github.com/LJTian/RetroNews/internal/view"
	"github.com/LJTian/RetroNews/pkg/httpclient"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	zl, err := logger.New(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer zl.Sync()

	client := feed.NewClient(cfg.APIBase, httpclient.NewRestyClient(0), zl)
	loader := view.NewLoader(client, cfg.PageSize)

	r := gin.Default()
	// 若配置了全局访问密码，则启用 Basic Auth 保护（/health 仍然免认证）
	r.Use(api.BasicAuth(cfg.BasicAuthUser, cfg.BasicAuthPass, "/health"))

	// 若配置了静态目录，则托管 /assets，存在 style.css 时页面会引用它
	stylesheet := ""
	if cfg.WebRoot != "" {
		assetsDir := filepath.Join(cfg.WebRoot, "assets")
		r.Static("/assets", assetsDir)
		if _, err := os.Stat(filepath.Join(assetsDir, "style.css")); err == nil {
			stylesheet = "/assets/style.css"
		}
	}

	server := api.NewServer(loader, api.Options{
		Categories: cfg.Categories,
		Stylesheet: stylesheet,
		Logger:     zl,
	})
	server.RegisterRoutes(r)

	addr := ":" + cfg.AppPort
	zl.InfoObj("starting web server", "server_start", map[string]any{"addr": addr, "api_base": cfg.APIBase})
	if err := r.Run(addr); err != nil {
		zl.ErrorObj("server exit", "server_exit", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
