package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/LJTian/RetroNews/internal/config"
	"github.com/LJTian/RetroNews/internal/feed"
	"github.com/LJTian/RetroNews/internal/logger"
	"github.com/LJTian/RetroNews/internal/view"
	"github.com/LJTian/RetroNews/pkg/httpclient"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagAPIBase string
	flagLimit   int
	flagTag     string
	flagCron    string
	flagTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "retronews",
	Short: "Retro-style reader for a syndicated article feed",
	Long:  "retronews fetches articles from the feed backend and renders them as a ranked, Hacker News style list.",
	RunE:  runBrowse,
	// 参数错误时不打印整段用法
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIBase, "api-base", "", "feed backend base URL (overrides FEED_API_BASE)")
	rootCmd.PersistentFlags().IntVar(&flagLimit, "limit", 0, "page size sent as ?limit= (overrides FEED_PAGE_SIZE)")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "per-request timeout (default: wait for the backend)")

	showCmd.Flags().StringVar(&flagTag, "tag", "", "category tag, used with the category view")
	watchCmd.Flags().StringVar(&flagTag, "tag", "", "category tag, used with the category view")
	watchCmd.Flags().StringVar(&flagCron, "cron", "", "refresh schedule (overrides WATCH_CRON_SPEC)")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "retronews %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// loadConfig 读取配置并应用命令行覆盖
func loadConfig() *config.Config {
	cfg := config.Load()
	if flagAPIBase != "" {
		cfg.APIBase = strings.TrimRight(strings.TrimSpace(flagAPIBase), "/")
	}
	if flagLimit > 0 {
		cfg.PageSize = flagLimit
	}
	if flagCron != "" {
		cfg.WatchCronSpec = flagCron
	}
	return cfg
}

// newLogger 在终端被界面占用时（watch / browse）只写文件，否则写 stderr
func newLogger(cfg *config.Config, interactive bool) (logger.Logger, error) {
	if interactive && cfg.LogFile == "" {
		return logger.NopLogger{}, nil
	}
	return logger.New(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})
}

func newLoader(cfg *config.Config, log logger.Logger) *view.Loader {
	client := feed.NewClient(cfg.APIBase, httpclient.NewRestyClient(flagTimeout), log)
	return view.NewLoader(client, cfg.PageSize)
}

// parseView 解析位置参数中的视图名，缺省为 top
func parseView(args []string) (view.ID, error) {
	if len(args) == 0 {
		return view.Top, nil
	}
	v, ok := view.Lookup(view.ID(args[0]))
	if !ok {
		names := make([]string, 0, len(view.Order))
		for _, id := range view.Order {
			names = append(names, string(id))
		}
		return "", fmt.Errorf("%w %q (expected one of %s)", view.ErrUnknownView, args[0], strings.Join(names, ", "))
	}
	return v.ID, nil
}
