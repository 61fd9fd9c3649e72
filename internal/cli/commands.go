package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/LJTian/RetroNews/internal/render"
	"github.com/LJTian/RetroNews/internal/scheduler"
	"github.com/LJTian/RetroNews/internal/tui"
	"github.com/LJTian/RetroNews/internal/view"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [top|latest|hn|category]",
	Short: "Fetch a view once and print it",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

var watchCmd = &cobra.Command{
	Use:   "watch [top|latest|hn|category]",
	Short: "Keep a view on screen and refresh it on a schedule",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWatch,
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Launch the interactive reader",
	RunE:  runBrowse,
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseView(args)
	if err != nil {
		return err
	}
	cfg := loadConfig()
	log, err := newLogger(cfg, false)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	loader := newLoader(cfg, log)
	req, err := view.Resolve(id, flagTag, loader.PageSize())
	if err != nil {
		return err
	}

	term := render.NewTerminal(cmd.OutOrStdout(), false, 0, func() string { return title(req) })
	// 拉取失败时输出空列表，命令本身不报错
	_, _, err = loader.Load(contextOf(cmd), id, flagTag, term)
	return err
}

func runWatch(cmd *cobra.Command, args []string) error {
	id, err := parseView(args)
	if err != nil {
		return err
	}
	cfg := loadConfig()
	log, err := newLogger(cfg, true)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	loader := newLoader(cfg, log)
	req, err := view.Resolve(id, flagTag, loader.PageSize())
	if err != nil {
		return err
	}

	term := render.NewTerminal(cmd.OutOrStdout(), true, 0, func() string {
		return title(req) + "  (refresh: " + cfg.WatchCronSpec + ", ctrl+c to quit)"
	})
	s, err := scheduler.New(cfg.WatchCronSpec, loader, scheduler.Job{View: id, Tag: flagTag, Region: term}, flagTimeout, log)
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}

	ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.Start()
	<-ctx.Done()
	s.Stop()
	return nil
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	log, err := newLogger(cfg, true)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	return tui.Run(tui.Options{
		Loader:     newLoader(cfg, log),
		Categories: cfg.Categories,
	})
}

// title 是终端输出的标题行，例如 "Retro News · Category: design"
func title(req view.Request) string {
	v, _ := view.Lookup(req.View)
	s := "Retro News · " + v.Label
	if req.Tag != "" {
		s += ": " + req.Tag
	}
	return s
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
