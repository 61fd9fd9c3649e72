package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/LJTian/RetroNews/internal/logger"
	"github.com/LJTian/RetroNews/internal/view"
	"github.com/robfig/cron/v3"
)

// Job 描述一个需要定时刷新的 view
type Job struct {
	View   view.ID
	Tag    string
	Region view.Region
}

type Scheduler struct {
	cron    *cron.Cron
	loader  *view.Loader
	job     Job
	timeout time.Duration
	log     logger.Logger

	mu      sync.Mutex
	running bool
	// 跟踪 Start 发起的首轮加载，Stop 时一并等待
	first sync.WaitGroup
}

// New 按 cron 表达式定期加载 job 对应的 view；表达式非法时返回错误
func New(spec string, loader *view.Loader, job Job, timeout time.Duration, log logger.Logger) (*Scheduler, error) {
	if log == nil {
		log = logger.NopLogger{}
	}
	if _, err := view.Resolve(job.View, job.Tag, loader.PageSize()); err != nil {
		return nil, err
	}

	s := &Scheduler{
		cron:    cron.New(),
		loader:  loader,
		job:     job,
		timeout: timeout,
		log:     log,
	}

	if _, err := s.cron.AddFunc(spec, s.runOnce); err != nil {
		return nil, err
	}
	return s, nil
}

// Start 立即加载一次，之后按 cron 周期刷新
func (s *Scheduler) Start() {
	s.cron.Start()
	s.first.Add(1)
	go func() {
		defer s.first.Done()
		s.runOnce()
	}()
}

// Stop 停止调度并等待正在执行的任务（包括首轮加载）结束
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.first.Wait()
}

// RunOnce 对外暴露的单次执行入口
func (s *Scheduler) RunOnce() {
	s.runOnce()
}

// Cron 返回底层调度器，便于追加其他任务
func (s *Scheduler) Cron() *cron.Cron {
	return s.cron
}

func (s *Scheduler) runOnce() {
	// 上一轮还没结束时跳过本轮，避免请求堆积
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		s.log.DebugObj("skip refresh, previous still running", "refresh_skip", map[string]any{"view": s.job.View})
		return
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	req, res, err := s.loader.Load(ctx, s.job.View, s.job.Tag, s.job.Region)
	if err != nil {
		s.log.ErrorObj("refresh view failed", "refresh_error", map[string]any{"view": s.job.View, "error": err.Error()})
		return
	}
	s.log.InfoObj("refresh view done", "refresh_done", map[string]any{
		"view":     req.View,
		"endpoint": req.Endpoint,
		"count":    len(res.Articles),
		"failed":   res.Failed(),
		"elapsed":  time.Since(start).String(),
	})
}
