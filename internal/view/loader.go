package view

import (
	"context"
	"sync"
	"time"

	"github.com/LJTian/RetroNews/internal/config"
	"github.com/LJTian/RetroNews/internal/feed"
	"github.com/LJTian/RetroNews/internal/processor"
)

// Region 是一次渲染的目标区域，每次 Replace 都整体替换之前的内容
type Region interface {
	Replace(rows []processor.DisplayRow)
}

// Loader 执行一次“拉取 + 渲染”。新的请求不会取消仍在进行中的请求，
// 谁最后完成谁的结果覆盖区域。
type Loader struct {
	fetcher  feed.Fetcher
	pageSize int
	now      func() time.Time
}

func NewLoader(fetcher feed.Fetcher, pageSize int) *Loader {
	if pageSize <= 0 {
		pageSize = config.DefaultPageSize
	}
	return &Loader{fetcher: fetcher, pageSize: pageSize, now: config.Now}
}

// WithClock 替换渲染时使用的时钟
func (l *Loader) WithClock(now func() time.Time) *Loader {
	cp := *l
	cp.now = now
	return &cp
}

func (l *Loader) PageSize() int {
	return l.pageSize
}

// Fetch 只拉取，不渲染
func (l *Loader) Fetch(ctx context.Context, id ID, tag string) (Request, feed.Result, error) {
	req, err := Resolve(id, tag, l.pageSize)
	if err != nil {
		return Request{}, feed.Result{Articles: []feed.RawArticle{}}, err
	}
	return req, l.fetcher.Fetch(ctx, req.Endpoint, req.Query), nil
}

// Load 拉取 view 的数据，用渲染时刻的 now 生成行并整体替换 region
func (l *Loader) Load(ctx context.Context, id ID, tag string, region Region) (Request, feed.Result, error) {
	req, res, err := l.Fetch(ctx, id, tag)
	if err != nil {
		return req, res, err
	}
	region.Replace(processor.Present(res.Articles, l.now()))
	return req, res, nil
}

// Rows 与 Load 相同，但直接返回生成的行
func (l *Loader) Rows(ctx context.Context, id ID, tag string) ([]processor.DisplayRow, Request, feed.Result, error) {
	var buf Buffer
	req, res, err := l.Load(ctx, id, tag, &buf)
	return buf.Rows(), req, res, err
}

// Buffer 是保存在内存里的 Region
type Buffer struct {
	mu   sync.Mutex
	rows []processor.DisplayRow
}

func (b *Buffer) Replace(rows []processor.DisplayRow) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rows = rows
}

func (b *Buffer) Rows() []processor.DisplayRow {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.rows == nil {
		return []processor.DisplayRow{}
	}
	out := make([]processor.DisplayRow, len(b.rows))
	copy(out, b.rows)
	return out
}
