package feed

import (
	"context"
	"errors"
)

// RawArticle 是后端返回的一条原始记录。不同来源的字段名和时间格式不同，
// 解码时数字保留为 json.Number，由 processor 统一归一化
type RawArticle map[string]any

var (
	ErrTransport        = errors.New("feed: transport failure")
	ErrUnexpectedStatus = errors.New("feed: unexpected status")
	ErrMalformedBody    = errors.New("feed: malformed body")
)

// Result 区分“没有结果”和“拉取失败”；失败时 Articles 为空切片
type Result struct {
	URL      string
	Articles []RawArticle
	Err      error
}

func (r Result) Failed() bool {
	return r.Err != nil
}

// Fetcher 抽象后端数据源
type Fetcher interface {
	Fetch(ctx context.Context, endpoint, query string) Result
}
