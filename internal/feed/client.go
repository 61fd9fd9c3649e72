package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/LJTian/RetroNews/internal/logger"
	"github.com/LJTian/RetroNews/pkg/httpclient"
)

const (
	maxResponseBytes = 4 << 20 // 4MB
	maxSnippetBytes  = 256
)

// Client 通过 HTTP GET 从后端拉取文章列表
type Client struct {
	base string
	http httpclient.Client
	log  logger.Logger
}

// NewClient 不设置超时：请求一直挂起直到底层连接返回，或 ctx 被取消
func NewClient(base string, hc httpclient.Client, log logger.Logger) *Client {
	if hc == nil {
		hc = httpclient.NewRestyClient(0)
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Client{base: base, http: hc, log: log}
}

// BuildURL 拼接 base + endpoint，query 非空时才追加 "?query"
func BuildURL(base, endpoint, query string) string {
	u := base + endpoint
	if query != "" {
		u += "?" + query
	}
	return u
}

func (c *Client) Fetch(ctx context.Context, endpoint, query string) Result {
	url := BuildURL(c.base, endpoint, query)

	articles, err := c.fetch(ctx, url)
	if err != nil {
		c.log.WarnObj("fetch articles failed", "fetch_error", map[string]any{
			"url":   url,
			"error": err.Error(),
		})
		return Result{URL: url, Articles: []RawArticle{}, Err: err}
	}

	c.log.DebugObj("fetched articles", "fetch_done", map[string]any{
		"url":   url,
		"count": len(articles),
	})
	return Result{URL: url, Articles: articles}
}

// FetchArticles 是对 Fetch 的降级封装：任何失败都只记录日志并返回空切片
func (c *Client) FetchArticles(ctx context.Context, endpoint, query string) []RawArticle {
	return c.Fetch(ctx, endpoint, query).Articles
}

func (c *Client) fetch(ctx context.Context, url string) ([]RawArticle, error) {
	resp, err := c.http.Get(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	body := resp.Body()
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w %d body: %s", ErrUnexpectedStatus, resp.StatusCode(), snippet(body))
	}
	if len(body) > maxResponseBytes {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrMalformedBody, maxResponseBytes)
	}

	articles, err := decodeArticles(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	return articles, nil
}

// decodeArticles 只接受一个 JSON 数组；null、对象或尾随内容都视为格式错误
func decodeArticles(body []byte) ([]RawArticle, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var out []RawArticle
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, errors.New("expected a JSON array, got null")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after JSON array")
	}
	return out, nil
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if s == "" {
		return "<empty>"
	}
	if len(s) > maxSnippetBytes {
		return s[:maxSnippetBytes] + "..."
	}
	return s
}
