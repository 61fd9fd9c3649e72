package processor

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/LJTian/RetroNews/internal/feed"
)

// 同一属性可能出现在多个字段名下，按顺序取第一个存在的
var (
	linkKeys     = []string{"link", "url"}
	pointsKeys   = []string{"points", "score"}
	authorKeys   = []string{"author", "by"}
	commentsKeys = []string{"comments", "descendants"}
)

const (
	titleKey = "title"
	// 来源名称，例如 RSS 源的站点名
	sourceKey = "source"
	// feedparser 的 struct_time：[年, 月(从 1 开始), 日, 时, 分, 秒, ...]
	tupleKey = "published_parsed"
	// Unix 秒
	epochKey = "time"

	minTupleLen = 6
)

// Article 是归一化后的严格结构；指针为 nil 表示字段缺失
type Article struct {
	Title     string
	Link      string
	Published *time.Time
	Points    *float64
	Author    *string
	// Comments 保留原始写法（数字或字符串），只在展示时使用
	Comments *string
	Source   *string
}

// Normalize 将一条松散的原始记录映射为 Article。
// 字符串字段只有在非空时才算存在；数字字段 0 也算存在。
func Normalize(raw feed.RawArticle) Article {
	a := Article{
		Link:      firstString(raw, linkKeys),
		Published: publishedAt(raw),
		Points:    firstNumber(raw, pointsKeys),
		Comments:  commentsValue(raw),
	}
	if title, ok := raw[titleKey].(string); ok {
		a.Title = title
	}
	if author := firstString(raw, authorKeys); author != "" {
		a.Author = &author
	}
	if source := firstString(raw, []string{sourceKey}); source != "" {
		a.Source = &source
	}
	return a
}

func firstString(raw feed.RawArticle, keys []string) string {
	for _, k := range keys {
		if s, ok := raw[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func firstNumber(raw feed.RawArticle, keys []string) *float64 {
	for _, k := range keys {
		if f, ok := toFloat(raw[k]); ok {
			return &f
		}
	}
	return nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// publishedAt：日历元组优先，其次是 Unix 秒；都没有则返回 nil
func publishedAt(raw feed.RawArticle) *time.Time {
	if t, ok := fromTuple(raw[tupleKey]); ok {
		return &t
	}
	if secs, ok := toFloat(raw[epochKey]); ok {
		t := time.UnixMilli(int64(secs * 1000)).UTC()
		return &t
	}
	return nil
}

func fromTuple(v any) (time.Time, bool) {
	parts, ok := v.([]any)
	if !ok || len(parts) < minTupleLen {
		return time.Time{}, false
	}
	var c [minTupleLen]int
	for i := range c {
		f, ok := toFloat(parts[i])
		if !ok {
			return time.Time{}, false
		}
		c[i] = int(f)
	}
	return time.Date(c[0], time.Month(c[1]), c[2], c[3], c[4], c[5], 0, time.UTC), true
}

func commentsValue(raw feed.RawArticle) *string {
	for _, k := range commentsKeys {
		switch v := raw[k].(type) {
		case string:
			if v != "" {
				return &v
			}
		default:
			if f, ok := toFloat(v); ok {
				s := formatNumber(f)
				return &s
			}
		}
	}
	return nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// isOne 用于单复数判断，字符串形式的 "1" 也算
func isOne(s string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil && f == 1
}
