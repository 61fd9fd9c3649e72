package processor

import (
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/LJTian/RetroNews/internal/feed"
)

// DisplayRow 是一条可直接渲染的行，每次渲染都重新计算
type DisplayRow struct {
	ID          string `json:"id"`
	Rank        int    `json:"rank"`
	RankLabel   string `json:"rankLabel"`
	Title       string `json:"title"`
	Link        string `json:"link"`
	Domain      string `json:"domain"`
	DomainLabel string `json:"domainLabel"`
	Points      string `json:"points"`
	Author      string `json:"author"`
	Age         string `json:"age"`
	Comments    string `json:"comments"`
	Meta        string `json:"meta"`
	// Source 单独展示，不拼进 Meta
	Source string `json:"source"`
}

// Present 按接收顺序为每条记录生成一行，排名从 1 开始；不排序、不过滤。
// now 由调用方在渲染时传入。
func Present(raws []feed.RawArticle, now time.Time) []DisplayRow {
	rows := make([]DisplayRow, 0, len(raws))
	for i, raw := range raws {
		rows = append(rows, BuildRow(i+1, Normalize(raw), now))
	}
	return rows
}

func BuildRow(rank int, a Article, now time.Time) DisplayRow {
	row := DisplayRow{
		Rank:      rank,
		RankLabel: strconv.Itoa(rank) + ".",
		Title:     a.Title,
		Link:      a.Link,
		Domain:    Domain(a.Link),
		Points:    PointsLabel(a.Points),
		Author:    AuthorLabel(a.Author),
		Age:       AgeLabel(a.Published, now),
		Comments:  CommentsLabel(a.Comments),
	}
	if a.Link != "" {
		row.ID = hashURL(a.Link)
	}
	if a.Source != nil {
		row.Source = *a.Source
	}
	if row.Domain != "" {
		row.DomainLabel = " (" + row.Domain + ")"
	}
	row.Meta = metaLine(row)
	return row
}

// metaLine 直接拼接各标签，分隔符已包含在标签内（" by "、" | "）；只去掉末尾空白
func metaLine(r DisplayRow) string {
	var b strings.Builder
	b.WriteString(r.Points)
	b.WriteString(r.Author)
	if r.Age != "" {
		b.WriteString(" ")
		b.WriteString(r.Age)
	}
	b.WriteString(r.Comments)
	return strings.TrimRight(b.String(), " ")
}

func hashURL(url string) string {
	h := sha1.New()
	h.Write([]byte(url))
	return hex.EncodeToString(h.Sum(nil))
}
