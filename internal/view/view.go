// Package view maps named views to backend endpoints and runs one
// fetch-and-render cycle into a display region.
package view

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

type ID string

const (
	Top        ID = "top"
	Latest     ID = "latest"
	Category   ID = "category"
	Aggregator ID = "hn"
)

var ErrUnknownView = errors.New("view: unknown view")

// View 是一个具名的 (endpoint, query) 组合
type View struct {
	ID       ID
	Label    string
	Endpoint func(tag string) string
	Query    func(pageSize int) string
}

func limitQuery(pageSize int) string {
	return "limit=" + strconv.Itoa(pageSize)
}

func fixed(endpoint string) func(string) string {
	return func(string) string { return endpoint }
}

var table = map[ID]View{
	Top:        {ID: Top, Label: "Top", Endpoint: fixed("/top"), Query: limitQuery},
	Latest:     {ID: Latest, Label: "Latest", Endpoint: fixed("/latest"), Query: limitQuery},
	Category:   {ID: Category, Label: "Category", Endpoint: categoryEndpoint, Query: limitQuery},
	Aggregator: {ID: Aggregator, Label: "Hacker News", Endpoint: fixed("/hn"), Query: limitQuery},
}

// Order 是各前端展示导航项的顺序
var Order = []ID{Top, Latest, Aggregator, Category}

func categoryEndpoint(tag string) string {
	return "/category/" + EncodeComponent(tag)
}

// EncodeComponent 与浏览器的 encodeURIComponent 行为一致：空格编码为 %20
func EncodeComponent(s string) string {
	escaped := url.QueryEscape(s)
	escaped = strings.ReplaceAll(escaped, "+", "%20")
	// encodeURIComponent 不转义这几个字符
	for _, keep := range []string{"!", "'", "(", ")", "*"} {
		escaped = strings.ReplaceAll(escaped, url.QueryEscape(keep), keep)
	}
	return escaped
}

// Lookup 返回 id 对应的 View
func Lookup(id ID) (View, bool) {
	v, ok := table[ID(strings.ToLower(strings.TrimSpace(string(id))))]
	return v, ok
}

// Request 是解析后的一次请求目标
type Request struct {
	View     ID
	Tag      string
	Endpoint string
	Query    string
}

// Resolve 将 (id, tag) 解析为具体的 endpoint 和 query。
// 分类为空串时回退到 top；只含空白的分类照常请求。
func Resolve(id ID, tag string, pageSize int) (Request, error) {
	v, ok := Lookup(id)
	if !ok {
		return Request{}, fmt.Errorf("%w %q", ErrUnknownView, id)
	}
	if v.ID == Category && tag == "" {
		v = table[Top]
	}
	if v.ID != Category {
		tag = ""
	}
	return Request{
		View:     v.ID,
		Tag:      tag,
		Endpoint: v.Endpoint(tag),
		Query:    v.Query(pageSize),
	}, nil
}
