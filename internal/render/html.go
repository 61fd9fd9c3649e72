package render

import (
	"embed"
	"html/template"
	"io"
	"net/url"

	"github.com/LJTian/RetroNews/internal/processor"
	"github.com/LJTian/RetroNews/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("retronews").ParseFS(templateFS, "templates/*.html"))

// Templates 供 gin 的 SetHTMLTemplate 使用
func Templates() *template.Template {
	return templates
}

type NavItem struct {
	ID        view.ID
	ElementID string
	Label     string
	Href      string
	Active    bool
}

type CategoryOption struct {
	Value    string
	Selected bool
}

// Page 是整页渲染所需的数据
type Page struct {
	Title      string
	Active     view.ID
	Tag        string
	Nav        []NavItem
	Categories []CategoryOption
	Rows       []processor.DisplayRow
	Notice     string
	Stylesheet string
}

// NewPage 组装导航和分类下拉框；当前分类不在配置列表中时也会出现在下拉框里
func NewPage(active view.ID, tag string, categories []string, rows []processor.DisplayRow) Page {
	p := Page{
		Title:  "Retro News",
		Active: active,
		Tag:    tag,
		Rows:   rows,
	}
	if p.Rows == nil {
		p.Rows = []processor.DisplayRow{}
	}

	for _, id := range view.Order {
		if id == view.Category {
			continue
		}
		v, _ := view.Lookup(id)
		p.Nav = append(p.Nav, NavItem{
			ID:        id,
			ElementID: string(id) + "Btn",
			Label:     v.Label,
			Href:      "/?view=" + url.QueryEscape(string(id)),
			Active:    id == active,
		})
	}

	seen := false
	for _, c := range categories {
		selected := active == view.Category && c == tag
		seen = seen || selected
		p.Categories = append(p.Categories, CategoryOption{Value: c, Selected: selected})
	}
	if active == view.Category && tag != "" && !seen {
		p.Categories = append(p.Categories, CategoryOption{Value: tag, Selected: true})
	}
	return p
}

func HTML(w io.Writer, page Page) error {
	return templates.ExecuteTemplate(w, "index.html", page)
}

// Fragment 只渲染文章区域 #articles
func Fragment(w io.Writer, rows []processor.DisplayRow) error {
	return templates.ExecuteTemplate(w, "articles", rows)
}
