package tui

import (
	"context"
	"strings"
	"time"

	"github.com/LJTian/RetroNews/internal/browser"
	"github.com/LJTian/RetroNews/internal/config"
	"github.com/LJTian/RetroNews/internal/feed"
	"github.com/LJTian/RetroNews/internal/processor"
	"github.com/LJTian/RetroNews/internal/render"
	"github.com/LJTian/RetroNews/internal/view"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type mode int

const (
	modeNormal mode = iota
	modeCategory
)

type App struct {
	loader     *view.Loader
	categories []string
	open       func(string) error
	now        func() time.Time

	// 当前请求的视图；拉取结果保存原始数据，渲染时再生成行
	req     view.Request
	raws    []feed.RawArticle
	failed  bool
	loading bool
	cursor  int
	offset  int
	mode    mode
	err     error

	width  int
	height int

	input   textinput.Model
	spinner spinner.Model
	// 分类输入框中 tab 的轮换位置
	suggest int
}

type Options struct {
	Loader     *view.Loader
	Categories []string
	// Open 为空时使用系统浏览器
	Open func(string) error
	Now  func() time.Time
}

func NewApp(opts Options) *App {
	ti := textinput.New()
	ti.Placeholder = "category tag"
	ti.Prompt = promptStyle.Render("category> ")
	ti.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	a := &App{
		loader:     opts.Loader,
		categories: opts.Categories,
		open:       opts.Open,
		now:        opts.Now,
		input:      ti,
		spinner:    sp,
		raws:       []feed.RawArticle{},
	}
	if a.open == nil {
		a.open = browser.Open
	}
	if a.now == nil {
		a.now = config.Now
	}
	return a
}

// Init 首次打开时加载 top
func (a *App) Init() tea.Cmd {
	return a.switchView(view.Top, "")
}

// switchView 切换当前视图并发起加载。之前未完成的加载不会被取消，
// 谁最后返回谁的结果生效。
func (a *App) switchView(id view.ID, tag string) tea.Cmd {
	req, err := view.Resolve(id, tag, a.loader.PageSize())
	if err != nil {
		a.err = err
		return nil
	}
	a.req = req
	a.loading = true
	return tea.Batch(a.loadCmd(req.View, req.Tag), a.spinner.Tick)
}

// loadCmd 把请求参数拷贝进闭包，避免与后续切换产生竞争
func (a *App) loadCmd(id view.ID, tag string) tea.Cmd {
	loader := a.loader
	return func() tea.Msg {
		req, res, err := loader.Fetch(context.Background(), id, tag)
		if err != nil {
			return loadErrMsg{err: err}
		}
		return articlesLoadedMsg{req: req, res: res}
	}
}

func (a *App) openCmd(link string) tea.Cmd {
	open := a.open
	return func() tea.Msg {
		if err := open(link); err != nil {
			return openErrMsg{err: err}
		}
		return nil
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.Width = msg.Width - lipgloss.Width(a.input.Prompt) - 2
		return a, nil

	case tea.KeyMsg:
		a.err = nil
		return a.handleKey(msg)

	case articlesLoadedMsg:
		// 整体替换，不与之前的结果合并
		a.loading = false
		a.req = msg.req
		a.raws = msg.res.Articles
		if a.raws == nil {
			a.raws = []feed.RawArticle{}
		}
		a.failed = msg.res.Failed()
		a.cursor, a.offset = 0, 0
		return a, nil

	case loadErrMsg:
		a.loading = false
		a.err = msg.err
		return a, nil

	case openErrMsg:
		a.err = msg.err
		return a, nil

	case spinner.TickMsg:
		if a.loading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}
	if a.mode == modeCategory {
		return a.handleCategoryKey(msg)
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "t":
		return a, a.switchView(view.Top, "")
	case "l":
		return a, a.switchView(view.Latest, "")
	case "n":
		return a, a.switchView(view.Aggregator, "")
	case "c":
		a.mode = modeCategory
		a.suggest = 0
		a.input.SetValue(a.req.Tag)
		a.input.CursorEnd()
		a.input.Focus()
		return a, textinput.Blink
	case "r":
		return a, a.switchView(a.req.View, a.req.Tag)
	case "j", "down":
		if a.cursor < len(a.raws)-1 {
			a.cursor++
		}
		return a, nil
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "o", "enter":
		if a.cursor < len(a.raws) {
			link := processor.Normalize(a.raws[a.cursor]).Link
			if link != "" {
				return a, a.openCmd(link)
			}
		}
		return a, nil
	}
	return a, nil
}

func (a *App) handleCategoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeNormal
		a.input.Blur()
		return a, nil
	case "enter":
		a.mode = modeNormal
		a.input.Blur()
		// 空分类回退到 top
		return a, a.switchView(view.Category, strings.TrimSpace(a.input.Value()))
	case "tab":
		if len(a.categories) > 0 {
			a.input.SetValue(a.categories[a.suggest%len(a.categories)])
			a.input.CursorEnd()
			a.suggest++
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// rows 在渲染时用当前时间生成，相对时间始终是新的
func (a *App) rows() []processor.DisplayRow {
	return processor.Present(a.raws, a.now())
}

func (a *App) View() string {
	header := render.Header("Retro News") + "  " + renderTabs(a.req.View, a.req.Tag)

	var top string
	if a.mode == modeCategory {
		top = a.input.View()
	}

	hints := hintsNormal
	if a.mode == modeCategory {
		hints = hintsCategory
	}
	status := renderStatusBar(len(a.raws), a.failed, a.loading, hints, a.width)
	if a.loading {
		status = a.spinner.View() + " " + status
	}
	if a.err != nil {
		status = errStyle.Render(a.err.Error())
	}

	body := a.renderList()

	parts := []string{header}
	if top != "" {
		parts = append(parts, top)
	}
	parts = append(parts, "", body, status)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderList 渲染当前可见的行，保证光标所在行可见
func (a *App) renderList() string {
	rows := a.rows()
	if len(rows) == 0 {
		return render.Text(nil, a.width)
	}

	visible := len(rows)
	if a.height > 0 {
		// 每条占两行，预留标题、空行和状态栏
		visible = (a.height - 4) / 2
		if visible < 1 {
			visible = 1
		}
	}
	if a.cursor < a.offset {
		a.offset = a.cursor
	}
	if a.cursor >= a.offset+visible {
		a.offset = a.cursor - visible + 1
	}
	end := a.offset + visible
	if end > len(rows) {
		end = len(rows)
	}

	lines := make([]string, 0, end-a.offset)
	for i := a.offset; i < end; i++ {
		lines = append(lines, render.Row(rows[i], i == a.cursor, a.width))
	}
	return strings.Join(lines, "\n")
}

func Run(opts Options) error {
	p := tea.NewProgram(NewApp(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
