package render

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/LJTian/RetroNews/internal/processor"
	"github.com/charmbracelet/lipgloss"
)

const (
	voteGlyph  = "▲"
	emptyLabel = "No articles found"

	// 清屏并把光标移到左上角
	clearScreen = "\x1b[H\x1b[2J"
)

// Row 渲染一行：排名、▲、标题、域名，下一行为元信息
func Row(r processor.DisplayRow, selected bool, width int) string {
	title := r.Title
	if width > 0 {
		title = truncate(title, width-lipgloss.Width(r.DomainLabel)-sourceWidth(r.Source)-8)
	}

	ts := titleStyle
	if selected {
		ts = SelectedTitleStyle
	}

	line := rankStyle.Render(r.RankLabel) + " " + voteStyle.Render(voteGlyph) + " " +
		ts.Render(title) + domainStyle.Render(r.DomainLabel)
	if r.Source != "" {
		line += " " + sourceStyle.Render("["+r.Source+"]")
	}
	if r.Meta == "" {
		return line
	}
	return line + "\n" + metaStyle.Render(r.Meta)
}

// Text 渲染整个列表；空列表显示提示文字
func Text(rows []processor.DisplayRow, width int) string {
	if len(rows) == 0 {
		return emptyStyle.Render(emptyLabel)
	}
	parts := make([]string, 0, len(rows))
	for _, r := range rows {
		parts = append(parts, Row(r, false, width))
	}
	return strings.Join(parts, "\n")
}

func sourceWidth(source string) int {
	if source == "" {
		return 0
	}
	return lipgloss.Width(source) + 3
}

func Header(s string) string {
	return headerStyle.Render(s)
}

func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// Terminal 是写到终端的 Region，每次 Replace 输出完整的一屏。
// 并发的 Replace 不会交错输出，最后完成的覆盖之前的内容。
type Terminal struct {
	mu     sync.Mutex
	w      io.Writer
	clear  bool
	header func() string
	width  int
}

func NewTerminal(w io.Writer, clear bool, width int, header func() string) *Terminal {
	return &Terminal{w: w, clear: clear, width: width, header: header}
}

func (t *Terminal) Replace(rows []processor.DisplayRow) {
	var b strings.Builder
	if t.clear {
		b.WriteString(clearScreen)
	}
	if t.header != nil {
		if h := t.header(); h != "" {
			b.WriteString(Header(h))
			b.WriteString("\n\n")
		}
	}
	b.WriteString(Text(rows, t.width))
	b.WriteString("\n")

	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = fmt.Fprint(t.w, b.String())
}
