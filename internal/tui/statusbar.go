package tui

import (
	"fmt"

	"github.com/LJTian/RetroNews/internal/view"
	"github.com/charmbracelet/lipgloss"
)

const (
	hintsNormal   = " t top  l latest  n hn  c category  r reload  o open  q quit "
	hintsCategory = " tab next  enter load  esc cancel "
)

// renderTabs 渲染视图切换栏，当前视图高亮
func renderTabs(active view.ID, tag string) string {
	tabs := ""
	for _, id := range view.Order {
		v, _ := view.Lookup(id)
		label := v.Label
		if id == view.Category && active == view.Category && tag != "" {
			label += ": " + tag
		}
		if id == active {
			tabs += tabActiveStyle.Render(label)
		} else {
			tabs += tabInactiveStyle.Render(label)
		}
	}
	return tabs
}

func renderStatusBar(count int, failed, loading bool, hints string, width int) string {
	left := fmt.Sprintf(" %d articles", count)
	if failed {
		left += " · fetch failed"
	}
	if loading {
		left += " (loading...)"
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(hints) - 2
	if gap < 0 {
		gap = 0
	}
	bar := left + fmt.Sprintf("%*s", gap, "") + hints

	if width <= 0 {
		return statusBarStyle.Render(bar)
	}
	return statusBarStyle.Width(width).Render(bar)
}
