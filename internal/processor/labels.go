package processor

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Domain 返回链接的主机名（去掉开头的 "www."）；不是合法的绝对 URL 时返回空串
func Domain(link string) string {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www.")
}

// RelativeTime 按整分钟计算 now 与 t 的间隔。
// 60 分钟以内用分钟，之后一律用小时，不再升级到天。
func RelativeTime(t, now time.Time) string {
	minutes := int(now.Sub(t) / time.Minute)
	if minutes < 0 {
		minutes = 0
	}
	if minutes < 60 {
		return countLabel(strconv.Itoa(minutes), minutes == 1, "minute") + " ago"
	}
	hours := minutes / 60
	return countLabel(strconv.Itoa(hours), hours == 1, "hour") + " ago"
}

func AgeLabel(published *time.Time, now time.Time) string {
	if published == nil {
		return ""
	}
	return RelativeTime(*published, now)
}

func PointsLabel(points *float64) string {
	if points == nil {
		return ""
	}
	return countLabel(formatNumber(*points), *points == 1, "point")
}

func AuthorLabel(author *string) string {
	if author == nil {
		return ""
	}
	return " by " + *author
}

func CommentsLabel(comments *string) string {
	if comments == nil || *comments == "" {
		return ""
	}
	return " | " + countLabel(*comments, isOne(*comments), "comment")
}

func countLabel(n string, singular bool, noun string) string {
	if singular {
		return n + " " + noun
	}
	return n + " " + noun + "s"
}
