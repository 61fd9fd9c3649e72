package processor

import (
	"testing"
	"time"
)

func TestDomain(t *testing.T) {
	cases := []struct {
		link string
		want string
	}{
		{"http://www.example.com/x", "example.com"},
		{"https://example.com", "example.com"},
		{"https://WWW.Example.COM:8443/path?q=1", "example.com"},
		{"https://blog.www.example.com", "blog.www.example.com"},
		{"https://www.www.example.com", "www.example.com"},
		{"", ""},
		{"not a url", ""},
		{"/relative/path", ""},
		{"mailto:someone@example.com", ""},
		{"http://[::1", ""},
	}
	for _, c := range cases {
		if got := Domain(c.link); got != c.want {
			t.Fatalf("Domain(%q) = %q, want %q", c.link, got, c.want)
		}
	}
}

func TestDomainStripIsIdempotent(t *testing.T) {
	for _, link := range []string{"https://example.com/a", "https://news.ycombinator.com/item?id=1"} {
		once := Domain(link)
		twice := Domain("https://" + once)
		if once != twice {
			t.Fatalf("stripping is not idempotent: %q vs %q", once, twice)
		}
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		ago  time.Duration
		want string
	}{
		{0, "0 minutes ago"},
		{30 * time.Second, "0 minutes ago"},
		{90 * time.Second, "1 minute ago"},
		{2 * time.Minute, "2 minutes ago"},
		{59 * time.Minute, "59 minutes ago"},
		{59*time.Minute + 59*time.Second, "59 minutes ago"},
		{60 * time.Minute, "1 hour ago"},
		{119 * time.Minute, "1 hour ago"},
		{120 * time.Minute, "2 hours ago"},
		// 不升级到天
		{72 * time.Hour, "72 hours ago"},
		// 未来时间按 0 分钟处理
		{-10 * time.Minute, "0 minutes ago"},
	}
	for _, c := range cases {
		if got := RelativeTime(now.Add(-c.ago), now); got != c.want {
			t.Fatalf("RelativeTime(%v ago) = %q, want %q", c.ago, got, c.want)
		}
	}
}

func TestPointsLabel(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	cases := []struct {
		in   *float64
		want string
	}{
		{nil, ""},
		{f(1), "1 point"},
		{f(0), "0 points"},
		{f(2), "2 points"},
		{f(0.25), "0.25 points"},
		{f(-1), "-1 points"},
	}
	for _, c := range cases {
		if got := PointsLabel(c.in); got != c.want {
			t.Fatalf("PointsLabel(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestAuthorLabel(t *testing.T) {
	name := "dang"
	if got := AuthorLabel(&name); got != " by dang" {
		t.Fatalf("AuthorLabel = %q", got)
	}
	if got := AuthorLabel(nil); got != "" {
		t.Fatalf("AuthorLabel(nil) = %q", got)
	}
}

func TestAgeLabelNil(t *testing.T) {
	if got := AgeLabel(nil, time.Now()); got != "" {
		t.Fatalf("AgeLabel(nil) = %q, want empty", got)
	}
}
