package view

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/LJTian/RetroNews/internal/feed"
	"github.com/LJTian/RetroNews/internal/processor"
)

type recordingFetcher struct {
	mu     sync.Mutex
	calls  []string
	result feed.Result
}

func (f *recordingFetcher) Fetch(_ context.Context, endpoint, query string) feed.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, feed.BuildURL("", endpoint, query))
	if f.result.Articles == nil {
		return feed.Result{Articles: []feed.RawArticle{}, Err: f.result.Err}
	}
	return f.result
}

func TestResolve(t *testing.T) {
	cases := []struct {
		id       ID
		tag      string
		endpoint string
		view     ID
	}{
		{Top, "", "/top", Top},
		{Latest, "", "/latest", Latest},
		{Aggregator, "", "/hn", Aggregator},
		{Category, "design", "/category/design", Category},
		{Category, "ux design", "/category/ux%20design", Category},
		{Category, "a/b&c", "/category/a%2Fb%26c", Category},
		{Category, "it's (new)!", "/category/it's%20(new)!", Category},
		{Category, "", "/top", Top},
		{Category, "  ", "/category/%20%20", Category},
		{"TOP", "", "/top", Top},
		{Top, "ignored", "/top", Top},
	}
	for _, c := range cases {
		req, err := Resolve(c.id, c.tag, 50)
		if err != nil {
			t.Fatalf("Resolve(%q, %q): %v", c.id, c.tag, err)
		}
		if req.Endpoint != c.endpoint || req.View != c.view {
			t.Fatalf("Resolve(%q, %q) = %+v, want endpoint %q view %q", c.id, c.tag, req, c.endpoint, c.view)
		}
		if req.Query != "limit=50" {
			t.Fatalf("Query = %q, want limit=50", req.Query)
		}
	}
}

func TestResolveUnknownView(t *testing.T) {
	if _, err := Resolve("weekly", "", 50); !errors.Is(err, ErrUnknownView) {
		t.Fatalf("err = %v, want ErrUnknownView", err)
	}
}

func TestEncodeComponent(t *testing.T) {
	cases := map[string]string{
		"design":    "design",
		"a b":       "a%20b",
		"c++":       "c%2B%2B",
		"100%":      "100%25",
		"~-_.":      "~-_.",
		"设计":        "%E8%AE%BE%E8%AE%A1",
		"(*'!')":    "(*'!')",
		"q?x=1#top": "q%3Fx%3D1%23top",
	}
	for in, want := range cases {
		if got := EncodeComponent(in); got != want {
			t.Fatalf("EncodeComponent(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEmptyCategoryBehavesLikeTop(t *testing.T) {
	f := &recordingFetcher{}
	l := NewLoader(f, 50)

	if _, _, err := l.Load(context.Background(), Top, "", &Buffer{}); err != nil {
		t.Fatal(err)
	}
	if _, _, err := l.Load(context.Background(), Category, "", &Buffer{}); err != nil {
		t.Fatal(err)
	}
	if len(f.calls) != 2 || f.calls[0] != f.calls[1] || f.calls[0] != "/top?limit=50" {
		t.Fatalf("calls = %v, want both /top?limit=50", f.calls)
	}
}

func TestLoadReplacesRegion(t *testing.T) {
	now := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)
	f := &recordingFetcher{result: feed.Result{Articles: []feed.RawArticle{
		{"title": "one"}, {"title": "two"},
	}}}
	l := NewLoader(f, 10).WithClock(func() time.Time { return now })

	buf := &Buffer{}
	buf.Replace([]processor.DisplayRow{{Title: "stale"}, {Title: "stale"}, {Title: "stale"}})

	req, res, err := l.Load(context.Background(), Latest, "", buf)
	if err != nil {
		t.Fatal(err)
	}
	if req.Query != "limit=10" || res.Failed() {
		t.Fatalf("req = %+v, res.Err = %v", req, res.Err)
	}
	rows := buf.Rows()
	if len(rows) != 2 || rows[0].Title != "one" || rows[1].Rank != 2 {
		t.Fatalf("region not fully replaced: %+v", rows)
	}
}

func TestLoadFailureRendersEmptyRegion(t *testing.T) {
	f := &recordingFetcher{result: feed.Result{Err: feed.ErrUnexpectedStatus}}
	l := NewLoader(f, 50)

	buf := &Buffer{}
	buf.Replace([]processor.DisplayRow{{Title: "old"}})

	_, res, err := l.Load(context.Background(), Top, "", buf)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !res.Failed() {
		t.Fatal("expected failed result to be reported")
	}
	if got := buf.Rows(); len(got) != 0 {
		t.Fatalf("expected empty region after failed fetch, got %+v", got)
	}
}

func TestLoadUnknownViewLeavesRegion(t *testing.T) {
	l := NewLoader(&recordingFetcher{}, 50)
	buf := &Buffer{}
	buf.Replace([]processor.DisplayRow{{Title: "keep"}})

	if _, _, err := l.Load(context.Background(), "nope", "", buf); !errors.Is(err, ErrUnknownView) {
		t.Fatalf("err = %v, want ErrUnknownView", err)
	}
	if rows := buf.Rows(); len(rows) != 1 {
		t.Fatalf("region should be untouched, got %+v", rows)
	}
}

func TestNewLoaderDefaultsPageSize(t *testing.T) {
	if got := NewLoader(&recordingFetcher{}, 0).PageSize(); got != 50 {
		t.Fatalf("PageSize = %d, want 50", got)
	}
}
