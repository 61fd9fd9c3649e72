package tui

import (
	"github.com/LJTian/RetroNews/internal/feed"
	"github.com/LJTian/RetroNews/internal/view"
)

// articlesLoadedMsg 携带一次拉取的结果；失败时 res.Articles 为空切片
type articlesLoadedMsg struct {
	req view.Request
	res feed.Result
}

type loadErrMsg struct {
	err error
}

type openErrMsg struct {
	err error
}
