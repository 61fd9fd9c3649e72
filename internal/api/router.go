package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/LJTian/RetroNews/internal/logger"
	"github.com/LJTian/RetroNews/internal/render"
	"github.com/LJTian/RetroNews/internal/view"
	"github.com/gin-gonic/gin"
)

type Server struct {
	loader     *view.Loader
	categories []string
	stylesheet string
	log        logger.Logger
}

type Options struct {
	Categories []string
	// Stylesheet 为空时只使用页面内联样式
	Stylesheet string
	Logger     logger.Logger
}

func NewServer(loader *view.Loader, opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Server{
		loader:     loader,
		categories: opts.Categories,
		stylesheet: opts.Stylesheet,
		log:        log,
	}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.SetHTMLTemplate(render.Templates())

	r.GET("/health", s.health)
	r.GET("/", s.page)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/rows", s.listRows)
		v1.GET("/views", s.listViews)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// page 渲染整页；未知的 view 回退到 top，与首次打开页面一致
func (s *Server) page(c *gin.Context) {
	id := viewParam(c)
	tag := c.Query("tag")

	notice := ""
	if _, ok := view.Lookup(id); !ok {
		notice = fmt.Sprintf("Unknown view %q, showing top stories.", id)
		id, tag = view.Top, ""
	}

	rows, req, _, err := s.loader.Rows(c.Request.Context(), id, tag)
	if err != nil {
		// Lookup 已经校验过 id，这里只会是编程错误
		s.log.ErrorObj("resolve view failed", "view_error", map[string]any{"view": id, "error": err.Error()})
		c.Status(http.StatusInternalServerError)
		return
	}

	page := render.NewPage(req.View, req.Tag, s.categories, rows)
	page.Notice = notice
	page.Stylesheet = s.stylesheet
	c.HTML(http.StatusOK, "index.html", page)
}

func (s *Server) listRows(c *gin.Context) {
	id := viewParam(c)
	tag := c.Query("tag")

	rows, req, res, err := s.loader.Rows(c.Request.Context(), id, tag)
	if errors.Is(err, view.ErrUnknownView) {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "invalid_view",
			"message": err.Error(),
		})
		return
	}

	// 拉取失败依然返回空列表，只在 message 中标注
	message := "success"
	if res.Failed() {
		message = "fetch_failed"
	}
	c.JSON(http.StatusOK, gin.H{
		"code":     "ok",
		"message":  message,
		"view":     req.View,
		"tag":      req.Tag,
		"endpoint": req.Endpoint,
		"data":     rows,
	})
}

func (s *Server) listViews(c *gin.Context) {
	type item struct {
		ID    view.ID `json:"id"`
		Label string  `json:"label"`
	}
	items := make([]item, 0, len(view.Order))
	for _, id := range view.Order {
		v, _ := view.Lookup(id)
		items = append(items, item{ID: v.ID, Label: v.Label})
	}
	c.JSON(http.StatusOK, gin.H{
		"code":       "ok",
		"message":    "success",
		"data":       items,
		"categories": s.categories,
		"pageSize":   s.loader.PageSize(),
	})
}

// viewParam 读取 view 参数；缺省或为空串时都视为 top
func viewParam(c *gin.Context) view.ID {
	if v := c.Query("view"); v != "" {
		return view.ID(v)
	}
	return view.Top
}
