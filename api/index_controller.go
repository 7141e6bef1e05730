package api

import (
	"net/http"

	c "github.com/d0ngw/hitcounter/common"
	dhttp "github.com/d0ngw/hitcounter/http"
)

// Info 服务信息
type Info struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
	URL     string `json:"url"`
}

// Health 健康状态
type Health struct {
	Status string `json:"status"`
}

// IndexController 首页与健康检查
type IndexController struct {
	dhttp.BaseController
}

// NewIndexController 创建IndexController
func NewIndexController() *IndexController {
	return &IndexController{
		BaseController: dhttp.BaseController{
			Name: "index",
			Path: "/",
			PatternMethods: map[string]string{
				"GET /{$}":    "Index",
				"GET /health": "Health",
			},
		},
	}
}

// Health 健康检查
func (p *IndexController) Health(w http.ResponseWriter, r *http.Request) {
	dhttp.Render(w, r, http.StatusOK, &Health{Status: "OK"})
}

// Index 返回服务信息
func (p *IndexController) Index(w http.ResponseWriter, r *http.Request) {
	c.Infof("Request for Base URL, User-Agent: %s", r.UserAgent())
	dhttp.Render(w, r, http.StatusOK, &Info{
		Status:  http.StatusOK,
		Message: ServiceMessage,
		Version: ServiceVersion,
		URL:     dhttp.BaseURL(r) + "/counters",
	})
}
