package api

import (
	"net/http"
	"sort"

	c "github.com/d0ngw/hitcounter/common"
	"github.com/d0ngw/hitcounter/counter"
	dhttp "github.com/d0ngw/hitcounter/http"
)

// CounterController 计数器的增删改查
type CounterController struct {
	dhttp.BaseController
	Store     counter.Store
	Validator *counter.NameValidator
	Testing   bool
}

// NewCounterController 创建CounterController,testing为true时注册DELETE /counters
func NewCounterController(store counter.Store, validator *counter.NameValidator, testing bool) *CounterController {
	patterns := map[string]string{
		"GET /counters":           "List",
		"POST /counters/{name}":   "Create",
		"GET /counters/{name}":    "Read",
		"PUT /counters/{name}":    "Update",
		"DELETE /counters/{name}": "Delete",
	}
	if testing {
		patterns["DELETE /counters"] = "Reset"
	}
	return &CounterController{
		BaseController: dhttp.BaseController{
			Name:           "counter",
			Path:           "/",
			PatternMethods: patterns,
		},
		Store:     store,
		Validator: validator,
		Testing:   testing,
	}
}

func (p *CounterController) renderError(w http.ResponseWriter, r *http.Request, err error) {
	dhttp.RenderError(w, r, StatusOf(err), messageOf(err))
}

// List 所有的计数器,按名称排序
func (p *CounterController) List(w http.ResponseWriter, r *http.Request) {
	c.Infof("Request to list all counters...")
	counters := p.Store.List()
	sort.Slice(counters, func(i, j int) bool { return counters[i].Name < counters[j].Name })
	dhttp.Render(w, r, http.StatusOK, counters)
}

// Create 创建计数器
func (p *CounterController) Create(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	c.Infof("Request to Create counter: %s...", name)
	if err := p.Validator.Validate(name); err != nil {
		p.renderError(w, r, err)
		return
	}
	created, err := p.Store.Create(name)
	if err != nil {
		p.renderError(w, r, err)
		return
	}
	w.Header().Set("Location", dhttp.BaseURL(r)+"/counters/"+name)
	dhttp.Render(w, r, http.StatusCreated, created)
}

// Read 读取计数器
func (p *CounterController) Read(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	c.Infof("Request to Read counter: %s...", name)
	got, err := p.Store.Get(name)
	if err != nil {
		p.renderError(w, r, err)
		return
	}
	dhttp.Render(w, r, http.StatusOK, got)
}

// Update 计数器加1
func (p *CounterController) Update(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	c.Infof("Request to Update counter: %s...", name)
	updated, err := p.Store.Incr(name)
	if err != nil {
		p.renderError(w, r, err)
		return
	}
	dhttp.Render(w, r, http.StatusOK, updated)
}

// Delete 删除计数器,计数器不存在时也返回204
func (p *CounterController) Delete(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	c.Infof("Request to Delete counter: %s...", name)
	p.Store.Del(name)
	w.WriteHeader(http.StatusNoContent)
}

// Reset 删除所有的计数器,只在测试配置下注册
func (p *CounterController) Reset(w http.ResponseWriter, r *http.Request) {
	c.Infof("Request to reset all counters...")
	if err := p.ResetCounters(); err != nil {
		dhttp.RenderError(w, r, http.StatusForbidden, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ResetCounters 测试时清空所有计数器
func (p *CounterController) ResetCounters() error {
	if !p.Testing {
		return ErrNotTesting
	}
	p.Store.Reset()
	return nil
}
