// Package http 提供基本的http服务
package http

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	c "github.com/d0ngw/hitcounter/common"
	"github.com/go-chi/cors"
)

// 默认的配置
const (
	DefaultAddr            = ":8080"
	DefaultReadTimeout     = 10
	DefaultWriteTimeout    = 30
	DefaultShutdownTimeout = 10
)

type handlerWithMiddleware struct {
	handlerFunc http.HandlerFunc
	middlewares []Middleware
}

// Config Http配置
type Config struct {
	Addr            string   `yaml:"addr"`             //Http监听地址
	ReadTimeout     int      `yaml:"read_timeout"`     //读超时,单位秒
	WriteTimeout    int      `yaml:"write_timeout"`    //写超时,单位秒
	ShutdownTimeout int      `yaml:"shutdown_timeout"` //停止时等待请求处理完成的时间,单位秒
	MaxConns        int      `yaml:"max_conns"`        //最大的并发连接数,0表示不限制
	CORSOrigins     []string `yaml:"cors_origins"`     //允许跨域访问的Origin,为空时不处理跨域

	middlewares   []Middleware                      //过滤操作
	controllers   []Controller                      //controller
	handles       map[string]*handlerWithMiddleware //handles
	controllerMux sync.RWMutex
}

// NewConfig 创建配置
func NewConfig(addr string) *Config {
	conf := &Config{Addr: addr}
	_ = conf.Parse()
	return conf
}

// Parse implements common.Configurer,填充默认值
func (p *Config) Parse() error {
	if p.Addr == "" {
		p.Addr = DefaultAddr
	}
	if p.ReadTimeout <= 0 {
		p.ReadTimeout = DefaultReadTimeout
	}
	if p.WriteTimeout <= 0 {
		p.WriteTimeout = DefaultWriteTimeout
	}
	if p.ShutdownTimeout <= 0 {
		p.ShutdownTimeout = DefaultShutdownTimeout
	}
	if p.MaxConns < 0 {
		return fmt.Errorf("invalid max_conns %d", p.MaxConns)
	}
	if p.handles == nil {
		p.handles = map[string]*handlerWithMiddleware{}
	}
	return nil
}

// RegController 注册controller中的所有处理函数,middlewares只作用于该controller
func (p *Config) RegController(controller Controller, middlewares ...Middleware) error {
	if controller == nil {
		return fmt.Errorf("Can't reg nil controller")
	}

	patterns, err := controllerPatterns(controller)
	if err != nil {
		return err
	}
	if len(patterns) == 0 {
		c.Warnf("Can't find handler in %T#%s", controller, controller.GetName())
		return nil
	}

	p.controllerMux.Lock()
	defer p.controllerMux.Unlock()

	for pattern, h := range patterns {
		if err := p.regHandle(pattern, &handlerWithMiddleware{h, middlewares}); err != nil {
			return err
		}
		c.Infof("Register controller %T#%s,pattern:%s", controller, controller.GetName(), pattern)
	}
	p.controllers = append(p.controllers, controller)
	return nil
}

func (p *Config) regHandle(pattern string, handle *handlerWithMiddleware) error {
	if p.handles == nil {
		p.handles = map[string]*handlerWithMiddleware{}
	}
	if _, ok := p.handles[pattern]; ok {
		return fmt.Errorf("Duplicate pattern:%s", pattern)
	}
	p.handles[pattern] = handle
	return nil
}

// RegHandleFunc 注册pattern的处理函数handlerFunc
func (p *Config) RegHandleFunc(pattern string, handlerFunc http.HandlerFunc) error {
	if handlerFunc == nil {
		return fmt.Errorf("Can't bind nil handlerFunc to pattern %s", pattern)
	}
	p.controllerMux.Lock()
	defer p.controllerMux.Unlock()
	return p.regHandle(pattern, &handlerWithMiddleware{handlerFunc, nil})
}

// RegMiddleware 注册作用于所有处理函数的middleware,先注册的先执行
func (p *Config) RegMiddleware(middleware Middleware) error {
	if middleware == nil {
		return fmt.Errorf("invalid middleware")
	}
	p.controllerMux.Lock()
	defer p.controllerMux.Unlock()
	p.middlewares = append(p.middlewares, middleware)
	return nil
}

// Patterns 取得所有已经注册的pattern
func (p *Config) Patterns() []string {
	p.controllerMux.RLock()
	defer p.controllerMux.RUnlock()
	patterns := make([]string, 0, len(p.handles))
	for pattern := range p.handles {
		patterns = append(patterns, pattern)
	}
	return patterns
}

// Handler 使用已经注册的处理函数和middleware构建http.Handler
func (p *Config) Handler() (handler http.Handler, err error) {
	p.controllerMux.RLock()
	defer p.controllerMux.RUnlock()

	serveMux := http.NewServeMux()
	for pattern, h := range p.handles {
		if err = handleSafely(serveMux, pattern, p.handleWithMiddleware(h)); err != nil {
			return nil, err
		}
	}

	handler = serveMux
	if len(p.CORSOrigins) > 0 {
		c.Infof("Enable cors for %s", strings.Join(p.CORSOrigins, ","))
		handler = cors.Handler(cors.Options{
			AllowedOrigins: p.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
			ExposedHeaders: []string{"Location", RequestIDHeader},
		})(handler)
	}
	return handler, nil
}

// handleSafely 注册pattern,http.ServeMux对无效或冲突的pattern会panic,这里转换为error
func handleSafely(serveMux *http.ServeMux, pattern string, handler http.HandlerFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("register pattern %s fail:%v", pattern, r)
		}
	}()
	serveMux.Handle(pattern, handler)
	return nil
}

// handleWithMiddleware 先执行全局的middleware,再执行handler中的middleware
func (p *Config) handleWithMiddleware(handler *handlerWithMiddleware) http.HandlerFunc {
	originHandler := func(w http.ResponseWriter, r *http.Request) {
		if err := ErrorFromRequestContext(r); err != nil {
			c.Errorf("stop handle %s,cause by error:%s", r.RequestURI, err)
			RenderError(w, r, http.StatusInternalServerError, err.Error())
			return
		}
		handler.handlerFunc(w, r)
	}

	middlewares := make([]Middleware, 0, len(p.middlewares)+len(handler.middlewares))
	middlewares = append(middlewares, p.middlewares...)
	middlewares = append(middlewares, handler.middlewares...)

	h := http.HandlerFunc(originHandler)
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i].Handle(h)
	}
	return h
}
