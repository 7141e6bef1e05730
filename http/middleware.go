package http

import (
	"net/http"
	"runtime/debug"
	"time"

	c "github.com/d0ngw/hitcounter/common"
	"github.com/google/uuid"
)

// RequestIDHeader 请求ID的header
const RequestIDHeader = "X-Request-Id"

// Middleware 定义接口
type Middleware interface {
	// Handle 处理请求,需要继续处理时调用next
	Handle(next http.HandlerFunc) http.HandlerFunc
}

// MiddlewareFunc 将函数适配为Middleware
type MiddlewareFunc func(next http.HandlerFunc) http.HandlerFunc

// Handle implements Middleware
func (f MiddlewareFunc) Handle(next http.HandlerFunc) http.HandlerFunc {
	return f(next)
}

// RequestIDMiddleware 为每个请求设置请求ID,优先使用请求中已有的X-Request-Id
var RequestIDMiddleware = MiddlewareFunc(func(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next(w, RequestWithContext(r, requestIDKey, id))
	}
})

type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (p *statusRecorder) WriteHeader(status int) {
	if p.status == 0 {
		p.status = status
	}
	p.ResponseWriter.WriteHeader(status)
}

func (p *statusRecorder) Write(b []byte) (int, error) {
	if p.status == 0 {
		p.status = http.StatusOK
	}
	n, err := p.ResponseWriter.Write(b)
	p.size += n
	return n, err
}

// AccessLogMiddleware 记录每个请求的访问日志
var AccessLogMiddleware = MiddlewareFunc(func(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next(rec, r)
		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		c.Infof("%s %s %d %dB %s id:%s", r.Method, r.URL.RequestURI(), rec.status, rec.size, time.Since(start), RequestID(r))
	}
})

// RecoverMiddleware 处理函数panic时返回500
var RecoverMiddleware = MiddlewareFunc(func(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if e := recover(); e != nil {
				if e == http.ErrAbortHandler {
					panic(e)
				}
				c.Errorf("Internal Server Error: %s %s panic:%v\n%s", r.Method, r.URL.Path, e, debug.Stack())
				RenderError(w, r, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next(w, r)
	}
})
