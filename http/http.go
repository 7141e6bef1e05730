package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	c "github.com/d0ngw/hitcounter/common"
	"golang.org/x/net/netutil"
)

type tcpKeepAliveListener struct {
	*net.TCPListener
}

// Accept接受连接
func (ln tcpKeepAliveListener) Accept() (net.Conn, error) {
	tc, err := ln.AcceptTCP()
	if err != nil {
		return nil, err
	}
	if err = tc.SetKeepAlive(true); err != nil {
		return nil, err
	}
	if err = tc.SetKeepAlivePeriod(3 * time.Minute); err != nil {
		return nil, err
	}
	return tc, nil
}

// Service Http服务
type Service struct {
	c.BaseService
	Conf     *Config
	listener net.Listener
	server   *http.Server
	done     chan struct{}
	lock     sync.Mutex
}

// NewService 创建Http服务
func NewService(conf *Config) *Service {
	return &Service{BaseService: c.BaseService{SName: "http"}, Conf: conf}
}

// Init 初始化Http服务,构建handler
func (p *Service) Init() error {
	p.lock.Lock()
	defer p.lock.Unlock()

	if p.Conf == nil {
		return errors.New("no http config")
	}
	if err := p.Conf.Parse(); err != nil {
		return err
	}
	handler, err := p.Conf.Handler()
	if err != nil {
		return err
	}

	p.server = &http.Server{
		Addr:         p.Conf.Addr,
		ReadTimeout:  time.Duration(p.Conf.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(p.Conf.WriteTimeout) * time.Second,
		Handler:      handler,
	}
	return nil
}

// Start 启动Http服务,开始端口监听和服务处理
func (p *Service) Start() bool {
	p.lock.Lock()
	defer p.lock.Unlock()

	if p.server == nil {
		c.Errorf("http service is not inited")
		return false
	}

	ln, err := net.Listen("tcp", p.Conf.Addr)
	if err != nil {
		c.Errorf("Listen at %s fail,error:%v", p.Conf.Addr, err)
		return false
	}
	c.Infof("Listen at %s", ln.Addr())

	var listener net.Listener = tcpKeepAliveListener{ln.(*net.TCPListener)}
	if p.Conf.MaxConns > 0 {
		listener = netutil.LimitListener(listener, p.Conf.MaxConns)
	}
	p.listener = listener
	p.done = make(chan struct{})

	server, done := p.server, p.done
	go func() {
		defer close(done)
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			c.Errorf("server.Serve return with %v", err)
		}
	}()
	return true
}

// Addr 返回实际的监听地址,未启动时返回nil
func (p *Service) Addr() net.Addr {
	p.lock.Lock()
	defer p.lock.Unlock()
	if p.listener == nil {
		return nil
	}
	return p.listener.Addr()
}

// URL 返回服务的基础URL,例如http://127.0.0.1:8080
func (p *Service) URL() string {
	addr := p.Addr()
	if addr == nil {
		return ""
	}
	return fmt.Sprintf("http://%s", addr)
}

// Stop 停止Http服务,关闭端口监听,等待正在处理的请求完成
func (p *Service) Stop() bool {
	p.lock.Lock()
	defer p.lock.Unlock()

	if p.server == nil || p.listener == nil {
		return true
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(p.Conf.ShutdownTimeout)*time.Second)
	defer cancel()

	c.Infof("Waiting shutdown")
	ok := true
	if err := p.server.Shutdown(ctx); err != nil {
		c.Errorf("Shutdown http server error:%v", err)
		_ = p.server.Close()
		ok = false
	}
	<-p.done
	c.Infof("Finish shutdown")

	p.listener = nil
	p.server = nil
	return ok
}
