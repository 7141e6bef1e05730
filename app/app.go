package app

import (
	"errors"

	"github.com/d0ngw/hitcounter/api"
	c "github.com/d0ngw/hitcounter/common"
	"github.com/d0ngw/hitcounter/counter"
	dhttp "github.com/d0ngw/hitcounter/http"
)

// App 组装好的计数器服务
type App struct {
	Conf     *Config
	Store    counter.Store
	Counters *api.CounterController
	HTTP     *dhttp.Service
	services *c.Services
}

// New 根据已经解析的conf创建App,conf.HTTP中注册的controller不能重复使用
func New(conf *Config) (*App, error) {
	if conf == nil || c.HasNil(conf.HTTP, conf.Counter) {
		return nil, errors.New("config is not parsed")
	}

	store, err := counter.NewStore(conf.Counter)
	if err != nil {
		return nil, err
	}

	var services []c.Service
	var rules c.ValidateService
	if !c.IsEmpty(conf.CounterNameRule) && conf.ValidateRuleConfig != nil {
		ruleService, err := conf.ValidateRuleConfig.NewService()
		if err != nil {
			return nil, err
		}
		rules = ruleService
		services = append(services, ruleService)
	}

	counters := api.NewCounterController(store, counter.NewNameValidator(rules, conf.CounterNameRule), conf.Testing)

	httpConf := conf.HTTP
	for _, m := range []dhttp.Middleware{dhttp.RequestIDMiddleware, dhttp.AccessLogMiddleware, dhttp.RecoverMiddleware} {
		if err = httpConf.RegMiddleware(m); err != nil {
			return nil, err
		}
	}
	for _, controller := range []dhttp.Controller{api.NewIndexController(), counters} {
		if err = httpConf.RegController(controller); err != nil {
			return nil, err
		}
	}

	httpService := dhttp.NewService(httpConf)
	httpService.Order = 10
	services = append(services, httpService)

	return &App{
		Conf:     conf,
		Store:    store,
		Counters: counters,
		HTTP:     httpService,
		services: c.NewServices(services...),
	}, nil
}

// Start 初始化并启动所有的服务
func (p *App) Start() error {
	if !p.services.Init() {
		return errors.New("init services fail")
	}
	if !p.services.Start() {
		p.services.Stop()
		return errors.New("start services fail")
	}
	c.Infof("hit counter service started at %s", p.HTTP.Addr())
	return nil
}

// Stop 停止所有的服务
func (p *App) Stop() {
	p.services.Stop()
	c.Infof("hit counter service stopped")
	c.SyncLog()
}
