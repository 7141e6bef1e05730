// Package app 计数器服务的配置与组装
package app

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	c "github.com/d0ngw/hitcounter/common"
	"github.com/d0ngw/hitcounter/counter"
	dhttp "github.com/d0ngw/hitcounter/http"
)

// Config 计数器服务的配置
type Config struct {
	c.AppConfig     `yaml:",inline"`
	HTTP            *dhttp.Config   `yaml:"http"`
	Counter         *counter.Config `yaml:"counter"`
	Testing         bool            `yaml:"testing"`           //测试配置,允许重置所有计数器
	CounterNameRule string          `yaml:"counter_name_rule"` //validates中用于计数器名称的规则,为空时使用默认规则
}

// Parse implements common.Configurer
func (p *Config) Parse() error {
	if p.HTTP == nil {
		p.HTTP = &dhttp.Config{}
	}
	if p.Counter == nil {
		p.Counter = &counter.Config{}
	}
	return c.Parse(p)
}

// envOverrides 可以通过环境变量覆盖的配置
type envOverrides struct {
	Addr     string `env:"HITCOUNTER_ADDR"`
	Testing  *bool  `env:"HITCOUNTER_TESTING"`
	Store    string `env:"HITCOUNTER_STORE"`
	LogLevel string `env:"HITCOUNTER_LOG_LEVEL"`
}

// applyEnv 使用环境变量覆盖conf中的配置,在Parse之前调用
func applyEnv(conf *Config, opts env.Options) (*envOverrides, error) {
	o := &envOverrides{}
	if err := env.ParseWithOptions(o, opts); err != nil {
		return nil, fmt.Errorf("parse env fail:%w", err)
	}
	if o.Addr != "" {
		if conf.HTTP == nil {
			conf.HTTP = &dhttp.Config{}
		}
		conf.HTTP.Addr = o.Addr
	}
	if o.Store != "" {
		if conf.Counter == nil {
			conf.Counter = &counter.Config{}
		}
		conf.Counter.Kind = o.Store
	}
	if o.Testing != nil {
		conf.Testing = *o.Testing
	}
	if o.LogLevel != "" && conf.LogConfig != nil {
		conf.LogConfig.Level = o.LogLevel
	}
	return o, nil
}

// Load 加载env对应的配置,环境变量覆盖YAML中的配置
func Load(envName string) (*Config, error) {
	return LoadWithLoader(c.FileLoader, envName, env.Options{})
}

// LoadWithLoader 使用loader加载env对应的配置,opts指定环境变量的来源
func LoadWithLoader(loader c.ConfigLoader, envName string, opts env.Options) (*Config, error) {
	conf := &Config{}
	if err := c.LoadConfigByEnv(loader, conf, "", envName); err != nil {
		return nil, fmt.Errorf("load config for env %s fail:%w", envName, err)
	}
	o, err := applyEnv(conf, opts)
	if err != nil {
		return nil, err
	}
	if err = conf.Parse(); err != nil {
		return nil, fmt.Errorf("parse config fail:%w", err)
	}
	if o.LogLevel != "" {
		c.SetLogLevel(c.LogLevel(o.LogLevel))
	}
	c.Infof("config loaded,env:%s,addr:%s,store:%s,testing:%v", envName, conf.HTTP.Addr, conf.Counter.Kind, conf.Testing)
	return conf, nil
}
