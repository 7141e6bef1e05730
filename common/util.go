package common

import (
	"hash/fnv"
	"os"
	"os/signal"
	"reflect"
	"strings"
	"sync"
	"syscall"
)

// HasNil 检查values中是否有nil值,包括值为nil的指针、map、slice、func等
func HasNil(values ...interface{}) bool {
	for _, v := range values {
		if v == nil {
			return true
		}
		val := reflect.ValueOf(v)
		switch val.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
			if val.IsNil() {
				return true
			}
		}
	}
	return false
}

// IsEmpty 检查values中是否有空字符串,只包含空白字符也认为是空
func IsEmpty(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

// Fnv32Hashcode 计算s的fnv32 hash值,返回非负的int
func Fnv32Hashcode(s string) int {
	hasher := fnv.New32()
	_, _ = hasher.Write([]byte(s))
	return int(hasher.Sum32() & 0x7fffffff)
}

// Shutdownhook 进程退出时执行的hook
type Shutdownhook struct {
	ch         chan os.Signal //接收信号的channel
	hooks      []func()       //停机时需要调用的方法列表
	sync.Mutex                //同步锁
}

// NewShutdownhook 创建一个Shutdownhook,sig是要监听的信号,默认会监听syscall.SIGINT,syscall.SIGTERM
func NewShutdownhook(sig ...os.Signal) *Shutdownhook {
	if len(sig) == 0 {
		sig = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
	}
	ch := make(chan os.Signal, len(sig))
	signal.Notify(ch, sig...)
	return &Shutdownhook{ch: ch}
}

// AddHook 增加一个Hook函数
func (p *Shutdownhook) AddHook(hookFunc func()) {
	p.Lock()
	defer p.Unlock()
	p.hooks = append(p.hooks, hookFunc)
}

// WaitShutdown 等待进程退出的信号,当收到进程退出的信号后,依次执行注册的hook函数
func (p *Shutdownhook) WaitShutdown() {
	p.Lock()
	ch := p.ch
	p.Unlock()

	if ch == nil {
		panic("singal channel is nil")
	}

	s, ok := <-ch
	if !ok {
		Warnf("Receive signal error,%v", ok)
		return
	}

	p.Lock()
	defer p.Unlock()
	signal.Stop(ch)
	p.ch = nil

	Infof("Receive signal:%v,Run hooks", s)
	for _, f := range p.hooks {
		f()
	}
	Infof("Finished run hooks")
}
