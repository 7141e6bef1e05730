package common

import (
	"fmt"
	"sync"
	"sync/atomic"
)

type opType uint

//opType的类型
const (
	opPut           opType = iota //添加
	opPutOnlyAbsent               //添加,如果指定的key已经存在,则返回error
	opDel                         //删除指定的key
)

// CopyOnWriteMap copy on write map,读操作无锁,适用于读多写少的注册表
type CopyOnWriteMap[K comparable, V any] struct {
	m     atomic.Value
	mutex sync.Mutex
}

// NewCopyOnWriteMap 创建CopyOnWriteMap
func NewCopyOnWriteMap[K comparable, V any]() *CopyOnWriteMap[K, V] {
	reg := &CopyOnWriteMap[K, V]{}
	reg.m.Store(map[K]V{})
	return reg
}

func (p *CopyOnWriteMap[K, V]) load() map[K]V {
	return p.m.Load().(map[K]V)
}

// modify 根据opType的操作类型修改CopyOnWriteMap
func (p *CopyOnWriteMap[K, V]) modify(key K, value V, op opType) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	m1 := p.load()

	switch op {
	case opPutOnlyAbsent:
		if _, ok := m1[key]; ok {
			return fmt.Errorf("Duplicate key:%v", key)
		}
		fallthrough
	case opPut:
		m2 := make(map[K]V, len(m1)+1)
		for k, v := range m1 {
			m2[k] = v
		}
		m2[key] = value
		p.m.Store(m2)
	case opDel:
		if _, ok := m1[key]; !ok {
			return nil
		}
		m2 := make(map[K]V, len(m1))
		for k, v := range m1 {
			if k != key {
				m2[k] = v
			}
		}
		p.m.Store(m2)
	default:
		panic(fmt.Errorf("Unsupported op type %#v", op))
	}
	return nil
}

// Put key及对应的value,如果key已经存在,则进行替换
func (p *CopyOnWriteMap[K, V]) Put(key K, value V) {
	_ = p.modify(key, value, opPut)
}

// PutIfAbsent put key及对应的value,如果key已经存在,不进行替换,并返回错误
func (p *CopyOnWriteMap[K, V]) PutIfAbsent(key K, value V) error {
	return p.modify(key, value, opPutOnlyAbsent)
}

// Delete 删除key
func (p *CopyOnWriteMap[K, V]) Delete(key K) {
	var zero V
	_ = p.modify(key, zero, opDel)
}

// Get 取得key对应的值
func (p *CopyOnWriteMap[K, V]) Get(key K) (value V, ok bool) {
	value, ok = p.load()[key]
	return
}

// Len 元素的个数
func (p *CopyOnWriteMap[K, V]) Len() int {
	return len(p.load())
}
