package counter

import "sync"

// MemStore is a Store guarded by a single RWMutex
type MemStore struct {
	mu       sync.RWMutex
	counters map[string]int64
}

// NewMemStore create MemStore
func NewMemStore() *MemStore {
	return &MemStore{counters: map[string]int64{}}
}

// Create implements Store.Create
func (p *MemStore) Create(name string) (Counter, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.counters[name]; ok {
		return Counter{}, newError(name, ErrAlreadyExists)
	}
	p.counters[name] = 0
	return Counter{Name: name}, nil
}

// Get implements Store.Get
func (p *MemStore) Get(name string) (Counter, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.counters[name]
	if !ok {
		return Counter{}, newError(name, ErrNotFound)
	}
	return Counter{Name: name, Value: v}, nil
}

// Incr implements Store.Incr
func (p *MemStore) Incr(name string) (Counter, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.counters[name]
	if !ok {
		return Counter{}, newError(name, ErrNotFound)
	}
	v++
	p.counters[name] = v
	return Counter{Name: name, Value: v}, nil
}

// Del implements Store.Del
func (p *MemStore) Del(name string) {
	p.mu.Lock()
	delete(p.counters, name)
	p.mu.Unlock()
}

// List implements Store.List
func (p *MemStore) List() []Counter {
	p.mu.RLock()
	defer p.mu.RUnlock()
	all := make([]Counter, 0, len(p.counters))
	for name, v := range p.counters {
		all = append(all, Counter{Name: name, Value: v})
	}
	return all
}

// Reset implements Store.Reset
func (p *MemStore) Reset() {
	p.mu.Lock()
	p.counters = map[string]int64{}
	p.mu.Unlock()
}

// Len implements Store.Len
func (p *MemStore) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.counters)
}
