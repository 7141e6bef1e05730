package counter

import (
	"sync"

	c "github.com/d0ngw/hitcounter/common"
)

const (
	defaultShardCount = 32
)

type shard struct {
	items map[string]int64
	sync.RWMutex
}

// ShardStore is a Store split into shards by the fnv32 hash of the name,
// each shard has its own RWMutex so operations on different shards don't contend
type ShardStore struct {
	shards []*shard
}

// NewShardStore create ShardStore with shardCount shards, 0 means 32
func NewShardStore(shardCount int) *ShardStore {
	if shardCount <= 0 {
		shardCount = defaultShardCount
	}
	shards := make([]*shard, shardCount)
	for i := range shards {
		shards[i] = &shard{items: map[string]int64{}}
	}
	return &ShardStore{shards: shards}
}

func (p *ShardStore) getShard(name string) *shard {
	return p.shards[c.Fnv32Hashcode(name)%len(p.shards)]
}

// Create implements Store.Create
func (p *ShardStore) Create(name string) (Counter, error) {
	s := p.getShard(name)
	s.Lock()
	defer s.Unlock()
	if _, ok := s.items[name]; ok {
		return Counter{}, newError(name, ErrAlreadyExists)
	}
	s.items[name] = 0
	return Counter{Name: name}, nil
}

// Get implements Store.Get
func (p *ShardStore) Get(name string) (Counter, error) {
	s := p.getShard(name)
	s.RLock()
	defer s.RUnlock()
	v, ok := s.items[name]
	if !ok {
		return Counter{}, newError(name, ErrNotFound)
	}
	return Counter{Name: name, Value: v}, nil
}

// Incr implements Store.Incr
func (p *ShardStore) Incr(name string) (Counter, error) {
	s := p.getShard(name)
	s.Lock()
	defer s.Unlock()
	v, ok := s.items[name]
	if !ok {
		return Counter{}, newError(name, ErrNotFound)
	}
	v++
	s.items[name] = v
	return Counter{Name: name, Value: v}, nil
}

// Del implements Store.Del
func (p *ShardStore) Del(name string) {
	s := p.getShard(name)
	s.Lock()
	delete(s.items, name)
	s.Unlock()
}

// List implements Store.List, shards are read one by one
func (p *ShardStore) List() []Counter {
	all := make([]Counter, 0, p.Len())
	for _, s := range p.shards {
		s.RLock()
		for name, v := range s.items {
			all = append(all, Counter{Name: name, Value: v})
		}
		s.RUnlock()
	}
	return all
}

// Reset implements Store.Reset
func (p *ShardStore) Reset() {
	for _, s := range p.shards {
		s.Lock()
		s.items = map[string]int64{}
		s.Unlock()
	}
}

// Len implements Store.Len
func (p *ShardStore) Len() int {
	count := 0
	for _, s := range p.shards {
		s.RLock()
		count += len(s.items)
		s.RUnlock()
	}
	return count
}
