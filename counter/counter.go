// Package counter supply the in-memory named counter store
package counter

import (
	"fmt"
	"strings"
)

// Counter is a snapshot of a named counter
type Counter struct {
	Name  string `json:"name"`
	Value int64  `json:"counter"`
}

// Store holds named counters. Every operation is atomic with respect to concurrent callers.
type Store interface {
	// Create add the counter `name` with value 0, fails with ErrAlreadyExists if present
	Create(name string) (Counter, error)

	// Get return the current value of `name`, fails with ErrNotFound if absent
	Get(name string) (Counter, error)

	// Incr add 1 to `name` and return the new value, fails with ErrNotFound if absent
	Incr(name string) (Counter, error)

	// Del remove `name`, it's a no-op if absent
	Del(name string)

	// List return all counters, the order is unspecified
	List() []Counter

	// Reset remove all counters
	Reset()

	// Len the number of counters
	Len() int
}

// Store kinds
const (
	StoreMutex = "mutex"
	StoreShard = "shard"
)

// Config the store config
type Config struct {
	Kind   string `yaml:"kind"`
	Shards int    `yaml:"shards"`
}

// Parse implements common.Configurer
func (p *Config) Parse() error {
	p.Kind = strings.ToLower(strings.TrimSpace(p.Kind))
	switch p.Kind {
	case "":
		p.Kind = StoreMutex
	case StoreMutex, StoreShard:
	default:
		return fmt.Errorf("unsupported counter store kind %q", p.Kind)
	}
	if p.Shards < 0 {
		return fmt.Errorf("invalid counter store shards %d", p.Shards)
	}
	return nil
}

// NewStore create the Store described by conf, nil conf means a MemStore
func NewStore(conf *Config) (Store, error) {
	if conf == nil {
		return NewMemStore(), nil
	}
	if err := conf.Parse(); err != nil {
		return nil, err
	}
	if conf.Kind == StoreShard {
		return NewShardStore(conf.Shards), nil
	}
	return NewMemStore(), nil
}
