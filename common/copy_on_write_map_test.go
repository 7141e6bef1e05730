package common

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCopyOnWriteMap(t *testing.T) {
	m := NewCopyOnWriteMap[string, int]()
	m.Put("a", 1)
	assert.Error(t, m.PutIfAbsent("a", 2))
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	assert.NoError(t, m.PutIfAbsent("b", 2))
	assert.Equal(t, 2, m.Len())

	m.Delete("a")
	m.Delete("not_exist")
	_, ok = m.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())
}

func TestCopyOnWriteMapConcurrent(t *testing.T) {
	m := NewCopyOnWriteMap[string, int]()
	var wg sync.WaitGroup
	var okCount int
	var lock sync.Mutex
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if m.PutIfAbsent("same", i) == nil {
				lock.Lock()
				okCount++
				lock.Unlock()
			}
			m.Put(strconv.Itoa(i), i)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, okCount)
	assert.Equal(t, 51, m.Len())
}
