package counter

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var storeFactories = map[string]func() Store{
	"mutex":  func() Store { return NewMemStore() },
	"shard":  func() Store { return NewShardStore(0) },
	"shard1": func() Store { return NewShardStore(1) },
}

func eachStore(t *testing.T, f func(t *testing.T, store Store)) {
	for name, factory := range storeFactories {
		factory := factory
		t.Run(name, func(t *testing.T) {
			f(t, factory())
		})
	}
}

func names(counters []Counter) []string {
	ret := make([]string, 0, len(counters))
	for _, v := range counters {
		ret = append(ret, v.Name)
	}
	sort.Strings(ret)
	return ret
}

func TestCreate(t *testing.T) {
	eachStore(t, func(t *testing.T, store Store) {
		cnt, err := store.Create("foo")
		assert.NoError(t, err)
		assert.Equal(t, Counter{Name: "foo", Value: 0}, cnt)

		_, err = store.Create("foo")
		assert.True(t, errors.Is(err, ErrAlreadyExists))
		var cerr *Error
		require.True(t, errors.As(err, &cerr))
		assert.Equal(t, "foo", cerr.Name)
		assert.Equal(t, "Counter foo already exists", err.Error())
		assert.Equal(t, 1, store.Len())
	})
}

func TestIncr(t *testing.T) {
	eachStore(t, func(t *testing.T, store Store) {
		_, err := store.Create("foo")
		require.NoError(t, err)

		cnt, err := store.Incr("foo")
		assert.NoError(t, err)
		assert.EqualValues(t, 1, cnt.Value)
		cnt, err = store.Incr("foo")
		assert.NoError(t, err)
		assert.EqualValues(t, 2, cnt.Value)

		cnt, err = store.Get("foo")
		assert.NoError(t, err)
		assert.Equal(t, Counter{Name: "foo", Value: 2}, cnt)

		_, err = store.Incr("bar")
		assert.True(t, errors.Is(err, ErrNotFound))
		_, err = store.Get("bar")
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.Equal(t, "Counter bar does not exist", err.Error())
		assert.Equal(t, 1, store.Len())
	})
}

func TestDel(t *testing.T) {
	eachStore(t, func(t *testing.T, store Store) {
		_, err := store.Create("foo")
		require.NoError(t, err)
		_, err = store.Incr("foo")
		require.NoError(t, err)

		store.Del("foo")
		_, err = store.Get("foo")
		assert.True(t, errors.Is(err, ErrNotFound))

		store.Del("nonexistent")
		store.Del("foo")

		// 重新创建后从0开始
		cnt, err := store.Create("foo")
		assert.NoError(t, err)
		assert.EqualValues(t, 0, cnt.Value)
	})
}

func TestList(t *testing.T) {
	eachStore(t, func(t *testing.T, store Store) {
		assert.NotNil(t, store.List())
		assert.Empty(t, store.List())

		_, err := store.Create("a")
		require.NoError(t, err)
		_, err = store.Create("b")
		require.NoError(t, err)
		store.Del("a")

		all := store.List()
		require.Len(t, all, 1)
		assert.Equal(t, Counter{Name: "b", Value: 0}, all[0])

		for i := 0; i < 50; i++ {
			_, err = store.Create(fmt.Sprintf("c%d", i))
			require.NoError(t, err)
		}
		assert.Len(t, store.List(), 51)
		assert.Equal(t, 51, store.Len())
	})
}

func TestReset(t *testing.T) {
	eachStore(t, func(t *testing.T, store Store) {
		for _, name := range []string{"aaa", "bbb", "ccc"} {
			_, err := store.Create(name)
			require.NoError(t, err)
		}
		store.Reset()
		assert.Equal(t, 0, store.Len())
		assert.Empty(t, store.List())
		_, err := store.Create("aaa")
		assert.NoError(t, err)
	})
}

func TestConcurrentIncr(t *testing.T) {
	for _, n := range []int{10, 100, 1000} {
		n := n
		eachStore(t, func(t *testing.T, store Store) {
			_, err := store.Create("hits")
			require.NoError(t, err)

			var wg sync.WaitGroup
			wg.Add(n)
			for i := 0; i < n; i++ {
				go func() {
					defer wg.Done()
					_, err := store.Incr("hits")
					assert.NoError(t, err)
				}()
			}
			wg.Wait()

			cnt, err := store.Get("hits")
			assert.NoError(t, err)
			assert.EqualValues(t, n, cnt.Value, "lost updates with %d increments", n)
		})
	}
}

func TestConcurrentIncrReturnsDistinctValues(t *testing.T) {
	eachStore(t, func(t *testing.T, store Store) {
		_, err := store.Create("hits")
		require.NoError(t, err)

		const n = 500
		seen := make([]int32, n+1)
		var wg sync.WaitGroup
		wg.Add(n)
		for i := 0; i < n; i++ {
			go func() {
				defer wg.Done()
				cnt, err := store.Incr("hits")
				if assert.NoError(t, err) {
					atomic.AddInt32(&seen[cnt.Value], 1)
				}
			}()
		}
		wg.Wait()
		for v := 1; v <= n; v++ {
			assert.EqualValues(t, 1, seen[v], "value %d", v)
		}
	})
}

func TestConcurrentCreate(t *testing.T) {
	eachStore(t, func(t *testing.T, store Store) {
		const n = 100
		var created, exists int32
		var wg sync.WaitGroup
		wg.Add(n)
		for i := 0; i < n; i++ {
			go func() {
				defer wg.Done()
				_, err := store.Create("same")
				if err == nil {
					atomic.AddInt32(&created, 1)
				} else if errors.Is(err, ErrAlreadyExists) {
					atomic.AddInt32(&exists, 1)
				}
			}()
		}
		wg.Wait()
		assert.EqualValues(t, 1, created)
		assert.EqualValues(t, n-1, exists)
	})
}

func TestConcurrentDelIncr(t *testing.T) {
	eachStore(t, func(t *testing.T, store Store) {
		const n = 200
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			name := fmt.Sprintf("race%d", i)
			_, err := store.Create(name)
			require.NoError(t, err)

			wg.Add(3)
			go func() {
				defer wg.Done()
				cnt, err := store.Incr(name)
				if err != nil {
					assert.True(t, errors.Is(err, ErrNotFound))
				} else {
					assert.EqualValues(t, 1, cnt.Value)
				}
			}()
			go func() {
				defer wg.Done()
				store.Del(name)
			}()
			go func() {
				defer wg.Done()
				for _, cnt := range store.List() {
					assert.True(t, cnt.Value == 0 || cnt.Value == 1)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 0, store.Len())
		assert.Empty(t, names(store.List()))
	})
}

func TestNewStore(t *testing.T) {
	store, err := NewStore(nil)
	assert.NoError(t, err)
	assert.IsType(t, &MemStore{}, store)

	store, err = NewStore(&Config{})
	assert.NoError(t, err)
	assert.IsType(t, &MemStore{}, store)

	store, err = NewStore(&Config{Kind: " Shard ", Shards: 8})
	assert.NoError(t, err)
	require.IsType(t, &ShardStore{}, store)
	assert.Len(t, store.(*ShardStore).shards, 8)

	_, err = NewStore(&Config{Kind: "redis"})
	assert.Error(t, err)
	_, err = NewStore(&Config{Kind: StoreShard, Shards: -1})
	assert.Error(t, err)
}
