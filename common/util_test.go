package common

import (
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShutdownHook(t *testing.T) {
	shook := NewShutdownhook()
	var called []int
	shook.AddHook(func() { called = append(called, 1) })
	shook.AddHook(func() { called = append(called, 2) })

	ch := shook.ch
	go func() {
		time.Sleep(50 * time.Millisecond)
		ch <- syscall.SIGINT
	}()
	shook.WaitShutdown()
	assert.Equal(t, []int{1, 2}, called)
	assert.Nil(t, shook.ch)
}

func TestHasNil(t *testing.T) {
	var p *int
	var m map[string]int
	assert.True(t, HasNil(nil))
	assert.True(t, HasNil(1, p))
	assert.True(t, HasNil(m))
	assert.False(t, HasNil(1, "a", &struct{}{}))
	assert.False(t, HasNil())
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty("a", ""))
	assert.True(t, IsEmpty(" \t"))
	assert.False(t, IsEmpty("a", "b"))
}

func TestFnv32Hashcode(t *testing.T) {
	assert.Equal(t, Fnv32Hashcode("abc"), Fnv32Hashcode("abc"))
	for _, s := range []string{"", "a", "abc", "counter12345678901234"} {
		assert.True(t, Fnv32Hashcode(s) >= 0)
	}
}
