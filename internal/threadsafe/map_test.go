package threadsafe

import (
	"github.com/stretchr/testify/assert"
	"sync"
	"testing"
)

func TestMap(t *testing.T) {
	safeMap := NewMap[uint64, string]()
	safeMap.Set(1, "a")
	safeMap.Set(2, "b")
	assert.Equal(t, 2, safeMap.Size())

	val, ok := safeMap.Lookup(1)
	assert.True(t, ok)
	assert.Equal(t, "a", val)

	val, ok = safeMap.Take(1)
	assert.True(t, ok)
	assert.Equal(t, "a", val)
	_, ok = safeMap.Take(1)
	assert.False(t, ok)

	assert.Equal(t, []string{"b"}, safeMap.Drain())
	assert.Zero(t, safeMap.Size())
}

func TestMapConcurrentAccess(t *testing.T) {
	safeMap := NewMap[int, int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			safeMap.Set(i, i)
			safeMap.Lookup(i)
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, safeMap.Size())
}
