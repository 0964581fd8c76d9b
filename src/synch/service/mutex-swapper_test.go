package synch_service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMutexSwapperSerializesSameKey(t *testing.T) {
	swapper := CreateMutexSwapper[string]()

	counter := 0
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			swapper.Lock("wamid.1")
			counter++
			swapper.Unlock("wamid.1")
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestMutexSwapperIndependentKeys(t *testing.T) {
	swapper := CreateMutexSwapper[string]()

	swapper.Lock("a")
	done := make(chan struct{})
	go func() {
		swapper.Lock("b")
		swapper.Unlock("b")
		close(done)
	}()

	// Key "b" must not block behind key "a".
	<-done
	swapper.Unlock("a")
}

func TestMutexSwapperDropsIdleMutexes(t *testing.T) {
	swapper := CreateMutexSwapper[string]()

	swapper.Lock("a")
	swapper.Unlock("a")

	swapper.mu.Lock()
	defer swapper.mu.Unlock()
	assert.Empty(t, swapper.mutexes)
}
