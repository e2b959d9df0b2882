package typecache_test

import (
	"reflect"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iskandersierra/adtjson/internal/typecache"
)

func TestGetMemoizes(t *testing.T) {
	var calls atomic.Int64
	cache := typecache.New(func(rt reflect.Type) string {
		calls.Add(1)
		return rt.String()
	})

	for i := 0; i < 3; i++ {
		require.Equal(t, "int", cache.Get(reflect.TypeFor[int]()))
	}
	require.Equal(t, int64(1), calls.Load())

	require.Equal(t, "string", cache.Get(reflect.TypeFor[string]()))
	require.Equal(t, int64(2), calls.Load())
}

func TestGetConcurrent(t *testing.T) {
	cache := typecache.New(func(rt reflect.Type) int {
		return rt.NumField()
	})

	type pair struct{ A, B int }

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := cache.Get(reflect.TypeFor[pair]()); got != 2 {
					t.Errorf("got %d fields, want 2", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
