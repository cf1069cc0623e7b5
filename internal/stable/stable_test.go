package stable

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoization(t *testing.T) {
	var calls atomic.Int64
	double := New(func(n int) (int, error) {
		calls.Add(1)
		return n * 2, nil
	})

	v, err := double.Do(21)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = double.Do(21)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, int64(1), calls.Load())

	_, err = double.Do(5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), calls.Load())
	assert.Equal(t, 2, double.Size())
}

func TestFailuresAreCached(t *testing.T) {
	boom := errors.New("denominator is zero")
	var calls atomic.Int64
	f := New(func(n int) (int, error) {
		calls.Add(1)
		if n == 0 {
			return 0, boom
		}
		return 10 / n, nil
	})

	_, err := f.Do(0)
	assert.ErrorIs(t, err, boom)
	_, err = f.Do(0)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int64(1), calls.Load())
}

func TestConcurrentSameKeyRunsOnce(t *testing.T) {
	var calls atomic.Int64
	f := New(func(n int) (int, error) {
		calls.Add(1)
		return n + 1, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := f.Do(7)
			assert.NoError(t, err)
			assert.Equal(t, 8, v)
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(1), calls.Load())
}

func TestReset(t *testing.T) {
	var calls atomic.Int64
	f := New(func(n int) (int, error) {
		calls.Add(1)
		return n, nil
	})

	_, _ = f.Do(1)
	f.Reset()
	_, _ = f.Do(1)
	assert.Equal(t, int64(2), calls.Load())
	assert.Equal(t, 1, f.Size())
}
