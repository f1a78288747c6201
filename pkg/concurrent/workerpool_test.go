// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

package concurrent

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPoolRun(t *testing.T) {
	t.Run("runs all functions", func(t *testing.T) {
		pool := NewWorkerPool(2)
		var count atomic.Int32

		err := pool.Run(context.Background(),
			func() error { count.Add(1); return nil },
			func() error { count.Add(1); return nil },
			func() error { count.Add(1); return nil },
		)

		require.NoError(t, err)
		assert.Equal(t, int32(3), count.Load())
	})

	t.Run("returns the first error", func(t *testing.T) {
		pool := NewWorkerPool(1)
		boom := errors.New("boom")

		err := pool.Run(context.Background(),
			func() error { return nil },
			func() error { return boom },
		)

		assert.ErrorIs(t, err, boom)
	})

	t.Run("no functions is a no-op", func(t *testing.T) {
		pool := NewWorkerPool(2)
		require.NoError(t, pool.Run(context.Background()))
	})

	t.Run("zero workers is clamped to one", func(t *testing.T) {
		pool := NewWorkerPool(0)
		require.NoError(t, pool.Run(context.Background(), func() error { return nil }))
	})
}

func TestWorkerPoolRunAll(t *testing.T) {
	t.Run("collects every error without stopping", func(t *testing.T) {
		pool := NewWorkerPool(2)
		var count atomic.Int32

		errs := pool.RunAll(context.Background(),
			func() error { count.Add(1); return errors.New("first") },
			func() error { count.Add(1); return nil },
			func() error { count.Add(1); return errors.New("second") },
		)

		assert.Equal(t, int32(3), count.Load())
		assert.Len(t, errs, 2)
	})

	t.Run("no errors", func(t *testing.T) {
		pool := NewWorkerPool(2)
		errs := pool.RunAll(context.Background(), func() error { return nil })
		assert.Empty(t, errs)
	})
}
