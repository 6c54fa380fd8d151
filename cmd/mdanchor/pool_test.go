package main

import (
	"context"
	"runtime"
	"sync/atomic"
	"testing"

	mdanchor "github.com/alnah/go-mdanchor"
)

// countingFactory returns a factory that counts created converters.
func countingFactory(n *atomic.Int32) func() CLIConverter {
	return func() CLIConverter {
		n.Add(1)
		return mdanchor.New()
	}
}

// ---------------------------------------------------------------------------
// TestConverterPool - Lazy creation and reuse
// ---------------------------------------------------------------------------

func TestConverterPool(t *testing.T) {
	t.Parallel()

	t.Run("creates lazily and reuses released converters", func(t *testing.T) {
		t.Parallel()

		var created atomic.Int32
		pool := NewConverterPool(2, countingFactory(&created))
		defer pool.Close()

		if created.Load() != 0 {
			t.Fatalf("created = %d before acquire, want 0", created.Load())
		}

		a := pool.Acquire()
		pool.Release(a)
		b := pool.Acquire()
		pool.Release(b)

		if created.Load() != 1 {
			t.Errorf("created = %d, want 1", created.Load())
		}
		if a != b {
			t.Error("released converter was not reused")
		}
	})

	t.Run("never exceeds size", func(t *testing.T) {
		t.Parallel()

		var created atomic.Int32
		pool := NewConverterPool(2, countingFactory(&created))
		defer pool.Close()

		a, b := pool.Acquire(), pool.Acquire()
		pool.Release(a)
		c := pool.Acquire()
		pool.Release(b)
		pool.Release(c)

		if created.Load() != 2 {
			t.Errorf("created = %d, want 2", created.Load())
		}
	})

	t.Run("size below one becomes one", func(t *testing.T) {
		t.Parallel()

		pool := NewConverterPool(0, countingFactory(new(atomic.Int32)))
		defer pool.Close()
		if pool.Size() != 1 {
			t.Errorf("Size() = %d, want 1", pool.Size())
		}
	})

	t.Run("release after close is ignored", func(t *testing.T) {
		t.Parallel()

		pool := NewConverterPool(1, countingFactory(new(atomic.Int32)))
		c := pool.Acquire()
		pool.Close()
		pool.Close()
		pool.Release(c)
	})

	t.Run("pooled converters render", func(t *testing.T) {
		t.Parallel()

		pool := NewConverterPool(1, countingFactory(new(atomic.Int32)))
		defer pool.Close()

		c := pool.Acquire()
		defer pool.Release(c)
		if _, err := c.Render(context.Background(), "# Hi"); err != nil {
			t.Errorf("Render() error = %v", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestResolvePoolSize - Worker count resolution
// ---------------------------------------------------------------------------

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	if got := resolvePoolSize(5); got != 5 {
		t.Errorf("resolvePoolSize(5) = %d, want 5", got)
	}

	want := min(max(runtime.GOMAXPROCS(0)/2, 1), 8)
	if got := resolvePoolSize(0); got != want {
		t.Errorf("resolvePoolSize(0) = %d, want %d", got, want)
	}
}
