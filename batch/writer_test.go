// File: batch/writer_test.go
// Author: momentics <momentics@gmail.com>

package batch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/splitvec/api"
	"github.com/momentics/splitvec/batch"
	"github.com/momentics/splitvec/split"
	"github.com/momentics/splitvec/vec"
)

func TestWriterFlushInOrder(t *testing.T) {
	v := vec.New(0)
	_, tail := split.Split[int](v, 5)

	w := batch.NewWriter[int]()
	w.Stage([]int{1, 2})
	w.Stage(nil)
	w.Stage([]int{3})
	w.Stage([]int{4, 5})

	require.Equal(t, 3, w.Chunks())
	require.Equal(t, 5, w.Total())

	w.Flush(tail)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, v.Data())
	require.Zero(t, w.Total())
	require.Zero(t, w.Chunks())
}

func TestWriterFlushAtomicAcrossChunks(t *testing.T) {
	v := vec.New[int]()
	_, tail := split.Split[int](v, 3)

	w := batch.NewWriter[int]()
	w.Stage([]int{1, 2})
	w.Stage([]int{3, 4})

	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected panic on oversized flush")
			require.Equal(t, api.ErrCodeCapacityExceeded, api.CodeOf(r))
		}()
		w.Flush(tail)
	}()

	// Nothing was copied and the staging survives for a retry.
	require.Zero(t, v.Len())
	require.Equal(t, 4, w.Total())

	_, tail2 := split.Split[int](v, 4)
	w.Flush(tail2)
	require.Equal(t, []int{1, 2, 3, 4}, v.Data())
}

func TestWriterReset(t *testing.T) {
	w := batch.NewWriter[string]()
	w.Stage([]string{"a"})
	w.Reset()
	require.Zero(t, w.Total())
	require.Zero(t, w.Chunks())
}

func TestWriterPoolReuse(t *testing.T) {
	wp := batch.NewWriterPool[int]()
	w := wp.Get()
	w.Stage([]int{1})
	w.Reset()
	wp.Put(w)

	w2 := wp.Get()
	require.Zero(t, w2.Total())
}
