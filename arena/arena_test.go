// File: arena/arena_test.go
// Author: momentics <momentics@gmail.com>

package arena_test

import (
	"bytes"
	"os"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/momentics/splitvec/arena"
	"github.com/momentics/splitvec/split"
)

func TestArenaAppendAndData(t *testing.T) {
	a, err := arena.New(16)
	require.NoError(t, err)
	defer a.Close()

	require.Zero(t, a.Len())
	require.GreaterOrEqual(t, a.Cap(), os.Getpagesize())

	a.Push('h')
	a.AppendSlice([]byte("ello"))
	require.Equal(t, []byte("hello"), a.Data())
	require.Equal(t, 5, a.Len())
}

func TestArenaReserveGrowsAndPreserves(t *testing.T) {
	a, err := arena.New(1)
	require.NoError(t, err)
	defer a.Close()

	payload := bytes.Repeat([]byte{0xAB}, 100)
	a.AppendSlice(payload)

	before := a.Cap()
	a.Reserve(before * 3)
	require.GreaterOrEqual(t, a.Cap()-a.Len(), before*3)
	require.Equal(t, payload, a.Data())
}

func TestArenaSplitStability(t *testing.T) {
	a, err := arena.New(1)
	require.NoError(t, err)
	defer a.Close()

	a.AppendSlice([]byte("prefix"))

	read, tail := split.Split[byte](a, 1<<16)
	base := unsafe.SliceData(a.Data())

	for i := 0; i < 1<<16; i++ {
		tail.Push(byte(i))
	}
	require.Equal(t, base, unsafe.SliceData(a.Data()),
		"mapped region must not move during reserved appends")
	require.Equal(t, []byte("prefix"), read)
	require.Equal(t, 6+(1<<16), a.Len())
}

func TestArenaTruncate(t *testing.T) {
	a, err := arena.New(8)
	require.NoError(t, err)
	defer a.Close()

	a.AppendSlice([]byte{1, 2, 3, 4})
	a.Truncate(2)
	require.Equal(t, []byte{1, 2}, a.Data())

	require.Panics(t, func() { a.Truncate(3) })
}

func TestArenaClose(t *testing.T) {
	a, err := arena.New(8)
	require.NoError(t, err)
	require.NoError(t, a.Close())
	require.NoError(t, a.Close(), "double close is a no-op")
}
