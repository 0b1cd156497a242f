// Package arena
// Author: momentics <momentics@gmail.com>
//
// Mmap-backed byte vector implementing api.Vector[byte], released
// explicitly with Close.
// The backing region lives outside the Go heap; growth uses mremap on
// Linux and falls back to allocate-and-copy elsewhere. Useful when split
// views must run over very large buffers without GC pressure.
// See arena.go and mmap_linux.go for implementation details.
package arena
