// File: arena/mmap_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux mapping primitives: anonymous mmap with mremap growth.

//go:build linux

package arena

import "golang.org/x/sys/unix"

func mapRegion(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
}

// growRegion remaps old to newSize bytes. MREMAP_MAYMOVE lets the kernel
// relocate the mapping when it cannot be extended in place; contents are
// preserved either way.
func growRegion(old []byte, newSize int) ([]byte, error) {
	return unix.Mremap(old, newSize, unix.MREMAP_MAYMOVE)
}

func unmapRegion(data []byte) error {
	return unix.Munmap(data)
}
