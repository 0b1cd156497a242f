// File: arena/mmap_stub.go
// Author: momentics <momentics@gmail.com>
//
// Heap-backed fallback for platforms without mremap support. Keeps the
// same contract: growRegion preserves contents and may move the region.

//go:build !linux

package arena

func mapRegion(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func growRegion(old []byte, newSize int) ([]byte, error) {
	next := make([]byte, newSize)
	copy(next, old)
	return next, nil
}

func unmapRegion(data []byte) error {
	return nil
}
