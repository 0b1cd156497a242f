// Package split
// Author: momentics <momentics@gmail.com>
//
// Bounded split views over growable vectors.
//
// Split divides access to one vector into a fixed read slice over the
// existing elements and a Tail that may append up to a pre-reserved
// capacity without ever reallocating. Both views alias the same backing
// storage, so the caller can keep reading (or copying from) the old
// elements while appending new ones — something a bare growable vector
// forbids, since any append may move the storage out from under every
// outstanding reference.
//
// Views are single-owner and single-goroutine: no other accessor may
// touch the vector while a Tail is alive. See split.go and tail.go for
// implementation details.
package split
