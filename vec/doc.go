// Package vec
// Author: momentics <momentics@gmail.com>
//
// Heap-backed growable vector implementing api.Vector.
// Vec is the default collaborator for split views: a thin wrapper over a
// Go slice with an explicit reservation point, so that callers control
// exactly when the backing array may move.
// See vec.go for implementation details.
package vec
