// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection layer for splitvec.
//
// Provides concurrent-safe observability primitives:
//   - Counter and gauge telemetry with snapshot reads
//   - Debug hooks and probe registration for pool inspection
package control
