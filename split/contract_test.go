// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// contract_test.go — collaborator contract checks via the fake vector.
package split_test

import (
	"testing"

	"github.com/momentics/splitvec/api"
	"github.com/momentics/splitvec/fake"
	"github.com/momentics/splitvec/split"
)

func TestSplitReservesAtMostOnce(t *testing.T) {
	v := fake.NewVector(1, 2, 3)
	_, tail := split.Split[int](v, 10)

	if v.Reserves != 1 {
		t.Fatalf("reserve calls = %d, want 1", v.Reserves)
	}
	moves := v.Moves

	for i := 0; i < 10; i++ {
		tail.Push(i)
	}
	if v.Moves != moves {
		t.Fatalf("backing array moved %d times during appends, want 0", v.Moves-moves)
	}
}

func TestSplitSkipsReserveWhenRoomExists(t *testing.T) {
	v := fake.NewVector[int]()
	v.Reserve(8)
	v.Reserves = 0

	_, _ = split.Split[int](v, 8)
	if v.Reserves != 0 {
		t.Fatalf("reserve calls = %d, want 0 (capacity already free)", v.Reserves)
	}
}

func TestReservationShortfallBreach(t *testing.T) {
	v := fake.NewVector[int]()
	v.FailReserve = true

	expectPanicCode(t, api.ErrCodeReservationShortfall, func() {
		split.Split[int](v, 4)
	})
}

func TestTailForwardsToNativeAppends(t *testing.T) {
	v := fake.NewVector[int]()
	_, tail := split.Split[int](v, 6)

	tail.Push(1)
	tail.AppendSlice([]int{2, 3})

	if v.Pushes != 1 {
		t.Errorf("pushes = %d, want 1", v.Pushes)
	}
	if v.BulkAppends != 1 {
		t.Errorf("bulk appends = %d, want 1 (no per-element fallback)", v.BulkAppends)
	}
}
