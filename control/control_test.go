// File: control/control_test.go
// Author: momentics <momentics@gmail.com>

package control_test

import (
	"testing"

	"github.com/momentics/splitvec/control"
)

func TestMetricsCountersAndGauges(t *testing.T) {
	mr := control.NewMetricsRegistry()
	mr.Add("splits", 2)
	mr.Add("splits", 1)
	mr.Set("retained", 5)

	if got := mr.Counter("splits"); got != 3 {
		t.Errorf("counter = %d, want 3", got)
	}
	snap := mr.GetSnapshot()
	if snap["splits"] != int64(3) {
		t.Errorf("snapshot splits = %v, want 3", snap["splits"])
	}
	if snap["retained"] != 5 {
		t.Errorf("snapshot retained = %v, want 5", snap["retained"])
	}
	if mr.Updated().IsZero() {
		t.Error("updated timestamp not set")
	}
}

func TestDebugProbes(t *testing.T) {
	dp := control.NewDebugProbes()
	dp.RegisterProbe("answer", func() any { return 42 })

	got, ok := dp.Probe("answer")
	if !ok || got != 42 {
		t.Errorf("probe = %v %v, want 42 true", got, ok)
	}
	if _, ok := dp.Probe("missing"); ok {
		t.Error("unexpected probe hit")
	}
	state := dp.DumpState()
	if state["answer"] != 42 {
		t.Errorf("dump = %v", state)
	}
}
