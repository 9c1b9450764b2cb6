package keytracker

import "testing"

func TestObserve_RisingEdgeOnly(t *testing.T) {
	var k KeyStateTracker
	states := []bool{false, true, true, false, true}
	want := []bool{false, true, false, false, true}

	for i, pressed := range states {
		if got := k.Observe(pressed); got != want[i] {
			t.Errorf("step %d: Observe(%v) = %v, want %v", i, pressed, got, want[i])
		}
	}
}
