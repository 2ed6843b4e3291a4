package update

import "testing"

func TestNeedsUpdate(t *testing.T) {
	cases := []struct {
		latest, current string
		want            bool
	}{
		{"0.2.0", "0.1.0", true},
		{"0.1.0", "0.1.0", false},
		{"0.1.0", "0.2.0", false},
		{"1.0.0", "0.9.9", true},
		{"0.1.10", "0.1.9", true},
		{"1.2", "1.1.5", true},
	}
	for _, tc := range cases {
		r := &Result{Latest: tc.latest, Current: tc.current}
		if got := r.NeedsUpdate(); got != tc.want {
			t.Fatalf("NeedsUpdate(%s vs %s) = %v, want %v", tc.latest, tc.current, got, tc.want)
		}
	}
}

func TestNeedsUpdateNilResult(t *testing.T) {
	var r *Result
	if r.NeedsUpdate() {
		t.Fatal("nil result must not report an update")
	}
}
