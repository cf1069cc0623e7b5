package id

import (
	"strings"
	"testing"
	"time"
)

func TestPrefixes(t *testing.T) {
	rid := NewRequestID()
	if !strings.HasPrefix(rid.String(), "req_") {
		t.Errorf("Expected req_ prefix, got %s", rid)
	}

	cid := NewCallID()
	if !strings.HasPrefix(cid.String(), "call_") {
		t.Errorf("Expected call_ prefix, got %s", cid)
	}
}

func TestUniqueness(t *testing.T) {
	seen := make(map[RequestID]bool)
	for i := 0; i < 1000; i++ {
		rid := NewRequestID()
		if seen[rid] {
			t.Fatalf("Duplicate ID: %s", rid)
		}
		seen[rid] = true
	}
}

func TestSortableByTime(t *testing.T) {
	a := Default().Generate()
	time.Sleep(2 * time.Millisecond)
	b := Default().Generate()

	// A later millisecond always sorts after an earlier one.
	if b.Compare(a) <= 0 {
		t.Errorf("Expected %s > %s", b, a)
	}
}
