package dat

import "testing"

func TestNewInitializesRoot(t *testing.T) {
	d := New(8)
	if len(d.Base) != 8 || len(d.Check) != 8 {
		t.Fatalf("expected 8 slots, have base=%d check=%d", len(d.Base), len(d.Check))
	}
	if d.Base[0] != 1 {
		t.Fatalf("root base should be 1, is %d", d.Base[0])
	}
	for i := 1; i < 8; i++ {
		if d.Base[i] != 0 || d.Check[i] != 0 {
			t.Fatalf("slot %d should be zero", i)
		}
	}
}

func TestGrowPolicy(t *testing.T) {
	tests := []struct {
		from, to int
	}{
		{from: 1, to: 2},
		{from: 1024, to: 2048},
		{from: 2048, to: 4096},
		{from: 4096, to: 5120},
		{from: 5120, to: 6400},
	}
	for _, tt := range tests {
		d := New(tt.from)
		d.Grow()
		if d.NStates() != tt.to || len(d.Check) != tt.to {
			t.Fatalf("grow from %d: expected %d slots, have %d/%d", tt.from, tt.to, len(d.Base), len(d.Check))
		}
	}
}

func TestGrowPreservesContents(t *testing.T) {
	d := New(4)
	d.Base[2], d.Check[2] = 7, 3
	d.Base[3], d.Check[3] = End, 3
	d.Grow()
	if d.Base[0] != 1 || d.Base[2] != 7 || d.Check[2] != 3 || d.Base[3] != End || d.Check[3] != 3 {
		t.Fatalf("contents changed by growth: base=%v check=%v", d.Base, d.Check)
	}
	for i := 4; i < d.NStates(); i++ {
		if d.Base[i] != 0 || d.Check[i] != 0 {
			t.Fatalf("new slot %d not zero", i)
		}
	}
}

func TestEnsureGrowsRepeatedly(t *testing.T) {
	d := New(2)
	d.Ensure(100)
	if d.NStates() != 128 {
		t.Fatalf("expected 128 slots after ensure(100), have %d", d.NStates())
	}
	d.Ensure(5) // no-op
	if d.NStates() != 128 {
		t.Fatalf("ensure within bounds must not grow, have %d", d.NStates())
	}
}

func TestTransitionComparesBaseValue(t *testing.T) {
	d := New(16)
	// root children at begin 1 with codes 1 and 3
	d.Check[2], d.Check[4] = 1, 1
	d.Base[2] = 5
	d.Check[7] = 5 // child of state 2 with code 2
	d.Base[7] = End
	if s, ok := d.Transition(0, 1); !ok || s != 2 {
		t.Fatalf("expected transition 0 -1-> 2, have %d/%v", s, ok)
	}
	if _, ok := d.Transition(0, 2); ok {
		t.Fatalf("slot 3 is free, transition should fail")
	}
	if s, ok := d.Transition(2, 2); !ok || s != 7 {
		t.Fatalf("expected transition 2 -2-> 7, have %d/%v", s, ok)
	}
	if !d.IsTerminal(7) {
		t.Fatalf("slot 7 should be terminal")
	}
	if _, ok := d.Transition(7, 1); ok {
		t.Fatalf("terminal slots have no children")
	}
	if _, ok := d.Transition(0, 100); ok {
		t.Fatalf("out-of-bounds transition should fail")
	}
}

func TestPagedMap(t *testing.T) {
	var m PagedMapBMP
	m.Set('a', 1)
	m.Set('ä', 2)
	m.Set('中', 3)
	if m.Set(0x1F600, 4) {
		t.Fatalf("non-BMP code point must be rejected")
	}
	if m.Code('a') != 1 || m.Code('ä') != 2 || m.Code('中') != 3 {
		t.Fatalf("lookup mismatch: %d %d %d", m.Code('a'), m.Code('ä'), m.Code('中'))
	}
	if m.Code('b') != 0 || m.Code(0x1F600) != 0 {
		t.Fatalf("absent code points should map to 0")
	}
	if m.NumPages() != 2 { // 'a' and 'ä' share page 0
		t.Fatalf("expected 2 pages, have %d", m.NumPages())
	}
}
