package breakout

import (
	"testing"
	"time"
)

// fakeRand replays scripted values and then repeats zeros.
type fakeRand struct {
	ints   []int
	floats []float64
}

func (f *fakeRand) Intn(n int) int {
	if len(f.ints) == 0 || n <= 0 {
		return 0
	}
	v := f.ints[0]
	f.ints = f.ints[1:]
	return v % n
}

func (f *fakeRand) Float64() float64 {
	if len(f.floats) == 0 {
		return 0
	}
	v := f.floats[0]
	f.floats = f.floats[1:]
	return v
}

func TestSimpleRNGDeterminism(t *testing.T) {
	a := NewSimpleRNG(99)
	b := NewSimpleRNG(99)
	for i := 0; i < 100; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("step %d: Intn = %d and %d, expected equal", i, x, y)
		}
	}
	if a.State() != b.State() {
		t.Errorf("State() = %d and %d, expected equal", a.State(), b.State())
	}
}

func TestSimpleRNGRanges(t *testing.T) {
	r := NewSimpleRNG(0)
	for i := 0; i < 1000; i++ {
		if v := r.Intn(7); v < 0 || v >= 7 {
			t.Fatalf("Intn(7) = %d, expected [0, 7)", v)
		}
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v, expected [0, 1)", f)
		}
	}
	if v := r.Intn(0); v != 0 {
		t.Errorf("Intn(0) = %d, expected 0", v)
	}
}

func TestRandomWait(t *testing.T) {
	r := NewSimpleRNG(5)
	lo, hi := 15*time.Second, 30*time.Second
	for i := 0; i < 200; i++ {
		w := randomWait(r, lo, hi)
		if w < lo || w > hi {
			t.Fatalf("randomWait = %v, expected within [%v, %v]", w, lo, hi)
		}
		if w%time.Millisecond != 0 {
			t.Fatalf("randomWait = %v, expected whole milliseconds", w)
		}
	}
	if w := randomWait(r, hi, lo); w != hi {
		t.Errorf("randomWait with empty window = %v, expected %v", w, hi)
	}
}

func TestUniform(t *testing.T) {
	f := &fakeRand{floats: []float64{0, 0.5}}
	if v := uniform(f, 50, 450); v != 50 {
		t.Errorf("uniform = %v, expected 50", v)
	}
	if v := uniform(f, 50, 450); v != 250 {
		t.Errorf("uniform = %v, expected 250", v)
	}
	if v := uniform(f, 10, 10); v != 10 {
		t.Errorf("uniform on empty range = %v, expected 10", v)
	}
}
