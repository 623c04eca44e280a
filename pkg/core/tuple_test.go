package core

import (
	"math"
	"testing"
)

func TestNewPointAndVector(t *testing.T) {
	p := NewPoint(4, -4, 3)
	if !p.IsPoint() || p.IsVector() {
		t.Errorf("expected point, got %v", p)
	}

	v := NewVector(4, -4, 3)
	if !v.IsVector() || v.IsPoint() {
		t.Errorf("expected vector, got %v", v)
	}
}

func TestTupleArithmetic(t *testing.T) {
	a1 := NewPoint(3, -2, 5)
	a2 := NewVector(-2, 3, 1)
	if got := a1.Add(a2); !got.Equals(NewPoint(1, 1, 6)) {
		t.Errorf("Add: got %v", got)
	}

	p1 := NewPoint(3, 2, 1)
	p2 := NewPoint(5, 6, 7)
	if got := p1.Subtract(p2); !got.Equals(NewVector(-2, -4, -6)) {
		t.Errorf("point-point Subtract: got %v", got)
	}

	p := NewPoint(3, 2, 1)
	v := NewVector(5, 6, 7)
	if got := p.Subtract(v); !got.Equals(NewPoint(-2, -4, -6)) {
		t.Errorf("point-vector Subtract: got %v", got)
	}

	if got := NewVector(0, 0, 0).Subtract(NewVector(1, 2, 3)); !got.Equals(NewVector(-1, -2, -3)) {
		t.Errorf("vector-vector Subtract: got %v", got)
	}

	a := Tuple{1, -2, 3, -4}
	if got := a.Negate(); !got.Equals(Tuple{-1, 2, -3, 4}) {
		t.Errorf("Negate: got %v", got)
	}

	if got := a.Multiply(3.5); !got.Equals(Tuple{3.5, -7, 10.5, -14}) {
		t.Errorf("Multiply: got %v", got)
	}
}

func TestMagnitudeAndNormalize(t *testing.T) {
	tests := []struct {
		v    Tuple
		want float64
	}{
		{NewVector(1, 0, 0), 1},
		{NewVector(0, 1, 0), 1},
		{NewVector(0, 0, 1), 1},
		{NewVector(1, 2, 3), math.Sqrt(14)},
		{NewVector(-1, -2, -3), math.Sqrt(14)},
	}
	for _, tt := range tests {
		if got := tt.v.Magnitude(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Magnitude(%v) = %f, want %f", tt.v, got, tt.want)
		}
	}

	n := NewVector(4, 0, 0).Normalize()
	if !n.Equals(NewVector(1, 0, 0)) {
		t.Errorf("Normalize: got %v", n)
	}
	if math.Abs(n.Magnitude()-1) > 1e-9 {
		t.Errorf("normalized magnitude not 1: %f", n.Magnitude())
	}
}

func TestNormalizeCheckedZeroLength(t *testing.T) {
	_, err := NewVector(0, 0, 0).NormalizeChecked()
	if err == nil {
		t.Fatal("expected error normalizing zero-length vector")
	}
}

func TestDotAndCross(t *testing.T) {
	a := NewVector(1, 2, 3)
	b := NewVector(2, 3, 4)
	if got := a.Dot(b); got != 20 {
		t.Errorf("Dot: got %f, want 20", got)
	}
	if got := a.Cross(b); !got.Equals(NewVector(-1, 2, -1)) {
		t.Errorf("Cross a x b: got %v", got)
	}
	if got := b.Cross(a); !got.Equals(NewVector(1, -2, 1)) {
		t.Errorf("Cross b x a: got %v", got)
	}
}

func TestReflect(t *testing.T) {
	v := NewVector(1, -1, 0)
	n := NewVector(0, 1, 0)
	if got := Reflect(v, n); !got.Equals(NewVector(1, 1, 0)) {
		t.Errorf("Reflect 45deg: got %v", got)
	}

	v2 := NewVector(0, -1, 0)
	n2 := NewVector(math.Sqrt2/2, math.Sqrt2/2, 0)
	got := Reflect(v2, n2)
	if !got.Equals(NewVector(1, 0, 0)) {
		t.Errorf("Reflect off slanted surface: got %v", got)
	}
}
