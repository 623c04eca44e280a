package core

import "testing"

func TestMatrixMulAndIdentity(t *testing.T) {
	a := NewMatrix4([16]float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 8, 7, 6,
		5, 4, 3, 2,
	})
	if got := a.Mul(Identity4()); !got.Equals(a) {
		t.Errorf("A * identity should equal A, got %v", got)
	}
}

func TestMatrixTranspose(t *testing.T) {
	a := NewMatrix4([16]float64{
		0, 9, 3, 0,
		9, 8, 0, 8,
		1, 8, 5, 3,
		0, 0, 5, 8,
	})
	want := NewMatrix4([16]float64{
		0, 9, 1, 0,
		9, 8, 8, 0,
		3, 0, 5, 5,
		0, 8, 3, 8,
	})
	if got := a.Transpose(); !got.Equals(want) {
		t.Errorf("Transpose: got %v, want %v", got, want)
	}
}

func TestMatrixInverseRoundTrip(t *testing.T) {
	a := NewMatrix4([16]float64{
		3, -9, 7, 3,
		3, -8, 2, -9,
		-4, 4, 4, 1,
		-6, 5, -1, 1,
	})
	inv, err := a.Inverse()
	if err != nil {
		t.Fatalf("unexpected error inverting: %v", err)
	}
	roundTrip := a.Mul(inv)
	if !roundTrip.Equals(Identity4()) {
		t.Errorf("A * A^-1 should be identity, got %v", roundTrip)
	}
}

func TestMatrixInverseSingular(t *testing.T) {
	singular := NewMatrix4([16]float64{
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	})
	if _, err := singular.Inverse(); err == nil {
		t.Fatal("expected error inverting singular matrix")
	}
}

func TestMatrixMulTuple(t *testing.T) {
	a := NewMatrix4([16]float64{
		1, 2, 3, 4,
		2, 4, 4, 2,
		8, 6, 4, 1,
		0, 0, 0, 1,
	})
	b := Tuple{1, 2, 3, 1}
	got := a.MulTuple(b)
	want := Tuple{18, 24, 33, 1}
	if !got.Equals(want) {
		t.Errorf("MulTuple: got %v, want %v", got, want)
	}
}
