package core

import (
	"math"
	"testing"
)

func TestVecArithmetic(t *testing.T) {
	a := V(3, -2)
	b := V(1.5, 4)

	if got := a.Add(b); got != V(4.5, 2) {
		t.Errorf("Add = %v, want (4.5, 2)", got)
	}
	if got := a.Sub(b); got != V(1.5, -6) {
		t.Errorf("Sub = %v, want (1.5, -6)", got)
	}
	if got := a.Mul(2); got != V(6, -4) {
		t.Errorf("Mul = %v, want (6, -4)", got)
	}
	if got := b.Div(2); got != V(0.75, 2) {
		t.Errorf("Div = %v, want (0.75, 2)", got)
	}
}

func TestVecFloor(t *testing.T) {
	tests := []struct {
		in   Vec
		want Vec
	}{
		{V(35.7, 35.2), V(35, 35)},
		{V(-0.5, -1.2), V(-1, -2)},
		{V(12, 13), V(12, 13)},
	}
	for _, tt := range tests {
		if got := tt.in.Floor(); got != tt.want {
			t.Errorf("Floor(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestVecLenDist(t *testing.T) {
	if got := V(3, 4).Len(); got != 5 {
		t.Errorf("Len = %v, want 5", got)
	}
	if got := V(1, 1).Dist(V(4, 5)); got != 5 {
		t.Errorf("Dist = %v, want 5", got)
	}
	if got := V(7, -7).Dist(V(7, -7)); got != 0 {
		t.Errorf("Dist to self = %v, want 0", got)
	}
	if math.IsNaN(V(0, 0).Len()) {
		t.Error("Len of zero vector is NaN")
	}
}

func TestVecWithin(t *testing.T) {
	a := V(10, 10)
	b := V(20, 20)
	tests := []struct {
		p    Vec
		want bool
	}{
		{V(10, 10), true},  // left/top edge inclusive
		{V(15, 15), true},
		{V(20, 15), false}, // right edge exclusive
		{V(15, 20), false}, // bottom edge exclusive
		{V(19.999, 19.999), true},
		{V(9.999, 15), false},
		{V(20, 20), false},
	}
	for _, tt := range tests {
		if got := tt.p.Within(a, b); got != tt.want {
			t.Errorf("Within(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}
