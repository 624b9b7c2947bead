package shorebreak

import (
	"testing"
)

func TestVector_Normalize(t *testing.T) {
	v := Vector{}
	u := v.Normalize()
	if u.X != 0.0 || u.Y != 0.0 {
		t.Errorf("Expected zero vector, got %v", u)
	}
	if !u.IsFinite() {
		t.Errorf("Normalizing the zero vector went non-finite: %v", u)
	}

	u = Vector{3, 4}.Normalize()
	if d := u.Length() - 1; d > 1e-12 || d < -1e-12 {
		t.Errorf("Expected unit length, got %v", u.Length())
	}
}

func TestVector_ReversePerp(t *testing.T) {
	v := Vector{1, 2}
	if v.Dot(v.ReversePerp()) != 0 {
		t.Errorf("ReversePerp not perpendicular: %v", v.ReversePerp())
	}
	if (Vector{1, 0}).ReversePerp() != (Vector{0, -1}) {
		t.Errorf("ReversePerp should rotate clockwise, got %v", Vector{1, 0}.ReversePerp())
	}
}

func TestVector_IsFinite(t *testing.T) {
	if !(Vector{1, 2}).IsFinite() {
		t.Error("finite vector reported non-finite")
	}
	nan := Vector{0, 0}
	nan.X = nan.X / nan.Y // 0/0
	if nan.IsFinite() {
		t.Error("NaN vector reported finite")
	}
}
