package blockpath

import (
	"math"
	"testing"
)

func TestMatrix_Identity(t *testing.T) {
	m := Identity()
	if !m.IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	p := Pt(3, 4)
	if got := m.TransformPoint(p); got != p {
		t.Errorf("identity transform moved %v to %v", p, got)
	}
}

func TestMatrix_TranslateScale(t *testing.T) {
	p := Pt(1, 2)

	if got := Translate(10, 20).TransformPoint(p); got != Pt(11, 22) {
		t.Errorf("translate = %v, want (11,22)", got)
	}
	if got := Scale(2, 3).TransformPoint(p); got != Pt(2, 6) {
		t.Errorf("scale = %v, want (2,6)", got)
	}

	// Scale then translate, composed as translate * scale.
	m := Translate(10, 20).Multiply(Scale(2, 3))
	if got := m.TransformPoint(p); got != Pt(12, 26) {
		t.Errorf("composed = %v, want (12,26)", got)
	}
}

func TestMatrix_Rotate(t *testing.T) {
	m := Rotate(math.Pi / 2)
	got := m.TransformPoint(Pt(1, 0))
	if got.Distance(Pt(0, 1)) > 1e-12 {
		t.Errorf("quarter rotation of (1,0) = %v, want (0,1)", got)
	}
}

func TestMatrix_Invert(t *testing.T) {
	m := Translate(5, -3).Multiply(Scale(2, 4))
	inv := m.Invert()

	p := Pt(7, 11)
	roundTrip := inv.TransformPoint(m.TransformPoint(p))
	if roundTrip.Distance(p) > 1e-12 {
		t.Errorf("invert round-trip = %v, want %v", roundTrip, p)
	}
}

func TestMatrix_InvertSingular(t *testing.T) {
	if got := Scale(0, 0).Invert(); !got.IsIdentity() {
		t.Errorf("singular invert = %+v, want identity", got)
	}
}
