package render

import (
	"errors"
	"testing"
)

func TestHex(t *testing.T) {
	c := Hex(0x25854b)
	want := Color{R: 37.0 / 255, G: 133.0 / 255, B: 75.0 / 255, A: 1}
	if c != want {
		t.Errorf("Hex = %+v, want %+v", c, want)
	}
	if aqua := Hex(0x00ffff); aqua != (Color{R: 0, G: 1, B: 1, A: 1}) {
		t.Errorf("aqua = %+v", aqua)
	}
}

func TestTranslationApply(t *testing.T) {
	p := Translation(15, -20).Apply(Pt(100, 100))
	if p != Pt(115, 80) {
		t.Errorf("Apply = %+v", p)
	}
	if q := Identity().Apply(Pt(3, 4)); q != Pt(3, 4) {
		t.Errorf("Identity().Apply = %+v", q)
	}
}

func TestCheckSize(t *testing.T) {
	if err := CheckSize(Size{Width: 800, Height: 600}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, s := range []Size{{0, 600}, {800, 0}, {}} {
		if err := CheckSize(s); !errors.Is(err, ErrEmptySurface) {
			t.Errorf("CheckSize(%v) = %v, want ErrEmptySurface", s, err)
		}
	}
}

func TestCheckContour(t *testing.T) {
	if err := CheckContour([]Point{{}, {}}); err == nil {
		t.Error("expected error for two points")
	}
	if err := CheckContour([]Point{{}, {}, {}}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
