package palette

import (
	"image/color"
	"testing"
)

func TestAddColorDedup(t *testing.T) {
	p := New()
	i1 := p.AddColor(color.RGBA{255, 0, 0, 255})
	i2 := p.AddColor(color.RGBA{255, 0, 0, 255})
	if i1 != i2 {
		t.Errorf("adding the same color twice should return the same index, got %d and %d", i1, i2)
	}
	if p.Count() != 1 {
		t.Errorf("expected count 1, got %d", p.Count())
	}
}

func TestGetClosestMatchEmpty(t *testing.T) {
	p := New()
	if got := p.GetClosestMatch(color.RGBA{1, 2, 3, 255}); got != -1 {
		t.Errorf("expected -1 on empty palette, got %d", got)
	}
}

func TestGetClosestMatchExact(t *testing.T) {
	p := New()
	red := color.RGBA{255, 0, 0, 255}
	green := color.RGBA{0, 255, 0, 255}
	p.AddColor(red)
	p.AddColor(green)

	if got := p.GetClosestMatch(red); got != 0 {
		t.Errorf("expected exact match index 0, got %d", got)
	}
	if got := p.GetClosestMatch(green); got != 1 {
		t.Errorf("expected exact match index 1, got %d", got)
	}
}

func TestOverflowReusesNearest(t *testing.T) {
	p := New()
	for i := 0; i < MaxColors; i++ {
		p.AddColor(color.RGBA{uint8(i), 0, 0, 255})
	}
	if p.Count() != MaxColors {
		t.Fatalf("expected full palette, got %d", p.Count())
	}
	idx := p.AddColor(color.RGBA{250, 1, 1, 255})
	if idx < 0 || idx >= MaxColors {
		t.Fatalf("overflow insertion should reuse an existing index, got %d", idx)
	}
}

func TestCloneIsValueCopy(t *testing.T) {
	p := New()
	p.AddColor(color.RGBA{10, 20, 30, 255})
	clone := p.Clone()
	clone.AddColor(color.RGBA{40, 50, 60, 255})
	if p.Count() != 1 {
		t.Errorf("mutating the clone must not affect the original, original count=%d", p.Count())
	}
}
