package icon

import (
	"bytes"
	"image/color"
	"testing"
)

func TestPixel(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want color.NRGBA
	}{
		{"corner is transparent", 0, 0, color.NRGBA{}},
		{"outside fade radius", 256, 10, color.NRGBA{}},
		{"top body on axis", 256, 192, color.NRGBA{R: 40, G: 180, B: 100, A: 255}},
		{"top body shaded", 296, 230, color.NRGBA{R: 36, G: 163, B: 90, A: 255}},
		{"top upper cap", 256, 128, topCapColor},
		{"bottom body on axis", 256, 320, color.NRGBA{R: 60, G: 140, B: 220, A: 255}},
		{"bottom lower cap", 256, 384, color.NRGBA{R: 60, G: 140, B: 220, A: 255}},
		{"center hits facing caps", 256, 256, bottomCapColor},
		{"bottom cap overwrites top body", 256, 250, bottomCapColor},
		{"bottom cap overwrites top lower cap", 256, 266, bottomCapColor},
		{"arrowhead", 256, 230, arrowColor},
		{"badge background", 256, 60, color.NRGBA{R: 34, G: 23, B: 89, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pixel(tt.x, tt.y, Size); got != tt.want {
				t.Errorf("Pixel(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestGradient(t *testing.T) {
	tests := []struct {
		y    int
		want color.NRGBA
	}{
		{0, color.NRGBA{R: 30, G: 20, B: 80, A: 255}},
		{256, color.NRGBA{R: 50, G: 35, B: 120, A: 255}},
		{511, color.NRGBA{R: 69, G: 49, B: 159, A: 255}},
	}
	for _, tt := range tests {
		if got := gradient(tt.y, Size); got != tt.want {
			t.Errorf("gradient(%d) = %v, want %v", tt.y, got, tt.want)
		}
	}
}

func TestRim(t *testing.T) {
	got := rim(0.875)
	want := color.NRGBA{R: 50, G: 40, B: 90, A: 127}
	if got != want {
		t.Errorf("rim(0.875) = %v, want %v", got, want)
	}

	if a := rim(badgeRadius).A; a != 255 {
		t.Errorf("rim at inner edge: alpha = %d, want 255", a)
	}
	if a := rim(0.8999).A; a != 0 {
		t.Errorf("rim at outer edge: alpha = %d, want 0", a)
	}

	prev := uint8(255)
	for d := badgeRadius; d < fadeRadius; d += 0.0005 {
		a := rim(d).A
		if a > prev {
			t.Fatalf("rim alpha increased at dist %.4f: %d > %d", d, a, prev)
		}
		prev = a
	}
}

func TestSynthesizeRegions(t *testing.T) {
	img := Synthesize(Size)
	if b := img.Bounds(); b.Dx() != Size || b.Dy() != Size {
		t.Fatalf("bounds = %v, want %dx%d", b, Size, Size)
	}

	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			d := dist(normalize(x, y, Size))
			got := img.NRGBAAt(x, y)
			switch {
			case d >= fadeRadius:
				if got != (color.NRGBA{}) {
					t.Fatalf("(%d, %d) dist %.4f: got %v, want transparent", x, y, d, got)
				}
			case d >= badgeRadius:
				if want := rim(d); got != want {
					t.Fatalf("(%d, %d) dist %.4f: got %v, want rim %v", x, y, d, got, want)
				}
			default:
				if got.A != 255 {
					t.Fatalf("(%d, %d) dist %.4f: interior alpha = %d", x, y, d, got.A)
				}
			}
		}
	}
}

func TestConnectorIsEmpty(t *testing.T) {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if inConnector(normalize(x, y, Size)) {
				t.Fatalf("connector covers (%d, %d)", x, y)
			}
		}
	}
}

func TestArrowTapers(t *testing.T) {
	// Width shrinks toward the tip, so a point just off-axis drops out
	// before the band ends.
	off := 0.05
	if !inArrow([2]float64{off, -0.15}) {
		t.Error("wide end of arrow should cover x=0.05")
	}
	if inArrow([2]float64{off, -0.04}) {
		t.Error("narrow end of arrow should not cover x=0.05")
	}
	if inArrow([2]float64{0, -0.17}) || inArrow([2]float64{0, -0.02}) {
		t.Error("arrow must stay inside its band")
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	a := Synthesize(Size)
	b := Synthesize(Size)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("two renders differ")
	}
}

func TestSynthesizeEmpty(t *testing.T) {
	for _, n := range []int{0, -4} {
		if img := Synthesize(n); !img.Bounds().Empty() {
			t.Errorf("Synthesize(%d) bounds = %v, want empty", n, img.Bounds())
		}
	}
}
