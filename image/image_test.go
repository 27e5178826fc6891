package image

import (
	"image/color"
	"testing"
)

func TestImage(t *testing.T) {
	fg := color.NRGBA{255, 255, 255, 255}
	bg := color.NRGBA{0, 0, 0, 255}

	img, err := Image(200, "they/them", "their theirs themselves", fg, bg)
	if err != nil {
		t.Fatal(err)
	}

	b := img.Bounds()
	if b.Dy() != 200 {
		t.Errorf("height: %d", b.Dy())
	}
	if b.Dx() <= 50 {
		t.Errorf("width too small: %d", b.Dx())
	}

	if c := img.NRGBAAt(0, 0); c != bg {
		t.Errorf("corner not background: %v", c)
	}

	drawn := false
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			drawn = true
			break
		}
	}
	if !drawn {
		t.Error("nothing drawn")
	}

	short, err := Image(200, "e/em", "", fg, bg)
	if err != nil {
		t.Fatal(err)
	}
	if short.Bounds().Dx() >= b.Dx() {
		t.Errorf("expected narrower image: %d >= %d", short.Bounds().Dx(), b.Dx())
	}
}

func BenchmarkImage(b *testing.B) {
	fg := color.NRGBA{255, 255, 255, 255}
	for i := 0; i < b.N; i++ {
		if _, err := Image(300, "xe/xem", "xyr xyrs xemself", fg, color.NRGBA{}); err != nil {
			b.Fatal(err)
		}
	}
}
