package image

import (
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	fontsOnce sync.Once
	fontsErr  error
	regular   *opentype.Font
	italic    *opentype.Font
)

func parse(b []byte) (*opentype.Font, error) {
	col, err := opentype.ParseCollection(b)
	if err != nil {
		return nil, err
	}
	return col.Font(0)
}

func fonts() error {
	fontsOnce.Do(func() {
		if regular, fontsErr = parse(goregular.TTF); fontsErr != nil {
			return
		}
		italic, fontsErr = parse(goitalic.TTF)
	})
	return fontsErr
}

func face(fnt *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Image renders title above subtitle, both centered. The width of the
// image is derived from the longest line.
func Image(height int, title, subtitle string, fg, bg color.NRGBA) (*image.NRGBA, error) {
	if err := fonts(); err != nil {
		return nil, err
	}

	startX := height / 8
	stopX := height / 8
	startY := height / 8
	stopY := height / 8
	padding := height / 8
	rest := height - startY - padding - stopY
	if rest < 0 {
		rest = 0
	}
	titleSize := float64(rest) * 0.6
	subSize := float64(rest) * 0.3

	big, err := face(regular, titleSize)
	if err != nil {
		return nil, err
	}
	defer big.Close()

	small, err := face(italic, subSize)
	if err != nil {
		return nil, err
	}
	defer small.Close()

	w1 := font.MeasureString(big, title).Ceil()
	w2 := font.MeasureString(small, subtitle).Ceil()
	inner := w1
	if w2 > inner {
		inner = w2
	}

	img := image.NewNRGBA(image.Rect(0, 0, inner+startX+stopX, height))
	if bg.A != 0 {
		for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
			for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
				o := img.PixOffset(x, y)
				img.Pix[o+0] = bg.R
				img.Pix[o+1] = bg.G
				img.Pix[o+2] = bg.B
				img.Pix[o+3] = bg.A
			}
		}
	}

	dwr := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: big,
	}
	dwr.Dot = fixed.P(startX+(inner-w1)/2, startY+int(titleSize))
	dwr.DrawString(title)

	dwr.Face = small
	dwr.Dot = fixed.P(startX+(inner-w2)/2, startY+padding+int(titleSize)+int(subSize))
	dwr.DrawString(subtitle)

	return img, nil
}
