package texture

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Letter is the text block written on the sheet.
type Letter struct {
	Header    string   `yaml:"header"`
	Body      []string `yaml:"body"`
	Signature []string `yaml:"signature"`
	Date      string   `yaml:"date"`
}

// DefaultLetter returns the stock love letter.
func DefaultLetter() Letter {
	return Letter{
		Header: "My Dearest Elara,",
		Body: []string{
			"I write this to you as the autumn leaves begin to fall,",
			"reminding me of the time we first met by the old oak tree.",
			"Though oceans may divide us now, my heart remains",
			"anchored to the memory of your smile.",
			"",
			"Every day without you feels like a page torn from a book,",
			"incomplete and longing for its resolution. I dream of",
			"the day I can return to your embrace.",
			"",
			"Please wait for me. The war cannot last forever,",
			"but my love for you shall outlast the stars themselves.",
			"",
		},
		Signature: []string{"Yours eternally,", "Arthur"},
		Date:      "October 14th, 1942",
	}
}

var ink = color.NRGBA{R: 0x3e, G: 0x2b, B: 0x26, A: 0xff}

const (
	headerSize   = 48.0
	headerY      = 150.0
	bodySize     = 32.0
	bodyX        = 120.0
	bodyY        = 250.0
	bodyLeading  = 50.0
	lineJitter   = 2.0
	dateSize     = 24.0
	dateInset    = 300.0
	dateBaseline = 80.0
)

var (
	italicFont  = sync.OnceValues(func() (*opentype.Font, error) { return opentype.Parse(goitalic.TTF) })
	regularFont = sync.OnceValues(func() (*opentype.Font, error) { return opentype.Parse(goregular.TTF) })
)

// paintLetter writes the header, body, signature and date in faded ink.
func (c *canvas) paintLetter(l Letter) error {
	italic, err := italicFont()
	if err != nil {
		return fmt.Errorf("parse italic font: %w", err)
	}
	regular, err := regularFont()
	if err != nil {
		return fmt.Errorf("parse regular font: %w", err)
	}

	if l.Header != "" {
		face, err := c.face(italic, headerSize)
		if err != nil {
			return err
		}
		adv := font.MeasureString(face, l.Header)
		x := float64(c.w)/2 - float64(adv)/64/2
		c.drawText(face, l.Header, x, headerY*c.scale)
		face.Close()
	}

	body, err := c.face(italic, bodySize)
	if err != nil {
		return err
	}
	y := bodyY * c.scale
	lines := make([]string, 0, len(l.Body)+len(l.Signature))
	lines = append(lines, l.Body...)
	lines = append(lines, l.Signature...)
	for _, line := range lines {
		jitter := c.rng.Jitter(lineJitter) * c.scale
		if line != "" {
			c.drawText(body, line, bodyX*c.scale, y+jitter)
		}
		y += bodyLeading * c.scale
	}
	body.Close()

	if l.Date != "" {
		face, err := c.face(regular, dateSize)
		if err != nil {
			return err
		}
		c.drawText(face, l.Date, float64(c.w)-dateInset*c.scale, dateBaseline*c.scale)
		face.Close()
	}
	return nil
}

func (c *canvas) face(f *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    math.Max(size*c.scale, 1),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("build %.1fpx face: %w", size*c.scale, err)
	}
	return face, nil
}

func (c *canvas) drawText(face font.Face, s string, x, baseline float64) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(ink),
		Face: face,
		Dot:  fixed.Point26_6{X: toFixed(x), Y: toFixed(baseline)},
	}
	d.DrawString(s)
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
