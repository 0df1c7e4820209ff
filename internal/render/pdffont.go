package render

import (
	"fmt"
	"sync"
	"unicode"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

const pdfFont = "Go"

// The three faces share one character set, so coverage is checked against
// the regular face only.
var coverageFont = sync.OnceValues(func() (*sfnt.Font, error) {
	return sfnt.Parse(goregular.TTF)
})

func registerPDFFonts(pdf *fpdf.Fpdf) {
	pdf.AddUTF8FontFromBytes(pdfFont, "", goregular.TTF)
	pdf.AddUTF8FontFromBytes(pdfFont, "B", gobold.TTF)
	pdf.AddUTF8FontFromBytes(pdfFont, "I", goitalic.TTF)
}

// glyphChecker reports the first rune the embedded font cannot draw.
type glyphChecker struct {
	font *sfnt.Font
	buf  sfnt.Buffer
}

func newGlyphChecker() (*glyphChecker, error) {
	f, err := coverageFont()
	if err != nil {
		return nil, err
	}
	return &glyphChecker{font: f}, nil
}

func (g *glyphChecker) check(s string) error {
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			continue
		}
		idx, err := g.font.GlyphIndex(&g.buf, r)
		if err != nil {
			return err
		}
		if idx == 0 {
			return fmt.Errorf("no glyph for %q (U+%04X) in %q", r, r, s)
		}
	}
	return nil
}
