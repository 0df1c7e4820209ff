package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/dmitrymomot/resumekit/internal/resume"
)

// Page geometry in millimetres.
const (
	pdfMargin     = 18.0
	pdfLineHeight = 6.0
	pdfSectionGap = 4.0
	pdfQRSide     = 28.0
)

type rgb struct{ r, g, b int }

var (
	pdfPrimary   = rgb{44, 62, 80}
	pdfSecondary = rgb{52, 152, 219}
	pdfBody      = rgb{0, 0, 0}
	pdfMuted     = rgb{90, 90, 90}
)

// PDF renders an A4 document with the embedded Go fonts. Text the fonts
// cannot draw fails the render instead of being dropped.
// Content streams are written uncompressed.
type PDF struct {
	opts options
	now  func() time.Time
}

func NewPDF(opts ...Option) *PDF {
	return &PDF{opts: newOptions(opts), now: time.Now}
}

func (p *PDF) Render(ctx context.Context, out resume.Output, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc := out.Document
	glyphs, err := newGlyphChecker()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetCreationDate(p.now())
	pdf.SetTitle(doc.FullName+" - Resume", true)
	pdf.SetAuthor(doc.FullName, true)
	pdf.SetCreator("resumekit", false)
	registerPDFFonts(pdf)
	pdf.AddPage()

	pw := &pdfWriter{
		pdf:    pdf,
		glyphs: glyphs,
		width:  pageWidth(pdf),
	}

	png, _, err := profileQRCode(p.opts, doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}
	if png != nil {
		pw.qrCode(png)
	}

	pw.line(doc.FullName, "B", 24, pdfPrimary, 1.5)
	pw.line(doc.ProfessionalTitle, "", 16, pdfSecondary, 1.5)
	if doc.ProfessionalSummary != nil {
		pw.paragraph(*doc.ProfessionalSummary, 11, pdfBody, 0)
	}
	pw.rule()

	pw.section(sectionContact)
	for _, c := range doc.ContactMethods {
		pw.paragraph(c.Type.Label()+": "+c.Value, 11, pdfBody, 4)
	}

	pw.section(sectionExperience)
	for _, exp := range doc.WorkExperiences {
		pw.indented(exp.CompanyName, "B", 13, pdfPrimary, 4)
		pw.split(exp.JobTitle, period(exp.StartDate, exp.EndDate))
		for _, a := range exp.KeyAchievements {
			pw.paragraph(bullet+" "+a, 10.5, pdfBody, 8)
		}
		pw.pdf.Ln(pdfSectionGap / 2)
	}

	if len(doc.EducationHistory) > 0 {
		pw.section(sectionEducation)
		for _, edu := range doc.EducationHistory {
			pw.indented(edu.InstitutionName, "B", 13, pdfPrimary, 4)
			pw.paragraph(degreeLine(edu), 11, pdfBody, 4)
			pw.indented(period(edu.StartDate, edu.EndDate), "I", 10.5, pdfMuted, 4)
			pw.pdf.Ln(pdfSectionGap / 2)
		}
	}

	if len(doc.SkillCategories) > 0 {
		pw.section(sectionSkills)
		for _, cat := range doc.SkillCategories {
			pw.indented(cat.CategoryName+":", "B", 11, pdfPrimary, 4)
			pw.paragraph(strings.Join(cat.Skills, ", "), 10.5, pdfBody, 8)
		}
	}

	if len(doc.SoftSkills) > 0 {
		pw.section(sectionSoftSkills)
		pw.paragraph(strings.Join(doc.SoftSkills, ", "), 10.5, pdfBody, 4)
	}

	if len(doc.Languages) > 0 {
		pw.section(sectionLanguages)
		for _, l := range doc.Languages {
			pw.paragraph(languageLine(l), 11, pdfBody, 4)
		}
	}

	if len(doc.Hobbies) > 0 {
		pw.section(sectionInterests)
		for _, h := range doc.Hobbies {
			pw.paragraph(hobbyLine(h), 10.5, pdfBody, 4)
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if pw.err != nil {
		return fmt.Errorf("%w: %w", ErrRenderFailed, pw.err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}
	return writeAll(w, buf.Bytes())
}

func pageWidth(pdf *fpdf.Fpdf) float64 {
	w, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	return w - left - right
}

// pdfWriter keeps the content width and the first glyph error for one document.
type pdfWriter struct {
	pdf    *fpdf.Fpdf
	glyphs *glyphChecker
	width  float64
	err    error
}

func (pw *pdfWriter) tr(s string) string {
	if pw.err == nil {
		pw.err = pw.glyphs.check(s)
	}
	return s
}

func (pw *pdfWriter) style(fontStyle string, size float64, c rgb) {
	pw.pdf.SetFont(pdfFont, fontStyle, size)
	pw.pdf.SetTextColor(c.r, c.g, c.b)
}

// line writes a single line and advances by gap line heights.
func (pw *pdfWriter) line(s, fontStyle string, size float64, c rgb, gap float64) {
	pw.style(fontStyle, size, c)
	pw.pdf.CellFormat(pw.width, pdfLineHeight*gap, pw.tr(s), "", 1, "L", false, 0, "")
}

func (pw *pdfWriter) indented(s, fontStyle string, size float64, c rgb, indent float64) {
	pw.style(fontStyle, size, c)
	pw.pdf.SetX(pdfMargin + indent)
	pw.pdf.CellFormat(pw.width-indent, pdfLineHeight, pw.tr(s), "", 1, "L", false, 0, "")
}

// paragraph writes wrapped text starting at the given indent.
func (pw *pdfWriter) paragraph(s string, size float64, c rgb, indent float64) {
	pw.style("", size, c)
	pw.pdf.SetX(pdfMargin + indent)
	pw.pdf.MultiCell(pw.width-indent, pdfLineHeight, pw.tr(s), "", "L", false)
}

// split writes left-aligned and right-aligned text on the same line.
func (pw *pdfWriter) split(left, right string) {
	pw.style("", 11, pdfBody)
	pw.pdf.SetX(pdfMargin + 4)
	pw.pdf.CellFormat(pw.width-4, pdfLineHeight, pw.tr(left), "", 0, "L", false, 0, "")
	pw.style("", 10.5, pdfMuted)
	pw.pdf.SetX(pdfMargin)
	pw.pdf.CellFormat(pw.width, pdfLineHeight, pw.tr(right), "", 1, "R", false, 0, "")
}

func (pw *pdfWriter) section(title string) {
	pw.pdf.Ln(pdfSectionGap)
	pw.line(title, "B", 14, pdfPrimary, 1.2)
}

func (pw *pdfWriter) rule() {
	y := pw.pdf.GetY() + pdfSectionGap/2
	pw.pdf.SetDrawColor(pdfSecondary.r, pdfSecondary.g, pdfSecondary.b)
	pw.pdf.Line(pdfMargin, y, pdfMargin+pw.width, y)
	pw.pdf.SetY(y + pdfSectionGap/2)
}

// qrCode places the code in the top-right corner without moving the cursor.
func (pw *pdfWriter) qrCode(png []byte) {
	opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pw.pdf.RegisterImageOptionsReader("profile-qr", opts, bytes.NewReader(png))
	pw.pdf.ImageOptions("profile-qr", pdfMargin+pw.width-pdfQRSide, pdfMargin, pdfQRSide, pdfQRSide, false, opts, 0, "")
}
