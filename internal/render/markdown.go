package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/dmitrymomot/resumekit/internal/resume"
)

// md backslash-escapes characters that would otherwise start inline markup.
// An underscore between two letters or digits cannot open or close emphasis,
// so names like Ada_Lovelace pass through unchanged. Headings and list
// markers are emitted by the renderer itself.
func md(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range runes {
		switch r {
		case '\\', '`', '*', '[', ']', '<', '>':
			b.WriteByte('\\')
		case '_':
			if i == 0 || i == len(runes)-1 || !isWordRune(runes[i-1]) || !isWordRune(runes[i+1]) {
				b.WriteByte('\\')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Markdown renders a CommonMark resume.
type Markdown struct{}

func NewMarkdown() *Markdown {
	return &Markdown{}
}

func (m *Markdown) Render(ctx context.Context, out resume.Output, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b bytes.Buffer
	doc := out.Document

	fmt.Fprintf(&b, "# %s\n\n", md(doc.FullName))
	fmt.Fprintf(&b, "**%s**\n", md(doc.ProfessionalTitle))
	if doc.ProfessionalSummary != nil {
		fmt.Fprintf(&b, "\n%s\n", md(*doc.ProfessionalSummary))
	}

	mdSection(&b, sectionContact, func() {
		for _, c := range doc.ContactMethods {
			value := md(c.Value)
			if c.Type.IsURL() {
				value = fmt.Sprintf("<%s>", c.Value)
			}
			fmt.Fprintf(&b, "- **%s**: %s\n", c.Type.Label(), value)
		}
	})

	mdSection(&b, sectionExperience, func() {
		for i, exp := range doc.WorkExperiences {
			if i > 0 {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "### %s\n\n", md(exp.CompanyName))
			fmt.Fprintf(&b, "**%s** | %s\n\n", md(exp.JobTitle), period(exp.StartDate, exp.EndDate))
			for _, a := range exp.KeyAchievements {
				fmt.Fprintf(&b, "- %s\n", md(a))
			}
		}
	})

	if len(doc.EducationHistory) > 0 {
		mdSection(&b, sectionEducation, func() {
			for i, edu := range doc.EducationHistory {
				if i > 0 {
					b.WriteByte('\n')
				}
				fmt.Fprintf(&b, "### %s\n\n", md(edu.InstitutionName))
				fmt.Fprintf(&b, "**%s** | %s\n", md(degreeLine(edu)), period(edu.StartDate, edu.EndDate))
			}
		})
	}

	if len(doc.SkillCategories) > 0 {
		mdSection(&b, sectionSkills, func() {
			for i, cat := range doc.SkillCategories {
				if i > 0 {
					b.WriteByte('\n')
				}
				fmt.Fprintf(&b, "### %s\n\n", md(cat.CategoryName))
				for _, s := range cat.Skills {
					fmt.Fprintf(&b, "- %s\n", md(s))
				}
			}
		})
	}

	if len(doc.SoftSkills) > 0 {
		mdSection(&b, sectionSoftSkills, func() {
			for _, s := range doc.SoftSkills {
				fmt.Fprintf(&b, "- %s\n", md(s))
			}
		})
	}

	if len(doc.Languages) > 0 {
		mdSection(&b, sectionLanguages, func() {
			for _, l := range doc.Languages {
				fmt.Fprintf(&b, "- %s\n", md(languageLine(l)))
			}
		})
	}

	if len(doc.Hobbies) > 0 {
		mdSection(&b, sectionInterests, func() {
			for _, h := range doc.Hobbies {
				if h.Description != nil && strings.TrimSpace(*h.Description) != "" {
					fmt.Fprintf(&b, "- **%s**: %s\n", md(h.Name), md(*h.Description))
					continue
				}
				fmt.Fprintf(&b, "- **%s**\n", md(h.Name))
			}
		})
	}

	return writeAll(w, b.Bytes())
}

func mdSection(b *bytes.Buffer, title string, body func()) {
	fmt.Fprintf(b, "\n## %s\n\n", title)
	body()
}
