package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrymomot/resumekit/internal/resume"
)

var (
	textSectionBreak    = strings.Repeat("-", lineWidth)
	textSubsectionBreak = strings.Repeat("~", 60)
)

// Text renders a plain-text resume laid out for an 80-column terminal.
type Text struct{}

func NewText() *Text {
	return &Text{}
}

func (t *Text) Render(ctx context.Context, out resume.Output, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b bytes.Buffer
	doc := out.Document

	fmt.Fprintln(&b, center(doc.FullName, lineWidth))
	fmt.Fprintln(&b, center(doc.ProfessionalTitle, lineWidth))
	if doc.ProfessionalSummary != nil {
		b.WriteByte('\n')
		for _, line := range wrap(*doc.ProfessionalSummary, lineWidth) {
			fmt.Fprintln(&b, line)
		}
	}

	textSection(&b, sectionContact, func() {
		for _, c := range doc.ContactMethods {
			fmt.Fprintf(&b, "%-10s: %s\n", c.Type.Label(), c.Value)
		}
	})

	textSection(&b, sectionExperience, func() {
		for i, exp := range doc.WorkExperiences {
			if i > 0 {
				fmt.Fprintln(&b, textSubsectionBreak)
			}
			fmt.Fprintln(&b, strings.ToUpper(exp.CompanyName))
			fmt.Fprintln(&b, exp.JobTitle)
			fmt.Fprintln(&b, period(exp.StartDate, exp.EndDate))
			b.WriteByte('\n')
			for _, a := range exp.KeyAchievements {
				textBullet(&b, a)
			}
		}
	})

	if len(doc.EducationHistory) > 0 {
		textSection(&b, sectionEducation, func() {
			for i, edu := range doc.EducationHistory {
				if i > 0 {
					fmt.Fprintln(&b, textSubsectionBreak)
				}
				fmt.Fprintln(&b, strings.ToUpper(edu.InstitutionName))
				fmt.Fprintln(&b, degreeLine(edu))
				fmt.Fprintln(&b, period(edu.StartDate, edu.EndDate))
			}
		})
	}

	if len(doc.SkillCategories) > 0 {
		textSection(&b, sectionSkills, func() {
			for i, cat := range doc.SkillCategories {
				if i > 0 {
					b.WriteByte('\n')
				}
				fmt.Fprintf(&b, "%s:\n", strings.ToUpper(cat.CategoryName))
				for _, line := range wrap(strings.Join(cat.Skills, " "+bullet+" "), lineWidth) {
					fmt.Fprintln(&b, line)
				}
			}
		})
	}

	if len(doc.SoftSkills) > 0 {
		textSection(&b, sectionSoftSkills, func() {
			for _, s := range doc.SoftSkills {
				textBullet(&b, s)
			}
		})
	}

	if len(doc.Languages) > 0 {
		textSection(&b, sectionLanguages, func() {
			for _, l := range doc.Languages {
				fmt.Fprintf(&b, "%-15s (%s)\n", l.Language, l.Proficiency.Label())
			}
		})
	}

	if len(doc.Hobbies) > 0 {
		textSection(&b, sectionInterests, func() {
			for _, h := range doc.Hobbies {
				for _, line := range wrap(hobbyLine(h), lineWidth) {
					fmt.Fprintln(&b, line)
				}
			}
		})
	}

	return writeAll(w, b.Bytes())
}

func textSection(b *bytes.Buffer, title string, body func()) {
	fmt.Fprintln(b, textSectionBreak)
	fmt.Fprintln(b, strings.ToUpper(title))
	b.WriteByte('\n')
	body()
}

// textBullet writes a bulleted item, indenting wrapped continuation lines.
func textBullet(b *bytes.Buffer, item string) {
	for i, line := range wrap(item, lineWidth-2) {
		if i == 0 {
			fmt.Fprintf(b, "%s %s\n", bullet, line)
			continue
		}
		fmt.Fprintf(b, "  %s\n", line)
	}
}
