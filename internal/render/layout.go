package render

import (
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/resumekit/internal/resume"
)

const (
	presentLabel = "Present"
	lineWidth    = 80
	bullet       = "•"
)

// Section titles shared by every format. Text output upper-cases them.
const (
	sectionContact    = "Contact Information"
	sectionExperience = "Professional Experience"
	sectionEducation  = "Education"
	sectionSkills     = "Technical Skills"
	sectionSoftSkills = "Soft Skills"
	sectionLanguages  = "Languages"
	sectionInterests  = "Interests"
)

func period(start string, end *string) string {
	e := presentLabel
	if end != nil {
		e = *end
	}
	return start + " - " + e
}

func degreeLine(e resume.Education) string {
	if e.FieldOfStudy == nil || strings.TrimSpace(*e.FieldOfStudy) == "" {
		return e.Degree
	}
	return e.Degree + " in " + *e.FieldOfStudy
}

func hobbyLine(h resume.Hobby) string {
	if h.Description == nil || strings.TrimSpace(*h.Description) == "" {
		return h.Name
	}
	return h.Name + ": " + *h.Description
}

func languageLine(l resume.Language) string {
	return l.Language + " (" + l.Proficiency.Label() + ")"
}

// profileLink returns the first contact whose value is a link.
func profileLink(doc resume.Document) (string, bool) {
	for _, c := range doc.ContactMethods {
		if c.Type.IsURL() && c.Value != "" {
			return c.Value, true
		}
	}
	return "", false
}

// wrap breaks text into lines of at most width runes at spaces.
// A single word longer than width is kept whole on its own line.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var (
		lines []string
		line  strings.Builder
		n     int
	)
	for _, word := range words {
		wl := utf8.RuneCountInString(word)
		if n > 0 && n+1+wl > width {
			lines = append(lines, line.String())
			line.Reset()
			n = 0
		}
		if n > 0 {
			line.WriteByte(' ')
			n++
		}
		line.WriteString(word)
		n += wl
	}
	return append(lines, line.String())
}

// center pads s on the left so that it sits in the middle of a width-column line.
func center(s string, width int) string {
	pad := (width - utf8.RuneCountInString(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
