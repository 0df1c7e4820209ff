package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/resumekit/internal/resume"
)

const htmlStyle = `body{font-family:Helvetica,Arial,sans-serif;color:#2c3e50;max-width:52rem;margin:2rem auto;line-height:1.5}` +
	`header h1{margin:0}header h2{margin:0;color:#3498db;font-weight:normal}` +
	`section h3{border-bottom:1px solid #ddd;padding-bottom:.25rem}` +
	`.period{color:#666;font-style:italic}.qr{float:right;width:96px;height:96px}`

// HTML renders a standalone HTML5 page.
type HTML struct {
	opts options
}

func NewHTML(opts ...Option) *HTML {
	return &HTML{opts: newOptions(opts)}
}

func (h *HTML) Render(ctx context.Context, out resume.Output, w io.Writer) error {
	png, link, err := profileQRCode(h.opts, out.Document)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}

	var qr templ.Component
	if png != nil {
		qr = image(pngDataURI(png), "QR code for "+link, "qr")
	}

	var buf bytes.Buffer
	if err := resumePage(out.Document, qr).Render(ctx, &buf); err != nil {
		return fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}
	return writeAll(w, buf.Bytes())
}

func resumePage(doc resume.Document, qr templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="UTF-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1.0">`); err != nil {
			return err
		}
		if err := el("title", "", text(doc.FullName+" - Resume")).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<style>"+htmlStyle+"</style></head><body>"); err != nil {
			return err
		}

		header := []templ.Component{}
		if qr != nil {
			header = append(header, qr)
		}
		header = append(header, el("h1", "", text(doc.FullName)), el("h2", "", text(doc.ProfessionalTitle)))
		if doc.ProfessionalSummary != nil {
			header = append(header, el("p", "summary", text(*doc.ProfessionalSummary)))
		}

		body := []templ.Component{
			el("header", "resume-header", header...),
			htmlSection("contact", sectionContact, contactList(doc.ContactMethods)),
			htmlSection("experience", sectionExperience, experienceList(doc.WorkExperiences)),
		}
		if len(doc.EducationHistory) > 0 {
			body = append(body, htmlSection("education", sectionEducation, educationList(doc.EducationHistory)))
		}
		if len(doc.SkillCategories) > 0 {
			body = append(body, htmlSection("skills", sectionSkills, skillList(doc.SkillCategories)))
		}
		if len(doc.SoftSkills) > 0 {
			body = append(body, htmlSection("soft-skills", sectionSoftSkills, list(doc.SoftSkills, text)))
		}
		if len(doc.Languages) > 0 {
			body = append(body, htmlSection("languages", sectionLanguages, list(doc.Languages, func(l resume.Language) templ.Component {
				return text(languageLine(l))
			})))
		}
		if len(doc.Hobbies) > 0 {
			body = append(body, htmlSection("interests", sectionInterests, list(doc.Hobbies, func(h resume.Hobby) templ.Component {
				return text(hobbyLine(h))
			})))
		}

		if err := el("main", "resume", body...).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

func htmlSection(class, title string, content templ.Component) templ.Component {
	return el("section", class+"-section", el("h3", "", text(title)), content)
}

func contactList(contacts []resume.ContactMethod) templ.Component {
	return list(contacts, func(c resume.ContactMethod) templ.Component {
		value := text(c.Value)
		switch {
		case c.Type.IsURL():
			value = anchor(templ.URL(c.Value), c.Value)
		case c.Type == resume.ContactEmail:
			value = anchor(templ.URL("mailto:"+c.Value), c.Value)
		}
		return templ.Join(el("strong", "", text(c.Type.Label()+": ")), value)
	})
}

func experienceList(items []resume.WorkExperience) templ.Component {
	return group(items, func(exp resume.WorkExperience) templ.Component {
		return el("article", "job",
			el("h4", "", text(exp.CompanyName)),
			el("p", "",
				el("strong", "", text(exp.JobTitle)),
				text(" "),
				el("span", "period", text(period(exp.StartDate, exp.EndDate))),
			),
			list(exp.KeyAchievements, text),
		)
	})
}

func educationList(items []resume.Education) templ.Component {
	return group(items, func(edu resume.Education) templ.Component {
		return el("article", "school",
			el("h4", "", text(edu.InstitutionName)),
			el("p", "", text(degreeLine(edu))),
			el("p", "period", text(period(edu.StartDate, edu.EndDate))),
		)
	})
}

func skillList(items []resume.SkillCategory) templ.Component {
	return group(items, func(cat resume.SkillCategory) templ.Component {
		return el("div", "skill-category",
			el("h4", "", text(cat.CategoryName)),
			list(cat.Skills, text),
		)
	})
}

// Text nodes only need the markup characters escaped. Quotes stay as typed;
// attribute values go through templ.EscapeString.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, textEscaper.Replace(s))
		return err
	})
}

// el writes <tag class="..."> children </tag>.
func el(tag, class string, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		open := "<" + tag
		if class != "" {
			open += ` class="` + templ.EscapeString(class) + `"`
		}
		if _, err := io.WriteString(w, open+">"); err != nil {
			return err
		}
		for _, c := range children {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</"+tag+">")
		return err
	})
}

// anchor writes a link. Unsafe URLs are already replaced by templ.URL.
func anchor(href templ.SafeURL, label string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<a href="`+templ.EscapeString(string(href))+`" rel="noopener">`); err != nil {
			return err
		}
		if err := text(label).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</a>")
		return err
	})
}

func image(src, alt, class string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<img class="%s" src="%s" alt="%s">`,
			templ.EscapeString(class), templ.EscapeString(src), templ.EscapeString(alt))
		return err
	})
}

func list[T any](items []T, item func(T) templ.Component) templ.Component {
	children := make([]templ.Component, 0, len(items))
	for _, it := range items {
		children = append(children, el("li", "", item(it)))
	}
	return el("ul", "", children...)
}

func group[T any](items []T, item func(T) templ.Component) templ.Component {
	children := make([]templ.Component, 0, len(items))
	for _, it := range items {
		children = append(children, item(it))
	}
	return templ.Join(children...)
}
