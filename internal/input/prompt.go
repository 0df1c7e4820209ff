package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrymomot/resumekit/internal/resume"
)

// PromptSource collects a resume interactively, one answer per line.
// Repeated entries and list items end at a blank line; optional fields are
// left absent when answered with a blank line. End of input counts as a blank
// answer, so a partial session still yields a document for validation.
type PromptSource struct {
	in  io.Reader
	out io.Writer
}

func Prompt(in io.Reader, out io.Writer) *PromptSource {
	return &PromptSource{in: in, out: out}
}

func (s *PromptSource) Acquire(ctx context.Context) (resume.Document, error) {
	p := &prompter{ctx: ctx, sc: bufio.NewScanner(s.in), out: s.out}

	var doc resume.Document
	doc.FullName = p.ask("Full name")
	if p.eof && doc.FullName == "" {
		if err := p.failure(); err != nil {
			return resume.Document{}, err
		}
		return resume.Document{}, ErrEmptyInput
	}
	doc.ProfessionalTitle = p.ask("Professional title")
	doc.ProfessionalSummary = p.optional("Professional summary (optional)")

	p.heading("Contact methods")
	for {
		kind := p.ask(fmt.Sprintf("Contact type %s (blank to finish)", contactTypeHint()))
		if kind == "" {
			break
		}
		doc.ContactMethods = append(doc.ContactMethods, resume.ContactMethod{
			Type:  resume.ContactType(normalizeEnum(kind)),
			Value: p.ask("Value"),
		})
	}

	p.heading("Work experience")
	for {
		company := p.ask("Company name (blank to finish)")
		if company == "" {
			break
		}
		doc.WorkExperiences = append(doc.WorkExperiences, resume.WorkExperience{
			CompanyName:     company,
			JobTitle:        p.ask("Job title"),
			StartDate:       p.ask("Start date (YYYY-MM)"),
			EndDate:         p.optional("End date (YYYY-MM, blank if current)"),
			KeyAchievements: p.list("Key achievement"),
		})
	}

	p.heading("Education")
	for {
		institution := p.ask("Institution name (blank to finish)")
		if institution == "" {
			break
		}
		doc.EducationHistory = append(doc.EducationHistory, resume.Education{
			InstitutionName: institution,
			Degree:          p.ask("Degree"),
			FieldOfStudy:    p.optional("Field of study (optional)"),
			StartDate:       p.ask("Start date (YYYY-MM)"),
			EndDate:         p.optional("End date (YYYY-MM, blank if ongoing)"),
		})
	}

	p.heading("Technical skills")
	for {
		category := p.ask("Skill category (blank to finish)")
		if category == "" {
			break
		}
		doc.SkillCategories = append(doc.SkillCategories, resume.SkillCategory{
			CategoryName: category,
			Skills:       p.list("Skill"),
		})
	}

	p.heading("Soft skills")
	doc.SoftSkills = p.list("Soft skill")

	p.heading("Languages")
	for {
		language := p.ask("Language (blank to finish)")
		if language == "" {
			break
		}
		doc.Languages = append(doc.Languages, resume.Language{
			Language:    language,
			Proficiency: resume.Proficiency(normalizeEnum(p.ask(fmt.Sprintf("Proficiency %s", proficiencyHint())))),
		})
	}

	p.heading("Hobbies")
	for {
		name := p.ask("Hobby (blank to finish)")
		if name == "" {
			break
		}
		doc.Hobbies = append(doc.Hobbies, resume.Hobby{
			Name:        name,
			Description: p.optional("Description (optional)"),
		})
	}

	if err := p.failure(); err != nil {
		return resume.Document{}, err
	}
	return doc, nil
}

// prompter tracks the first failure; once set, every question answers blank.
type prompter struct {
	ctx context.Context
	sc  *bufio.Scanner
	out io.Writer
	eof bool
	err error
}

func (p *prompter) failure() error {
	if p.err != nil {
		return p.err
	}
	if err := p.sc.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	return nil
}

func (p *prompter) heading(title string) {
	if p.eof || p.err != nil {
		return
	}
	fmt.Fprintf(p.out, "\n== %s ==\n", title)
}

func (p *prompter) ask(question string) string {
	if p.eof || p.err != nil {
		return ""
	}
	if err := p.ctx.Err(); err != nil {
		p.err = err
		return ""
	}
	fmt.Fprintf(p.out, "%s: ", question)
	if !p.sc.Scan() {
		p.eof = true
		return ""
	}
	return strings.TrimSpace(p.sc.Text())
}

func (p *prompter) optional(question string) *string {
	if answer := p.ask(question); answer != "" {
		return &answer
	}
	return nil
}

// list collects items until a blank answer. No items yields nil.
func (p *prompter) list(item string) []string {
	var items []string
	for {
		answer := p.ask(fmt.Sprintf("%s #%d (blank to finish)", item, len(items)+1))
		if answer == "" {
			return items
		}
		items = append(items, answer)
	}
}

func normalizeEnum(s string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), " ", "_")
}

func contactTypeHint() string {
	return "[EMAIL, PHONE, LINKEDIN, GITHUB, PORTFOLIO, CITY, COUNTRY, ...]"
}

func proficiencyHint() string {
	names := make([]string, 0, len(resume.Proficiencies()))
	for _, p := range resume.Proficiencies() {
		names = append(names, string(p))
	}
	return "[" + strings.Join(names, ", ") + "]"
}
