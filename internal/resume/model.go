package resume

// Document is a personal resume. The same type is decoded from input,
// validated, and handed to renderers; optional text fields are pointers so
// that "absent" and "empty" stay distinguishable.
type Document struct {
	FullName            string           `json:"fullName" yaml:"fullName"`
	ProfessionalTitle   string           `json:"professionalTitle" yaml:"professionalTitle"`
	ProfessionalSummary *string          `json:"professionalSummary,omitempty" yaml:"professionalSummary,omitempty"`
	ContactMethods      []ContactMethod  `json:"contactMethods" yaml:"contactMethods"`
	SoftSkills          []string         `json:"softSkills,omitempty" yaml:"softSkills,omitempty"`
	WorkExperiences     []WorkExperience `json:"workExperiences" yaml:"workExperiences"`
	EducationHistory    []Education      `json:"educationHistory,omitempty" yaml:"educationHistory,omitempty"`
	SkillCategories     []SkillCategory  `json:"skillCategories,omitempty" yaml:"skillCategories,omitempty"`
	Hobbies             []Hobby          `json:"hobbies,omitempty" yaml:"hobbies,omitempty"`
	Languages           []Language       `json:"languages,omitempty" yaml:"languages,omitempty"`
}

type ContactMethod struct {
	Type  ContactType `json:"type" yaml:"type"`
	Value string      `json:"value" yaml:"value"`
}

// WorkExperience dates are YYYY-MM strings. A nil EndDate means the position is current.
type WorkExperience struct {
	CompanyName     string   `json:"companyName" yaml:"companyName"`
	JobTitle        string   `json:"jobTitle" yaml:"jobTitle"`
	StartDate       string   `json:"startDate" yaml:"startDate"`
	EndDate         *string  `json:"endDate,omitempty" yaml:"endDate,omitempty"`
	KeyAchievements []string `json:"keyAchievements" yaml:"keyAchievements"`
}

type Education struct {
	InstitutionName string  `json:"institutionName" yaml:"institutionName"`
	Degree          string  `json:"degree" yaml:"degree"`
	FieldOfStudy    *string `json:"fieldOfStudy,omitempty" yaml:"fieldOfStudy,omitempty"`
	StartDate       string  `json:"startDate" yaml:"startDate"`
	EndDate         *string `json:"endDate,omitempty" yaml:"endDate,omitempty"`
}

type SkillCategory struct {
	CategoryName string   `json:"categoryName" yaml:"categoryName"`
	Skills       []string `json:"skills" yaml:"skills"`
}

type Language struct {
	Language    string      `json:"language" yaml:"language"`
	Proficiency Proficiency `json:"proficiency" yaml:"proficiency"`
}

type Hobby struct {
	Name        string  `json:"name" yaml:"name"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Output is the render-ready form of a validated Document.
// Renderers accept only Output, so unvalidated input cannot reach them
// without passing through ToOutput.
type Output struct {
	Document
}

// ToOutput copies doc into its render-ready form. The result shares no
// memory with doc.
func ToOutput(doc Document) Output {
	return Output{Document: doc.Clone()}
}

// FromOutput copies the render-ready form back into a Document.
func FromOutput(out Output) Document {
	return out.Document.Clone()
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	c := d
	c.ProfessionalSummary = cloneString(d.ProfessionalSummary)
	c.ContactMethods = cloneSlice(d.ContactMethods, func(m ContactMethod) ContactMethod { return m })
	c.SoftSkills = cloneSlice(d.SoftSkills, func(s string) string { return s })
	c.WorkExperiences = cloneSlice(d.WorkExperiences, func(w WorkExperience) WorkExperience {
		w.EndDate = cloneString(w.EndDate)
		w.KeyAchievements = cloneSlice(w.KeyAchievements, func(s string) string { return s })
		return w
	})
	c.EducationHistory = cloneSlice(d.EducationHistory, func(e Education) Education {
		e.FieldOfStudy = cloneString(e.FieldOfStudy)
		e.EndDate = cloneString(e.EndDate)
		return e
	})
	c.SkillCategories = cloneSlice(d.SkillCategories, func(s SkillCategory) SkillCategory {
		s.Skills = cloneSlice(s.Skills, func(v string) string { return v })
		return s
	})
	c.Hobbies = cloneSlice(d.Hobbies, func(h Hobby) Hobby {
		h.Description = cloneString(h.Description)
		return h
	})
	c.Languages = cloneSlice(d.Languages, func(l Language) Language { return l })
	return c
}

// cloneSlice keeps nil as nil so that absent and empty collections survive a copy.
func cloneSlice[T any](in []T, cp func(T) T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = cp(v)
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// Ptr returns a pointer to v. Handy for optional fields in literals.
func Ptr[T any](v T) *T {
	return &v
}
