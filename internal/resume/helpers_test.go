package resume_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resumekit/internal/resume"
	"github.com/dmitrymomot/resumekit/pkg/validator"
)

func validDocument() resume.Document {
	return resume.Document{
		FullName:            "Jane Doe",
		ProfessionalTitle:   "Software Engineer",
		ProfessionalSummary: resume.Ptr("Backend engineer focused on distributed systems."),
		ContactMethods: []resume.ContactMethod{
			{Type: resume.ContactEmail, Value: "jane@example.com"},
			{Type: resume.ContactGitHub, Value: "https://github.com/janedoe"},
			{Type: resume.ContactCity, Value: "Lisbon"},
		},
		SoftSkills: []string{"Team Player", "Mentoring"},
		WorkExperiences: []resume.WorkExperience{
			{
				CompanyName:     "Acme Corp",
				JobTitle:        "Senior Engineer",
				StartDate:       "2020-01",
				EndDate:         resume.Ptr("2023-06"),
				KeyAchievements: []string{"Cut p99 latency by 40 percent"},
			},
			{
				CompanyName:     "Globex",
				JobTitle:        "Staff Engineer",
				StartDate:       "2023-07",
				KeyAchievements: []string{"Led the storage migration"},
			},
		},
		EducationHistory: []resume.Education{
			{
				InstitutionName: "MIT",
				Degree:          "BSc",
				FieldOfStudy:    resume.Ptr("Computer Science"),
				StartDate:       "2012-09",
				EndDate:         resume.Ptr("2016-06"),
			},
		},
		SkillCategories: []resume.SkillCategory{
			{CategoryName: "Languages", Skills: []string{"Go", "SQL", "Python"}},
		},
		Hobbies: []resume.Hobby{
			{Name: "Climbing", Description: resume.Ptr("Bouldering twice a week")},
		},
		Languages: []resume.Language{
			{Language: "English", Proficiency: resume.ProficiencyNative},
			{Language: "Portuguese", Proficiency: resume.ProficiencyIntermediate},
		},
	}
}

// requireViolation asserts err is a ValidationError of the given kind and field.
func requireViolation(t *testing.T, err error, kind error, field string) validator.ValidationError {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, kind)
	ve, ok := validator.ExtractValidationError(err)
	require.True(t, ok, "expected a ValidationError, got %T", err)
	assert.Equal(t, field, ve.Field)
	return ve
}
