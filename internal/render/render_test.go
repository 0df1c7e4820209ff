package render_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resumekit/internal/render"
	"github.com/dmitrymomot/resumekit/internal/resume"
)

func sampleOutput() resume.Output {
	return resume.ToOutput(resume.Document{
		FullName:            "Jane Doe",
		ProfessionalTitle:   "Software Engineer",
		ProfessionalSummary: resume.Ptr("Backend engineer who enjoys building reliable distributed systems and mentoring teams across time zones."),
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
				KeyAchievements: []string{"Cut p99 latency by 40 percent", "Introduced contract tests"},
			},
			{
				CompanyName:     "Globex",
				JobTitle:        "Staff Engineer",
				StartDate:       "2023-07",
				KeyAchievements: []string{"Led the storage migration"},
			},
		},
		EducationHistory: []resume.Education{{
			InstitutionName: "MIT",
			Degree:          "BSc",
			FieldOfStudy:    resume.Ptr("Computer Science"),
			StartDate:       "2012-09",
			EndDate:         resume.Ptr("2016-06"),
		}},
		SkillCategories: []resume.SkillCategory{{CategoryName: "Languages", Skills: []string{"Go", "SQL"}}},
		Hobbies:         []resume.Hobby{{Name: "Climbing", Description: resume.Ptr("Bouldering twice a week")}},
		Languages:       []resume.Language{{Language: "English", Proficiency: resume.ProficiencyNative}},
	})
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	t.Run("accepts every format case-insensitively", func(t *testing.T) {
		for _, name := range []string{"TEXT", "markdown", " Html ", "pdf"} {
			f, err := render.ParseFormat(name)
			require.NoError(t, err, name)
			assert.True(t, f.Valid())
		}
	})

	t.Run("rejects unknown formats", func(t *testing.T) {
		for _, name := range []string{"", "DOCX", "XLSX", "md"} {
			_, err := render.ParseFormat(name)
			assert.ErrorIs(t, err, render.ErrUnsupportedFormat, name)
		}
	})

	t.Run("file names", func(t *testing.T) {
		assert.Equal(t, "Resume.txt", render.FormatText.FileName())
		assert.Equal(t, "Resume.md", render.FormatMarkdown.FileName())
		assert.Equal(t, "Resume.html", render.FormatHTML.FileName())
		assert.Equal(t, "Resume.pdf", render.FormatPDF.FileName())
		assert.Equal(t, "application/pdf", render.FormatPDF.ContentType())
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("unknown format fails before rendering", func(t *testing.T) {
		r, err := render.New(render.Format("DOCX"))
		assert.Nil(t, r)
		assert.ErrorIs(t, err, render.ErrUnsupportedFormat)
	})

	t.Run("every format produces output containing the name as given", func(t *testing.T) {
		names := []string{"Jane Doe", "Conan O'Brien", "Ada_Lovelace", "Łukasz Nowak", "Zoë Saldaña"}
		for _, f := range render.Formats() {
			t.Run(f.String(), func(t *testing.T) {
				r, err := render.New(f)
				require.NoError(t, err)

				for _, name := range names {
					out, err := render.Bytes(context.Background(), r, withFullName(name))
					require.NoError(t, err)
					require.NotEmpty(t, out)

					text := string(out)
					if f == render.FormatPDF {
						text = pdfText(t, out)
					}
					assert.Contains(t, text, name)
				}
			})
		}
	})

	t.Run("does not modify the output value", func(t *testing.T) {
		out := sampleOutput()
		before := resume.FromOutput(out)
		for _, f := range render.Formats() {
			r, err := render.New(f, render.WithQRCode(true))
			require.NoError(t, err)
			_, err = render.Bytes(context.Background(), r, out)
			require.NoError(t, err)
		}
		assert.Equal(t, before, resume.FromOutput(out))
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderWriteFailure(t *testing.T) {
	t.Parallel()

	for _, f := range render.Formats() {
		r, err := render.New(f)
		require.NoError(t, err)
		err = r.Render(context.Background(), sampleOutput(), failingWriter{})
		assert.ErrorIs(t, err, render.ErrRenderFailed, f.String())
	}
}

func TestRenderCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := render.NewText().Render(ctx, sampleOutput(), &buf)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, buf.Len())
}

func TestRendererFunc(t *testing.T) {
	t.Parallel()

	r := render.RendererFunc(func(_ context.Context, out resume.Output, w io.Writer) error {
		_, err := io.WriteString(w, out.FullName)
		return err
	})
	b, err := render.Bytes(context.Background(), r, sampleOutput())
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", string(b))
}
