package pipeline_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resumekit/internal/input"
	"github.com/dmitrymomot/resumekit/internal/pipeline"
	"github.com/dmitrymomot/resumekit/internal/render"
	"github.com/dmitrymomot/resumekit/internal/resume"
	"github.com/dmitrymomot/resumekit/pkg/logger"
	"github.com/dmitrymomot/resumekit/pkg/validator"
)

func validDoc() resume.Document {
	return resume.Document{
		FullName:          "Jane Doe",
		ProfessionalTitle: "Software Engineer",
		ContactMethods:    []resume.ContactMethod{{Type: resume.ContactEmail, Value: "a@b.com"}},
		WorkExperiences: []resume.WorkExperience{{
			CompanyName:     "Acme",
			JobTitle:        "Engineer",
			StartDate:       "2020-01",
			EndDate:         resume.Ptr("2021-01"),
			KeyAchievements: []string{"Shipped feature X"},
		}},
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("renders every format", func(t *testing.T) {
		for _, f := range render.Formats() {
			r, err := render.New(f)
			require.NoError(t, err)

			var buf bytes.Buffer
			res, err := pipeline.New(input.Static(validDoc()), r, pipeline.WithFormat(f)).Run(context.Background(), &buf)
			require.NoError(t, err, f)
			assert.Equal(t, pipeline.StateRendered, res.State)
			assert.Equal(t, f, res.Format)
			assert.Equal(t, int64(buf.Len()), res.Written)
			assert.NotEmpty(t, res.RunID)
			assert.Contains(t, buf.String(), "Jane Doe")
			assert.Equal(t, validDoc(), resume.FromOutput(res.Output))
		}
	})

	t.Run("malformed input is an input failure", func(t *testing.T) {
		var buf bytes.Buffer
		res, err := pipeline.New(input.JSON(strings.NewReader("{")), render.NewText()).Run(context.Background(), &buf)
		require.Error(t, err)
		assert.ErrorIs(t, err, pipeline.ErrInputAcquisition)
		assert.ErrorIs(t, err, input.ErrMalformedInput)
		assert.Equal(t, pipeline.StateFailed, res.State)
		assert.Zero(t, buf.Len())

		pe, ok := pipeline.AsError(err)
		require.True(t, ok)
		assert.Same(t, pe, res.Failure)
		assert.Equal(t, pipeline.StageInput, pe.Stage)
		assert.Empty(t, pe.Field)
	})

	t.Run("unknown enum name is an input failure", func(t *testing.T) {
		doc := validDoc()
		doc.ContactMethods[0].Type = "FAX"
		_, err := pipeline.New(input.Static(doc), render.NewText()).Run(context.Background(), io.Discard)
		assert.ErrorIs(t, err, pipeline.ErrInputAcquisition)
		assert.ErrorIs(t, err, resume.ErrUnknownContactType)
	})

	t.Run("business rule violation is a validation failure", func(t *testing.T) {
		doc := validDoc()
		doc.FullName = "J"
		var buf bytes.Buffer
		res, err := pipeline.New(input.Static(doc), render.NewText()).Run(context.Background(), &buf)
		require.Error(t, err)
		assert.ErrorIs(t, err, pipeline.ErrValidation)
		assert.ErrorIs(t, err, validator.ErrLengthOutOfRange)
		assert.NotErrorIs(t, err, pipeline.ErrOutput)
		assert.Equal(t, pipeline.StateFailed, res.State)
		assert.Zero(t, buf.Len(), "nothing is written for an invalid document")

		pe, ok := pipeline.AsError(err)
		require.True(t, ok)
		assert.Equal(t, pipeline.StageValidation, pe.Stage)
		assert.Equal(t, "Full name", pe.Field)
		assert.Equal(t, "length_out_of_range", pe.Kind)
		assert.Equal(t, "validation failure: Full name: must be 2-100 characters", err.Error())
	})

	t.Run("renderer error is an output failure", func(t *testing.T) {
		boom := errors.New("boom")
		r := render.RendererFunc(func(context.Context, resume.Output, io.Writer) error { return boom })
		res, err := pipeline.New(input.Static(validDoc()), r).Run(context.Background(), io.Discard)
		assert.ErrorIs(t, err, pipeline.ErrOutput)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, pipeline.StateFailed, res.State)
	})

	t.Run("missing renderer is an output failure", func(t *testing.T) {
		_, err := pipeline.New(input.Static(validDoc()), nil).Run(context.Background(), io.Discard)
		assert.ErrorIs(t, err, pipeline.ErrOutput)
		assert.ErrorIs(t, err, pipeline.ErrNoRenderer)
	})

	t.Run("keeps a run id from the context", func(t *testing.T) {
		ctx := pipeline.WithRunID(context.Background(), "req-42")
		res, err := pipeline.New(input.Static(validDoc()), render.NewText()).Run(ctx, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, "req-42", res.RunID)
	})

	t.Run("renderer receives a copy", func(t *testing.T) {
		doc := validDoc()
		r := render.RendererFunc(func(_ context.Context, out resume.Output, _ io.Writer) error {
			out.ContactMethods[0].Value = "mutated"
			return nil
		})
		_, err := pipeline.New(input.Static(doc), r).Run(context.Background(), io.Discard)
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", doc.ContactMethods[0].Value)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid document stops at validated", func(t *testing.T) {
		res, err := pipeline.New(input.Static(validDoc()), nil).Validate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, pipeline.StateValidated, res.State)
	})

	t.Run("is idempotent", func(t *testing.T) {
		p := pipeline.New(input.Static(validDoc()), nil)
		first, err1 := p.Validate(context.Background())
		second, err2 := p.Validate(context.Background())
		assert.NoError(t, err1)
		assert.NoError(t, err2)
		assert.Equal(t, first.Output, second.Output)
	})

	t.Run("reports the first violation", func(t *testing.T) {
		doc := validDoc()
		doc.SoftSkills = []string{"Team Player", "ninja coder"}
		_, err := pipeline.New(input.Static(doc), nil).Validate(context.Background())
		assert.ErrorIs(t, err, pipeline.ErrValidation)
		assert.ErrorIs(t, err, validator.ErrBannedTerm)
	})
}

func TestRunLogging(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	log := logger.New(
		logger.WithOutput(&logs),
		logger.WithLevelName("debug"),
		logger.WithContextExtractors(pipeline.RunIDExtractor()),
	)

	doc := validDoc()
	doc.ProfessionalTitle = "Eng"
	ctx := pipeline.WithRunID(context.Background(), "run-7")
	_, err := pipeline.New(input.Static(doc), render.NewText(), pipeline.WithLogger(log)).Run(ctx, io.Discard)
	require.Error(t, err)

	out := logs.String()
	assert.Contains(t, out, `"run_id":"run-7"`)
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"stage":"validation"`)
	assert.Contains(t, out, `"field":"Professional title"`)
	assert.Contains(t, out, `"transition":"awaiting_input -> mapped"`)
	assert.Contains(t, out, `"msg":"pipeline finished"`)
	assert.Contains(t, out, `"state":"failed"`)
	assert.Contains(t, out, `"component":"pipeline"`)
}
