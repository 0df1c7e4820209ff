package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resumekit/internal/render"
	"github.com/dmitrymomot/resumekit/internal/resume"
)

func renderHTML(t *testing.T, out resume.Output, opts ...render.Option) string {
	t.Helper()
	b, err := render.Bytes(context.Background(), render.NewHTML(opts...), out)
	require.NoError(t, err)
	return string(b)
}

func TestHTML(t *testing.T) {
	t.Parallel()

	t.Run("standalone page", func(t *testing.T) {
		html := renderHTML(t, sampleOutput())
		assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
		assert.Contains(t, html, "<title>Jane Doe - Resume</title>")
		assert.Contains(t, html, "<h1>Jane Doe</h1>")
		assert.Contains(t, html, "<h2>Software Engineer</h2>")
		assert.Contains(t, html, "<h3>Professional Experience</h3>")
		assert.Contains(t, html, `<a href="mailto:jane@example.com" rel="noopener">jane@example.com</a>`)
		assert.Contains(t, html, `<a href="https://github.com/janedoe" rel="noopener">`)
		assert.Contains(t, html, "2023-07 - Present")
		assert.True(t, strings.HasSuffix(html, "</body></html>"))
	})

	t.Run("escapes user text", func(t *testing.T) {
		doc := resume.FromOutput(sampleOutput())
		doc.WorkExperiences[0].CompanyName = "<script>alert(1)</script>"
		html := renderHTML(t, resume.ToOutput(doc))
		assert.NotContains(t, html, "<script>")
		assert.Contains(t, html, "&lt;script&gt;")
	})

	t.Run("keeps quotes in text as typed", func(t *testing.T) {
		html := renderHTML(t, withFullName("Conan O'Brien"))
		assert.Contains(t, html, "<title>Conan O'Brien - Resume</title>")
		assert.Contains(t, html, "<h1>Conan O'Brien</h1>")

		html = renderHTML(t, withFullName(`Ben "Benny" & Jerry`))
		assert.Contains(t, html, `<h1>Ben "Benny" &amp; Jerry</h1>`)
	})

	t.Run("unsafe profile links are neutralised", func(t *testing.T) {
		doc := resume.FromOutput(sampleOutput())
		doc.ContactMethods[1].Value = "javascript:alert(1)"
		html := renderHTML(t, resume.ToOutput(doc))
		assert.NotContains(t, html, `href="javascript:`)
	})

	t.Run("qr code only when enabled and a link exists", func(t *testing.T) {
		assert.NotContains(t, renderHTML(t, sampleOutput()), "data:image/png;base64,")
		assert.Contains(t, renderHTML(t, sampleOutput(), render.WithQRCode(true)), `src="data:image/png;base64,`)

		doc := resume.FromOutput(sampleOutput())
		doc.ContactMethods = doc.ContactMethods[:1]
		assert.NotContains(t, renderHTML(t, resume.ToOutput(doc), render.WithQRCode(true)), "data:image/png")
	})
}
