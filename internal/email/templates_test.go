package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateManager_BuiltinsRender(t *testing.T) {
	tm := NewTemplateManager()

	out, err := tm.Render(TemplateRescueAlert, TemplateData{
		"report_type":   "lost",
		"pet_type":      "dog",
		"location":      "Central Park",
		"dashboard_url": "http://app.test/shelter/reports/report-1",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "lost")
	assert.Contains(t, out, "Central Park")
	assert.Contains(t, out, "http://app.test/shelter/reports/report-1")

	out, err = tm.Render(TemplateReportStatus, TemplateData{
		"pet_type": "cat",
		"status":   "rescued",
		"note":     "safe and sound",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "rescued")
	assert.Contains(t, out, "safe and sound")
}

func TestTemplateManager_OptionalFieldsOmitted(t *testing.T) {
	tm := NewTemplateManager()

	out, err := tm.Render(TemplateAdoptionStatus, TemplateData{
		"animal_title": "Rex",
		"status":       "approved",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Rex")
	assert.NotContains(t, out, "<p></p>")
}

func TestTemplateManager_UnknownTemplate(t *testing.T) {
	tm := NewTemplateManager()

	_, err := tm.Render("no_such_template", TemplateData{})
	assert.Error(t, err)
}

func TestTemplateManager_AddTemplateOverridesBuiltin(t *testing.T) {
	tm := NewTemplateManager()

	require.NoError(t, tm.AddTemplate(TemplateRescueAlert, "custom {{.pet_type}}"))

	out, err := tm.Render(TemplateRescueAlert, TemplateData{"pet_type": "dog"})
	require.NoError(t, err)
	assert.Equal(t, "custom dog", out)
}

func TestTemplateManager_EscapesUserContent(t *testing.T) {
	tm := NewTemplateManager()

	out, err := tm.Render(TemplateReportStatus, TemplateData{
		"pet_type": "dog",
		"status":   "open",
		"note":     "<script>alert(1)</script>",
	})
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
}
