package email

import (
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Built-in template names. Disk templates with the same name override them.
const (
	TemplateRescueAlert     = "rescue_alert"
	TemplateAdoptionRequest = "adoption_request"
	TemplateAdoptionStatus  = "adoption_status"
	TemplateReportStatus    = "report_status"
	TemplateShelterStatus   = "shelter_status"
)

// TemplateManager implements TemplateRenderer with an in-memory template set.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}
	tm.loadBuiltins()
	return tm
}

func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()
	return nil
}

// LoadTemplates reads every .html file in dirPath as a template named after
// the file. A missing directory is not an error; the builtins stay in place.
func (tm *TemplateManager) LoadTemplates(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return nil
	}

	return filepath.WalkDir(dirPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", path, err)
		}

		templateName := strings.TrimSuffix(filepath.Base(path), ".html")
		if err := tm.AddTemplate(templateName, string(content)); err != nil {
			return fmt.Errorf("failed to add template %s: %w", templateName, err)
		}
		return nil
	})
}

func (tm *TemplateManager) TemplateNames() []string {
	tm.mutex.RLock()
	defer tm.mutex.RUnlock()

	names := make([]string, 0, len(tm.templates))
	for name := range tm.templates {
		names = append(names, name)
	}
	return names
}

func (tm *TemplateManager) loadBuiltins() {
	builtins := map[string]string{
		TemplateRescueAlert: `<h2>New {{.report_type}} pet report near your shelter</h2>
<p>A {{.pet_type}} was reported {{.report_type}} at {{.location}}.</p>
{{if .description}}<p>{{.description}}</p>{{end}}
<p><a href="{{.dashboard_url}}">Open your dashboard</a> to review the report.</p>`,

		TemplateAdoptionRequest: `<h2>New adoption request for {{.animal_title}}</h2>
<p>{{.requester_name}} ({{.contact}}) wants to adopt {{.animal_title}}.</p>
{{if .message}}<p>Message: {{.message}}</p>{{end}}
<p><a href="{{.dashboard_url}}">Review the request</a>.</p>`,

		TemplateAdoptionStatus: `<h2>Your adoption request was {{.status}}</h2>
<p>The request for {{.animal_title}} is now {{.status}}.</p>
{{if .note}}<p>{{.note}}</p>{{end}}`,

		TemplateReportStatus: `<h2>Update on your pet report</h2>
<p>The report for your {{.pet_type}} is now {{.status}}.</p>
{{if .note}}<p>{{.note}}</p>{{end}}`,

		TemplateShelterStatus: `<h2>Your shelter registration was {{.status}}</h2>
<p>The request for {{.shelter_name}} is now {{.status}}.</p>
{{if .note}}<p>{{.note}}</p>{{end}}`,
	}

	for name, body := range builtins {
		// Builtins are compile-time constants; parse errors are programmer
		// mistakes, not runtime conditions.
		tpl := template.Must(template.New(name).Parse(body))
		tm.templates[name] = tpl
	}
}
