package prompts

import (
	"bytes"
	"fmt"
	"text/template"

	"newsletter-agent/internal/domain/entity"
)

type EditorialPromptData struct {
	RawNews string
}

type EditorialTemplate struct {
	tmpl *template.Template
}

func ParseEditorialTemplate(baseTemplate string) (*EditorialTemplate, error) {
	tmpl, err := template.New("editorial").Option("missingkey=error").Parse(baseTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse editorial template: %w", err)
	}
	return &EditorialTemplate{tmpl: tmpl}, nil
}

func (t *EditorialTemplate) Render(raw entity.RawNewsText) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, EditorialPromptData{RawNews: string(raw)}); err != nil {
		return "", fmt.Errorf("render editorial template: %w", err)
	}
	return buf.String(), nil
}

func GenerateEditorialPrompt(baseTemplate string, raw entity.RawNewsText) (string, error) {
	tmpl, err := ParseEditorialTemplate(baseTemplate)
	if err != nil {
		return "", err
	}
	return tmpl.Render(raw)
}
