package render

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FrontMatter is the YAML header prepended to every report, consumed by
// the downstream Markdown→PDF conversion step.
type FrontMatter struct {
	Title    string         `yaml:"title"`
	Subtitle string         `yaml:"subtitle,omitempty"`
	Lang     string         `yaml:"lang,omitempty"`
	Extra    map[string]any `yaml:",inline"`
}

// Render marshals the front matter between "---" fences.
func (fm FrontMatter) Render() (string, error) {
	body, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("render: marshal front matter: %w", err)
	}
	return "---\n" + string(body) + "---\n", nil
}
