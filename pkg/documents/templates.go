package documents

import (
	"embed"
	"fmt"
)

//go:embed templates/*.hbs
var templateFS embed.FS

// loadTemplates reads the body template of every kind
func loadTemplates() (map[Kind]string, error) {
	templates := make(map[Kind]string, len(Kinds()))
	for _, kind := range Kinds() {
		data, err := templateFS.ReadFile(fmt.Sprintf("templates/%s.hbs", kind))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s template: %w", kind, err)
		}
		templates[kind] = string(data)
	}
	return templates, nil
}
