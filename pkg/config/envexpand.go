package config

import (
	"bytes"
	"os"
	"text/template"
)

// ExpandEnv expands environment variables in YAML content using Go templates.
// Uses {{.VAR_NAME}} syntax to avoid collision with $ in literal values
// (passwords, shell snippets, platform endpoint paths).
//
// Examples:
//   - {{.TIKTOK_WEBHOOK_SECRET}} → value of that environment variable
//   - {{.DB_HOST}}:{{.DB_PORT}} → hostname:port with both variables expanded
//
// Missing variables expand to empty string (unless the template is
// malformed). Validation catches required fields that end up empty.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		// If template parsing fails, return original data. This allows YAML
		// without any template syntax to pass through.
		return data
	}

	envMap := make(map[string]string)
	for _, env := range os.Environ() {
		if idx := bytes.IndexByte([]byte(env), '='); idx > 0 {
			envMap[env[:idx]] = env[idx+1:]
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, envMap); err != nil {
		return data
	}
	return buf.Bytes()
}
