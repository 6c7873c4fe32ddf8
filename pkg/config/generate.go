package config

import (
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// GenerateConfigContent renders the default configuration as TOML with
// every value commented out, suitable for writing a starter textkit.toml
func GenerateConfigContent() (string, error) {
	data, err := toml.Marshal(Default())
	if err != nil {
		return "", err
	}

	var result []string
	result = append(result,
		"# textkit configuration. Uncomment values to override the defaults.",
		"")
	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}
		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n") + "\n", nil
}
