package pwp

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Meta is optional human-facing metadata for a puzzle file, stored
// alongside it as a YAML sidecar (e.g. "level3.pwp" + "level3.yaml").
type Meta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// LoadMeta reads the YAML sidecar for the puzzle at path, trying
// "<path-without-ext>.yaml" then "<path-without-ext>.yml". It returns a
// zero Meta and no error if neither file exists, since metadata is
// optional.
func LoadMeta(path string) (Meta, error) {
	base := strings.TrimSuffix(path, ".pwp")

	for _, ext := range []string{".yaml", ".yml"} {
		data, err := os.ReadFile(base + ext)
		if err != nil {
			continue
		}
		var m Meta
		if err := yaml.Unmarshal(data, &m); err != nil {
			return Meta{}, err
		}
		return m, nil
	}

	return Meta{}, nil
}
