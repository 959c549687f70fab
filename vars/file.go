package vars

import (
	"os"

	"github.com/glitchworks/gldemo/logging"
	"gopkg.in/yaml.v3"
)

// LoadFile applies variables from a YAML file of Name: value pairs. A missing or
// unreadable file, an unknown variable name, and a non-scalar value are all fatal.
func LoadFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fail("Failed to read variable file.",
			logging.String("path", path), logging.String("error", err.Error()))
		return
	}
	applyYAML(path, data)
}

// LoadFileIfExists is LoadFile, except that a missing file is silently skipped.
func LoadFileIfExists(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return
		}
		fail("Failed to read variable file.",
			logging.String("path", path), logging.String("error", err.Error()))
		return
	}
	applyYAML(path, data)
}

func applyYAML(path string, data []byte) {
	values := make(map[string]yaml.Node)
	if err := yaml.Unmarshal(data, &values); err != nil {
		fail("Failed to parse variable file.",
			logging.String("path", path), logging.String("error", err.Error()))
		return
	}
	for name, node := range values {
		d := lookup(name)
		if d == nil {
			fail("Variable file contains a value for an unknown variable.",
				logging.String("path", path), logging.String("name", name))
			continue
		}
		if node.Kind != yaml.ScalarNode {
			fail("Variable value must be a scalar.",
				logging.String("path", path), logging.String("name", name))
			continue
		}
		d.set(node.Value)
	}
}
