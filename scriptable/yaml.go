package scriptable

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// ToYAML is ToJSON rendered as YAML.
func ToYAML(c Container) ([]byte, error) {
	d, err := ToJSON(c)
	if err != nil {
		return nil, err
	}
	y, err := yaml.JSONToYAML(d)
	if err != nil {
		return nil, fmt.Errorf("encoding nbt yaml: %w", err)
	}
	return y, nil
}

// ParseYAML decodes the YAML form of a ToJSON document.
func ParseYAML(data []byte) (Container, error) {
	d, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadJSON, err)
	}
	return ParseJSON(d)
}
