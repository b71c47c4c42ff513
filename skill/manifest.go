package skill

import "gopkg.in/yaml.v3"

// Manifest is the discovery metadata a skill publishes to the caller
// framework. Each skill binary prints its manifest as YAML and exits when
// invoked with the -describe flag.
type Manifest struct {
	Name        string      `yaml:"name" json:"name"`
	Version     string      `yaml:"version" json:"version"`
	Description string      `yaml:"description" json:"description"`
	Params      []ParamSpec `yaml:"params,omitempty" json:"params,omitempty"`
}

// ParamSpec describes one entry of the invocation params object.
type ParamSpec struct {
	Name        string `yaml:"name" json:"name"`
	Type        string `yaml:"type" json:"type"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`
}

// YAML renders the manifest for the -describe output.
func (m Manifest) YAML() (string, error) {
	b, err := yaml.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
