package cmd

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlUnmarshal decodes b into out, tagging errors with their origin.
func yamlUnmarshal(b []byte, out any) error {
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("yaml unmarshal: %w", err)
	}
	return nil
}

// UnmarshalYAML accepts the item list either as "items" or as the separate
// "files" and "dirs" lists; they are concatenated items, files, dirs.
func (m *manifest) UnmarshalYAML(value *yaml.Node) error {
	var aux struct {
		Name        string     `yaml:"name"`
		Description string     `yaml:"description"`
		Root        string     `yaml:"root"`
		Target      targetSpec `yaml:"target"`
		Credential  string     `yaml:"credential"`
		Mirror      mirrorSpec `yaml:"mirror"`
		Timeout     string     `yaml:"timeout"`
		Items       []string   `yaml:"items"`
		Files       []string   `yaml:"files"`
		Dirs        []string   `yaml:"dirs"`
		Exclude     *[]string  `yaml:"exclude"`
	}
	if err := value.Decode(&aux); err != nil {
		return err
	}
	m.Name = aux.Name
	m.Description = aux.Description
	m.Root = aux.Root
	m.Target = aux.Target
	m.Credential = aux.Credential
	m.Mirror = aux.Mirror
	m.Timeout = aux.Timeout
	m.Items = append(append(append([]string(nil), aux.Items...), aux.Files...), aux.Dirs...)
	if aux.Exclude != nil {
		m.Exclude = append([]string{}, (*aux.Exclude)...)
	}
	return nil
}
