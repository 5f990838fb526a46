package batchpipe

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when no config
// path is given.
const DefaultConfigFile = ".batchpipe.yml"

// Config is the on-disk project configuration.
//
//	input:
//	  - "images/**/*.png"
//	  - "!images/vendor/**"
//	destination: dist
//	glob: true
//	plugins:
//	  - plugins/strip.lua
//	plugins_dir: plugins
type Config struct {
	Input       []string
	Destination string
	NoGlob      bool
	// Plugins are script paths, run before the ones found in PluginsDir.
	Plugins    []string
	PluginsDir string
}

type rawConfig struct {
	Input       yaml.Node `yaml:"input"`
	Destination string    `yaml:"destination"`
	Glob        *bool     `yaml:"glob"`
	Plugins     yaml.Node `yaml:"plugins"`
	PluginsDir  string    `yaml:"plugins_dir"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %v, with error: %w", path, err)
	}
	return cfg, nil
}

func ParseConfig(data []byte) (*Config, error) {
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	input, err := stringList("input", &raw.Input)
	if err != nil {
		return nil, err
	}
	plugins, err := stringList("plugins", &raw.Plugins)
	if err != nil {
		return nil, err
	}

	return &Config{
		Input:       input,
		Destination: raw.Destination,
		NoGlob:      raw.Glob != nil && !*raw.Glob,
		Plugins:     plugins,
		PluginsDir:  raw.PluginsDir,
	}, nil
}

// stringList decodes a sequence of strings. Absent and null nodes decode to
// nil, anything that is not a sequence is a ConfigError.
func stringList(option string, node *yaml.Node) ([]string, error) {
	if node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.Tag == "!!null") {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, &ConfigError{Option: option, Want: "a list", Got: kindName(node)}
	}
	var out []string
	if err := node.Decode(&out); err != nil {
		return nil, fmt.Errorf("the `%s` option should only hold strings: %w", option, err)
	}
	return out, nil
}

func kindName(node *yaml.Node) string {
	switch node.Kind {
	case yaml.MappingNode:
		return "map"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	case yaml.ScalarNode:
		switch tag := strings.TrimPrefix(node.Tag, "!!"); tag {
		case "str":
			return "string"
		default:
			return tag
		}
	}
	return "unknown"
}
