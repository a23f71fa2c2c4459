package process

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CommandConfig mirrors one entry of a commands.yaml allow-list.
type CommandConfig struct {
	Name        string   `yaml:"name"`
	Command     string   `yaml:"command"`
	Args        []string `yaml:"args"`
	Description string   `yaml:"description"`
}

type configFile struct {
	Commands []CommandConfig `yaml:"commands"`
}

// LoadCommands reads a yaml allow-list and returns it keyed by name,
// ready for WithCommands. Entries without a name are dropped.
func LoadCommands(path string) (map[string]Command, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read command registry: %w", err)
	}

	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse command registry %s: %w", path, err)
	}

	commands := make(map[string]Command, len(cfg.Commands))
	for _, c := range cfg.Commands {
		if c.Name == "" {
			continue
		}
		commands[c.Name] = Command{Command: c.Command, Args: c.Args}
	}
	return commands, nil
}
