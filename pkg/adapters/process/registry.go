package process

import "sync"

// Command defines one allowed external execution.
type Command struct {
	Command string
	Args    []string
}

// Registry is the allow-list of commands leaves may run. Leaves only
// ever execute what was registered here; tick-time input never reaches
// the command line.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
	baseDir  string
}

// RegistryOption configures the registry.
type RegistryOption func(*Registry)

// WithCommands populates the allow-list, typically from LoadCommands.
func WithCommands(commands map[string]Command) RegistryOption {
	return func(r *Registry) {
		for name, cmd := range commands {
			r.commands[name] = cmd
		}
	}
}

// WithBaseDir sets the working directory for executed commands.
func WithBaseDir(dir string) RegistryOption {
	return func(r *Registry) {
		r.baseDir = dir
	}
}

// NewRegistry creates an empty command registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{commands: make(map[string]Command)}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Register adds a trusted command to the allow-list.
func (r *Registry) Register(name, command string, args ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands[name] = Command{Command: command, Args: args}
}

func (r *Registry) lookup(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.commands[name]
	return cmd, ok
}
