package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sevigo/slash-dispatch/internal/core"
)

var (
	ErrConfigNotFound = errors.New("commands file not found")
	ErrConfigParsing  = errors.New("commands file parsing failed")
)

const (
	defaultEventTypeSuffix = "-command"
	defaultDispatchType    = core.DispatchRepository
	defaultPermission      = core.PermissionWrite
)

// CommandConfig is one entry of the commands file.
type CommandConfig struct {
	Command         string  `yaml:"command"`
	Repository      string  `yaml:"repository"`
	DispatchType    string  `yaml:"dispatch_type"`
	EventTypeSuffix *string `yaml:"event_type_suffix"`
	Permission      string  `yaml:"permission"`
}

type commandsFile struct {
	Commands []CommandConfig `yaml:"commands"`
}

// Commands is the registry of dispatchable commands, keyed by command name.
type Commands struct {
	byName map[string]core.Command
	order  []string
}

// Lookup returns the command definition for name.
func (c *Commands) Lookup(name string) (core.Command, error) {
	cmd, ok := c.byName[name]
	if !ok {
		return core.Command{}, fmt.Errorf("%w: %q", core.ErrUnknownCommand, name)
	}
	return cmd, nil
}

// All returns the commands in file order.
func (c *Commands) All() []core.Command {
	out := make([]core.Command, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}
	return out
}

// LoadCommands loads and validates the commands file at path.
func LoadCommands(path string) (*Commands, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseCommands(data)
}

// ParseCommands parses commands file content, applying defaults.
func ParseCommands(data []byte) (*Commands, error) {
	var file commandsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParsing, err)
	}

	commands := &Commands{byName: make(map[string]core.Command, len(file.Commands))}
	for i, cc := range file.Commands {
		cmd, err := cc.toCommand()
		if err != nil {
			return nil, fmt.Errorf("%w: command #%d: %w", ErrConfigParsing, i+1, err)
		}
		if _, dup := commands.byName[cmd.Command]; dup {
			return nil, fmt.Errorf("%w: duplicate command %q", ErrConfigParsing, cmd.Command)
		}
		commands.byName[cmd.Command] = cmd
		commands.order = append(commands.order, cmd.Command)
	}
	return commands, nil
}

func (cc CommandConfig) toCommand() (core.Command, error) {
	if cc.Command == "" {
		return core.Command{}, errors.New("command name is required")
	}
	if _, err := core.ParseRepository(cc.Repository); err != nil {
		return core.Command{}, err
	}

	dispatchType := defaultDispatchType
	if cc.DispatchType != "" {
		dt, err := core.ParseDispatchType(cc.DispatchType)
		if err != nil {
			return core.Command{}, err
		}
		dispatchType = dt
	}

	permission := defaultPermission
	if cc.Permission != "" {
		p, err := core.ParsePermissionLevel(cc.Permission)
		if err != nil {
			return core.Command{}, err
		}
		permission = p
	}

	suffix := defaultEventTypeSuffix
	if cc.EventTypeSuffix != nil {
		suffix = *cc.EventTypeSuffix
	}

	return core.Command{
		Command:         cc.Command,
		Repository:      cc.Repository,
		DispatchType:    dispatchType,
		EventTypeSuffix: suffix,
		Permission:      permission,
	}, nil
}
