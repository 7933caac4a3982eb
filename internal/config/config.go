// Package config handles loading, storing and selecting jwl
// configuration contexts.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/nils-degroot/jwl/internal/jira"
)

// Authorization kinds stored in the config file.
const (
	AuthKindAPIToken    = "api_token"
	AuthKindAccessToken = "access_token"
)

// ErrContextNameRequired is returned when the config holds multiple
// contexts and no name was passed to pick one.
var ErrContextNameRequired = errors.New("when using multiple contexts, a context name should be passed")

// ContextNotFoundError is returned when no context matches the
// requested name.
type ContextNotFoundError struct {
	Name string
}

func (e *ContextNotFoundError) Error() string {
	return fmt.Sprintf("context `%s` was not found", e.Name)
}

// Authorization is the serialized credential material of a context.
// Kind discriminates the variant explicitly instead of relying on the
// field shape.
type Authorization struct {
	Kind        string `yaml:"kind"`
	Username    string `yaml:"username,omitempty"`
	APIToken    string `yaml:"api_token,omitempty"`
	AccessToken string `yaml:"access_token,omitempty"`
}

// Credentials converts the stored authorization into the form the API
// client applies to requests.
func (a Authorization) Credentials() (jira.Authorization, error) {
	switch a.Kind {
	case AuthKindAPIToken:
		return jira.APIToken{Username: a.Username, Token: a.APIToken}, nil
	case AuthKindAccessToken:
		return jira.AccessToken{Token: a.AccessToken}, nil
	default:
		return nil, fmt.Errorf("unknown authorization kind %q", a.Kind)
	}
}

// Context is a named bundle of tracker domain and credentials. Name
// may be empty in a single-context config.
type Context struct {
	Name          string        `yaml:"name,omitempty"`
	Authorization Authorization `yaml:"authorization"`
	JiraDomain    string        `yaml:"jira_domain"`
}

// File is the on-disk configuration: either a single context written
// as a mapping, or several written as a sequence.
type File struct {
	contexts []Context
	single   bool
}

// SingleContext builds a config file holding exactly one context.
func SingleContext(c Context) File {
	return File{contexts: []Context{c}, single: true}
}

// MultipleContexts builds a config file holding a list of contexts.
func MultipleContexts(cs []Context) File {
	return File{contexts: cs}
}

// Contexts returns the contexts held by the file.
func (f File) Contexts() []Context {
	return f.contexts
}

// Select returns the context to use for an invocation. A
// single-context file always yields its one context; a multi-context
// file requires a name.
func (f File) Select(name string) (Context, error) {
	if len(f.contexts) == 0 {
		return Context{}, errors.New("the config file holds no contexts")
	}
	if f.single {
		return f.contexts[0], nil
	}
	if name == "" {
		return Context{}, ErrContextNameRequired
	}
	for _, c := range f.contexts {
		if c.Name == name {
			return c, nil
		}
	}
	return Context{}, &ContextNotFoundError{Name: name}
}

// UnmarshalYAML accepts both file shapes: a sequence of contexts or a
// single context mapping.
func (f *File) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		f.single = false
		return node.Decode(&f.contexts)
	case yaml.MappingNode:
		var c Context
		if err := node.Decode(&c); err != nil {
			return err
		}
		f.contexts = []Context{c}
		f.single = true
		return nil
	default:
		return errors.New("config must be a context or a list of contexts")
	}
}

// MarshalYAML writes a single-context file back as a plain mapping.
func (f File) MarshalYAML() (interface{}, error) {
	if f.single {
		return f.contexts[0], nil
	}
	return f.contexts, nil
}

// Path returns the config file location under the XDG config
// directory, creating parent directories as needed.
func Path() (string, error) {
	path, err := xdg.ConfigFile(filepath.Join("jwl", "config.yaml"))
	if err != nil {
		return "", fmt.Errorf("resolving config path: %w", err)
	}
	return path, nil
}

// Load reads and parses the config file at the given path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return File{}, fmt.Errorf("no configuration found, run `jwl config` to create one")
	}
	if err != nil {
		return File{}, fmt.Errorf("reading config file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parsing config file: %w", err)
	}
	return f, nil
}

// Store writes the config file to the given path. The file is created
// user-readable only since it holds credentials.
func Store(path string, f File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("serializing config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
