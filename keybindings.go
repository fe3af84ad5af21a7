package metatext

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// KeyBinding maps a key combination to a command group.
type KeyBinding struct {
	Key   string `yaml:"key"`
	Group string `yaml:"group"`
}

// CommandGroup names the command run by every binding of a group.
type CommandGroup struct {
	Group string `yaml:"group"`
	Name  string `yaml:"name"`
}

// Bindings is the contents of a key-binding file:
//
//	keybindings:
//	  - key: Ctrl+O
//	    group: open
//	commands:
//	  - group: open
//	    name: Open file
type Bindings struct {
	Keys     []KeyBinding   `yaml:"keybindings"`
	Commands []CommandGroup `yaml:"commands"`
}

// LoadBindings decodes a YAML key-binding file. An empty document yields
// empty bindings.
func LoadBindings(r io.Reader) (Bindings, error) {
	var b Bindings
	if err := yaml.NewDecoder(r).Decode(&b); err != nil && !errors.Is(err, io.EOF) {
		return Bindings{}, fmt.Errorf("%w: key bindings: %s", ErrDecode, err)
	}
	return b, nil
}

// KeyBindingOptions returns the layout of the key-binding help overlay.
func KeyBindingOptions() Options {
	return DefaultOptions()
}

// KeyBindingEntries pairs every key binding with the display name of its
// command group, keeping the order of b.Keys. Bindings whose group is not
// defined are skipped.
func KeyBindingEntries(b Bindings) []Entry {
	names := make(map[string]string, len(b.Commands))
	for _, c := range b.Commands {
		if _, ok := names[c.Group]; !ok {
			names[c.Group] = c.Name
		}
	}
	entries := make([]Entry, 0, len(b.Keys))
	for _, k := range b.Keys {
		name, ok := names[k.Group]
		if !ok {
			continue
		}
		entries = append(entries, NewEntry(k.Key, Text(name)))
	}
	return entries
}

// KeyBindingsMessage renders the key-binding help overlay.
func KeyBindingsMessage(b Bindings, opts Options) (string, error) {
	entries := KeyBindingEntries(b)
	opts.Logger.V(1).Info("key bindings resolved", "bindings", len(b.Keys), "shown", len(entries))
	return Render(entries, opts)
}
