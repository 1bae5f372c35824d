package config

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

type (
	KeyBinding struct {
		Key              string
		Ctrl, Alt, Shift bool
		Action           string
	}

	// KeyMap maps key names, as the terminal editor reports them (e.g.
	// "ctrl+z", "left", " "), to action names.
	KeyMap struct {
		actions map[string]string
		hints   map[string]string // first key bound to each action
	}
)

//go:embed keybindings.yml
var defaultKeyBindingsYaml []byte

func loadDefaultKeyBindings() []KeyBinding {
	var keyBindings []KeyBinding
	err := yaml.Unmarshal(defaultKeyBindingsYaml, &keyBindings)
	if err != nil {
		panic(fmt.Errorf("failed to unmarshal keybindings: %w", err))
	}
	return keyBindings
}

func loadCustomKeyBindings() []KeyBinding {
	var keyBindings []KeyBinding
	_, err := ReadCustomConfigYml("keybindings.yml", &keyBindings)
	if err != nil {
		return nil
	}
	return keyBindings
}

// MakeKeyMap builds the key map from the embedded bindings followed by the
// user's keybindings.yml, so user bindings win.
func MakeKeyMap() KeyMap {
	return NewKeyMap(append(loadDefaultKeyBindings(), loadCustomKeyBindings()...))
}

// NewKeyMap builds a key map from the bindings; a later binding of the same
// key replaces an earlier one.
func NewKeyMap(bindings []KeyBinding) KeyMap {
	m := KeyMap{actions: map[string]string{}, hints: map[string]string{}}
	for _, kb := range bindings {
		m.actions[kb.Name()] = kb.Action
	}
	for _, kb := range bindings {
		name := kb.Name()
		if _, ok := m.hints[kb.Action]; !ok && m.actions[name] == kb.Action {
			m.hints[kb.Action] = name
		}
	}
	return m
}

// Name returns the key name in the form the terminal reports it.
func (kb KeyBinding) Name() string {
	var b strings.Builder
	if kb.Alt {
		b.WriteString("alt+")
	}
	if kb.Ctrl {
		b.WriteString("ctrl+")
	}
	if kb.Shift {
		b.WriteString("shift+")
	}
	b.WriteString(kb.Key)
	return b.String()
}

func (m KeyMap) Action(key string) (string, bool) {
	a, ok := m.actions[key]
	return a, ok
}

// Hint returns the first key bound to the action, for help texts.
func (m KeyMap) Hint(action string) string {
	h := m.hints[action]
	if h == " " {
		return "space"
	}
	return h
}
