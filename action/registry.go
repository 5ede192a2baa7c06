package action

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("icsterm.action")

// Registry holds the available actions and their key bindings.
type Registry struct {
	actions []*Action
	byName  map[string]*Action
	keys    map[Binding]*Action
}

// NewRegistry creates a registry holding actions.
func NewRegistry(actions ...*Action) *Registry {
	r := &Registry{
		byName: make(map[string]*Action),
		keys:   make(map[Binding]*Action),
	}
	for _, a := range actions {
		r.Add(a)
	}
	return r
}

// Add registers a. Separators are kept for toolbar layout but cannot be
// looked up or bound.
func (r *Registry) Add(a *Action) {
	r.actions = append(r.actions, a)
	if a.ID != IDSeparator {
		r.byName[a.Name] = a
	}
}

// Get returns the action called name.
func (r *Registry) Get(name string) (*Action, bool) {
	a, ok := r.byName[name]
	return a, ok
}

// Actions returns every registered action in registration order.
func (r *Registry) Actions() []*Action {
	return r.actions
}

// Bind maps the key named key to the action called name.
func (r *Registry) Bind(key, name string) error {
	a, ok := r.byName[name]
	if !ok {
		return fmt.Errorf("bind %s: no action named %q", key, name)
	}
	b, err := ParseKey(key)
	if err != nil {
		return fmt.Errorf("bind %s: %w", name, err)
	}
	if !b.IsHotkey() {
		return fmt.Errorf("bind %s: %s needs a modifier", name, key)
	}
	r.keys[b] = a
	return nil
}

// Lookup returns the action bound to b.
func (r *Registry) Lookup(b Binding) (*Action, bool) {
	a, ok := r.keys[b]
	return a, ok
}

// Dispatch runs the action bound to ev against src. It returns false when
// the key is not a hotkey or nothing is bound to it, leaving the key for the
// focused widget.
func (r *Registry) Dispatch(ev *tcell.EventKey, src Source) bool {
	b := BindingFor(ev)
	if !b.IsHotkey() {
		return false
	}
	a, ok := r.keys[b]
	if !ok {
		return false
	}
	if !a.Widget().Enabled {
		log.Debugf("Ignoring disabled action %s from keybinding %s", a.Name, b)
		return true
	}
	log.Debugf("Executing action from keybinding: %s", a.Name)
	if a.Run != nil {
		a.Run(src)
	}
	return true
}
